package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidEntityType(t *testing.T) {
	for _, valid := range EntityTypes {
		assert.True(t, IsValidEntityType(valid), valid)
	}

	assert.False(t, IsValidEntityType(""))
	assert.False(t, IsValidEntityType("villain"))
	assert.False(t, IsValidEntityType("Character"))
}
