package services

import (
	"testing"

	"github.com/authorflow/backend/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestWordCount(t *testing.T) {
	cases := []struct {
		name    string
		content string
		want    int
	}{
		{"empty", "", 0},
		{"whitespace only", "   \t\n  ", 0},
		{"single word", "hello", 1},
		{"two words", "hello world", 2},
		{"padded", "  hello   world ", 2},
		{"newlines and tabs", "one\ttwo\nthree\r\nfour", 4},
		{"unicode words", "café über naïve", 3},
		{"long run of spaces", "a          b", 2},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, WordCount(tc.content))
		})
	}
}

func TestTierProjectLimits(t *testing.T) {
	assert.Equal(t, 3, TierProjectLimits[models.TierFree])
	assert.Equal(t, Unlimited, TierProjectLimits[models.TierPro])
	assert.Equal(t, Unlimited, TierProjectLimits[models.TierPlus])
}

func TestTierEntityLimits(t *testing.T) {
	assert.Equal(t, 50, TierEntityLimits[models.TierFree])
	assert.Equal(t, Unlimited, TierEntityLimits[models.TierPro])
	assert.Equal(t, Unlimited, TierEntityLimits[models.TierPlus])
}
