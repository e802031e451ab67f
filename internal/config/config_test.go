package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{
		"PORT", "CORS_ORIGIN", "APP_ENV", "DB_HOST", "DB_NAME",
		"JWT_SECRET", "JWT_ACCESS_EXPIRY", "JWT_REFRESH_EXPIRY",
	} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, "3001", cfg.Port)
	assert.Equal(t, "*", cfg.CORSOrigin)
	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "localhost", cfg.DBHost)
	assert.Equal(t, "authorflow", cfg.DBName)
	assert.Empty(t, cfg.JWTSecret)
	assert.Equal(t, 15*time.Minute, cfg.JWTAccessExpiry)
	assert.Equal(t, 168*time.Hour, cfg.JWTRefreshExpiry)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("CORS_ORIGIN", "https://authorflow.app")
	t.Setenv("APP_ENV", "production")
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("JWT_ACCESS_EXPIRY", "30m")

	cfg := Load()

	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, "https://authorflow.app", cfg.CORSOrigin)
	assert.Equal(t, "production", cfg.Environment)
	assert.Equal(t, "s3cret", cfg.JWTSecret)
	assert.Equal(t, 30*time.Minute, cfg.JWTAccessExpiry)
}

func TestLoadBadDurationFallsBack(t *testing.T) {
	t.Setenv("JWT_ACCESS_EXPIRY", "soon")

	cfg := Load()

	assert.Equal(t, 15*time.Minute, cfg.JWTAccessExpiry)
}

func TestDSN(t *testing.T) {
	cfg := &Config{
		DBHost:     "db.internal",
		DBPort:     "5433",
		DBUser:     "writer",
		DBPassword: "pw",
		DBName:     "authorflow",
		DBSSLMode:  "require",
	}

	dsn := cfg.DSN()
	assert.Contains(t, dsn, "host=db.internal")
	assert.Contains(t, dsn, "port=5433")
	assert.Contains(t, dsn, "sslmode=require")
	assert.Contains(t, dsn, "TimeZone=UTC")
}
