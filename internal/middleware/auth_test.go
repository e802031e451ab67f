package middleware

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/authorflow/backend/internal/config"
	"github.com/authorflow/backend/internal/identity"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func testConfig() *config.Config {
	return &config.Config{JWTSecret: testSecret}
}

func signToken(t *testing.T, secret string, expiry time.Duration, sub uuid.UUID) string {
	t.Helper()
	claims := jwt.MapClaims{
		"sub":   sub.String(),
		"email": "writer@example.com",
		"iat":   time.Now().Unix(),
		"exp":   time.Now().Add(expiry).Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func whoAmI(c *fiber.Ctx) error {
	userID, err := identity.UserID(c)
	if err != nil {
		return c.JSON(fiber.Map{"authenticated": false})
	}
	return c.JSON(fiber.Map{"authenticated": true, "user_id": userID.String()})
}

func TestRequireAuth(t *testing.T) {
	userID := uuid.New()

	cases := []struct {
		name       string
		header     string
		wantStatus int
		wantAuthed bool
	}{
		{"no header", "", fiber.StatusUnauthorized, false},
		{"wrong scheme", "Token abc", fiber.StatusUnauthorized, false},
		{"garbage token", "Bearer not.a.jwt", fiber.StatusUnauthorized, false},
		{"expired token", "Bearer " + signToken(t, testSecret, -time.Minute, userID), fiber.StatusUnauthorized, false},
		{"wrong key", "Bearer " + signToken(t, "other-secret", time.Minute, userID), fiber.StatusUnauthorized, false},
		{"valid token", "Bearer " + signToken(t, testSecret, time.Minute, userID), fiber.StatusOK, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			app := fiber.New()
			app.Get("/me", RequireAuth(testConfig()), whoAmI)

			req := httptest.NewRequest("GET", "/me", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}

			resp, err := app.Test(req, -1)
			require.NoError(t, err)
			assert.Equal(t, tc.wantStatus, resp.StatusCode)

			body, err := io.ReadAll(resp.Body)
			require.NoError(t, err)

			var parsed map[string]interface{}
			require.NoError(t, json.Unmarshal(body, &parsed))

			if tc.wantAuthed {
				assert.Equal(t, true, parsed["authenticated"])
				assert.Equal(t, userID.String(), parsed["user_id"])
			} else {
				assert.Equal(t, false, parsed["success"])
				assert.Equal(t, "Unauthorized", parsed["error"])
			}
		})
	}
}

func TestOptionalAuth(t *testing.T) {
	userID := uuid.New()

	cases := []struct {
		name       string
		header     string
		wantAuthed bool
	}{
		{"no header", "", false},
		{"wrong scheme", "Token abc", false},
		{"garbage token", "Bearer not.a.jwt", false},
		{"expired token", "Bearer " + signToken(t, testSecret, -time.Minute, userID), false},
		{"valid token", "Bearer " + signToken(t, testSecret, time.Minute, userID), true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			app := fiber.New()
			app.Get("/me", OptionalAuth(testConfig()), whoAmI)

			req := httptest.NewRequest("GET", "/me", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}

			resp, err := app.Test(req, -1)
			require.NoError(t, err)

			// Optional auth never rejects; it only decides whether an
			// identity is attached.
			assert.Equal(t, fiber.StatusOK, resp.StatusCode)

			body, err := io.ReadAll(resp.Body)
			require.NoError(t, err)

			var parsed map[string]interface{}
			require.NoError(t, json.Unmarshal(body, &parsed))
			assert.Equal(t, tc.wantAuthed, parsed["authenticated"])

			if tc.wantAuthed {
				assert.Equal(t, userID.String(), parsed["user_id"])
			}
		})
	}
}
