package middleware

import (
	"strings"

	"github.com/authorflow/backend/internal/config"
	"github.com/authorflow/backend/internal/dto"
	"github.com/authorflow/backend/internal/identity"
	jwtware "github.com/gofiber/contrib/jwt"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

const bearerScheme = "Bearer "

// RequireAuth rejects requests without a valid bearer token with a 401
// envelope and attaches the parsed token to the request context.
func RequireAuth(cfg *config.Config) fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey: jwtware.SigningKey{Key: []byte(cfg.JWTSecret)},
		ContextKey: identity.ContextKey,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Success: false,
				Error:   "Unauthorized",
				Message: "Missing or invalid authorization token",
			})
		},
	})
}

// OptionalAuth attaches an identity when a valid bearer token is present and
// lets the request through anonymously otherwise. The scheme prefix match is
// case-sensitive; anything malformed is treated as no token.
func OptionalAuth(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		if !strings.HasPrefix(header, bearerScheme) {
			return c.Next()
		}

		raw := strings.TrimPrefix(header, bearerScheme)
		token, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(cfg.JWTSecret), nil
		})
		if err == nil && token.Valid {
			c.Locals(identity.ContextKey, token)
		}

		return c.Next()
	}
}
