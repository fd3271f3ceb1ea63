package middleware

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
	jwtware "github.com/gofiber/jwt/v3"
	"github.com/golang-jwt/jwt/v4"

	"github.com/nepemufsc/nepemcert-api/common"
	"github.com/nepemufsc/nepemcert-api/type/response"
	"github.com/nepemufsc/nepemcert-api/type/shared"
)

// AuthMiddleware validates the bearer token and puts the user id in the
// request context.
func AuthMiddleware() fiber.Handler {
	conf := jwtware.Config{
		SigningKey:  []byte(*common.Config.JWTSecret),
		TokenLookup: "header:Authorization",
		AuthScheme:  "Bearer",
		ContextKey:  "auth",
		Claims:      new(shared.UserClaims),
		SuccessHandler: func(c *fiber.Ctx) error {
			token, ok := c.Locals("auth").(*jwt.Token)
			if !ok {
				return response.SendUnauthorized(c, "Invalid token context")
			}

			claims, ok := token.Claims.(*shared.UserClaims)
			if !ok || claims.UserId == nil || *claims.UserId == "" {
				return response.SendUnauthorized(c, "Invalid token claims")
			}

			c.Locals("user_id", *claims.UserId)
			return c.Next()
		},
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			slog.Warn("AuthMiddleware: token rejected",
				"error", err,
				"path", c.Path(),
				"method", c.Method(),
				"ip", c.IP())
			return response.SendUnauthorized(c, "Invalid or missing token")
		},
	}
	return jwtware.New(conf)
}

// GetUserFromContext extracts the authenticated user id set by
// AuthMiddleware.
func GetUserFromContext(c *fiber.Ctx) (string, bool) {
	if userID := c.Locals("user_id"); userID != nil {
		if id, ok := userID.(string); ok && id != "" {
			return id, true
		}
	}
	return "", false
}
