package auth

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"gorm.io/gorm"

	"github.com/rayto1224/ksbc-web/internals/configs"
)

// OptionalAuthMiddleware attaches the user identity when a valid token is
// present and silently continues as a guest otherwise. Used on public
// endpoints (event registration allows guests) that still want to know who
// is logged in.
func OptionalAuthMiddleware(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString, err := extractBearerToken(c)
		if err != nil {
			return c.Next()
		}

		claims := jwt.MapClaims{}
		parser := jwt.Parser{SkipClaimsValidation: true}
		if _, err := parser.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
			return []byte(configs.JWTSecret), nil
		}); err != nil {
			return c.Next()
		}
		if err := validateTokenExpiry(claims, 30*time.Second); err != nil {
			return c.Next()
		}

		userID, err := extractUserID(claims)
		if err != nil {
			return c.Next()
		}
		user, err := loadActiveUser(db, userID)
		if err != nil {
			return c.Next()
		}

		c.Locals("user_id", user.UserID.String())
		c.Locals("user_email", user.UserEmail)
		c.Locals("user_role", user.UserRole)
		return c.Next()
	}
}
