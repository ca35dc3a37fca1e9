package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "github.com/rayto1224/ksbc-web/internals/features/users/auth/controller"
	"github.com/rayto1224/ksbc-web/internals/middlewares"
	authMiddleware "github.com/rayto1224/ksbc-web/internals/middlewares/auth"
)

// AuthRoutes mounts /api/auth.
func AuthRoutes(app *fiber.App, db *gorm.DB) {
	authController := controller.NewAuthController(db)

	baseAuth := app.Group("/api/auth")

	baseAuth.Post("/login", middlewares.LoginRateLimiter(), authController.Login)
	baseAuth.Post("/register", middlewares.RegisterRateLimiter(), authController.Register)
	baseAuth.Post("/refresh-token", authController.RefreshToken)

	protected := baseAuth.Group("", authMiddleware.AuthMiddleware(db))
	protected.Post("/logout", authController.Logout)
	protected.Get("/me", authController.Me)
}
