package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	donationRoute "github.com/rayto1224/ksbc-web/internals/features/activities/donations/route"
	eventRoute "github.com/rayto1224/ksbc-web/internals/features/activities/events/route"
	fellowshipRoute "github.com/rayto1224/ksbc-web/internals/features/contents/fellowship/route"
	homeRoute "github.com/rayto1224/ksbc-web/internals/features/contents/home/route"
	newsletterRoute "github.com/rayto1224/ksbc-web/internals/features/contents/newsletters/route"
	pageRoute "github.com/rayto1224/ksbc-web/internals/features/contents/pages/route"
	worshipRoute "github.com/rayto1224/ksbc-web/internals/features/contents/worships/route"
	authRoute "github.com/rayto1224/ksbc-web/internals/features/users/auth/route"
	"github.com/rayto1224/ksbc-web/internals/middlewares/auth"
)

// SetupRoutes mounts every feature under three API groups:
//
//	/api/public   no token required; optional auth fills identity when present
//	/api/u        logged-in members (dashboard)
//	/api/a        administrators
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	api := app.Group("/api")

	// Payment gateway callback lives outside the auth groups.
	donationRoute.DonationWebhookRoutes(api, db)

	authRoute.AuthRoutes(app, db)

	public := api.Group("/public", auth.OptionalAuthMiddleware(db))
	eventRoute.EventAllRoutes(public, db)
	worshipRoute.WorshipAllRoutes(public, db)
	newsletterRoute.NewsletterAllRoutes(public, db)
	homeRoute.HomeAllRoutes(public, db)
	pageRoute.PageAllRoutes(public, db)
	fellowshipRoute.FellowshipAllRoutes(public, db)

	user := api.Group("/u", auth.AuthMiddleware(db))
	eventRoute.EventUserRoutes(user, db)
	donationRoute.DonationUserRoutes(user, db)

	admin := api.Group("/a", auth.AuthMiddleware(db), auth.IsAdmin())
	eventRoute.EventAdminRoutes(admin, db)
	donationRoute.DonationAdminRoutes(admin, db)
	worshipRoute.WorshipAdminRoutes(admin, db)
	newsletterRoute.NewsletterAdminRoutes(admin, db)
	homeRoute.HomeAdminRoutes(admin, db)
	pageRoute.PageAdminRoutes(admin, db)
	fellowshipRoute.FellowshipAdminRoutes(admin, db)
}
