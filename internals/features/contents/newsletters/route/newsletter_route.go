package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/rayto1224/ksbc-web/internals/features/contents/newsletters/controller"
)

// NewsletterAllRoutes mounts the public archive.
func NewsletterAllRoutes(public fiber.Router, db *gorm.DB) {
	ctrl := controller.NewNewsletterController(db)

	public.Get("/newsletters", ctrl.ListNewsletters)
	public.Get("/newsletters/:slug", ctrl.GetNewsletterBySlug)
}

// NewsletterAdminRoutes mounts issue management under the admin group.
func NewsletterAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := controller.NewNewsletterController(db)

	newsletters := admin.Group("/newsletters")
	newsletters.Get("/", ctrl.ListAllNewsletters)
	newsletters.Post("/", ctrl.CreateNewsletter)
	newsletters.Put("/:id", ctrl.UpdateNewsletter)
	newsletters.Delete("/:id", ctrl.DeleteNewsletter)
}
