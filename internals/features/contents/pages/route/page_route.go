package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/rayto1224/ksbc-web/internals/features/contents/pages/controller"
)

// PageAllRoutes mounts public static-page lookup.
func PageAllRoutes(public fiber.Router, db *gorm.DB) {
	ctrl := controller.NewPageController(db)

	public.Get("/pages/:slug", ctrl.GetPageBySlug)
}

// PageAdminRoutes mounts page management under the admin group.
func PageAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := controller.NewPageController(db)

	pages := admin.Group("/pages")
	pages.Get("/", ctrl.ListPages)
	pages.Post("/", ctrl.CreatePage)
	pages.Put("/:id", ctrl.UpdatePage)
	pages.Delete("/:id", ctrl.DeletePage)
}
