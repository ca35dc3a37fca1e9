package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/rayto1224/ksbc-web/internals/features/contents/home/controller"
)

// HomeAllRoutes mounts the public landing-page feed.
func HomeAllRoutes(public fiber.Router, db *gorm.DB) {
	ctrl := controller.NewHomeController(db)

	public.Get("/home", ctrl.GetHomeFeed)
}

// HomeAdminRoutes mounts ministry and prayer management under the admin group.
func HomeAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := controller.NewHomeAdminController(db)

	ministries := admin.Group("/ministries")
	ministries.Get("/", ctrl.ListMinistries)
	ministries.Post("/", ctrl.CreateMinistry)
	ministries.Put("/:id", ctrl.UpdateMinistry)
	ministries.Delete("/:id", ctrl.DeleteMinistry)

	prayers := admin.Group("/prayers")
	prayers.Get("/", ctrl.ListPrayers)
	prayers.Post("/", ctrl.CreatePrayer)
	prayers.Put("/:id", ctrl.UpdatePrayer)
	prayers.Delete("/:id", ctrl.DeletePrayer)
}
