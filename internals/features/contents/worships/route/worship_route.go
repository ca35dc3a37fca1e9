package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/rayto1224/ksbc-web/internals/features/contents/worships/controller"
)

// WorshipAllRoutes mounts the public sermon archive.
func WorshipAllRoutes(public fiber.Router, db *gorm.DB) {
	ctrl := controller.NewWorshipSermonController(db)

	public.Get("/worships", ctrl.ListSermons)
}

// WorshipAdminRoutes mounts sermon management under the admin group.
func WorshipAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := controller.NewWorshipSermonController(db)

	worships := admin.Group("/worships")
	worships.Post("/", ctrl.CreateSermon)
	worships.Put("/:id", ctrl.UpdateSermon)
	worships.Delete("/:id", ctrl.DeleteSermon)
}
