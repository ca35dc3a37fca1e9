package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/rayto1224/ksbc-web/internals/features/contents/fellowship/controller"
)

// FellowshipAllRoutes mounts the public group listing.
func FellowshipAllRoutes(public fiber.Router, db *gorm.DB) {
	ctrl := controller.NewFellowshipGroupController(db)

	public.Get("/fellowships", ctrl.ListGroups)
}

// FellowshipAdminRoutes mounts group management under the admin group.
func FellowshipAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := controller.NewFellowshipGroupController(db)

	fellowships := admin.Group("/fellowships")
	fellowships.Get("/", ctrl.ListAllGroups)
	fellowships.Post("/", ctrl.CreateGroup)
	fellowships.Put("/:id", ctrl.UpdateGroup)
	fellowships.Delete("/:id", ctrl.DeleteGroup)
}
