package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/rayto1224/ksbc-web/internals/features/contents/home/dto"
	"github.com/rayto1224/ksbc-web/internals/features/contents/home/model"
	helper "github.com/rayto1224/ksbc-web/internals/helpers"
)

type HomeAdminController struct {
	DB *gorm.DB
}

func NewHomeAdminController(db *gorm.DB) *HomeAdminController {
	return &HomeAdminController{DB: db}
}

var validate = validator.New()

// 🟢 GET /api/a/ministries
func (ctrl *HomeAdminController) ListMinistries(c *fiber.Ctx) error {
	var ministries []model.MinistryModel
	if err := ctrl.DB.
		Order("ministry_display_order ASC, ministry_activity_date DESC").
		Find(&ministries).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch ministries")
	}

	responses := make([]*dto.MinistryResponse, 0, len(ministries))
	for i := range ministries {
		responses = append(responses, dto.ToMinistryResponse(&ministries[i]))
	}
	return helper.Success(c, "Ministries fetched", responses)
}

// 🟢 POST /api/a/ministries
func (ctrl *HomeAdminController) CreateMinistry(c *fiber.Ctx) error {
	var req dto.MinistryRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	ministry := req.ToModel()
	if err := ctrl.DB.Create(ministry).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to create ministry")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Ministry created", dto.ToMinistryResponse(ministry))
}

// 🟡 PUT /api/a/ministries/:id
func (ctrl *HomeAdminController) UpdateMinistry(c *fiber.Ctx) error {
	ministryID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid ministry id")
	}

	var req dto.MinistryRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var ministry model.MinistryModel
	if err := ctrl.DB.First(&ministry, "ministry_id = ?", ministryID).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "Ministry not found")
	}

	updated := req.ToModel()
	updated.MinistryID = ministry.MinistryID
	updated.MinistryCreatedAt = ministry.MinistryCreatedAt
	if err := ctrl.DB.Save(updated).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to update ministry")
	}
	return helper.Success(c, "Ministry updated", dto.ToMinistryResponse(updated))
}

// 🔴 DELETE /api/a/ministries/:id
func (ctrl *HomeAdminController) DeleteMinistry(c *fiber.Ctx) error {
	ministryID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid ministry id")
	}

	if err := ctrl.DB.Delete(&model.MinistryModel{}, "ministry_id = ?", ministryID).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to delete ministry")
	}
	return helper.Success(c, "Ministry deleted", nil)
}

// 🟢 GET /api/a/prayers
func (ctrl *HomeAdminController) ListPrayers(c *fiber.Ctx) error {
	var prayers []model.PrayerModel
	if err := ctrl.DB.
		Order("prayer_is_urgent DESC, prayer_display_date DESC").
		Find(&prayers).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch prayers")
	}

	responses := make([]*dto.PrayerResponse, 0, len(prayers))
	for i := range prayers {
		responses = append(responses, dto.ToPrayerResponse(&prayers[i]))
	}
	return helper.Success(c, "Prayers fetched", responses)
}

// 🟢 POST /api/a/prayers
func (ctrl *HomeAdminController) CreatePrayer(c *fiber.Ctx) error {
	var req dto.PrayerRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	prayer := req.ToModel()
	if err := ctrl.DB.Create(prayer).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to create prayer")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Prayer created", dto.ToPrayerResponse(prayer))
}

// 🟡 PUT /api/a/prayers/:id
func (ctrl *HomeAdminController) UpdatePrayer(c *fiber.Ctx) error {
	prayerID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid prayer id")
	}

	var req dto.PrayerRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var prayer model.PrayerModel
	if err := ctrl.DB.First(&prayer, "prayer_id = ?", prayerID).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "Prayer not found")
	}

	updated := req.ToModel()
	updated.PrayerID = prayer.PrayerID
	updated.PrayerCreatedAt = prayer.PrayerCreatedAt
	if err := ctrl.DB.Save(updated).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to update prayer")
	}
	return helper.Success(c, "Prayer updated", dto.ToPrayerResponse(updated))
}

// 🔴 DELETE /api/a/prayers/:id
func (ctrl *HomeAdminController) DeletePrayer(c *fiber.Ctx) error {
	prayerID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid prayer id")
	}

	if err := ctrl.DB.Delete(&model.PrayerModel{}, "prayer_id = ?", prayerID).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to delete prayer")
	}
	return helper.Success(c, "Prayer deleted", nil)
}
