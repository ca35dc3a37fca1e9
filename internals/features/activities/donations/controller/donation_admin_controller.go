package controller

import (
	"regexp"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/rayto1224/ksbc-web/internals/features/activities/donations/dto"
	"github.com/rayto1224/ksbc-web/internals/features/activities/donations/model"
	"github.com/rayto1224/ksbc-web/internals/features/activities/donations/service"
	helper "github.com/rayto1224/ksbc-web/internals/helpers"
)

type DonationAdminController struct {
	DB *gorm.DB
}

func NewDonationAdminController(db *gorm.DB) *DonationAdminController {
	return &DonationAdminController{DB: db}
}

var validate = validator.New()

var fiscalYearRe = regexp.MustCompile(`^\d{4}-\d{4}$`)

// 🟢 POST /api/a/donations
// Record an offline gift in the ledger.
func (ctrl *DonationAdminController) CreateLedgerEntry(c *fiber.Ctx) error {
	var req dto.DonationLedgerRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	donation := req.ToModel()
	if err := ctrl.DB.Create(donation).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to record donation")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Donation recorded", dto.ToDonationResponse(donation))
}

// 🟢 GET /api/a/donations
func (ctrl *DonationAdminController) ListDonations(c *fiber.Ctx) error {
	params := helper.ParseFiber(c, "date", "desc", helper.AdminOpts)

	orderClause, err := params.SafeOrderClause(map[string]string{
		"date":       "donation_date",
		"amount":     "donation_amount",
		"created_at": "donation_created_at",
	}, "date")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid sort key")
	}

	query := ctrl.DB.Model(&model.DonationModel{})
	if userID := c.Query("user_id"); userID != "" {
		parsed, err := uuid.Parse(userID)
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "Invalid user id")
		}
		query = query.Where("donation_user_id = ?", parsed)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch donations")
	}

	var donations []model.DonationModel
	if err := query.Order(orderClause).
		Limit(params.Limit()).Offset(params.Offset()).
		Find(&donations).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch donations")
	}

	responses := make([]*dto.DonationResponse, 0, len(donations))
	for i := range donations {
		responses = append(responses, dto.ToDonationResponse(&donations[i]))
	}

	return helper.Success(c, "Donations fetched", fiber.Map{
		"donations": responses,
		"meta":      helper.BuildMeta(total, params),
	})
}

// 🟡 PUT /api/a/donations/:id
// Donations are immutable except by administrator edit, which lands here.
func (ctrl *DonationAdminController) UpdateDonation(c *fiber.Ctx) error {
	donationID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid donation id")
	}

	var req dto.DonationLedgerRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var donation model.DonationModel
	if err := ctrl.DB.First(&donation, "donation_id = ?", donationID).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "Donation not found")
	}

	updated := req.ToModel()
	if err := ctrl.DB.Model(&donation).Updates(map[string]interface{}{
		"donation_user_id": updated.DonationUserID,
		"donation_amount":  updated.DonationAmount,
		"donation_date":    updated.DonationDate,
		"donation_notes":   updated.DonationNotes,
	}).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to update donation")
	}

	return helper.Success(c, "Donation updated", dto.ToDonationResponse(&donation))
}

// 🔴 DELETE /api/a/donations/:id
func (ctrl *DonationAdminController) DeleteDonation(c *fiber.Ctx) error {
	donationID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid donation id")
	}

	if err := ctrl.DB.Delete(&model.DonationModel{}, "donation_id = ?", donationID).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to delete donation")
	}

	return helper.Success(c, "Donation deleted", nil)
}

// 🟢 GET /api/a/donations/report?fy=YYYY-YYYY
// Financial-year report, per user and globally.
func (ctrl *DonationAdminController) Report(c *fiber.Ctx) error {
	filter := c.Query("fy")
	if filter != "" && !fiscalYearRe.MatchString(filter) {
		return helper.Error(c, fiber.StatusBadRequest, "fy must look like 2025-2026")
	}

	var donations []model.DonationModel
	if err := ctrl.DB.Order("donation_date DESC").Find(&donations).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch donations")
	}

	return helper.Success(c, "Report generated", service.Aggregate(donations, filter))
}
