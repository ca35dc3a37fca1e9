package controller

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/rayto1224/ksbc-web/internals/features/contents/newsletters/dto"
	"github.com/rayto1224/ksbc-web/internals/features/contents/newsletters/model"
	helper "github.com/rayto1224/ksbc-web/internals/helpers"
)

type NewsletterController struct {
	DB *gorm.DB
}

func NewNewsletterController(db *gorm.DB) *NewsletterController {
	return &NewsletterController{DB: db}
}

var validate = validator.New()

// 🟢 GET /api/public/newsletters
// Published issues only, newest first.
func (ctrl *NewsletterController) ListNewsletters(c *fiber.Ctx) error {
	params := helper.ParseFiber(c, "published_date", "desc", helper.DefaultOpts)

	query := ctrl.DB.Model(&model.NewsletterModel{}).
		Where("newsletter_is_published = ?", true)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch newsletters")
	}

	var newsletters []model.NewsletterModel
	if err := query.Order("newsletter_published_date DESC").
		Limit(params.Limit()).Offset(params.Offset()).
		Find(&newsletters).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch newsletters")
	}

	responses := make([]*dto.NewsletterResponse, 0, len(newsletters))
	for i := range newsletters {
		responses = append(responses, dto.ToNewsletterResponse(&newsletters[i]))
	}

	return helper.Success(c, "Newsletters fetched", fiber.Map{
		"newsletters": responses,
		"meta":        helper.BuildMeta(total, params),
	})
}

// 🟢 GET /api/public/newsletters/:slug
func (ctrl *NewsletterController) GetNewsletterBySlug(c *fiber.Ctx) error {
	slug := strings.ToLower(strings.TrimSpace(c.Params("slug")))
	if slug == "" {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid slug")
	}

	var newsletter model.NewsletterModel
	if err := ctrl.DB.First(&newsletter,
		"newsletter_slug = ? AND newsletter_is_published = ?", slug, true).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "Newsletter not found")
	}

	return helper.Success(c, "Newsletter fetched", dto.ToNewsletterResponse(&newsletter))
}

// 🟢 GET /api/a/newsletters
// Admin listing includes drafts.
func (ctrl *NewsletterController) ListAllNewsletters(c *fiber.Ctx) error {
	params := helper.ParseFiber(c, "published_date", "desc", helper.AdminOpts)

	var total int64
	if err := ctrl.DB.Model(&model.NewsletterModel{}).Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch newsletters")
	}

	var newsletters []model.NewsletterModel
	if err := ctrl.DB.Order("newsletter_published_date DESC").
		Limit(params.Limit()).Offset(params.Offset()).
		Find(&newsletters).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch newsletters")
	}

	responses := make([]*dto.NewsletterResponse, 0, len(newsletters))
	for i := range newsletters {
		responses = append(responses, dto.ToNewsletterResponse(&newsletters[i]))
	}

	return helper.Success(c, "Newsletters fetched", fiber.Map{
		"newsletters": responses,
		"meta":        helper.BuildMeta(total, params),
	})
}

// 🟢 POST /api/a/newsletters
func (ctrl *NewsletterController) CreateNewsletter(c *fiber.Ctx) error {
	var req dto.NewsletterRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Slug = strings.ToLower(strings.TrimSpace(req.Slug))
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	newsletter := req.ToModel()
	if err := ctrl.DB.Create(newsletter).Error; err != nil {
		if isUniqueViolation(err) {
			return helper.Error(c, fiber.StatusConflict, "Slug already in use")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to create newsletter")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Newsletter created", dto.ToNewsletterResponse(newsletter))
}

// 🟡 PUT /api/a/newsletters/:id
func (ctrl *NewsletterController) UpdateNewsletter(c *fiber.Ctx) error {
	newsletterID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid newsletter id")
	}

	var req dto.NewsletterRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Slug = strings.ToLower(strings.TrimSpace(req.Slug))
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var newsletter model.NewsletterModel
	if err := ctrl.DB.First(&newsletter, "newsletter_id = ?", newsletterID).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "Newsletter not found")
	}

	updated := req.ToModel()
	updated.NewsletterID = newsletter.NewsletterID
	updated.NewsletterCreatedAt = newsletter.NewsletterCreatedAt
	if err := ctrl.DB.Save(updated).Error; err != nil {
		if isUniqueViolation(err) {
			return helper.Error(c, fiber.StatusConflict, "Slug already in use")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to update newsletter")
	}

	return helper.Success(c, "Newsletter updated", dto.ToNewsletterResponse(updated))
}

// 🔴 DELETE /api/a/newsletters/:id
func (ctrl *NewsletterController) DeleteNewsletter(c *fiber.Ctx) error {
	newsletterID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid newsletter id")
	}

	if err := ctrl.DB.Delete(&model.NewsletterModel{}, "newsletter_id = ?", newsletterID).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to delete newsletter")
	}

	return helper.Success(c, "Newsletter deleted", nil)
}

func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "duplicate key value") ||
		strings.Contains(msg, "UNIQUE constraint failed")
}
