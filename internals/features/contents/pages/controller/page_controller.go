package controller

import (
	"encoding/json"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/rayto1224/ksbc-web/internals/features/contents/pages/dto"
	"github.com/rayto1224/ksbc-web/internals/features/contents/pages/model"
	helper "github.com/rayto1224/ksbc-web/internals/helpers"
)

type PageController struct {
	DB *gorm.DB
}

func NewPageController(db *gorm.DB) *PageController {
	return &PageController{DB: db}
}

var validate = validator.New()

// 🟢 GET /api/public/pages/:slug
// Static page content for the frontend. Sections are an ordered JSON array
// of blocks whose shape the frontend owns.
func (ctrl *PageController) GetPageBySlug(c *fiber.Ctx) error {
	slug := strings.ToLower(strings.TrimSpace(c.Params("slug")))
	if slug == "" {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid slug")
	}

	var page model.PageModel
	if err := ctrl.DB.First(&page,
		"page_slug = ? AND page_is_published = ?", slug, true).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "Page not found")
	}

	return helper.Success(c, "Page fetched", dto.ToPageResponse(&page))
}

// 🟢 GET /api/a/pages
func (ctrl *PageController) ListPages(c *fiber.Ctx) error {
	var pages []model.PageModel
	if err := ctrl.DB.Order("page_slug ASC").Find(&pages).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch pages")
	}

	responses := make([]*dto.PageResponse, 0, len(pages))
	for i := range pages {
		responses = append(responses, dto.ToPageResponse(&pages[i]))
	}
	return helper.Success(c, "Pages fetched", responses)
}

// 🟢 POST /api/a/pages
func (ctrl *PageController) CreatePage(c *fiber.Ctx) error {
	req, respErr := ctrl.parsePageRequest(c)
	if req == nil {
		return respErr
	}

	page := req.ToModel()
	if err := ctrl.DB.Create(page).Error; err != nil {
		if isUniqueViolation(err) {
			return helper.Error(c, fiber.StatusConflict, "Slug already in use")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to create page")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Page created", dto.ToPageResponse(page))
}

// 🟡 PUT /api/a/pages/:id
func (ctrl *PageController) UpdatePage(c *fiber.Ctx) error {
	pageID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid page id")
	}

	req, respErr := ctrl.parsePageRequest(c)
	if req == nil {
		return respErr
	}

	var page model.PageModel
	if err := ctrl.DB.First(&page, "page_id = ?", pageID).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "Page not found")
	}

	updated := req.ToModel()
	updated.PageID = page.PageID
	updated.PageCreatedAt = page.PageCreatedAt
	if err := ctrl.DB.Save(updated).Error; err != nil {
		if isUniqueViolation(err) {
			return helper.Error(c, fiber.StatusConflict, "Slug already in use")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to update page")
	}

	return helper.Success(c, "Page updated", dto.ToPageResponse(updated))
}

// 🔴 DELETE /api/a/pages/:id
func (ctrl *PageController) DeletePage(c *fiber.Ctx) error {
	pageID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid page id")
	}

	if err := ctrl.DB.Delete(&model.PageModel{}, "page_id = ?", pageID).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to delete page")
	}
	return helper.Success(c, "Page deleted", nil)
}

// parsePageRequest returns a nil request when the response has already been
// written; the caller passes the second value straight back to fiber.
func (ctrl *PageController) parsePageRequest(c *fiber.Ctx) (*dto.PageRequest, error) {
	var req dto.PageRequest
	if err := c.BodyParser(&req); err != nil {
		return nil, helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Slug = strings.ToLower(strings.TrimSpace(req.Slug))
	if err := validate.Struct(req); err != nil {
		return nil, helper.ValidationError(c, err)
	}
	if len(req.Sections) > 0 && !json.Valid(req.Sections) {
		return nil, helper.Error(c, fiber.StatusBadRequest, "sections must be valid JSON")
	}
	return &req, nil
}

func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "duplicate key value") ||
		strings.Contains(msg, "UNIQUE constraint failed")
}
