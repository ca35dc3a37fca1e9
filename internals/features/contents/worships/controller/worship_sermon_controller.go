package controller

import (
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/rayto1224/ksbc-web/internals/features/contents/worships/dto"
	"github.com/rayto1224/ksbc-web/internals/features/contents/worships/model"
	helper "github.com/rayto1224/ksbc-web/internals/helpers"
)

type WorshipSermonController struct {
	DB *gorm.DB
}

func NewWorshipSermonController(db *gorm.DB) *WorshipSermonController {
	return &WorshipSermonController{DB: db}
}

var validate = validator.New()

// 🟢 GET /api/public/worships?year=2025
// Sermon archive, newest first, optionally narrowed to one year. The
// response carries the distinct years so the archive can render its tabs.
func (ctrl *WorshipSermonController) ListSermons(c *fiber.Ctx) error {
	params := helper.ParseFiber(c, "date", "desc", helper.DefaultOpts)

	query := ctrl.DB.Model(&model.WorshipSermonModel{})
	if yearRaw := c.Query("year"); yearRaw != "" {
		year, err := strconv.Atoi(yearRaw)
		if err != nil || year < 1900 || year > 9999 {
			return helper.Error(c, fiber.StatusBadRequest, "Invalid year")
		}
		query = query.Where(
			"worship_sermon_date >= ? AND worship_sermon_date < ?",
			strconv.Itoa(year)+"-01-01", strconv.Itoa(year+1)+"-01-01",
		)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch sermons")
	}

	var sermons []model.WorshipSermonModel
	if err := query.Order("worship_sermon_date DESC").
		Limit(params.Limit()).Offset(params.Offset()).
		Find(&sermons).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch sermons")
	}

	years, err := ctrl.distinctYears()
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch sermon years")
	}

	responses := make([]*dto.WorshipSermonResponse, 0, len(sermons))
	for i := range sermons {
		responses = append(responses, dto.ToWorshipSermonResponse(&sermons[i]))
	}

	return helper.Success(c, "Sermons fetched", fiber.Map{
		"sermons": responses,
		"years":   years,
		"meta":    helper.BuildMeta(total, params),
	})
}

// distinctYears collects the archive years, newest first. Year extraction
// happens in Go rather than SQL to stay portable across drivers.
func (ctrl *WorshipSermonController) distinctYears() ([]int, error) {
	var dates []time.Time
	if err := ctrl.DB.Model(&model.WorshipSermonModel{}).
		Distinct().
		Order("worship_sermon_date DESC").
		Pluck("worship_sermon_date", &dates).Error; err != nil {
		return nil, err
	}

	seen := make(map[int]bool)
	years := make([]int, 0, 8)
	for _, d := range dates {
		year := d.Year()
		if seen[year] {
			continue
		}
		seen[year] = true
		years = append(years, year)
	}
	return years, nil
}

// 🟢 POST /api/a/worships
func (ctrl *WorshipSermonController) CreateSermon(c *fiber.Ctx) error {
	var req dto.WorshipSermonRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	sermon := req.ToModel()
	if err := ctrl.DB.Create(sermon).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to create sermon")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Sermon created", dto.ToWorshipSermonResponse(sermon))
}

// 🟡 PUT /api/a/worships/:id
func (ctrl *WorshipSermonController) UpdateSermon(c *fiber.Ctx) error {
	sermonID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid sermon id")
	}

	var req dto.WorshipSermonRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var sermon model.WorshipSermonModel
	if err := ctrl.DB.First(&sermon, "worship_sermon_id = ?", sermonID).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "Sermon not found")
	}

	updated := req.ToModel()
	sermon.WorshipSermonSpeakerName = updated.WorshipSermonSpeakerName
	sermon.WorshipSermonTitle = updated.WorshipSermonTitle
	sermon.WorshipSermonYoutubeLink = updated.WorshipSermonYoutubeLink
	sermon.WorshipSermonDate = updated.WorshipSermonDate
	if err := ctrl.DB.Save(&sermon).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to update sermon")
	}

	return helper.Success(c, "Sermon updated", dto.ToWorshipSermonResponse(&sermon))
}

// 🔴 DELETE /api/a/worships/:id
func (ctrl *WorshipSermonController) DeleteSermon(c *fiber.Ctx) error {
	sermonID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid sermon id")
	}

	if err := ctrl.DB.Delete(&model.WorshipSermonModel{}, "worship_sermon_id = ?", sermonID).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to delete sermon")
	}

	return helper.Success(c, "Sermon deleted", nil)
}
