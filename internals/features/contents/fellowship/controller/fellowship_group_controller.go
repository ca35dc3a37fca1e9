package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/rayto1224/ksbc-web/internals/features/contents/fellowship/dto"
	"github.com/rayto1224/ksbc-web/internals/features/contents/fellowship/model"
	helper "github.com/rayto1224/ksbc-web/internals/helpers"
)

type FellowshipGroupController struct {
	DB *gorm.DB
}

func NewFellowshipGroupController(db *gorm.DB) *FellowshipGroupController {
	return &FellowshipGroupController{DB: db}
}

var validate = validator.New()

// 🟢 GET /api/public/fellowships
// Active groups in their curated order.
func (ctrl *FellowshipGroupController) ListGroups(c *fiber.Ctx) error {
	var groups []model.FellowshipGroupModel
	if err := ctrl.DB.
		Where("fellowship_group_is_active = ?", true).
		Order("fellowship_group_sort_order ASC, fellowship_group_title ASC").
		Find(&groups).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch fellowship groups")
	}

	responses := make([]*dto.FellowshipGroupResponse, 0, len(groups))
	for i := range groups {
		responses = append(responses, dto.ToFellowshipGroupResponse(&groups[i]))
	}
	return helper.Success(c, "Fellowship groups fetched", responses)
}

// 🟢 GET /api/a/fellowships
func (ctrl *FellowshipGroupController) ListAllGroups(c *fiber.Ctx) error {
	var groups []model.FellowshipGroupModel
	if err := ctrl.DB.
		Order("fellowship_group_sort_order ASC, fellowship_group_title ASC").
		Find(&groups).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch fellowship groups")
	}

	responses := make([]*dto.FellowshipGroupResponse, 0, len(groups))
	for i := range groups {
		responses = append(responses, dto.ToFellowshipGroupResponse(&groups[i]))
	}
	return helper.Success(c, "Fellowship groups fetched", responses)
}

// 🟢 POST /api/a/fellowships
func (ctrl *FellowshipGroupController) CreateGroup(c *fiber.Ctx) error {
	var req dto.FellowshipGroupRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	group := req.ToModel()
	if err := ctrl.DB.Create(group).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to create fellowship group")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Fellowship group created", dto.ToFellowshipGroupResponse(group))
}

// 🟡 PUT /api/a/fellowships/:id
func (ctrl *FellowshipGroupController) UpdateGroup(c *fiber.Ctx) error {
	groupID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid fellowship group id")
	}

	var req dto.FellowshipGroupRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var group model.FellowshipGroupModel
	if err := ctrl.DB.First(&group, "fellowship_group_id = ?", groupID).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "Fellowship group not found")
	}

	updated := req.ToModel()
	updated.FellowshipGroupID = group.FellowshipGroupID
	if err := ctrl.DB.Save(updated).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to update fellowship group")
	}
	return helper.Success(c, "Fellowship group updated", dto.ToFellowshipGroupResponse(updated))
}

// 🔴 DELETE /api/a/fellowships/:id
func (ctrl *FellowshipGroupController) DeleteGroup(c *fiber.Ctx) error {
	groupID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid fellowship group id")
	}

	if err := ctrl.DB.Delete(&model.FellowshipGroupModel{}, "fellowship_group_id = ?", groupID).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to delete fellowship group")
	}
	return helper.Success(c, "Fellowship group deleted", nil)
}
