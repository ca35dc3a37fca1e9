package controller

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/rayto1224/ksbc-web/internals/features/activities/donations/dto"
	"github.com/rayto1224/ksbc-web/internals/features/activities/donations/model"
	"github.com/rayto1224/ksbc-web/internals/features/activities/donations/service"
	userModel "github.com/rayto1224/ksbc-web/internals/features/users/user/model"
	helper "github.com/rayto1224/ksbc-web/internals/helpers"
)

type DonationUserController struct {
	DB *gorm.DB
}

func NewDonationUserController(db *gorm.DB) *DonationUserController {
	return &DonationUserController{DB: db}
}

// 🟢 GET /api/u/donations
// The caller's giving history grouped by financial year, newest year first.
func (ctrl *DonationUserController) MyDonations(c *fiber.Ctx) error {
	userID, err := helper.GetUserUUID(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var donations []model.DonationModel
	if err := ctrl.DB.
		Where("donation_user_id = ?", userID).
		Order("donation_date DESC").
		Find(&donations).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch donations")
	}

	result := service.Aggregate(donations, "")

	type yearGroup struct {
		FiscalYear string                  `json:"financial_year"`
		Total      float64                 `json:"total"`
		Donations  []*dto.DonationResponse `json:"donations"`
	}
	groups := make([]yearGroup, 0, len(result.ByUserAndYear))
	for _, g := range result.ByUserAndYear {
		responses := make([]*dto.DonationResponse, 0, len(g.Donations))
		for i := range g.Donations {
			responses = append(responses, dto.ToDonationResponse(&g.Donations[i]))
		}
		groups = append(groups, yearGroup{
			FiscalYear: g.FiscalYear,
			Total:      g.Total,
			Donations:  responses,
		})
	}

	return helper.Success(c, "Donations fetched", fiber.Map{
		"by_financial_year": groups,
	})
}

// 🟢 POST /api/u/donations
// Start an online gift: a pending ledger row plus a Snap payment token.
func (ctrl *DonationUserController) CreateOnlineGift(c *fiber.Ctx) error {
	userID, err := helper.GetUserUUID(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var req dto.OnlineGiftRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var user userModel.UserModel
	if err := ctrl.DB.First(&user, "user_id = ?", userID).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "User not found")
	}

	orderID := fmt.Sprintf("DONATION-%d", time.Now().UnixNano())
	donation := &model.DonationModel{
		DonationUserID:         userID,
		DonationAmount:         req.Amount,
		DonationDate:           time.Now(),
		DonationNotes:          req.Notes,
		DonationStatus:         model.StatusPending,
		DonationOrderID:        &orderID,
		DonationPaymentGateway: "midtrans",
	}
	if err := ctrl.DB.Create(donation).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to create donation")
	}

	token, err := service.GenerateSnapToken(donation, user.UserName, user.UserEmail)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to create payment token")
	}

	donation.DonationPaymentToken = token
	if err := ctrl.DB.Model(donation).
		Update("donation_payment_token", token).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to save payment token")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Donation created", fiber.Map{
		"donation":   dto.ToDonationResponse(donation),
		"snap_token": token,
	})
}
