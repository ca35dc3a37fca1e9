package service

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authModel "github.com/rayto1224/ksbc-web/internals/features/users/auth/model"
	userModel "github.com/rayto1224/ksbc-web/internals/features/users/user/model"
	helper "github.com/rayto1224/ksbc-web/internals/helpers"
)

var validate = validator.New()

type RegisterRequest struct {
	UserName string `json:"user_name" validate:"required,min=3,max=50"`
	Email    string `json:"email"     validate:"required,email"`
	Password string `json:"password"  validate:"required,min=8"`
}

type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func Register(db *gorm.DB, c *fiber.Ctx) error {
	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var existing userModel.UserModel
	if err := db.Where("LOWER(user_email) = ?", email).First(&existing).Error; err == nil {
		return helper.Error(c, fiber.StatusConflict, "Email is already registered")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Println("[ERROR] register lookup:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Internal Server Error")
	}

	hashed, err := HashPassword(req.Password)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to hash password")
	}

	user := userModel.UserModel{
		UserName:     req.UserName,
		UserEmail:    email,
		UserPassword: hashed,
	}
	if err := db.Create(&user).Error; err != nil {
		log.Println("[ERROR] register create:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to create account")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Account created", fiber.Map{
		"user_id":   user.UserID,
		"user_name": user.UserName,
		"email":     user.UserEmail,
	})
}

func Login(db *gorm.DB, c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var user userModel.UserModel
	if err := db.Where("LOWER(user_email) = ?", email).First(&user).Error; err != nil {
		// same message for unknown email and wrong password
		return helper.Error(c, fiber.StatusUnauthorized, "Invalid email or password")
	}
	if !user.UserIsActive {
		return helper.Error(c, fiber.StatusForbidden, "Your account has been deactivated")
	}
	if !CheckPassword(user.UserPassword, req.Password) {
		return helper.Error(c, fiber.StatusUnauthorized, "Invalid email or password")
	}

	accessToken, err := GenerateAccessToken(&user)
	if err != nil {
		log.Println("[ERROR] access token:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to issue token")
	}
	refreshToken, refreshExp, err := GenerateRefreshToken(user.UserID)
	if err != nil {
		log.Println("[ERROR] refresh token:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to issue token")
	}

	if err := db.Create(&authModel.RefreshTokenModel{
		RefreshTokenUserID:    user.UserID,
		RefreshTokenToken:     refreshToken,
		RefreshTokenExpiresAt: refreshExp,
	}).Error; err != nil {
		log.Println("[ERROR] store refresh token:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to issue token")
	}

	return helper.Success(c, "Login successful", fiber.Map{
		"access_token":  accessToken,
		"refresh_token": refreshToken,
		"user": fiber.Map{
			"user_id":   user.UserID,
			"user_name": user.UserName,
			"email":     user.UserEmail,
			"role":      user.UserRole,
		},
	})
}

func RefreshToken(db *gorm.DB, c *fiber.Ctx) error {
	var req struct {
		RefreshToken string `json:"refresh_token" validate:"required"`
	}
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	userID, err := ParseRefreshToken(req.RefreshToken)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Invalid refresh token")
	}

	var stored authModel.RefreshTokenModel
	if err := db.Where("refresh_token_user_id = ? AND refresh_token_token = ?", userID, req.RefreshToken).
		First(&stored).Error; err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Refresh token not recognized")
	}
	if time.Now().After(stored.RefreshTokenExpiresAt) {
		_ = db.Delete(&stored).Error
		return helper.Error(c, fiber.StatusUnauthorized, "Refresh token expired")
	}

	var user userModel.UserModel
	if err := db.First(&user, "user_id = ?", userID).Error; err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "User not found")
	}

	accessToken, err := GenerateAccessToken(&user)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to issue token")
	}

	return helper.Success(c, "Token refreshed", fiber.Map{
		"access_token": accessToken,
	})
}

func Logout(db *gorm.DB, c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	tokenString := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
	if tokenString == "" {
		return helper.Error(c, fiber.StatusBadRequest, "No token provided")
	}

	// Blacklist the access token for the remainder of its lifetime; the
	// cleanup scheduler prunes expired entries.
	if err := db.Create(&authModel.TokenBlacklistModel{
		TokenBlacklistToken:     tokenString,
		TokenBlacklistExpiresAt: time.Now().Add(AccessTokenTTL),
	}).Error; err != nil {
		log.Println("[ERROR] blacklist token:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to log out")
	}

	if userIDStr, ok := c.Locals("user_id").(string); ok && userIDStr != "" {
		db.Where("refresh_token_user_id = ?", userIDStr).Delete(&authModel.RefreshTokenModel{})
	}

	return helper.Success(c, "Logged out", nil)
}
