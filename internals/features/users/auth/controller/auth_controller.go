package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"campustrack_backend/internals/configs"
	authService "campustrack_backend/internals/features/users/auth/service"
	userDto "campustrack_backend/internals/features/users/user/dto"
	userModel "campustrack_backend/internals/features/users/user/model"
	helper "campustrack_backend/internals/helpers"
	"campustrack_backend/internals/middlewares"
)

type AuthController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db, Validate: validator.New()}
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// POST /api/auth/login
func (ac *AuthController) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ac.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var user userModel.UserModel
	err := ac.DB.WithContext(c.UserContext()).
		Preload("AdditionalDetails").
		First(&user, "user_email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusUnauthorized, "Incorrect email or password")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to load user")
	}

	if !authService.CheckPassword(user.UserPassword, req.Password) {
		return helper.Error(c, fiber.StatusUnauthorized, "Incorrect email or password")
	}

	token, err := authService.CreateAccessToken(
		user.UserID, user.UserEmail, user.UserIsAdmin, user.UserIsStudent, configs.AccessTokenTTL,
	)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to issue token")
	}

	return helper.Success(c, "Login successful", fiber.Map{
		"access_token": token,
		"token_type":   "bearer",
		"user":         userDto.FromModel(&user),
	})
}

// GET /api/auth/me
func (ac *AuthController) Me(c *fiber.Ctx) error {
	userIDStr, ok := c.Locals(middlewares.LocUserID).(string)
	if !ok {
		return helper.Error(c, fiber.StatusUnauthorized, "Invalid user ID in context")
	}
	userUUID, err := uuid.Parse(userIDStr)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Invalid UUID format")
	}

	var user userModel.UserModel
	if err := ac.DB.WithContext(c.UserContext()).
		Preload("AdditionalDetails").
		First(&user, "user_id = ?", userUUID).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "User not found")
	}

	return helper.Success(c, "OK", userDto.FromModel(&user))
}

// PUT /api/auth/password
func (ac *AuthController) ChangePassword(c *fiber.Ctx) error {
	userIDStr, ok := c.Locals(middlewares.LocUserID).(string)
	if !ok {
		return helper.Error(c, fiber.StatusUnauthorized, "Invalid user ID in context")
	}
	userUUID, err := uuid.Parse(userIDStr)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Invalid UUID format")
	}

	var req userDto.ChangePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ac.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var user userModel.UserModel
	if err := ac.DB.WithContext(c.UserContext()).
		First(&user, "user_id = ?", userUUID).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "User not found")
	}

	if !authService.CheckPassword(user.UserPassword, req.CurrentPassword) {
		return helper.Error(c, fiber.StatusUnauthorized, "Current password is incorrect")
	}

	hashed, err := authService.HashPassword(req.NewPassword)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to hash password")
	}

	if err := ac.DB.WithContext(c.UserContext()).
		Model(&user).
		Update("user_password", hashed).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to update password")
	}

	return helper.Success(c, "Password updated", nil)
}
