package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	authService "campustrack_backend/internals/features/users/auth/service"
	dto "campustrack_backend/internals/features/users/user/dto"
	model "campustrack_backend/internals/features/users/user/model"
	helper "campustrack_backend/internals/helpers"
)

type UserController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{DB: db, Validate: validator.New()}
}

// GET /api/a/users?role=teacher|student|admin
func (ctl *UserController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 25, 200)

	q := ctl.DB.WithContext(c.UserContext()).Model(&model.UserModel{})

	switch strings.TrimSpace(c.Query("role")) {
	case "teacher":
		q = q.Where("user_is_admin = FALSE AND user_is_student = FALSE")
	case "student":
		q = q.Where("user_is_admin = FALSE AND user_is_student = TRUE")
	case "admin":
		q = q.Where("user_is_admin = TRUE")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to count users")
	}

	var users []model.UserModel
	if err := q.Preload("AdditionalDetails").
		Order("user_created_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&users).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to load users")
	}

	resp := dto.FromModels(users)
	return helper.SuccessWithPagination(c, "OK", resp, helper.BuildPagination(paging, total, len(resp)))
}

// GET /api/a/users/:id
func (ctl *UserController) Get(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid user id")
	}

	var user model.UserModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Preload("AdditionalDetails").
		First(&user, "user_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "User not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to load user")
	}

	return helper.Success(c, "OK", dto.FromModel(&user))
}

// POST /api/a/users
func (ctl *UserController) Create(c *fiber.Ctx) error {
	var req dto.CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}
	if req.IsAdmin && req.IsStudent {
		return helper.Error(c, fiber.StatusBadRequest, "A user cannot be both admin and student")
	}

	hashed, err := authService.HashPassword(req.Password)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to hash password")
	}

	user := req.ToModel(hashed)
	if err := ctl.DB.WithContext(c.UserContext()).Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return helper.Error(c, fiber.StatusConflict, "A user with this email or phone already exists")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to create user")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "User created", dto.FromModel(&user))
}

// PUT /api/a/users/:id
func (ctl *UserController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid user id")
	}

	var req dto.UpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var user model.UserModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Preload("AdditionalDetails").
		First(&user, "user_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "User not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to load user")
	}

	req.Apply(&user)
	if user.AdditionalDetails != nil {
		user.AdditionalDetails.UserAdditionalDetailUserID = user.UserID
	}

	if err := ctl.DB.WithContext(c.UserContext()).
		Session(&gorm.Session{FullSaveAssociations: true}).
		Save(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return helper.Error(c, fiber.StatusConflict, "A user with this email or phone already exists")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to update user")
	}

	return helper.Success(c, "User updated", dto.FromModel(&user))
}

// DELETE /api/a/users/:id
func (ctl *UserController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid user id")
	}

	res := ctl.DB.WithContext(c.UserContext()).Delete(&model.UserModel{}, "user_id = ?", id)
	if res.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to delete user")
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "User not found")
	}

	return helper.Success(c, "Deleted successfully", nil)
}
