package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "campustrack_backend/internals/features/academics/locations/dto"
	model "campustrack_backend/internals/features/academics/locations/model"
	helper "campustrack_backend/internals/helpers"
)

type LocationController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewLocationController(db *gorm.DB) *LocationController {
	return &LocationController{DB: db, Validate: validator.New()}
}

// GET /api/a/locations
func (ctl *LocationController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 25, 200)

	q := ctl.DB.WithContext(c.UserContext()).Model(&model.LocationModel{})

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to count locations")
	}

	var locations []model.LocationModel
	if err := q.Order("location_title ASC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&locations).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to load locations")
	}

	resp := dto.FromModels(locations)
	return helper.SuccessWithPagination(c, "OK", resp, helper.BuildPagination(paging, total, len(resp)))
}

// GET /api/a/locations/:id
func (ctl *LocationController) Get(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid location id")
	}

	var loc model.LocationModel
	if err := ctl.DB.WithContext(c.UserContext()).
		First(&loc, "location_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Location not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to load location")
	}

	return helper.Success(c, "OK", dto.FromModel(&loc))
}

// POST /api/a/locations
func (ctl *LocationController) Create(c *fiber.Ctx) error {
	var req dto.CreateOrUpdateLocationRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	loc := req.ToModel()
	if err := ctl.DB.WithContext(c.UserContext()).Create(&loc).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return helper.Error(c, fiber.StatusConflict, "A location with this title, address or coordinates already exists")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to create location")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Location created", dto.FromModel(&loc))
}

// PUT /api/a/locations/:id
func (ctl *LocationController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid location id")
	}

	var req dto.CreateOrUpdateLocationRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var loc model.LocationModel
	if err := ctl.DB.WithContext(c.UserContext()).
		First(&loc, "location_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Location not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to load location")
	}

	req.Apply(&loc)
	if err := ctl.DB.WithContext(c.UserContext()).Save(&loc).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return helper.Error(c, fiber.StatusConflict, "A location with this title, address or coordinates already exists")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to update location")
	}

	return helper.Success(c, "Location updated", dto.FromModel(&loc))
}

// DELETE /api/a/locations/:id
func (ctl *LocationController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid location id")
	}

	res := ctl.DB.WithContext(c.UserContext()).Delete(&model.LocationModel{}, "location_id = ?", id)
	if res.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to delete location")
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Location not found")
	}

	return helper.Success(c, "Deleted successfully", nil)
}
