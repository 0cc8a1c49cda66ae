package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	model "campustrack_backend/internals/features/users/user/model"
	"campustrack_backend/internals/helpers/dates"
)

/* =========================================================
   1) REQUESTS
   ========================================================= */

type AdditionalDetailRequest struct {
	Phone       *string `json:"phone"       validate:"omitempty,max=30"`
	Department  *string `json:"department"  validate:"omitempty,oneof=biomedical computer_science computer_engineering electronics software telecom"`
	Designation *string `json:"designation" validate:"omitempty,oneof=chairman professor associate_professor assistant_professor lecturer junior_lecturer visiting"`
}

type CreateUserRequest struct {
	FullName  string  `json:"full_name" validate:"required,min=3,max=100"`
	Email     string  `json:"email"     validate:"required,email"`
	Password  string  `json:"password"  validate:"required,min=8"`
	IsAdmin   bool    `json:"is_admin"`
	IsStudent bool    `json:"is_student"`

	AdditionalDetails *AdditionalDetailRequest `json:"additional_details" validate:"omitempty"`
}

// Password changes go through the dedicated endpoint, never here.
type UpdateUserRequest struct {
	FullName string `json:"full_name" validate:"required,min=3,max=100"`
	Email    string `json:"email"     validate:"required,email"`

	AdditionalDetails *AdditionalDetailRequest `json:"additional_details" validate:"omitempty"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password"     validate:"required,min=8"`
}

func (r CreateUserRequest) ToModel(hashedPassword string) model.UserModel {
	u := model.UserModel{
		UserFullName:  strings.TrimSpace(r.FullName),
		UserEmail:     strings.ToLower(strings.TrimSpace(r.Email)),
		UserPassword:  hashedPassword,
		UserIsAdmin:   r.IsAdmin,
		UserIsStudent: r.IsStudent,
	}
	if r.AdditionalDetails != nil {
		u.AdditionalDetails = r.AdditionalDetails.toModel()
	}
	return u
}

func (r *AdditionalDetailRequest) toModel() *model.UserAdditionalDetailModel {
	d := &model.UserAdditionalDetailModel{
		UserAdditionalDetailPhone: trimPtr(r.Phone),
	}
	if r.Department != nil {
		dep := model.DepartmentEnum(strings.TrimSpace(*r.Department))
		d.UserAdditionalDetailDepartment = &dep
	}
	if r.Designation != nil {
		des := model.DesignationEnum(strings.TrimSpace(*r.Designation))
		d.UserAdditionalDetailDesignation = &des
	}
	return d
}

func (r UpdateUserRequest) Apply(u *model.UserModel) {
	u.UserFullName = strings.TrimSpace(r.FullName)
	u.UserEmail = strings.ToLower(strings.TrimSpace(r.Email))
	if r.AdditionalDetails != nil {
		d := r.AdditionalDetails.toModel()
		if u.AdditionalDetails == nil {
			u.AdditionalDetails = d
		} else {
			u.AdditionalDetails.UserAdditionalDetailPhone = d.UserAdditionalDetailPhone
			u.AdditionalDetails.UserAdditionalDetailDepartment = d.UserAdditionalDetailDepartment
			u.AdditionalDetails.UserAdditionalDetailDesignation = d.UserAdditionalDetailDesignation
		}
	}
}

/* =========================================================
   2) RESPONSES
   ========================================================= */

type AdditionalDetailResponse struct {
	Phone       *string `json:"phone"`
	Department  *string `json:"department"`
	Designation *string `json:"designation"`
}

type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	FullName  string    `json:"full_name"`
	Email     string    `json:"email"`
	IsAdmin   bool      `json:"is_admin"`
	IsStudent bool      `json:"is_student"`

	AdditionalDetails *AdditionalDetailResponse `json:"additional_details"`

	CreatedAt string  `json:"created_at"`
	UpdatedAt *string `json:"updated_at"`
}

func FromModel(u *model.UserModel) UserResponse {
	resp := UserResponse{
		ID:        u.UserID,
		FullName:  u.UserFullName,
		Email:     u.UserEmail,
		IsAdmin:   u.UserIsAdmin,
		IsStudent: u.UserIsStudent,
		CreatedAt: u.UserCreatedAt.UTC().Format(dates.TimestampZFormat),
		UpdatedAt: formatTimePtr(u.UserUpdatedAt),
	}
	if u.AdditionalDetails != nil {
		resp.AdditionalDetails = &AdditionalDetailResponse{
			Phone:       u.AdditionalDetails.UserAdditionalDetailPhone,
			Department:  enumPtr(u.AdditionalDetails.UserAdditionalDetailDepartment),
			Designation: desPtr(u.AdditionalDetails.UserAdditionalDetailDesignation),
		}
	}
	return resp
}

func FromModels(users []model.UserModel) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for i := range users {
		out = append(out, FromModel(&users[i]))
	}
	return out
}

/* =========================================================
   Helpers
   ========================================================= */

func trimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}

func formatTimePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.UTC().Format(dates.TimestampZFormat)
	return &s
}

func enumPtr(d *model.DepartmentEnum) *string {
	if d == nil {
		return nil
	}
	s := string(*d)
	return &s
}

func desPtr(d *model.DesignationEnum) *string {
	if d == nil {
		return nil
	}
	s := string(*d)
	return &s
}
