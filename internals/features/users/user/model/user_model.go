package model

import (
	"time"

	"github.com/google/uuid"
)

type UserModel struct {
	UserID uuid.UUID `gorm:"column:user_id;type:uuid;default:gen_random_uuid();primaryKey"`

	UserFullName string `gorm:"column:user_full_name;type:varchar(100);not null"`
	UserEmail    string `gorm:"column:user_email;type:varchar(100);not null;uniqueIndex"`
	UserPassword string `gorm:"column:user_password;type:varchar(255);not null" json:"-"`

	UserIsAdmin   bool `gorm:"column:user_is_admin;not null;default:false"`
	UserIsStudent bool `gorm:"column:user_is_student;not null;default:false"`

	AdditionalDetails *UserAdditionalDetailModel `gorm:"foreignKey:UserAdditionalDetailUserID;references:UserID;constraint:OnDelete:CASCADE"`

	UserCreatedAt time.Time  `gorm:"column:user_created_at;type:timestamptz;not null;autoCreateTime"`
	UserUpdatedAt *time.Time `gorm:"column:user_updated_at;type:timestamptz;autoUpdateTime"`
}

func (UserModel) TableName() string { return "users" }

// IsTeacher: academic user that is not a student
func (u *UserModel) IsTeacher() bool { return !u.UserIsAdmin && !u.UserIsStudent }
