package model

import (
	"github.com/google/uuid"
)

type DepartmentEnum string

const (
	DepartmentBiomedical          DepartmentEnum = "biomedical"
	DepartmentComputerScience     DepartmentEnum = "computer_science"
	DepartmentComputerEngineering DepartmentEnum = "computer_engineering"
	DepartmentElectronics         DepartmentEnum = "electronics"
	DepartmentSoftware            DepartmentEnum = "software"
	DepartmentTelecom             DepartmentEnum = "telecom"
)

type DesignationEnum string

const (
	DesignationChairman           DesignationEnum = "chairman"
	DesignationProfessor          DesignationEnum = "professor"
	DesignationAssociateProfessor DesignationEnum = "associate_professor"
	DesignationAssistantProfessor DesignationEnum = "assistant_professor"
	DesignationLecturer           DesignationEnum = "lecturer"
	DesignationJuniorLecturer     DesignationEnum = "junior_lecturer"
	DesignationVisiting           DesignationEnum = "visiting"
)

type UserAdditionalDetailModel struct {
	UserAdditionalDetailID uuid.UUID `gorm:"column:user_additional_detail_id;type:uuid;default:gen_random_uuid();primaryKey"`

	UserAdditionalDetailUserID uuid.UUID `gorm:"column:user_additional_detail_user_id;type:uuid;not null;uniqueIndex"`

	UserAdditionalDetailPhone       *string          `gorm:"column:user_additional_detail_phone;type:varchar(30);uniqueIndex"`
	UserAdditionalDetailDepartment  *DepartmentEnum  `gorm:"column:user_additional_detail_department;type:varchar(30)"`
	UserAdditionalDetailDesignation *DesignationEnum `gorm:"column:user_additional_detail_designation;type:varchar(30)"`
}

func (UserAdditionalDetailModel) TableName() string { return "user_additional_details" }
