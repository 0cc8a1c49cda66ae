package database

import (
	"log"

	"gorm.io/gorm"

	attendanceModel "campustrack_backend/internals/features/academics/attendance/model"
	locationModel "campustrack_backend/internals/features/academics/locations/model"
	instanceModel "campustrack_backend/internals/features/academics/schedule_instances/model"
	scheduleModel "campustrack_backend/internals/features/academics/schedules/model"
	userModel "campustrack_backend/internals/features/users/user/model"
)

// MigrateAll runs AutoMigrate in dependency order so foreign keys and
// the composite unique indexes exist before the app serves traffic.
func MigrateAll(db *gorm.DB) {
	err := db.AutoMigrate(
		&userModel.UserModel{},
		&userModel.UserAdditionalDetailModel{},
		&locationModel.LocationModel{},
		&scheduleModel.ScheduleModel{},
		&scheduleModel.ScheduleUserModel{},
		&instanceModel.ScheduleInstanceModel{},
		&instanceModel.ScheduleInstanceUserModel{},
		&attendanceModel.AttendanceModel{},
		&attendanceModel.AttendanceTrackingModel{},
	)
	if err != nil {
		log.Fatalf("❌ Failed to migrate database: %v", err)
	}
	log.Println("✅ Database migrated")
}
