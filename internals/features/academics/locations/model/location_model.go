package model

import (
	"time"

	"github.com/google/uuid"
)

// A physical room with a bluetooth beacon used for presence checks.
type LocationModel struct {
	LocationID uuid.UUID `gorm:"column:location_id;type:uuid;default:gen_random_uuid();primaryKey"`

	LocationTitle            string  `gorm:"column:location_title;type:varchar(100);not null;uniqueIndex"`
	LocationBluetoothAddress string  `gorm:"column:location_bluetooth_address;type:varchar(50);not null;uniqueIndex"`
	LocationSecretKey        *string `gorm:"column:location_secret_key;type:varchar(100);uniqueIndex"`
	LocationCoordinates      string  `gorm:"column:location_coordinates;type:varchar(100);not null;uniqueIndex"`

	LocationCreatedAt time.Time  `gorm:"column:location_created_at;type:timestamptz;not null;autoCreateTime"`
	LocationUpdatedAt *time.Time `gorm:"column:location_updated_at;type:timestamptz;autoUpdateTime"`
}

func (LocationModel) TableName() string { return "locations" }
