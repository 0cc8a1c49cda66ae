package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	model "campustrack_backend/internals/features/academics/locations/model"
	"campustrack_backend/internals/helpers/dates"
)

/* =========================================================
   1) REQUESTS
   ========================================================= */

type CreateOrUpdateLocationRequest struct {
	Title            string  `json:"title"             validate:"required,min=2,max=100"`
	BluetoothAddress string  `json:"bluetooth_address" validate:"required,max=50"`
	SecretKey        *string `json:"secret_key"        validate:"omitempty,max=100"`
	Coordinates      string  `json:"coordinates"       validate:"required,max=100"`
}

func (r CreateOrUpdateLocationRequest) ToModel() model.LocationModel {
	return model.LocationModel{
		LocationTitle:            strings.TrimSpace(r.Title),
		LocationBluetoothAddress: strings.TrimSpace(r.BluetoothAddress),
		LocationSecretKey:        trimPtr(r.SecretKey),
		LocationCoordinates:      strings.TrimSpace(r.Coordinates),
	}
}

func (r CreateOrUpdateLocationRequest) Apply(m *model.LocationModel) {
	m.LocationTitle = strings.TrimSpace(r.Title)
	m.LocationBluetoothAddress = strings.TrimSpace(r.BluetoothAddress)
	m.LocationCoordinates = strings.TrimSpace(r.Coordinates)
	if r.SecretKey != nil {
		m.LocationSecretKey = trimPtr(r.SecretKey)
	}
}

/* =========================================================
   2) RESPONSES
   ========================================================= */

type LocationResponse struct {
	ID               uuid.UUID `json:"id"`
	Title            string    `json:"title"`
	BluetoothAddress string    `json:"bluetooth_address"`
	Coordinates      string    `json:"coordinates"`
	CreatedAt        string    `json:"created_at"`
	UpdatedAt        *string   `json:"updated_at"`
}

func FromModel(m *model.LocationModel) LocationResponse {
	return LocationResponse{
		ID:               m.LocationID,
		Title:            m.LocationTitle,
		BluetoothAddress: m.LocationBluetoothAddress,
		Coordinates:      m.LocationCoordinates,
		CreatedAt:        m.LocationCreatedAt.UTC().Format(dates.TimestampZFormat),
		UpdatedAt:        formatTimePtr(m.LocationUpdatedAt),
	}
}

func FromModels(ms []model.LocationModel) []LocationResponse {
	out := make([]LocationResponse, 0, len(ms))
	for i := range ms {
		out = append(out, FromModel(&ms[i]))
	}
	return out
}

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
