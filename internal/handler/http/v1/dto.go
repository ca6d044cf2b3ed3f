package v1

import (
	"time"

	"github.com/google/uuid"
)

// LocationFixRequest DTO для фикса от платформенного провайдера геолокации
type LocationFixRequest struct {
	Latitude   float64   `json:"latitude" validate:"min=-90,max=90"`
	Longitude  float64   `json:"longitude" validate:"min=-180,max=180"`
	Accuracy   float64   `json:"accuracy,omitempty" validate:"gte=0"`
	Address    string    `json:"address,omitempty"`
	CapturedAt time.Time `json:"captured_at,omitempty"`
}

// SharingRequest DTO для переключения шаринга живой позиции
type SharingRequest struct {
	Enabled *bool `json:"enabled" validate:"required"`
}

// ReportIncidentRequest DTO для сообщения об инциденте
type ReportIncidentRequest struct {
	Category    string  `json:"category" validate:"required,min=2,max=64"`
	Title       string  `json:"title" validate:"required,min=2,max=255"`
	Description string  `json:"description,omitempty"`
	Latitude    float64 `json:"latitude" validate:"required,latitude"`
	Longitude   float64 `json:"longitude" validate:"required,longitude"`
}

// IncidentResponse DTO для ответа с информацией об инциденте
type IncidentResponse struct {
	ID          uuid.UUID `json:"id"`
	Category    string    `json:"category"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Latitude    float64   `json:"latitude"`
	Longitude   float64   `json:"longitude"`
	CreatedAt   time.Time `json:"created_at"`
}
