package models

import (
	"time"

	"github.com/google/uuid"
)

// Severity - уровень срочности проксимити-уведомления, зависит от дистанции
type Severity string

const (
	SeverityDanger  Severity = "DANGER"
	SeverityWarning Severity = "WARNING"
	SeverityAlert   Severity = "ALERT"
)

// ProximityMatch - результат геопространственного джойна живых позиций
// с недавними инцидентами. Не персистится напрямую.
type ProximityMatch struct {
	UserID            string    `json:"user_id"`
	IncidentID        uuid.UUID `json:"incident_id"`
	UserLatitude      float64   `json:"user_latitude"`
	UserLongitude     float64   `json:"user_longitude"`
	IncidentLatitude  float64   `json:"incident_latitude"`
	IncidentLongitude float64   `json:"incident_longitude"`
	IncidentTitle     string    `json:"incident_title"`
	IncidentCategory  string    `json:"incident_category"`
	DistanceKm        float64   `json:"distance_km"`
	IncidentCreatedAt time.Time `json:"incident_created_at"`
}

// ProximityNotificationRecord - запись дедупликации: одна на пару
// (пользователь, инцидент). Повторная вставка - безвредный no-op.
type ProximityNotificationRecord struct {
	UserID     string    `json:"user_id"`
	IncidentID uuid.UUID `json:"incident_id"`
	DistanceKm float64   `json:"distance_km"`
	Pushed     bool      `json:"pushed"`
	NotifiedAt time.Time `json:"notified_at"`
}

// Notification - внутреннее (in-app) уведомление пользователя
type Notification struct {
	ID        uuid.UUID         `json:"id"`
	UserID    string            `json:"user_id"`
	Title     string            `json:"title"`
	Body      string            `json:"body"`
	Type      string            `json:"type"`
	Data      map[string]string `json:"data,omitempty"`
	CreatedAt time.Time         `json:"created_at"`
}
