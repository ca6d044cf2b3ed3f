package models

import (
	"time"
)

// Статусы чек-инов, приходящие по живому каналу
const (
	CheckInStatusSafe      = "safe"
	CheckInStatusEmergency = "emergency"
	CheckInStatusMissed    = "missed"
)

// CheckIn - социальный сигнал "я в порядке / мне нужна помощь" от
// доверенного контакта
type CheckIn struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Status    string    `json:"status"`
	Message   string    `json:"message,omitempty"`
	DueAt     time.Time `json:"due_at,omitempty"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TravelAdvisory - предупреждение о маршруте/районе с оценкой риска
type TravelAdvisory struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Region    string    `json:"region"`
	RiskScore float64   `json:"risk_score"`
	Summary   string    `json:"summary,omitempty"`
	UpdatedAt time.Time `json:"updated_at"`
}
