package models

import (
	"time"
)

// TrackingConfig - локальная конфигурация трекинга, принадлежит устройству.
// Читается планировщиком захвата, пишется настройками пользователя.
type TrackingConfig struct {
	UserID                 string `json:"user_id"`
	GroupID                string `json:"group_id"`
	SharingEnabled         bool   `json:"sharing_enabled"`
	UpdateFrequencyMinutes int    `json:"update_frequency_minutes"`
}

// LocationFix - одно измерение координат от провайдера геолокации ОС
type LocationFix struct {
	Latitude   float64   `json:"latitude"`
	Longitude  float64   `json:"longitude"`
	Accuracy   float64   `json:"accuracy,omitempty"`
	Address    string    `json:"address,omitempty"`
	CapturedAt time.Time `json:"captured_at"`
}

// LocationHistoryRecord - неизменяемая запись истории местоположений.
// Только вставка, записи никогда не обновляются этим модулем.
type LocationHistoryRecord struct {
	ID        int64     `json:"id"`
	UserID    string    `json:"user_id"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	Accuracy  float64   `json:"accuracy,omitempty"`
	Address   string    `json:"address,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// LivePosition - текущее местоположение, перезаписывается на каждом фиксе
// при включенном шаринге
type LivePosition struct {
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	Address   string    `json:"address,omitempty"`
	UpdatedAt time.Time `json:"updated_at"`
}
