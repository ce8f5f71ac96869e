package models

import (
	"time"
)

// UserLocation представляет запись о проверке местоположения пользователя
type UserLocation struct {
	ID        int64     `json:"id"`
	UserID    string    `json:"user_id"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	CheckedAt time.Time `json:"checked_at"`
}
