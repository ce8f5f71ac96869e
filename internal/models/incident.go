package models

import (
	"time"
)

// IncidentType представляет категорию инцидента.
// EstimatedMinutes — ожидаемая длительность сбоя в минутах; на столько же
// увеличивается задержка затронутых журней при репорте.
type IncidentType struct {
	ID               int64  `json:"id"`
	Type             string `json:"type"`
	Description      string `json:"description"`
	Severity         int    `json:"severity"`
	EstimatedMinutes int64  `json:"estimated_minutes"`
}

// IncidentLocation представляет зарегистрированный инцидент.
// Жизненный цикл: создается active=true; становится active=false, когда
// now - report_time >= estimated_minutes; обратно не активируется.
type IncidentLocation struct {
	ID         int64     `json:"id"`
	ReportTime time.Time `json:"report_time"`
	Latitude   float64   `json:"latitude"`
	Longitude  float64   `json:"longitude"`
	Active     bool      `json:"active"`
	TypeID     int64     `json:"type_id"`
}

// ActiveIncident — активный инцидент вместе с данными его типа,
// как он возвращается из запросов по радиусу.
type ActiveIncident struct {
	IncidentLocation
	Type             string `json:"type"`
	Description      string `json:"description"`
	Severity         int    `json:"severity"`
	EstimatedMinutes int64  `json:"estimated_minutes"`
}
