package v1

import (
	"time"
)

// RouteByCoordinatesRequest DTO для поиска маршрута между двумя точками
// @Description DTO для поиска маршрута между двумя точками
type RouteByCoordinatesRequest struct {
	// Координаты валидируются только диапазоном: ноль (экватор, нулевой
	// меридиан) — допустимое значение, required его отверг бы
	OriginLatitude       float64 `json:"origin_latitude" validate:"latitude"`
	OriginLongitude      float64 `json:"origin_longitude" validate:"longitude"`
	DestinationLatitude  float64 `json:"destination_latitude" validate:"latitude"`
	DestinationLongitude float64 `json:"destination_longitude" validate:"longitude"`
}

// RouteByNamesRequest DTO для поиска маршрута между станциями по именам
// @Description DTO для поиска маршрута между станциями по именам
type RouteByNamesRequest struct {
	StartName   string `json:"start_name" validate:"required,min=1,max=255"`
	EndName     string `json:"end_name" validate:"required,min=1,max=255"`
	StartAgency string `json:"start_agency,omitempty"`
	EndAgency   string `json:"end_agency,omitempty"`
}

// StepEndpointResponse - конечная точка шага маршрута
type StepEndpointResponse struct {
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// RouteInfoResponse - метки маршрута и агентства шага
type RouteInfoResponse struct {
	Agency     string `json:"agency"`
	RouteLong  string `json:"route_long"`
	RouteShort string `json:"route_short"`
}

// RouteStepResponse - один шаг маршрута; форма полей является внешним контрактом
type RouteStepResponse struct {
	From            StepEndpointResponse `json:"from"`
	To              StepEndpointResponse `json:"to"`
	Time            int64                `json:"time"`
	TransferPenalty int64                `json:"transfer_penalty"`
	IsTransfer      bool                 `json:"is_transfer"`
	RouteInfo       RouteInfoResponse    `json:"route_info"`
}

// IncidentAlertResponse - активный инцидент рядом с маршрутом
type IncidentAlertResponse struct {
	IncidentID       int64   `json:"incident_id"`
	Type             string  `json:"type"`
	Description      string  `json:"description"`
	Severity         int     `json:"severity"`
	EstimatedMinutes int64   `json:"estimated_minutes"`
	Latitude         float64 `json:"latitude"`
	Longitude        float64 `json:"longitude"`
}

// RoutePlanResponse DTO для ответа с построенным маршрутом
// @Description DTO для ответа с построенным маршрутом
type RoutePlanResponse struct {
	TotalSeconds int64                   `json:"total_seconds"`
	Steps        []RouteStepResponse     `json:"steps"`
	Incidents    []IncidentAlertResponse `json:"incidents,omitempty"`
}

// ReportIncidentRequest DTO для репорта инцидента
// @Description DTO для репорта инцидента
type ReportIncidentRequest struct {
	TypeID    int64   `json:"type_id" validate:"required,gt=0"`
	Latitude  float64 `json:"latitude" validate:"latitude"`
	Longitude float64 `json:"longitude" validate:"longitude"`
}

// IncidentResponse DTO для ответа с информацией об инциденте
// @Description DTO для ответа с информацией об инциденте
type IncidentResponse struct {
	ID         int64     `json:"id"`
	ReportTime time.Time `json:"report_time"`
	Latitude   float64   `json:"latitude"`
	Longitude  float64   `json:"longitude"`
	Active     bool      `json:"active"`
	TypeID     int64     `json:"type_id"`
}

// CreateIncidentTypeRequest DTO для создания типа инцидента
// @Description DTO для создания типа инцидента
type CreateIncidentTypeRequest struct {
	Type             string `json:"type" validate:"required,min=2,max=255"`
	Description      string `json:"description,omitempty"`
	Severity         int    `json:"severity" validate:"required,gt=0"`
	EstimatedMinutes int64  `json:"estimated_minutes" validate:"required,gt=0"`
}

// IncidentTypeResponse DTO для ответа с типом инцидента
// @Description DTO для ответа с типом инцидента
type IncidentTypeResponse struct {
	ID               int64  `json:"id"`
	Type             string `json:"type"`
	Description      string `json:"description,omitempty"`
	Severity         int    `json:"severity"`
	EstimatedMinutes int64  `json:"estimated_minutes"`
}

// LocationCheckRequest DTO для проверки координат
// @Description DTO для проверки координат
type LocationCheckRequest struct {
	UserID    string  `json:"user_id" validate:"required"`
	Latitude  float64 `json:"latitude" validate:"latitude"`
	Longitude float64 `json:"longitude" validate:"longitude"`
}

// ActiveIncidentResponse DTO для активного инцидента с данными типа
// @Description DTO для активного инцидента с данными типа
type ActiveIncidentResponse struct {
	IncidentResponse
	Type             string `json:"type"`
	Description      string `json:"description"`
	Severity         int    `json:"severity"`
	EstimatedMinutes int64  `json:"estimated_minutes"`
}

// StatsResponse DTO для ответа со статистикой
// @Description DTO для ответа со статистикой
type StatsResponse struct {
	UserCount int `json:"user_count"`
}
