package models

// StepEndpoint — конечная точка шага маршрута.
// Форма JSON-полей фиксирована: от нее зависят внешние потребители.
type StepEndpoint struct {
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// RouteInfo — метки маршрута и агентства пройденного ребра
type RouteInfo struct {
	Agency     string `json:"agency"`
	RouteLong  string `json:"route_long"`
	RouteShort string `json:"route_short"`
}

// RouteStep — один шаг построенного маршрута. Time и TransferPenalty в секундах.
type RouteStep struct {
	From            StepEndpoint `json:"from"`
	To              StepEndpoint `json:"to"`
	Time            int64        `json:"time"`
	TransferPenalty int64        `json:"transfer_penalty"`
	IsTransfer      bool         `json:"is_transfer"`
	RouteInfo       RouteInfo    `json:"route_info"`
}

// IncidentAlert — активный инцидент рядом с маршрутом, которым
// аннотируется результат поиска
type IncidentAlert struct {
	IncidentID       int64   `json:"incident_id"`
	Type             string  `json:"type"`
	Description      string  `json:"description"`
	Severity         int     `json:"severity"`
	EstimatedMinutes int64   `json:"estimated_minutes"`
	Latitude         float64 `json:"latitude"`
	Longitude        float64 `json:"longitude"`
}

// RoutePlan — итог поиска: суммарное время в секундах, шаги и инциденты поблизости
type RoutePlan struct {
	TotalSeconds int64           `json:"total_seconds"`
	Steps        []RouteStep     `json:"steps"`
	Incidents    []IncidentAlert `json:"incidents,omitempty"`
}
