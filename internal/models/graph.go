package models

// Agency представляет транспортное агентство, владеющее маршрутами
type Agency struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Route представляет маршрутную линию, принадлежащую одному агентству
type Route struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	ShortName string `json:"short_name"`
	AgencyID  int64  `json:"agency_id"`
}

// Station представляет остановку, привязанную ровно к одному маршруту.
// Одна и та же физическая остановка, обслуживаемая несколькими маршрутами,
// хранится отдельными строками с одинаковым именем.
type Station struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	RouteID   int64   `json:"route_id"`
}

// Journey представляет направленное ребро между двумя станциями.
// DelayMinutes — накопленная задержка от активных инцидентов, всегда >= 0.
type Journey struct {
	ID                   int64 `json:"id"`
	OriginStationID      int64 `json:"origin_station_id"`
	DestinationStationID int64 `json:"destination_station_id"`
	TravelSeconds        int64 `json:"travel_seconds"`
	DelayMinutes         int64 `json:"delay_minutes"`
	RouteID              int64 `json:"route_id"`
}

// AdjacentJourney — ребро, как его видит поиск маршрута: сосед по графу
// плюс метки маршрута и агентства пройденного ребра. Граф обходится как
// неориентированный, поэтому Neighbor может быть как origin, так и destination.
type AdjacentJourney struct {
	JourneyID     int64
	Neighbor      Station
	TravelSeconds int64
	DelayMinutes  int64
	RouteID       int64
	RouteName     string
	RouteShort    string
	AgencyID      int64
	AgencyName    string
}
