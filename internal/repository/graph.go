package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/transit_routing_system/internal/models"
	"github.com/shenikar/transit_routing_system/internal/service"
)

// GraphRepository хранит транспортный граф в PostgreSQL/PostGIS
// и является единственным писателем его таблиц.
type GraphRepository struct {
	db *pgxpool.Pool
}

func NewGraphRepository(db *pgxpool.Pool) *GraphRepository {
	return &GraphRepository{
		db: db,
	}
}

// NearestStation возвращает ближайшую к точке станцию
func (r *GraphRepository) NearestStation(ctx context.Context, lat, lon float64) (*models.Station, error) {
	station := &models.Station{}
	query := `
		SELECT
			id,
			name,
			ST_Y(location::geometry) as latitude,
			ST_X(location::geometry) as longitude,
			route_id
		FROM stations
		ORDER BY location <-> ST_SetSRID(ST_MakePoint($1, $2), 4326)::geography
		LIMIT 1;
	`
	err := r.db.QueryRow(ctx, query, lon, lat).Scan(
		&station.ID,
		&station.Name,
		&station.Latitude,
		&station.Longitude,
		&station.RouteID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, service.ErrStationNotFound
		}
		return nil, fmt.Errorf("failed to find nearest station: %w", err)
	}
	return station, nil
}

// StationByID возвращает станцию по ее ID
func (r *GraphRepository) StationByID(ctx context.Context, id int64) (*models.Station, error) {
	station := &models.Station{}
	query := `
		SELECT
			id,
			name,
			ST_Y(location::geometry) as latitude,
			ST_X(location::geometry) as longitude,
			route_id
		FROM stations
		WHERE id = $1;
	`
	err := r.db.QueryRow(ctx, query, id).Scan(
		&station.ID,
		&station.Name,
		&station.Latitude,
		&station.Longitude,
		&station.RouteID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, service.ErrStationNotFound
		}
		return nil, fmt.Errorf("failed to get station by id: %w", err)
	}
	return station, nil
}

// StationsByName возвращает все станции с данным именем. Имя станции не
// глобально уникально: одна физическая остановка хранится отдельной строкой
// на каждый обслуживающий ее маршрут. Непустой agencyName сужает выборку
// до станций маршрутов этого агентства.
func (r *GraphRepository) StationsByName(ctx context.Context, name, agencyName string) ([]models.Station, error) {
	query := `
		SELECT
			s.id,
			s.name,
			ST_Y(s.location::geometry) as latitude,
			ST_X(s.location::geometry) as longitude,
			s.route_id
		FROM stations s
		JOIN route_names rn ON rn.id = s.route_id
		JOIN transport_agencies ta ON ta.id = rn.agency_id
		WHERE s.name = $1 AND ($2 = '' OR ta.name = $2);
	`
	rows, err := r.db.Query(ctx, query, name, agencyName)
	if err != nil {
		return nil, fmt.Errorf("failed to find stations by name: %w", err)
	}
	defer rows.Close()

	stations := make([]models.Station, 0)
	for rows.Next() {
		var station models.Station
		err := rows.Scan(
			&station.ID,
			&station.Name,
			&station.Latitude,
			&station.Longitude,
			&station.RouteID,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan station row: %w", err)
		}
		stations = append(stations, station)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error station iteration: %w", err)
	}
	return stations, nil
}

// JourneysAdjacent возвращает все ребра, инцидентные станции, вместе со
// станцией-соседом и метками маршрута/агентства пройденного ребра. Хранение
// направленное, но обход графа неориентированный, поэтому станция ищется
// и как origin, и как destination.
func (r *GraphRepository) JourneysAdjacent(ctx context.Context, stationID int64) ([]models.AdjacentJourney, error) {
	query := `
		SELECT
			j.id,
			n.id,
			n.name,
			ST_Y(n.location::geometry) as latitude,
			ST_X(n.location::geometry) as longitude,
			n.route_id,
			j.travel_seconds,
			j.delay_minutes,
			j.route_id,
			rn.name,
			rn.short_name,
			ta.id,
			ta.name
		FROM journeys j
		JOIN stations n ON n.id = CASE
			WHEN j.origin_station_id = $1 THEN j.destination_station_id
			ELSE j.origin_station_id
		END
		JOIN route_names rn ON rn.id = j.route_id
		JOIN transport_agencies ta ON ta.id = rn.agency_id
		WHERE j.origin_station_id = $1 OR j.destination_station_id = $1;
	`
	rows, err := r.db.Query(ctx, query, stationID)
	if err != nil {
		return nil, fmt.Errorf("failed to get adjacent journeys: %w", err)
	}
	defer rows.Close()

	edges := make([]models.AdjacentJourney, 0)
	for rows.Next() {
		var edge models.AdjacentJourney
		err := rows.Scan(
			&edge.JourneyID,
			&edge.Neighbor.ID,
			&edge.Neighbor.Name,
			&edge.Neighbor.Latitude,
			&edge.Neighbor.Longitude,
			&edge.Neighbor.RouteID,
			&edge.TravelSeconds,
			&edge.DelayMinutes,
			&edge.RouteID,
			&edge.RouteName,
			&edge.RouteShort,
			&edge.AgencyID,
			&edge.AgencyName,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan adjacent journey row: %w", err)
		}
		edges = append(edges, edge)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error journey iteration: %w", err)
	}
	return edges, nil
}

// StationsWithin возвращает станции в радиусе radiusMeters от точки
func (r *GraphRepository) StationsWithin(ctx context.Context, lat, lon float64, radiusMeters int) ([]models.Station, error) {
	query := `
		SELECT
			id,
			name,
			ST_Y(location::geometry) as latitude,
			ST_X(location::geometry) as longitude,
			route_id
		FROM stations
		WHERE ST_DWithin(
			location,
			ST_SetSRID(ST_MakePoint($1, $2), 4326)::geography,
			$3
		);
	`
	rows, err := r.db.Query(ctx, query, lon, lat, radiusMeters)
	if err != nil {
		return nil, fmt.Errorf("failed to find stations within radius: %w", err)
	}
	defer rows.Close()

	stations := make([]models.Station, 0)
	for rows.Next() {
		var station models.Station
		err := rows.Scan(
			&station.ID,
			&station.Name,
			&station.Latitude,
			&station.Longitude,
			&station.RouteID,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan station row in StationsWithin: %w", err)
		}
		stations = append(stations, station)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error station iteration in StationsWithin: %w", err)
	}
	return stations, nil
}

// AddJourneyDelay атомарно увеличивает задержку журнея на delayMinutes.
// Инкремент выполняется одним UPDATE: конкурирующие репорты инцидентов
// не теряют друг друга.
func (r *GraphRepository) AddJourneyDelay(ctx context.Context, journeyID, delayMinutes int64) error {
	query := `
		UPDATE journeys SET
			delay_minutes = delay_minutes + $1
		WHERE id = $2;
	`
	cmdTag, err := r.db.Exec(ctx, query, delayMinutes, journeyID)
	if err != nil {
		return fmt.Errorf("failed to add journey delay: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("journey with id %d not found for delay update", journeyID)
	}
	return nil
}

// SubtractJourneyDelay атомарно уменьшает задержку журнея, не опуская ее ниже нуля
func (r *GraphRepository) SubtractJourneyDelay(ctx context.Context, journeyID, delayMinutes int64) error {
	query := `
		UPDATE journeys SET
			delay_minutes = GREATEST(0, delay_minutes - $1)
		WHERE id = $2;
	`
	cmdTag, err := r.db.Exec(ctx, query, delayMinutes, journeyID)
	if err != nil {
		return fmt.Errorf("failed to subtract journey delay: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("journey with id %d not found for delay update", journeyID)
	}
	return nil
}

// GetOrCreateAgency возвращает агентство по имени, создавая его при отсутствии
func (r *GraphRepository) GetOrCreateAgency(ctx context.Context, name string) (*models.Agency, error) {
	agency := &models.Agency{Name: name}
	query := `
		INSERT INTO transport_agencies (name)
		VALUES ($1)
		ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
		RETURNING id;
	`
	if err := r.db.QueryRow(ctx, query, name).Scan(&agency.ID); err != nil {
		return nil, fmt.Errorf("failed to get or create agency: %w", err)
	}
	return agency, nil
}

// GetOrCreateRoute возвращает маршрут по имени, создавая его при отсутствии
func (r *GraphRepository) GetOrCreateRoute(ctx context.Context, name, shortName string, agencyID int64) (*models.Route, error) {
	route := &models.Route{Name: name, ShortName: shortName, AgencyID: agencyID}
	query := `
		INSERT INTO route_names (name, short_name, agency_id)
		VALUES ($1, $2, $3)
		ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
		RETURNING id;
	`
	if err := r.db.QueryRow(ctx, query, name, shortName, agencyID).Scan(&route.ID); err != nil {
		return nil, fmt.Errorf("failed to get or create route: %w", err)
	}
	return route, nil
}

// GetOrCreateStation возвращает станцию маршрута по имени, создавая ее при отсутствии
func (r *GraphRepository) GetOrCreateStation(ctx context.Context, name string, lat, lon float64, routeID int64) (*models.Station, error) {
	station := &models.Station{Name: name, Latitude: lat, Longitude: lon, RouteID: routeID}
	query := `
		INSERT INTO stations (name, location, route_id)
		VALUES ($1, ST_SetSRID(ST_MakePoint($2, $3), 4326), $4)
		ON CONFLICT (name, route_id) DO UPDATE SET name = EXCLUDED.name
		RETURNING id;
	`
	if err := r.db.QueryRow(ctx, query, name, lon, lat, routeID).Scan(&station.ID); err != nil {
		return nil, fmt.Errorf("failed to get or create station: %w", err)
	}
	return station, nil
}

// CreateJourney создает журней между двумя станциями
func (r *GraphRepository) CreateJourney(ctx context.Context, journey *models.Journey) error {
	query := `
		INSERT INTO journeys (origin_station_id, destination_station_id, travel_seconds, delay_minutes, route_id)
		VALUES ($1, $2, $3, 0, $4) RETURNING id;
	`
	err := r.db.QueryRow(ctx, query,
		journey.OriginStationID,
		journey.DestinationStationID,
		journey.TravelSeconds,
		journey.RouteID,
	).Scan(&journey.ID)
	if err != nil {
		return fmt.Errorf("failed to create journey: %w", err)
	}
	return nil
}
