package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/transit_routing_system/internal/models"
	"github.com/shenikar/transit_routing_system/internal/service"
)

type IncidentRepository struct {
	db          *pgxpool.Pool
	redisClient *redis.Client
}

func NewIncidentRepository(db *pgxpool.Pool, redisClient *redis.Client) service.IncidentRepository {
	return &IncidentRepository{
		db:          db,
		redisClient: redisClient,
	}
}

// CreateIncident создает новую запись об инциденте в бд
func (r *IncidentRepository) CreateIncident(ctx context.Context, incident *models.IncidentLocation) error {
	query := `
		INSERT INTO incident_locations (location, active, type_id)
		VALUES (ST_SetSRID(ST_MakePoint($1, $2), 4326), TRUE, $3) RETURNING id, report_time, active;
	`
	err := r.db.QueryRow(ctx, query,
		incident.Longitude,
		incident.Latitude,
		incident.TypeID,
	).Scan(&incident.ID, &incident.ReportTime, &incident.Active)
	if err != nil {
		return fmt.Errorf("failed to create incident: %w", err)
	}
	return nil
}

// GetIncidentByID возвращает инцидент по его ID
func (r *IncidentRepository) GetIncidentByID(ctx context.Context, id int64) (*models.IncidentLocation, error) {
	incident := &models.IncidentLocation{}
	query := `
		SELECT
			id,
			report_time,
			ST_Y(location::geometry) as latitude,
			ST_X(location::geometry) as longitude,
			active,
			type_id
		FROM incident_locations
		WHERE id = $1;
	`
	err := r.db.QueryRow(ctx, query, id).Scan(
		&incident.ID,
		&incident.ReportTime,
		&incident.Latitude,
		&incident.Longitude,
		&incident.Active,
		&incident.TypeID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, service.ErrIncidentNotFound
		}
		return nil, fmt.Errorf("failed to get incident by id: %w", err)
	}
	return incident, nil
}

// DeactivateIncident устанавливает active=false. Возвращает false, если инцидент
// уже был неактивен: guard, защищающий ретракцию задержки от повторного выполнения.
func (r *IncidentRepository) DeactivateIncident(ctx context.Context, id int64) (bool, error) {
	query := `
		UPDATE incident_locations SET
			active = FALSE
		WHERE id = $1 AND active = TRUE;
	`
	cmdTag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return false, fmt.Errorf("failed to deactivate incident: %w", err)
	}
	return cmdTag.RowsAffected() > 0, nil
}

// IncidentsWithin находит активные инциденты в радиусе radiusMeters от точки,
// вместе с данными их типов
func (r *IncidentRepository) IncidentsWithin(ctx context.Context, lat, lon float64, radiusMeters int) ([]models.ActiveIncident, error) {
	query := `
		SELECT
			il.id,
			il.report_time,
			ST_Y(il.location::geometry) as latitude,
			ST_X(il.location::geometry) as longitude,
			il.active,
			il.type_id,
			it.type,
			it.description,
			it.severity,
			it.estimated_minutes
		FROM incident_locations il
		JOIN incident_types it ON it.id = il.type_id
		WHERE
			il.active = TRUE
			AND ST_DWithin(
				il.location,
				ST_SetSRID(ST_MakePoint($1, $2), 4326)::geography,
				$3
			);
	`
	rows, err := r.db.Query(ctx, query, lon, lat, radiusMeters)
	if err != nil {
		return nil, fmt.Errorf("failed to find active incidents by location: %w", err)
	}
	defer rows.Close()

	incidents := make([]models.ActiveIncident, 0)
	for rows.Next() {
		var incident models.ActiveIncident
		err := rows.Scan(
			&incident.ID,
			&incident.ReportTime,
			&incident.Latitude,
			&incident.Longitude,
			&incident.Active,
			&incident.TypeID,
			&incident.Type,
			&incident.Description,
			&incident.Severity,
			&incident.EstimatedMinutes,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan incident row in IncidentsWithin: %w", err)
		}
		incidents = append(incidents, incident)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration in IncidentsWithin: %w", err)
	}
	return incidents, nil
}

// ListActiveIncidents возвращает все активные инциденты с данными типов;
// используется свипером для проверки истечения
func (r *IncidentRepository) ListActiveIncidents(ctx context.Context) ([]models.ActiveIncident, error) {
	query := `
		SELECT
			il.id,
			il.report_time,
			ST_Y(il.location::geometry) as latitude,
			ST_X(il.location::geometry) as longitude,
			il.active,
			il.type_id,
			it.type,
			it.description,
			it.severity,
			it.estimated_minutes
		FROM incident_locations il
		JOIN incident_types it ON it.id = il.type_id
		WHERE il.active = TRUE
		ORDER BY il.report_time;
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list active incidents: %w", err)
	}
	defer rows.Close()

	incidents := make([]models.ActiveIncident, 0)
	for rows.Next() {
		var incident models.ActiveIncident
		err := rows.Scan(
			&incident.ID,
			&incident.ReportTime,
			&incident.Latitude,
			&incident.Longitude,
			&incident.Active,
			&incident.TypeID,
			&incident.Type,
			&incident.Description,
			&incident.Severity,
			&incident.EstimatedMinutes,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan incident row: %w", err)
		}
		incidents = append(incidents, incident)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return incidents, nil
}

// ListIncidents возвращает список инцидентов с пагинацией
func (r *IncidentRepository) ListIncidents(ctx context.Context, page, pageSize int) ([]*models.IncidentLocation, error) {
	// рассчитываем смещение
	offset := (page - 1) * pageSize

	query := `
		SELECT
			id,
			report_time,
			ST_Y(location::geometry) as latitude,
			ST_X(location::geometry) as longitude,
			active,
			type_id
		FROM incident_locations
		ORDER BY report_time DESC
		LIMIT $1 OFFSET $2;
	`
	rows, err := r.db.Query(ctx, query, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list incidents: %w", err)
	}
	defer rows.Close()

	incidents := make([]*models.IncidentLocation, 0)
	for rows.Next() {
		incident := &models.IncidentLocation{}
		err := rows.Scan(
			&incident.ID,
			&incident.ReportTime,
			&incident.Latitude,
			&incident.Longitude,
			&incident.Active,
			&incident.TypeID,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan incident row: %w", err)
		}
		incidents = append(incidents, incident)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return incidents, nil
}

// CreateIncidentType создает новый тип инцидента
func (r *IncidentRepository) CreateIncidentType(ctx context.Context, incidentType *models.IncidentType) error {
	query := `
		INSERT INTO incident_types (type, description, severity, estimated_minutes)
		VALUES ($1, $2, $3, $4) RETURNING id;
	`
	err := r.db.QueryRow(ctx, query,
		incidentType.Type,
		incidentType.Description,
		incidentType.Severity,
		incidentType.EstimatedMinutes,
	).Scan(&incidentType.ID)
	if err != nil {
		return fmt.Errorf("failed to create incident type: %w", err)
	}
	return nil
}

// GetIncidentType возвращает тип инцидента по ID
func (r *IncidentRepository) GetIncidentType(ctx context.Context, id int64) (*models.IncidentType, error) {
	incidentType := &models.IncidentType{}
	query := `
		SELECT id, type, description, severity, estimated_minutes
		FROM incident_types
		WHERE id = $1;
	`
	err := r.db.QueryRow(ctx, query, id).Scan(
		&incidentType.ID,
		&incidentType.Type,
		&incidentType.Description,
		&incidentType.Severity,
		&incidentType.EstimatedMinutes,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, service.ErrIncidentTypeNotFound
		}
		return nil, fmt.Errorf("failed to get incident type: %w", err)
	}
	return incidentType, nil
}

// ListIncidentTypes возвращает все типы инцидентов
func (r *IncidentRepository) ListIncidentTypes(ctx context.Context) ([]models.IncidentType, error) {
	query := `
		SELECT id, type, description, severity, estimated_minutes
		FROM incident_types
		ORDER BY id;
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list incident types: %w", err)
	}
	defer rows.Close()

	types := make([]models.IncidentType, 0)
	for rows.Next() {
		var incidentType models.IncidentType
		err := rows.Scan(
			&incidentType.ID,
			&incidentType.Type,
			&incidentType.Description,
			&incidentType.Severity,
			&incidentType.EstimatedMinutes,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan incident type row: %w", err)
		}
		types = append(types, incidentType)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return types, nil
}

// SaveUserLocation сохраняет запись о проверке местоположения в бд
func (r *IncidentRepository) SaveUserLocation(ctx context.Context, check *models.UserLocation) error {
	query := `
		INSERT INTO user_locations (user_id, location)
		VALUES ($1, ST_SetSRID(ST_MakePoint($2, $3), 4326)) RETURNING id, checked_at;
	`
	err := r.db.QueryRow(ctx, query,
		check.UserID,
		check.Longitude,
		check.Latitude,
	).Scan(&check.ID, &check.CheckedAt)
	if err != nil {
		return fmt.Errorf("failed to save user location: %w", err)
	}
	return nil
}

// GetLocationCheckStats возвращает количество уникальных пользователей, проверивших геолокацию
func (r *IncidentRepository) GetLocationCheckStats(ctx context.Context, minutes int) (int, error) {
	query := `
		SELECT COUNT(DISTINCT user_id)
		FROM user_locations
		WHERE checked_at >= NOW() - ($1 * INTERVAL '1 minute');
	`
	var count int
	err := r.db.QueryRow(ctx, query, minutes).Scan(&count)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to get location check stats: %w", err)
	}
	return count, nil
}

// GetIncidentTypeFromCache пытается получить тип инцидента из Redis
func (r *IncidentRepository) GetIncidentTypeFromCache(ctx context.Context, id int64) (*models.IncidentType, error) {
	key := fmt.Sprintf("incident_type:%d", id)
	val, err := r.redisClient.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get incident type from cache: %w", err)
	}

	incidentType := &models.IncidentType{}
	if err := json.Unmarshal(val, incidentType); err != nil {
		return nil, fmt.Errorf("failed to unmarshal incident type from cache: %w", err)
	}
	return incidentType, nil
}

// SetIncidentTypeCache сохраняет тип инцидента в Redis
func (r *IncidentRepository) SetIncidentTypeCache(ctx context.Context, incidentType *models.IncidentType) error {
	key := fmt.Sprintf("incident_type:%d", incidentType.ID)
	val, err := json.Marshal(incidentType)
	if err != nil {
		return fmt.Errorf("failed to marshal incident type for cache: %w", err)
	}
	// Типы инцидентов почти не меняются, держим кэш подольше
	if err := r.redisClient.Set(ctx, key, val, 30*time.Minute).Err(); err != nil {
		return fmt.Errorf("failed to set incident type in cache: %w", err)
	}
	return nil
}

// InvalidateIncidentTypeCache удаляет тип инцидента из Redis кэша
func (r *IncidentRepository) InvalidateIncidentTypeCache(ctx context.Context, id int64) error {
	key := fmt.Sprintf("incident_type:%d", id)
	if err := r.redisClient.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("failed to invalidate incident type cache: %w", err)
	}
	return nil
}
