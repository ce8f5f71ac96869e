package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shenikar/transit_routing_system/internal/config"
	"github.com/shenikar/transit_routing_system/internal/metrics"
	"github.com/shenikar/transit_routing_system/internal/models"
	"github.com/shenikar/transit_routing_system/internal/webhook"
	"github.com/sirupsen/logrus"
)

// IncidentRepository определяет контракт для работы с бд инцидентов
type IncidentRepository interface {
	CreateIncident(ctx context.Context, incident *models.IncidentLocation) error
	GetIncidentByID(ctx context.Context, id int64) (*models.IncidentLocation, error)
	DeactivateIncident(ctx context.Context, id int64) (bool, error)
	IncidentsWithin(ctx context.Context, lat, lon float64, radiusMeters int) ([]models.ActiveIncident, error)
	ListActiveIncidents(ctx context.Context) ([]models.ActiveIncident, error)
	ListIncidents(ctx context.Context, page, pageSize int) ([]*models.IncidentLocation, error)
	CreateIncidentType(ctx context.Context, incidentType *models.IncidentType) error
	GetIncidentType(ctx context.Context, id int64) (*models.IncidentType, error)
	ListIncidentTypes(ctx context.Context) ([]models.IncidentType, error)
	SaveUserLocation(ctx context.Context, check *models.UserLocation) error
	GetLocationCheckStats(ctx context.Context, minutes int) (int, error)
	GetIncidentTypeFromCache(ctx context.Context, id int64) (*models.IncidentType, error)
	SetIncidentTypeCache(ctx context.Context, incidentType *models.IncidentType) error
	InvalidateIncidentTypeCache(ctx context.Context, id int64) error
}

// IncidentService определяет контракт для бизнес-логики управления инцидентами
type IncidentService interface {
	ReportIncident(ctx context.Context, typeID int64, lat, lon float64) (*models.IncidentLocation, error)
	ExpireIncident(ctx context.Context, id int64) error
	ExpireDueIncidents(ctx context.Context) (int, error)
	ActiveIncidentsNear(ctx context.Context, steps []models.RouteStep) ([]models.IncidentAlert, error)
	CreateIncidentType(ctx context.Context, incidentType *models.IncidentType) error
	ListIncidentTypes(ctx context.Context) ([]models.IncidentType, error)
	ListIncidents(ctx context.Context, page, pageSize int) ([]*models.IncidentLocation, error)
	CheckLocation(ctx context.Context, userID string, lat, lon float64) ([]models.ActiveIncident, error)
	GetStats(ctx context.Context) (int, error)
}

type incidentService struct {
	repo      IncidentRepository
	graphRepo GraphRepository
	logger    *logrus.Logger
	cfg       *config.Config
	publisher webhook.EventPublisher
	metrics   *metrics.Collector
}

func NewIncidentService(repo IncidentRepository, graphRepo GraphRepository, logger *logrus.Logger, cfg *config.Config, publisher webhook.EventPublisher, collector *metrics.Collector) IncidentService {
	return &incidentService{
		repo:      repo,
		graphRepo: graphRepo,
		logger:    logger,
		cfg:       cfg,
		publisher: publisher,
		metrics:   collector,
	}
}

// ReportIncident регистрирует инцидент и распространяет задержку его типа
// на все журнеи, у которых хотя бы одна конечная станция лежит в радиусе
// от точки инцидента. Запись об инциденте создается даже при осиротевшем
// type_id — тогда распространение пропускается.
func (s *incidentService) ReportIncident(ctx context.Context, typeID int64, lat, lon float64) (*models.IncidentLocation, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "incident",
		"method":  "ReportIncident",
		"type_id": typeID,
	})
	log.Info("Attempting to report a new incident")

	incident := &models.IncidentLocation{
		Latitude:  lat,
		Longitude: lon,
		TypeID:    typeID,
	}
	if err := s.repo.CreateIncident(ctx, incident); err != nil {
		log.WithError(err).Error("Failed to create incident in repository")
		return nil, fmt.Errorf("service: could not create incident: %w", err)
	}
	if s.metrics != nil {
		s.metrics.IncidentsReported.Inc()
		s.metrics.ActiveIncidents.Inc()
	}

	incidentType, err := s.getIncidentType(ctx, typeID)
	if err != nil {
		if errors.Is(err, ErrIncidentTypeNotFound) {
			// Инцидент уже записан; без типа нечего распространять
			log.Warn("Incident type does not exist, skipping delay propagation")
			return incident, nil
		}
		log.WithError(err).Error("Failed to load incident type")
		return nil, fmt.Errorf("service: could not load incident type: %w", err)
	}

	affected := s.propagateDelay(ctx, incident, incidentType.EstimatedMinutes, false)
	log.WithFields(logrus.Fields{
		"incident_id":       incident.ID,
		"affected_journeys": affected,
	}).Info("Incident reported successfully")

	s.publishEvent(ctx, webhook.EventIncidentReported, incident, affected)
	return incident, nil
}

// ExpireIncident деактивирует инцидент и откатывает его вклад в задержки.
// Повторный вызов безопасен: уже неактивный инцидент не ретрагируется второй раз.
func (s *incidentService) ExpireIncident(ctx context.Context, id int64) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "incident",
		"method":      "ExpireIncident",
		"incident_id": id,
	})
	log.Info("Attempting to expire incident")

	incident, err := s.repo.GetIncidentByID(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Attempted to expire a non-existent incident")
		return fmt.Errorf("service: incident with id %d not found for expire: %w", id, err)
	}

	deactivated, err := s.repo.DeactivateIncident(ctx, id)
	if err != nil {
		log.WithError(err).Error("Failed to deactivate incident in repository")
		return fmt.Errorf("service: could not deactivate incident: %w", err)
	}
	if !deactivated {
		// Инцидент уже был неактивен: ретракция выполнена ранее
		log.Info("Incident already inactive, skipping delay retraction")
		return nil
	}
	if s.metrics != nil {
		s.metrics.IncidentsExpired.Inc()
		s.metrics.ActiveIncidents.Dec()
	}

	incidentType, err := s.getIncidentType(ctx, incident.TypeID)
	if err != nil {
		if errors.Is(err, ErrIncidentTypeNotFound) {
			log.Warn("Incident type does not exist, skipping delay retraction")
			return nil
		}
		log.WithError(err).Error("Failed to load incident type")
		return fmt.Errorf("service: could not load incident type: %w", err)
	}

	affected := s.propagateDelay(ctx, incident, incidentType.EstimatedMinutes, true)
	log.WithField("affected_journeys", affected).Info("Incident expired successfully")

	s.publishEvent(ctx, webhook.EventIncidentExpired, incident, affected)
	return nil
}

// ExpireDueIncidents просматривает все активные инциденты и гасит те, чье
// расчетное время разрешения уже прошло. Возвращает число погашенных.
func (s *incidentService) ExpireDueIncidents(ctx context.Context) (int, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "incident",
		"method":  "ExpireDueIncidents",
	})

	active, err := s.repo.ListActiveIncidents(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to list active incidents")
		return 0, fmt.Errorf("service: could not list active incidents: %w", err)
	}

	now := time.Now()
	expired := 0
	for _, incident := range active {
		elapsed := now.Sub(incident.ReportTime)
		if elapsed < time.Duration(incident.EstimatedMinutes)*time.Minute {
			continue
		}
		if err := s.ExpireIncident(ctx, incident.ID); err != nil {
			// Ошибка по одному инциденту не останавливает проход
			log.WithError(err).WithField("incident_id", incident.ID).Error("Failed to expire due incident")
			continue
		}
		expired++
	}

	if expired > 0 {
		log.WithField("expired", expired).Info("Due incidents expired")
	}
	return expired, nil
}

// ActiveIncidentsNear находит активные инциденты в радиусе от начальных станций
// шагов маршрута; дубликаты по ID инцидента схлопываются
func (s *incidentService) ActiveIncidentsNear(ctx context.Context, steps []models.RouteStep) ([]models.IncidentAlert, error) {
	seen := make(map[int64]bool)
	alerts := make([]models.IncidentAlert, 0)

	for _, step := range steps {
		incidents, err := s.repo.IncidentsWithin(ctx, step.From.Latitude, step.From.Longitude, s.cfg.IncidentRadiusMeters)
		if err != nil {
			return nil, fmt.Errorf("service: failed to find incidents near step: %w", err)
		}
		for _, incident := range incidents {
			if seen[incident.ID] {
				continue
			}
			seen[incident.ID] = true
			alerts = append(alerts, models.IncidentAlert{
				IncidentID:       incident.ID,
				Type:             incident.Type,
				Description:      incident.Description,
				Severity:         incident.Severity,
				EstimatedMinutes: incident.EstimatedMinutes,
				Latitude:         incident.Latitude,
				Longitude:        incident.Longitude,
			})
		}
	}
	return alerts, nil
}

// CreateIncidentType создает тип инцидента
func (s *incidentService) CreateIncidentType(ctx context.Context, incidentType *models.IncidentType) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "incident",
		"method":  "CreateIncidentType",
		"type":    incidentType.Type,
	})
	log.Info("Attempting to create a new incident type")

	if incidentType.Severity <= 0 || incidentType.EstimatedMinutes <= 0 {
		return fmt.Errorf("service: severity and estimated_minutes must be positive")
	}

	if err := s.repo.CreateIncidentType(ctx, incidentType); err != nil {
		log.WithError(err).Error("Failed to create incident type in repository")
		return fmt.Errorf("service: could not create incident type: %w", err)
	}

	if err := s.repo.InvalidateIncidentTypeCache(ctx, incidentType.ID); err != nil {
		log.WithError(err).Warn("Failed to invalidate incident type cache")
	}

	log.WithField("type_id", incidentType.ID).Info("Incident type created successfully")
	return nil
}

// ListIncidentTypes возвращает все типы инцидентов
func (s *incidentService) ListIncidentTypes(ctx context.Context) ([]models.IncidentType, error) {
	types, err := s.repo.ListIncidentTypes(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: could not list incident types: %w", err)
	}
	return types, nil
}

// ListIncidents возвращает список инцидентов с пагинацией
func (s *incidentService) ListIncidents(ctx context.Context, page, pageSize int) ([]*models.IncidentLocation, error) {
	if page < 1 {
		page = 1
	}

	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	log := s.logger.WithFields(logrus.Fields{
		"service":   "incident",
		"method":    "ListIncidents",
		"page":      page,
		"page_size": pageSize,
	})
	log.Info("Listing incidents")

	incidents, err := s.repo.ListIncidents(ctx, page, pageSize)
	if err != nil {
		log.WithError(err).Error("Failed to list incidents from repository")
		return nil, fmt.Errorf("service: could not list incidents: %w", err)
	}

	log.WithField("count", len(incidents)).Info("Incidents listed successfully")
	return incidents, nil
}

// CheckLocation сохраняет позицию пользователя и возвращает активные инциденты поблизости
func (s *incidentService) CheckLocation(ctx context.Context, userID string, lat, lon float64) ([]models.ActiveIncident, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "incident",
		"method":  "CheckLocation",
		"user_id": userID,
	})
	log.Info("Checking user location")

	check := &models.UserLocation{UserID: userID, Latitude: lat, Longitude: lon}
	if err := s.repo.SaveUserLocation(ctx, check); err != nil {
		// Трекинг не должен ломать проверку местоположения
		log.WithError(err).Warn("Failed to save user location")
	}

	incidents, err := s.repo.IncidentsWithin(ctx, lat, lon, s.cfg.IncidentRadiusMeters)
	if err != nil {
		log.WithError(err).Error("Failed to find active incidents by location")
		return nil, fmt.Errorf("service: failed to find active incidents: %w", err)
	}
	log.WithField("is_danger", len(incidents) > 0).Info("Location check completed")

	return incidents, nil
}

// GetStats возвращает число уникальных пользователей за окно статистики
func (s *incidentService) GetStats(ctx context.Context) (int, error) {
	count, err := s.repo.GetLocationCheckStats(ctx, s.cfg.StatsTimeWindowMinutes)
	if err != nil {
		return 0, fmt.Errorf("service: could not get stats: %w", err)
	}
	return count, nil
}

// getIncidentType читает тип инцидента через Redis-кэш
func (s *incidentService) getIncidentType(ctx context.Context, id int64) (*models.IncidentType, error) {
	cached, err := s.repo.GetIncidentTypeFromCache(ctx, id)
	if err != nil {
		s.logger.WithError(err).Warn("Failed to read incident type cache")
	}
	if cached != nil {
		return cached, nil
	}

	incidentType, err := s.repo.GetIncidentType(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.repo.SetIncidentTypeCache(ctx, incidentType); err != nil {
		s.logger.WithError(err).Warn("Failed to set incident type cache")
	}
	return incidentType, nil
}

// propagateDelay применяет (или откатывает, retract=true) delayMinutes к каждому
// журнею, смежному хотя бы с одной станцией в радиусе от инцидента. Инкремент
// и декремент атомарны на уровне SQL; отказ по одному журнею логируется и
// пропускается — частичное распространение лучше, чем его отсутствие.
// Возвращает число затронутых журнеев.
func (s *incidentService) propagateDelay(ctx context.Context, incident *models.IncidentLocation, delayMinutes int64, retract bool) int {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "incident",
		"incident_id": incident.ID,
		"retract":     retract,
	})

	stations, err := s.graphRepo.StationsWithin(ctx, incident.Latitude, incident.Longitude, s.cfg.IncidentRadiusMeters)
	if err != nil {
		log.WithError(err).Error("Failed to find stations near incident")
		return 0
	}

	// Один журней может быть смежен нескольким станциям в радиусе,
	// задержка применяется к нему ровно один раз
	seen := make(map[int64]bool)
	affected := 0
	for _, station := range stations {
		journeys, err := s.graphRepo.JourneysAdjacent(ctx, station.ID)
		if err != nil {
			log.WithError(err).WithField("station_id", station.ID).Error("Failed to load adjacent journeys")
			continue
		}
		for _, journey := range journeys {
			if seen[journey.JourneyID] {
				continue
			}
			seen[journey.JourneyID] = true

			if retract {
				err = s.graphRepo.SubtractJourneyDelay(ctx, journey.JourneyID, delayMinutes)
			} else {
				err = s.graphRepo.AddJourneyDelay(ctx, journey.JourneyID, delayMinutes)
			}
			if err != nil {
				log.WithError(err).WithField("journey_id", journey.JourneyID).Error("Failed to update journey delay")
				if s.metrics != nil {
					s.metrics.PropagationErrors.Inc()
				}
				continue
			}
			if s.metrics != nil {
				s.metrics.DelayPropagations.Inc()
			}
			affected++
		}
	}
	return affected
}

// publishEvent отправляет событие жизненного цикла инцидента в очередь вебхуков
func (s *incidentService) publishEvent(ctx context.Context, kind string, incident *models.IncidentLocation, affected int) {
	if s.publisher == nil {
		return
	}
	event := webhook.IncidentEvent{
		Kind:             kind,
		IncidentID:       incident.ID,
		TypeID:           incident.TypeID,
		Latitude:         incident.Latitude,
		Longitude:        incident.Longitude,
		AffectedJourneys: affected,
		Timestamp:        time.Now(),
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.logger.WithError(err).Warn("Failed to publish incident event")
	}
}
