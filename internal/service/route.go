package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shenikar/transit_routing_system/internal/config"
	"github.com/shenikar/transit_routing_system/internal/metrics"
	"github.com/shenikar/transit_routing_system/internal/models"
	"github.com/sirupsen/logrus"
)

// GraphRepository определяет контракт для работы с бд транспортного графа
type GraphRepository interface {
	NearestStation(ctx context.Context, lat, lon float64) (*models.Station, error)
	StationByID(ctx context.Context, id int64) (*models.Station, error)
	StationsByName(ctx context.Context, name, agencyName string) ([]models.Station, error)
	JourneysAdjacent(ctx context.Context, stationID int64) ([]models.AdjacentJourney, error)
	StationsWithin(ctx context.Context, lat, lon float64, radiusMeters int) ([]models.Station, error)
	AddJourneyDelay(ctx context.Context, journeyID, delayMinutes int64) error
	SubtractJourneyDelay(ctx context.Context, journeyID, delayMinutes int64) error
}

// IncidentAnnotator аннотирует построенный маршрут активными инцидентами поблизости
type IncidentAnnotator interface {
	ActiveIncidentsNear(ctx context.Context, steps []models.RouteStep) ([]models.IncidentAlert, error)
}

// RouteService определяет контракт для поиска маршрутов
type RouteService interface {
	FindRouteByCoordinates(ctx context.Context, originLat, originLon, destLat, destLon float64) (*models.RoutePlan, error)
	FindRouteByNames(ctx context.Context, startName, endName, startAgency, endAgency string) (*models.RoutePlan, error)
}

type routeService struct {
	graphRepo GraphRepository
	annotator IncidentAnnotator
	logger    *logrus.Logger
	metrics   *metrics.Collector

	agencyChangePenalty int64
	routeChangePenalty  int64
	maxSettled          int
	searchTimeout       time.Duration
}

func NewRouteService(graphRepo GraphRepository, annotator IncidentAnnotator, logger *logrus.Logger, cfg *config.Config, collector *metrics.Collector) RouteService {
	return &routeService{
		graphRepo:           graphRepo,
		annotator:           annotator,
		logger:              logger,
		metrics:             collector,
		agencyChangePenalty: cfg.AgencyChangePenaltySec,
		routeChangePenalty:  cfg.RouteChangePenaltySec,
		maxSettled:          cfg.SearchMaxSettled,
		searchTimeout:       cfg.SearchTimeout,
	}
}

// FindRouteByCoordinates находит маршрут между двумя точками: каждая координата
// резолвится в ближайшую станцию, дальше — поиск между парой станций
func (s *routeService) FindRouteByCoordinates(ctx context.Context, originLat, originLon, destLat, destLon float64) (*models.RoutePlan, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "route",
		"method":  "FindRouteByCoordinates",
	})
	log.Info("Resolving coordinates to nearest stations")

	origin, err := s.graphRepo.NearestStation(ctx, originLat, originLon)
	if err != nil {
		log.WithError(err).Warn("Failed to resolve origin coordinate")
		return nil, fmt.Errorf("service: could not resolve origin: %w", err)
	}
	dest, err := s.graphRepo.NearestStation(ctx, destLat, destLon)
	if err != nil {
		log.WithError(err).Warn("Failed to resolve destination coordinate")
		return nil, fmt.Errorf("service: could not resolve destination: %w", err)
	}

	plan, err := s.searchPair(ctx, origin.ID, dest.ID)
	if err != nil {
		return nil, err
	}
	return s.annotate(ctx, plan), nil
}

// FindRouteByNames находит маршрут между двумя станциями по именам. Имена не
// глобально уникальны, поэтому поиск веером перебирает каждую пару
// (станция старта × станция финиша) и оставляет глобальный минимум.
// Пары, где старт и финиш резолвятся в одну станцию, пропускаются.
func (s *routeService) FindRouteByNames(ctx context.Context, startName, endName, startAgency, endAgency string) (*models.RoutePlan, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "route",
		"method":  "FindRouteByNames",
		"start":   startName,
		"end":     endName,
	})
	log.Info("Searching route between named stations")

	startStations, err := s.graphRepo.StationsByName(ctx, startName, startAgency)
	if err != nil {
		return nil, fmt.Errorf("service: could not resolve start name: %w", err)
	}
	endStations, err := s.graphRepo.StationsByName(ctx, endName, endAgency)
	if err != nil {
		return nil, fmt.Errorf("service: could not resolve end name: %w", err)
	}
	if len(startStations) == 0 || len(endStations) == 0 {
		return nil, ErrStationNotFound
	}

	var best *models.RoutePlan
	for _, start := range startStations {
		for _, end := range endStations {
			if start.ID == end.ID {
				continue
			}
			plan, err := s.searchPair(ctx, start.ID, end.ID)
			if err != nil {
				if errors.Is(err, ErrNoRoute) {
					continue
				}
				return nil, err
			}
			if best == nil || plan.TotalSeconds < best.TotalSeconds {
				best = plan
			}
		}
	}
	if best == nil {
		return nil, ErrNoRoute
	}

	log.WithField("total_seconds", best.TotalSeconds).Info("Route found")
	return s.annotate(ctx, best), nil
}

// searchPair запускает поиск между парой станций под таймаутом и бюджетом состояний
func (s *routeService) searchPair(ctx context.Context, startID, destID int64) (*models.RoutePlan, error) {
	if startID == destID {
		return &models.RoutePlan{TotalSeconds: 0, Steps: []models.RouteStep{}}, nil
	}

	searchCtx := ctx
	if s.searchTimeout > 0 {
		var cancel context.CancelFunc
		searchCtx, cancel = context.WithTimeout(ctx, s.searchTimeout)
		defer cancel()
	}

	started := time.Now()
	plan, err := s.shortestPath(searchCtx, startID, destID)
	if s.metrics != nil {
		s.metrics.RouteSearches.Inc()
		s.metrics.SearchDuration.Observe(time.Since(started).Seconds())
		if err != nil && !errors.Is(err, ErrNoRoute) {
			s.metrics.RouteSearchErrors.Inc()
		}
	}
	if err != nil {
		return nil, err
	}
	return plan, nil
}

// annotate прикрепляет к маршруту активные инциденты поблизости.
// Аннотация — best-effort: ее отказ не ломает найденный маршрут.
func (s *routeService) annotate(ctx context.Context, plan *models.RoutePlan) *models.RoutePlan {
	if s.annotator == nil || len(plan.Steps) == 0 {
		return plan
	}
	alerts, err := s.annotator.ActiveIncidentsNear(ctx, plan.Steps)
	if err != nil {
		s.logger.WithError(err).Warn("Failed to annotate route with incidents")
		return plan
	}
	plan.Incidents = alerts
	return plan
}
