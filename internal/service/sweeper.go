package service

import (
	"context"
	"time"

	"github.com/shenikar/transit_routing_system/internal/metrics"
	"github.com/sirupsen/logrus"
)

// Sweeper - периодическая задача, гасящая инциденты с истекшим расчетным
// временем разрешения. Работает независимо от обработки запросов и не
// блокирует поиск маршрутов.
type Sweeper struct {
	incidents IncidentService
	logger    *logrus.Logger
	interval  time.Duration
	metrics   *metrics.Collector
}

// NewSweeper создает новый Sweeper
func NewSweeper(incidents IncidentService, logger *logrus.Logger, interval time.Duration, collector *metrics.Collector) *Sweeper {
	return &Sweeper{
		incidents: incidents,
		logger:    logger,
		interval:  interval,
		metrics:   collector,
	}
}

// Start запускает горутину свипера; остановка — через отмену контекста
func (s *Sweeper) Start(ctx context.Context) {
	s.logger.WithField("interval", s.interval.String()).Info("Starting incident sweeper...")
	go func() {
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				s.logger.Info("Stopping incident sweeper.")
				return
			case <-ticker.C:
				s.sweep(ctx)
			}
		}
	}()
}

func (s *Sweeper) sweep(ctx context.Context) {
	if s.metrics != nil {
		s.metrics.SweepTicks.Inc()
	}
	expired, err := s.incidents.ExpireDueIncidents(ctx)
	if err != nil {
		s.logger.WithError(err).Error("Sweep pass failed")
		return
	}
	if expired > 0 {
		s.logger.WithField("expired", expired).Info("Sweep pass completed")
	}
}
