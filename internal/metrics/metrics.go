package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
)

// Collector агрегирует прометеевские метрики движка. Все методы сервисов
// принимают nil-коллектор, метрики при этом просто не пишутся.
type Collector struct {
	reg *prometheus.Registry

	RouteSearches      prometheus.Counter
	RouteSearchErrors  prometheus.Counter
	SearchDuration     prometheus.Histogram
	SettledStates      prometheus.Histogram
	IncidentsReported  prometheus.Counter
	IncidentsExpired   prometheus.Counter
	ActiveIncidents    prometheus.Gauge
	DelayPropagations  prometheus.Counter
	PropagationErrors  prometheus.Counter
	SweepTicks         prometheus.Counter
}

func NewCollector() *Collector {
	reg := prometheus.NewRegistry()

	c := &Collector{
		reg: reg,
		RouteSearches: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "routing_searches_total",
			Help: "Total route searches executed.",
		}),
		RouteSearchErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "routing_search_errors_total",
			Help: "Total route searches that failed.",
		}),
		SearchDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "routing_search_duration_seconds",
			Help:    "Wall-clock duration of a single station-pair search.",
			Buckets: prometheus.DefBuckets,
		}),
		SettledStates: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "routing_settled_states",
			Help:    "Number of settled search states per station-pair search.",
			Buckets: prometheus.ExponentialBuckets(16, 4, 8),
		}),
		IncidentsReported: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "incidents_reported_total",
			Help: "Total incidents reported.",
		}),
		IncidentsExpired: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "incidents_expired_total",
			Help: "Total incidents expired by the sweeper or manually.",
		}),
		ActiveIncidents: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "incidents_active",
			Help: "Number of currently active incidents.",
		}),
		DelayPropagations: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "incident_delay_propagations_total",
			Help: "Total journey delay increments/decrements applied.",
		}),
		PropagationErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "incident_delay_propagation_errors_total",
			Help: "Total per-journey delay updates that failed and were skipped.",
		}),
		SweepTicks: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "sweeper_ticks_total",
			Help: "Total sweeper ticks executed.",
		}),
	}

	reg.MustRegister(
		c.RouteSearches,
		c.RouteSearchErrors,
		c.SearchDuration,
		c.SettledStates,
		c.IncidentsReported,
		c.IncidentsExpired,
		c.ActiveIncidents,
		c.DelayPropagations,
		c.PropagationErrors,
		c.SweepTicks,
	)
	return c
}

// Serve запускает HTTP-листенер с /metrics; пустой addr отключает сервер
func (c *Collector) Serve(addr string, log *logrus.Logger) {
	if c == nil || addr == "" {
		return
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(c.reg, promhttp.HandlerOpts{}))
	go func() {
		if err := http.ListenAndServe(addr, mux); err != nil {
			log.WithError(err).Error("Metrics server stopped")
		}
	}()
}
