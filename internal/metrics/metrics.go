package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "homeverse"

// Metrics holds the service's Prometheus collectors on a private registry
type Metrics struct {
	registry *prometheus.Registry

	Valuations      *prometheus.CounterVec
	ValuationPrice  *prometheus.HistogramVec
	RequestDuration *prometheus.HistogramVec
	TrainingSeconds prometheus.Gauge
	TrainingSamples prometheus.Gauge
	HistoryDropped  prometheus.Counter
	RequestErrors   *prometheus.CounterVec
}

func New() *Metrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{Namespace: namespace}),
		prometheus.NewGoCollector(),
	)

	m := &Metrics{
		registry: registry,
		Valuations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "valuations_total",
			Help:      "Number of properties valued, by detected zone and confidence.",
		}, []string{"zone", "confidence"}),
		ValuationPrice: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "valuation_price",
			Help:      "Distribution of valued property prices.",
			Buckets:   prometheus.ExponentialBuckets(500000, 2, 10),
		}, []string{"zone"}),
		RequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route", "status"}),
		TrainingSeconds: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "model_training_seconds",
			Help:      "Time spent fitting the valuation model.",
		}),
		TrainingSamples: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "model_training_samples",
			Help:      "Number of samples the valuation model was fitted on.",
		}),
		HistoryDropped: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "history_dropped_total",
			Help:      "Valuations not recorded because the history queue was full or closed.",
		}),
		RequestErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "request_errors_total",
			Help:      "Failed API requests, by route and kind.",
		}, []string{"route", "kind"}),
	}

	registry.MustRegister(
		m.Valuations,
		m.ValuationPrice,
		m.RequestDuration,
		m.TrainingSeconds,
		m.TrainingSamples,
		m.HistoryDropped,
		m.RequestErrors,
	)
	return m
}

// ObserveValuation records one priced property
func (m *Metrics) ObserveValuation(zone, confidence string, price int64) {
	m.Valuations.WithLabelValues(zone, confidence).Inc()
	m.ValuationPrice.WithLabelValues(zone).Observe(float64(price))
}

// ObserveTraining records the outcome of the model fit
func (m *Metrics) ObserveTraining(d time.Duration, samples int) {
	m.TrainingSeconds.Set(d.Seconds())
	m.TrainingSamples.Set(float64(samples))
}

// Middleware times every request by its route pattern
func (m *Metrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.RequestDuration.
			WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).
			Observe(time.Since(start).Seconds())
	}
}

// Handler serves the registry in the Prometheus text format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}
