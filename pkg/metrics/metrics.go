package metrics

import (
	"database/sql"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Исходы операций, используемые в лейблах outcome
const (
	OutcomeSuccess     = "success"
	OutcomeValidation  = "validation_error"
	OutcomeGuard       = "guard"
	OutcomeConflict    = "conflict"
	OutcomeUnavailable = "store_unavailable"
	OutcomeError       = "error"
)

// Metrics набор prometheus-метрик сервиса.
// Методы безопасно вызывать на nil (метрики выключены в конфиге).
type Metrics struct {
	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec
	searches     *prometheus.CounterVec
	submissions  *prometheus.CounterVec
	conflicts    *prometheus.CounterVec
	registerer   prometheus.Registerer
}

// New создает метрики и регистрирует их в prometheus.DefaultRegisterer
func New(serviceName string) *Metrics {
	return NewWithRegisterer(prometheus.DefaultRegisterer, serviceName)
}

// NewWithRegisterer создает метрики в указанном регистре (используется в тестах)
func NewWithRegisterer(reg prometheus.Registerer, serviceName string) *Metrics {
	factory := promauto.With(reg)
	constLabels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		httpRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   "celerpark",
			Name:        "http_requests_total",
			Help:        "HTTP requests by method, route and status code.",
			ConstLabels: constLabels,
		}, []string{"method", "route", "status"}),
		httpDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace:   "celerpark",
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request latency by method and route.",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "route"}),
		searches: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   "celerpark",
			Name:        "slot_searches_total",
			Help:        "Slot availability searches by outcome.",
			ConstLabels: constLabels,
		}, []string{"outcome"}),
		submissions: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   "celerpark",
			Name:        "booking_submissions_total",
			Help:        "Booking create/update submissions by operation and outcome.",
			ConstLabels: constLabels,
		}, []string{"operation", "outcome"}),
		conflicts: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   "celerpark",
			Name:        "booking_conflicts_total",
			Help:        "Rejected writes because the slot was already booked.",
			ConstLabels: constLabels,
		}, []string{"source"}),
		registerer: reg,
	}
}

// ObserveHTTP учитывает обработанный HTTP-запрос
func (m *Metrics) ObserveHTTP(method, route string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// IncSearch учитывает поиск свободных слотов
func (m *Metrics) IncSearch(outcome string) {
	if m == nil {
		return
	}
	m.searches.WithLabelValues(outcome).Inc()
}

// IncSubmission учитывает отправку бронирования (operation: create или update)
func (m *Metrics) IncSubmission(operation, outcome string) {
	if m == nil {
		return
	}
	m.submissions.WithLabelValues(operation, outcome).Inc()
}

// IncConflict учитывает отклоненную из-за занятого слота запись
func (m *Metrics) IncConflict(source string) {
	if m == nil {
		return
	}
	m.conflicts.WithLabelValues(source).Inc()
}

// RegisterDBStats регистрирует коллектор статистики пула соединений
func (m *Metrics) RegisterDBStats(db *sql.DB, dbName string) error {
	if m == nil {
		return nil
	}
	return m.registerer.Register(collectors.NewDBStatsCollector(db, dbName))
}
