package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Исходы операций с бронированиями
const (
	OutcomeBooked    = "booked"
	OutcomeConflict  = "conflict"
	OutcomeUnbooked  = "unbooked"
	OutcomeForbidden = "forbidden"
	OutcomeInvalid   = "invalid"
	OutcomeError     = "error"
)

// Metrics набор prometheus-метрик сервиса
type Metrics struct {
	serviceName string

	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
	DBQueryDuration     *prometheus.HistogramVec
	DBConnections       *prometheus.GaugeVec
	BookingOutcomes     *prometheus.CounterVec
}

// New создает метрики и регистрирует их в prometheus.DefaultRegisterer
func New(serviceName string) *Metrics {
	return NewWithRegistry(serviceName, prometheus.DefaultRegisterer)
}

// NewWithRegistry создает метрики и регистрирует их в reg
func NewWithRegistry(serviceName string, reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		serviceName: serviceName,
		HTTPRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests.",
			},
			[]string{"service", "method", "path", "status"},
		),
		HTTPRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request latency.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"service", "method", "path"},
		),
		DBQueryDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "db_query_duration_seconds",
				Help:    "Database query latency by operation.",
				Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
			},
			[]string{"service", "operation"},
		),
		DBConnections: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "db_connections",
				Help: "Database pool connections by state.",
			},
			[]string{"service", "state"},
		),
		BookingOutcomes: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "desk_booking_outcomes_total",
				Help: "Book/unbook attempts by outcome.",
			},
			[]string{"service", "outcome"},
		),
	}

	reg.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.DBQueryDuration,
		m.DBConnections,
		m.BookingOutcomes,
	)

	return m
}

// ServiceName имя сервиса, используемое в label service
func (m *Metrics) ServiceName() string {
	return m.serviceName
}

// RecordBookingOutcome увеличивает счетчик исходов бронирования.
// На nil *Metrics (метрики выключены) ничего не делает.
func (m *Metrics) RecordBookingOutcome(outcome string) {
	if m == nil {
		return
	}
	m.BookingOutcomes.WithLabelValues(m.serviceName, outcome).Inc()
}

// ObserveHTTPRequest фиксирует завершенный HTTP-запрос
func (m *Metrics) ObserveHTTPRequest(method, path, status string, seconds float64) {
	m.HTTPRequestsTotal.WithLabelValues(m.serviceName, method, path, status).Inc()
	m.HTTPRequestDuration.WithLabelValues(m.serviceName, method, path).Observe(seconds)
}

// ObserveDBQuery фиксирует длительность запроса к БД
func (m *Metrics) ObserveDBQuery(operation string, seconds float64) {
	m.DBQueryDuration.WithLabelValues(m.serviceName, operation).Observe(seconds)
}

// SetDBConnections обновляет значение gauge для состояния пула
func (m *Metrics) SetDBConnections(state string, value float64) {
	m.DBConnections.WithLabelValues(m.serviceName, state).Set(value)
}
