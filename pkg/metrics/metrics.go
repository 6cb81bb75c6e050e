// Package metrics holds the Prometheus collectors of the service
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics набор коллекторов сервиса. Все методы безопасны для nil-получателя
type Metrics struct {
	serviceName string

	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	DBQueryDuration *prometheus.HistogramVec
	DBQueryErrors   *prometheus.CounterVec
	DBConnections   *prometheus.GaugeVec

	CheckoutsTotal           *prometheus.CounterVec
	DiscountValidationsTotal *prometheus.CounterVec
	EventsPublishedTotal     *prometheus.CounterVec
}

// New регистрирует коллекторы в глобальном реестре
func New(serviceName string) *Metrics {
	return NewWithRegistry(prometheus.DefaultRegisterer, serviceName)
}

// NewWithRegistry регистрирует коллекторы в переданном реестре
func NewWithRegistry(reg prometheus.Registerer, serviceName string) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		serviceName: serviceName,

		HTTPRequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		}, []string{"service", "method", "route", "status"}),

		HTTPRequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"service", "method", "route"}),

		DBQueryDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "db_query_duration_seconds",
			Help:    "Database query duration in seconds",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
		}, []string{"service", "operation"}),

		DBQueryErrors: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "db_query_errors_total",
			Help: "Total number of failed database queries",
		}, []string{"service", "operation"}),

		DBConnections: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name: "db_connections",
			Help: "Database connection pool state",
		}, []string{"service", "state"}),

		CheckoutsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "booking_checkouts_total",
			Help: "Checkout attempts by outcome",
		}, []string{"service", "category", "outcome"}),

		DiscountValidationsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "booking_discount_validations_total",
			Help: "Discount code validations by outcome",
		}, []string{"service", "outcome"}),

		EventsPublishedTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "booking_events_published_total",
			Help: "Published booking events by type and status",
		}, []string{"service", "event", "status"}),
	}
}

// ObserveHTTPRequest записывает метрики HTTP-запроса
func (m *Metrics) ObserveHTTPRequest(method, route string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	m.HTTPRequestsTotal.WithLabelValues(m.serviceName, method, route, strconv.Itoa(status)).Inc()
	m.HTTPRequestDuration.WithLabelValues(m.serviceName, method, route).Observe(duration.Seconds())
}

// ObserveDBQuery записывает длительность и результат SQL-запроса
func (m *Metrics) ObserveDBQuery(operation string, duration time.Duration, err error) {
	if m == nil {
		return
	}
	m.DBQueryDuration.WithLabelValues(m.serviceName, operation).Observe(duration.Seconds())
	if err != nil {
		m.DBQueryErrors.WithLabelValues(m.serviceName, operation).Inc()
	}
}

// SetDBConnections обновляет состояние пула соединений
func (m *Metrics) SetDBConnections(open, inUse, idle int) {
	if m == nil {
		return
	}
	m.DBConnections.WithLabelValues(m.serviceName, "open").Set(float64(open))
	m.DBConnections.WithLabelValues(m.serviceName, "in_use").Set(float64(inUse))
	m.DBConnections.WithLabelValues(m.serviceName, "idle").Set(float64(idle))
}

// RecordCheckout учитывает попытку оформления заказа
func (m *Metrics) RecordCheckout(category, outcome string) {
	if m == nil {
		return
	}
	m.CheckoutsTotal.WithLabelValues(m.serviceName, category, outcome).Inc()
}

// RecordDiscountValidation учитывает проверку промокода
func (m *Metrics) RecordDiscountValidation(outcome string) {
	if m == nil {
		return
	}
	m.DiscountValidationsTotal.WithLabelValues(m.serviceName, outcome).Inc()
}

// RecordEventPublished учитывает отправку события
func (m *Metrics) RecordEventPublished(event, status string) {
	if m == nil {
		return
	}
	m.EventsPublishedTotal.WithLabelValues(m.serviceName, event, status).Inc()
}
