package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics набор prometheus-метрик сервиса
type Metrics struct {
	// HTTP
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	// База данных
	DBQueryDuration   *prometheus.HistogramVec
	DBConnectionsOpen *prometheus.GaugeVec
	DBConnectionsIdle *prometheus.GaugeVec

	// Движок резолвинга слотов
	SlotResolutionsTotal  *prometheus.CounterVec
	BatchOverridesApplied *prometheus.CounterVec
}

// New регистрирует и возвращает набор метрик.
// serviceName попадает в лейбл service каждой метрики.
func New(serviceName string) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		HTTPRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: constLabels,
		}, []string{"method", "path", "status"}),

		HTTPRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request duration in seconds",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "path"}),

		DBQueryDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "db_query_duration_seconds",
			Help:        "Database query duration in seconds",
			ConstLabels: constLabels,
			Buckets:     []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}, []string{"operation"}),

		DBConnectionsOpen: promauto.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_connections_open",
			Help:        "Number of open database connections",
			ConstLabels: constLabels,
		}, []string{"db"}),

		DBConnectionsIdle: promauto.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_connections_idle",
			Help:        "Number of idle database connections",
			ConstLabels: constLabels,
		}, []string{"db"}),

		SlotResolutionsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "slot_resolutions_total",
			Help:        "Total number of resolved slots by final status",
			ConstLabels: constLabels,
		}, []string{"status"}),

		BatchOverridesApplied: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "batch_overrides_applied_total",
			Help:        "Total number of (date, shift) override cells written by batch edits",
			ConstLabels: constLabels,
		}, []string{"result"}),
	}
}

// RecordSlotResolution инкрементирует счетчик резолвинга слотов
func (m *Metrics) RecordSlotResolution(status string) {
	m.SlotResolutionsTotal.WithLabelValues(status).Inc()
}

// RecordBatchOverrides учитывает количество ячеек, затронутых пакетной правкой
func (m *Metrics) RecordBatchOverrides(result string, count int) {
	m.BatchOverridesApplied.WithLabelValues(result).Add(float64(count))
}

// Noop пустая реализация для запуска с отключенными метриками
type Noop struct{}

// NewNoop создает пустой рекордер метрик
func NewNoop() *Noop {
	return &Noop{}
}

// RecordSlotResolution ничего не делает
func (n *Noop) RecordSlotResolution(status string) {}

// RecordBatchOverrides ничего не делает
func (n *Noop) RecordBatchOverrides(result string, count int) {}

