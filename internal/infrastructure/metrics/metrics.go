package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// BackofficeMetrics содержит все метрики сервиса
type BackofficeMetrics struct {
	OrdersCreatedTotal     prometheus.CounterVec
	OrdersSplitTotal       prometheus.CounterVec
	OrdersDeletedTotal     prometheus.CounterVec
	OrderDebtCreatedTotal  prometheus.CounterVec
	SuppliersDeletedTotal  prometheus.Counter
	SupplierDebtGauge      prometheus.GaugeVec
	SyncFailuresTotal      prometheus.CounterVec
	HTTPRequestDuration    prometheus.HistogramVec
}

func NewBackofficeMetrics(reg prometheus.Registerer) *BackofficeMetrics {
	factory := promauto.With(reg)

	return &BackofficeMetrics{
		OrdersCreatedTotal: *factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "backoffice_orders_created_total",
				Help: "Общее количество созданных заказов",
			},
			[]string{"supplier_id"},
		),

		OrdersSplitTotal: *factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "backoffice_orders_split_total",
				Help: "Общее количество разделённых заказов",
			},
			[]string{"supplier_id"},
		),

		OrdersDeletedTotal: *factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "backoffice_orders_deleted_total",
				Help: "Общее количество удалённых заказов",
			},
			[]string{"supplier_id"},
		),

		OrderDebtCreatedTotal: *factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "backoffice_order_debt_created_total",
				Help: "Суммарный долг по созданным заказам",
			},
			[]string{"supplier_id"},
		),

		SuppliersDeletedTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "backoffice_suppliers_deleted_total",
				Help: "Общее количество удалённых поставщиков",
			},
		),

		SupplierDebtGauge: *factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "backoffice_supplier_debt",
				Help: "Текущий долг поставщика по активным заказам",
			},
			[]string{"supplier_id"},
		),

		SyncFailuresTotal: *factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "backoffice_supplier_sync_failures_total",
				Help: "Количество неудачных пересчётов агрегатов поставщика",
			},
			[]string{"supplier_id"},
		),

		HTTPRequestDuration: *factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "backoffice_http_request_duration_seconds",
				Help:    "Время обработки HTTP запроса в секундах",
				Buckets: prometheus.ExponentialBuckets(0.001, 2, 12),
			},
			[]string{"method", "path", "status"},
		),
	}
}

// RecordOrderCreated записывает созданный заказ
func (m *BackofficeMetrics) RecordOrderCreated(supplierID int64, debtAmount float64) {
	id := formatID(supplierID)
	m.OrdersCreatedTotal.WithLabelValues(id).Inc()
	// debt может быть отрицательным, а счётчик не принимает отрицательные значения
	if debtAmount > 0 {
		m.OrderDebtCreatedTotal.WithLabelValues(id).Add(debtAmount)
	}
}

// RecordOrderSplit записывает разделение заказа
func (m *BackofficeMetrics) RecordOrderSplit(supplierID int64) {
	m.OrdersSplitTotal.WithLabelValues(formatID(supplierID)).Inc()
}

// RecordOrderDeleted записывает удаление заказа
func (m *BackofficeMetrics) RecordOrderDeleted(supplierID int64) {
	m.OrdersDeletedTotal.WithLabelValues(formatID(supplierID)).Inc()
}

// RecordSupplierDeleted записывает удаление поставщика
func (m *BackofficeMetrics) RecordSupplierDeleted(supplierID int64) {
	m.SuppliersDeletedTotal.Inc()
	m.SupplierDebtGauge.DeleteLabelValues(formatID(supplierID))
}

// RecordSupplierDebt обновляет текущий долг поставщика
func (m *BackofficeMetrics) RecordSupplierDebt(supplierID int64, debt float64) {
	m.SupplierDebtGauge.WithLabelValues(formatID(supplierID)).Set(debt)
}

// RecordSyncFailure записывает неудачный пересчёт агрегатов
func (m *BackofficeMetrics) RecordSyncFailure(supplierID int64) {
	m.SyncFailuresTotal.WithLabelValues(formatID(supplierID)).Inc()
}

// RecordHTTPRequest записывает время обработки запроса
func (m *BackofficeMetrics) RecordHTTPRequest(method, path string, status int, durationSeconds float64) {
	m.HTTPRequestDuration.WithLabelValues(method, path, strconv.Itoa(status)).Observe(durationSeconds)
}

func formatID(id int64) string {
	return strconv.FormatInt(id, 10)
}
