package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "restodesk"

// Metrics holds the application collectors on a private registry.
type Metrics struct {
	registry        *prometheus.Registry
	actions         *prometheus.CounterVec
	persistFailures *prometheus.CounterVec
	walletBalance   prometheus.Gauge
	orders          *prometheus.GaugeVec
}

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		actions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "actions_total",
			Help:      "Actions applied to the store, by kind.",
		}, []string{"kind"}),
		persistFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "persist_failures_total",
			Help:      "Durable slot failures, by operation.",
		}, []string{"op"}),
		walletBalance: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "wallet_balance",
			Help:      "Current wallet balance.",
		}),
		orders: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "orders",
			Help:      "Orders currently held, by status.",
		}, []string{"status"}),
	}
	m.registry.MustRegister(
		m.actions,
		m.persistFailures,
		m.walletBalance,
		m.orders,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *Metrics) ObserveAction(kind string) {
	m.actions.WithLabelValues(kind).Inc()
}

func (m *Metrics) ObservePersistFailure(op string) {
	m.persistFailures.WithLabelValues(op).Inc()
}

func (m *Metrics) SetWalletBalance(v float64) {
	m.walletBalance.Set(v)
}

// SetOrderCounts replaces the per-status order gauges.
func (m *Metrics) SetOrderCounts(counts map[string]int) {
	for status, n := range counts {
		m.orders.WithLabelValues(status).Set(float64(n))
	}
}
