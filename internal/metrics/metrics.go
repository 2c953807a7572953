package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the storefront's Prometheus instruments. A nil *Metrics is
// safe to use; all record methods are no-ops on nil receivers so tests can
// skip registration entirely.
type Metrics struct {
	cartOperations *prometheus.CounterVec
	ordersPlaced   prometheus.Counter
	orderValue     prometheus.Histogram
}

// New registers the storefront metrics on the default registerer.
func New() *Metrics {
	return newWithRegisterer(prometheus.DefaultRegisterer)
}

func newWithRegisterer(registerer prometheus.Registerer) *Metrics {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}

	m := &Metrics{
		cartOperations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "storefront_cart_operations_total",
			Help: "Total number of cart mutations, labelled by operation",
		}, []string{"operation"}),
		ordersPlaced: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "storefront_orders_placed_total",
			Help: "Total number of orders placed through checkout",
		}),
		orderValue: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "storefront_order_value",
			Help:    "Distribution of placed order totals",
			Buckets: prometheus.ExponentialBuckets(10, 4, 8),
		}),
	}

	mustRegister(registerer, m.cartOperations)
	mustRegister(registerer, m.ordersPlaced)
	mustRegister(registerer, m.orderValue)
	return m
}

func mustRegister(registerer prometheus.Registerer, c prometheus.Collector) {
	if err := registerer.Register(c); err != nil {
		panic(fmt.Sprintf("register storefront metric: %v", err))
	}
}

// CartOperation records one cart mutation (add, merge, remove, update, clear).
func (m *Metrics) CartOperation(op string) {
	if m == nil {
		return
	}
	m.cartOperations.WithLabelValues(op).Inc()
}

// OrderPlaced records a successfully placed order and its total.
func (m *Metrics) OrderPlaced(total float64) {
	if m == nil {
		return
	}
	m.ordersPlaced.Inc()
	m.orderValue.Observe(total)
}
