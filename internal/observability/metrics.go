package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters and histograms for the receipts API.
type Metrics struct {
	ReceiptsCreated   prometheus.Counter
	PackagesCreated   prometheus.Counter
	PackagesProcessed *prometheus.CounterVec // labels: outcome={categorized,uncategorized}
	SeedRows          *prometheus.CounterVec // labels: entity={receipts,packages}

	// Distribution of computed harm scores, bucketed on the table values.
	HarmScore prometheus.Histogram
}

// NewMetrics creates and registers all API metrics with the default
// Prometheus registry.
func NewMetrics() *Metrics {
	m := newMetrics()
	prometheus.MustRegister(
		m.ReceiptsCreated,
		m.PackagesCreated,
		m.PackagesProcessed,
		m.SeedRows,
		m.HarmScore,
	)
	return m
}

// NewMetricsForTesting creates Metrics without registering them, avoiding
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}

func newMetrics() *Metrics {
	return &Metrics{
		ReceiptsCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "aid_receipts",
			Name:      "receipts_created_total",
			Help:      "Total receipts created through the API.",
		}),
		PackagesCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "aid_receipts",
			Name:      "packages_created_total",
			Help:      "Total packages created through the API.",
		}),
		PackagesProcessed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "aid_receipts",
			Name:      "packages_processed_total",
			Help:      "Package processing runs by category detection outcome.",
		}, []string{"outcome"}),
		SeedRows: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "aid_receipts",
			Name:      "seed_rows_total",
			Help:      "Demo rows inserted by the seed endpoints.",
		}, []string{"entity"}),
		HarmScore: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "aid_receipts",
			Name:      "harm_score",
			Help:      "Harm scores computed for created receipts.",
			Buckets:   []float64{10, 70, 80, 85, 90, 95, 100},
		}),
	}
}
