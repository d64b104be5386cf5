package obs

import (
	"fmt"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	domainOnce sync.Once

	// QuoteCalculationsTotal counts price calculation outcomes.
	QuoteCalculationsTotal *prometheus.CounterVec
	// QuoteItemWarningsTotal counts items dropped from calculations with a warning.
	QuoteItemWarningsTotal prometheus.Counter
	// QuoteCalculationDuration records calculation latency in milliseconds.
	QuoteCalculationDuration prometheus.Histogram
	// CatalogCacheHitsTotal counts reference-data cache lookups by outcome.
	CatalogCacheHitsTotal *prometheus.CounterVec
)

// MustRegisterDomainMetrics initialises and registers domain-specific Prometheus collectors.
func MustRegisterDomainMetrics(namespace string, reg prometheus.Registerer) {
	domainOnce.Do(func() {
		if reg == nil {
			reg = prometheus.DefaultRegisterer
		}
		QuoteCalculationsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "quote_calculations_total",
			Help:      "Count of price calculation outcomes.",
		}, []string{"result"})
		QuoteItemWarningsTotal = prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "quote_item_warnings_total",
			Help:      "Number of order items skipped with a warning during calculation.",
		})
		QuoteCalculationDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "quote_calculation_duration_ms",
			Help:      "Latency of full-order price calculations in milliseconds.",
			Buckets:   []float64{1, 2, 5, 10, 25, 50, 100, 250, 500},
		})
		CatalogCacheHitsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "catalog_cache_lookups_total",
			Help:      "Count of reference-data cache lookups by outcome.",
		}, []string{"result"})

		mustRegisterCollector(reg, QuoteCalculationsTotal, func(existing prometheus.Collector) {
			if v, ok := existing.(*prometheus.CounterVec); ok {
				QuoteCalculationsTotal = v
			}
		})
		mustRegisterCollector(reg, QuoteItemWarningsTotal, func(existing prometheus.Collector) {
			if v, ok := existing.(prometheus.Counter); ok {
				QuoteItemWarningsTotal = v
			}
		})
		mustRegisterCollector(reg, QuoteCalculationDuration, func(existing prometheus.Collector) {
			if v, ok := existing.(prometheus.Histogram); ok {
				QuoteCalculationDuration = v
			}
		})
		mustRegisterCollector(reg, CatalogCacheHitsTotal, func(existing prometheus.Collector) {
			if v, ok := existing.(*prometheus.CounterVec); ok {
				CatalogCacheHitsTotal = v
			}
		})
	})
}

func mustRegisterCollector(reg prometheus.Registerer, collector prometheus.Collector, reuse func(prometheus.Collector)) {
	if err := reg.Register(collector); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if reuse != nil {
				reuse(are.ExistingCollector)
			}
			return
		}
		panic(fmt.Errorf("register domain metric: %w", err))
	}
}
