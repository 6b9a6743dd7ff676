// file: internal/metrics/metrics.go
// version: 1.1.0
// guid: 4a6c8e0b-2d3f-4e5a-9b7c-8d9e0f1a2b3c

package metrics

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	registerOnce sync.Once

	queriesTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "dealsearch",
		Name:      "queries_total",
		Help:      "Total number of queries served by kind (suggest, search, resolve)",
	}, []string{"kind"})
	queriesEmpty = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "dealsearch",
		Name:      "queries_empty_total",
		Help:      "Total number of queries that produced no results by kind",
	}, []string{"kind"})
	queryDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "dealsearch",
		Name:      "query_duration_seconds",
		Help:      "Histogram of query durations in seconds by kind",
		Buckets:   prometheus.ExponentialBuckets(0.00005, 2, 12), // 50µs up to ~200ms
	}, []string{"kind"})
	corpusReloads = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "dealsearch",
		Name:      "corpus_reloads_total",
		Help:      "Total number of corpus snapshot swaps",
	})

	categoriesGauge = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "dealsearch",
		Name:      "corpus_categories_total",
		Help:      "Current number of categories in the corpus snapshot",
	})
	productsGauge = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "dealsearch",
		Name:      "corpus_products_total",
		Help:      "Current number of products in the corpus snapshot",
	})
	giftsGauge = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "dealsearch",
		Name:      "corpus_gifts_total",
		Help:      "Current number of gift items in the corpus snapshot",
	})
	earnGauge = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "dealsearch",
		Name:      "corpus_earn_offers_total",
		Help:      "Current number of earn offers in the corpus snapshot",
	})
)

// Register initializes metrics with the global Prometheus registry (idempotent)
func Register() {
	registerOnce.Do(func() {
		prometheus.MustRegister(queriesTotal, queriesEmpty, queryDuration, corpusReloads,
			categoriesGauge, productsGauge, giftsGauge, earnGauge)
	})
}

// Query lifecycle helpers
func IncQuery(kind string)      { queriesTotal.WithLabelValues(kind).Inc() }
func IncQueryEmpty(kind string) { queriesEmpty.WithLabelValues(kind).Inc() }
func ObserveQueryDuration(kind string, d time.Duration) {
	queryDuration.WithLabelValues(kind).Observe(d.Seconds())
}
func IncCorpusReload() { corpusReloads.Inc() }

// Snapshot gauges
func SetCategories(n int) { categoriesGauge.Set(float64(n)) }
func SetProducts(n int)   { productsGauge.Set(float64(n)) }
func SetGifts(n int)      { giftsGauge.Set(float64(n)) }
func SetEarnOffers(n int) { earnGauge.Set(float64(n)) }
