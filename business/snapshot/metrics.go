package snapshot

import "github.com/prometheus/client_golang/prometheus"

var (
	RefreshDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "curator_snapshot_refresh_seconds",
		Help:    "Duration of snapshot refreshes",
		Buckets: prometheus.DefBuckets,
	})

	PopularItemsGauge = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "curator_snapshot_popular_items",
		Help: "Popular items in the current snapshot",
	})

	DefinitiveRatingsGauge = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "curator_snapshot_definitive_ratings",
		Help: "Definitive ratings in the current snapshot",
	})
)

func init() {
	prometheus.MustRegister(RefreshDuration, PopularItemsGauge, DefinitiveRatingsGauge)
}
