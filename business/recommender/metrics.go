package recommender

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	RecommendationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "curator_recommendations_total",
			Help: "Recommendations served, by entry point and the path that produced them.",
		},
		[]string{"entry", "source"},
	)

	RecommendationFallbacksTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "curator_recommendation_fallbacks_total",
			Help: "Personal recommendations that fell back to generic ones, by reason.",
		},
		[]string{"reason"},
	)
)

func init() {
	prometheus.MustRegister(RecommendationsTotal, RecommendationFallbacksTotal)
}
