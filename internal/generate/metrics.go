package generate

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	generationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "cadence",
			Name:      "generations_total",
			Help:      "Total sequence generation attempts",
		},
		[]string{"status"}, // "ok", "failed"
	)

	generationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "cadence",
			Name:      "generation_duration_seconds",
			Help:      "Duration of full generation pipeline runs in seconds",
			Buckets:   prometheus.ExponentialBuckets(0.5, 2, 8), // 500ms to ~2min
		},
	)

	qualityIssuesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "cadence",
			Name:      "quality_issues_total",
			Help:      "Total content-quality findings logged across sequences",
		},
	)

	alignmentScores = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "cadence",
			Name:      "alignment_score",
			Help:      "Distribution of capability-to-persona alignment scores",
			Buckets:   []float64{0, 0.25, 0.5, 0.75, 1},
		},
	)
)
