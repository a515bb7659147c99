package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	AnalysesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "autopolicy_analyses_total",
			Help: "Total number of completed policy analyses",
		},
		[]string{"input", "source"},
	)

	AnalysisFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "autopolicy_analysis_failures_total",
			Help: "Total number of failed pipeline stages",
		},
		[]string{"stage", "reason"},
	)

	ExtractionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "autopolicy_extractions_total",
			Help: "Total number of document text extractions by media type and method",
		},
		[]string{"media_type", "method"},
	)

	LLMRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "autopolicy_llm_request_duration_seconds",
			Help:    "Duration of completion calls to the AI provider",
			Buckets: []float64{0.5, 1, 2, 5, 10, 20, 30, 60},
		},
		[]string{"provider", "outcome"},
	)
)
