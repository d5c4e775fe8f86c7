package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"prepscore/internal/scoring"
)

// Failure reasons for EvaluationFailures.
const (
	ReasonInvalidJSON = "invalid_json"
	ReasonValidation  = "validation"
	ReasonTooLarge    = "too_large"
	ReasonInternal    = "internal"
)

var (
	EvaluationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "prepscore_evaluations_total",
			Help: "Completed evaluations by readiness tier",
		},
		[]string{"readiness"},
	)

	EvaluationFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "prepscore_evaluation_failures_total",
			Help: "Rejected or failed evaluations by reason",
		},
		[]string{"reason"},
	)

	RoundScore = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "prepscore_round_score",
			Help:    "Distribution of round totals",
			Buckets: prometheus.LinearBuckets(0, 1, scoring.MaxRoundScore+1),
		},
		[]string{"round"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "prepscore_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route", "status"},
	)
)

// ObserveResult records a completed evaluation.
func ObserveResult(res scoring.Result) {
	EvaluationsTotal.WithLabelValues(string(res.Readiness)).Inc()
	for _, r := range scoring.Rounds {
		RoundScore.WithLabelValues(string(r)).Observe(float64(res.Scores.Get(r).Total))
	}
}

// ObserveFailure records an evaluation that produced no result.
func ObserveFailure(reason string) {
	EvaluationFailures.WithLabelValues(reason).Inc()
}

// Middleware times every request under its route pattern.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		HTTPRequestDuration.
			WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).
			Observe(time.Since(start).Seconds())
	}
}
