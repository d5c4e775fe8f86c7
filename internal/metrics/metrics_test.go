package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"prepscore/internal/scoring"
)

func TestObserveResult(t *testing.T) {
	before := testutil.ToFloat64(EvaluationsTotal.WithLabelValues("not_ready"))
	ObserveResult(scoring.Evaluate(scoring.Submission{}))
	after := testutil.ToFloat64(EvaluationsTotal.WithLabelValues("not_ready"))
	assert.Equal(t, before+1, after)
}

func TestObserveFailure(t *testing.T) {
	before := testutil.ToFloat64(EvaluationFailures.WithLabelValues(ReasonValidation))
	ObserveFailure(ReasonValidation)
	assert.Equal(t, before+1, testutil.ToFloat64(EvaluationFailures.WithLabelValues(ReasonValidation)))
}

func TestMiddlewareRecordsRoute(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Middleware())
	r.GET("/health", func(c *gin.Context) { c.Status(http.StatusOK) })

	before := testutil.CollectAndCount(HTTPRequestDuration)
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/health", nil))
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/nowhere", nil))
	assert.GreaterOrEqual(t, testutil.CollectAndCount(HTTPRequestDuration), before+2)
}
