package evaluate

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"prepscore/internal/httputil"
	"prepscore/internal/metrics"
	"prepscore/internal/scoring"
)

const (
	missingRoundsMessage = "Missing required fields. All four rounds must be submitted."
	internalErrorMessage = "Failed to evaluate diagnostic"
)

// ErrScoring wraps a failure raised while scoring a valid submission.
var ErrScoring = errors.New("scoring failed")

// EvaluateFunc turns a validated submission into a result.
type EvaluateFunc func(scoring.Submission) scoring.Result

// Handler handles POST /api/diagnostics/evaluate.
func Handler(log *zap.Logger, maxBody int64) gin.HandlerFunc {
	return newHandler(scoring.Evaluate, log, maxBody)
}

func newHandler(eval EvaluateFunc, log *zap.Logger, maxBody int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		reqLog := log.With(zap.String("request_id", httputil.RequestID(c)))

		raw, err := httputil.ReadLimitedBody(c, maxBody)
		if err != nil {
			if httputil.IsBodyTooLarge(err) {
				metrics.ObserveFailure(metrics.ReasonTooLarge)
				c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "request body too large"})
				return
			}
			metrics.ObserveFailure(metrics.ReasonInvalidJSON)
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}

		sub, err := DecodeSubmission(raw)
		if err != nil {
			var missing *MissingRoundsError
			switch {
			case errors.As(err, &missing):
				reqLog.Info("submission rejected", zap.Error(err))
				metrics.ObserveFailure(metrics.ReasonValidation)
				c.JSON(http.StatusBadRequest, gin.H{"error": missingRoundsMessage})
			case errors.Is(err, ErrInvalidSubmission):
				reqLog.Info("submission rejected", zap.Error(err))
				metrics.ObserveFailure(metrics.ReasonValidation)
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			default:
				metrics.ObserveFailure(metrics.ReasonInvalidJSON)
				c.JSON(http.StatusBadRequest, gin.H{"error": ErrInvalidJSON.Error()})
			}
			return
		}

		res, err := Run(eval, sub)
		if err != nil {
			reqLog.Error("evaluation failed", zap.Error(err))
			metrics.ObserveFailure(metrics.ReasonInternal)
			c.JSON(http.StatusInternalServerError, gin.H{"error": internalErrorMessage})
			return
		}

		metrics.ObserveResult(res)
		reqLog.Debug("evaluation complete",
			zap.Int("total_score", res.TotalScore),
			zap.String("readiness", string(res.Readiness)),
			zap.Strings("weak_areas", res.WeakAreas),
		)
		c.JSON(http.StatusOK, res)
	}
}

// Run calls eval and converts a panic into ErrScoring, so callers never see a partial result.
func Run(eval EvaluateFunc, sub scoring.Submission) (res scoring.Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			res = scoring.Result{}
			err = fmt.Errorf("%w: %v", ErrScoring, r)
		}
	}()
	return eval(sub), nil
}
