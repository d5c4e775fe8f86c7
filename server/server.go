package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"prepscore/internal/evaluate"
	"prepscore/internal/httputil"
	"prepscore/internal/logging"
	"prepscore/internal/metrics"
)

// Options configures the router.
type Options struct {
	MaxBodyBytes   int64
	MetricsEnabled bool
}

// New builds the HTTP router.
func New(log *zap.Logger, opts Options) *gin.Engine {
	r := gin.New()
	r.Use(
		httputil.RequestIDMiddleware(),
		logging.Middleware(log),
		metrics.Middleware(),
		gin.Recovery(),
	)

	r.GET("/health", handleHealth)
	r.GET("/ready", handleHealth)
	if opts.MetricsEnabled {
		r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	}

	api := r.Group("/api")
	{
		api.POST("/diagnostics/evaluate", evaluate.Handler(log, opts.MaxBodyBytes))
	}
	return r
}

// Run serves the router on addr until the listener fails.
func Run(addr string, log *zap.Logger, opts Options) error {
	log.Info("listening", zap.String("addr", addr), zap.Bool("metrics", opts.MetricsEnabled))
	return New(log, opts).Run(addr)
}

func handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
