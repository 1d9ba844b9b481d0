package handler

import (
	"log/slog"
	"net/http"

	"order-notifier/internal/handler/api"
	"order-notifier/internal/handler/middleware"
	"order-notifier/internal/pkg/config"
	"order-notifier/internal/pkg/metrics"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.opentelemetry.io/otel/trace"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	logger *slog.Logger,
	m *metrics.Metrics,
	gatherer prometheus.Gatherer,
	tp trace.TracerProvider,
	statusHandler *api.StatusHandler,
) {
	setupMiddleware(engine, cfg, logger, m, tp)
	setupRoutes(engine, gatherer, statusHandler)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *slog.Logger, m *metrics.Metrics, tp trace.TracerProvider) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery(logger))
	engine.Use(otelgin.Middleware(cfg.Telemetry.ServiceName, otelgin.WithTracerProvider(tp)))
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS, logger))
	engine.Use(middleware.LoggingMiddleware(logger))
	engine.Use(middleware.MetricsMiddleware(m))
	engine.Use(middleware.ErrorHandler(logger))
}

func setupRoutes(engine *gin.Engine, gatherer prometheus.Gatherer, statusHandler *api.StatusHandler) {
	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	addRoutes(&engine.RouterGroup, []route{
		{Method: http.MethodGet, Path: "/health", Handler: healthCheck},
		{Method: http.MethodGet, Path: "/ready", Handler: statusHandler.Ready},
		{Method: http.MethodGet, Path: "/status", Handler: statusHandler.Status},
		{Method: http.MethodGet, Path: "/metrics", Handler: gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))},
	})
}

// healthCheck godoc
// @Summary Liveness probe
// @Tags ops
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, r.Handler)
		case http.MethodPost:
			g.POST(r.Path, r.Handler)
		default:
			g.Any(r.Path, r.Handler)
		}
	}
}
