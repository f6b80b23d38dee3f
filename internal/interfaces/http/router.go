// Package http wires the gin route tree and the HTTP server of the engine.
package http

import (
	"github.com/gin-gonic/gin"

	"github.com/sozialtools/fristenwaechter/internal/infrastructure/monitoring/logging"
	"github.com/sozialtools/fristenwaechter/internal/infrastructure/monitoring/prometheus"
	"github.com/sozialtools/fristenwaechter/internal/interfaces/http/handlers"
	"github.com/sozialtools/fristenwaechter/internal/interfaces/http/middleware"
)

// RouterConfig aggregates all handler and middleware dependencies required to
// construct the complete route tree.
type RouterConfig struct {
	ReminderHandler *handlers.ReminderHandler
	DeadlineHandler *handlers.DeadlineHandler
	CalendarHandler *handlers.CalendarHandler
	NotifyHandler   *handlers.NotifyHandler
	HealthHandler   *handlers.HealthHandler

	Logger  logging.Logger
	Metrics *prometheus.AppMetrics

	// MetricsPath mounts the scrape endpoint when Metrics is set.
	MetricsPath string

	// Mode is the gin mode: "debug" | "release" | "test".
	Mode string
}

// NewRouter constructs the complete route tree from cfg.
func NewRouter(cfg RouterConfig) *gin.Engine {
	if cfg.Mode != "" {
		gin.SetMode(cfg.Mode)
	}
	r := gin.New()

	r.Use(middleware.Recovery(cfg.Logger))
	r.Use(middleware.RequestLogger(cfg.Logger))
	if cfg.Metrics != nil {
		r.Use(middleware.Metrics(cfg.Metrics))
	}

	// Probes and metrics sit outside the API prefix.
	if cfg.HealthHandler != nil {
		r.GET("/healthz", cfg.HealthHandler.Liveness)
		r.GET("/readyz", cfg.HealthHandler.Readiness)
	}
	if cfg.Metrics != nil && cfg.MetricsPath != "" {
		r.GET(cfg.MetricsPath, gin.WrapH(cfg.Metrics.Handler()))
	}

	api := r.Group("/api/v1")

	if h := cfg.ReminderHandler; h != nil {
		er := api.Group("/erinnerungen")
		er.GET("", h.List)
		er.POST("", h.Create)
		er.GET("/dringend", h.Urgent)
		er.POST("/abgleich", h.Reconcile)
		er.GET("/:id", h.Get)
		er.PUT("/:id", h.Update)
		er.DELETE("/:id", h.Delete)
		er.PUT("/:id/status", h.SetStatus)
		er.GET("/:id/naechste", h.NextOccurrence)
	}

	if h := cfg.DeadlineHandler; h != nil {
		fr := api.Group("/fristen")
		fr.POST("/berechnen", h.Compute)
		fr.GET("/kategorien", h.Categories)
	}

	if h := cfg.CalendarHandler; h != nil {
		api.GET("/kalender", h.Month)
	}

	if h := cfg.NotifyHandler; h != nil {
		api.POST("/benachrichtigungen/versand", h.Dispatch)
	}

	return r
}
