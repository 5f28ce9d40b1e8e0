package http

import (
	"time"

	"github.com/MKhiriev/oc-serve/internal/config"
	"github.com/MKhiriev/oc-serve/internal/logger"
	"github.com/MKhiriev/oc-serve/internal/metrics"
	"github.com/MKhiriev/oc-serve/internal/ocserve"
	"github.com/MKhiriev/oc-serve/internal/orchestrators"
	"github.com/MKhiriev/oc-serve/internal/utils"
)

// defaultBacklogTimeout bounds how long a queued request waits for a free
// slot when the deployment has a finite queue.
const defaultBacklogTimeout = 60 * time.Second

type Handler struct {
	orchestrator orchestrators.Orchestrator
	deployment   orchestrators.Deployment
	metrics      *metrics.Registry

	auth           config.Auth
	requestTimeout time.Duration
	ids            *utils.UUIDGenerator

	logger *logger.Logger
}

func NewHandler(app *ocserve.App, cfg config.OCServe, logger *logger.Logger) *Handler {
	reg := app.Metrics
	if reg == nil {
		reg = metrics.New()
	}

	logger.Info().
		Str("route_prefix", app.Deployment.RoutePrefix).
		Bool("auth", cfg.Auth.Enabled()).
		Msg("http handler created")
	return &Handler{
		orchestrator:   app.Orchestrator,
		deployment:     app.Deployment,
		metrics:        reg,
		auth:           cfg.Auth,
		requestTimeout: cfg.RequestTimeout,
		ids:            utils.NewUUIDGenerator(),
		logger:         logger,
	}
}
