package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
)

// Route paths relative to the deployment prefix.
const (
	RouteAPIHealth   = "/api-health"
	RouteModelHealth = "/model-health"
	RouteModelInfo   = "/model-info"
	RouteInstruct    = "/instruct"
	RouteComplete    = "/complete"
	RouteTranscribe  = "/transcribe"
	RouteTokenize    = "/tokenize"
	RouteDetokenize  = "/detokenize"
	RouteScore       = "/score"
	RoutePooling     = "/pooling"
	RouteMetrics     = "/metrics"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, withLogging, h.withMetrics)
	router.Use(cors.AllowAll().Handler)
	router.Use(withGZip)

	prefix := h.deployment.Prefix()

	// scraped by monitoring, never throttled or authenticated
	router.Method(http.MethodGet, prefix+RouteMetrics, promhttp.HandlerFor(h.orchestrator.Metrics(), promhttp.HandlerOpts{}))

	router.Group(func(r chi.Router) {
		if h.auth.Enabled() {
			r.Use(h.withAuth)
		}
		r.Use(h.withConcurrencyLimit())

		r.Post(prefix+RouteAPIHealth, h.noBody(h.orchestrator.CheckAPIHealth))
		r.Post(prefix+RouteModelHealth, h.noBody(h.orchestrator.CheckModelHealth))
		r.Post(prefix+RouteModelInfo, h.noBody(h.orchestrator.ModelInfo))
		r.Post(prefix+RouteInstruct, forward(h, h.orchestrator.Instruct))
		r.Post(prefix+RouteComplete, forward(h, h.orchestrator.Complete))
		r.Post(prefix+RouteTranscribe, h.transcribe)
		r.Post(prefix+RouteTokenize, forward(h, h.orchestrator.Tokenize))
		r.Post(prefix+RouteDetokenize, forward(h, h.orchestrator.Detokenize))
		r.Post(prefix+RouteScore, forward(h, h.orchestrator.Score))
		r.Post(prefix+RoutePooling, forward(h, h.orchestrator.Pooling))
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))
	router.NotFound(CheckHTTPMethod(router))

	return router
}
