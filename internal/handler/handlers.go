// Package handler groups the transport handlers enabled by configuration.
package handler

import (
	"github.com/MKhiriev/oc-serve/internal/config"
	"github.com/MKhiriev/oc-serve/internal/handler/grpc"
	"github.com/MKhiriev/oc-serve/internal/handler/http"
	"github.com/MKhiriev/oc-serve/internal/logger"
	"github.com/MKhiriev/oc-serve/internal/ocserve"
)

type Handlers struct {
	HTTP *http.Handler
	GRPC *grpc.Handler
}

func NewHandlers(app *ocserve.App, cfg config.OCServe, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(app, cfg, logger)
	}
	if cfg.GRPCAddress != "" {
		handlers.GRPC = grpc.NewHandler(logger)
	}

	if handlers.HTTP == nil && handlers.GRPC == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}

// SetServing forwards a model health result to the gRPC health service, if
// one is enabled.
func (h *Handlers) SetServing(ok bool) {
	if h.GRPC != nil {
		h.GRPC.SetServing(ok)
	}
}
