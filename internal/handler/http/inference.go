package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/MKhiriev/oc-serve/internal/logger"
	"github.com/MKhiriev/oc-serve/models"
)

// maxJSONBodyBytes caps the body of a JSON inference request.
const maxJSONBodyBytes = 32 << 20

// streamer is implemented by request bodies that may ask for an event
// stream.
type streamer interface {
	Streaming() bool
}

// forward decodes the JSON body into T and passes it to call. Non-streaming
// calls are bounded by the configured request timeout.
func forward[T any](h *Handler, call func(context.Context, T) (models.Response, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		var req T
		if err := decodeJSONBody(w, r, &req); err != nil {
			h.writeError(w, r, err)
			return
		}

		ctx := r.Context()
		s, ok := any(req).(streamer)
		stream := ok && s.Streaming()
		if h.requestTimeout > 0 && !stream {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, h.requestTimeout)
			defer cancel()
		}

		log.Debug().Bool("stream", stream).Msg("forwarding request")

		resp, err := call(ctx, req)
		if err != nil {
			h.writeError(w, r, err)
			return
		}
		h.writeResponse(w, r, resp)
	}
}

// noBody serves routes that take no request body.
func (h *Handler) noBody(call func(context.Context) (models.Response, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if h.requestTimeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, h.requestTimeout)
			defer cancel()
		}

		resp, err := call(ctx)
		if err != nil {
			h.writeError(w, r, err)
			return
		}
		h.writeResponse(w, r, resp)
	}
}

func decodeJSONBody(w http.ResponseWriter, r *http.Request, dst any) error {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxJSONBodyBytes))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return models.ErrEmptyRequestBody
	}
	if err = json.Unmarshal(body, dst); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}
	return nil
}
