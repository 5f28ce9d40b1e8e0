package http

import (
	"net/http"

	"github.com/rs/zerolog"

	"github.com/MKhiriev/oc-serve/internal/utils"
)

const traceIDHeader = utils.TraceIDHeader

// withTraceID reuses the client's X-Trace-ID or generates a new one, echoes
// it in the response and attaches it to the request logger and context. The
// engine client forwards it with every engine call.
func (h *Handler) withTraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		traceID := r.Header.Get(traceIDHeader)
		if traceID == "" {
			traceID = h.ids.Generate()
		}

		l := h.logger.GetChildLogger()
		l.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("trace_id", traceID)
		})
		ctx = utils.WithTraceID(l.WithContext(ctx), traceID)

		w.Header().Set(traceIDHeader, traceID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
