package http

import (
	"errors"
	"io"
	"net/http"

	"github.com/MKhiriev/oc-serve/internal/logger"
	"github.com/MKhiriev/oc-serve/models"
)

// streamChunkSize is the read buffer used when relaying an event stream.
const streamChunkSize = 32 << 10

// writeResponse writes a server response. Streams are relayed chunk by
// chunk, each chunk flushed to the client, and closed on return so the
// server's concurrency permit is released.
func (h *Handler) writeResponse(w http.ResponseWriter, r *http.Request, resp models.Response) {
	log := logger.FromRequest(r)

	status := resp.StatusCode
	if status == 0 {
		status = http.StatusOK
	}

	if resp.IsStream() {
		defer func() {
			if err := resp.Close(); err != nil {
				log.Warn().Err(err).Msg("error closing response stream")
			}
		}()
		h.relayStream(w, r, status, resp)
		return
	}

	if resp.ContentType != "" {
		w.Header().Set("Content-Type", resp.ContentType)
	}
	w.WriteHeader(status)
	if _, err := w.Write(resp.Body); err != nil {
		log.Err(err).Msg("error writing response body")
	}
}

func (h *Handler) relayStream(w http.ResponseWriter, r *http.Request, status int, resp models.Response) {
	log := logger.FromRequest(r)

	contentType := resp.ContentType
	if contentType == "" {
		contentType = models.ContentTypeEventStream
	}
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("X-Accel-Buffering", "no")
	w.WriteHeader(status)

	rc := http.NewResponseController(w)
	buf := make([]byte, streamChunkSize)
	for {
		n, err := resp.Stream.Read(buf)
		if n > 0 {
			if _, werr := w.Write(buf[:n]); werr != nil {
				log.Warn().Err(werr).Msg("client went away during stream")
				return
			}
			if ferr := rc.Flush(); ferr != nil && !errors.Is(ferr, http.ErrNotSupported) {
				log.Warn().Err(ferr).Msg("error flushing stream")
				return
			}
		}
		if errors.Is(err, io.EOF) {
			return
		}
		if err != nil {
			log.Err(err).Msg("response stream interrupted")
			return
		}
	}
}
