// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"golang.org/x/sync/semaphore"

	"github.com/MKhiriev/oc-serve/internal/app"
	"github.com/MKhiriev/oc-serve/internal/utils"
	"github.com/MKhiriev/oc-serve/models"
)

// withConcurrencyLimit applies the deployment's max_ongoing_requests and
// max_queued_requests to the inference routes:
//   - max_ongoing_requests <= 0 disables the limit;
//   - a finite queue uses chi's throttle, rejecting with 429 once both the
//     slots and the queue are full;
//   - max_queued_requests < 0 queues without bound until the client gives
//     up.
func (h *Handler) withConcurrencyLimit() func(http.Handler) http.Handler {
	d := h.deployment
	switch {
	case d.Unbounded():
		return func(next http.Handler) http.Handler { return next }
	case d.MaxQueuedRequests >= 0:
		return middleware.ThrottleWithOpts(middleware.ThrottleOpts{
			Limit:          d.MaxOngoingRequests,
			BacklogLimit:   d.MaxQueuedRequests,
			BacklogTimeout: h.backlogTimeout(),
		})
	default:
		return h.unboundedQueue(int64(d.MaxOngoingRequests))
	}
}

func (h *Handler) backlogTimeout() time.Duration {
	if h.requestTimeout > 0 {
		return h.requestTimeout
	}
	return defaultBacklogTimeout
}

func (h *Handler) unboundedQueue(limit int64) func(http.Handler) http.Handler {
	sem := semaphore.NewWeighted(limit)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if err := sem.Acquire(r.Context(), 1); err != nil {
				status := http.StatusServiceUnavailable
				_, _ = utils.WriteJSON(w, &models.ErrorResponse{
					Message: app.MsgTooManyRequests,
					Type:    errorType(status),
					Code:    status,
				}, status)
				return
			}
			defer sem.Release(1)

			next.ServeHTTP(w, r)
		})
	}
}
