// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/oc-serve/internal/utils"
	"github.com/MKhiriev/oc-serve/models"
)

// msgRouteNotFound is the error message of a request to an unknown route or
// with a method the route does not serve.
const msgRouteNotFound = "route not found"

// CheckHTTPMethod is registered as the router's MethodNotAllowed handler.
// A path served under another method answers 404 with the gateway's JSON
// error body instead of chi's 405, so the inference routes look the same
// to a client whichever method it guesses.
//
// Only exact patterns are matched; the gateway registers no parameterised
// routes.
//
//	router.MethodNotAllowed(CheckHTTPMethod(router))
func CheckHTTPMethod(router *chi.Mux) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		for _, route := range router.Routes() {
			if route.Pattern != r.URL.Path {
				continue
			}
			if _, ok := route.Handlers[r.Method]; ok {
				router.ServeHTTP(w, r)
				return
			}
			break
		}

		status := http.StatusNotFound
		_, _ = utils.WriteJSON(w, &models.ErrorResponse{
			Message: msgRouteNotFound,
			Type:    errorType(status),
			Code:    status,
		}, status)
	}
}
