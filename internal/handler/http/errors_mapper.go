package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/MKhiriev/oc-serve/internal/adapter"
	"github.com/MKhiriev/oc-serve/internal/app"
	"github.com/MKhiriev/oc-serve/internal/logger"
	"github.com/MKhiriev/oc-serve/internal/utils"
	"github.com/MKhiriev/oc-serve/models"
)

// errorStatus maps a sentinel to the status and message sent to the client.
type errorStatus struct {
	err     error
	status  int
	message string
}

// errorStatuses is checked in order. Context errors come first because a
// transport failure caused by a deadline wraps both.
var errorStatuses = []errorStatus{
	{context.DeadlineExceeded, http.StatusGatewayTimeout, app.MsgRequestTimeout},
	{context.Canceled, http.StatusServiceUnavailable, app.MsgRequestCancelled},

	{ErrEmptyAuthorizationHeader, http.StatusUnauthorized, ErrEmptyAuthorizationHeader.Error()},
	{ErrInvalidAuthorizationHeader, http.StatusUnauthorized, ErrInvalidAuthorizationHeader.Error()},
	{ErrTokenIsExpired, http.StatusUnauthorized, app.MsgTokenIsExpired},
	{ErrInvalidToken, http.StatusUnauthorized, app.MsgTokenIsExpiredOrInvalid},

	{models.ErrEmptyRequestBody, http.StatusBadRequest, app.MsgEmptyRequestBody},
	{ErrInvalidJSON, http.StatusBadRequest, app.MsgInvalidJSON},
	{ErrInvalidMultipartForm, http.StatusBadRequest, app.MsgInvalidMultipartForm},
	{ErrNoAudioFile, http.StatusBadRequest, app.MsgNoAudioFile},
	{ErrInvalidTemperature, http.StatusBadRequest, app.MsgInvalidTemperature},

	{adapter.ErrEngineUnhealthy, http.StatusServiceUnavailable, app.MsgEngineUnhealthy},
	{adapter.ErrEngineUnavailable, http.StatusBadGateway, app.MsgEngineUnavailable},
	{adapter.ErrDecodeResponse, http.StatusBadGateway, app.MsgBadEngineResponse},
}

func statusFromError(err error) (int, string) {
	for _, e := range errorStatuses {
		if errors.Is(err, e.err) {
			return e.status, e.message
		}
	}
	return http.StatusInternalServerError, app.MsgInternalServerError
}

// errorType is the OpenAI error type reported for a gateway status.
func errorType(status int) string {
	switch {
	case status == http.StatusUnauthorized:
		return "authentication_error"
	case status < http.StatusInternalServerError:
		return "invalid_request_error"
	case status == http.StatusGatewayTimeout:
		return "timeout_error"
	default:
		return "server_error"
	}
}

// writeError writes err as a JSON error body. Engine payloads
// (*models.ErrorResponse) keep their own status and bytes.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	var payload *models.ErrorResponse
	if !errors.As(err, &payload) {
		status, message := statusFromError(err)
		payload = &models.ErrorResponse{Message: message, Type: errorType(status), Code: status}
	}

	status := payload.StatusCode()
	event := log.Warn()
	if status >= http.StatusInternalServerError {
		event = log.Error()
	}
	event.Err(err).Int("status", status).Msg("request failed")

	if _, werr := utils.WriteJSON(w, payload, status); werr != nil {
		log.Err(werr).Msg("error writing error response")
	}
}
