package adapter

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/MKhiriev/oc-serve/models"
	"github.com/go-resty/resty/v2"
)

func mapHTTPError(resp *resty.Response) error {
	return mapStatus(resp.StatusCode(), resp.Body())
}

// mapStatus converts a non-2xx engine answer into *models.ErrorResponse. The
// HTTP status is authoritative for the code; JSON bodies are kept verbatim.
func mapStatus(status int, body []byte) error {
	if status >= http.StatusOK && status < http.StatusMultipleChoices {
		return nil
	}

	var er models.ErrorResponse
	if json.Valid(body) && json.Unmarshal(body, &er) == nil && er.Message != "" {
		er.Code = status
		return &er
	}

	msg := strings.TrimSpace(string(body))
	if msg == "" {
		msg = http.StatusText(status)
	}
	return &models.ErrorResponse{
		Message: msg,
		Type:    http.StatusText(status),
		Code:    status,
	}
}
