// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"errors"
	"net/http"
)

// TypeDisabledFeature classifies requests to a capability that is switched
// off by configuration.
const TypeDisabledFeature = "disabled_feature"

// ErrFeatureDisabled matches any *ErrorResponse of type disabled_feature.
var ErrFeatureDisabled = errors.New("feature disabled")

// ErrorResponse is a typed error payload carrying an HTTP status code.
// Payloads received from the engine keep their original bytes in Raw and are
// written back to the client unchanged.
type ErrorResponse struct {
	Message string
	Type    string
	Param   string
	Code    int
	Raw     json.RawMessage
}

// NewDisabledFeature builds the 404 payload returned for a switched-off
// capability.
func NewDisabledFeature(message string) *ErrorResponse {
	return &ErrorResponse{Message: message, Type: TypeDisabledFeature, Code: http.StatusNotFound}
}

func (e *ErrorResponse) Error() string {
	if e.Type == "" {
		return e.Message
	}
	return e.Type + ": " + e.Message
}

// Is makes errors.Is(err, ErrFeatureDisabled) hold for disabled_feature
// payloads.
func (e *ErrorResponse) Is(target error) bool {
	return target == ErrFeatureDisabled && e.Type == TypeDisabledFeature
}

// StatusCode returns Code, or 500 when no valid code was set.
func (e *ErrorResponse) StatusCode() int {
	if e.Code < 400 || e.Code > 599 {
		return http.StatusInternalServerError
	}
	return e.Code
}

type errorBody struct {
	Message string `json:"message"`
	Type    string `json:"type"`
	Param   string `json:"param,omitempty"`
	Code    int    `json:"code,omitempty"`
}

// MarshalJSON writes Raw when present, otherwise {"error": {...}}.
func (e *ErrorResponse) MarshalJSON() ([]byte, error) {
	if len(e.Raw) > 0 {
		return e.Raw, nil
	}
	return json.Marshal(struct {
		Error errorBody `json:"error"`
	}{Error: errorBody{Message: e.Message, Type: e.Type, Param: e.Param, Code: e.Code}})
}

// UnmarshalJSON accepts both the nested {"error": {...}} shape and the flat
// {"object": "error", ...} shape used by older engines. b is kept in Raw.
func (e *ErrorResponse) UnmarshalJSON(b []byte) error {
	var probe struct {
		Error *errorBody `json:"error"`
		errorBody
	}
	if err := json.Unmarshal(b, &probe); err != nil {
		return err
	}

	body := probe.errorBody
	if probe.Error != nil {
		body = *probe.Error
	}
	e.Message = body.Message
	e.Type = body.Type
	e.Param = body.Param
	e.Code = body.Code
	e.Raw = append(json.RawMessage(nil), b...)
	return nil
}
