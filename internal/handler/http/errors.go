// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"

	"github.com/MKhiriev/oc-serve/internal/utils"
)

// Sentinel errors used by the authentication middleware when parsing the
// "Authorization" HTTP header. Callers can match against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader is returned when the "Authorization"
	// header is not of the form "Bearer <token>".
	ErrInvalidAuthorizationHeader = utils.ErrInvalidAuthorizationHeader

	// ErrTokenIsExpired is returned when the bearer token's exp claim has
	// passed.
	ErrTokenIsExpired = errors.New("token is expired")

	// ErrInvalidToken is returned when the bearer token fails verification.
	ErrInvalidToken = errors.New("token is invalid")
)

// Sentinel errors for malformed request bodies.
var (
	ErrInvalidJSON          = errors.New("invalid JSON body")
	ErrInvalidMultipartForm = errors.New("invalid multipart form")
	ErrNoAudioFile          = errors.New("no audio file in form")
	ErrInvalidTemperature   = errors.New("invalid temperature")
)
