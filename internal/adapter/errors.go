// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "errors"

var (
	// ErrEngineUnavailable wraps transport failures: the engine could not be
	// reached or the connection broke before a response arrived.
	ErrEngineUnavailable = errors.New("inference engine unavailable")

	// ErrEngineUnhealthy is returned by CheckHealth when the engine answers
	// with a non-2xx status.
	ErrEngineUnhealthy = errors.New("inference engine unhealthy")

	// ErrInvalidEngineURL is returned by NewHTTPEngineAdapter for an empty or
	// malformed base URL.
	ErrInvalidEngineURL = errors.New("invalid engine url")

	// ErrDecodeResponse is returned when a 2xx engine response cannot be
	// decoded.
	ErrDecodeResponse = errors.New("cannot decode engine response")
)
