// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// oc-serve HTTP front end and middleware.
//
// All Msg* constants are human-readable message strings that are written into
// error response bodies or log entries to describe the outcome of a request.
package app

const (
	// MsgInvalidJSON is returned when a request body is not a JSON object.
	MsgInvalidJSON = "Invalid JSON was passed"

	// MsgEmptyRequestBody is returned when an inference route receives no
	// body at all.
	MsgEmptyRequestBody = "empty request body"

	// MsgInvalidMultipartForm is returned when /transcribe cannot parse its
	// multipart form.
	MsgInvalidMultipartForm = "invalid multipart form"

	// MsgNoAudioFile is returned when the /transcribe form has no "file"
	// part.
	MsgNoAudioFile = "no audio file provided"

	// MsgInvalidTemperature is returned when the "temperature" form field of
	// /transcribe is not a number.
	MsgInvalidTemperature = "temperature must be a number"

	// MsgEngineUnavailable is returned when the inference engine cannot be
	// reached or drops the connection.
	MsgEngineUnavailable = "inference engine unavailable"

	// MsgEngineUnhealthy is returned when the engine answers its health check
	// with an error status.
	MsgEngineUnhealthy = "inference engine unhealthy"

	// MsgBadEngineResponse is returned when a successful engine answer cannot
	// be decoded.
	MsgBadEngineResponse = "cannot decode inference engine response"

	// MsgRequestTimeout is returned when the request deadline passed before
	// the engine answered.
	MsgRequestTimeout = "request timed out"

	// MsgRequestCancelled is logged when the client went away before the
	// request finished.
	MsgRequestCancelled = "request cancelled"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgTokenIsExpired is returned when a JWT bearer token is syntactically
	// valid but its expiry time has passed.
	MsgTokenIsExpired = "token is expired"

	// MsgTokenIsExpiredOrInvalid is returned when a JWT bearer token is
	// either expired or cannot be verified (e.g. wrong signature).
	MsgTokenIsExpiredOrInvalid = "token is expired or invalid"

	// MsgTooManyRequests is returned when the deployment's request queue is
	// full.
	MsgTooManyRequests = "too many requests, try again later"
)
