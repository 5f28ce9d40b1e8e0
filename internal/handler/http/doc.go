// Package http implements the HTTP front end of the gateway.
//
// It exposes the inference routes of the resolved orchestrator under the
// deployment's route prefix, plus /metrics. Cross-cutting concerns such as
// request tracing, access logging, request metrics, CORS, compression,
// optional bearer authentication and the deployment's concurrency limits are
// handled in this package before requests reach the orchestrator.
//
// Engine error payloads are written back verbatim with the engine's status
// code; every other error is mapped to a status code by errors_mapper.go.
package http
