// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer between the gateway and the
// external inference engine.
//
// The primary abstraction is [EngineAdapter], which decouples the servers
// from the protocol spoken by the engine. The package ships an HTTP
// implementation for OpenAI-compatible engines such as a vLLM API server
// ([NewHTTPEngineAdapter]).
//
// Error payloads returned by the engine are decoded into
// [models.ErrorResponse] by mapHTTPError and passed through unchanged, so the
// client sees the engine's own status code and body. Transport failures wrap
// [ErrEngineUnavailable].
package adapter

import (
	"context"

	"github.com/MKhiriev/oc-serve/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/engine_adapter_mock.go -package=mock

// EngineAdapter defines transport-agnostic communication with an inference
// engine. Every method returns either a success payload or an error; engine
// error payloads are returned as *models.ErrorResponse.
type EngineAdapter interface {
	// CheckHealth returns nil when the engine reports itself healthy.
	CheckHealth(ctx context.Context) error

	// ShowAvailableModels returns the models the engine is serving.
	ShowAvailableModels(ctx context.Context) (models.ModelList, error)

	// CreateChatCompletion forwards a chat request. When req.Stream is set
	// the returned response carries an open event stream the caller must
	// close.
	CreateChatCompletion(ctx context.Context, req models.ChatCompletionRequest) (models.Response, error)

	// CreateCompletion forwards a text completion request. Streaming works
	// as in CreateChatCompletion.
	CreateCompletion(ctx context.Context, req models.CompletionRequest) (models.Response, error)

	// CreateTokenize forwards a tokenize request.
	CreateTokenize(ctx context.Context, req models.TokenizeRequest) (models.Response, error)

	// CreateDetokenize forwards a detokenize request.
	CreateDetokenize(ctx context.Context, req models.DetokenizeRequest) (models.Response, error)

	// CreateScore forwards a scoring request.
	CreateScore(ctx context.Context, req models.ScoreRequest) (models.Response, error)

	// CreatePooling forwards a pooling (embeddings) request.
	CreatePooling(ctx context.Context, req models.PoolingRequest) (models.Response, error)

	// CreateTranscription transcribes one chunk of audio using the options
	// of req. req.File is ignored in favour of chunk.
	CreateTranscription(ctx context.Context, chunk []byte, req models.TranscriptionRequest) (models.TranscriptionResult, error)

	// Close releases idle connections held by the adapter.
	Close() error
}
