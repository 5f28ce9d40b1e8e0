// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package vllm implements the "vllm" inference server: a permit-gated client
// of a vLLM OpenAI-compatible API server.
package vllm

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/semaphore"

	"github.com/MKhiriev/oc-serve/internal/adapter"
	"github.com/MKhiriev/oc-serve/internal/logger"
	"github.com/MKhiriev/oc-serve/internal/metrics"
	"github.com/MKhiriev/oc-serve/models"
)

// Name is the registry name of the server.
const Name = "vllm"

// Messages returned for features switched off in the configuration.
const (
	MsgScoringDisabled       = "Scoring is disabled on this server."
	MsgPoolingDisabled       = "Pooling is disabled on this server."
	MsgTranscriptionDisabled = "It seems this model does not support transcription, or transcription is disabled on this server."
	MsgModelHealthy          = "Model is Healthy!"
)

// Endpoint labels used for metrics and logs.
const (
	endpointHealth     = "health"
	endpointModelInfo  = "model_info"
	endpointInstruct   = "instruct"
	endpointComplete   = "complete"
	endpointTranscribe = "transcribe"
	endpointTokenize   = "tokenize"
	endpointDetokenize = "detokenize"
	endpointScore      = "score"
	endpointPooling    = "pooling"
)

// Server serves inference requests through an engine adapter. At most
// cfg.MaxConcurrentCalls engine calls are in flight at any time; a streamed
// response keeps its permit until the stream is closed.
type Server struct {
	cfg      *Config
	engine   adapter.EngineAdapter
	sem      *semaphore.Weighted
	permits  int64
	splitter AudioSplitter
	metrics  *metrics.Registry
	logger   *logger.Logger
}

// Option customises a Server.
type Option func(*Server)

// WithAudioSplitter replaces the default WAV splitter.
func WithAudioSplitter(s AudioSplitter) Option {
	return func(srv *Server) {
		srv.splitter = s
	}
}

// New creates a server for cfg that talks to engine. A nil reg gets a
// private registry and a nil log discards output.
func New(cfg *Config, engine adapter.EngineAdapter, reg *metrics.Registry, log *logger.Logger, opts ...Option) *Server {
	if reg == nil {
		reg = metrics.New()
	}
	if log == nil {
		log = logger.Nop()
	}

	permits := cfg.MaxConcurrentCalls()
	s := &Server{
		cfg:      cfg,
		engine:   engine,
		sem:      semaphore.NewWeighted(permits),
		permits:  permits,
		splitter: WAVSplitter{ChunkLength: DefaultChunkLength},
		metrics:  reg,
		logger:   log,
	}
	for _, opt := range opts {
		opt(s)
	}

	reg.Engine.SetCapacity(permits)
	return s
}

// Config returns the bound configuration.
func (s *Server) Config() *Config {
	return s.cfg
}

// CheckModelHealth asks the engine for its health.
func (s *Server) CheckModelHealth(ctx context.Context) (models.Response, error) {
	return s.do(ctx, endpointHealth, func(ctx context.Context) (models.Response, error) {
		if err := s.engine.CheckHealth(ctx); err != nil {
			return models.Response{}, err
		}
		return models.TextResponse(MsgModelHealthy), nil
	})
}

// ModelInfo returns the engine's model list.
func (s *Server) ModelInfo(ctx context.Context) (models.Response, error) {
	return s.do(ctx, endpointModelInfo, func(ctx context.Context) (models.Response, error) {
		list, err := s.engine.ShowAvailableModels(ctx)
		if err != nil {
			return models.Response{}, err
		}
		return models.JSONResponse(http.StatusOK, list)
	})
}

// Instruct runs a chat completion.
func (s *Server) Instruct(ctx context.Context, req models.ChatCompletionRequest) (models.Response, error) {
	return s.do(ctx, endpointInstruct, func(ctx context.Context) (models.Response, error) {
		return s.engine.CreateChatCompletion(ctx, req)
	})
}

// Complete runs a text completion.
func (s *Server) Complete(ctx context.Context, req models.CompletionRequest) (models.Response, error) {
	return s.do(ctx, endpointComplete, func(ctx context.Context) (models.Response, error) {
		return s.engine.CreateCompletion(ctx, req)
	})
}

// Tokenize converts text or chat messages into token ids.
func (s *Server) Tokenize(ctx context.Context, req models.TokenizeRequest) (models.Response, error) {
	return s.do(ctx, endpointTokenize, func(ctx context.Context) (models.Response, error) {
		return s.engine.CreateTokenize(ctx, req)
	})
}

// Detokenize converts token ids back into text.
func (s *Server) Detokenize(ctx context.Context, req models.DetokenizeRequest) (models.Response, error) {
	return s.do(ctx, endpointDetokenize, func(ctx context.Context) (models.Response, error) {
		return s.engine.CreateDetokenize(ctx, req)
	})
}

// Score runs a scoring request when scoring is enabled.
func (s *Server) Score(ctx context.Context, req models.ScoreRequest) (models.Response, error) {
	if !s.cfg.ScoringEnabled() {
		return s.disabled(endpointScore, MsgScoringDisabled)
	}
	return s.do(ctx, endpointScore, func(ctx context.Context) (models.Response, error) {
		return s.engine.CreateScore(ctx, req)
	})
}

// Pooling runs a pooling request when pooling is enabled.
func (s *Server) Pooling(ctx context.Context, req models.PoolingRequest) (models.Response, error) {
	if !s.cfg.PoolingEnabled() {
		return s.disabled(endpointPooling, MsgPoolingDisabled)
	}
	return s.do(ctx, endpointPooling, func(ctx context.Context) (models.Response, error) {
		return s.engine.CreatePooling(ctx, req)
	})
}

// Transcribe splits the uploaded audio into chunks, transcribes them in
// order under a single permit and joins the texts with a space.
func (s *Server) Transcribe(ctx context.Context, req models.TranscriptionRequest) (models.Response, error) {
	if !s.cfg.TranscriptionEnabled() {
		return s.disabled(endpointTranscribe, MsgTranscriptionDisabled)
	}
	return s.do(ctx, endpointTranscribe, func(ctx context.Context) (models.Response, error) {
		chunks, duration, err := s.splitter.Split(req.File)
		if err != nil {
			return models.Response{}, fmt.Errorf("split audio: %w", err)
		}
		if duration == 0 && len(chunks) == 1 {
			s.logger.Warn().
				Str("file_name", req.FileName).
				Int("file_size", len(req.File)).
				Msg("audio format not splittable, sent as one chunk; audio longer than the engine window may be truncated or rejected")
		}

		texts := make([]string, 0, len(chunks))
		for i, chunk := range chunks {
			result, err := s.engine.CreateTranscription(ctx, chunk, req)
			if err != nil {
				return models.Response{}, err
			}
			s.logger.Debug().Int("chunk", i).Int("chunks", len(chunks)).Msg("audio chunk transcribed")
			texts = append(texts, result.Text)
		}

		data := []models.TranscribeResponseData{{
			Index:  1,
			Object: "text",
			Text:   strings.Join(texts, " "),
		}}
		usage := &models.UsageInfoTranscription{InputAudioDuration: duration}
		return models.JSONResponse(http.StatusOK, models.NewSpeechResponse(s.cfg.Model, data, usage))
	})
}

// Metrics returns the registry the server reports to.
func (s *Server) Metrics() prometheus.Gatherer {
	return s.metrics
}

// Close releases the engine connections.
func (s *Server) Close() error {
	return s.engine.Close()
}

func (s *Server) disabled(endpoint, message string) (models.Response, error) {
	s.metrics.Engine.ObserveCall(endpoint, metrics.OutcomeDisabled, 0)
	return models.Response{}, models.NewDisabledFeature(message)
}

// acquire takes one permit. The returned release is safe to call more than
// once.
func (s *Server) acquire(ctx context.Context, endpoint string) (func(), error) {
	if err := s.sem.Acquire(ctx, 1); err != nil {
		s.metrics.Engine.ObserveCall(endpoint, metrics.OutcomeCancelled, 0)
		return nil, fmt.Errorf("wait for %s permit: %w", endpoint, err)
	}
	s.metrics.Engine.PermitAcquired()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.sem.Release(1)
			s.metrics.Engine.PermitReleased()
		})
	}, nil
}

// do runs call under a permit. A streamed response takes over the permit and
// releases it when the stream is closed.
func (s *Server) do(ctx context.Context, endpoint string, call func(ctx context.Context) (models.Response, error)) (resp models.Response, err error) {
	release, err := s.acquire(ctx, endpoint)
	if err != nil {
		return models.Response{}, err
	}

	start := time.Now()
	defer func() {
		s.metrics.Engine.ObserveCall(endpoint, outcomeOf(err), time.Since(start))
		if err == nil && resp.IsStream() {
			resp.Stream = &permitStream{ReadCloser: resp.Stream, release: release}
			return
		}
		release()
	}()

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%s: engine call panicked: %v", endpoint, r)
			resp = models.Response{}
		}
	}()

	resp, err = call(ctx)
	if err != nil {
		s.logger.Debug().Err(err).Str("endpoint", endpoint).Msg("engine call failed")
	}
	return resp, err
}

func outcomeOf(err error) string {
	switch {
	case err == nil:
		return metrics.OutcomeOK
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return metrics.OutcomeCancelled
	default:
		return metrics.OutcomeError
	}
}

// permitStream releases its permit when closed.
type permitStream struct {
	io.ReadCloser
	release func()
}

func (p *permitStream) Close() error {
	err := p.ReadCloser.Close()
	p.release()
	return err
}
