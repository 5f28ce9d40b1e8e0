// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// ErrEmptyRequestBody is returned when an inference request has no JSON body.
var ErrEmptyRequestBody = errors.New("empty request body")

// InferenceRequest is the common envelope of every OpenAI-compatible request
// the gateway forwards. Model and Stream are read from the body for routing
// and logging; Body keeps the request exactly as the client sent it so that
// engine-specific fields survive the round trip untouched.
type InferenceRequest struct {
	Model  string          `json:"model,omitempty"`
	Stream bool            `json:"stream,omitempty"`
	Body   json.RawMessage `json:"-"`
}

// UnmarshalJSON keeps a copy of b and extracts the routing fields.
func (r *InferenceRequest) UnmarshalJSON(b []byte) error {
	trimmed := bytes.TrimSpace(b)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return ErrEmptyRequestBody
	}

	var head struct {
		Model  string `json:"model"`
		Stream bool   `json:"stream"`
	}
	if err := json.Unmarshal(trimmed, &head); err != nil {
		return fmt.Errorf("decode inference request: %w", err)
	}

	r.Model = head.Model
	r.Stream = head.Stream
	r.Body = append(json.RawMessage(nil), trimmed...)
	return nil
}

// Streaming reports whether the client asked for a server-sent events
// stream.
func (r InferenceRequest) Streaming() bool {
	return r.Stream
}

// MarshalJSON returns the original body, or a minimal object when the
// request was built in code.
func (r InferenceRequest) MarshalJSON() ([]byte, error) {
	if len(r.Body) > 0 {
		return r.Body, nil
	}
	type plain struct {
		Model  string `json:"model,omitempty"`
		Stream bool   `json:"stream,omitempty"`
	}
	return json.Marshal(plain{Model: r.Model, Stream: r.Stream})
}

// WithDefaults returns a copy of the body in which every key of defaults
// that the client did not send is filled in. Nil defaults are skipped.
func (r InferenceRequest) WithDefaults(defaults map[string]any) (json.RawMessage, error) {
	raw, err := r.MarshalJSON()
	if err != nil {
		return nil, err
	}

	fields := make(map[string]json.RawMessage)
	if err = json.Unmarshal(raw, &fields); err != nil {
		return nil, fmt.Errorf("decode inference request: %w", err)
	}

	changed := false
	for k, v := range defaults {
		if v == nil {
			continue
		}
		if _, ok := fields[k]; ok {
			continue
		}
		encoded, err := json.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("encode default %q: %w", k, err)
		}
		fields[k] = encoded
		changed = true
	}
	if !changed {
		return raw, nil
	}

	return json.Marshal(fields)
}

// ChatCompletionRequest is the body of an /instruct call.
type ChatCompletionRequest struct {
	InferenceRequest
}

// CompletionRequest is the body of a /complete call.
type CompletionRequest struct {
	InferenceRequest
}

// TokenizeRequest is the body of a /tokenize call.
type TokenizeRequest struct {
	InferenceRequest
}

// DetokenizeRequest is the body of a /detokenize call.
type DetokenizeRequest struct {
	InferenceRequest
}

// ScoreRequest is the body of a /score call.
type ScoreRequest struct {
	InferenceRequest
}

// PoolingRequest is the body of a /pooling call.
type PoolingRequest struct {
	InferenceRequest
}

// ModelCard describes one model served by the engine.
type ModelCard struct {
	ID          string `json:"id"`
	Object      string `json:"object"`
	Created     int64  `json:"created"`
	OwnedBy     string `json:"owned_by"`
	Root        string `json:"root,omitempty"`
	Parent      string `json:"parent,omitempty"`
	MaxModelLen int    `json:"max_model_len,omitempty"`
}

// ModelList is returned by /model-info.
type ModelList struct {
	Object string      `json:"object"`
	Data   []ModelCard `json:"data"`
}
