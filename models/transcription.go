// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"time"

	"github.com/google/uuid"
)

// TranscriptionRequest is the multipart form of a /transcribe call.
type TranscriptionRequest struct {
	File           []byte
	FileName       string
	Model          string
	Language       string
	Prompt         string
	ResponseFormat string
	Temperature    *float64
}

// TranscriptionResult is the engine answer for one audio chunk.
type TranscriptionResult struct {
	Text string `json:"text"`
}

// TranscribeResponseData is one transcription entry of a SpeechResponse.
type TranscribeResponseData struct {
	Index            int      `json:"index"`
	Object           string   `json:"object"`
	Text             string   `json:"text"`
	Seek             *float64 `json:"seek,omitempty"`
	Start            *float64 `json:"start,omitempty"`
	End              *float64 `json:"end,omitempty"`
	Tokens           []int    `json:"tokens,omitempty"`
	Temperature      *float64 `json:"temperature,omitempty"`
	AvgLogprob       *float64 `json:"avg_logprob,omitempty"`
	CompressionRatio *float64 `json:"compression_ratio,omitempty"`
	NoSpeechProb     *float64 `json:"no_speech_prob,omitempty"`
}

// UsageInfoTranscription reports the cost of a transcription.
type UsageInfoTranscription struct {
	TranscriptionTokens int     `json:"transcription_tokens"`
	InputAudioDuration  float64 `json:"input_audio_duration"`
}

// SpeechResponse is the body returned by /transcribe.
type SpeechResponse struct {
	ID      string                   `json:"id"`
	Object  string                   `json:"object"`
	Created int64                    `json:"created"`
	Model   string                   `json:"model"`
	Data    []TranscribeResponseData `json:"data"`
	Usage   *UsageInfoTranscription  `json:"usage,omitempty"`
}

// NewSpeechResponse fills the generated fields: an "aud-" prefixed id, the
// "list" object tag and the creation time.
func NewSpeechResponse(model string, data []TranscribeResponseData, usage *UsageInfoTranscription) SpeechResponse {
	return SpeechResponse{
		ID:      "aud-" + uuid.NewString(),
		Object:  "list",
		Created: time.Now().Unix(),
		Model:   model,
		Data:    data,
		Usage:   usage,
	}
}
