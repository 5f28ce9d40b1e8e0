// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/oc-serve/models"
)

func multipartBody(t *testing.T, file []byte, fields map[string]string) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	if file != nil {
		part, err := mw.CreateFormFile("file", "speech.wav")
		require.NoError(t, err)
		_, err = part.Write(file)
		require.NoError(t, err)
	}
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	require.NoError(t, mw.Close())
	return &buf, mw.FormDataContentType()
}

func TestTranscribe_ParsesForm(t *testing.T) {
	tr := newDefaultRouter(t)
	audio := []byte("RIFF....WAVE")

	tr.orch.EXPECT().Transcribe(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req models.TranscriptionRequest) (models.Response, error) {
			assert.Equal(t, audio, req.File)
			assert.Equal(t, "speech.wav", req.FileName)
			assert.Equal(t, "whisper", req.Model)
			assert.Equal(t, "en", req.Language)
			assert.Equal(t, "json", req.ResponseFormat)
			require.NotNil(t, req.Temperature)
			assert.InDelta(t, 0.2, *req.Temperature, 1e-9)
			return models.JSONResponse(http.StatusOK, map[string]string{"text": "hello"})
		})

	body, contentType := multipartBody(t, audio, map[string]string{
		"model":           "whisper",
		"language":        "en",
		"response_format": "json",
		"temperature":     "0.2",
	})
	req := httptest.NewRequest(http.MethodPost, RouteTranscribe, body)
	req.Header.Set("Content-Type", contentType)
	rr := httptest.NewRecorder()

	tr.router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"text":"hello"}`, rr.Body.String())
}

func TestTranscribe_BadForms(t *testing.T) {
	tests := []struct {
		name        string
		file        []byte
		fields      map[string]string
		contentType string
		wantMessage string
	}{
		{
			name:        "no file part",
			fields:      map[string]string{"model": "whisper"},
			wantMessage: "no audio file provided",
		},
		{
			name:        "empty file",
			file:        []byte{},
			wantMessage: "no audio file provided",
		},
		{
			name:        "bad temperature",
			file:        []byte("audio"),
			fields:      map[string]string{"temperature": "hot"},
			wantMessage: "temperature must be a number",
		},
		{
			name:        "not multipart",
			file:        []byte("audio"),
			contentType: "application/json",
			wantMessage: "invalid multipart form",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := newDefaultRouter(t)

			body, contentType := multipartBody(t, tt.file, tt.fields)
			if tt.contentType != "" {
				contentType = tt.contentType
			}
			req := httptest.NewRequest(http.MethodPost, RouteTranscribe, body)
			req.Header.Set("Content-Type", contentType)
			rr := httptest.NewRecorder()

			tr.router.ServeHTTP(rr, req)

			assert.Equal(t, http.StatusBadRequest, rr.Code)
			assert.Contains(t, rr.Body.String(), tt.wantMessage)
		})
	}
}
