package http

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/MKhiriev/oc-serve/internal/logger"
	"github.com/MKhiriev/oc-serve/models"
)

const (
	// maxAudioBytes caps the size of a /transcribe upload.
	maxAudioBytes = 512 << 20

	// multipartMemory is kept in memory while parsing the form; the rest is
	// spooled to temporary files.
	multipartMemory = 32 << 20
)

// transcribe serves the multipart /transcribe route. The form carries the
// audio in "file" plus the optional model, language, prompt,
// response_format and temperature fields.
//
// Only PCM WAV uploads are cut into 25 s chunks. Any other format is sent to
// the engine in one request, so long compressed audio should be uploaded as
// WAV.
func (h *Handler) transcribe(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	r.Body = http.MaxBytesReader(w, r.Body, maxAudioBytes)
	req, err := parseTranscriptionForm(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	log.Debug().
		Str("file_name", req.FileName).
		Int("file_size", len(req.File)).
		Str("language", req.Language).
		Msg("transcription request received")

	ctx := r.Context()
	if h.requestTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.requestTimeout)
		defer cancel()
	}

	resp, err := h.orchestrator.Transcribe(ctx, req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeResponse(w, r, resp)
}

func parseTranscriptionForm(r *http.Request) (models.TranscriptionRequest, error) {
	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		return models.TranscriptionRequest{}, fmt.Errorf("%w: %w", ErrInvalidMultipartForm, err)
	}
	defer r.MultipartForm.RemoveAll()

	file, header, err := r.FormFile("file")
	if err != nil {
		return models.TranscriptionRequest{}, fmt.Errorf("%w: %w", ErrNoAudioFile, err)
	}
	defer file.Close()

	audio, err := io.ReadAll(file)
	if err != nil {
		return models.TranscriptionRequest{}, fmt.Errorf("%w: %w", ErrInvalidMultipartForm, err)
	}
	if len(audio) == 0 {
		return models.TranscriptionRequest{}, ErrNoAudioFile
	}

	req := models.TranscriptionRequest{
		File:           audio,
		FileName:       header.Filename,
		Model:          r.FormValue("model"),
		Language:       r.FormValue("language"),
		Prompt:         r.FormValue("prompt"),
		ResponseFormat: r.FormValue("response_format"),
	}

	if raw := r.FormValue("temperature"); raw != "" {
		t, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return models.TranscriptionRequest{}, fmt.Errorf("%w: %w", ErrInvalidTemperature, err)
		}
		req.Temperature = &t
	}

	return req, nil
}
