package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/oc-serve/internal/logger"
	"github.com/MKhiriev/oc-serve/internal/utils"
	"github.com/MKhiriev/oc-serve/models"
)

// Engine API paths of an OpenAI-compatible vLLM server.
const (
	pathHealth          = "/health"
	pathModels          = "/v1/models"
	pathChatCompletions = "/v1/chat/completions"
	pathCompletions     = "/v1/completions"
	pathTokenize        = "/tokenize"
	pathDetokenize      = "/detokenize"
	pathScore           = "/score"
	pathPooling         = "/pooling"
	pathTranscriptions  = "/v1/audio/transcriptions"
)

// HTTPEngineConfig configures [NewHTTPEngineAdapter].
type HTTPEngineConfig struct {
	// BaseURL is the engine address, with or without scheme.
	BaseURL string

	// Timeout bounds every non-streaming request. Streams are bounded only
	// by the caller's context.
	Timeout time.Duration

	// ChatDefaults are merged into every chat request for keys the client
	// did not send (e.g. chat_template).
	ChatDefaults map[string]any

	// CompletionDefaults are merged into every completion request.
	CompletionDefaults map[string]any

	// TokenizeDefaults are merged into every tokenize request.
	TokenizeDefaults map[string]any
}

type httpEngineAdapter struct {
	client *utils.HTTPClient
	cfg    HTTPEngineConfig

	logger *logger.Logger
}

// NewHTTPEngineAdapter constructs an HTTP implementation of [EngineAdapter].
// It normalises and validates cfg.BaseURL and configures the underlying
// resty client with it.
//
// Returns an error wrapping ErrInvalidEngineURL if the base URL is empty or
// cannot be parsed.
func NewHTTPEngineAdapter(cfg HTTPEngineConfig, log *logger.Logger) (EngineAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidEngineURL, err)
	}

	if log == nil {
		log = logger.Nop()
	}

	client := utils.NewHTTPClient()
	client.
		SetBaseURL(baseURL).
		SetHeader("Accept", models.ContentTypeJSON)

	return &httpEngineAdapter{client: client, cfg: cfg, logger: log}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// CheckHealth implements [EngineAdapter]. It GETs /health and treats any
// 2xx answer as healthy.
func (h *httpEngineAdapter) CheckHealth(ctx context.Context) error {
	ctx, cancel := h.withTimeout(ctx)
	defer cancel()

	resp, err := h.client.R().SetContext(ctx).Get(pathHealth)
	if err != nil {
		return fmt.Errorf("%w: health request: %w", ErrEngineUnavailable, err)
	}
	if !resp.IsSuccess() {
		return fmt.Errorf("%w: http %d", ErrEngineUnhealthy, resp.StatusCode())
	}

	return nil
}

// ShowAvailableModels implements [EngineAdapter]. It GETs /v1/models.
func (h *httpEngineAdapter) ShowAvailableModels(ctx context.Context) (models.ModelList, error) {
	ctx, cancel := h.withTimeout(ctx)
	defer cancel()

	var list models.ModelList
	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&list).
		Get(pathModels)
	if err != nil {
		return models.ModelList{}, fmt.Errorf("%w: models request: %w", ErrEngineUnavailable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ModelList{}, err
	}

	return list, nil
}

// CreateChatCompletion implements [EngineAdapter].
func (h *httpEngineAdapter) CreateChatCompletion(ctx context.Context, req models.ChatCompletionRequest) (models.Response, error) {
	body, err := req.WithDefaults(h.cfg.ChatDefaults)
	if err != nil {
		return models.Response{}, err
	}
	return h.post(ctx, pathChatCompletions, body, req.Stream)
}

// CreateCompletion implements [EngineAdapter].
func (h *httpEngineAdapter) CreateCompletion(ctx context.Context, req models.CompletionRequest) (models.Response, error) {
	body, err := req.WithDefaults(h.cfg.CompletionDefaults)
	if err != nil {
		return models.Response{}, err
	}
	return h.post(ctx, pathCompletions, body, req.Stream)
}

// CreateTokenize implements [EngineAdapter].
func (h *httpEngineAdapter) CreateTokenize(ctx context.Context, req models.TokenizeRequest) (models.Response, error) {
	body, err := req.WithDefaults(h.cfg.TokenizeDefaults)
	if err != nil {
		return models.Response{}, err
	}
	return h.post(ctx, pathTokenize, body, false)
}

// CreateDetokenize implements [EngineAdapter].
func (h *httpEngineAdapter) CreateDetokenize(ctx context.Context, req models.DetokenizeRequest) (models.Response, error) {
	body, err := req.MarshalJSON()
	if err != nil {
		return models.Response{}, err
	}
	return h.post(ctx, pathDetokenize, body, false)
}

// CreateScore implements [EngineAdapter].
func (h *httpEngineAdapter) CreateScore(ctx context.Context, req models.ScoreRequest) (models.Response, error) {
	body, err := req.MarshalJSON()
	if err != nil {
		return models.Response{}, err
	}
	return h.post(ctx, pathScore, body, false)
}

// CreatePooling implements [EngineAdapter].
func (h *httpEngineAdapter) CreatePooling(ctx context.Context, req models.PoolingRequest) (models.Response, error) {
	body, err := req.MarshalJSON()
	if err != nil {
		return models.Response{}, err
	}
	return h.post(ctx, pathPooling, body, false)
}

// CreateTranscription implements [EngineAdapter]. The chunk is uploaded as
// the "file" part of a multipart form together with the request options.
func (h *httpEngineAdapter) CreateTranscription(ctx context.Context, chunk []byte, req models.TranscriptionRequest) (models.TranscriptionResult, error) {
	ctx, cancel := h.withTimeout(ctx)
	defer cancel()

	form := map[string]string{"response_format": "json"}
	if req.Model != "" {
		form["model"] = req.Model
	}
	if req.Language != "" {
		form["language"] = req.Language
	}
	if req.Prompt != "" {
		form["prompt"] = req.Prompt
	}
	if req.Temperature != nil {
		form["temperature"] = strconv.FormatFloat(*req.Temperature, 'f', -1, 64)
	}

	fileName := req.FileName
	if fileName == "" {
		fileName = "audio.wav"
	}

	var result models.TranscriptionResult
	resp, err := h.client.R().
		SetContext(ctx).
		SetFileReader("file", fileName, bytes.NewReader(chunk)).
		SetFormData(form).
		SetResult(&result).
		Post(pathTranscriptions)
	if err != nil {
		return models.TranscriptionResult{}, fmt.Errorf("%w: transcription request: %w", ErrEngineUnavailable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.TranscriptionResult{}, err
	}

	return result, nil
}

// Close implements [EngineAdapter].
func (h *httpEngineAdapter) Close() error {
	h.client.GetClient().CloseIdleConnections()
	return nil
}

// post sends body to path. Streaming requests hand the open body to the
// caller; everything else is read fully and bounded by the configured
// timeout.
func (h *httpEngineAdapter) post(ctx context.Context, path string, body []byte, stream bool) (models.Response, error) {
	if !stream {
		var cancel context.CancelFunc
		ctx, cancel = h.withTimeout(ctx)
		defer cancel()
	}

	req := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", models.ContentTypeJSON).
		SetBody(body)
	if stream {
		req.SetHeader("Accept", models.ContentTypeEventStream).
			SetDoNotParseResponse(true)
	}

	resp, err := req.Post(path)
	if err != nil {
		return models.Response{}, fmt.Errorf("%w: %s: %w", ErrEngineUnavailable, path, err)
	}

	if stream {
		raw := resp.RawBody()
		if !resp.IsSuccess() {
			defer raw.Close()
			payload, _ := io.ReadAll(raw)
			return models.Response{}, mapStatus(resp.StatusCode(), payload)
		}
		return models.StreamResponse(raw), nil
	}

	if err = mapHTTPError(resp); err != nil {
		h.logger.Debug().Str("path", path).Int("status", resp.StatusCode()).Msg("engine returned an error payload")
		return models.Response{}, err
	}
	if !json.Valid(resp.Body()) {
		return models.Response{}, fmt.Errorf("%w: %s", ErrDecodeResponse, path)
	}

	return models.RawJSONResponse(resp.StatusCode(), resp.Body()), nil
}

func (h *httpEngineAdapter) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if h.cfg.Timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, h.cfg.Timeout)
}
