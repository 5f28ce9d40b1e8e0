// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package vllm

import (
	"encoding/json"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/oc-serve/internal/envbind"
)

// Environment prefixes of the vllm server.
const (
	EnvPrefix      = "VLLM_"
	EnvExtraPrefix = "VLLM_EXTRA_"
)

// Keys of the extra bag read by the server.
const (
	ExtraResponseRole              = "response_role"
	ExtraMaxConcurrentCalls        = "max_concurrent_calls"
	ExtraChatTemplate              = "chat_template"
	ExtraLoRAModules               = "lora_modules"
	ExtraSkips                     = "skips"
	ExtraReturnTokensAsTokenIDs    = "return_tokens_as_token_ids"
	ExtraEnableAutoTools           = "enable_auto_tools"
	ExtraToolParser                = "tool_parser"
	ExtraChatTemplateContentFormat = "chat_template_content_format"
	ExtraUseV1                     = "vllm_use_v1"
	ExtraEnablePooling             = "vllm_enable_pooling"
	ExtraEnableScoring             = "vllm_enable_scoring"
	ExtraUseTranscribeServer       = "use_transcribe_server"
)

// DType is the model weight and activation precision.
type DType string

const (
	DTypeAuto     DType = "auto"
	DTypeHalf     DType = "half"
	DTypeFloat16  DType = "float16"
	DTypeBFloat16 DType = "bfloat16"
	DTypeFloat    DType = "float"
	DTypeFloat32  DType = "float32"
)

// EnumMembers lets the binder accept both AUTO and auto.
func (DType) EnumMembers() []envbind.EnumMember {
	return []envbind.EnumMember{
		{Name: "AUTO", Value: string(DTypeAuto)},
		{Name: "HALF", Value: string(DTypeHalf)},
		{Name: "FLOAT16", Value: string(DTypeFloat16)},
		{Name: "BFLOAT16", Value: string(DTypeBFloat16)},
		{Name: "FLOAT", Value: string(DTypeFloat)},
		{Name: "FLOAT32", Value: string(DTypeFloat32)},
	}
}

// Config holds the engine arguments of a vLLM deployment plus the endpoint
// of the engine's OpenAI-compatible API server.
type Config struct {
	// Model is the name or path of the Hugging Face model.
	Model string `env:"model"`
	// ServedModelName is the model name reported to clients. Empty means
	// Model.
	ServedModelName string `env:"served_model_name"`
	Tokenizer       string `env:"tokenizer"`
	Revision        string `env:"revision"`
	DType           DType  `env:"dtype"`
	// MaxModelLen is the context length; nil lets the engine derive it.
	MaxModelLen          *int           `env:"max_model_len"`
	TensorParallelSize   int            `env:"tensor_parallel_size"`
	PipelineParallelSize int            `env:"pipeline_parallel_size"`
	GPUMemoryUtilization float64        `env:"gpu_memory_utilization"`
	MaxNumSeqs           *int           `env:"max_num_seqs"`
	Seed                 *int           `env:"seed"`
	TrustRemoteCode      bool           `env:"trust_remote_code"`
	EnforceEager         bool           `env:"enforce_eager"`
	EnableLoRA           bool           `env:"enable_lora"`
	Quantization         *string        `env:"quantization"`
	KVCacheDtype         string         `env:"kv_cache_dtype"`
	LimitMMPerPrompt     map[string]int `env:"limit_mm_per_prompt"`
	HFOverrides          map[string]any `env:"hf_overrides"`

	// EngineURL is the address of the engine API server.
	EngineURL string `env:"engine_url"`
	// RequestTimeout bounds each non-streaming engine call.
	RequestTimeout time.Duration `env:"request_timeout"`

	// Extra holds tuning flags outside the engine argument schema.
	Extra envbind.Extra `env:",extra"`
}

// NewConfig returns the default vllm configuration.
func NewConfig() *Config {
	return &Config{
		Model:                "facebook/opt-125m",
		DType:                DTypeAuto,
		TensorParallelSize:   1,
		PipelineParallelSize: 1,
		GPUMemoryUtilization: 0.9,
		KVCacheDtype:         "auto",
		EngineURL:            "http://127.0.0.1:8001",
		RequestTimeout:       10 * time.Minute,
		Extra:                DefaultExtra(),
	}
}

// DefaultExtra returns the default extra bag.
func DefaultExtra() envbind.Extra {
	return envbind.Extra{
		ExtraResponseRole:              "assistant",
		ExtraMaxConcurrentCalls:        int64(1),
		ExtraChatTemplate:              nil,
		ExtraLoRAModules:               nil,
		ExtraSkips:                     int64(0),
		ExtraReturnTokensAsTokenIDs:    false,
		ExtraEnableAutoTools:           false,
		ExtraToolParser:                nil,
		ExtraChatTemplateContentFormat: "auto",
		ExtraUseV1:                     int64(1),
		ExtraEnablePooling:             false,
		ExtraEnableScoring:             false,
		ExtraUseTranscribeServer:       false,
	}
}

// Build binds the configuration from env.
func (c *Config) Build(env envbind.Snapshot) envbind.Report {
	return envbind.Bind(env, c, c.EnvOptions())
}

// EnvOptions returns the VLLM_ and VLLM_EXTRA_ prefixes.
func (c *Config) EnvOptions() envbind.Options {
	return envbind.Options{Prefix: EnvPrefix, ExtraPrefix: EnvExtraPrefix}
}

// ModelName is the name clients address the model by.
func (c *Config) ModelName() string {
	if c.ServedModelName != "" {
		return c.ServedModelName
	}
	return c.Model
}

// MaxConcurrentCalls is the permit count, at least 1.
func (c *Config) MaxConcurrentCalls() int64 {
	n := c.Extra.Int(ExtraMaxConcurrentCalls, 1)
	if n < 1 {
		return 1
	}
	return int64(n)
}

// ScoringEnabled reports whether /score is served.
func (c *Config) ScoringEnabled() bool {
	return c.Extra.Bool(ExtraEnableScoring, false)
}

// PoolingEnabled reports whether /pooling is served.
func (c *Config) PoolingEnabled() bool {
	return c.Extra.Bool(ExtraEnablePooling, false)
}

// TranscriptionEnabled reports whether /transcribe is served.
func (c *Config) TranscriptionEnabled() bool {
	return c.Extra.Bool(ExtraUseTranscribeServer, false)
}

// ChatDefaults are the chat request fields filled from the extra bag when
// the client leaves them out.
func (c *Config) ChatDefaults() map[string]any {
	defaults := map[string]any{ExtraChatTemplate: c.extraValue(ExtraChatTemplate)}
	if c.Extra.Bool(ExtraReturnTokensAsTokenIDs, false) {
		defaults[ExtraReturnTokensAsTokenIDs] = true
	}
	return defaults
}

// CompletionDefaults are the completion request fields filled from the extra
// bag.
func (c *Config) CompletionDefaults() map[string]any {
	if c.Extra.Bool(ExtraReturnTokensAsTokenIDs, false) {
		return map[string]any{ExtraReturnTokensAsTokenIDs: true}
	}
	return nil
}

// TokenizeDefaults are the tokenize request fields filled from the extra bag.
func (c *Config) TokenizeDefaults() map[string]any {
	return map[string]any{ExtraChatTemplate: c.extraValue(ExtraChatTemplate)}
}

func (c *Config) extraValue(key string) any {
	v, _ := c.Extra.Get(key)
	return v
}

// CommandLine renders the engine arguments as `vllm serve` flags. Only
// values that differ from the engine's own defaults are emitted, in a stable
// order. Extra flags that configure the engine's API server are included.
func (c *Config) CommandLine() []string {
	args := []string{"vllm", "serve", c.Model}
	flag := func(name, value string) {
		args = append(args, "--"+name, value)
	}
	toggle := func(name string, on bool) {
		if on {
			args = append(args, "--"+name)
		}
	}

	if c.ServedModelName != "" {
		flag("served-model-name", c.ServedModelName)
	}
	if c.Tokenizer != "" {
		flag("tokenizer", c.Tokenizer)
	}
	if c.Revision != "" {
		flag("revision", c.Revision)
	}
	if c.DType != "" && c.DType != DTypeAuto {
		flag("dtype", string(c.DType))
	}
	if c.MaxModelLen != nil {
		flag("max-model-len", strconv.Itoa(*c.MaxModelLen))
	}
	if c.TensorParallelSize > 1 {
		flag("tensor-parallel-size", strconv.Itoa(c.TensorParallelSize))
	}
	if c.PipelineParallelSize > 1 {
		flag("pipeline-parallel-size", strconv.Itoa(c.PipelineParallelSize))
	}
	flag("gpu-memory-utilization", strconv.FormatFloat(c.GPUMemoryUtilization, 'f', -1, 64))
	if c.MaxNumSeqs != nil {
		flag("max-num-seqs", strconv.Itoa(*c.MaxNumSeqs))
	}
	if c.Seed != nil {
		flag("seed", strconv.Itoa(*c.Seed))
	}
	toggle("trust-remote-code", c.TrustRemoteCode)
	toggle("enforce-eager", c.EnforceEager)
	toggle("enable-lora", c.EnableLoRA)
	if c.Quantization != nil && *c.Quantization != "" {
		flag("quantization", *c.Quantization)
	}
	if c.KVCacheDtype != "" && c.KVCacheDtype != "auto" {
		flag("kv-cache-dtype", c.KVCacheDtype)
	}
	if len(c.LimitMMPerPrompt) > 0 {
		keys := make([]string, 0, len(c.LimitMMPerPrompt))
		for k := range c.LimitMMPerPrompt {
			keys = append(keys, k)
		}
		slices.Sort(keys)
		parts := make([]string, len(keys))
		for i, k := range keys {
			parts[i] = fmt.Sprintf("%s=%d", k, c.LimitMMPerPrompt[k])
		}
		flag("limit-mm-per-prompt", strings.Join(parts, ","))
	}
	if len(c.HFOverrides) > 0 {
		if b, err := json.Marshal(c.HFOverrides); err == nil {
			flag("hf-overrides", string(b))
		}
	}
	if lora, ok := c.Extra.Get(ExtraLoRAModules); ok && lora != nil {
		if b, err := json.Marshal(lora); err == nil {
			flag("lora-modules", string(b))
		}
	}

	if role := c.Extra.String(ExtraResponseRole, "assistant"); role != "assistant" {
		flag("response-role", role)
	}
	if tpl := c.Extra.String(ExtraChatTemplate, ""); tpl != "" {
		flag("chat-template", tpl)
	}
	if format := c.Extra.String(ExtraChatTemplateContentFormat, "auto"); format != "auto" {
		flag("chat-template-content-format", format)
	}
	toggle("enable-auto-tool-choice", c.Extra.Bool(ExtraEnableAutoTools, false))
	if parser := c.Extra.String(ExtraToolParser, ""); parser != "" {
		flag("tool-call-parser", parser)
	}
	toggle("return-tokens-as-token-ids", c.Extra.Bool(ExtraReturnTokensAsTokenIDs, false))

	return args
}
