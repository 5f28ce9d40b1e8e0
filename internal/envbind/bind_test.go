// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package envbind

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type precision string

const (
	precisionAuto  precision = "auto"
	precisionHalf  precision = "float16"
	precisionBrain precision = "bfloat16"
)

func (precision) EnumMembers() []EnumMember {
	return []EnumMember{
		{Name: "AUTO", Value: string(precisionAuto)},
		{Name: "HALF", Value: string(precisionHalf)},
		{Name: "BF16", Value: string(precisionBrain)},
	}
}

type nested struct {
	Name     string `env:"name"`
	Replicas *Union2[int, string]
}

type sample struct {
	Model        string
	MaxModelLen  *int
	Utilization  float64 `env:"gpu_memory_utilization"`
	Eager        bool
	Tags         []string
	Options      map[string]any
	Timeout      time.Duration
	Precision    precision
	Anything     any
	Inner        nested `env:",inline"`
	Ignored      string `env:"-"`
	Extra        Extra  `env:",extra"`
	private      string //nolint:unused
}

func defaults() *sample {
	return &sample{
		Model:       "facebook/opt-125m",
		Utilization: 0.9,
		Timeout:     time.Minute,
		Precision:   precisionAuto,
		Extra:       Extra{"skips": int64(0), "response_role": "assistant"},
	}
}

var testOpts = Options{Prefix: "VLLM_", ExtraPrefix: "VLLM_EXTRA_"}

func TestBind_DefaultsWhenEnvEmpty(t *testing.T) {
	// Arrange
	cfg := defaults()

	// Act
	rep := Bind(Snapshot{}, cfg, testOpts)

	// Assert
	assert.True(t, rep.OK())
	assert.Equal(t, defaults(), cfg)
}

func TestBind_ScalarFields(t *testing.T) {
	// Arrange
	env := FromPairs([]string{
		"VLLM_MODEL= meta-llama/Llama-3-8B ",
		"VLLM_MAX_MODEL_LEN=4096",
		"VLLM_GPU_MEMORY_UTILIZATION=0.75",
		"VLLM_EAGER=yes",
		"VLLM_TIMEOUT=90",
		"VLLM_PRECISION=BF16",
		"OTHER_MODEL=ignored",
	})
	cfg := defaults()

	// Act
	rep := Bind(env, cfg, testOpts)

	// Assert
	require.True(t, rep.OK(), rep.Err())
	assert.Equal(t, "meta-llama/Llama-3-8B", cfg.Model)
	require.NotNil(t, cfg.MaxModelLen)
	assert.Equal(t, 4096, *cfg.MaxModelLen)
	assert.InDelta(t, 0.75, cfg.Utilization, 1e-9)
	assert.True(t, cfg.Eager)
	assert.Equal(t, 90*time.Second, cfg.Timeout)
	assert.Equal(t, precisionBrain, cfg.Precision)
}

func TestBind_BoolVocabulary(t *testing.T) {
	tests := []struct {
		raw  string
		want bool
	}{
		{"1", true}, {"true", true}, {"YES", true}, {"On", true},
		{"0", false}, {"false", false}, {"no", false}, {"OFF", false},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			cfg := &sample{Eager: !tt.want}

			rep := Bind(FromPairs([]string{"VLLM_EAGER=" + tt.raw}), cfg, testOpts)

			require.True(t, rep.OK())
			assert.Equal(t, tt.want, cfg.Eager)
		})
	}
}

func TestBind_UnparsableKeepsDefault(t *testing.T) {
	// Arrange
	env := FromPairs([]string{
		"VLLM_EAGER=maybe",
		"VLLM_GPU_MEMORY_UTILIZATION=lots",
		"VLLM_MODEL=opt-350m",
	})
	cfg := defaults()

	// Act
	rep := Bind(env, cfg, testOpts)

	// Assert
	require.Len(t, rep.Degradations, 2)
	assert.Equal(t, "VLLM_EAGER", rep.Degradations[0].Key)
	assert.Equal(t, "Eager", rep.Degradations[0].Field)
	assert.Equal(t, "maybe", rep.Degradations[0].Raw)
	assert.ErrorIs(t, rep.Degradations[0].Err, ErrUnparsable)
	assert.Equal(t, "VLLM_GPU_MEMORY_UTILIZATION", rep.Degradations[1].Key)

	assert.False(t, cfg.Eager)
	assert.InDelta(t, 0.9, cfg.Utilization, 1e-9)
	assert.Equal(t, "opt-350m", cfg.Model)
	assert.ErrorIs(t, rep.Err(), ErrUnparsable)
}

func TestBind_OptionalInt(t *testing.T) {
	t.Run("empty string yields nil", func(t *testing.T) {
		n := 7
		cfg := &sample{MaxModelLen: &n}

		rep := Bind(FromPairs([]string{"VLLM_MAX_MODEL_LEN="}), cfg, testOpts)

		require.True(t, rep.OK())
		assert.Nil(t, cfg.MaxModelLen)
	})

	t.Run("garbage keeps default", func(t *testing.T) {
		cfg := &sample{}

		rep := Bind(FromPairs([]string{"VLLM_MAX_MODEL_LEN=abc"}), cfg, testOpts)

		assert.Len(t, rep.Degradations, 1)
		assert.Nil(t, cfg.MaxModelLen)
	})
}

func TestBind_ListAndMapFromJSON(t *testing.T) {
	// Arrange
	env := FromPairs([]string{
		`VLLM_TAGS=["a", "b"]`,
		`VLLM_OPTIONS={"num_gpus": 1, "resources": {"x": 0.5}}`,
	})
	cfg := defaults()

	// Act
	rep := Bind(env, cfg, testOpts)

	// Assert
	require.True(t, rep.OK(), rep.Err())
	assert.Equal(t, []string{"a", "b"}, cfg.Tags)
	assert.Equal(t, map[string]any{
		"num_gpus":  int64(1),
		"resources": map[string]any{"x": 0.5},
	}, cfg.Options)
}

func TestBind_ListRejectsNonJSON(t *testing.T) {
	cfg := &sample{Tags: []string{"keep"}}

	rep := Bind(FromPairs([]string{"VLLM_TAGS=a,b", "VLLM_OPTIONS=null"}), cfg, testOpts)

	assert.Len(t, rep.Degradations, 2)
	assert.Equal(t, []string{"keep"}, cfg.Tags)
	assert.Nil(t, cfg.Options)
}

func TestBind_Union(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want any
	}{
		{name: "first alternative", raw: "4", want: 4},
		{name: "second alternative", raw: "auto", want: "auto"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &sample{}

			rep := Bind(FromPairs([]string{"VLLM_REPLICAS=" + tt.raw}), cfg, testOpts)

			require.True(t, rep.OK(), rep.Err())
			require.NotNil(t, cfg.Inner.Replicas)
			assert.Equal(t, tt.want, cfg.Inner.Replicas.Value())
		})
	}
}

func TestBind_InlineStructSharesPrefix(t *testing.T) {
	cfg := &sample{}

	rep := Bind(FromPairs([]string{"VLLM_NAME=deployment"}), cfg, testOpts)

	require.True(t, rep.OK())
	assert.Equal(t, "deployment", cfg.Inner.Name)
	assert.Equal(t, []string{"name"}, rep.Bound)
}

func TestBind_EnumMatchesNameThenValue(t *testing.T) {
	cfg := &sample{}

	rep := Bind(FromPairs([]string{"VLLM_PRECISION=float16"}), cfg, testOpts)
	require.True(t, rep.OK())
	assert.Equal(t, precisionHalf, cfg.Precision)

	rep = Bind(FromPairs([]string{"VLLM_PRECISION=fp8"}), cfg, testOpts)
	assert.Len(t, rep.Degradations, 1)
	assert.Equal(t, precisionHalf, cfg.Precision)
}

func TestBind_AnyFieldBestEffort(t *testing.T) {
	cfg := &sample{}

	Bind(FromPairs([]string{`VLLM_ANYTHING={"a": [1, 2]}`}), cfg, testOpts)
	assert.Equal(t, map[string]any{"a": []any{int64(1), int64(2)}}, cfg.Anything)

	Bind(FromPairs([]string{"VLLM_ANYTHING=plain text"}), cfg, testOpts)
	assert.Equal(t, "plain text", cfg.Anything)
}

func TestBind_KeyNormalisation(t *testing.T) {
	cfg := defaults()

	rep := Bind(FromPairs([]string{
		"VLLM___GPU-MEMORY.UTILIZATION=0.5",
	}), cfg, testOpts)

	require.True(t, rep.OK())
	assert.InDelta(t, 0.5, cfg.Utilization, 1e-9)
}

func TestBind_PrefixIsCaseSensitive(t *testing.T) {
	cfg := defaults()

	rep := Bind(FromPairs([]string{
		"vllm_model=lower",
		"Vllm_Extra_skips=3",
	}), cfg, testOpts)

	assert.True(t, rep.OK())
	assert.Empty(t, rep.Bound)
	assert.Empty(t, rep.Extra)
	assert.Equal(t, defaults(), cfg)
}

func TestBind_FixedArrayLength(t *testing.T) {
	type withPair struct {
		Pair [2]int
	}

	tests := []struct {
		name     string
		raw      string
		want     [2]int
		degraded bool
	}{
		{name: "exact length", raw: "[1,2]", want: [2]int{1, 2}},
		{name: "too long", raw: "[1,2,3]", want: [2]int{7, 7}, degraded: true},
		{name: "too short", raw: "[1]", want: [2]int{7, 7}, degraded: true},
		{name: "not an array", raw: `{"a":1}`, want: [2]int{7, 7}, degraded: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &withPair{Pair: [2]int{7, 7}}

			rep := Bind(FromPairs([]string{"VLLM_PAIR=" + tt.raw}), cfg, testOpts)

			assert.Equal(t, tt.want, cfg.Pair)
			if tt.degraded {
				require.Len(t, rep.Degradations, 1)
				assert.ErrorIs(t, rep.Degradations[0].Err, ErrUnparsable)
			} else {
				assert.True(t, rep.OK(), rep.Err())
			}
		})
	}
}

func TestBind_SkippedFieldsNeverBound(t *testing.T) {
	cfg := &sample{}

	Bind(FromPairs([]string{"VLLM_IGNORED=x", "VLLM_PRIVATE=y"}), cfg, testOpts)

	assert.Empty(t, cfg.Ignored)
	assert.Empty(t, cfg.private)
}

// ── Extra bag ────────────────────────────────────────────────────────────────

func TestBind_ExtraTakesPrecedence(t *testing.T) {
	// Arrange
	env := FromPairs([]string{
		"VLLM_EXTRA_SKIPS=3",
		"VLLM_EXTRA_ENABLE_AUTO_TOOLS=true",
		"VLLM_EXTRA_CHAT_TEMPLATE={{ messages }}",
		"VLLM_EXTRA_LORA_MODULES=[\"a=/m/a\"]",
		"VLLM_EXTRA_MODEL=not-the-model-field",
	})
	cfg := defaults()

	// Act
	rep := Bind(env, cfg, testOpts)

	// Assert
	require.True(t, rep.OK())
	assert.Equal(t, "facebook/opt-125m", cfg.Model)
	assert.Equal(t, int64(3), cfg.Extra["skips"])
	assert.Equal(t, true, cfg.Extra["enable_auto_tools"])
	assert.Equal(t, "{{ messages }}", cfg.Extra["chat_template"])
	assert.Equal(t, []any{"a=/m/a"}, cfg.Extra["lora_modules"])
	assert.Equal(t, "not-the-model-field", cfg.Extra["model"])
	assert.Equal(t, "assistant", cfg.Extra["response_role"])
}

func TestBind_ExtraCreatedWhenNil(t *testing.T) {
	cfg := &sample{}

	Bind(FromPairs([]string{"VLLM_EXTRA_MAX_CONCURRENT_CALLS=4"}), cfg, testOpts)

	require.NotNil(t, cfg.Extra)
	assert.Equal(t, 4, cfg.Extra.Int("max_concurrent_calls", 1))
}

func TestExtra_Accessors(t *testing.T) {
	e := Extra{}
	e.Set("Max-Concurrent-Calls", int64(2))
	e.Set("ratio", 0.25)
	e.Set("flag", "on")
	e.Set("nothing", nil)

	assert.Equal(t, 2, e.Int("max_concurrent_calls", 1))
	assert.Equal(t, 7, e.Int("missing", 7))
	assert.InDelta(t, 0.25, e.Float("ratio", 0), 1e-9)
	assert.True(t, e.Bool("flag", false))
	assert.True(t, e.Has("nothing"))
	assert.Equal(t, "fallback", e.String("nothing", "fallback"))
	assert.Equal(t, "2", e.String("max_concurrent_calls", ""))

	clone := e.Clone()
	clone.Set("ratio", 1.0)
	assert.InDelta(t, 0.25, e.Float("ratio", 0), 1e-9)

	e.Merge(Extra{"flag": false})
	assert.False(t, e.Bool("flag", true))
}

func TestParseJSONValue(t *testing.T) {
	assert.Equal(t, int64(3), ParseJSONValue(" 3 "))
	assert.Equal(t, 1.5, ParseJSONValue("1.5"))
	assert.Nil(t, ParseJSONValue("null"))
	assert.Equal(t, "3 4", ParseJSONValue("3 4"))
	assert.Equal(t, "auto", ParseJSONValue("auto"))
}

// ── Schema validation ───────────────────────────────────────────────────────

func TestValidate(t *testing.T) {
	type twoExtras struct {
		A Extra `env:",extra"`
		B Extra `env:",extra"`
	}
	type collision struct {
		MaxLen int
		Other  int `env:"max_len"`
	}
	type badField struct {
		Callback func()
	}
	type badInline struct {
		Inner *nested `env:",inline"`
	}

	tests := []struct {
		name    string
		target  any
		field   string
		wantErr error
	}{
		{name: "valid", target: &sample{}},
		{name: "not a pointer", target: sample{}, wantErr: ErrInvalidTarget},
		{name: "nil pointer", target: (*sample)(nil), wantErr: ErrInvalidTarget},
		{name: "two extra bags", target: &twoExtras{}, field: "B"},
		{name: "duplicate key", target: &collision{}, field: "Other"},
		{name: "unsupported type", target: &badField{}, field: "Callback", wantErr: ErrUnsupportedType},
		{name: "inline pointer", target: &badInline{}, field: "Inner"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.target)

			if tt.name == "valid" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			var se *SchemaError
			require.True(t, errors.As(err, &se))
			assert.Equal(t, tt.field, se.Field)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestBind_InvalidTargetIsReported(t *testing.T) {
	rep := Bind(Snapshot{}, sample{}, testOpts)

	require.Len(t, rep.Degradations, 1)
	assert.ErrorIs(t, rep.Err(), ErrInvalidTarget)
}

func TestKeys(t *testing.T) {
	keys, err := Keys(&nested{})

	require.NoError(t, err)
	assert.Equal(t, []string{"name", "replicas"}, keys)
}

func TestSnakeCase(t *testing.T) {
	tests := map[string]string{
		"GPUMemoryUtilization": "gpu_memory_utilization",
		"MaxModelLen":          "max_model_len",
		"HFOverrides":          "hf_overrides",
		"TrustRemoteCode":      "trust_remote_code",
		"Model":                "model",
		"KVCacheDtype":         "kv_cache_dtype",
	}
	for in, want := range tests {
		assert.Equal(t, want, snakeCase(in), in)
	}
}
