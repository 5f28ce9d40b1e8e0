package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// StructuredFileConfig is the on-disk shape of the config file. JSON and
// YAML share the same keys.
type StructuredFileConfig struct {
	OCServe struct {
		OrchestratorType string   `json:"orchestrator_type" yaml:"orchestrator_type"`
		HTTPAddress      string   `json:"http_address" yaml:"http_address"`
		GRPCAddress      string   `json:"grpc_address" yaml:"grpc_address"`
		RequestTimeout   Duration `json:"request_timeout" yaml:"request_timeout"`
		Auth             struct {
			SignKey string `json:"sign_key" yaml:"sign_key"`
			Issuer  string `json:"issuer" yaml:"issuer"`
		} `json:"auth" yaml:"auth"`
	} `json:"oc_serve" yaml:"oc_serve"`

	Log struct {
		File         string `json:"file" yaml:"file"`
		ConsoleLevel string `json:"console_level" yaml:"console_level"`
		FileLevel    string `json:"file_level" yaml:"file_level"`
		MaxBytes     int64  `json:"max_bytes" yaml:"max_bytes"`
		BackupCount  int    `json:"backup_count" yaml:"backup_count"`
		BaseLevel    string `json:"base_level" yaml:"base_level"`
	} `json:"log" yaml:"log"`
}

// parseFile reads a config file. Files ending in .yaml or .yml are decoded
// as YAML, everything else as JSON.
func parseFile(path string) (*StructuredConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading a config file: %w", err)
	}

	var fileCfg StructuredFileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &fileCfg); err != nil {
			return nil, fmt.Errorf("error decoding yaml configs: %w", err)
		}
	default:
		if err := json.Unmarshal(data, &fileCfg); err != nil {
			return nil, fmt.Errorf("error decoding json configs: %w", err)
		}
	}

	cfg := &StructuredConfig{
		OCServe: OCServe{
			OrchestratorType: fileCfg.OCServe.OrchestratorType,
			HTTPAddress:      fileCfg.OCServe.HTTPAddress,
			GRPCAddress:      fileCfg.OCServe.GRPCAddress,
			RequestTimeout:   time.Duration(fileCfg.OCServe.RequestTimeout),
			Auth: Auth{
				SignKey: fileCfg.OCServe.Auth.SignKey,
				Issuer:  fileCfg.OCServe.Auth.Issuer,
			},
		},
		Log: Log{
			File:         fileCfg.Log.File,
			ConsoleLevel: fileCfg.Log.ConsoleLevel,
			FileLevel:    fileCfg.Log.FileLevel,
			MaxBytes:     fileCfg.Log.MaxBytes,
			BackupCount:  fileCfg.Log.BackupCount,
			BaseLevel:    fileCfg.Log.BaseLevel,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports decoding from
// strings like "1h", "30s" and from plain numbers of nanoseconds.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	if node.Tag == "!!int" {
		var n int64
		if err := node.Decode(&n); err != nil {
			return err
		}
		*d = Duration(time.Duration(n))
		return nil
	}

	tmp, err := time.ParseDuration(node.Value)
	if err != nil {
		return err
	}
	*d = Duration(tmp)
	return nil
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
