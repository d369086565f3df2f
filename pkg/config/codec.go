package config

import (
	"bytes"
	"fmt"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/yaklabco/golst/pkg/style"
)

// Decode parses a configuration file in the given format. Fields the file
// leaves out stay at their zero value so layers can be merged.
func Decode(data []byte, format style.FileFormat) (*Config, error) {
	cfg := &Config{}
	switch format {
	case style.FormatYAML:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse YAML: %w", err)
		}
	case style.FormatTOML:
		if _, err := toml.Decode(string(data), cfg); err != nil {
			return nil, fmt.Errorf("parse TOML: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", style.ErrUnknownFormat, format)
	}
	return cfg, nil
}

// Encode serializes the persisted fields of c.
func (c *Config) Encode(format style.FileFormat) ([]byte, error) {
	var buf bytes.Buffer
	switch format {
	case style.FormatYAML:
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(c); err != nil {
			return nil, fmt.Errorf("encode config: %w", err)
		}
		if err := enc.Close(); err != nil {
			return nil, fmt.Errorf("close encoder: %w", err)
		}
	case style.FormatTOML:
		if err := toml.NewEncoder(&buf).Encode(c); err != nil {
			return nil, fmt.Errorf("encode config: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", style.ErrUnknownFormat, format)
	}
	return buf.Bytes(), nil
}
