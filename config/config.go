// Package config loads opticsctl settings from defaults, an optional JSON or
// YAML file and OPTICS_* environment variables, in that order of precedence.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/authcorp/optics/codec"
	"gopkg.in/yaml.v3"
)

// Config holds raw configuration values keyed by snake_case names.
type Config struct {
	values   map[string]any
	defaults map[string]any
}

// New creates a new empty Config.
func New() *Config {
	return &Config{
		values:   make(map[string]any),
		defaults: make(map[string]any),
	}
}

// WithDefaults sets default values.
func (c *Config) WithDefaults(defaults map[string]any) *Config {
	for k, v := range defaults {
		c.defaults[k] = v
	}
	return c
}

// LoadFile merges a JSON or YAML file chosen by extension. Nested sections
// flatten into joined keys, so `log: {level: debug}` sets log_level.
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	var values map[string]any
	switch codec.FormatOf(path) {
	case "yaml":
		err = yaml.Unmarshal(data, &values)
	default:
		err = json.Unmarshal(data, &values)
	}
	if err != nil {
		return fmt.Errorf("failed to parse %s: %w", strings.ToUpper(codec.FormatOf(path)), err)
	}
	c.merge("", values)
	return nil
}

func (c *Config) merge(prefix string, values map[string]any) {
	for k, v := range values {
		key := normalizeKey(k)
		if prefix != "" {
			key = prefix + "_" + key
		}
		if section, ok := v.(map[string]any); ok {
			c.merge(key, section)
			continue
		}
		c.values[key] = v
	}
}

// LoadEnv loads variables named PREFIX_SOME_KEY as some_key.
func (c *Config) LoadEnv(prefix string) *Config {
	return c.loadEnviron(prefix, os.Environ())
}

func (c *Config) loadEnviron(prefix string, environ []string) *Config {
	for _, env := range environ {
		key, value, ok := strings.Cut(env, "=")
		if !ok {
			continue
		}
		if prefix != "" {
			if !strings.HasPrefix(key, prefix+"_") {
				continue
			}
			key = strings.TrimPrefix(key, prefix+"_")
		}
		c.values[normalizeKey(key)] = value
	}
	return c
}

func normalizeKey(k string) string {
	return strings.ToLower(strings.NewReplacer("-", "_", ".", "_").Replace(k))
}

// Set sets a configuration value.
func (c *Config) Set(key string, value any) {
	c.values[normalizeKey(key)] = value
}

// Get returns a configuration value.
func (c *Config) Get(key string) (any, bool) {
	if v, ok := c.values[key]; ok {
		return v, true
	}
	if v, ok := c.defaults[key]; ok {
		return v, true
	}
	return nil, false
}

// GetString returns a string configuration value.
func (c *Config) GetString(key string) string {
	v, ok := c.Get(key)
	if !ok {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", v)
}

// GetBool returns a bool configuration value.
func (c *Config) GetBool(key string) (bool, error) {
	v, ok := c.Get(key)
	if !ok {
		return false, nil
	}
	switch val := v.(type) {
	case bool:
		return val, nil
	case string:
		b, err := strconv.ParseBool(val)
		if err != nil {
			return false, fmt.Errorf("%s: %w", key, err)
		}
		return b, nil
	}
	return false, fmt.Errorf("%s: expected bool, got %T", key, v)
}
