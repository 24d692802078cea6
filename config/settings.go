package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/authcorp/optics/optics"
)

// EnvPrefix is the environment variable prefix read by Load.
const EnvPrefix = "OPTICS"

// Settings are the resolved options of opticsctl.
type Settings struct {
	// Format of the input document: json, yaml, or "" to detect from the
	// file extension.
	Format string
	// Output format: json or yaml; "" means the input format.
	Output          string
	Pretty          bool
	IndexOutOfRange optics.OutOfRange
	LogLevel        slog.Level
	// LogFormat is text or json.
	LogFormat string
}

// Defaults returns the built-in settings.
func Defaults() map[string]any {
	return map[string]any{
		"format":             "",
		"output":             "",
		"pretty":             false,
		"index_out_of_range": "fail",
		"log_level":          "warn",
		"log_format":         "text",
	}
}

// Load resolves settings from defaults, the file at path (skipped when empty)
// and the environment.
func Load(path string) (Settings, error) {
	c := New().WithDefaults(Defaults())
	if path != "" {
		if err := c.LoadFile(path); err != nil {
			return Settings{}, err
		}
	}
	c.LoadEnv(EnvPrefix)
	return c.Settings()
}

// Settings decodes and validates the raw values.
func (c *Config) Settings() (Settings, error) {
	var (
		s   Settings
		err error
	)
	s.Format = strings.ToLower(c.GetString("format"))
	s.Output = strings.ToLower(c.GetString("output"))
	if s.Pretty, err = c.GetBool("pretty"); err != nil {
		return Settings{}, err
	}
	if s.IndexOutOfRange, err = optics.ParseOutOfRange(c.GetString("index_out_of_range")); err != nil {
		return Settings{}, fmt.Errorf("index_out_of_range: %w", err)
	}
	if err := s.LogLevel.UnmarshalText([]byte(c.GetString("log_level"))); err != nil {
		return Settings{}, fmt.Errorf("log_level: %w", err)
	}
	s.LogFormat = strings.ToLower(c.GetString("log_format"))
	return s, s.Validate()
}

// Validate checks enumerated fields.
func (s Settings) Validate() error {
	var bad []string
	if !oneOf(s.Format, "", "json", "yaml", "yml") {
		bad = append(bad, "format="+s.Format)
	}
	if !oneOf(s.Output, "", "json", "yaml", "yml") {
		bad = append(bad, "output="+s.Output)
	}
	if !oneOf(s.LogFormat, "text", "json") {
		bad = append(bad, "log_format="+s.LogFormat)
	}
	if len(bad) > 0 {
		return &ValidationError{Invalid: bad}
	}
	return nil
}

// ValidationError lists settings with values outside their allowed set.
type ValidationError struct {
	Invalid []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid settings: %s", strings.Join(e.Invalid, ", "))
}

func oneOf(v string, allowed ...string) bool {
	for _, a := range allowed {
		if v == a {
			return true
		}
	}
	return false
}
