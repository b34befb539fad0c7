// Package config loads CLI settings from flags and FPIDIOMS_* environment
// variables.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// ErrInvalid reports a setting with an unsupported value.
var ErrInvalid = errors.New("config: invalid value")

const (
	// EnvPrefix prefixes every environment variable, e.g. FPIDIOMS_LOG_LEVEL.
	EnvPrefix = "FPIDIOMS"

	// KeyLogLevel names the minimum log level setting.
	KeyLogLevel = "log-level"
	// KeyLogFormat names the log handler setting.
	KeyLogFormat = "log-format"
	// KeyFailFast names the stop-at-first-failure setting.
	KeyFailFast = "fail-fast"

	// FormatText selects slog's text handler.
	FormatText = "text"
	// FormatJSON selects slog's JSON handler.
	FormatJSON = "json"
)

// Config holds the resolved CLI settings.
type Config struct {
	LogLevel  slog.Level
	LogFormat string
	FailFast  bool
}

// RegisterFlags declares every setting on fs with its default.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.String(KeyLogLevel, "info", "log level: debug, info, warn or error")
	fs.String(KeyLogFormat, FormatText, "log format: text or json")
	fs.Bool(KeyFailFast, false, "stop at the first failing demo")
}

// Load resolves settings with flag > environment > default precedence. Flags
// not registered on fs fall back to the environment and defaults.
func Load(fs *pflag.FlagSet) (Config, error) {
	v := viper.New()
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogFormat, FormatText)
	v.SetDefault(KeyFailFast, false)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if fs != nil {
		if err := v.BindPFlags(fs); err != nil {
			return Config{}, fmt.Errorf("config: bind flags: %w", err)
		}
	}

	var cfg Config
	if err := cfg.LogLevel.UnmarshalText([]byte(v.GetString(KeyLogLevel))); err != nil {
		return Config{}, fmt.Errorf("%w: %s %q", ErrInvalid, KeyLogLevel, v.GetString(KeyLogLevel))
	}
	cfg.LogFormat = strings.ToLower(v.GetString(KeyLogFormat))
	switch cfg.LogFormat {
	case FormatText, FormatJSON:
	default:
		return Config{}, fmt.Errorf("%w: %s %q", ErrInvalid, KeyLogFormat, cfg.LogFormat)
	}
	cfg.FailFast = v.GetBool(KeyFailFast)
	return cfg, nil
}
