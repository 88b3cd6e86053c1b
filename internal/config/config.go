// Package config loads CLI and MCP server defaults from an optional
// mdbind.yaml file and MDBIND_* environment variables.
package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/viper"

	"github.com/erraggy/mdbind/binderrors"
	"github.com/erraggy/mdbind/generator"
	"github.com/erraggy/mdbind/internal/options"
)

// EnvPrefix is the prefix of every environment variable read by Load.
const EnvPrefix = "MDBIND"

// DefaultFileName is the config file looked up in the working directory
// when no explicit path is given.
const DefaultFileName = "mdbind.yaml"

// Configuration keys. Environment variables are the upper-cased key with the
// MDBIND_ prefix, e.g. MDBIND_BASE_URL.
const (
	KeyTarget          = "target"
	KeyPackage         = "package"
	KeyInterface       = "interface"
	KeyBaseURL         = "base_url"
	KeyStrict          = "strict"
	KeyIncludeInfo     = "include_info"
	KeyVerbose         = "verbose"
	KeyLogFormat       = "log_format"
	KeyUserAgent       = "user_agent"
	KeyMaxInlineSize   = "max_inline_size"
	KeyAllowPrivateIPs = "allow_private_ips"
)

// Log formats accepted for KeyLogFormat.
const (
	LogFormatText = "text"
	LogFormatJSON = "json"
)

// Config holds the resolved defaults. Command-line flags override them.
type Config struct {
	// Target is the calling convention name ("go" or "kotlin")
	Target string `yaml:"target"`
	// Package is the package clause of generated files
	Package string `yaml:"package"`
	// Interface overrides the generated client or interface name
	Interface string `yaml:"interface,omitempty"`
	// BaseURL is the default server address of generated Go clients
	BaseURL string `yaml:"base_url"`
	// Strict fails generation when an endpoint is skipped
	Strict bool `yaml:"strict"`
	// IncludeInfo keeps informational issues in results
	IncludeInfo bool `yaml:"include_info"`
	// Verbose enables debug logging
	Verbose bool `yaml:"verbose"`
	// LogFormat is "text" (log/slog) or "json" (zap)
	LogFormat string `yaml:"log_format"`
	// UserAgent is sent when fetching URLs; empty means the build default
	UserAgent string `yaml:"user_agent,omitempty"`
	// MaxInlineSize caps inline content accepted by the MCP server, in bytes
	MaxInlineSize int64 `yaml:"max_inline_size"`
	// AllowPrivateIPs lets the MCP server fetch URLs on private networks
	AllowPrivateIPs bool `yaml:"allow_private_ips"`

	// File is the config file that was read, empty when none was found
	File string `yaml:"-"`
	// Warnings lists invalid values that were replaced by their defaults
	Warnings []string `yaml:"-"`
}

// Default returns the built-in defaults.
func Default() *Config {
	return &Config{
		Target:        "go",
		Package:       "api",
		BaseURL:       generator.DefaultBaseURL,
		IncludeInfo:   true,
		LogFormat:     LogFormatText,
		MaxInlineSize: 10 * 1024 * 1024,
	}
}

// Load resolves the configuration. When path is empty, mdbind.yaml in the
// working directory is read if present. An explicit path that cannot be read
// is an error matching binderrors.ErrConfig. Invalid values fall back to the
// default and are recorded in Config.Warnings.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(strings.TrimSuffix(DefaultFileName, ".yaml"))
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, &binderrors.ConfigError{
				Option:  "config",
				Value:   path,
				Message: "failed to read config file",
				Cause:   err,
			}
		}
	}

	return fromViper(v), nil
}

// setDefaults registers every key so AutomaticEnv can find it.
func setDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault(KeyTarget, d.Target)
	v.SetDefault(KeyPackage, d.Package)
	v.SetDefault(KeyInterface, d.Interface)
	v.SetDefault(KeyBaseURL, d.BaseURL)
	v.SetDefault(KeyStrict, d.Strict)
	v.SetDefault(KeyIncludeInfo, d.IncludeInfo)
	v.SetDefault(KeyVerbose, d.Verbose)
	v.SetDefault(KeyLogFormat, d.LogFormat)
	v.SetDefault(KeyUserAgent, d.UserAgent)
	v.SetDefault(KeyMaxInlineSize, d.MaxInlineSize)
	v.SetDefault(KeyAllowPrivateIPs, d.AllowPrivateIPs)
}

// fromViper reads each key as a string and validates it, so a bad value
// in one key never discards the rest.
func fromViper(v *viper.Viper) *Config {
	d := Default()
	cfg := &Config{File: v.ConfigFileUsed()}
	r := reader{v: v, cfg: cfg}

	cfg.Target = r.target(KeyTarget, d.Target)
	cfg.Package = r.nonEmpty(KeyPackage, d.Package)
	cfg.Interface = strings.TrimSpace(v.GetString(KeyInterface))
	cfg.BaseURL = r.nonEmpty(KeyBaseURL, d.BaseURL)
	cfg.Strict = r.boolean(KeyStrict, d.Strict)
	cfg.IncludeInfo = r.boolean(KeyIncludeInfo, d.IncludeInfo)
	cfg.Verbose = r.boolean(KeyVerbose, d.Verbose)
	cfg.LogFormat = r.oneOf(KeyLogFormat, d.LogFormat, LogFormatText, LogFormatJSON)
	cfg.UserAgent = strings.TrimSpace(v.GetString(KeyUserAgent))
	cfg.MaxInlineSize = r.positive(KeyMaxInlineSize, d.MaxInlineSize)
	cfg.AllowPrivateIPs = r.boolean(KeyAllowPrivateIPs, d.AllowPrivateIPs)
	return cfg
}

type reader struct {
	v   *viper.Viper
	cfg *Config
}

func (r reader) warn(key, value string, fallback any, reason string) {
	r.cfg.Warnings = append(r.cfg.Warnings,
		fmt.Sprintf("invalid %s value %q (%s), using default %v", key, value, reason, fallback))
}

func (r reader) boolean(key string, fallback bool) bool {
	raw := strings.TrimSpace(r.v.GetString(key))
	if raw == "" {
		return fallback
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		r.warn(key, raw, fallback, "not a boolean")
		return fallback
	}
	return b
}

func (r reader) positive(key string, fallback int64) int64 {
	raw := strings.TrimSpace(r.v.GetString(key))
	if raw == "" {
		return fallback
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || n <= 0 {
		r.warn(key, raw, fallback, "not a positive integer")
		return fallback
	}
	return n
}

func (r reader) nonEmpty(key, fallback string) string {
	if s := strings.TrimSpace(r.v.GetString(key)); s != "" {
		return s
	}
	return fallback
}

func (r reader) oneOf(key, fallback string, allowed ...string) string {
	raw := strings.ToLower(strings.TrimSpace(r.v.GetString(key)))
	if raw == "" {
		return fallback
	}
	if err := options.OneOf(key, raw, allowed...); err != nil {
		r.warn(key, raw, fallback, "unknown value")
		return fallback
	}
	return raw
}

func (r reader) target(key, fallback string) string {
	raw := strings.TrimSpace(r.v.GetString(key))
	if raw == "" {
		return fallback
	}
	t, err := generator.ParseTarget(raw)
	if err != nil {
		r.warn(key, raw, fallback, "unknown target")
		return fallback
	}
	return t.String()
}

// GeneratorTarget returns the parsed Target. Load has already validated it.
func (c *Config) GeneratorTarget() generator.Target {
	t, err := generator.ParseTarget(c.Target)
	if err != nil {
		return generator.TargetGo
	}
	return t
}
