package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/mdbind/binderrors"
	"github.com/erraggy/mdbind/generator"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, DefaultFileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)

	want := Default()
	assert.Equal(t, want.Target, cfg.Target)
	assert.Equal(t, "api", cfg.Package)
	assert.Equal(t, generator.DefaultBaseURL, cfg.BaseURL)
	assert.True(t, cfg.IncludeInfo)
	assert.False(t, cfg.Strict)
	assert.Equal(t, LogFormatText, cfg.LogFormat)
	assert.Equal(t, int64(10*1024*1024), cfg.MaxInlineSize)
	assert.Empty(t, cfg.File)
	assert.Empty(t, cfg.Warnings)
	assert.Equal(t, generator.TargetGo, cfg.GeneratorTarget())
}

func TestLoad_ExplicitFile(t *testing.T) {
	path := writeConfig(t, t.TempDir(), `
target: kotlin
package: io.ipfs.api
interface: Kubo
strict: true
include_info: false
log_format: json
max_inline_size: 2048
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "kotlin", cfg.Target)
	assert.Equal(t, generator.TargetKotlin, cfg.GeneratorTarget())
	assert.Equal(t, "io.ipfs.api", cfg.Package)
	assert.Equal(t, "Kubo", cfg.Interface)
	assert.True(t, cfg.Strict)
	assert.False(t, cfg.IncludeInfo)
	assert.Equal(t, LogFormatJSON, cfg.LogFormat)
	assert.Equal(t, int64(2048), cfg.MaxInlineSize)
	assert.Equal(t, path, cfg.File)
	assert.Empty(t, cfg.Warnings)
}

func TestLoad_WorkingDirectoryFile(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "target: kt\n")
	t.Chdir(dir)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "kotlin", cfg.Target, "aliases are normalized")
	assert.NotEmpty(t, cfg.File)
}

func TestLoad_EnvironmentOverridesFile(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "package: fromfile\nstrict: false\n")
	t.Setenv("MDBIND_PACKAGE", "fromenv")
	t.Setenv("MDBIND_STRICT", "true")
	t.Setenv("MDBIND_BASE_URL", "http://ipfs.local:5001")
	t.Setenv("MDBIND_ALLOW_PRIVATE_IPS", "1")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "fromenv", cfg.Package)
	assert.True(t, cfg.Strict)
	assert.Equal(t, "http://ipfs.local:5001", cfg.BaseURL)
	assert.True(t, cfg.AllowPrivateIPs)
}

func TestLoad_InvalidValuesFallBack(t *testing.T) {
	tests := []struct {
		name  string
		env   string
		value string
		check func(t *testing.T, cfg *Config)
	}{
		{
			name: "target", env: "MDBIND_TARGET", value: "swift",
			check: func(t *testing.T, cfg *Config) { assert.Equal(t, "go", cfg.Target) },
		},
		{
			name: "strict", env: "MDBIND_STRICT", value: "maybe",
			check: func(t *testing.T, cfg *Config) { assert.False(t, cfg.Strict) },
		},
		{
			name: "log format", env: "MDBIND_LOG_FORMAT", value: "xml",
			check: func(t *testing.T, cfg *Config) { assert.Equal(t, LogFormatText, cfg.LogFormat) },
		},
		{
			name: "negative size", env: "MDBIND_MAX_INLINE_SIZE", value: "-5",
			check: func(t *testing.T, cfg *Config) { assert.Equal(t, int64(10*1024*1024), cfg.MaxInlineSize) },
		},
		{
			name: "non-numeric size", env: "MDBIND_MAX_INLINE_SIZE", value: "lots",
			check: func(t *testing.T, cfg *Config) { assert.Equal(t, int64(10*1024*1024), cfg.MaxInlineSize) },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Chdir(t.TempDir())
			t.Setenv(tt.env, tt.value)

			cfg, err := Load("")
			require.NoError(t, err)
			tt.check(t, cfg)
			require.Len(t, cfg.Warnings, 1)
			assert.Contains(t, cfg.Warnings[0], tt.value)
		})
	}
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, binderrors.ErrConfig))

	var cfgErr *binderrors.ConfigError
	require.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, "config", cfgErr.Option)
}

func TestLoad_MalformedFile(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "target: [go\n")
	t.Chdir(dir)

	_, err := Load("")
	require.Error(t, err)
	assert.True(t, errors.Is(err, binderrors.ErrConfig))
}
