package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig_IsValid(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, ValidateConfig(cfg))
	assert.Equal(t, "./local-tags.json", cfg.TagsFile)
	assert.Equal(t, "./data", cfg.DataDir)
	assert.Equal(t, "./out", cfg.OutDir)
	assert.Equal(t, "shell", cfg.TextSource)
}

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		errMsg string
	}{
		{"bad log level", func(c *Config) { c.LogLevel = "loud" }, "invalid log level"},
		{"bad source", func(c *Config) { c.TextSource = "awk" }, "invalid text source"},
		{"negative page size", func(c *Config) { c.PageSize = -1 }, "invalid page size"},
		{"empty out dir", func(c *Config) { c.OutDir = "" }, "out_dir must not be empty"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			assert.ErrorContains(t, ValidateConfig(cfg), tt.errMsg)
		})
	}
}

func TestLoad_ExplicitFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.yaml")
	require.NoError(t, os.WriteFile(path, []byte("data_dir: ./input\npage_size: 5\ntext_source: native\n"), 0o644))

	cfg, err := Load(viper.New(), path)
	require.NoError(t, err)
	assert.Equal(t, "./input", cfg.DataDir)
	assert.Equal(t, 5, cfg.PageSize)
	assert.Equal(t, "native", cfg.TextSource)
	assert.Equal(t, "./out", cfg.OutDir, "unset keys keep defaults")
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load(viper.New(), filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoad_EnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.yaml")
	require.NoError(t, os.WriteFile(path, []byte("out_dir: ./from-file\n"), 0o644))
	t.Setenv("CSV_TAGS_OUT_DIR", "./from-env")

	cfg, err := Load(viper.New(), path)
	require.NoError(t, err)
	assert.Equal(t, "./from-env", cfg.OutDir)
}

func TestSaveConfig_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), ConfigName+".yaml")
	want := DefaultConfig()
	want.DataDir = "./datasets"
	want.PageSize = 12
	require.NoError(t, SaveConfig(want, path))

	got, err := Load(viper.New(), path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
