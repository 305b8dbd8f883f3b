package config

import (
	"fmt"
	"path/filepath"
	"slices"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

const (
	ConfigName = ".csv-tags"
	EnvPrefix  = "CSV_TAGS"
)

type Config struct {
	TagsFile string `mapstructure:"tags_file"`
	DataDir  string `mapstructure:"data_dir"`
	OutDir   string `mapstructure:"out_dir"`

	// TextSource picks how header lines and line counts are read: "shell"
	// runs head and wc, "native" reads the files in-process.
	TextSource string `mapstructure:"text_source"`

	LogLevel string `mapstructure:"log_level"`
	// PageSize caps how many choices a prompt shows at once, 0 shows all.
	PageSize int `mapstructure:"page_size"`
}

func DefaultConfig() *Config {
	return &Config{
		TagsFile:   "./local-tags.json",
		DataDir:    "./data",
		OutDir:     "./out",
		TextSource: "shell",
		LogLevel:   "info",
		PageSize:   0,
	}
}

// SetDefaults registers the defaults with v so that unset keys, env vars and
// bound flags all resolve through one place.
func SetDefaults(v *viper.Viper) {
	d := DefaultConfig()
	v.SetDefault("tags_file", d.TagsFile)
	v.SetDefault("data_dir", d.DataDir)
	v.SetDefault("out_dir", d.OutDir)
	v.SetDefault("text_source", d.TextSource)
	v.SetDefault("log_level", d.LogLevel)
	v.SetDefault("page_size", d.PageSize)
}

// Load reads .csv-tags.yaml from the current directory or $HOME (or the
// explicit cfgFile) into v and decodes the merged result.
func Load(v *viper.Viper, cfgFile string) (*Config, error) {
	SetDefaults(v)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		home, err := homedir.Dir()
		if err != nil {
			return nil, fmt.Errorf("failed to find home directory: %w", err)
		}
		v.AddConfigPath(".")
		v.AddConfigPath(home)
		v.SetConfigName(ConfigName)
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok || cfgFile != "" {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	cfg := DefaultConfig()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return cfg, nil
}

func LoadConfig() (*Config, error) {
	return Load(viper.GetViper(), "")
}

func SaveConfig(cfg *Config, path string) error {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	v.Set("tags_file", cfg.TagsFile)
	v.Set("data_dir", cfg.DataDir)
	v.Set("out_dir", cfg.OutDir)
	v.Set("text_source", cfg.TextSource)
	v.Set("log_level", cfg.LogLevel)
	v.Set("page_size", cfg.PageSize)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

func GetConfigPath() (string, error) {
	home, err := homedir.Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ConfigName+".yaml"), nil
}

func CreateDefaultConfig(path string) error {
	return SaveConfig(DefaultConfig(), path)
}

func ValidateConfig(cfg *Config) error {
	validLogLevels := []string{"debug", "info", "warn", "error"}
	if !slices.Contains(validLogLevels, cfg.LogLevel) {
		return fmt.Errorf("invalid log level: %s", cfg.LogLevel)
	}

	validSources := []string{"shell", "native"}
	if !slices.Contains(validSources, cfg.TextSource) {
		return fmt.Errorf("invalid text source: %s", cfg.TextSource)
	}

	if cfg.PageSize < 0 {
		return fmt.Errorf("invalid page size: %d", cfg.PageSize)
	}

	for name, value := range map[string]string{
		"tags_file": cfg.TagsFile,
		"data_dir":  cfg.DataDir,
		"out_dir":   cfg.OutDir,
	} {
		if value == "" {
			return fmt.Errorf("%s must not be empty", name)
		}
	}

	return nil
}
