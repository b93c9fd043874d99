package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes environment overrides, e.g. TAGGING_MAX_TAGS.
const EnvPrefix = "TAGGING"

// Config holds settings stored at ~/.tagging/config.yaml.
type Config struct {
	DBPath           string   `mapstructure:"db_path" yaml:"db_path,omitempty"`
	MaxTags          int      `mapstructure:"max_tags" yaml:"max_tags,omitempty"`
	Suggestions      []string `mapstructure:"suggestions" yaml:"suggestions,omitempty"`
	Autocomplete     bool     `mapstructure:"autocomplete" yaml:"autocomplete"`
	StoreSuggestions bool     `mapstructure:"store_suggestions" yaml:"store_suggestions"`
	Language         string   `mapstructure:"language" yaml:"language,omitempty"`
	NotifyNoopDelete bool     `mapstructure:"notify_noop_delete" yaml:"notify_noop_delete"`
	LogFile          string   `mapstructure:"log_file" yaml:"log_file,omitempty"`
	LogLevel         string   `mapstructure:"log_level" yaml:"log_level,omitempty"`
}

// Dir returns the configuration directory.
func Dir() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".tagging")
}

// Path returns the config file path.
func Path() string {
	return filepath.Join(Dir(), "config.yaml")
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("db_path", filepath.Join(Dir(), "tagging.db"))
	v.SetDefault("max_tags", 0)
	v.SetDefault("suggestions", []string{})
	v.SetDefault("autocomplete", true)
	v.SetDefault("store_suggestions", true)
	v.SetDefault("language", "en")
	v.SetDefault("notify_noop_delete", true)
	v.SetDefault("log_file", filepath.Join(Dir(), "tagging.log"))
	v.SetDefault("log_level", "info")
}

// Load reads the config file over built-in defaults, then applies
// TAGGING_* environment overrides. A missing file is not an error; a file
// readable by others is.
func Load() (*Config, error) {
	v := viper.New()
	setDefaults(v)

	path := Path()
	info, err := os.Stat(path)
	switch {
	case err == nil:
		if perm := info.Mode().Perm(); perm != 0600 {
			return nil, fmt.Errorf("config permissions too open: %04o (want 0600)", perm)
		}
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	case !errors.Is(err, os.ErrNotExist):
		return nil, fmt.Errorf("stat config: %w", err)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	cfg.Suggestions = cleanList(cfg.Suggestions)
	return &cfg, nil
}

// Save writes the config to disk with secure permissions.
func (c *Config) Save() error {
	path := Path()
	dir := filepath.Dir(path)

	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	return os.WriteFile(path, data, 0600)
}

// AutocompleteEnabled reports whether suggestions should be offered for pool.
func (c *Config) AutocompleteEnabled(pool []string) bool {
	return c.Autocomplete && len(pool) > 0
}

func cleanList(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
