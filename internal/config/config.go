// Package config loads settings from the config file and environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config is the full application configuration.
type Config struct {
	Notion NotionConfig `mapstructure:"notion"`
	Export ExportConfig `mapstructure:"export"`
	Serve  ServeConfig  `mapstructure:"serve"`
}

// NotionConfig configures the destination API boundary.
type NotionConfig struct {
	Token   string        `mapstructure:"token"`   // integration token; env MD2NOTION_NOTION_TOKEN
	Timeout time.Duration `mapstructure:"timeout"` // per-request bound
}

// ExportConfig configures the chunked uploader.
type ExportConfig struct {
	ChunkSize int `mapstructure:"chunk_size"` // max top-level blocks per API call
}

// ServeConfig configures the progress-streaming HTTP server.
type ServeConfig struct {
	Addr string `mapstructure:"addr"`
}

// Load reads ~/.config/md2notion/config.yaml, applying defaults and
// MD2NOTION_* environment overrides. A missing config file is fine; a
// malformed one is not.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(filepath.Join(home, ".config", "md2notion"))
	}
	v.AddConfigPath(".")

	// Registered so AutomaticEnv finds it during Unmarshal even when the
	// key is absent from the config file.
	v.SetDefault("notion.token", "")
	v.SetDefault("notion.timeout", 10*time.Second)
	v.SetDefault("export.chunk_size", 100)
	v.SetDefault("serve.addr", "127.0.0.1:8787")

	v.SetEnvPrefix("MD2NOTION")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return &cfg, nil
}

// RequireToken returns the configured token or a helpful error.
func (c *Config) RequireToken() (string, error) {
	if c.Notion.Token == "" {
		return "", fmt.Errorf("no notion token configured: set notion.token in config.yaml or MD2NOTION_NOTION_TOKEN")
	}
	return c.Notion.Token, nil
}
