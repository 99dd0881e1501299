package config

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/ytget/cuisine-explorer/internal/mealdb"
	"github.com/ytget/cuisine-explorer/internal/thumbnail"
)

// Config file lookup
const (
	ConfigName = "cuisine-explorer"
	ConfigType = "yaml"
	EnvPrefix  = "CUISINE"
)

// Config keys
const (
	KeyAPIBaseURL      = "api.base_url"
	KeyAPITimeout      = "api.timeout"
	KeyThumbnailWidth  = "thumbnail.width"
	KeyThumbnailHeight = "thumbnail.height"
)

// DefaultConfigPaths are searched in order when no paths are given
var DefaultConfigPaths = []string{".", "$HOME/.config"}

// APIConfig configures the recipe API client
type APIConfig struct {
	BaseURL string `mapstructure:"base_url"`
	// Timeout of 0 means requests wait until the server answers
	Timeout time.Duration `mapstructure:"timeout"`
}

// ThumbnailConfig configures the recipe image box
type ThumbnailConfig struct {
	Width  uint `mapstructure:"width"`
	Height uint `mapstructure:"height"`
}

// AppConfig is the startup configuration read from file and environment
type AppConfig struct {
	API       APIConfig       `mapstructure:"api"`
	Thumbnail ThumbnailConfig `mapstructure:"thumbnail"`
}

// HTTPClient builds the client shared by the API and thumbnail services
func (c *AppConfig) HTTPClient() *http.Client {
	return &http.Client{Timeout: c.API.Timeout}
}

// LoadAppConfig layers defaults, an optional cuisine-explorer.yaml found in
// paths (DefaultConfigPaths when empty) and CUISINE_* environment variables,
// e.g. CUISINE_API_BASE_URL. A missing config file is not an error.
func LoadAppConfig(paths ...string) (*AppConfig, error) {
	v := viper.New()
	v.SetConfigName(ConfigName)
	v.SetConfigType(ConfigType)

	if len(paths) == 0 {
		paths = DefaultConfigPaths
	}
	for _, p := range paths {
		v.AddConfigPath(p)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault(KeyAPIBaseURL, mealdb.DefaultBaseURL)
	v.SetDefault(KeyAPITimeout, time.Duration(0))
	v.SetDefault(KeyThumbnailWidth, thumbnail.DefaultWidth)
	v.SetDefault(KeyThumbnailHeight, thumbnail.DefaultHeight)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg AppConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if strings.TrimSpace(cfg.API.BaseURL) == "" {
		cfg.API.BaseURL = mealdb.DefaultBaseURL
	}
	if cfg.API.Timeout < 0 {
		cfg.API.Timeout = 0
	}
	if cfg.Thumbnail.Width == 0 {
		cfg.Thumbnail.Width = thumbnail.DefaultWidth
	}
	if cfg.Thumbnail.Height == 0 {
		cfg.Thumbnail.Height = thumbnail.DefaultHeight
	}

	return &cfg, nil
}
