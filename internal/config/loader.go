package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

const EnvPrefix = "GO_EMI_COLLECTION"

var ErrMissingBaseURL = errors.New("collection_api.base_url is required")

type LoadOption func(v *viper.Viper)

// WithConfigFile reads an explicit file instead of searching for "config.*".
func WithConfigFile(path string) LoadOption {
	return func(v *viper.Viper) {
		if path != "" {
			v.SetConfigFile(path)
		}
	}
}

// Load reads config.{json,yaml} from /config, . and ./config, then applies
// GO_EMI_COLLECTION_* environment overrides (e.g. GO_EMI_COLLECTION_COLLECTION_API_BASE_URL).
// A missing config file is not an error as long as the required keys are set.
func Load(opts ...LoadOption) (cfg Config, err error) {
	v := viper.New()
	v.SetConfigName("config")
	v.AddConfigPath("/config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	for _, opt := range opts {
		opt(v)
	}

	if err = v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return cfg, fmt.Errorf("failed read config: %w", err)
		}
	}

	err = v.Unmarshal(&cfg, func(dc *mapstructure.DecoderConfig) {
		dc.TagName = "json"
	})
	if err != nil {
		return cfg, fmt.Errorf("failed unmarshal config: %w", err)
	}

	if strings.TrimSpace(cfg.CollectionAPI.BaseURL) == "" {
		return cfg, ErrMissingBaseURL
	}
	cfg.CollectionAPI.BaseURL = strings.TrimRight(cfg.CollectionAPI.BaseURL, "/")

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.env", "local")
	v.SetDefault("app.name", "go-emi-collection")
	v.SetDefault("app.http_port", 8080)
	v.SetDefault("app.http_timeout", 30*time.Second)
	v.SetDefault("app.graceful_timeout", 10*time.Second)
	v.SetDefault("app.log_option", "stdout")
	v.SetDefault("app.log_level", "")
	v.SetDefault("new_relic_license_key", "")
	v.SetDefault("collection_api.base_url", "")
	v.SetDefault("collection_api.timeout", 15*time.Second)
	v.SetDefault("payment.refresh_directory_on_success", true)
}
