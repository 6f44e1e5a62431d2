package config

import (
	"time"
)

type (
	Config struct {
		App                App               `json:"app"`
		NewRelicLicenseKey string            `json:"new_relic_license_key"`
		CollectionAPI      HTTPConfiguration `json:"collection_api"`
		Payment            PaymentConfig     `json:"payment"`
	}

	App struct {
		Env             string        `json:"env"`
		HTTPPort        int           `json:"http_port"`
		HTTPTimeout     time.Duration `json:"http_timeout"`
		GracefulTimeout time.Duration `json:"graceful_timeout"`
		Name            string        `json:"name"`
		LogOption       string        `json:"log_option"`
		LogLevel        string        `json:"log_level"`
	}

	// HTTPConfiguration describes a downstream REST service. BaseURL is used as
	// an opaque prefix for endpoint paths.
	HTTPConfiguration struct {
		BaseURL string        `json:"base_url"`
		Timeout time.Duration `json:"timeout"`
	}

	PaymentConfig struct {
		// RefreshDirectoryOnSuccess reloads the loan directory after a payment
		// is accepted so the EMI due shown to the collector is current.
		RefreshDirectoryOnSuccess bool `json:"refresh_directory_on_success"`
	}
)
