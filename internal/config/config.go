package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Addr     string `env:"WEB_ADDR" env-default:":8080"`
	LogLevel string `env:"LOG_LEVEL" env-default:"info"`

	PreferIPv4 bool `env:"PREFER_IPV4" env-default:"true"`

	HTTPTimeout    time.Duration `env:"HTTP_TIMEOUT" env-default:"180s"`
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" env-default:"240s"`

	GeminiBaseURL    string `env:"GEMINI_BASE_URL" env-default:"https://generativelanguage.googleapis.com"`
	GeminiAPIVersion string `env:"GEMINI_API_VERSION" env-default:"v1beta"`
	ImageModel       string `env:"IMAGE_MODEL" env-default:"gemini-2.5-flash-image"`

	// Gateway-side abuse limits. The UI is stricter; these only bound what a
	// direct caller can ask for.
	MaxImageCount int   `env:"MAX_IMAGE_COUNT" env-default:"8"`
	MaxBodyMB     int64 `env:"MAX_BODY_MB" env-default:"32"`
}

func Load() (Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return Config{}, fmt.Errorf("read env: %w", err)
	}

	if cfg.HTTPTimeout <= 0 {
		cfg.HTTPTimeout = 180 * time.Second
	}
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = 240 * time.Second
	}
	if cfg.MaxImageCount < 1 {
		cfg.MaxImageCount = 1
	}
	if cfg.MaxBodyMB < 1 {
		cfg.MaxBodyMB = 1
	}

	return cfg, nil
}

func (c Config) MaxBodyBytes() int64 {
	return c.MaxBodyMB << 20
}
