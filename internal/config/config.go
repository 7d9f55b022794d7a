package config

import (
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
)

// Config centraliza la configuración del cliente de la tienda.
type Config struct {
	APIBaseURL    string        `env:"STOREFRONT_API_BASE" envDefault:"http://localhost:8000"`
	Environment   string        `env:"APP_ENV" envDefault:"development"`
	HTTPPort      string        `env:"HTTP_PORT" envDefault:"3000"`
	APITimeout    time.Duration `env:"API_TIMEOUT" envDefault:"15s"`
	LoginPath     string        `env:"LOGIN_PATH" envDefault:"/login"`
	DefaultLocale string        `env:"DEFAULT_LOCALE" envDefault:"en"`

	AuthCookieName     string        `env:"AUTH_COOKIE_NAME" envDefault:"auth_token"`
	AuthTokenMaxAge    time.Duration `env:"AUTH_TOKEN_MAX_AGE" envDefault:"168h"`
	AuthCookieHTTPOnly bool          `env:"AUTH_COOKIE_HTTP_ONLY" envDefault:"true"`

	TokenStore string `env:"TOKEN_STORE" envDefault:"file"`
	TokenFile  string `env:"TOKEN_FILE" envDefault:".storefront/session.json"`
	SessionKey string `env:"SESSION_KEY" envDefault:"default"`

	RedisAddr     string `env:"REDIS_ADDR"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`

	ResendWindow time.Duration `env:"RESEND_LIMIT_WINDOW" envDefault:"10m"`
	ResendMax    int           `env:"RESEND_LIMIT_MAX" envDefault:"3"`
}

// LoadConfig carga la configuración desde variables de entorno.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	cfg.APIBaseURL = strings.TrimRight(cfg.APIBaseURL, "/")
	return &cfg, nil
}

// IsProduction activa las cookies Secure.
func (c *Config) IsProduction() bool {
	return strings.EqualFold(strings.TrimSpace(c.Environment), "production")
}
