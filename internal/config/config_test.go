package config

import (
	"testing"
	"time"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.AuthCookieName != "auth_token" {
		t.Fatalf("expected auth_token cookie, got %q", cfg.AuthCookieName)
	}
	if cfg.AuthTokenMaxAge != 7*24*time.Hour {
		t.Fatalf("expected 7 day max age, got %s", cfg.AuthTokenMaxAge)
	}
	if cfg.IsProduction() {
		t.Fatalf("default environment must not be production")
	}
}

func TestLoadConfig_FromEnv(t *testing.T) {
	t.Setenv("STOREFRONT_API_BASE", "https://api.example.com/")
	t.Setenv("APP_ENV", "Production")
	t.Setenv("TOKEN_STORE", "redis")
	t.Setenv("REDIS_DB", "2")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.APIBaseURL != "https://api.example.com" {
		t.Fatalf("expected trailing slash trimmed, got %q", cfg.APIBaseURL)
	}
	if !cfg.IsProduction() {
		t.Fatalf("expected production")
	}
	if cfg.TokenStore != "redis" || cfg.RedisDB != 2 {
		t.Fatalf("unexpected redis settings %+v", cfg)
	}
}

func TestLoadConfig_InvalidDuration(t *testing.T) {
	t.Setenv("API_TIMEOUT", "soon")
	if _, err := LoadConfig(); err == nil {
		t.Fatalf("expected error for invalid duration")
	}
}
