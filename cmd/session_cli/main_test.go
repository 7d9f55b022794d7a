package main

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"go.uber.org/zap"

	"storefront/internal/config"
	"storefront/internal/tokenstore"
)

func TestBuildTokenStore(t *testing.T) {
	ctx := context.Background()
	logger := zap.NewNop()
	file := filepath.Join(t.TempDir(), "session.json")

	t.Run("memory", func(t *testing.T) {
		cfg := &config.Config{TokenStore: "Memory", AuthTokenMaxAge: time.Hour}
		if _, ok := buildTokenStore(ctx, cfg, logger).(*tokenstore.MemoryStore); !ok {
			t.Fatalf("expected memory store")
		}
	})

	t.Run("file by default", func(t *testing.T) {
		cfg := &config.Config{TokenStore: "file", TokenFile: file, AuthTokenMaxAge: time.Hour}
		store := buildTokenStore(ctx, cfg, logger)
		if _, ok := store.(*tokenstore.FileStore); !ok {
			t.Fatalf("expected file store, got %T", store)
		}
		if err := store.SetToken(ctx, "tok-1"); err != nil {
			t.Fatalf("set token: %v", err)
		}
		got, err := store.Token(ctx)
		if err != nil || got != "tok-1" {
			t.Fatalf("expected persisted token, got %q err=%v", got, err)
		}
	})

	t.Run("redis without address falls back to file", func(t *testing.T) {
		cfg := &config.Config{TokenStore: "redis", TokenFile: file, AuthTokenMaxAge: time.Hour}
		if _, ok := buildTokenStore(ctx, cfg, logger).(*tokenstore.FileStore); !ok {
			t.Fatalf("expected file store fallback")
		}
	})

	t.Run("unreachable redis falls back to file", func(t *testing.T) {
		cfg := &config.Config{TokenStore: "redis", RedisAddr: "127.0.0.1:1", TokenFile: file, AuthTokenMaxAge: time.Hour}
		if _, ok := buildTokenStore(ctx, cfg, logger).(*tokenstore.FileStore); !ok {
			t.Fatalf("expected file store fallback")
		}
	})
}

func TestOptional(t *testing.T) {
	if optional("") != nil {
		t.Fatalf("expected nil for empty input")
	}
	if v := optional("x"); v == nil || *v != "x" {
		t.Fatalf("expected pointer to value")
	}
}
