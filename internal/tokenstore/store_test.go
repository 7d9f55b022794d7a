package tokenstore

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestMemoryStore_SetClearAndExpiry(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	store := NewMemoryStore(time.Hour)
	store.now = func() time.Time { return now }

	tok, err := store.Token(ctx)
	if err != nil || tok != "" {
		t.Fatalf("expected empty store, got %q,%v", tok, err)
	}

	if err := store.SetToken(ctx, " abc "); err != nil {
		t.Fatalf("set token: %v", err)
	}
	tok, _ = store.Token(ctx)
	if tok != "abc" {
		t.Fatalf("expected trimmed token, got %q", tok)
	}

	now = now.Add(2 * time.Hour)
	tok, _ = store.Token(ctx)
	if tok != "" {
		t.Fatalf("expected expired token to be dropped, got %q", tok)
	}

	_ = store.SetToken(ctx, "def")
	if err := store.ClearToken(ctx); err != nil {
		t.Fatalf("clear token: %v", err)
	}
	tok, _ = store.Token(ctx)
	if tok != "" {
		t.Fatalf("expected cleared token, got %q", tok)
	}
}

func TestMemoryStore_DefaultMaxAge(t *testing.T) {
	store := NewMemoryStore(0)
	if store.maxAge != 7*24*time.Hour {
		t.Fatalf("expected 7 day default, got %v", store.maxAge)
	}
}

func TestFileStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "session.json")
	store := NewFileStore(path, time.Hour)

	tok, err := store.Token(ctx)
	if err != nil || tok != "" {
		t.Fatalf("missing file should read as empty, got %q,%v", tok, err)
	}

	if err := store.SetToken(ctx, "tok-1"); err != nil {
		t.Fatalf("set token: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat token file: %v", err)
	}
	if info.Mode().Perm() != 0o600 {
		t.Fatalf("expected 0600 perms, got %v", info.Mode().Perm())
	}

	reopened := NewFileStore(path, time.Hour)
	tok, err = reopened.Token(ctx)
	if err != nil || tok != "tok-1" {
		t.Fatalf("expected persisted token, got %q,%v", tok, err)
	}

	if err := reopened.ClearToken(ctx); err != nil {
		t.Fatalf("clear token: %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("expected token file removed, got %v", err)
	}
	if err := reopened.ClearToken(ctx); err != nil {
		t.Fatalf("clearing twice should be a no-op, got %v", err)
	}
}

func TestFileStore_ExpiredAndEmpty(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "session.json")
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	store := NewFileStore(path, time.Hour)
	store.now = func() time.Time { return now }

	if err := store.SetToken(ctx, "tok"); err != nil {
		t.Fatalf("set token: %v", err)
	}
	now = now.Add(90 * time.Minute)
	tok, err := store.Token(ctx)
	if err != nil || tok != "" {
		t.Fatalf("expected expired token, got %q,%v", tok, err)
	}

	if err := store.SetToken(ctx, "  "); err != nil {
		t.Fatalf("empty token should clear, got %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("expected file removed on empty token, got %v", err)
	}
}

func TestFileStore_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	if err := os.WriteFile(path, []byte("not-json"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	store := NewFileStore(path, time.Hour)
	if _, err := store.Token(context.Background()); err == nil {
		t.Fatalf("expected decode error")
	}
}
