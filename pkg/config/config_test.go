package config

import (
	"os"
	"testing"
	"time"
)

func TestLoad_Success(t *testing.T) {
	setMinimalEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}

	if cfg.App.Env != "production" {
		t.Fatalf("expected App.Env to be production, got %q", cfg.App.Env)
	}

	if cfg.Redis.URL != "redis://localhost:6379/0" {
		t.Fatalf("unexpected Redis URL: %q", cfg.Redis.URL)
	}

	if cfg.Catalog.BaseURL != "https://fakestoreapi.com" {
		t.Fatalf("unexpected catalog base URL: %q", cfg.Catalog.BaseURL)
	}

	if got := cfg.Auth.LoginConfirmDelay; got != time.Second {
		t.Fatalf("expected login confirm delay 1s, got %v", got)
	}

	if got := cfg.Auth.SignupConfirmDelay; got != 1500*time.Millisecond {
		t.Fatalf("expected signup confirm delay 1.5s, got %v", got)
	}

	if cfg.Session.CookieName != "ss_session" {
		t.Fatalf("unexpected session cookie %q", cfg.Session.CookieName)
	}
}

func TestLoad_MissingRequired(t *testing.T) {
	setMinimalEnv(t)
	if err := os.Unsetenv(EnvRedisURL); err != nil {
		t.Fatalf("failed to unset %s: %v", EnvRedisURL, err)
	}

	if _, err := Load(); err == nil {
		t.Fatal("expected missing required env to return an error")
	}
}

func TestAppConfigEnvHelpers(t *testing.T) {
	app := AppConfig{Env: "Production"}
	if !app.IsProd() || app.IsDev() {
		t.Fatalf("expected production helpers to match case-insensitively")
	}
	app.Env = "DEVELOPMENT"
	if !app.IsDev() || app.IsProd() {
		t.Fatalf("expected development helpers to match case-insensitively")
	}
}

func setMinimalEnv(t *testing.T) {
	t.Helper()

	t.Setenv(EnvAppEnv, "production")
	t.Setenv(EnvPort, "8081")
	t.Setenv(EnvRedisURL, "redis://localhost:6379/0")
}
