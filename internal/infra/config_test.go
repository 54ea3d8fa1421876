package infra

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("APP_ENV", "")
	t.Setenv("PORT", "")
	t.Setenv("CORS_ALLOWED_ORIGINS", "")
	t.Setenv("RATE_LIMIT_PER_MINUTE", "")
	t.Setenv("HTTP_IDLE_TIMEOUT_SECONDS", "")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if cfg.Port != "3001" {
		t.Fatalf("Port mismatch: got %q want %q", cfg.Port, "3001")
	}
	if cfg.AppEnv != "development" {
		t.Fatalf("AppEnv mismatch: got %q", cfg.AppEnv)
	}
	if diff := cmp.Diff([]string{"http://localhost:5173"}, cfg.AllowedOrigins); diff != "" {
		t.Fatalf("AllowedOrigins mismatch (-want +got):\n%s", diff)
	}
	if cfg.RateLimitPerMin != 30 || cfg.HTTPIdleTimeout != 60*time.Second {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
}

func TestLoadConfigSplitsOrigins(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("RATE_LIMIT_PER_MINUTE", "")
	t.Setenv("CORS_ALLOWED_ORIGINS", " https://portal.example.com ,, http://localhost:5173 ")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	want := []string{"https://portal.example.com", "http://localhost:5173"}
	if diff := cmp.Diff(want, cfg.AllowedOrigins); diff != "" {
		t.Fatalf("AllowedOrigins mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadConfigRejectsInvalidValues(t *testing.T) {
	t.Run("non numeric port", func(t *testing.T) {
		t.Setenv("PORT", "http")
		if _, err := LoadConfig(); err == nil {
			t.Fatalf("LoadConfig expected error for non numeric PORT")
		}
	})
	t.Run("zero rate limit", func(t *testing.T) {
		t.Setenv("PORT", "")
		t.Setenv("RATE_LIMIT_PER_MINUTE", "0")
		if _, err := LoadConfig(); err == nil {
			t.Fatalf("LoadConfig expected error for zero RATE_LIMIT_PER_MINUTE")
		}
	})
}
