package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"APP_NAME", "PORT", "LOG_LEVEL", "REDIS_URL", "SHUTDOWN_TIMEOUT_SECONDS", "SHUTDOWN_TIMEOUT", "IDEMPOTENCY_TTL_SECONDS", "IDEMPOTENCY_TTL", "SEED_SCENARIO"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.AppName != defaultAppName || cfg.Address() != ":8080" || cfg.LogLevel != "info" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.ShutdownPeriod != defaultShutdownDelay || cfg.IdempotencyTTL != defaultIdempotencyTTL {
		t.Fatalf("unexpected durations: %+v", cfg)
	}
	if cfg.SeedScenario {
		t.Fatalf("seed scenario should default to false")
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", ":9090")
	t.Setenv("LOG_LEVEL", "DEBUG")
	t.Setenv("SHUTDOWN_TIMEOUT_SECONDS", "3")
	t.Setenv("IDEMPOTENCY_TTL", "90m")
	t.Setenv("SEED_SCENARIO", "true")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Address() != ":9090" || cfg.LogLevel != "debug" {
		t.Fatalf("unexpected overrides: %+v", cfg)
	}
	if cfg.ShutdownPeriod != 3*time.Second || cfg.IdempotencyTTL != 90*time.Minute || !cfg.SeedScenario {
		t.Fatalf("unexpected overrides: %+v", cfg)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	t.Setenv("SHUTDOWN_TIMEOUT_SECONDS", "soon")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for invalid shutdown timeout")
	}

	t.Setenv("SHUTDOWN_TIMEOUT_SECONDS", "")
	t.Setenv("SEED_SCENARIO", "maybe")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for invalid seed flag")
	}
}
