package server

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"

	"github.com/congo-pay/bankaccounts/internal/config"
	"github.com/congo-pay/bankaccounts/internal/logging"
)

func TestNewServesSeededAccounts(t *testing.T) {
	srv, err := New(config.Config{AppName: "test", AppEnv: "test", SeedScenario: true}, nil, logging.Discard())
	if err != nil {
		t.Fatalf("new server: %v", err)
	}

	if n := len(srv.Accounts().List(context.Background())); n != 3 {
		t.Fatalf("expected 3 seeded accounts, got %d", n)
	}

	resp, err := srv.App().Test(httptest.NewRequest(fiber.MethodGet, "/api/v1/ping", nil))
	if err != nil {
		t.Fatalf("ping: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
}

func TestNewRejectsProductionWithoutRedis(t *testing.T) {
	if _, err := New(config.Config{AppEnv: "production"}, nil, logging.Discard()); err == nil {
		t.Fatalf("expected error")
	}
}
