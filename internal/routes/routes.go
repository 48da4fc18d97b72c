package routes

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/redis/go-redis/v9"

	"github.com/congo-pay/bankaccounts/internal/bank"
	"github.com/congo-pay/bankaccounts/internal/config"
	"github.com/congo-pay/bankaccounts/internal/middleware"
	"github.com/congo-pay/bankaccounts/internal/notification"
	"github.com/congo-pay/bankaccounts/internal/scenario"
)

// Deps aggregates shared dependencies required to wire routes.
type Deps struct {
	Cfg    config.Config
	Cache  *redis.Client
	Logger *slog.Logger
}

// Setup configures middlewares and all application routes. It returns the
// account service so callers can inspect the registry.
func Setup(app *fiber.App, d Deps) (*bank.Service, error) {
	// Outside dev a retried POST must not post twice.
	if !isDev(d.Cfg.AppEnv) && d.Cache == nil {
		return nil, fmt.Errorf("redis is required when APP_ENV=%s", d.Cfg.AppEnv)
	}

	app.Use(recover.New())
	app.Use(middleware.RequestID())
	app.Use(middleware.Audit(d.Logger))
	if d.Cache != nil {
		app.Use(middleware.Idempotency(middleware.IdempotencyConfig{
			Cache:      d.Cache,
			TTL:        d.Cfg.IdempotencyTTL,
			Logger:     d.Logger,
			RequireKey: !isDev(d.Cfg.AppEnv),
		}))
	}

	RegisterHealthRoutes(app, d)

	svc := bank.NewService(bank.NewBank(), notification.NewLoggerNotifier(d.Logger), d.Logger)
	if d.Cfg.SeedScenario {
		if err := scenario.Seed(context.Background(), svc); err != nil {
			return nil, err
		}
	}

	api := app.Group("/api/v1")
	api.Get("/ping", func(c *fiber.Ctx) error {
		reqID, _ := c.Locals(middleware.RequestIDHeader).(string)
		return c.Status(http.StatusOK).JSON(fiber.Map{
			"status":     "ok",
			"request_id": reqID,
			"timestamp":  time.Now().UTC().Format(time.RFC3339Nano),
		})
	})
	RegisterAccountRoutes(api, bank.NewHandler(svc))

	return svc, nil
}

func isDev(env string) bool {
	switch strings.ToLower(env) {
	case "dev", "development", "local", "test":
		return true
	default:
		return false
	}
}
