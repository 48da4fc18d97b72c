package server

import (
	"context"
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"

	"github.com/congo-pay/bankaccounts/internal/bank"
	"github.com/congo-pay/bankaccounts/internal/config"
	"github.com/congo-pay/bankaccounts/internal/routes"
)

// Server wraps the Fiber application and the account service it serves.
type Server struct {
	app      *fiber.App
	cfg      config.Config
	accounts *bank.Service
}

// New instantiates the HTTP server and delegates route wiring to routes.Setup.
// cache may be nil.
func New(cfg config.Config, cache *redis.Client, logger *slog.Logger) (*Server, error) {
	app := fiber.New(fiber.Config{
		AppName:               cfg.AppName,
		ReadTimeout:           30 * time.Second,
		WriteTimeout:          30 * time.Second,
		DisableStartupMessage: true,
	})

	accounts, err := routes.Setup(app, routes.Deps{Cfg: cfg, Cache: cache, Logger: logger})
	if err != nil {
		return nil, err
	}

	return &Server{app: app, cfg: cfg, accounts: accounts}, nil
}

// App exposes the Fiber application, mainly for app.Test in tests.
func (s *Server) App() *fiber.App {
	return s.app
}

// Accounts returns the account service backing the routes.
func (s *Server) Accounts() *bank.Service {
	return s.accounts
}

// Listen starts the HTTP server.
func (s *Server) Listen() error {
	return s.app.Listen(s.cfg.Address())
}

// Shutdown gracefully stops the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.app.ShutdownWithContext(ctx)
}
