package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/congo-pay/bankaccounts/internal/bank"
)

// RegisterAccountRoutes wires account endpoints.
func RegisterAccountRoutes(r fiber.Router, h *bank.Handler) {
	group := r.Group("/accounts")
	group.Post("", h.Open)
	group.Get("", h.List)
	group.Get("/:accountId", h.Get)
	group.Get("/:accountId/statement", h.Statement)
	group.Post("/:accountId/deposit", h.Deposit)
	group.Post("/:accountId/withdraw", h.Withdraw)
	group.Post("/:accountId/interest", h.Interest)
	group.Post("/:accountId/transactions", h.Execute)
}
