package bank

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/congo-pay/bankaccounts/internal/account"
)

// Handler exposes account HTTP endpoints.
type Handler struct {
	service *Service
}

// NewHandler builds an account HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

type openRequest struct {
	ID             string          `json:"id"`
	Holder         string          `json:"holder"`
	Kind           string          `json:"kind"`
	InitialBalance decimal.Decimal `json:"initial_balance"`
}

type postingRequest struct {
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
}

type transactionResponse struct {
	ID          string          `json:"id"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
}

type accountResponse struct {
	ID           string                `json:"id"`
	Holder       string                `json:"holder"`
	Kind         string                `json:"kind"`
	Balance      decimal.Decimal       `json:"balance"`
	Transactions []transactionResponse `json:"transactions"`
}

type postingResponse struct {
	AccountID   string               `json:"account_id"`
	Posted      bool                 `json:"posted"`
	Transaction *transactionResponse `json:"transaction,omitempty"`
	Balance     decimal.Decimal      `json:"balance"`
}

// Open registers a new account.
func (h *Handler) Open(c *fiber.Ctx) error {
	var req openRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	summary, err := h.service.Open(c.UserContext(), OpenInput{
		ID:             req.ID,
		Holder:         req.Holder,
		Kind:           req.Kind,
		InitialBalance: req.InitialBalance,
	})
	if err != nil {
		return toFiberError(err)
	}
	return c.Status(http.StatusCreated).JSON(toAccountResponse(summary))
}

// List returns every registered account.
func (h *Handler) List(c *fiber.Ctx) error {
	summaries := h.service.List(c.UserContext())
	out := make([]accountResponse, 0, len(summaries))
	for _, s := range summaries {
		out = append(out, toAccountResponse(s))
	}
	return c.Status(http.StatusOK).JSON(fiber.Map{"accounts": out})
}

// Get returns one account with its history.
func (h *Handler) Get(c *fiber.Ctx) error {
	summary, err := h.service.Get(c.UserContext(), c.Params("accountId"))
	if err != nil {
		return toFiberError(err)
	}
	return c.Status(http.StatusOK).JSON(toAccountResponse(summary))
}

// Statement returns the printable statement as plain text.
func (h *Handler) Statement(c *fiber.Ctx) error {
	statement, err := h.service.Statement(c.UserContext(), c.Params("accountId"))
	if err != nil {
		return toFiberError(err)
	}
	c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
	return c.Status(http.StatusOK).SendString(statement)
}

// Deposit credits the account.
func (h *Handler) Deposit(c *fiber.Ctx) error {
	var req postingRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	res, err := h.service.Deposit(c.UserContext(), PostingInput{AccountID: c.Params("accountId"), Amount: req.Amount, Description: req.Description})
	return respondPosting(c, res, err)
}

// Withdraw debits the account.
func (h *Handler) Withdraw(c *fiber.Ctx) error {
	var req postingRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	res, err := h.service.Withdraw(c.UserContext(), PostingInput{AccountID: c.Params("accountId"), Amount: req.Amount, Description: req.Description})
	return respondPosting(c, res, err)
}

// Interest applies the account kind's interest.
func (h *Handler) Interest(c *fiber.Ctx) error {
	res, err := h.service.ApplyInterest(c.UserContext(), c.Params("accountId"))
	return respondPosting(c, res, err)
}

// Execute posts a signed amount: positive deposits, negative withdraws.
func (h *Handler) Execute(c *fiber.Ctx) error {
	var req postingRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	res, err := h.service.Execute(c.UserContext(), c.Params("accountId"), req.Amount)
	return respondPosting(c, res, err)
}

func respondPosting(c *fiber.Ctx, res PostingResult, err error) error {
	if err != nil {
		return toFiberError(err)
	}
	out := postingResponse{AccountID: res.AccountID, Posted: res.Posted, Balance: res.Balance}
	status := http.StatusOK
	if res.Posted {
		tx := toTransactionResponse(res.Transaction)
		out.Transaction = &tx
		status = http.StatusCreated
	}
	return c.Status(status).JSON(out)
}

func toFiberError(err error) error {
	switch {
	case errors.Is(err, ErrAccountNotFound):
		return fiber.NewError(http.StatusNotFound, err.Error())
	case errors.Is(err, ErrDuplicateAccount):
		return fiber.NewError(http.StatusConflict, err.Error())
	case errors.Is(err, account.ErrNonPositiveAmount),
		errors.Is(err, account.ErrInsufficientFunds),
		errors.Is(err, account.ErrUnknownKind),
		errors.Is(err, ErrNegativeOpeningBalance):
		return fiber.NewError(http.StatusBadRequest, err.Error())
	default:
		return fiber.NewError(http.StatusInternalServerError, err.Error())
	}
}

func toAccountResponse(s Summary) accountResponse {
	txs := make([]transactionResponse, 0, len(s.Transactions))
	for _, t := range s.Transactions {
		txs = append(txs, toTransactionResponse(t))
	}
	return accountResponse{
		ID:           s.ID,
		Holder:       s.Holder,
		Kind:         s.Kind.String(),
		Balance:      s.Balance,
		Transactions: txs,
	}
}

func toTransactionResponse(t account.Transaction) transactionResponse {
	return transactionResponse{ID: t.ID, Amount: t.Amount, Description: t.Description}
}
