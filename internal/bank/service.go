package bank

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/congo-pay/bankaccounts/internal/account"
	"github.com/congo-pay/bankaccounts/internal/logging"
	"github.com/congo-pay/bankaccounts/internal/notification"
)

// Service exposes registry operations behind a single mutex so HTTP handlers
// can share one Bank.
type Service struct {
	mu       sync.Mutex
	bank     *Bank
	notifier notification.Notifier
	logger   *slog.Logger
}

// NewService wraps b. notifier and logger may be nil.
func NewService(b *Bank, notifier notification.Notifier, logger *slog.Logger) *Service {
	if b == nil {
		b = NewBank()
	}
	if logger == nil {
		logger = logging.Discard()
	}
	return &Service{bank: b, notifier: notifier, logger: logger}
}

// OpenInput captures the data required to open an account.
type OpenInput struct {
	ID             string
	Holder         string
	Kind           string
	InitialBalance decimal.Decimal
}

// Summary is a point-in-time copy of an account.
type Summary struct {
	ID           string
	Holder       string
	Kind         account.Kind
	Balance      decimal.Decimal
	Transactions []account.Transaction
}

// PostingInput describes a deposit or withdrawal request. An empty
// Description falls back to the account defaults.
type PostingInput struct {
	AccountID   string
	Amount      decimal.Decimal
	Description string
}

// PostingResult describes the outcome of a posting. Posted is false when the
// operation was a no-op, e.g. interest on a checking account.
type PostingResult struct {
	AccountID   string
	Transaction account.Transaction
	Balance     decimal.Decimal
	Posted      bool
}

// Open registers a new account. A missing id is replaced with a UUID.
func (s *Service) Open(ctx context.Context, input OpenInput) (Summary, error) {
	kind, err := account.ParseKind(input.Kind)
	if err != nil {
		return Summary{}, err
	}
	if input.InitialBalance.IsNegative() {
		return Summary{}, ErrNegativeOpeningBalance
	}
	id := input.ID
	if id == "" {
		id = uuid.NewString()
	}

	a := account.New(id, input.Holder, kind, input.InitialBalance)

	s.mu.Lock()
	err = s.bank.Add(a)
	summary := summarize(a)
	s.mu.Unlock()
	if err != nil {
		return Summary{}, err
	}

	s.logger.InfoContext(ctx, "account opened", slog.String("account_id", id), slog.String("kind", kind.String()))
	s.notify(ctx, notification.Message{
		Kind:        notification.KindAccountOpened,
		Destination: id,
		Body:        fmt.Sprintf("%s account opened for %s", kind.Label(), input.Holder),
	})
	return summary, nil
}

// Get returns a snapshot of the account.
func (s *Service) Get(_ context.Context, id string) (Summary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, err := s.bank.Get(id)
	if err != nil {
		return Summary{}, err
	}
	return summarize(a), nil
}

// List returns snapshots of every account in registration order.
func (s *Service) List(_ context.Context) []Summary {
	s.mu.Lock()
	defer s.mu.Unlock()
	accounts := s.bank.List()
	out := make([]Summary, 0, len(accounts))
	for _, a := range accounts {
		out = append(out, summarize(a))
	}
	return out
}

// Statement renders the printable statement for the account.
func (s *Service) Statement(_ context.Context, id string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, err := s.bank.Get(id)
	if err != nil {
		return "", err
	}
	return a.Statement(), nil
}

// Deposit credits an account.
func (s *Service) Deposit(ctx context.Context, input PostingInput) (PostingResult, error) {
	return s.post(ctx, "deposit", input.AccountID, func(a *account.Account) (account.Transaction, error) {
		if input.Description == "" {
			return a.Deposit(input.Amount)
		}
		return a.DepositWithDescription(input.Amount, input.Description)
	})
}

// Withdraw debits an account.
func (s *Service) Withdraw(ctx context.Context, input PostingInput) (PostingResult, error) {
	return s.post(ctx, "withdraw", input.AccountID, func(a *account.Account) (account.Transaction, error) {
		if input.Description == "" {
			return a.Withdraw(input.Amount)
		}
		return a.WithdrawWithDescription(input.Amount, input.Description)
	})
}

// ApplyInterest runs the account kind's interest calculation.
func (s *Service) ApplyInterest(ctx context.Context, id string) (PostingResult, error) {
	return s.post(ctx, "interest", id, (*account.Account).CalculateInterest)
}

// Execute routes a signed amount to a deposit or withdrawal.
func (s *Service) Execute(ctx context.Context, id string, amount decimal.Decimal) (PostingResult, error) {
	return s.post(ctx, "execute", id, func(a *account.Account) (account.Transaction, error) {
		return a.ExecuteTransaction(amount)
	})
}

func (s *Service) post(ctx context.Context, op, id string, apply func(*account.Account) (account.Transaction, error)) (PostingResult, error) {
	s.mu.Lock()
	a, err := s.bank.Get(id)
	if err != nil {
		s.mu.Unlock()
		return PostingResult{}, err
	}
	tx, err := apply(a)
	balance := a.Balance()
	s.mu.Unlock()

	if err != nil {
		if errors.Is(err, account.ErrNonPositiveAmount) || errors.Is(err, account.ErrInsufficientFunds) {
			s.logger.WarnContext(ctx, "posting rejected", slog.String("op", op), slog.String("account_id", id), slog.Any("error", err))
		}
		return PostingResult{}, err
	}

	res := PostingResult{AccountID: id, Transaction: tx, Balance: balance, Posted: tx.ID != ""}
	if res.Posted {
		s.logger.InfoContext(ctx, "posting applied",
			slog.String("op", op),
			slog.String("account_id", id),
			slog.String("transaction_id", tx.ID),
			slog.String("amount", tx.Amount.String()),
		)
		s.notify(ctx, notification.Message{Kind: notification.KindTransactionPosted, Destination: id, Body: tx.String()})
	}
	return res, nil
}

func (s *Service) notify(ctx context.Context, msg notification.Message) {
	if s.notifier == nil {
		return
	}
	if err := s.notifier.Send(ctx, msg); err != nil {
		s.logger.WarnContext(ctx, "notification failed", slog.String("kind", msg.Kind), slog.Any("error", err))
	}
}

func summarize(a *account.Account) Summary {
	return Summary{
		ID:           a.ID(),
		Holder:       a.Holder(),
		Kind:         a.Kind(),
		Balance:      a.Balance(),
		Transactions: a.Transactions(),
	}
}
