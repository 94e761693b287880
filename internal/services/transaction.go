package services

import (
	"context"
	"strings"

	"github.com/suifund/crowdfunding-gobackend/internal/models"
	"go.uber.org/zap"
)

//go:generate mockgen -source=transaction.go -destination=transaction_mock.go -package=services

// TransactionReader lists a donor's ledger entries.
type TransactionReader interface {
	ListByUser(ctx context.Context, address string) ([]models.TransactionView, error)
}

type TransactionService struct {
	transactions TransactionReader
	logger       *zap.Logger
}

func NewTransactionService(transactions TransactionReader, logger *zap.Logger) *TransactionService {
	return &TransactionService{transactions: transactions, logger: logger}
}

// ListByUser returns the donor's transactions, newest first, each with its
// campaign summary or nil when the campaign no longer exists.
func (s *TransactionService) ListByUser(ctx context.Context, address string) ([]models.TransactionView, error) {
	address = strings.TrimSpace(address)
	if address == "" {
		return nil, invalid("address is required")
	}

	views, err := s.transactions.ListByUser(ctx, address)
	if err != nil {
		s.logger.Error("Failed to fetch user transactions", zap.String("address", address), zap.Error(err))
		return nil, &PersistenceError{Op: "fetch user transactions", Err: err}
	}
	return views, nil
}
