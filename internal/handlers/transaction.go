package handlers

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/suifund/crowdfunding-gobackend/internal/models"
	"go.uber.org/zap"
)

//go:generate mockgen -source=transaction.go -destination=transaction_mock.go -package=handlers

type TransactionLister interface {
	ListByUser(ctx context.Context, address string) ([]models.TransactionView, error)
}

type TransactionHandler struct {
	transactions TransactionLister
	logger       *zap.Logger
}

func NewTransactionHandler(transactions TransactionLister, logger *zap.Logger) *TransactionHandler {
	return &TransactionHandler{transactions: transactions, logger: logger}
}

// TransactionsByUser handles GET /api/transactions/user/{address}
func (h *TransactionHandler) TransactionsByUser(w http.ResponseWriter, r *http.Request) {
	views, err := h.transactions.ListByUser(r.Context(), mux.Vars(r)["address"])
	if err != nil {
		writeError(w, h.logger, r, err)
		return
	}
	writeJSON(w, http.StatusOK, views)
}
