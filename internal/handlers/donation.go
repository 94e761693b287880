package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/suifund/crowdfunding-gobackend/internal/models"
	"github.com/suifund/crowdfunding-gobackend/internal/services"
	"go.uber.org/zap"
)

//go:generate mockgen -source=donation.go -destination=donation_mock.go -package=handlers

// DonationRecorder verifies and records a donation attempt.
type DonationRecorder interface {
	RecordDonation(ctx context.Context, identifier string, req models.DonationRequest) (*services.DonationResult, error)
}

type DonationHandler struct {
	donations DonationRecorder
	logger    *zap.Logger
}

func NewDonationHandler(donations DonationRecorder, logger *zap.Logger) *DonationHandler {
	return &DonationHandler{donations: donations, logger: logger}
}

// DonateRequest is the body of a donation submission. Amount accepts both a
// JSON number and a numeric string.
type DonateRequest struct {
	DonorAddress string      `json:"donorAddress"`
	Amount       json.Number `json:"amount"`
	TxDigest     string      `json:"txDigest"`
}

type DonateResponse struct {
	Message  string           `json:"message"`
	Verified bool             `json:"verified"`
	Campaign *models.Campaign `json:"campaign"`
}

// Donate handles POST /api/campaigns/donate/{identifier}
func (h *DonationHandler) Donate(w http.ResponseWriter, r *http.Request) {
	identifier := mux.Vars(r)["identifier"]

	var body DonateRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		badRequest(w, "Invalid request body")
		return
	}

	var amount float64
	if body.Amount != "" {
		f, err := body.Amount.Float64()
		if err != nil {
			badRequest(w, "amount must be a positive number")
			return
		}
		amount = f
	}

	h.logger.Debug("Donation submitted",
		zap.String("identifier", identifier),
		zap.String("donor", body.DonorAddress),
		zap.String("tx_digest", body.TxDigest))

	result, err := h.donations.RecordDonation(r.Context(), identifier, models.DonationRequest{
		DonorAddress: body.DonorAddress,
		Amount:       amount,
		TxDigest:     body.TxDigest,
	})
	if err != nil {
		writeError(w, h.logger, r, err)
		return
	}

	message := "Failed or not indexed"
	if result.Verified {
		message = "Success"
	}
	writeJSON(w, http.StatusOK, DonateResponse{Message: message, Verified: result.Verified, Campaign: result.Campaign})
}
