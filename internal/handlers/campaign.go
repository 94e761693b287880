package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/suifund/crowdfunding-gobackend/internal/models"
	"go.uber.org/zap"
)

//go:generate mockgen -source=campaign.go -destination=campaign_mock.go -package=handlers

// CampaignManager is the campaign service as seen by the HTTP layer.
type CampaignManager interface {
	Create(ctx context.Context, in models.CampaignInput) (*models.Campaign, error)
	Get(ctx context.Context, identifier string) (*models.Campaign, error)
	Search(ctx context.Context, query string) ([]models.Campaign, error)
	ListByOwner(ctx context.Context, address string) ([]models.Campaign, error)
	Update(ctx context.Context, identifier string, upd models.CampaignUpdate) (*models.Campaign, error)
	Delete(ctx context.Context, identifier string) (*models.Campaign, error)
}

// CampaignHandler handles HTTP requests for campaigns
type CampaignHandler struct {
	campaigns CampaignManager
	logger    *zap.Logger
}

// NewCampaignHandler creates a new CampaignHandler
func NewCampaignHandler(campaigns CampaignManager, logger *zap.Logger) *CampaignHandler {
	return &CampaignHandler{campaigns: campaigns, logger: logger}
}

// DeleteResponse is returned after a campaign has been removed
type DeleteResponse struct {
	Message    string `json:"message"`
	CampaignID string `json:"campaign_id"`
}

// HomeCampaigns handles GET /api/home_campaigns?search=
func (h *CampaignHandler) HomeCampaigns(w http.ResponseWriter, r *http.Request) {
	campaigns, err := h.campaigns.Search(r.Context(), r.URL.Query().Get("search"))
	if err != nil {
		writeError(w, h.logger, r, err)
		return
	}
	writeJSON(w, http.StatusOK, campaigns)
}

// CampaignsByUser handles GET /api/campaigns/user/{address}
func (h *CampaignHandler) CampaignsByUser(w http.ResponseWriter, r *http.Request) {
	campaigns, err := h.campaigns.ListByOwner(r.Context(), mux.Vars(r)["address"])
	if err != nil {
		writeError(w, h.logger, r, err)
		return
	}
	writeJSON(w, http.StatusOK, campaigns)
}

// GetCampaign handles GET /api/campaigns/{identifier}
func (h *CampaignHandler) GetCampaign(w http.ResponseWriter, r *http.Request) {
	campaign, err := h.campaigns.Get(r.Context(), mux.Vars(r)["identifier"])
	if err != nil {
		writeError(w, h.logger, r, err)
		return
	}
	writeJSON(w, http.StatusOK, campaign)
}

// CreateCampaign handles POST /api/campaigns
func (h *CampaignHandler) CreateCampaign(w http.ResponseWriter, r *http.Request) {
	var in models.CampaignInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		badRequest(w, "Invalid request body")
		return
	}

	campaign, err := h.campaigns.Create(r.Context(), in)
	if err != nil {
		writeError(w, h.logger, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, campaign)
}

// UpdateCampaign handles PUT /api/campaigns/{identifier}
func (h *CampaignHandler) UpdateCampaign(w http.ResponseWriter, r *http.Request) {
	var upd models.CampaignUpdate
	if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
		badRequest(w, "Invalid request body")
		return
	}

	campaign, err := h.campaigns.Update(r.Context(), mux.Vars(r)["identifier"], upd)
	if err != nil {
		writeError(w, h.logger, r, err)
		return
	}
	writeJSON(w, http.StatusOK, campaign)
}

// DeleteCampaign handles DELETE /api/campaigns/{identifier}
func (h *CampaignHandler) DeleteCampaign(w http.ResponseWriter, r *http.Request) {
	campaign, err := h.campaigns.Delete(r.Context(), mux.Vars(r)["identifier"])
	if err != nil {
		writeError(w, h.logger, r, err)
		return
	}
	writeJSON(w, http.StatusOK, DeleteResponse{Message: "Campaign deleted", CampaignID: campaign.Code})
}
