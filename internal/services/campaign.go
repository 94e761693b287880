package services

import (
	"context"
	"errors"
	"math"
	"math/rand"
	"strings"
	"time"

	"github.com/suifund/crowdfunding-gobackend/internal/models"
	"github.com/suifund/crowdfunding-gobackend/internal/store"
	"go.uber.org/zap"
)

//go:generate mockgen -source=campaign.go -destination=campaign_mock.go -package=services

const (
	maxCodeAttempts = 10
	searchLimit     = 10
	codeAlphabet    = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	codeLength      = 6
)

// CampaignRepository is the campaign storage the CRUD surface needs.
type CampaignRepository interface {
	Insert(ctx context.Context, campaign *models.Campaign) error
	CodeExists(ctx context.Context, code string) (bool, error)
	FindByRef(ctx context.Context, ref models.CampaignRef) (*models.Campaign, error)
	List(ctx context.Context, search string, limit int64) ([]models.Campaign, error)
	ListByOwner(ctx context.Context, address string) ([]models.Campaign, error)
	Update(ctx context.Context, ref models.CampaignRef, upd models.CampaignUpdate) (*models.Campaign, error)
	Delete(ctx context.Context, ref models.CampaignRef) (*models.Campaign, error)
}

type CampaignService struct {
	campaigns CampaignRepository
	logger    *zap.Logger
	newCode   func() string
}

func NewCampaignService(campaigns CampaignRepository, logger *zap.Logger) *CampaignService {
	return &CampaignService{campaigns: campaigns, logger: logger, newCode: generateCampaignCode}
}

func generateCampaignCode() string {
	b := make([]byte, codeLength)
	for i := range b {
		b[i] = codeAlphabet[rand.Intn(len(codeAlphabet))]
	}
	return models.CampaignCodePrefix + string(b)
}

// Create validates input and stores a new campaign under a fresh code.
// A code that collides, either on the existence check or on the unique
// index during insert, is regenerated.
func (s *CampaignService) Create(ctx context.Context, in models.CampaignInput) (*models.Campaign, error) {
	in.Title = strings.TrimSpace(in.Title)
	in.UserAddress = strings.TrimSpace(in.UserAddress)
	in.EndDate = strings.TrimSpace(in.EndDate)

	if in.Title == "" {
		return nil, invalid("title is required")
	}
	if in.UserAddress == "" {
		return nil, invalid("userAddress is required")
	}
	if err := validateLimit(in.DonationLimit); err != nil {
		return nil, err
	}
	if err := validateEndDate(in.EndDate); err != nil {
		return nil, err
	}

	for attempt := 1; attempt <= maxCodeAttempts; attempt++ {
		code := s.newCode()
		exists, err := s.campaigns.CodeExists(ctx, code)
		if err != nil {
			s.logger.Error("Failed to check campaign id", zap.String("campaign_id", code), zap.Error(err))
			return nil, &PersistenceError{Op: "check campaign id", Err: err}
		}
		if exists {
			s.logger.Debug("Campaign id taken, retrying", zap.String("campaign_id", code), zap.Int("attempt", attempt))
			continue
		}

		now := time.Now().UTC()
		campaign := &models.Campaign{
			Code:          code,
			Title:         in.Title,
			Description:   in.Description,
			EndDate:       in.EndDate,
			ImageURL:      in.ImageURL,
			DonationLimit: in.DonationLimit,
			UserAddress:   in.UserAddress,
			Donations:     []models.Donation{},
			CreatedAt:     now,
			UpdatedAt:     now,
		}
		if err := s.campaigns.Insert(ctx, campaign); err != nil {
			if errors.Is(err, store.ErrDuplicate) {
				s.logger.Debug("Campaign id claimed concurrently, retrying", zap.String("campaign_id", code))
				continue
			}
			s.logger.Error("Failed to create campaign", zap.Error(err))
			return nil, &PersistenceError{Op: "create campaign", Err: err}
		}

		s.logger.Info("Campaign created", zap.String("campaign_id", code), zap.String("owner", in.UserAddress))
		return campaign, nil
	}

	s.logger.Error("Exhausted campaign id attempts", zap.Int("attempts", maxCodeAttempts))
	return nil, &IdGenerationError{Attempts: maxCodeAttempts}
}

func (s *CampaignService) Get(ctx context.Context, identifier string) (*models.Campaign, error) {
	ref, err := parseRef(identifier)
	if err != nil {
		return nil, err
	}
	campaign, err := s.campaigns.FindByRef(ctx, ref)
	if err != nil {
		return nil, s.lookupError(identifier, "fetch campaign", err)
	}
	return campaign, nil
}

// Search returns at most ten campaigns, newest first.
func (s *CampaignService) Search(ctx context.Context, query string) ([]models.Campaign, error) {
	campaigns, err := s.campaigns.List(ctx, query, searchLimit)
	if err != nil {
		s.logger.Error("Failed to search campaigns", zap.String("search", query), zap.Error(err))
		return nil, &PersistenceError{Op: "search campaigns", Err: err}
	}
	return campaigns, nil
}

func (s *CampaignService) ListByOwner(ctx context.Context, address string) ([]models.Campaign, error) {
	campaigns, err := s.campaigns.ListByOwner(ctx, address)
	if err != nil {
		s.logger.Error("Failed to fetch user campaigns", zap.String("address", address), zap.Error(err))
		return nil, &PersistenceError{Op: "fetch user campaigns", Err: err}
	}
	return campaigns, nil
}

// Update applies a partial edit. Totals and donations cannot be edited.
func (s *CampaignService) Update(ctx context.Context, identifier string, upd models.CampaignUpdate) (*models.Campaign, error) {
	ref, err := parseRef(identifier)
	if err != nil {
		return nil, err
	}
	if upd.Empty() {
		return nil, invalid("no updatable fields provided")
	}
	if upd.Title != nil {
		title := strings.TrimSpace(*upd.Title)
		if title == "" {
			return nil, invalid("title cannot be empty")
		}
		upd.Title = &title
	}
	if upd.UserAddress != nil {
		address := strings.TrimSpace(*upd.UserAddress)
		if address == "" {
			return nil, invalid("userAddress cannot be empty")
		}
		upd.UserAddress = &address
	}
	if upd.DonationLimit != nil {
		if err := validateLimit(*upd.DonationLimit); err != nil {
			return nil, err
		}
	}
	if upd.EndDate != nil {
		endDate := strings.TrimSpace(*upd.EndDate)
		if err := validateEndDate(endDate); err != nil {
			return nil, err
		}
		upd.EndDate = &endDate
	}

	campaign, err := s.campaigns.Update(ctx, ref, upd)
	if err != nil {
		return nil, s.lookupError(identifier, "update campaign", err)
	}
	return campaign, nil
}

// Delete removes the campaign and returns it as it was before deletion.
func (s *CampaignService) Delete(ctx context.Context, identifier string) (*models.Campaign, error) {
	ref, err := parseRef(identifier)
	if err != nil {
		return nil, err
	}
	campaign, err := s.campaigns.Delete(ctx, ref)
	if err != nil {
		return nil, s.lookupError(identifier, "delete campaign", err)
	}
	s.logger.Info("Campaign deleted", zap.String("campaign_id", campaign.Code))
	return campaign, nil
}

func (s *CampaignService) lookupError(identifier, op string, err error) error {
	if errors.Is(err, store.ErrNotFound) {
		return &NotFoundError{Identifier: identifier}
	}
	s.logger.Error("Failed to "+op, zap.String("identifier", identifier), zap.Error(err))
	return &PersistenceError{Op: op, Err: err}
}

func parseRef(identifier string) (models.CampaignRef, error) {
	ref, err := models.ParseCampaignRef(identifier)
	if err != nil {
		return models.CampaignRef{}, invalid("Invalid ID")
	}
	return ref, nil
}

func validateLimit(l models.DonationLimit) error {
	limit := float64(l)
	if math.IsNaN(limit) || math.IsInf(limit, 0) || limit < 0 {
		return invalid("donationLimit must be a non-negative number")
	}
	return nil
}

func validateEndDate(endDate string) error {
	if endDate == "" {
		return nil
	}
	if _, err := time.Parse(time.DateOnly, endDate); err == nil {
		return nil
	}
	if _, err := time.Parse(time.RFC3339, endDate); err == nil {
		return nil
	}
	return invalid("endDate must be YYYY-MM-DD or RFC3339")
}
