package services

import (
	"context"
	"errors"
	"math"
	"strings"
	"sync"
	"time"

	"github.com/suifund/crowdfunding-gobackend/internal/ledger"
	"github.com/suifund/crowdfunding-gobackend/internal/models"
	"github.com/suifund/crowdfunding-gobackend/internal/store"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

//go:generate mockgen -source=donation.go -destination=donation_mock.go -package=services

const (
	// errNotOnChain is recorded when the ledger could not produce effects
	errNotOnChain = "Not found on-chain"
	// errExecutionFailed is recorded when the ledger reports failure without a reason
	errExecutionFailed = "Failed"
)

// DonationCampaigns is the campaign storage the donation flow writes through.
type DonationCampaigns interface {
	FindByRef(ctx context.Context, ref models.CampaignRef) (*models.Campaign, error)
	AppendDonation(ctx context.Context, id primitive.ObjectID, donation models.Donation, credit bool) (*models.Campaign, error)
}

// DonationTransactions is the transaction ledger storage.
type DonationTransactions interface {
	Insert(ctx context.Context, txn *models.Transaction) error
	HasSuccessfulDigest(ctx context.Context, digest string) (bool, error)
}

// ChainReader looks up transaction effects on the chain.
type ChainReader interface {
	GetTransactionBlock(ctx context.Context, digest string) (*ledger.TransactionBlock, error)
}

// DonationPublisher announces recorded donation attempts.
type DonationPublisher interface {
	PublishDonation(ctx context.Context, txn *models.Transaction) error
}

// DigestGuard keeps a digest from being verified by two requests at once.
type DigestGuard interface {
	Acquire(ctx context.Context, digest string) (release func(), acquired bool, err error)
}

// DonationResult is the outcome of one donation attempt.
type DonationResult struct {
	Verified    bool
	Campaign    *models.Campaign
	Transaction *models.Transaction
}

type DonationService struct {
	campaigns    DonationCampaigns
	transactions DonationTransactions
	chain        ChainReader
	publisher    DonationPublisher
	guard        DigestGuard
	logger       *zap.Logger
}

func NewDonationService(
	campaigns DonationCampaigns,
	transactions DonationTransactions,
	chain ChainReader,
	publisher DonationPublisher,
	guard DigestGuard,
	logger *zap.Logger,
) *DonationService {
	return &DonationService{
		campaigns:    campaigns,
		transactions: transactions,
		chain:        chain,
		publisher:    publisher,
		guard:        guard,
		logger:       logger,
	}
}

// verdict is what the chain said about a digest.
type verdict struct {
	verified bool
	gasUsed  map[string]interface{}
	reason   string
}

// RecordDonation verifies req.TxDigest against the chain and records the
// attempt on the campaign and in the transaction ledger. Verified donations
// credit the campaign total; rejected ones are recorded with their reason and
// leave the total untouched.
func (s *DonationService) RecordDonation(ctx context.Context, identifier string, req models.DonationRequest) (*DonationResult, error) {
	req.DonorAddress = strings.TrimSpace(req.DonorAddress)
	req.TxDigest = strings.TrimSpace(req.TxDigest)
	if req.DonorAddress == "" {
		return nil, invalid("donorAddress is required")
	}
	if math.IsNaN(req.Amount) || math.IsInf(req.Amount, 0) || req.Amount <= 0 {
		return nil, invalid("amount must be a positive number")
	}
	if req.TxDigest == "" {
		return nil, invalid("txDigest is required")
	}

	ref, err := parseRef(identifier)
	if err != nil {
		return nil, err
	}

	campaign, err := s.campaigns.FindByRef(ctx, ref)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, &NotFoundError{Identifier: identifier}
		}
		s.logger.Error("Failed to fetch campaign", zap.String("identifier", identifier), zap.Error(err))
		return nil, &PersistenceError{Op: "fetch campaign", Err: err}
	}

	// claim before the credited check so a request that finishes in between
	// is always seen
	release, acquired, err := s.guard.Acquire(ctx, req.TxDigest)
	if err != nil {
		s.logger.Error("Failed to claim digest", zap.String("tx_digest", req.TxDigest), zap.Error(err))
		return nil, &PersistenceError{Op: "claim transaction digest", Err: err}
	}
	if !acquired {
		return nil, &DuplicateDigestError{Digest: req.TxDigest, InFlight: true}
	}
	var once sync.Once
	unlock := func() { once.Do(release) }
	defer unlock()

	credited, err := s.transactions.HasSuccessfulDigest(ctx, req.TxDigest)
	if err != nil {
		s.logger.Error("Failed to look up digest", zap.String("tx_digest", req.TxDigest), zap.Error(err))
		return nil, &PersistenceError{Op: "look up transaction digest", Err: err}
	}
	if credited {
		return nil, &DuplicateDigestError{Digest: req.TxDigest}
	}

	v := s.verify(ctx, req.TxDigest)

	donation := models.Donation{
		DonorAddress: req.DonorAddress,
		Amount:       req.Amount,
		TxDigest:     req.TxDigest,
		Status:       models.StatusFailed,
		Timestamp:    time.Now().UTC(),
	}
	if v.verified {
		donation.Status = models.StatusSuccess
		donation.GasUsed = v.gasUsed
	} else {
		donation.Error = v.reason
	}

	updated, err := s.campaigns.AppendDonation(ctx, campaign.ID, donation, v.verified)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			// deleted between lookup and write
			return nil, &NotFoundError{Identifier: identifier}
		}
		s.logger.Error("Failed to record donation on campaign",
			zap.String("campaign", campaign.ID.Hex()),
			zap.String("tx_digest", req.TxDigest),
			zap.Error(err))
		return nil, &PersistenceError{Op: "record donation", Err: err}
	}

	txn := &models.Transaction{
		UserAddress:   req.DonorAddress,
		CampaignID:    updated.ID,
		CampaignTitle: updated.Title,
		Amount:        req.Amount,
		TxDigest:      req.TxDigest,
		Status:        donation.Status,
		GasUsed:       donation.GasUsed,
		Error:         donation.Error,
		Date:          donation.Timestamp,
	}
	if err := s.transactions.Insert(ctx, txn); err != nil {
		s.logger.Error("Campaign updated but transaction record failed",
			zap.String("campaign", updated.ID.Hex()),
			zap.String("campaign_id", updated.Code),
			zap.String("tx_digest", req.TxDigest),
			zap.String("status", donation.Status),
			zap.Error(err))
		return nil, &ConsistencyFaultError{
			CampaignID: updated.Code,
			Digest:     req.TxDigest,
			Status:     donation.Status,
			Err:        err,
		}
	}

	// both records exist, the claim is no longer needed
	unlock()

	if err := s.publisher.PublishDonation(ctx, txn); err != nil {
		s.logger.Warn("Failed to publish donation", zap.String("tx_digest", req.TxDigest), zap.Error(err))
	}

	s.logger.Info("Donation recorded",
		zap.String("campaign_id", updated.Code),
		zap.String("tx_digest", req.TxDigest),
		zap.Bool("verified", v.verified),
		zap.Float64("amount", req.Amount))

	return &DonationResult{Verified: v.verified, Campaign: updated, Transaction: txn}, nil
}

// verify makes exactly one ledger call. Lookup failures never escape; they
// turn into a rejection.
func (s *DonationService) verify(ctx context.Context, digest string) verdict {
	block, err := s.chain.GetTransactionBlock(ctx, digest)
	if err == nil && (block == nil || block.Effects == nil) {
		err = ledger.ErrMissingEffects
	}
	if err != nil {
		lerr := &LedgerUnavailableError{Digest: digest, Err: err}
		s.logger.Warn("Ledger lookup failed", zap.String("tx_digest", digest), zap.Error(lerr))
		return verdict{reason: errNotOnChain}
	}

	if block.Succeeded() {
		return verdict{verified: true, gasUsed: block.Effects.GasUsed}
	}

	reason := block.Effects.Status.Error
	if reason == "" {
		reason = errExecutionFailed
	}
	s.logger.Info("Transaction failed on-chain",
		zap.String("tx_digest", digest),
		zap.String("status", block.Effects.Status.Status),
		zap.String("reason", reason))
	return verdict{reason: reason}
}
