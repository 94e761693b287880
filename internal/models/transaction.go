package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Transaction is the global ledger entry mirroring one donation attempt
type Transaction struct {
	ID             primitive.ObjectID     `bson:"_id,omitempty" json:"_id"`
	ContributionID string                 `bson:"contributionId" json:"contributionId"`
	UserAddress    string                 `bson:"userAddress" json:"userAddress"`
	CampaignID     primitive.ObjectID     `bson:"campaignId" json:"campaignId"`
	CampaignTitle  string                 `bson:"campaignTitle" json:"campaignTitle"`
	Amount         float64                `bson:"amount" json:"amount"`
	TxDigest       string                 `bson:"txDigest" json:"txDigest"`
	Status         string                 `bson:"status" json:"status"` // success, failed
	GasUsed        map[string]interface{} `bson:"gasUsed,omitempty" json:"gasUsed,omitempty"`
	Error          string                 `bson:"error,omitempty" json:"error,omitempty"`
	Date           time.Time              `bson:"date" json:"date"`
	CreatedAt      time.Time              `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time              `bson:"updatedAt" json:"updatedAt"`
}

// CampaignSummary is the subset of campaign fields joined into transaction listings
type CampaignSummary struct {
	ID       primitive.ObjectID `bson:"_id" json:"_id"`
	Code     string             `bson:"campaign_id" json:"campaign_id"`
	Title    string             `bson:"title" json:"title"`
	ImageURL string             `bson:"imageUrl" json:"imageUrl"`
}

// TransactionView is a transaction with its campaign joined in place of the
// campaign reference. Campaign is nil when the campaign has been deleted.
type TransactionView struct {
	ID             primitive.ObjectID     `bson:"_id" json:"_id"`
	ContributionID string                 `bson:"contributionId" json:"contributionId"`
	UserAddress    string                 `bson:"userAddress" json:"userAddress"`
	Campaign       *CampaignSummary       `bson:"campaign" json:"campaignId"`
	CampaignTitle  string                 `bson:"campaignTitle" json:"campaignTitle"`
	Amount         float64                `bson:"amount" json:"amount"`
	TxDigest       string                 `bson:"txDigest" json:"txDigest"`
	Status         string                 `bson:"status" json:"status"`
	GasUsed        map[string]interface{} `bson:"gasUsed,omitempty" json:"gasUsed,omitempty"`
	Error          string                 `bson:"error,omitempty" json:"error,omitempty"`
	Date           time.Time              `bson:"date" json:"date"`
	CreatedAt      time.Time              `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time              `bson:"updatedAt" json:"updatedAt"`
}

// DonationRequest is a donor's claim that a chain transaction funded a campaign
type DonationRequest struct {
	DonorAddress string
	Amount       float64
	TxDigest     string
}
