package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Donation statuses shared by embedded donations and transaction records.
// StatusPending is part of the stored schema but the verifier resolves every
// attempt synchronously, so it is never written.
const (
	StatusSuccess = "success"
	StatusFailed  = "failed"
	StatusPending = "pending"
)

// Campaign represents a campaign document in the campaigns collection
type Campaign struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Code           string             `bson:"campaign_id" json:"campaign_id"`
	Title          string             `bson:"title" json:"title"`
	Description    string             `bson:"description" json:"description"`
	EndDate        string             `bson:"endDate" json:"endDate"`
	ImageURL       string             `bson:"imageUrl" json:"imageUrl"`
	DonationLimit  DonationLimit      `bson:"donationLimit" json:"donationLimit"`
	UserAddress    string             `bson:"userAddress" json:"userAddress"`
	Donations      []Donation         `bson:"donations" json:"donations"`
	TotalDonations float64            `bson:"totalDonations" json:"totalDonations"`
	CreatedAt      time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// Donation is one donation attempt embedded in a campaign. Append-only.
type Donation struct {
	DonorAddress string                 `bson:"donorAddress" json:"donorAddress"`
	Amount       float64                `bson:"amount" json:"amount"`
	TxDigest     string                 `bson:"txDigest" json:"txDigest"`
	Status       string                 `bson:"status" json:"status"`
	GasUsed      map[string]interface{} `bson:"gasUsed,omitempty" json:"gasUsed,omitempty"`
	Error        string                 `bson:"error,omitempty" json:"error,omitempty"`
	Timestamp    time.Time              `bson:"timestamp" json:"timestamp"`
}

// CampaignInput is the body accepted when creating a campaign
type CampaignInput struct {
	Title         string        `json:"title"`
	Description   string        `json:"description"`
	EndDate       string        `json:"endDate"`
	ImageURL      string        `json:"imageUrl"`
	DonationLimit DonationLimit `json:"donationLimit"`
	UserAddress   string        `json:"userAddress"`
}

// CampaignUpdate holds the editable fields of a campaign. Nil fields are left
// untouched. Totals and donations are deliberately absent.
type CampaignUpdate struct {
	Title         *string        `json:"title,omitempty"`
	Description   *string        `json:"description,omitempty"`
	EndDate       *string        `json:"endDate,omitempty"`
	ImageURL      *string        `json:"imageUrl,omitempty"`
	DonationLimit *DonationLimit `json:"donationLimit,omitempty"`
	UserAddress   *string        `json:"userAddress,omitempty"`
}

// Empty reports whether the update carries no field at all.
func (u CampaignUpdate) Empty() bool {
	return u.Title == nil && u.Description == nil && u.EndDate == nil &&
		u.ImageURL == nil && u.DonationLimit == nil && u.UserAddress == nil
}
