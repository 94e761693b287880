package store

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/suifund/crowdfunding-gobackend/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type CampaignStore struct {
	collection *mongo.Collection
	timeout    time.Duration
}

func NewCampaignStore(db *mongo.Database) *CampaignStore {
	return &CampaignStore{collection: db.Collection(CampaignsCollection), timeout: OpTimeout}
}

// EnsureIndexes creates the indexes the campaign queries rely on
func (s *CampaignStore) EnsureIndexes(ctx context.Context) error {
	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "campaign_id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "userAddress", Value: 1}, {Key: "createdAt", Value: -1}}},
		{Keys: bson.D{{Key: "createdAt", Value: -1}}},
	}
	if _, err := s.collection.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create campaign indexes: %w", err)
	}
	return nil
}

func refFilter(ref models.CampaignRef) bson.M {
	if ref.Kind == models.RefByObjectID {
		return bson.M{"_id": ref.ObjectID}
	}
	return bson.M{"campaign_id": ref.Code}
}

// Insert stores a new campaign, assigning its id. A code collision on the
// unique index surfaces as ErrDuplicate.
func (s *CampaignStore) Insert(ctx context.Context, campaign *models.Campaign) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	campaign.ID = primitive.NewObjectID()
	// $push needs an array, a nil slice would be stored as null
	if campaign.Donations == nil {
		campaign.Donations = []models.Donation{}
	}
	if _, err := s.collection.InsertOne(ctx, campaign); err != nil {
		campaign.ID = primitive.NilObjectID
		return fmt.Errorf("failed to insert campaign: %w", translate(err))
	}
	return nil
}

func (s *CampaignStore) CodeExists(ctx context.Context, code string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	n, err := s.collection.CountDocuments(ctx, bson.M{"campaign_id": code}, options.Count().SetLimit(1))
	if err != nil {
		return false, fmt.Errorf("failed to check campaign id %s: %w", code, err)
	}
	return n > 0, nil
}

func (s *CampaignStore) FindByRef(ctx context.Context, ref models.CampaignRef) (*models.Campaign, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	var campaign models.Campaign
	if err := s.collection.FindOne(ctx, refFilter(ref)).Decode(&campaign); err != nil {
		return nil, translate(err)
	}
	return &campaign, nil
}

// List returns the newest campaigns whose title, owner address or code
// contains search (case-insensitive). An empty search matches everything.
func (s *CampaignStore) List(ctx context.Context, search string, limit int64) ([]models.Campaign, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	filter := bson.M{}
	if search = strings.TrimSpace(search); search != "" {
		pattern := primitive.Regex{Pattern: regexp.QuoteMeta(search), Options: "i"}
		filter = bson.M{"$or": bson.A{
			bson.M{"title": pattern},
			bson.M{"userAddress": pattern},
			bson.M{"campaign_id": pattern},
		}}
	}

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	if limit > 0 {
		opts.SetLimit(limit)
	}
	return s.find(ctx, filter, opts)
}

func (s *CampaignStore) ListByOwner(ctx context.Context, address string) ([]models.Campaign, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	return s.find(ctx, bson.M{"userAddress": address}, opts)
}

func (s *CampaignStore) find(ctx context.Context, filter interface{}, opts *options.FindOptions) ([]models.Campaign, error) {
	cur, err := s.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch campaigns: %w", err)
	}
	defer cur.Close(ctx)

	campaigns := make([]models.Campaign, 0)
	if err := cur.All(ctx, &campaigns); err != nil {
		return nil, fmt.Errorf("failed to decode campaigns: %w", err)
	}
	return campaigns, nil
}

// Update applies the non-nil fields of upd and returns the updated campaign.
func (s *CampaignStore) Update(ctx context.Context, ref models.CampaignRef, upd models.CampaignUpdate) (*models.Campaign, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	set := bson.M{"updatedAt": time.Now().UTC()}
	if upd.Title != nil {
		set["title"] = *upd.Title
	}
	if upd.Description != nil {
		set["description"] = *upd.Description
	}
	if upd.EndDate != nil {
		set["endDate"] = *upd.EndDate
	}
	if upd.ImageURL != nil {
		set["imageUrl"] = *upd.ImageURL
	}
	if upd.DonationLimit != nil {
		set["donationLimit"] = float64(*upd.DonationLimit)
	}
	if upd.UserAddress != nil {
		set["userAddress"] = *upd.UserAddress
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var campaign models.Campaign
	if err := s.collection.FindOneAndUpdate(ctx, refFilter(ref), bson.M{"$set": set}, opts).Decode(&campaign); err != nil {
		return nil, translate(err)
	}
	return &campaign, nil
}

// Delete removes the campaign and returns the document as it was.
func (s *CampaignStore) Delete(ctx context.Context, ref models.CampaignRef) (*models.Campaign, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	var campaign models.Campaign
	if err := s.collection.FindOneAndDelete(ctx, refFilter(ref)).Decode(&campaign); err != nil {
		return nil, translate(err)
	}
	return &campaign, nil
}

// AppendDonation pushes donation onto the campaign in a single atomic update.
// When credit is set the running total is incremented in the same update, so
// concurrent donors never lose an increment.
func (s *CampaignStore) AppendDonation(ctx context.Context, id primitive.ObjectID, donation models.Donation, credit bool) (*models.Campaign, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	update := bson.M{
		"$push": bson.M{"donations": donation},
		"$set":  bson.M{"updatedAt": time.Now().UTC()},
	}
	if credit {
		update["$inc"] = bson.M{"totalDonations": donation.Amount}
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var campaign models.Campaign
	if err := s.collection.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&campaign); err != nil {
		return nil, translate(err)
	}
	return &campaign, nil
}
