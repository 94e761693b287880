package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/suifund/crowdfunding-gobackend/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type TransactionStore struct {
	collection *mongo.Collection
	timeout    time.Duration
}

func NewTransactionStore(db *mongo.Database) *TransactionStore {
	return &TransactionStore{collection: db.Collection(TransactionsCollection), timeout: OpTimeout}
}

// EnsureIndexes creates the per-user listing index and the partial unique
// index that allows at most one successful record per digest.
func (s *TransactionStore) EnsureIndexes(ctx context.Context) error {
	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "userAddress", Value: 1}, {Key: "createdAt", Value: -1}}},
		{
			Keys: bson.D{{Key: "txDigest", Value: 1}},
			Options: options.Index().
				SetName("txDigest_success_unique").
				SetUnique(true).
				SetPartialFilterExpression(bson.M{"status": models.StatusSuccess}),
		},
	}
	if _, err := s.collection.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create transaction indexes: %w", err)
	}
	return nil
}

func (s *TransactionStore) Insert(ctx context.Context, txn *models.Transaction) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	now := time.Now().UTC()
	txn.ID = primitive.NewObjectID()
	if txn.ContributionID == "" {
		txn.ContributionID = uuid.NewString()
	}
	if txn.Date.IsZero() {
		txn.Date = now
	}
	txn.CreatedAt = now
	txn.UpdatedAt = now

	if _, err := s.collection.InsertOne(ctx, txn); err != nil {
		txn.ID = primitive.NilObjectID
		return fmt.Errorf("failed to insert transaction %s: %w", txn.TxDigest, translate(err))
	}
	return nil
}

// HasSuccessfulDigest reports whether digest has already been credited.
func (s *TransactionStore) HasSuccessfulDigest(ctx context.Context, digest string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	filter := bson.M{"txDigest": digest, "status": models.StatusSuccess}
	n, err := s.collection.CountDocuments(ctx, filter, options.Count().SetLimit(1))
	if err != nil {
		return false, fmt.Errorf("failed to look up digest %s: %w", digest, err)
	}
	return n > 0, nil
}

// ListByUser returns the donor's transactions, newest first, with the owning
// campaign's title, image and code joined in.
func (s *TransactionStore) ListByUser(ctx context.Context, address string) ([]models.TransactionView, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"userAddress": address}}},
		{{Key: "$sort", Value: bson.D{{Key: "createdAt", Value: -1}}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         CampaignsCollection,
			"localField":   "campaignId",
			"foreignField": "_id",
			"as":           "campaign",
			"pipeline": bson.A{
				bson.M{"$project": bson.M{"title": 1, "imageUrl": 1, "campaign_id": 1}},
			},
		}}},
		{{Key: "$unwind", Value: bson.M{"path": "$campaign", "preserveNullAndEmptyArrays": true}}},
	}

	cur, err := s.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch transactions for %s: %w", address, err)
	}
	defer cur.Close(ctx)

	views := make([]models.TransactionView, 0)
	if err := cur.All(ctx, &views); err != nil {
		return nil, fmt.Errorf("failed to decode transactions: %w", err)
	}
	return views, nil
}
