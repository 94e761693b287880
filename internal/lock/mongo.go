package lock

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// ClaimsCollection holds one document per digest currently being verified.
const ClaimsCollection = "digest_claims"

type digestClaim struct {
	Digest    string    `bson:"_id"`
	Token     string    `bson:"token"`
	ExpiresAt time.Time `bson:"expiresAt"`
}

// MongoDigestGuard claims digests by inserting into a collection keyed by
// digest. It is used when Redis is not configured.
type MongoDigestGuard struct {
	collection *mongo.Collection
	ttl        time.Duration
	logger     *zap.Logger
}

func NewMongoDigestGuard(db *mongo.Database, ttl time.Duration, logger *zap.Logger) *MongoDigestGuard {
	return &MongoDigestGuard{collection: db.Collection(ClaimsCollection), ttl: ttl, logger: logger}
}

// EnsureIndexes lets the server purge claims whose holder crashed.
func (g *MongoDigestGuard) EnsureIndexes(ctx context.Context) error {
	model := mongo.IndexModel{
		Keys:    bson.D{{Key: "expiresAt", Value: 1}},
		Options: options.Index().SetExpireAfterSeconds(0),
	}
	if _, err := g.collection.Indexes().CreateOne(ctx, model); err != nil {
		return fmt.Errorf("failed to create digest claim index: %w", err)
	}
	return nil
}

// Acquire claims digest. acquired is false when another request holds an
// unexpired claim. The returned release func is always safe to call.
func (g *MongoDigestGuard) Acquire(ctx context.Context, digest string) (release func(), acquired bool, err error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	now := time.Now().UTC()
	// the TTL monitor only runs once a minute
	if _, err := g.collection.DeleteOne(ctx, bson.M{"_id": digest, "expiresAt": bson.M{"$lte": now}}); err != nil {
		return func() {}, false, fmt.Errorf("failed to clear expired claim on %s: %w", digest, err)
	}

	claim := digestClaim{Digest: digest, Token: uuid.NewString(), ExpiresAt: now.Add(g.ttl)}
	if _, err := g.collection.InsertOne(ctx, claim); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return func() {}, false, nil
		}
		return func() {}, false, fmt.Errorf("failed to claim digest %s: %w", digest, err)
	}

	release = func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if _, err := g.collection.DeleteOne(ctx, bson.M{"_id": digest, "token": claim.Token}); err != nil {
			g.logger.Warn("failed to release digest claim", zap.String("digest", digest), zap.Error(err))
		}
	}
	return release, true, nil
}
