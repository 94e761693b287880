// Package store holds the MongoDB repositories for campaigns and transactions.
package store

import (
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
)

var (
	// ErrNotFound is returned when no document matches the lookup.
	ErrNotFound = errors.New("document not found")
	// ErrDuplicate is returned when a write violates a unique index.
	ErrDuplicate = errors.New("duplicate key")
)

const (
	CampaignsCollection    = "campaigns"
	TransactionsCollection = "transactions"
)

// OpTimeout bounds every single-document read or write.
const OpTimeout = 5 * time.Second

func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, mongo.ErrNoDocuments):
		return ErrNotFound
	case mongo.IsDuplicateKeyError(err):
		return errors.Join(ErrDuplicate, err)
	default:
		return err
	}
}
