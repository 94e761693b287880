package services

import (
	"fmt"
)

// ValidationError reports malformed caller input. Nothing has been read or
// written when it is returned.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func invalid(format string, args ...interface{}) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// NotFoundError reports that no campaign matched the identifier.
type NotFoundError struct {
	Identifier string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("campaign %s not found", e.Identifier)
}

// DuplicateDigestError reports a digest that has already been credited or is
// being verified by another request.
type DuplicateDigestError struct {
	Digest   string
	InFlight bool
}

func (e *DuplicateDigestError) Error() string {
	if e.InFlight {
		return fmt.Sprintf("transaction %s is already being verified", e.Digest)
	}
	return fmt.Sprintf("transaction %s has already been recorded", e.Digest)
}

// LedgerUnavailableError wraps a failed or empty ledger lookup. The donation
// flow turns it into a rejection rather than returning it.
type LedgerUnavailableError struct {
	Digest string
	Err    error
}

func (e *LedgerUnavailableError) Error() string {
	return fmt.Sprintf("ledger lookup for %s failed: %v", e.Digest, e.Err)
}

func (e *LedgerUnavailableError) Unwrap() error { return e.Err }

// PersistenceError wraps a storage failure.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("failed to %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

// ConsistencyFaultError means the campaign was updated but its transaction
// record could not be written. Operators have to reconcile the two by hand.
type ConsistencyFaultError struct {
	CampaignID string
	Digest     string
	Status     string
	Err        error
}

func (e *ConsistencyFaultError) Error() string {
	return fmt.Sprintf("campaign %s recorded %s donation %s without a transaction record: %v",
		e.CampaignID, e.Status, e.Digest, e.Err)
}

func (e *ConsistencyFaultError) Unwrap() error { return e.Err }

// IdGenerationError is returned when no free campaign code was found.
type IdGenerationError struct {
	Attempts int
}

func (e *IdGenerationError) Error() string {
	return fmt.Sprintf("could not generate a unique campaign id after %d attempts", e.Attempts)
}
