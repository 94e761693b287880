// Package ledger reads transaction effects from a blockchain full node.
package ledger

import "errors"

// ExecutionSuccess is the effects status of a transaction that executed.
const ExecutionSuccess = "success"

// ErrMissingEffects is returned when the node answers without transaction effects.
var ErrMissingEffects = errors.New("transaction effects missing from response")

// TransactionBlock is the subset of a Sui transaction block response we consume
type TransactionBlock struct {
	Digest  string   `json:"digest"`
	Effects *Effects `json:"effects"`
}

type Effects struct {
	Status  ExecutionStatus        `json:"status"`
	GasUsed map[string]interface{} `json:"gasUsed"`
}

type ExecutionStatus struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

// Succeeded reports whether the block's effects report successful execution.
func (b *TransactionBlock) Succeeded() bool {
	return b != nil && b.Effects != nil && b.Effects.Status.Status == ExecutionSuccess
}
