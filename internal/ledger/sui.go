package ledger

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/ethereum/go-ethereum/rpc"
	"go.uber.org/zap"
)

const getTransactionBlockMethod = "sui_getTransactionBlock"

// TransactionBlockOptions selects which parts of the block the node returns
type TransactionBlockOptions struct {
	ShowInput          bool `json:"showInput"`
	ShowEffects        bool `json:"showEffects"`
	ShowEvents         bool `json:"showEvents"`
	ShowBalanceChanges bool `json:"showBalanceChanges"`
}

// SuiClient reads transaction blocks over the Sui JSON-RPC 2.0 API
type SuiClient struct {
	rpc     *rpc.Client
	url     string
	timeout time.Duration
	logger  *zap.Logger
}

// DialSui creates a client for the full node at url. Every query is bounded
// by timeout.
func DialSui(ctx context.Context, url string, timeout time.Duration, logger *zap.Logger) (*SuiClient, error) {
	httpClient := &http.Client{Timeout: timeout}
	client, err := rpc.DialOptions(ctx, url, rpc.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("failed to dial Sui node %s: %w", url, err)
	}

	logger.Info("Sui ledger client ready", zap.String("rpc_url", url), zap.Duration("timeout", timeout))

	return &SuiClient{rpc: client, url: url, timeout: timeout, logger: logger}, nil
}

// GetTransactionBlock fetches the effects of digest with a single call.
func (c *SuiClient) GetTransactionBlock(ctx context.Context, digest string) (*TransactionBlock, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var block TransactionBlock
	opts := TransactionBlockOptions{ShowEffects: true}
	if err := c.rpc.CallContext(ctx, &block, getTransactionBlockMethod, digest, opts); err != nil {
		return nil, fmt.Errorf("%s %s: %w", getTransactionBlockMethod, digest, err)
	}
	if block.Effects == nil {
		return nil, fmt.Errorf("%s %s: %w", getTransactionBlockMethod, digest, ErrMissingEffects)
	}

	c.logger.Debug("fetched transaction block",
		zap.String("digest", digest),
		zap.String("status", block.Effects.Status.Status))

	return &block, nil
}

func (c *SuiClient) Close() {
	c.rpc.Close()
	c.logger.Info("Disconnected from Sui node", zap.String("rpc_url", c.url))
}
