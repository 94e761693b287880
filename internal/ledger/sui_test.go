package ledger

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type rpcRequest struct {
	ID     json.RawMessage   `json:"id"`
	Method string            `json:"method"`
	Params []json.RawMessage `json:"params"`
}

// fakeNode answers sui_getTransactionBlock from a fixed digest -> response table.
func fakeNode(t *testing.T, responses map[string]string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req rpcRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, getTransactionBlockMethod, req.Method)
		require.Len(t, req.Params, 2)

		var digest string
		require.NoError(t, json.Unmarshal(req.Params[0], &digest))
		var opts TransactionBlockOptions
		require.NoError(t, json.Unmarshal(req.Params[1], &opts))
		assert.True(t, opts.ShowEffects)

		w.Header().Set("Content-Type", "application/json")
		body, ok := responses[digest]
		if !ok {
			body = `"error":{"code":-32602,"message":"Could not find the referenced transaction"}`
		}
		w.Write([]byte(`{"jsonrpc":"2.0","id":` + string(req.ID) + `,` + body + `}`))
	}))
}

func TestSuiClient_GetTransactionBlock(t *testing.T) {
	node := fakeNode(t, map[string]string{
		"ok-digest":     `"result":{"digest":"ok-digest","effects":{"status":{"status":"success"},"gasUsed":{"computationCost":"100","storageCost":"200"}}}`,
		"failed-digest": `"result":{"digest":"failed-digest","effects":{"status":{"status":"failure","error":"InsufficientGas"},"gasUsed":{"computationCost":"5"}}}`,
		"no-effects":    `"result":{"digest":"no-effects"}`,
		"null-result":   `"result":null`,
	})
	defer node.Close()

	ctx := context.Background()
	client, err := DialSui(ctx, node.URL, 2*time.Second, zap.NewNop())
	require.NoError(t, err)
	defer client.Close()

	t.Run("success", func(t *testing.T) {
		block, err := client.GetTransactionBlock(ctx, "ok-digest")
		require.NoError(t, err)
		assert.True(t, block.Succeeded())
		assert.Equal(t, "100", block.Effects.GasUsed["computationCost"])
	})

	t.Run("execution failure", func(t *testing.T) {
		block, err := client.GetTransactionBlock(ctx, "failed-digest")
		require.NoError(t, err)
		assert.False(t, block.Succeeded())
		assert.Equal(t, "InsufficientGas", block.Effects.Status.Error)
	})

	t.Run("missing effects", func(t *testing.T) {
		_, err := client.GetTransactionBlock(ctx, "no-effects")
		assert.ErrorIs(t, err, ErrMissingEffects)
	})

	t.Run("null result", func(t *testing.T) {
		_, err := client.GetTransactionBlock(ctx, "null-result")
		assert.Error(t, err)
	})

	t.Run("unknown digest", func(t *testing.T) {
		_, err := client.GetTransactionBlock(ctx, "nope")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Could not find the referenced transaction")
	})
}

func TestSuiClient_Timeout(t *testing.T) {
	slow := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	defer slow.Close()

	client, err := DialSui(context.Background(), slow.URL, 100*time.Millisecond, zap.NewNop())
	require.NoError(t, err)
	defer client.Close()

	start := time.Now()
	_, err = client.GetTransactionBlock(context.Background(), "any")
	assert.Error(t, err)
	assert.Less(t, time.Since(start), time.Second)
}

func TestTransactionBlock_Succeeded(t *testing.T) {
	var nilBlock *TransactionBlock
	assert.False(t, nilBlock.Succeeded())
	assert.False(t, (&TransactionBlock{}).Succeeded())
	assert.True(t, (&TransactionBlock{Effects: &Effects{Status: ExecutionStatus{Status: "success"}}}).Succeeded())
}
