package signer

import (
	"encoding/json"
	"fmt"

	"github.com/thanhnp/txsigner/internal/gateway"
	"github.com/thanhnp/txsigner/internal/models"
)

// Invoker submits signing requests to the wallet.
type Invoker struct {
	wallet gateway.Gateway
}

// NewInvoker creates an Invoker backed by the wallet gateway.
func NewInvoker(wallet gateway.Gateway) *Invoker {
	return &Invoker{wallet: wallet}
}

// Sign serializes the previous outputs and runs
// signrawtransactionwithwallet. A result with Complete=false is not an
// error here; the caller decides how to surface it.
func (v *Invoker) Sign(req Request) (*models.SignResult, error) {
	prevOutsJSON, err := json.Marshal(req.PrevOuts)
	if err != nil {
		return nil, fmt.Errorf("failed to encode prevouts: %w", err)
	}

	out, err := v.wallet.Invoke("signrawtransactionwithwallet",
		req.RawTx, string(prevOutsJSON))
	if err != nil {
		return nil, err
	}

	var result models.SignResult
	if err := json.Unmarshal([]byte(out), &result); err != nil {
		return nil, fmt.Errorf("failed to parse sign result: %w", err)
	}

	return &result, nil
}
