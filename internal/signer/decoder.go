package signer

import (
	"encoding/json"
	"fmt"

	"github.com/btcsuite/btcd/btcjson"

	"github.com/thanhnp/txsigner/internal/gateway"
)

// Decoder turns a raw transaction hex into its decoded form using the node
// CLI.
type Decoder struct {
	node gateway.Gateway
}

// NewDecoder creates a Decoder backed by the node gateway.
func NewDecoder(node gateway.Gateway) *Decoder {
	return &Decoder{node: node}
}

// Decode runs decoderawtransaction and parses the result. The input list of
// the decoded transaction tells the caller which inputs already carry a
// witness and which previous outputs still need resolving.
func (d *Decoder) Decode(rawTx string) (*btcjson.TxRawResult, error) {
	out, err := d.node.Invoke("decoderawtransaction", rawTx)
	if err != nil {
		return nil, err
	}

	var decoded btcjson.TxRawResult
	if err := json.Unmarshal([]byte(out), &decoded); err != nil {
		return nil, fmt.Errorf("failed to parse decoded transaction: %w", err)
	}

	return &decoded, nil
}
