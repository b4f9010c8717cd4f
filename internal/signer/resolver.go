package signer

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/btcsuite/btcd/btcjson"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg/chainhash"

	"github.com/thanhnp/txsigner/internal/gateway"
)

// Resolver fetches previous-output data for inputs that still need signing.
type Resolver struct {
	node gateway.Gateway
}

// NewResolver creates a Resolver backed by the node gateway.
func NewResolver(node gateway.Gateway) *Resolver {
	return &Resolver{node: node}
}

// Resolve looks up the output spent by an input. A nil result with a nil
// error means the node does not know the output yet: the referenced
// transaction is absent from its view, or the output index is out of range.
// That is the expected case for outputs produced by an earlier transaction
// in the same batch that has not been broadcast, so it is reported as
// absence rather than failure.
func (r *Resolver) Resolve(txid string, vout uint32) (*btcjson.RawTxWitnessInput, error) {
	if _, err := chainhash.NewHashFromStr(txid); err != nil {
		return nil, fmt.Errorf("invalid prevout txid %q: %w", txid, err)
	}

	out, err := r.node.Invoke("getrawtransaction", txid, "true")
	if err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, err
	}

	var info btcjson.TxRawResult
	if err := json.Unmarshal([]byte(out), &info); err != nil {
		return nil, fmt.Errorf("failed to parse transaction info: %w", err)
	}

	if int(vout) >= len(info.Vout) {
		return nil, nil
	}
	entry := info.Vout[vout]

	if amt, err := btcutil.NewAmount(entry.Value); err == nil {
		log.Debugf("Prevout %s:%d resolved: amount=%v script=%s",
			txid, vout, amt, entry.ScriptPubKey.Hex)
	}

	amount := entry.Value
	return &btcjson.RawTxWitnessInput{
		Txid:         txid,
		Vout:         vout,
		ScriptPubKey: entry.ScriptPubKey.Hex,
		Amount:       &amount,
	}, nil
}

// isNotFound reports whether a gateway failure is Bitcoin Core saying it
// does not know the transaction. The CLI surfaces RPC error -5 on stderr
// for that case.
func isNotFound(err error) bool {
	var gwErr *gateway.Error
	if !errors.As(err, &gwErr) {
		return false
	}
	return strings.Contains(gwErr.Output, "error code: -5") ||
		strings.Contains(gwErr.Output, "No such mempool or blockchain transaction")
}
