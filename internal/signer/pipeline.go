package signer

import (
	"encoding/json"
	"fmt"

	"github.com/btcsuite/btcd/btcjson"

	"github.com/thanhnp/txsigner/internal/gateway"
	"github.com/thanhnp/txsigner/internal/models"
)

// Pipeline drives the per-transaction signing flow over a whole batch:
// decode, resolve each unwitnessed input's previous output, then either
// sign with the wallet or pass the transaction through unchanged.
//
// Processing is strictly sequential and fail-fast: items are handled in
// input order, one subprocess outstanding at a time, and the first fatal
// error aborts the batch with no output for any entry.
type Pipeline struct {
	decoder  *Decoder
	resolver *Resolver
	invoker  *Invoker
}

// NewPipeline wires the pipeline against a node gateway for decode and
// prevout queries and a wallet gateway for signing. The two may be the same
// gateway; they differ when wallet signing is proxied into a container.
func NewPipeline(node, wallet gateway.Gateway) *Pipeline {
	return &Pipeline{
		decoder:  NewDecoder(node),
		resolver: NewResolver(node),
		invoker:  NewInvoker(wallet),
	}
}

// SignBatch signs every transaction in order. The result has the same
// length and order as the input, each entry holding the wallet-signed hex
// or the original hex when nothing needed signing.
func (p *Pipeline) SignBatch(entries []models.TxEntry) ([]models.TxEntry, error) {
	signed := make([]models.TxEntry, 0, len(entries))

	for i, entry := range entries {
		hex, err := p.signOne(entry.Bitcoin, i)
		if err != nil {
			return nil, fmt.Errorf("transaction %d: %w", i+1, err)
		}
		signed = append(signed, models.TxEntry{Bitcoin: hex})
	}

	return signed, nil
}

func (p *Pipeline) signOne(rawTx string, index int) (string, error) {
	log.Infof("Processing transaction %d...", index+1)

	decoded, err := p.decoder.Decode(rawTx)
	if err != nil {
		return "", err
	}

	var prevOuts []btcjson.RawTxWitnessInput
	for i, in := range decoded.Vin {
		if in.IsCoinBase() {
			log.Debugf("  Input %d: coinbase, nothing to sign", i)
			continue
		}
		if in.HasWitness() {
			log.Infof("  Input %d: already signed, skipping", i)
			continue
		}

		log.Infof("  Input %d: %s:%d - fetching prevout info...", i, in.Txid, in.Vout)

		prev, err := p.resolver.Resolve(in.Txid, in.Vout)
		if err != nil {
			return "", err
		}
		if prev == nil {
			log.Infof("  Input %d: prevout not found on chain, may be from earlier tx in batch", i)
			continue
		}
		prevOuts = append(prevOuts, *prev)
	}

	req, ok := BuildRequest(rawTx, prevOuts)
	if !ok {
		log.Infof("  No inputs to sign, returning original transaction")
		return rawTx, nil
	}

	log.Infof("  Signing %d input(s) with wallet...", len(req.PrevOuts))

	result, err := p.invoker.Sign(req)
	if err != nil {
		return "", err
	}

	switch {
	case result.Complete:
		log.Infof("  Transaction fully signed")
	case len(result.Errors) > 0:
		diag, _ := json.MarshalIndent(result.Errors, "", "  ")
		log.Warnf("  Transaction not fully signed. Errors: %s", diag)
	default:
		log.Warnf("  Transaction not fully signed")
	}

	return result.Hex, nil
}
