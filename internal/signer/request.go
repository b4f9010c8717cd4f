package signer

import "github.com/btcsuite/btcd/btcjson"

// Request is one signing request for the wallet: a raw transaction plus
// every previous output the node could resolve for it. Built fresh per
// transaction, never reused.
type Request struct {
	RawTx    string
	PrevOuts []btcjson.RawTxWitnessInput
}

// BuildRequest assembles a signing request from the resolved previous
// outputs. ok is false when there is nothing to sign, in which case the
// transaction passes through unchanged without invoking the wallet.
func BuildRequest(rawTx string, prevOuts []btcjson.RawTxWitnessInput) (Request, bool) {
	if len(prevOuts) == 0 {
		return Request{}, false
	}
	return Request{RawTx: rawTx, PrevOuts: prevOuts}, true
}
