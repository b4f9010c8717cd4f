package models

import "encoding/json"

// SignResult is the wallet's response to signrawtransactionwithwallet.
// Complete reports whether every input now carries valid unlocking data.
// The per-input error records are kept as raw JSON and surfaced to the
// operator verbatim, never interpreted.
type SignResult struct {
	Hex      string            `json:"hex"`
	Complete bool              `json:"complete"`
	Errors   []json.RawMessage `json:"errors,omitempty"`
}
