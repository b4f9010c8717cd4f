package models

// TxEntry is one element of the batch input and output arrays: a single
// serialized Bitcoin transaction as a hex string. On output the field holds
// the wallet-signed hex, or the original hex when nothing needed signing.
type TxEntry struct {
	Bitcoin string `json:"bitcoin"`
}
