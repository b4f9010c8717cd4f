// Package batch reads and writes the JSON arrays at the tool's input and
// output boundary.
package batch

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/thanhnp/txsigner/internal/models"
)

// Read parses a batch of transactions from r.
func Read(r io.Reader) ([]models.TxEntry, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}
	return parse(data)
}

// ReadFile parses a batch of transactions from the named file.
func ReadFile(path string) ([]models.TxEntry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read input file: %w", err)
	}
	return parse(data)
}

func parse(data []byte) ([]models.TxEntry, error) {
	var entries []models.TxEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("failed to parse input JSON: %w", err)
	}
	return entries, nil
}

// Write emits the signed batch to w as an indented JSON array.
func Write(w io.Writer, entries []models.TxEntry) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(entries); err != nil {
		return fmt.Errorf("failed to encode output JSON: %w", err)
	}
	return nil
}
