package export

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/paragon-dev/paragon/internal/importer"
	"github.com/paragon-dev/paragon/internal/model"
)

type jsonTransaction struct {
	ID string `json:"id"`
	model.ParsedTransaction
}

type jsonResult struct {
	Bank         model.BankFormat  `json:"bank"`
	Transactions []jsonTransaction `json:"transactions"`
	Skipped      model.SkipStats   `json:"skipped"`
	Summary      string            `json:"summary,omitempty"`
}

// WriteJSON writes result as an indented JSON document. Transactions carry
// their fingerprints and the skip counters their Polish summary.
func WriteJSON(w io.Writer, result model.ParseResult) error {
	out := jsonResult{
		Bank:         result.Bank,
		Transactions: make([]jsonTransaction, 0, len(result.Transactions)),
		Skipped:      result.Skipped,
		Summary:      importer.FormatSkippedStats(result.Skipped),
	}
	for _, row := range Rows(result.Bank, result.Transactions) {
		out.Transactions = append(out.Transactions, jsonTransaction{
			ID:                row.ID.String(),
			ParsedTransaction: row.ParsedTransaction,
		})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encoding JSON: %w", err)
	}
	return nil
}
