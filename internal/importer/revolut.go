package importer

import (
	"github.com/paragon-dev/paragon/internal/classify"
	"github.com/paragon-dev/paragon/internal/model"
	"github.com/paragon-dev/paragon/internal/normalize"
)

// RevolutExtractor parses the four-column English Revolut export
// (Completed Date,Description,Amount,Currency).
type RevolutExtractor struct{}

const (
	revolutNumFields = 4
	revolutColDate   = 0
	revolutColDesc   = 1
	revolutColAmount = 2
)

// Format returns the bank format.
func (e *RevolutExtractor) Format() model.BankFormat { return model.BankRevolut }

// Extract parses the rows below the header line.
func (e *RevolutExtractor) Extract(text string) ([]model.ParsedTransaction, model.SkipStats) {
	lines := splitLines(text)
	first := firstNonEmpty(lines)
	if first < 0 {
		return collect(nil, nil)
	}
	return collect(lines[first+1:], revolutRow)
}

func revolutRow(line string) outcome {
	rec := splitRecord(line, ',')
	if len(rec) != revolutNumFields {
		return skipped(model.SkipOther)
	}

	desc := rec[revolutColDesc]
	amount := rec[revolutColAmount]
	if d := classify.Classify(desc, amount); d.Skip {
		return skipped(d.Reason)
	}
	return finish(model.BankRevolut, rec[revolutColDate], amount, normalize.Merchant(desc), desc, "")
}
