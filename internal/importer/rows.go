package importer

import (
	"encoding/csv"
	"strings"

	"github.com/paragon-dev/paragon/internal/classify"
	"github.com/paragon-dev/paragon/internal/model"
	"github.com/paragon-dev/paragon/internal/normalize"
)

type outcomeKind int

const (
	outcomeIgnored outcomeKind = iota
	outcomeAccepted
	outcomeSkipped
)

// outcome is what a single non-blank line contributes to the result.
type outcome struct {
	kind   outcomeKind
	txn    model.ParsedTransaction
	reason model.SkipReason
}

func ignored() outcome { return outcome{kind: outcomeIgnored} }

func skipped(reason model.SkipReason) outcome {
	return outcome{kind: outcomeSkipped, reason: reason}
}

func accepted(txn model.ParsedTransaction) outcome {
	return outcome{kind: outcomeAccepted, txn: txn}
}

// collect folds row outcomes into transactions and skip counts, in line order.
// Blank lines never reach rowFn.
func collect(lines []string, rowFn func(line string) outcome) ([]model.ParsedTransaction, model.SkipStats) {
	txns := []model.ParsedTransaction{}
	stats := model.NewSkipStats()
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		o := rowFn(line)
		switch o.kind {
		case outcomeAccepted:
			txns = append(txns, o.txn)
		case outcomeSkipped:
			stats.Add(o.reason)
		}
	}
	return txns, stats
}

// finish normalizes the fields of a row the classifier accepted.
// merchant must already be in display form. A field that fails to normalize
// rejects the row as other.
func finish(bank model.BankFormat, date, amount, merchant, description, recipient string) outcome {
	d, err := normalize.Date(date, bank)
	if err != nil {
		return skipped(model.SkipOther)
	}
	a, err := normalize.Amount(amount)
	if err != nil || !a.IsPositive() {
		return skipped(model.SkipOther)
	}
	if merchant == "" {
		return skipped(model.SkipOther)
	}
	return accepted(model.ParsedTransaction{
		Date:           d,
		Merchant:       merchant,
		Amount:         a,
		ForcedCategory: classify.ForcedCategory(description, recipient),
	})
}

func splitLines(text string) []string {
	text = strings.TrimPrefix(text, "\ufeff")
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	return strings.Split(text, "\n")
}

func firstNonEmpty(lines []string) int {
	for i, line := range lines {
		if strings.TrimSpace(line) != "" {
			return i
		}
	}
	return -1
}

// splitRecord parses one physical line. Malformed quoting yields nil.
func splitRecord(line string, comma rune) []string {
	cr := csv.NewReader(strings.NewReader(line))
	cr.Comma = comma
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	cr.TrimLeadingSpace = true

	rec, err := cr.Read()
	if err != nil {
		return nil
	}
	for i := range rec {
		rec[i] = strings.TrimSpace(rec[i])
	}
	return rec
}

// field returns rec[i], or "" when the column is missing.
func field(rec []string, i int) string {
	if i < 0 || i >= len(rec) {
		return ""
	}
	return rec[i]
}

// columns indexes a header row by folded column name.
type columns map[string]int

func indexColumns(header []string) columns {
	c := make(columns, len(header))
	for i, name := range header {
		key := normalize.Fold(strings.TrimPrefix(strings.TrimSpace(name), "#"))
		if _, ok := c[key]; !ok {
			c[key] = i
		}
	}
	return c
}

// find returns the index of the first listed name present in the header, or -1.
func (c columns) find(names ...string) int {
	for _, name := range names {
		if i, ok := c[normalize.Fold(name)]; ok {
			return i
		}
	}
	return -1
}

// fits reports whether rec has every listed column.
func fits(rec []string, idx ...int) bool {
	for _, i := range idx {
		if i < 0 || i >= len(rec) {
			return false
		}
	}
	return true
}
