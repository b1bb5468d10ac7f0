package importer

import (
	"strings"

	"github.com/paragon-dev/paragon/internal/classify"
	"github.com/paragon-dev/paragon/internal/model"
	"github.com/paragon-dev/paragon/internal/normalize"
)

// INGExtractor parses ING Bank Śląski history exports:
//
//	"Data transakcji","Data waluty","Opis","Kontrahent","Rodzaj transakcji","Obciążenia","Uznania","Waluta"
//
// Older exports carry a single signed "Kwota" column instead of Obciążenia/Uznania.
type INGExtractor struct{}

// Rows with fewer fields are the disclaimer lines under the table.
const ingMinFields = 3

// Format returns the bank format.
func (e *INGExtractor) Format() model.BankFormat { return model.BankING }

type ingLayout struct {
	date, desc, cparty, typ, amount int
	signed                          bool
}

// Extract locates the header row and parses everything below it.
func (e *INGExtractor) Extract(text string) ([]model.ParsedTransaction, model.SkipStats) {
	lines := splitLines(text)
	header := -1
	for i, line := range lines {
		if strings.Contains(line, ingSignature) {
			header = i
			break
		}
	}
	if header < 0 {
		return collect(nil, nil)
	}

	cols := indexColumns(splitRecord(lines[header], ','))
	layout := ingLayout{
		date:   cols.find("Data transakcji", "Data waluty"),
		desc:   cols.find("Opis"),
		cparty: cols.find("Kontrahent"),
		typ:    cols.find("Rodzaj transakcji"),
		amount: cols.find("Obciążenia"),
	}
	if layout.amount < 0 {
		layout.amount = cols.find("Kwota", "Kwota transakcji (waluta rachunku)")
		layout.signed = true
	}
	return collect(lines[header+1:], layout.row)
}

func (l ingLayout) row(line string) outcome {
	rec := splitRecord(line, ',')
	if len(rec) < ingMinFields {
		return ignored()
	}
	if !fits(rec, l.date, l.desc, l.amount) {
		return skipped(model.SkipOther)
	}

	desc := rec[l.desc]
	cparty := field(rec, l.cparty)
	amount := rec[l.amount]
	text := strings.TrimSpace(field(rec, l.typ) + " " + desc)

	var d classify.Decision
	if l.signed {
		d = classify.Classify(text, amount)
	} else {
		d = classify.ClassifyDebit(text, amount)
	}
	if d.Skip {
		return skipped(d.Reason)
	}

	merchant := cparty
	if merchant == "" {
		merchant = desc
	}
	return finish(model.BankING, rec[l.date], amount, normalize.Merchant(merchant), desc, cparty)
}
