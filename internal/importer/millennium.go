package importer

import (
	"github.com/paragon-dev/paragon/internal/classify"
	"github.com/paragon-dev/paragon/internal/model"
	"github.com/paragon-dev/paragon/internal/normalize"
)

// MillenniumExtractor parses Bank Millennium account and card history exports.
//
//	"Numer rachunku/karty","Data transakcji","Data rozliczenia","Rodzaj transakcji",
//	"Na konto/Z konta","Odbiorca/Zleceniodawca","Opis","Obciążenia","Uznania","Saldo","Waluta"
type MillenniumExtractor struct{}

const (
	millenniumNumFields   = 11
	millenniumColDate     = 1
	millenniumColType     = 3
	millenniumColCparty   = 5
	millenniumColDesc     = 6
	millenniumColDebit    = 7
	millenniumHeaderLines = 1
)

// Format returns the bank format.
func (e *MillenniumExtractor) Format() model.BankFormat { return model.BankMillennium }

// Extract parses the rows below the header line.
func (e *MillenniumExtractor) Extract(text string) ([]model.ParsedTransaction, model.SkipStats) {
	lines := splitLines(text)
	first := firstNonEmpty(lines)
	if first < 0 {
		return collect(nil, nil)
	}
	return collect(lines[first+millenniumHeaderLines:], millenniumRow)
}

func millenniumRow(line string) outcome {
	rec := splitRecord(line, ',')
	if len(rec) != millenniumNumFields {
		return skipped(model.SkipOther)
	}

	typ := rec[millenniumColType]
	desc := rec[millenniumColDesc]
	cparty := rec[millenniumColCparty]
	debit := rec[millenniumColDebit]

	if d := classify.ClassifyDebit(typ+" "+desc, debit); d.Skip {
		return skipped(d.Reason)
	}

	merchant := cparty
	if merchant == "" {
		merchant = desc
	}
	return finish(model.BankMillennium, rec[millenniumColDate], debit, normalize.Merchant(merchant), desc, cparty)
}
