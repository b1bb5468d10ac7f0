package importer

import (
	"github.com/paragon-dev/paragon/internal/classify"
	"github.com/paragon-dev/paragon/internal/model"
	"github.com/paragon-dev/paragon/internal/normalize"
)

// RevolutPLExtractor parses the Polish-language Revolut export:
//
//	Rodzaj,Produkt,Data rozpoczęcia,Data zakończenia,Opis,Kwota,Opłata,Waluta,State,Saldo
//
// Only completed rows of an allow-listed type are purchases.
type RevolutPLExtractor struct{}

// Folded values of the Rodzaj and State columns. Exports mix Polish and API spellings.
var (
	revolutPLCompleted = map[string]bool{"zakonczono": true, "completed": true}
	revolutPLTransfers = map[string]bool{"przelew": true, "transfer": true}
	revolutPLAllowed   = map[string]bool{
		"platnosc karta": true, "card payment": true, "card_payment": true,
		"bankomat": true, "atm": true,
		"oplata": true, "fee": true,
	}
)

// Format returns the bank format.
func (e *RevolutPLExtractor) Format() model.BankFormat { return model.BankRevolutPL }

type revolutPLLayout struct {
	typ, date, desc, amount, state int
}

// Extract reads the header for column positions, then the rows.
func (e *RevolutPLExtractor) Extract(text string) ([]model.ParsedTransaction, model.SkipStats) {
	lines := splitLines(text)
	first := firstNonEmpty(lines)
	if first < 0 {
		return collect(nil, nil)
	}

	cols := indexColumns(splitRecord(lines[first], ','))
	layout := revolutPLLayout{
		typ:    cols.find("Rodzaj"),
		date:   cols.find("Data rozpoczęcia", "Data zakończenia"),
		desc:   cols.find("Opis"),
		amount: cols.find("Kwota"),
		state:  cols.find("State", "Stan"),
	}
	return collect(lines[first+1:], layout.row)
}

func (l revolutPLLayout) row(line string) outcome {
	rec := splitRecord(line, ',')
	if !fits(rec, l.typ, l.date, l.desc, l.amount, l.state) {
		return skipped(model.SkipOther)
	}

	typ := normalize.Fold(rec[l.typ])
	desc := rec[l.desc]
	amount := rec[l.amount]

	if _, err := normalize.Amount(amount); err != nil {
		return skipped(model.SkipNoAmount)
	}
	if !revolutPLCompleted[normalize.Fold(rec[l.state])] {
		return skipped(model.SkipPending)
	}
	if revolutPLTransfers[typ] {
		if d := classify.Text(desc); d.Skip && d.Reason == model.SkipInternalTransfer {
			return skipped(d.Reason)
		}
		return skipped(model.SkipOther)
	}
	if !revolutPLAllowed[typ] {
		return skipped(model.SkipOther)
	}

	// The type column alone marks cash withdrawals whose description names only the operator.
	if d := classify.Classify(rec[l.typ]+" "+desc, amount); d.Skip {
		return skipped(d.Reason)
	}
	return finish(model.BankRevolutPL, rec[l.date], amount, normalize.Merchant(desc), desc, "")
}
