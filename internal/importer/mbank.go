package importer

import (
	"strings"

	"github.com/paragon-dev/paragon/internal/classify"
	"github.com/paragon-dev/paragon/internal/model"
	"github.com/paragon-dev/paragon/internal/normalize"
)

// MBankExtractor parses mBank "lista operacji" exports. Columns are located by
// header name, so both the full (#Data operacji;#Data księgowania;#Opis operacji;
// #Tytuł;#Nadawca/Odbiorca;...;#Kwota;...) and the short layout are accepted.
type MBankExtractor struct{}

// Format returns the bank format.
func (e *MBankExtractor) Format() model.BankFormat { return model.BankMBank }

type mbankLayout struct {
	date, desc, title, recipient, amount int
}

// Extract skips the account preamble, reads the header, then the rows.
// "#"-prefixed lines after the header are balance footers.
func (e *MBankExtractor) Extract(text string) ([]model.ParsedTransaction, model.SkipStats) {
	lines := splitLines(text)
	header := -1
	for i, line := range lines {
		if isMBankHeader(line) {
			header = i
			break
		}
	}
	if header < 0 {
		return collect(nil, nil)
	}

	cols := indexColumns(splitRecord(lines[header], ';'))
	layout := mbankLayout{
		date:      cols.find("Data operacji"),
		desc:      cols.find("Opis operacji"),
		title:     cols.find("Tytuł"),
		recipient: cols.find("Nadawca/Odbiorca", "Odbiorca"),
		amount:    cols.find("Kwota"),
	}
	return collect(lines[header+1:], layout.row)
}

func isMBankHeader(line string) bool {
	line = strings.TrimSpace(line)
	return strings.HasPrefix(line, mbankHeaderPrefix) || strings.HasPrefix(line, "Data operacji;")
}

func (l mbankLayout) row(line string) outcome {
	if strings.HasPrefix(strings.TrimSpace(line), "#") {
		return ignored()
	}
	rec := splitRecord(line, ';')
	if !fits(rec, l.date, l.desc, l.amount) {
		return skipped(model.SkipOther)
	}

	desc := rec[l.desc]
	title := field(rec, l.title)
	recipient := field(rec, l.recipient)
	amount := rec[l.amount]
	text := strings.TrimSpace(desc + " " + title)

	if d := classify.Classify(text, amount); d.Skip {
		return skipped(d.Reason)
	}

	// The recipient is used as-is; only the description fallback is normalized.
	merchant := recipient
	if merchant == "" {
		merchant = normalize.Merchant(text)
	}
	return finish(model.BankMBank, rec[l.date], amount, merchant, text, recipient)
}
