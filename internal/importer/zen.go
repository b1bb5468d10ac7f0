package importer

import (
	"regexp"
	"strings"

	"github.com/paragon-dev/paragon/internal/classify"
	"github.com/paragon-dev/paragon/internal/model"
	"github.com/paragon-dev/paragon/internal/normalize"
)

// ZenExtractor parses ZEN.COM account statements. A free-text banner precedes
// the "Transactions:" marker; the CSV header follows it:
//
//	Date,Transaction type,Description,Settlement amount,Settlement currency,...
type ZenExtractor struct{}

const (
	zenCardPayment = "Card payment"
	zenMinFields   = 4
)

var (
	zenFooterPrefixes = []string{"opening balance", "closing balance", "total", "summary", "generated", "page"}
	zenCardSuffix     = regexp.MustCompile(`\s+\*+\d+$`)
	zenCountrySuffix  = regexp.MustCompile(`\s+[A-Z]{2}$`)
)

// Format returns the bank format.
func (e *ZenExtractor) Format() model.BankFormat { return model.BankZen }

type zenLayout struct {
	date, typ, desc, amount int
}

// Extract skips the banner, reads the header and parses the rows, ignoring footers.
func (e *ZenExtractor) Extract(text string) ([]model.ParsedTransaction, model.SkipStats) {
	lines := splitLines(text)
	marker := -1
	for i, line := range lines {
		if strings.HasPrefix(strings.TrimSpace(line), zenTransactions) {
			marker = i
			break
		}
	}
	if marker < 0 {
		return collect(nil, nil)
	}

	rest := lines[marker+1:]
	header := firstNonEmpty(rest)
	if header < 0 {
		return collect(nil, nil)
	}

	cols := indexColumns(splitRecord(rest[header], ','))
	layout := zenLayout{
		date:   cols.find("Date"),
		typ:    cols.find("Transaction type", "Type"),
		desc:   cols.find("Description"),
		amount: cols.find("Settlement amount", "Amount"),
	}
	return collect(rest[header+1:], layout.row)
}

func isZenFooter(line string) bool {
	folded := normalize.Fold(line)
	for _, p := range zenFooterPrefixes {
		if strings.HasPrefix(folded, p) {
			return true
		}
	}
	return false
}

func (l zenLayout) row(line string) outcome {
	if isZenFooter(line) {
		return ignored()
	}
	rec := splitRecord(line, ',')
	if len(rec) < zenMinFields {
		return ignored()
	}
	if !fits(rec, l.date, l.typ, l.desc, l.amount) {
		return skipped(model.SkipOther)
	}

	typ := rec[l.typ]
	desc := rec[l.desc]
	amount := rec[l.amount]

	if d := classify.Classify(typ, amount); d.Skip {
		return skipped(d.Reason)
	}
	if typ != zenCardPayment {
		return skipped(model.SkipOther)
	}
	return finish(model.BankZen, rec[l.date], amount, normalize.Merchant(zenMerchant(desc)), desc, "")
}

// zenMerchant drops the masked card and the country code ZEN puts before it
// in card payment descriptions: "LIDL SKLEP WARSZAWA PL *1234".
func zenMerchant(desc string) string {
	s := strings.TrimSpace(desc)
	loc := zenCardSuffix.FindStringIndex(s)
	if loc == nil {
		return s
	}
	return zenCountrySuffix.ReplaceAllString(s[:loc[0]], "")
}
