package importer

import (
	"regexp"
	"slices"
	"strings"

	"github.com/paragon-dev/paragon/internal/classify"
	"github.com/paragon-dev/paragon/internal/model"
	"github.com/paragon-dev/paragon/internal/normalize"
)

// GenericExtractor makes a best-effort pass over files no other extractor
// recognizes. It guesses the delimiter and the date, amount and description
// columns; rows it cannot place are counted as skipped.
type GenericExtractor struct{}

const genericSampleRows = 20

var (
	genericDateNames   = []string{"data", "date", "data operacji", "data transakcji", "data ksiegowania"}
	genericAmountNames = []string{"kwota", "amount", "obciazenia", "value", "wartosc", "suma"}
	genericDescNames   = []string{"opis", "description", "tytul", "odbiorca", "merchant", "payee", "kontrahent", "nazwa"}

	amountLike = regexp.MustCompile(`^[+\-−]?\s*\d[\d\s.,]*(\s*[A-Za-zł€$£]{1,3})?$`)
)

// Format returns the bank format.
func (e *GenericExtractor) Format() model.BankFormat { return model.BankUnknown }

type genericLayout struct {
	comma              rune
	date, amount, desc int
}

// Extract never fails; if the columns cannot be found every data row is
// counted under "other".
func (e *GenericExtractor) Extract(text string) ([]model.ParsedTransaction, model.SkipStats) {
	lines := splitLines(text)
	first := firstNonEmpty(lines)
	if first < 0 {
		return collect(nil, nil)
	}

	comma := sniffDelimiter(lines[first])
	header := splitRecord(lines[first], comma)
	data := lines[first+1:]
	if looksLikeData(header) {
		header = nil
		data = lines[first:]
	}

	layout := inferLayout(comma, header, sampleRecords(data, comma))
	return collect(data, layout.row)
}

// sniffDelimiter picks ';' when the header has more semicolons than commas.
func sniffDelimiter(line string) rune {
	if strings.Count(line, ";") > strings.Count(line, ",") {
		return ';'
	}
	return ','
}

func looksLikeData(rec []string) bool {
	for _, f := range rec {
		if isDate(f) {
			return true
		}
	}
	return false
}

func isDate(s string) bool {
	_, err := normalize.Date(s, model.BankUnknown)
	return err == nil
}

func isAmount(s string) bool {
	if !amountLike.MatchString(strings.TrimSpace(s)) {
		return false
	}
	_, err := normalize.Amount(s)
	return err == nil
}

func sampleRecords(lines []string, comma rune) [][]string {
	var out [][]string
	for _, line := range lines {
		if len(out) == genericSampleRows {
			break
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		if rec := splitRecord(line, comma); rec != nil {
			out = append(out, rec)
		}
	}
	return out
}

func inferLayout(comma rune, header []string, samples [][]string) genericLayout {
	l := genericLayout{comma: comma, date: -1, amount: -1, desc: -1}
	cols := indexColumns(header)

	if i := cols.find(genericDateNames...); i >= 0 && columnScore(samples, i, isDate) > 0 {
		l.date = i
	} else {
		l.date = bestColumn(samples, isDate, -1)
	}

	if i := cols.find(genericAmountNames...); i >= 0 && i != l.date && columnScore(samples, i, isAmount) > 0 {
		l.amount = i
	} else {
		l.amount = bestColumn(samples, isAmount, l.date)
	}

	if i := cols.find(genericDescNames...); i >= 0 && i != l.date && i != l.amount {
		l.desc = i
	} else {
		l.desc = longestTextColumn(samples, l.date, l.amount)
	}
	return l
}

func columnScore(samples [][]string, col int, match func(string) bool) int {
	n := 0
	for _, rec := range samples {
		if col < len(rec) && match(rec[col]) {
			n++
		}
	}
	return n
}

// bestColumn returns the leftmost column with the most matching samples, or -1.
func bestColumn(samples [][]string, match func(string) bool, exclude int) int {
	best, bestScore := -1, 0
	for col := 0; col < maxWidth(samples); col++ {
		if col == exclude {
			continue
		}
		if score := columnScore(samples, col, match); score > bestScore {
			best, bestScore = col, score
		}
	}
	return best
}

func longestTextColumn(samples [][]string, exclude ...int) int {
	best, bestLen := -1, 0
	for col := 0; col < maxWidth(samples); col++ {
		if slices.Contains(exclude, col) {
			continue
		}
		total := 0
		for _, rec := range samples {
			total += len(field(rec, col))
		}
		if total > bestLen {
			best, bestLen = col, total
		}
	}
	return best
}

func maxWidth(samples [][]string) int {
	w := 0
	for _, rec := range samples {
		w = max(w, len(rec))
	}
	return w
}

func (l genericLayout) row(line string) outcome {
	if l.date < 0 || l.amount < 0 {
		return skipped(model.SkipOther)
	}
	rec := splitRecord(line, l.comma)
	if !fits(rec, l.date, l.amount) {
		return skipped(model.SkipOther)
	}

	desc := field(rec, l.desc)
	amount := rec[l.amount]
	if d := classify.Classify(desc, amount); d.Skip {
		return skipped(d.Reason)
	}
	return finish(model.BankUnknown, rec[l.date], amount, normalize.Merchant(desc), desc, "")
}
