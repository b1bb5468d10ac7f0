// Package classify decides which statement rows are purchases.
package classify

import (
	"regexp"

	"github.com/paragon-dev/paragon/internal/model"
	"github.com/paragon-dev/paragon/internal/normalize"
)

// Decision is the classifier's verdict for one row.
type Decision struct {
	Skip   bool
	Reason model.SkipReason
}

// Accepted reports whether the row is a purchase.
func (d Decision) Accepted() bool { return !d.Skip }

func accept() Decision { return Decision{} }

func skip(reason model.SkipReason) Decision {
	return Decision{Skip: true, Reason: reason}
}

type rule struct {
	reason  model.SkipReason
	pattern *regexp.Regexp
}

// Rules run in order against folded text (lower case, no diacritics).
var rules = []rule{
	{model.SkipInternalTransfer, regexp.MustCompile(`przelew wewnetrzny|przelew wlasny|przelew miedzy (moimi|wlasnymi) rachunkami|internal transfer|transfer between (your |own )?accounts|savings vault|skarbonk`)},
	{model.SkipATMWithdrawal, regexp.MustCompile(`bankoma[tc]|wyplata gotowki|(^|[^a-z])atm([^a-z]|$)|cash withdrawal`)},
	{model.SkipCardPayment, regexp.MustCompile(`wczesn\w*\s+spl\w*.*karty|splata (zadluzenia )?karty|credit card repayment|card repayment`)},
	{model.SkipPending, regexp.MustCompile(`blokada|oczekuj|w realizacji|niezaksiegowan|pending`)},
}

// Classify judges a row whose amount sign tells debit from credit.
// A blank, non-numeric or zero amount always yields no_amount; credits yield other.
func Classify(text, amount string) Decision {
	signed, err := normalize.SignedAmount(amount)
	if err != nil || signed.IsZero() {
		return skip(model.SkipNoAmount)
	}
	if d := classifyText(text); d.Skip {
		return d
	}
	if signed.IsPositive() {
		return skip(model.SkipOther)
	}
	return accept()
}

// ClassifyDebit judges a row from a dedicated debit column, where the sign
// carries no meaning and a blank field means the row is a credit.
func ClassifyDebit(text, debit string) Decision {
	amount, err := normalize.Amount(debit)
	if err != nil || amount.IsZero() {
		return skip(model.SkipNoAmount)
	}
	return classifyText(text)
}

// Text applies only the type/description rules.
func Text(text string) Decision {
	return classifyText(text)
}

func classifyText(text string) Decision {
	folded := normalize.Fold(text)
	for _, r := range rules {
		if r.pattern.MatchString(folded) {
			return skip(r.reason)
		}
	}
	return accept()
}
