package classify

import (
	"strings"

	"github.com/paragon-dev/paragon/internal/model"
	"github.com/paragon-dev/paragon/internal/normalize"
)

type forcedRule struct {
	category       model.Category
	keywords       []string
	mayBeRecipient bool
}

// First match wins.
var forcedRules = []forcedRule{
	{model.CategoryInvestments, []string{"xtb s.a.", "xtb.com"}, true},
	{model.CategoryTransport, []string{"jakdojade", "bilet", "ztm", "mpk", "koleo", "pkp intercity", "skm"}, false},
	{model.CategorySubscriptions, []string{"doladowanie telefonu", "doladowanie", "top-up telefon"}, false},
}

// ForcedCategory returns the category that must override automatic
// categorization, or "" when the categorizer is free to decide.
func ForcedCategory(description, recipient string) model.Category {
	desc := normalize.Fold(description)
	rcpt := normalize.Fold(recipient)
	for _, r := range forcedRules {
		for _, kw := range r.keywords {
			if strings.Contains(desc, kw) || (r.mayBeRecipient && strings.Contains(rcpt, kw)) {
				return r.category
			}
		}
	}
	return ""
}
