package normalize

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/forPelevin/gomoji"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Legal-entity forms, matched with their surrounding separators.
var legalForms = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(^|[\s,]+)sp\.?\s*z\s*o\.?\s*o\.?($|[\s,]+)`),
	regexp.MustCompile(`(?i)(^|[\s,]+)sp\.?\s*[kj]\.?($|[\s,]+)`),
	regexp.MustCompile(`(?i)(^|[\s,]+)spółka(\s+(z\s+ograniczoną\s+odpowiedzialnością|akcyjna|komandytowa|jawna|cywilna))?($|[\s,]+)`),
	regexp.MustCompile(`(?i)(^|[\s,]+)s\.\s?a\.?($|[\s,]+)`),
	regexp.MustCompile(`(?i)[\s,]+(sa|ltd|limited|gmbh|inc|llc)\.?$`),
}

var trailingToken = regexp.MustCompile(`\s+(\S+)$`)

const (
	minRefLen = 3
	maxRefLen = 20
)

// chains maps folded merchant keys to their canonical display form.
var chains = map[string]string{
	"zabka":         "Żabka",
	"biedronka":     "Biedronka",
	"lidl":          "Lidl",
	"kaufland":      "Kaufland",
	"auchan":        "Auchan",
	"carrefour":     "Carrefour",
	"netto":         "Netto",
	"dino":          "Dino",
	"stokrotka":     "Stokrotka",
	"lewiatan":      "Lewiatan",
	"rossmann":      "Rossmann",
	"hebe":          "Hebe",
	"pepco":         "Pepco",
	"orlen":         "Orlen",
	"pkn orlen":     "Orlen",
	"shell":         "Shell",
	"bp":            "BP",
	"circle k":      "Circle K",
	"mcdonalds":     "McDonald's",
	"kfc":           "KFC",
	"ikea":          "IKEA",
	"hm":            "H&M",
	"allegro":       "Allegro",
	"jakdojade":     "Jakdojade",
	"uber":          "Uber",
	"uber eats":     "Uber Eats",
	"bolt":          "Bolt",
	"spotify":       "Spotify",
	"netflix":       "Netflix",
	"empik":         "Empik",
	"zara":          "Zara",
	"apteka gemini": "Apteka Gemini",
}

// Merchant cleans a free-text counterparty into a display name. It is idempotent:
// Merchant(Merchant(s)) == Merchant(s).
func Merchant(raw string) string {
	s := collapse(removeEmoji(raw))
	if s == "" {
		return ""
	}

	stripped := s
	for {
		next := stripReferences(stripLegalForms(stripped))
		if next == stripped {
			break
		}
		stripped = next
	}
	if stripped == "" {
		stripped = s
	}

	if canonical, ok := lookupChain(stripped); ok {
		return canonical
	}
	return cases.Title(language.Polish).String(stripped)
}

func removeEmoji(s string) string {
	if strings.IndexFunc(s, func(r rune) bool { return r > unicode.MaxASCII }) < 0 {
		return s
	}
	return gomoji.RemoveEmojis(s)
}

func stripLegalForms(s string) string {
	for _, re := range legalForms {
		s = re.ReplaceAllString(s, " ")
	}
	return collapse(s)
}

// stripReferences drops trailing reference codes and masked card numbers
// ("Z1234", "K.1", "*1234", "XXXX1234").
func stripReferences(s string) string {
	for {
		m := trailingToken.FindStringSubmatchIndex(s)
		if m == nil || !isReference(s[m[2]:m[3]]) {
			return s
		}
		s = strings.TrimSpace(s[:m[0]])
	}
}

func isReference(tok string) bool {
	if len(tok) < minRefLen || len(tok) > maxRefLen {
		return false
	}
	hasDigit := false
	for _, r := range tok {
		switch {
		case r >= '0' && r <= '9':
			hasDigit = true
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case strings.ContainsRune("*#/._-", r):
		default:
			return false
		}
	}
	return hasDigit
}

// lookupChain matches the whole name or its longest leading word run.
func lookupChain(s string) (string, bool) {
	words := strings.Fields(chainKey(s))
	for n := len(words); n > 0; n-- {
		if canonical, ok := chains[strings.Join(words[:n], " ")]; ok {
			return canonical, true
		}
	}
	return "", false
}

func chainKey(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case unicode.IsLetter(r), unicode.IsDigit(r), r == ' ':
			return r
		}
		return -1
	}, Fold(s))
}
