package normalize

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
)

var (
	// ErrEmptyAmount is returned for blank amount fields.
	ErrEmptyAmount = errors.New("empty amount")
	// ErrInvalidAmount is returned when the field is not a number.
	ErrInvalidAmount = errors.New("invalid amount")
)

const amountPlaces = 2

var (
	currencyToken = regexp.MustCompile(`(?i)(pln|zł|eur|usd|gbp|chf|czk|€|\$|£)`)
	plainNumber   = regexp.MustCompile(`^\d([\d.,]*\d)?$`)
	separators    = strings.NewReplacer(",", "", ".", "")
)

// Amount returns the magnitude of a locale-specific amount, rounded to two places.
// "-1 234,56 PLN" -> 1234.56
func Amount(raw string) (decimal.Decimal, error) {
	d, _, err := parseAmount(raw)
	return d, err
}

// SignedAmount is like Amount but keeps the sign of the source field.
func SignedAmount(raw string) (decimal.Decimal, error) {
	d, negative, err := parseAmount(raw)
	if err != nil {
		return decimal.Zero, err
	}
	if negative {
		return d.Neg(), nil
	}
	return d, nil
}

func parseAmount(raw string) (decimal.Decimal, bool, error) {
	s := currencyToken.ReplaceAllString(raw, "")
	s = strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)

	negative := false
	switch {
	case strings.HasPrefix(s, "-"):
		negative, s = true, s[1:]
	case strings.HasPrefix(s, "−"):
		negative, s = true, strings.TrimPrefix(s, "−")
	case strings.HasPrefix(s, "+"):
		s = s[1:]
	}

	if s == "" {
		return decimal.Zero, false, ErrEmptyAmount
	}
	if !plainNumber.MatchString(s) {
		return decimal.Zero, false, fmt.Errorf("%w: %q", ErrInvalidAmount, raw)
	}

	// The last separator is the decimal point; earlier ones group thousands.
	if i := strings.LastIndexAny(s, ",."); i >= 0 {
		s = separators.Replace(s[:i]) + "." + s[i+1:]
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, false, fmt.Errorf("%w: %q", ErrInvalidAmount, raw)
	}
	return d.Round(amountPlaces), negative, nil
}
