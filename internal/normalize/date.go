package normalize

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/paragon-dev/paragon/internal/model"
)

// ErrInvalidDate is returned when a date does not fit its format's rules.
var ErrInvalidDate = errors.New("invalid date")

const isoLayout = "%04d-%02d-%02d"

var (
	isoDate     = regexp.MustCompile(`^(\d{4})-(\d{1,2})-(\d{1,2})(?:[ T].*)?$`)
	numericDate = regexp.MustCompile(`^(\d{1,2})[./-](\d{1,2})[./-](\d{4})(?:\s.*)?$`)
)

var monthAbbrev = map[string]int{
	"jan": 1, "feb": 2, "mar": 3, "apr": 4, "may": 5, "jun": 6,
	"jul": 7, "aug": 8, "sep": 9, "oct": 10, "nov": 11, "dec": 12,
}

// Date converts a statement date to YYYY-MM-DD using the rules of bank.
// ISO banks may carry a trailing time, which is dropped. ZEN uses "1 Dec 2024".
// Unknown formats try every supported form.
func Date(raw string, bank model.BankFormat) (string, error) {
	s := strings.TrimSpace(raw)
	var (
		out string
		ok  bool
	)
	switch bank {
	case model.BankZen:
		out, ok = monthNameDate(s)
	case model.BankUnknown, "":
		out, ok = isoDateString(s)
		if !ok {
			out, ok = dayFirstDate(s)
		}
		if !ok {
			out, ok = monthNameDate(s)
		}
	default:
		out, ok = isoDateString(s)
	}
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrInvalidDate, raw)
	}
	return out, nil
}

func isoDateString(s string) (string, bool) {
	m := isoDate.FindStringSubmatch(s)
	if m == nil {
		return "", false
	}
	return build(m[1], m[2], m[3])
}

func dayFirstDate(s string) (string, bool) {
	m := numericDate.FindStringSubmatch(s)
	if m == nil {
		return "", false
	}
	return build(m[3], m[2], m[1])
}

func monthNameDate(s string) (string, bool) {
	parts := strings.Fields(s)
	if len(parts) != 3 || len(parts[2]) != 4 {
		return "", false
	}
	month, ok := monthAbbrev[strings.ToLower(parts[1])]
	if !ok {
		return "", false
	}
	return build(parts[2], strconv.Itoa(month), parts[0])
}

func build(year, month, day string) (string, bool) {
	y, err := strconv.Atoi(year)
	if err != nil || y < 1 {
		return "", false
	}
	m, err := strconv.Atoi(month)
	if err != nil || m < 1 || m > 12 {
		return "", false
	}
	d, err := strconv.Atoi(day)
	if err != nil || d < 1 || d > 31 {
		return "", false
	}
	return fmt.Sprintf(isoLayout, y, m, d), true
}
