package importer

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/paragon-dev/paragon/internal/model"
)

// plural holds the Polish forms for 1, for 2-4 (except 12-14) and for the rest.
type plural struct {
	one, few, many string
}

var skipLabels = map[model.SkipReason]plural{
	model.SkipInternalTransfer: {"przelew wewnętrzny", "przelewy wewnętrzne", "przelewów wewnętrznych"},
	model.SkipATMWithdrawal:    {"wypłata z bankomatu", "wypłaty z bankomatu", "wypłat z bankomatu"},
	model.SkipCardPayment:      {"spłata karty", "spłaty karty", "spłat karty"},
	model.SkipPending:          {"oczekująca", "oczekujące", "oczekujących"},
	model.SkipNoAmount:         {"bez kwoty", "bez kwoty", "bez kwoty"},
	model.SkipOther:            {"inna", "inne", "innych"},
}

func (p plural) form(n int) string {
	switch {
	case n == 1:
		return p.one
	case n%10 >= 2 && n%10 <= 4 && (n%100 < 12 || n%100 > 14):
		return p.few
	default:
		return p.many
	}
}

// FormatSkippedStats renders skip counters for the user, e.g.
// "3 transakcji: 2 przelewy wewnętrzne, 1 spłata karty".
// Zero skips render as "". Unknown reasons are shown by their raw key.
func FormatSkippedStats(stats model.SkipStats) string {
	if stats.Count == 0 {
		return ""
	}

	var parts []string
	for _, reason := range model.SkipReasons {
		if n := stats.Reasons[reason]; n > 0 {
			parts = append(parts, fmt.Sprintf("%d %s", n, skipLabels[reason].form(n)))
		}
	}
	for _, reason := range slices.Sorted(maps.Keys(stats.Reasons)) {
		if _, known := skipLabels[reason]; known {
			continue
		}
		if n := stats.Reasons[reason]; n > 0 {
			parts = append(parts, fmt.Sprintf("%d %s", n, reason))
		}
	}
	return fmt.Sprintf("%d transakcji: %s", stats.Count, strings.Join(parts, ", "))
}
