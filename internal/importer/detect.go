package importer

import (
	"strings"

	"github.com/paragon-dev/paragon/internal/model"
)

const (
	millenniumSignature = "Numer rachunku/karty"
	mbankHeaderPrefix   = "#Data operacji"
	mbankHeaderPlain    = "Data operacji;Data księgowania"
	revolutHeader       = "Completed Date,Description,Amount,Currency"
	revolutPLPrefix     = "Rodzaj,Produkt,Data rozpoczęcia"
	ingSignature        = `"Data waluty","Opis"`
	zenBanner           = "Account Statement"
	zenTransactions     = "Transactions:"

	// mBank puts account details above the header.
	mbankPreambleLines = 50
)

// Detect identifies the statement grammar from the first lines of text.
// Signatures are checked in a fixed order and the first match wins.
func Detect(text string) model.BankFormat {
	lines := splitLines(text)
	first := firstNonEmpty(lines)
	if first < 0 {
		return model.BankUnknown
	}
	head := strings.TrimSpace(lines[first])

	switch {
	case strings.Contains(text, millenniumSignature):
		return model.BankMillennium
	case isMBank(lines, head):
		return model.BankMBank
	case head == revolutHeader:
		return model.BankRevolut
	case strings.HasPrefix(head, revolutPLPrefix):
		return model.BankRevolutPL
	case strings.Contains(text, ingSignature):
		return model.BankING
	case isZen(lines):
		return model.BankZen
	}
	return model.BankUnknown
}

func isMBank(lines []string, head string) bool {
	if strings.HasPrefix(head, mbankHeaderPrefix) || strings.Contains(head, mbankHeaderPlain) {
		return true
	}
	return mbankHeaderIndex(lines) >= 0
}

// mbankHeaderIndex finds the "#Data operacji" header within the preamble window.
func mbankHeaderIndex(lines []string) int {
	for i, line := range lines {
		if i >= mbankPreambleLines {
			break
		}
		if strings.HasPrefix(strings.TrimSpace(line), mbankHeaderPrefix) {
			return i
		}
	}
	return -1
}

func isZen(lines []string) bool {
	banner := false
	for _, line := range lines {
		line = strings.TrimSpace(line)
		switch {
		case !banner && strings.Contains(line, zenBanner):
			banner = true
		case banner && strings.HasPrefix(line, zenTransactions):
			return true
		}
	}
	return false
}
