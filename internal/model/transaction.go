package model

import (
	"github.com/shopspring/decimal"
)

// Category is an expense category tag.
type Category string

// Categories that override automatic categorization.
const (
	CategoryInvestments   Category = "Investments"
	CategoryTransport     Category = "Transport"
	CategorySubscriptions Category = "Subscriptions"
)

// ParsedTransaction is one purchase accepted from a statement row.
type ParsedTransaction struct {
	Date           string          `json:"date"` // YYYY-MM-DD
	Merchant       string          `json:"merchant"`
	Amount         decimal.Decimal `json:"amount"` // debit magnitude, always > 0, two places
	ForcedCategory Category        `json:"forcedCategory,omitempty"`
}

// HasForcedCategory reports whether automatic categorization must be bypassed.
func (t ParsedTransaction) HasForcedCategory() bool {
	return t.ForcedCategory != ""
}

// ParseResult is the outcome of parsing one statement file.
type ParseResult struct {
	Bank         BankFormat          `json:"bank"`
	Transactions []ParsedTransaction `json:"transactions"`
	Skipped      SkipStats           `json:"skipped"`
}
