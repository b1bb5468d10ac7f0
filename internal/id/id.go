// Package id derives stable identifiers for parsed transactions.
package id

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/paragon-dev/paragon/internal/model"
)

// Namespace is the UUIDv5 namespace all fingerprints are derived in.
var Namespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://paragon.dev/transactions"))

// Key returns the identity of a transaction: "mbank|2024-01-15|Żabka|12.50".
// The forced category is not part of it.
func Key(bank model.BankFormat, txn model.ParsedTransaction) string {
	return strings.Join([]string{
		string(bank),
		txn.Date,
		txn.Merchant,
		txn.Amount.StringFixed(2),
	}, "|")
}

// Fingerprint returns the ID of the first occurrence of txn in a statement.
func Fingerprint(bank model.BankFormat, txn model.ParsedTransaction) uuid.UUID {
	return fingerprint(Key(bank, txn), 0)
}

func fingerprint(key string, occurrence int) uuid.UUID {
	return uuid.NewSHA1(Namespace, []byte(key+"|"+strconv.Itoa(occurrence)))
}

// Assign returns one ID per transaction, in order. Identical rows are numbered
// by occurrence, so two real purchases of the same amount on the same day at
// the same merchant keep distinct IDs, while re-importing the same statement
// yields the same IDs again.
func Assign(bank model.BankFormat, txns []model.ParsedTransaction) []uuid.UUID {
	seen := make(map[string]int, len(txns))
	ids := make([]uuid.UUID, len(txns))
	for i, txn := range txns {
		key := Key(bank, txn)
		ids[i] = fingerprint(key, seen[key])
		seen[key]++
	}
	return ids
}

// Parse parses a fingerprint as written by the exporter.
func Parse(s string) (uuid.UUID, error) {
	u, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid transaction ID %q: %w", s, err)
	}
	if u.Version() != 5 {
		return uuid.Nil, fmt.Errorf("invalid transaction ID %q: version %d", s, u.Version())
	}
	return u, nil
}
