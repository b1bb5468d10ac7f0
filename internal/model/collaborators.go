package model

import "context"

// Categorizer assigns an expense category to transactions without a forced category.
// Implementations must return t.ForcedCategory unchanged when it is set.
type Categorizer interface {
	Categorize(ctx context.Context, t ParsedTransaction) (Category, error)
}

// Store persists accepted transactions, skipping ones it has already seen.
// It returns the number of newly inserted rows.
type Store interface {
	SaveBatch(ctx context.Context, bank BankFormat, txns []ParsedTransaction) (int, error)
}
