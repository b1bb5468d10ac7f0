package classify

import (
	"context"
	"fmt"

	"github.com/paragon-dev/paragon/internal/model"
)

// Resolve returns the category of t. A forced category always wins; the
// categorizer is only consulted when there is none.
func Resolve(ctx context.Context, c model.Categorizer, t model.ParsedTransaction) (model.Category, error) {
	if t.HasForcedCategory() {
		return t.ForcedCategory, nil
	}
	cat, err := c.Categorize(ctx, t)
	if err != nil {
		return "", fmt.Errorf("categorizing %s: %w", t.Merchant, err)
	}
	return cat, nil
}
