package export

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/paragon-dev/paragon/internal/importer"
	"github.com/paragon-dev/paragon/internal/model"
)

// WriteTable writes result as aligned columns followed by the skip summary.
func WriteTable(w io.Writer, result model.ParseResult) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "DATE\tMERCHANT\tAMOUNT\tCATEGORY\n")
	for _, txn := range result.Transactions {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", txn.Date, txn.Merchant, txn.Amount.StringFixed(2), txn.ForcedCategory)
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("writing table: %w", err)
	}

	fmt.Fprintf(w, "\nBank: %s, transactions: %d\n", result.Bank, len(result.Transactions))
	if summary := importer.FormatSkippedStats(result.Skipped); summary != "" {
		fmt.Fprintf(w, "Skipped %s\n", summary)
	}
	return nil
}
