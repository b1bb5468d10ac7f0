package commands

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/paragon-dev/paragon/internal/config"
	"github.com/paragon-dev/paragon/internal/export"
	"github.com/paragon-dev/paragon/internal/inbox"
	"github.com/paragon-dev/paragon/internal/importer"
	"github.com/paragon-dev/paragon/internal/importlog"
	"github.com/paragon-dev/paragon/internal/model"
)

// The ledger is the deduplicated record of every imported purchase. It lives in
// its own directory under output.dir so no statement export can overwrite it.
const (
	LedgerDir  = "ledger"
	LedgerFile = "transactions.csv"
)

// LedgerPath returns the ledger location for an output directory.
func LedgerPath(outDir string) string {
	return filepath.Join(outDir, LedgerDir, LedgerFile)
}

func newImportCommand(opts *globalOptions) *cobra.Command {
	var keep bool

	cmd := &cobra.Command{
		Use:   "import [directory]",
		Short: "Parse every statement waiting in the inbox",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			cfg, err := opts.loadConfig(cmd, absDir)
			if err != nil {
				return err
			}

			summary, err := runImport(cmd.Context(), absDir, cfg, keep)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), summary)
			return nil
		},
	}

	cmd.Flags().BoolVar(&keep, "keep", false, "leave imported files in the inbox")

	return cmd
}

// importResult is the outcome of importing one inbox file.
type importResult struct {
	file   inbox.File
	result model.ParseResult
	added  int
	err    error
}

func runImport(ctx context.Context, root string, cfg *config.Config, keep bool) (string, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	inboxDir := filepath.Join(root, cfg.Inbox.Dir)
	outDir := filepath.Join(root, cfg.Output.Dir)

	files, err := inbox.Scan(inboxDir)
	if err != nil {
		return "", err
	}
	if len(files) == 0 {
		return "Inbox is empty", nil
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return "", fmt.Errorf("creating output dir: %w", err)
	}

	ledger := export.NewLedger(LedgerPath(outDir))
	results := make([]importResult, len(files))
	sem := make(chan struct{}, cfg.Inbox.Workers)
	var wg sync.WaitGroup

	for i, f := range files {
		if ctx.Err() != nil {
			results[i] = importResult{file: f, err: ctx.Err()}
			continue
		}
		wg.Add(1)
		sem <- struct{}{}
		go func() {
			defer wg.Done()
			defer func() { <-sem }()
			results[i] = importFile(ctx, f, outDir, cfg.Input.Encoding, ledger)
		}()
	}
	wg.Wait()

	// Log and count in inbox order so the import log is deterministic.
	var (
		entries  []importlog.Entry
		imported []string
	)
	failed, txns, added := 0, 0, 0
	skipped := model.NewSkipStats()
	for _, r := range results {
		if r.err != nil {
			failed++
			log.Error().Err(r.err).Str("file", r.file.Name).Msg("import failed")
			continue
		}

		summary := importer.FormatSkippedStats(r.result.Skipped)
		log.Info().
			Str("file", r.file.Name).
			Str("bank", string(r.result.Bank)).
			Int("transactions", len(r.result.Transactions)).
			Int("new", r.added).
			Str("skipped", summary).
			Msg("imported statement")

		entries = append(entries, importlog.Entry{
			Timestamp:    time.Now(),
			File:         r.file.Name,
			Bank:         r.result.Bank,
			Transactions: len(r.result.Transactions),
			Skipped:      r.result.Skipped.Count,
			Summary:      summary,
		})
		txns += len(r.result.Transactions)
		added += r.added
		skipped.Merge(r.result.Skipped)
		imported = append(imported, r.file.Name)
	}

	if len(entries) > 0 {
		if err := importlog.Append(root, entries); err != nil {
			return "", fmt.Errorf("writing import log: %w", err)
		}
	}

	// Files are moved only once they are logged; a failed move leaves the file in the inbox.
	var errs []error
	if !keep {
		for _, name := range imported {
			if _, err := inbox.MarkProcessed(inboxDir, name); err != nil {
				log.Error().Err(err).Str("file", name).Msg("move failed")
				errs = append(errs, err)
			}
		}
	}

	summary := fmt.Sprintf("Imported %d of %d files: %d transactions, %d new", len(files)-failed, len(files), txns, added)
	if s := importer.FormatSkippedStats(skipped); s != "" {
		summary += "\nSkipped " + s
	}
	if failed > 0 {
		errs = append([]error{fmt.Errorf("%s; %d failed", summary, failed)}, errs...)
	}
	return summary, errors.Join(errs...)
}

func importFile(ctx context.Context, f inbox.File, outDir, encoding string, store model.Store) importResult {
	res := importResult{file: f}

	text, err := readStatement(f.Path, encoding)
	if err != nil {
		res.err = err
		return res
	}
	res.result = importer.Parse(text)

	outPath := filepath.Join(outDir, strings.TrimSuffix(f.Name, filepath.Ext(f.Name))+".csv")
	out, err := os.Create(outPath)
	if err != nil {
		res.err = fmt.Errorf("creating %s: %w", outPath, err)
		return res
	}
	defer out.Close()

	if err := export.WriteTransactions(out, res.result.Bank, res.result.Transactions); err != nil {
		res.err = fmt.Errorf("writing %s: %w", outPath, err)
		return res
	}
	if err := out.Close(); err != nil {
		res.err = fmt.Errorf("closing %s: %w", outPath, err)
		return res
	}

	res.added, err = store.SaveBatch(ctx, res.result.Bank, res.result.Transactions)
	if err != nil {
		res.err = fmt.Errorf("saving %s: %w", f.Name, err)
	}
	return res
}
