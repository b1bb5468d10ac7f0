package commands

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/paragon-dev/paragon/internal/config"
	"github.com/paragon-dev/paragon/internal/export"
	"github.com/paragon-dev/paragon/internal/importer"
	"github.com/paragon-dev/paragon/internal/model"
)

func newParseCommand(opts *globalOptions) *cobra.Command {
	var output, encoding string

	cmd := &cobra.Command{
		Use:   "parse <file>",
		Short: "Extract the purchases from a statement",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig(cmd, ".")
			if err != nil {
				return err
			}
			if output == "" {
				output = cfg.Output.Format
			}
			if encoding == "" {
				encoding = cfg.Input.Encoding
			}
			return runParse(cmd.OutOrStdout(), args[0], output, encoding)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output format: table, csv, json (default from config)")
	cmd.Flags().StringVar(&encoding, "encoding", "", "input encoding: auto, utf-8, windows-1250 (default from config)")

	return cmd
}

func runParse(w io.Writer, path, output, encoding string) error {
	text, err := readStatement(path, encoding)
	if err != nil {
		return err
	}

	result := importer.Parse(text)
	log.Info().
		Str("file", filepath.Base(path)).
		Str("bank", string(result.Bank)).
		Bool("known", result.Bank.Known()).
		Int("transactions", len(result.Transactions)).
		Int("skipped", result.Skipped.Count).
		Msg("parsed statement")

	return writeResult(w, result, output)
}

func writeResult(w io.Writer, result model.ParseResult, format string) error {
	switch format {
	case config.FormatTable:
		return export.WriteTable(w, result)
	case config.FormatCSV:
		return export.WriteTransactions(w, result.Bank, result.Transactions)
	case config.FormatJSON:
		return export.WriteJSON(w, result)
	default:
		return fmt.Errorf("unsupported output format %q", format)
	}
}
