package commands

import (
	"fmt"
	"path/filepath"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/paragon-dev/paragon/internal/importer"
)

func newDetectCommand(opts *globalOptions) *cobra.Command {
	var encoding string

	cmd := &cobra.Command{
		Use:   "detect <file>",
		Short: "Print the bank format of a statement",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig(cmd, ".")
			if err != nil {
				return err
			}
			if encoding == "" {
				encoding = cfg.Input.Encoding
			}

			text, err := readStatement(args[0], encoding)
			if err != nil {
				return err
			}

			bank := importer.Detect(text)
			log.Debug().Str("file", filepath.Base(args[0])).Str("bank", string(bank)).Msg("detected format")
			fmt.Fprintln(cmd.OutOrStdout(), bank)
			return nil
		},
	}

	cmd.Flags().StringVar(&encoding, "encoding", "", "input encoding: auto, utf-8, windows-1250 (default from config)")

	return cmd
}
