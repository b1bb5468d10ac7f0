package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/paragon-dev/paragon/internal/buildinfo"
	"github.com/paragon-dev/paragon/internal/config"
	"github.com/paragon-dev/paragon/internal/decode"
)

// globalOptions holds the persistent flags shared by every subcommand.
type globalOptions struct {
	configPath string
	logLevel   string
}

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	opts := &globalOptions{}

	rootCmd := &cobra.Command{
		Use:     "paragon",
		Short:   "Turn Polish bank statement exports into purchase lists",
		Version: buildinfo.String(),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setupLogger(cmd, opts.logLevel)
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "config file (default <project>/"+config.FileName+")")
	rootCmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "log level: trace, debug, info, warn, error, disabled")

	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newDetectCommand(opts))
	rootCmd.AddCommand(newParseCommand(opts))
	rootCmd.AddCommand(newImportCommand(opts))

	return rootCmd
}

// setupLogger points the global zerolog logger at the command's stderr.
// An empty level keeps info.
func setupLogger(cmd *cobra.Command, level string) error {
	if level == "" {
		level = zerolog.LevelInfoValue
	}
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("parsing log level: %w", err)
	}
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr(), NoColor: true}).
		Level(lvl).
		With().Timestamp().Logger()
	return nil
}

// loadConfig reads the config for the project rooted at root. Without
// --config, a missing <root>/paragon.yaml yields the defaults. The config's
// log level applies unless --log-level was given.
func (o *globalOptions) loadConfig(cmd *cobra.Command, root string) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if o.configPath != "" {
		cfg, err = config.Load(o.configPath)
	} else {
		cfg, err = config.LoadOrDefault(filepath.Join(root, config.FileName))
	}
	if err != nil {
		return nil, err
	}

	if o.logLevel == "" {
		if err := setupLogger(cmd, cfg.Log.Level); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

// readStatement reads and decodes one statement file.
func readStatement(path, encoding string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	text, err := decode.Bytes(data, encoding)
	if err != nil {
		return "", fmt.Errorf("decoding %s: %w", path, err)
	}
	log.Debug().Str("file", path).Str("encoding", encoding).Str("detected", decode.Detect(data)).Int("bytes", len(data)).Msg("read statement")
	return text, nil
}
