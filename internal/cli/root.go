// Package cli is the ttsedit command tree.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"ttsedit/internal/config"
	"ttsedit/internal/database"
	"ttsedit/internal/log"
)

// rootOptions is shared by every subcommand
type rootOptions struct {
	configPath string
	verbose    bool
	cfg        config.Config
}

// NewRootCommand builds the command tree. Without a subcommand it runs the
// editor.
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "ttsedit [file]",
		Short: "Tabletop Simulator unit description editor",
		Long: `ttsedit reads the unit descriptions of a Tabletop Simulator save file,
groups identical models into units and profiles, and edits their colored
stats, weapons and abilities blocks.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(opts.configPath)
			if err != nil {
				return err
			}
			opts.cfg = cfg

			if opts.verbose {
				log.SetOutput(cmd.ErrOrStderr())
			} else {
				log.SetOutput(io.Discard)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEdit(cmd, opts, args)
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "config file (default $"+config.EnvConfigPath+" or <user config dir>/ttsedit/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "log to stderr")

	rootCmd.AddCommand(newEditCmd(opts))
	rootCmd.AddCommand(newShowCmd(opts))
	rootCmd.AddCommand(newNormalizeCmd(opts))
	rootCmd.AddCommand(newTemplateCmd())
	rootCmd.AddCommand(newHistoryCmd(opts))
	rootCmd.AddCommand(newServeCmd(opts))
	rootCmd.AddCommand(newInitConfigCmd(opts))

	return rootCmd
}

// Execute runs the command tree and exits non-zero on failure
func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// openHistory opens the journal, or a no-op recorder when it is disabled
func openHistory(cfg config.Config) (database.History, error) {
	if cfg.HistoryDB == "" {
		return database.Nop{}, nil
	}
	journal, err := database.Open(cfg.HistoryDB)
	if err != nil {
		return nil, fmt.Errorf("opening history %s: %w", cfg.HistoryDB, err)
	}
	return journal, nil
}

// fileArg picks the save file from the arguments or the configured default
func fileArg(opts *rootOptions, args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	if opts.cfg.DefaultFile != "" {
		return opts.cfg.DefaultFile, nil
	}
	return "", fmt.Errorf("no save file given (pass one or set %s)", config.EnvDefaultFile)
}
