package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"ttsedit/internal/assets"
	"ttsedit/internal/log"
	"ttsedit/internal/theme"
	"ttsedit/internal/tui"
)

// ErrNoTerminal is returned when the editor is started without a TTY
var ErrNoTerminal = errors.New("the editor requires a terminal")

func newEditCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "edit [file]",
		Short: "Edit unit descriptions in the terminal",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEdit(cmd, opts, args)
		},
	}
}

func runEdit(cmd *cobra.Command, opts *rootOptions, args []string) error {
	file, err := fileArg(opts, args)
	if err != nil {
		return err
	}

	fd := os.Stdout.Fd()
	if !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd) {
		return ErrNoTerminal
	}

	// tview owns the terminal, so logs always go to the file
	if err := log.SetFileOutput(opts.cfg.LogFile); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: could not open log file %s: %v\n", opts.cfg.LogFile, err)
	}
	defer log.Close()

	if opts.cfg.Theme != "" {
		if err := theme.GetThemeManager().SetTheme(opts.cfg.Theme); err != nil {
			return err
		}
	}

	lib, err := assets.OpenFile(file)
	if err != nil {
		return err
	}

	history, err := openHistory(opts.cfg)
	if err != nil {
		return err
	}
	defer history.Close()

	app := tui.NewApplication(tui.Options{
		Library: lib,
		History: history,
		Backup:  opts.cfg.Backup,
	})
	log.Info("editor started", "file", file, "units", len(lib.Units()))
	return app.Run()
}
