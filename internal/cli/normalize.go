package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"ttsedit/internal/assets"
	"ttsedit/internal/log"
)

func newNormalizeCmd(opts *rootOptions) *cobra.Command {
	var (
		unitName string
		dryRun   bool
		output   string
	)

	cmd := &cobra.Command{
		Use:   "normalize [file]",
		Short: "Rewrite every profile description in canonical form",
		Long: `normalize parses each profile description and writes it back in the
canonical layout. Every changed profile is recorded in the edit history.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			file, err := fileArg(opts, args)
			if err != nil {
				return err
			}
			lib, err := assets.OpenFile(file)
			if err != nil {
				return err
			}
			if unitName != "" {
				if _, _, ok := lib.Find(unitName); !ok {
					return fmt.Errorf("unit %q not found in %s", unitName, file)
				}
			}

			edits, err := lib.NormalizeAll(unitName)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, edit := range edits {
				fmt.Fprintf(out, "%s / %s: %d object(s)\n", edit.Unit, edit.Profile, len(edit.Indices))
			}
			fmt.Fprintf(out, "%d profile(s) changed\n", len(edits))

			if dryRun || len(edits) == 0 {
				return nil
			}

			history, err := openHistory(opts.cfg)
			if err != nil {
				return err
			}
			defer history.Close()

			if output != "" {
				err = lib.Document().SaveFile(output, false)
			} else {
				err = lib.Save(opts.cfg.Backup)
			}
			if err != nil {
				return err
			}

			for _, edit := range edits {
				if output != "" {
					edit.File = output
				}
				if err := history.RecordEdit(edit); err != nil {
					log.Warn("journal write failed", "unit", edit.Unit, "error", err)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&unitName, "unit", "", "only normalize this unit (case-insensitive)")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "report changes without writing")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write to this file instead of in place")

	return cmd
}
