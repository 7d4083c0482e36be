package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
	"ttsedit/internal/database"
)

func newHistoryCmd(opts *rootOptions) *cobra.Command {
	var (
		unitName string
		limit    int
	)

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List saved description edits, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.cfg.HistoryDB == "" {
				return errors.New("edit history is disabled (history_db is empty)")
			}
			journal, err := database.Open(opts.cfg.HistoryDB)
			if err != nil {
				return fmt.Errorf("opening history %s: %w", opts.cfg.HistoryDB, err)
			}
			defer journal.Close()

			edits, err := journal.Edits(unitName, limit)
			if err != nil {
				return err
			}
			if len(edits) == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "no edits recorded in %s\n", journal.Filename())
				return nil
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tWHEN\tUNIT\tPROFILE\tOBJECTS\tFILE")
			for _, edit := range edits {
				fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\n",
					edit.ID, edit.At.Local().Format(time.DateTime), edit.Unit, edit.Profile, indexList(edit.Indices), edit.File)
			}
			return tw.Flush()
		},
	}

	cmd.Flags().StringVar(&unitName, "unit", "", "only edits of this unit")
	cmd.Flags().IntVar(&limit, "limit", 20, "maximum number of edits (0 for all)")

	return cmd
}

func indexList(indices []int) string {
	parts := make([]string, len(indices))
	for i, index := range indices {
		parts[i] = strconv.Itoa(index)
	}
	return strings.Join(parts, ",")
}
