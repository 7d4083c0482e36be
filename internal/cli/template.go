package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"ttsedit/internal/description"
)

func newTemplateCmd() *cobra.Command {
	valid := make([]string, len(description.AllSections))
	for i, s := range description.AllSections {
		valid[i] = s.String()
	}

	return &cobra.Command{
		Use:       "template <stats|ranged|melee|abilities>",
		Short:     "Print a skeleton block for a section",
		Args:      cobra.ExactArgs(1),
		ValidArgs: valid,
		RunE: func(cmd *cobra.Command, args []string) error {
			section, ok := description.ParseSection(args[0])
			if !ok {
				return fmt.Errorf("unknown section %q (want one of %v)", args[0], valid)
			}
			fmt.Fprint(cmd.OutOrStdout(), description.Template(section))
			return nil
		},
	}
}
