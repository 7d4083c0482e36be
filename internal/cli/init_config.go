package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"ttsedit/internal/config"
	"ttsedit/internal/log"
)

func newInitConfigCmd(opts *rootOptions) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init-config",
		Short: "Write the default settings to the config file",
		Args:  cobra.NoArgs,
		// the file may not exist yet, so skip the root config load
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			log.SetOutput(io.Discard)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			path := config.Path(opts.configPath)
			if path == "" {
				return errors.New("no config location (pass --config)")
			}
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", path)
			}

			if err := config.Default().Save(path); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")

	return cmd
}
