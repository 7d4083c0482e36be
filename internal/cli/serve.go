package cli

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"ttsedit/internal/assets"
	"ttsedit/internal/log"
	"ttsedit/internal/server"
)

func newServeCmd(opts *rootOptions) *cobra.Command {
	var listen string

	cmd := &cobra.Command{
		Use:   "serve [file]",
		Short: "Serve the description codec as a JSON API",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log.SetOutput(cmd.ErrOrStderr())

			var lib *assets.Library
			if file, err := fileArg(opts, args); err == nil {
				if lib, err = assets.OpenFile(file); err != nil {
					return err
				}
			}

			addr := listen
			if addr == "" {
				addr = opts.cfg.Listen
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return server.New(lib).ListenAndServe(ctx, addr)
		},
	}

	cmd.Flags().StringVar(&listen, "listen", "", "address to listen on (default from config)")

	return cmd
}
