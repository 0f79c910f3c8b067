package cmd

import (
	"os/signal"
	"syscall"

	"github.com/compozy/k8s-demo/internal/server"
	"github.com/spf13/cobra"
)

// NewServeCmd creates the serve command
func NewServeCmd(c *container) *cobra.Command {
	var listenAddr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the demo page over HTTP",
		Long: `Serve the demo page over HTTP until SIGINT or SIGTERM.

Routes:
- GET /         the page
- GET /healthz  liveness probe
- GET /readyz   readiness probe
- GET /version  version label as JSON`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			defer c.sync()
			cfg := *c.cfg
			if listenAddr != "" {
				cfg.ListenAddr = listenAddr
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return server.New(&cfg, c.renderer, c.view, c.log).Run(ctx)
		},
	}
	cmd.Flags().StringVar(&listenAddr, "listen", "", "Address to listen on (overrides listen_addr)")
	return cmd
}
