package cmd

import (
	"context"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "k8s-demo",
	Short: "Serve the Angular K8s demo page",
	Long: `k8s-demo renders the demo landing page, either over HTTP for a
Kubernetes deployment or as a static index.html export.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() error {
	return rootCmd.ExecuteContext(context.Background())
}
