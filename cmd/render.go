package cmd

import (
	"fmt"

	"github.com/compozy/k8s-demo/internal/usecase"
	"github.com/spf13/cobra"
)

// NewRenderCmd creates the render command
func NewRenderCmd(c *container) *cobra.Command {
	var (
		output   string
		toConfig bool
		fragment bool
	)
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the demo page to stdout or a directory",
		Long: `Render the demo page.

Without --output the HTML document is written to stdout. With --output DIR
(or --export, which uses output_dir from the configuration) the document is
written atomically to DIR/index.html under an exclusive lock.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			defer c.sync()
			dir := output
			if dir == "" && toConfig {
				dir = c.cfg.OutputDir
			}
			if dir == "" {
				if fragment {
					return c.renderer.RenderFragment(cmd.OutOrStdout(), c.view)
				}
				return c.renderer.RenderDocument(cmd.OutOrStdout(), c.view)
			}
			if fragment {
				return fmt.Errorf("--fragment cannot be combined with a directory export")
			}
			uc := &usecase.ExportPageUseCase{
				FS:       c.fsRepo,
				Renderer: c.renderer,
				Locker:   c.locker,
				Logger:   c.log,
			}
			path, err := uc.Execute(cmd.Context(), c.view, dir)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "Directory to export index.html into")
	cmd.Flags().BoolVar(&toConfig, "export", false, "Export into the configured output_dir")
	cmd.Flags().BoolVar(&fragment, "fragment", false, "Write only the page fragment (stdout only)")
	return cmd
}
