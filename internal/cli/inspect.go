package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Dicklesworthstone/splice/internal/axis"
	"github.com/Dicklesworthstone/splice/internal/config"
	"github.com/Dicklesworthstone/splice/internal/project"
)

func newInspectCmd() *cobra.Command {
	var width int

	cmd := &cobra.Command{
		Use:   "inspect FILE",
		Short: "Print a storyboard summary with pixel offsets at a given width",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := project.Load(args[0])
			if err != nil {
				return err
			}

			cfg, err := config.Load()
			if err != nil {
				return err
			}

			ax := axis.New(p.Duration, float64(width), cfg.PaddingLeft, cfg.PaddingRight)
			out := cmd.OutOrStdout()

			fmt.Fprintf(out, "title:    %s\n", p.Title)
			fmt.Fprintf(out, "duration: %s (%.2fs)\n", axis.FormatTime(p.Duration), p.Duration)
			fmt.Fprintf(out, "axis:     %.0fpx wide, %.2f px/s\n\n", ax.AvailableWidthPx, ax.PixelsPerSecond())

			for _, tr := range p.Tracks {
				fmt.Fprintf(out, "[%s] %s\n", tr.Kind, tr.Label)
				for _, b := range tr.Blocks {
					flag := ""
					if b.Interactive {
						flag = "  (interactive)"
					}
					fmt.Fprintf(out, "  %6s - %-6s  %5.0f..%-5.0fpx  %s%s\n",
						axis.FormatTime(b.Start), axis.FormatTime(b.End()),
						ax.TimeToPixels(b.Start), ax.TimeToPixels(b.End()),
						b.Label, flag)
				}
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&width, "width", 80, "container width in cells")
	return cmd
}
