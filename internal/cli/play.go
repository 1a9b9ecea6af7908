package cli

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/Dicklesworthstone/splice/internal/config"
	"github.com/Dicklesworthstone/splice/internal/tui"
)

func newPlayCmd() *cobra.Command {
	var themeName string

	cmd := &cobra.Command{
		Use:   "play FILE",
		Short: "Play a storyboard timeline in the terminal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fd := os.Stdout.Fd()
			if !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd) {
				return fmt.Errorf("play needs a terminal; use 'splice inspect %s' for non-interactive output", args[0])
			}

			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if themeName != "" {
				cfg.Theme = themeName
				if err := cfg.Validate(); err != nil {
					return err
				}
			}
			return tui.Run(cfg, args[0])
		},
	}

	cmd.Flags().StringVar(&themeName, "theme", "", "palette override (mocha, latte, auto)")
	return cmd
}
