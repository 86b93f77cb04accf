package cmd

import (
	"github.com/spf13/cobra"

	"github.com/taskwell/taskwell/internal/ui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Open the interactive terminal UI",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, _, ed, closer, err := setup()
		if err != nil {
			return err
		}
		defer closer()

		return ui.Run(cmd.Context(), ed, cfg)
	},
}
