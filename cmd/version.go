package cmd

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Printf("taskwell %s (%s/%s)\n", Version, runtime.GOOS, runtime.GOARCH)
		return nil
	},
}
