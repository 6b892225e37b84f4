package cmd

import (
	"fmt"

	"github.com/sjzsdu/docbundle/share"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "%s version: %s\n", share.BUILDNAME, share.VERSION)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
