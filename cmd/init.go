package cmd

import (
	"fmt"

	"github.com/sjzsdu/docbundle/config"
	"github.com/sjzsdu/docbundle/helper"
	"github.com/spf13/cobra"
)

var forceInit bool

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the built-in layout to the configuration file",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if helper.Exists(configFile) && !forceInit {
			return fmt.Errorf("%s already exists, use --force to overwrite", configFile)
		}
		if err := config.Save(config.Default(), configFile); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", configFile)
		return nil
	},
}

func init() {
	initCmd.Flags().BoolVarP(&forceInit, "force", "f", false, "Overwrite an existing configuration file")
	rootCmd.AddCommand(initCmd)
}
