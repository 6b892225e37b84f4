package cmd

import (
	"fmt"

	"github.com/sjzsdu/docbundle/helper"
	"github.com/sjzsdu/docbundle/project/git"
	"github.com/spf13/cobra"
)

var submoduleCmd = &cobra.Command{
	Use:   "submodule",
	Short: "Manage documentation submodules",
}

var submoduleUpdateCmd = &cobra.Command{
	Use:   "update",
	Short: "Initialize submodules and update them to their tracked branches",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		updater, err := git.NewSubmoduleUpdater("", logger)
		if err != nil {
			return err
		}
		return updater.UpdateAll(cmd.Context())
	},
}

var submoduleAddCmd = &cobra.Command{
	Use:   "add <url> <path>",
	Short: "Add a submodule unless the path already exists",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		updater, err := git.NewSubmoduleUpdater("", logger)
		if err != nil {
			return err
		}
		_, err = updater.Add(cmd.Context(), args[0], args[1])
		return err
	},
}

var submoduleStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the commit each submodule is checked out at",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		root, ok := helper.FindGitRoot(".")
		if !ok {
			return fmt.Errorf("当前目录不在 git 仓库中")
		}

		statuses, err := git.Status(root)
		if err != nil {
			return err
		}
		for _, st := range statuses {
			fmt.Fprintln(cmd.OutOrStdout(), st.String())
		}
		return nil
	},
}

func init() {
	submoduleCmd.AddCommand(submoduleUpdateCmd, submoduleAddCmd, submoduleStatusCmd)
	rootCmd.AddCommand(submoduleCmd)
}
