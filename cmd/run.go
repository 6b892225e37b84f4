package cmd

import (
	"github.com/sjzsdu/docbundle/project"
	"github.com/sjzsdu/docbundle/project/git"
	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Update submodules, collect files and render PDFs",
	Args:  cobra.NoArgs,
	RunE:  runPipeline,
}

func init() {
	runCmd.Flags().BoolVar(&skipUpdate, "skip-update", false, "Do not update submodules before collecting")
	rootCmd.AddCommand(runCmd)
}

func runPipeline(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	opts := []project.BundlerOption{project.WithLogger(logger)}
	if !skipUpdate {
		updater, err := git.NewSubmoduleUpdater("", logger)
		if err != nil {
			return err
		}
		opts = append(opts, project.WithUpdater(updater))
	}

	report, err := project.NewBundler(cfg, opts...).Run(cmd.Context())
	if err != nil {
		return err
	}

	printReport(cmd, report)
	return nil
}
