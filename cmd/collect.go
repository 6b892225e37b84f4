package cmd

import (
	"fmt"

	"github.com/sjzsdu/docbundle/project"
	"github.com/spf13/cobra"
)

var collectCmd = &cobra.Command{
	Use:   "collect",
	Short: "Collect files into Markdown aggregates",
	Long:  "Collect the configured files into one Markdown file per source, without updating submodules or rendering PDFs",
	Args:  cobra.NoArgs,
	RunE:  runCollect,
}

func init() {
	rootCmd.AddCommand(collectCmd)
}

func runCollect(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	report, err := project.NewBundler(cfg, project.WithLogger(logger), project.WithoutPDF()).Run(cmd.Context())
	if err != nil {
		return err
	}

	printReport(cmd, report)
	return nil
}

// printReport 输出运行汇总
func printReport(cmd *cobra.Command, report project.Report) {
	out := cmd.OutOrStdout()
	for _, path := range report.Aggregates {
		fmt.Fprintf(out, "%s: %d files\n", path, report.Blocks[path])
	}
	for _, path := range report.PDF.Rendered {
		fmt.Fprintf(out, "%s\n", path)
	}
	if n := len(report.SkippedFolders); n > 0 {
		fmt.Fprintf(out, "Skipped %d missing folders\n", n)
	}
	if n := len(report.PDF.Failed); n > 0 {
		fmt.Fprintf(out, "Failed to render %d PDFs\n", n)
	}
}
