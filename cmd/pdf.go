package cmd

import (
	"github.com/sjzsdu/docbundle/project"
	"github.com/sjzsdu/docbundle/project/output"
	"github.com/spf13/cobra"
)

var pdfCmd = &cobra.Command{
	Use:   "pdf [files...]",
	Short: "Render Markdown aggregates to PDF",
	Long:  "Render the given Markdown files, or every configured aggregate when none are given, into the PDF directory",
	RunE:  runPDF,
}

func init() {
	rootCmd.AddCommand(pdfCmd)
}

func runPDF(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	paths := args
	if len(paths) == 0 {
		if paths, err = cfg.Aggregates(); err != nil {
			return err
		}
	}

	converter := output.NewPDFConverter(cfg.PDFOutputDir(), logger)
	converter.FontPath = cfg.PDFFont
	result, err := converter.RenderAll(paths)
	if err != nil {
		return err
	}

	printReport(cmd, project.Report{PDF: result})
	return nil
}
