package cmd

import (
	"fmt"
	"os"

	"github.com/sjzsdu/docbundle/helper/renders"
	"github.com/spf13/cobra"
)

var (
	previewStyle string
	previewWidth int
)

var previewCmd = &cobra.Command{
	Use:   "preview <file.md>",
	Short: "Render a Markdown aggregate in the terminal",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		content, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("读取 %s 失败: %w", args[0], err)
		}

		renderer, err := renders.NewMarkdownRenderer(previewStyle, previewWidth)
		if err != nil {
			return err
		}
		return renderer.Preview(cmd.OutOrStdout(), string(content))
	},
}

func init() {
	previewCmd.Flags().StringVar(&previewStyle, "style", "", "glamour style (dark, light, notty); detected from the terminal by default")
	previewCmd.Flags().IntVar(&previewWidth, "width", 120, "Word wrap width")
	rootCmd.AddCommand(previewCmd)
}
