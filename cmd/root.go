package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/sjzsdu/docbundle/config"
	"github.com/sjzsdu/docbundle/helper"
	"github.com/sjzsdu/docbundle/share"
	"github.com/spf13/cobra"
)

var (
	configFile string
	skipUpdate bool
	debugMode  bool

	logger *logrus.Logger
)

var rootCmd = &cobra.Command{
	Use:   share.BUILDNAME,
	Short: "Bundle submodule documentation into Markdown and PDF",
	Long: `docbundle updates the configured git submodules, concatenates their
documentation and source files into one Markdown file per source, and
renders every aggregate to PDF.

Running docbundle without a subcommand executes the whole pipeline.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},
	RunE: runPipeline,
}

// Execute 执行命令，所有错误在这里统一转换为退出码
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		stop()
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", share.DEFAULT_CONFIG_FILE, "Configuration file path")
	rootCmd.PersistentFlags().BoolVarP(&debugMode, "debug", "v", false, "Debug mode")
	rootCmd.Flags().BoolVar(&skipUpdate, "skip-update", false, "Do not update submodules before collecting")

	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		share.SetDebug(debugMode)
		logger = helper.NewLogger(cmd.ErrOrStderr())
		// .env 可选，用于 DOCBUNDLE_ 前缀的覆盖项
		if err := godotenv.Load(); err == nil {
			logger.Debug("Loaded .env")
		}
	}
}

// loadConfig 显式指定的配置文件必须可读；未指定且默认文件不存在时使用内置布局
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	explicit := cmd.Flags().Changed("config")
	if !explicit && !helper.Exists(configFile) {
		logger.Infof("%s not found, using built-in layout", configFile)
		return config.Default(), nil
	}

	cfg, err := config.Load(configFile)
	if err != nil {
		return config.Config{}, err
	}
	logger.Debugf("Using config file: %s", configFile)
	return cfg, nil
}
