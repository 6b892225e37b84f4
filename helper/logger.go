package helper

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/sjzsdu/docbundle/share"
)

// NewLogger 创建命令行使用的日志器，调试模式下输出 Debug 级别
func NewLogger(out io.Writer) *logrus.Logger {
	if out == nil {
		out = os.Stderr
	}
	logger := logrus.New()
	logger.SetOutput(out)
	logger.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp:       !share.IsDebug(),
		DisableLevelTruncation: true,
		PadLevelText:           true,
	})
	if share.IsDebug() {
		logger.SetLevel(logrus.DebugLevel)
	} else {
		logger.SetLevel(logrus.InfoLevel)
	}
	return logger
}

// DiscardLogger 返回丢弃所有输出的日志器
func DiscardLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}
