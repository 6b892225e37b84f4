package pack

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/sjzsdu/docbundle/share"
)

// Formatter 定义聚合文件中单个块的格式
type Formatter interface {
	Format(path string, content string) string
}

// MarkdownFormatter 原样拼接：头部行、空行、文件内容、空行
type MarkdownFormatter struct{}

// Format 格式化单个文件内容
func (m *MarkdownFormatter) Format(path string, content string) string {
	var builder strings.Builder
	builder.WriteString(fmt.Sprintf(share.FILE_HEADER, path))
	builder.WriteString(content)
	builder.WriteString(share.BLOCK_SEPARATOR)
	return builder.String()
}

// FencedFormatter 将文件内容包在代码块里，适合代码类源
type FencedFormatter struct{}

// Format 格式化单个文件内容为带语言标记的代码块
func (f *FencedFormatter) Format(path string, content string) string {
	var builder strings.Builder
	builder.WriteString(fmt.Sprintf(share.FILE_HEADER, path))
	builder.WriteString(fmt.Sprintf("```%s\n", getLanguageFromExtension(filepath.Ext(path))))
	builder.WriteString(content)
	if !strings.HasSuffix(content, "\n") {
		builder.WriteString("\n")
	}
	builder.WriteString("```")
	builder.WriteString(share.BLOCK_SEPARATOR)
	return builder.String()
}

// GetFormatter 根据格式名称获取对应的格式化器
func GetFormatter(format string) Formatter {
	switch strings.ToLower(format) {
	case "fenced", "code":
		return &FencedFormatter{}
	default:
		return &MarkdownFormatter{} // 默认原样拼接
	}
}
