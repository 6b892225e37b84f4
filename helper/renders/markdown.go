package renders

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/glamour"
)

// MarkdownRenderer 将聚合后的 Markdown 渲染到终端
type MarkdownRenderer struct {
	renderer *glamour.TermRenderer
}

// NewMarkdownRenderer 创建一个新的 Markdown 渲染器
// style 为空时自动选择终端配色
func NewMarkdownRenderer(style string, wordWrap int) (*MarkdownRenderer, error) {
	opts := []glamour.TermRendererOption{glamour.WithWordWrap(wordWrap)}
	if style == "" {
		opts = append(opts, glamour.WithAutoStyle())
	} else {
		opts = append(opts, glamour.WithStandardStyle(style))
	}

	renderer, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return nil, fmt.Errorf("初始化 Markdown 渲染器失败: %w", err)
	}
	return &MarkdownRenderer{renderer: renderer}, nil
}

// Render 渲染 Markdown 文本，连续空行压缩为一个
func (m *MarkdownRenderer) Render(content string) (string, error) {
	if !strings.HasSuffix(content, "\n") {
		content += "\n"
	}

	rendered, err := m.renderer.Render(content)
	if err != nil {
		return "", err
	}

	for strings.Contains(rendered, "\n\n\n") {
		rendered = strings.ReplaceAll(rendered, "\n\n\n", "\n\n")
	}
	if !strings.HasSuffix(rendered, "\n") {
		rendered += "\n"
	}
	return rendered, nil
}

// Preview 渲染后写入 w；渲染失败时原样输出
func (m *MarkdownRenderer) Preview(w io.Writer, content string) error {
	rendered, err := m.Render(content)
	if err != nil {
		_, werr := io.WriteString(w, content)
		return werr
	}
	_, err = io.WriteString(w, rendered)
	return err
}
