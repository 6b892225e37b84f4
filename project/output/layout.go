package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/jung-kurt/gofpdf"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

const (
	bodyFont   = "Helvetica"
	codeFont   = "Courier"
	bodySize   = 10.0
	codeSize   = 8.5
	lineHeight = 5.0
	codeLine   = 4.0
	indentStep = 6.0
	tabWidth   = 4
)

// fontSet 正文与代码使用的字体族，以及写入前的文本转换
type fontSet struct {
	body string
	code string
	tr   func(string) string
}

// headingSizes 各级标题的字号，下标为标题级别
var headingSizes = [...]float64{0, 18, 15, 13, 12, 11, 10}

// layout 将 goldmark 语法树逐块写入 gofpdf 文档
type layout struct {
	pdf       *gofpdf.Fpdf
	src       []byte
	fonts     fontSet
	tocLevel  int
	lastLevel int
	margin    float64
	indent    float64
}

func newLayout(pdf *gofpdf.Fpdf, src []byte, tocLevel int, fonts fontSet) *layout {
	left, _, _, _ := pdf.GetMargins()
	return &layout{
		pdf:       pdf,
		src:       src,
		fonts:     fonts,
		tocLevel:  tocLevel,
		lastLevel: -1,
		margin:    left,
	}
}

// render 解析 Markdown 并写入全部内容
func (l *layout) render() {
	doc := goldmark.New().Parser().Parse(text.NewReader(l.src))
	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		l.block(n)
	}
}

func (l *layout) block(n ast.Node) {
	switch node := n.(type) {
	case *ast.Heading:
		l.heading(node)
	case *ast.Paragraph, *ast.TextBlock:
		l.paragraph(l.inlineText(node))
	case *ast.FencedCodeBlock:
		l.code(l.rawLines(node))
	case *ast.CodeBlock:
		l.code(l.rawLines(node))
	case *ast.HTMLBlock:
		l.code(l.rawLines(node))
	case *ast.List:
		l.list(node)
	case *ast.Blockquote:
		l.indented(func() {
			for c := node.FirstChild(); c != nil; c = c.NextSibling() {
				l.block(c)
			}
		})
	case *ast.ThematicBreak:
		l.rule()
	default:
		for c := n.FirstChild(); c != nil; c = c.NextSibling() {
			l.block(c)
		}
	}
}

func (l *layout) heading(h *ast.Heading) {
	title := l.inlineText(h)
	size := headingSizes[len(headingSizes)-1]
	if h.Level < len(headingSizes) {
		size = headingSizes[h.Level]
	}

	l.pdf.Ln(2)
	// 书签文本按当前字体编码，先切换字体
	l.pdf.SetFont(l.fonts.body, "B", size)
	if h.Level <= l.tocLevel {
		// 大纲层级只能逐级加深
		level := h.Level - 1
		if level > l.lastLevel+1 {
			level = l.lastLevel + 1
		}
		l.lastLevel = level
		l.pdf.Bookmark(l.tr(title), level, -1)
	}
	l.pdf.MultiCell(0, size*0.5, l.tr(title), "", "L", false)
	l.pdf.Ln(1)
}

func (l *layout) paragraph(s string) {
	if strings.TrimSpace(s) == "" {
		return
	}
	l.pdf.SetFont(l.fonts.body, "", bodySize)
	l.pdf.MultiCell(0, lineHeight, l.tr(s), "", "L", false)
	l.pdf.Ln(1.5)
}

func (l *layout) code(lines []string) {
	if len(lines) == 0 {
		return
	}
	l.pdf.SetFont(l.fonts.code, "", codeSize)
	l.pdf.SetFillColor(245, 245, 245)
	body := strings.Join(lines, "\n")
	l.pdf.MultiCell(0, codeLine, l.tr(body), "", "L", true)
	l.pdf.Ln(1.5)
}

func (l *layout) list(list *ast.List) {
	num := list.Start
	if num == 0 {
		num = 1
	}
	l.indented(func() {
		for item := list.FirstChild(); item != nil; item = item.NextSibling() {
			marker := "-"
			if list.IsOrdered() {
				marker = fmt.Sprintf("%d.", num)
				num++
			}
			l.pdf.SetFont(l.fonts.body, "", bodySize)
			l.pdf.CellFormat(indentStep, lineHeight, marker, "", 0, "L", false, 0, "")

			if item.FirstChild() == nil {
				l.pdf.Ln(lineHeight)
				continue
			}
			// 条目首段与标记同行
			l.indented(func() {
				for c := item.FirstChild(); c != nil; c = c.NextSibling() {
					l.block(c)
				}
			})
		}
	})
}

func (l *layout) rule() {
	left, _, right, _ := l.pdf.GetMargins()
	width, _ := l.pdf.GetPageSize()
	y := l.pdf.GetY() + 2
	l.pdf.SetDrawColor(180, 180, 180)
	l.pdf.Line(left, y, width-right, y)
	l.pdf.Ln(4)
}

func (l *layout) tr(s string) string {
	return l.fonts.tr(s)
}

// indented 在更深一级缩进下执行 fn
func (l *layout) indented(fn func()) {
	l.indent += indentStep
	l.pdf.SetLeftMargin(l.margin + l.indent)
	fn()
	l.indent -= indentStep
	l.pdf.SetLeftMargin(l.margin + l.indent)
	l.pdf.SetX(l.margin + l.indent)
}

// inlineText 拼接节点下所有行内文本
func (l *layout) inlineText(n ast.Node) string {
	var buf bytes.Buffer
	_ = ast.Walk(n, func(c ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch t := c.(type) {
		case *ast.Text:
			buf.Write(t.Segment.Value(l.src))
			if t.HardLineBreak() {
				buf.WriteByte('\n')
			} else if t.SoftLineBreak() {
				buf.WriteByte(' ')
			}
		case *ast.String:
			buf.Write(t.Value)
		case *ast.AutoLink:
			buf.Write(t.Label(l.src))
			return ast.WalkSkipChildren, nil
		case *ast.RawHTML:
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})
	return buf.String()
}

// rawLines 代码块等原始行，制表符展开为空格
func (l *layout) rawLines(n ast.Node) []string {
	lines := n.Lines()
	result := make([]string, 0, lines.Len())
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		line := strings.TrimRight(string(seg.Value(l.src)), "\r\n")
		result = append(result, strings.ReplaceAll(line, "\t", strings.Repeat(" ", tabWidth)))
	}
	return result
}
