package output

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jung-kurt/gofpdf"
	"github.com/sirupsen/logrus"
	"github.com/sjzsdu/docbundle/helper"
	"github.com/sjzsdu/docbundle/share"
)

// PDFConverter 将聚合后的 Markdown 文件逐个渲染为 PDF
type PDFConverter struct {
	// OutputDir PDF 输出目录，不存在时自动创建
	OutputDir string
	// TOCLevel 进入 PDF 大纲的最大标题级别
	TOCLevel int
	// Author 作者元数据
	Author string
	// FontPath 可选的 TrueType 字体文件，为空时使用内置字体，只能显示 cp1252 字符
	FontPath string

	logger logrus.FieldLogger
}

// RenderResult 一次批量渲染的结果
type RenderResult struct {
	Rendered []string
	Failed   map[string]error
}

// NewPDFConverter 创建 PDF 转换器
func NewPDFConverter(outputDir string, logger logrus.FieldLogger) *PDFConverter {
	if logger == nil {
		logger = helper.DiscardLogger()
	}
	return &PDFConverter{
		OutputDir: outputDir,
		TOCLevel:  share.TOC_LEVEL,
		Author:    share.PDF_AUTHOR,
		logger:    logger,
	}
}

// RenderAll 为每个 Markdown 文件生成一个 PDF。单个文件失败只记录，不影响其他文件。
// 仅在无法创建输出目录时返回错误。
func (c *PDFConverter) RenderAll(paths []string) (RenderResult, error) {
	result := RenderResult{Failed: make(map[string]error)}
	if err := os.MkdirAll(c.OutputDir, 0755); err != nil {
		return result, fmt.Errorf("创建 PDF 目录 %s 失败: %w", c.OutputDir, err)
	}

	for _, path := range paths {
		out, err := c.Convert(path)
		if err != nil {
			c.logger.WithError(err).Errorf("Failed to generate PDF for %s", path)
			result.Failed[path] = err
			continue
		}
		c.logger.Infof("Generated PDF: %s", out)
		result.Rendered = append(result.Rendered, out)
	}
	return result, nil
}

// Convert 渲染单个 Markdown 文件，返回生成的 PDF 路径
func (c *PDFConverter) Convert(mdPath string) (string, error) {
	content, err := os.ReadFile(mdPath)
	if err != nil {
		return "", fmt.Errorf("读取 %s 失败: %w", mdPath, err)
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	replaced := 0
	fonts := coreFonts(pdf, &replaced)
	if c.FontPath != "" {
		if fonts, err = utf8Fonts(pdf, c.FontPath); err != nil {
			return "", err
		}
	}

	pdf.SetTitle(fmt.Sprintf("Documentation for %s", mdPath), true)
	pdf.SetAuthor(c.Author, true)
	pdf.SetCreator(share.BUILDNAME+" "+share.VERSION, true)
	pdf.SetAutoPageBreak(true, 15)
	pdf.SetFooterFunc(func() {
		pdf.SetY(-12)
		pdf.SetFont(fonts.body, "I", 8)
		pdf.CellFormat(0, 8, fmt.Sprintf("%d", pdf.PageNo()), "", 0, "C", false, 0, "")
	})
	pdf.AddPage()

	newLayout(pdf, content, c.TOCLevel, fonts).render()
	if replaced > 0 {
		c.logger.WithField("chars", replaced).Warnf("%s contains characters the built-in fonts cannot show; set pdf_font to a TrueType font", mdPath)
	}

	output := filepath.Join(c.OutputDir, helper.PDFName(mdPath))
	if err := pdf.OutputFileAndClose(output); err != nil {
		return "", fmt.Errorf("写入 %s 失败: %w", output, err)
	}
	return output, nil
}
