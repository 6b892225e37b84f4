package output

import (
	"fmt"
	"os"
	"strings"

	"github.com/jung-kurt/gofpdf"
)

// utf8Family 通过 pdf_font 加载的 TrueType 字体族名
const utf8Family = "docbundle"

// coreFonts 使用 PDF 内置字体。cp1252 以外的字符写为 "?"，并累加到 replaced。
func coreFonts(pdf *gofpdf.Fpdf, replaced *int) fontSet {
	translate := pdf.UnicodeTranslatorFromDescriptor("")
	return fontSet{
		body: bodyFont,
		code: codeFont,
		tr: func(s string) string {
			var b strings.Builder
			for _, r := range s {
				if r < 0x80 {
					b.WriteRune(r)
					continue
				}
				// 无法映射的字符被转换为 "."
				c := translate(string(r))
				if c == "." {
					*replaced++
					c = "?"
				}
				b.WriteString(c)
			}
			return b.String()
		},
	}
}

// utf8Fonts 从 TrueType 文件加载字体，正文、标题、页脚和代码都使用它，文本原样写入
func utf8Fonts(pdf *gofpdf.Fpdf, path string) (fontSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return fontSet{}, fmt.Errorf("读取字体 %s 失败: %w", path, err)
	}
	for _, style := range []string{"", "B", "I"} {
		pdf.AddUTF8FontFromBytes(utf8Family, style, data)
	}
	if err := pdf.Error(); err != nil {
		return fontSet{}, fmt.Errorf("加载字体 %s 失败: %w", path, err)
	}
	return fontSet{
		body: utf8Family,
		code: utf8Family,
		tr:   func(s string) string { return s },
	}, nil
}
