package helper

import (
	"os"
	"path/filepath"
	"strings"
)

// Exists 路径是否存在
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// IsDir 路径是否为已存在的目录
func IsDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// PDFName 由 Markdown 文件路径得到 PDF 文件名（仅文件名部分）
func PDFName(mdPath string) string {
	base := filepath.Base(mdPath)
	if strings.HasSuffix(base, ".md") {
		return strings.TrimSuffix(base, ".md") + ".pdf"
	}
	return base + ".pdf"
}

// HasAnySuffix 文件名是否以任一后缀结尾，大小写敏感
func HasAnySuffix(name string, suffixes []string) bool {
	for _, suffix := range suffixes {
		if suffix != "" && strings.HasSuffix(name, suffix) {
			return true
		}
	}
	return false
}
