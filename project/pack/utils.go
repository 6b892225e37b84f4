package pack

import (
	"os"
	"path/filepath"
	"strings"
)

// getLanguageFromExtension 根据文件扩展名返回对应的语言标识
func getLanguageFromExtension(ext string) string {
	ext = strings.ToLower(ext)
	langMap := map[string]string{
		".go":   "go",
		".py":   "python",
		".js":   "javascript",
		".ts":   "typescript",
		".jsx":  "jsx",
		".tsx":  "tsx",
		".sol":  "solidity",
		".rs":   "rust",
		".sh":   "bash",
		".yaml": "yaml",
		".yml":  "yaml",
		".json": "json",
		".toml": "toml",
		".html": "html",
		".css":  "css",
		".sql":  "sql",
		".md":   "markdown",
		".txt":  "text",
	}

	if lang, ok := langMap[ext]; ok {
		return lang
	}
	return ""
}

// openOutput 打开输出文件，truncate 为真时重新创建，否则追加
func openOutput(path string, truncate bool) (*os.File, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, err
		}
	}

	flag := os.O_CREATE | os.O_WRONLY
	if truncate {
		flag |= os.O_TRUNC
	} else {
		flag |= os.O_APPEND
	}
	return os.OpenFile(path, flag, 0644)
}

// samePath 判断两个路径是否指向同一位置
func samePath(a, b string) bool {
	absA, errA := filepath.Abs(a)
	absB, errB := filepath.Abs(b)
	if errA != nil || errB != nil {
		return filepath.Clean(a) == filepath.Clean(b)
	}
	return absA == absB
}
