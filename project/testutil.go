package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sjzsdu/docbundle/config"
)

// ExampleWorkspace 测试用的工作区：两个子模块目录及对应配置
type ExampleWorkspace struct {
	// RootPath 工作区根目录
	RootPath string
	// Config 指向 RootPath 下各目录的配置
	Config config.Config
}

// CreateExampleWorkspace 创建一个与默认布局一致的示例工作区
// hardhat 模板故意缺少 tasks 目录，用于验证缺失目录被跳过
func CreateExampleWorkspace(t *testing.T) *ExampleWorkspace {
	t.Helper()
	root := t.TempDir()

	files := map[string]string{
		"modules/fhevm/docs/README.md":                   "# fhEVM docs\n",
		"modules/fhevm/docs/getting_started/overview.md": "## Overview\n\nEncrypted types.\n",
		"modules/fhevm/docs/guides/decrypt.md":           "## Decryption\n\nUse the gateway.\n",
		"modules/fhevm/docs/assets/logo.png":             "\x89PNG",
		"modules/hardhat/README.md":                      "# Hardhat Template\n",
		"modules/hardhat/contracts/Counter.sol":          "contract Counter {}\n",
		"modules/hardhat/contracts/lib/Math.sol":         "library Math {}\n",
		"modules/hardhat/deploy/deploy.ts":               "export default async () => {};\n",
		"modules/hardhat/test/Counter.ts":                "describe('Counter', () => {});\n",
		"modules/hardhat/test/fixtures.json":             "{}\n",
		"modules/hardhat/hardhat.config.ts":              "export default {};\n",
	}
	for rel, content := range files {
		writeFile(t, filepath.Join(root, rel), []byte(content))
	}

	cfg := config.Config{
		CollectedDir: filepath.Join(root, "collected"),
		FileTypes: map[string][]string{
			config.CategoryMarkdown: {".md"},
			config.CategoryCode:     {".ts", ".sol"},
		},
		Submodules: map[string]config.Source{
			"fhevm": {
				DocsDir:    filepath.Join(root, "modules/fhevm/docs"),
				OutputFile: "fhevm_docs.md",
				Readme:     "-",
			},
			"hardhat": {
				SourceDir:  filepath.Join(root, "modules/hardhat"),
				OutputFile: "hardhat_files.md",
				Folders:    []string{"./contracts", "./deploy", "./tasks", "./test"},
			},
		},
	}

	return &ExampleWorkspace{RootPath: root, Config: cfg}
}

// OutputPath 聚合文件在工作区中的路径
func (w *ExampleWorkspace) OutputPath(name string) string {
	return filepath.Join(w.Config.CollectedDir, name)
}

func writeFile(t *testing.T, path string, content []byte) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("无法创建目录: %v", err)
	}
	if err := os.WriteFile(path, content, 0644); err != nil {
		t.Fatalf("无法写入文件 %s: %v", path, err)
	}
}
