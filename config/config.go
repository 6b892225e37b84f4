package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/sjzsdu/docbundle/share"
	"github.com/spf13/viper"
)

// Config 一次运行的完整配置，加载后不再修改
type Config struct {
	CollectedDir string              `mapstructure:"collected_dir" json:"collected_dir"`
	PDFDir       string              `mapstructure:"pdf_dir" json:"pdf_dir,omitempty"`
	PDFFont      string              `mapstructure:"pdf_font" json:"pdf_font,omitempty"`
	FileTypes    map[string][]string `mapstructure:"file_types" json:"file_types"`
	Submodules   map[string]Source   `mapstructure:"submodules" json:"submodules"`
}

// Source 单个子模块源的配置。Format 为块格式：markdown（默认，原样拼接）或 fenced（代码块）
type Source struct {
	DocsDir    string   `mapstructure:"docs_dir" json:"docs_dir,omitempty"`
	SourceDir  string   `mapstructure:"source_dir" json:"source_dir,omitempty"`
	OutputFile string   `mapstructure:"output_file" json:"output_file"`
	Folders    []string `mapstructure:"folders" json:"folders,omitempty"`
	FileType   string   `mapstructure:"file_type" json:"file_type,omitempty"`
	Readme     string   `mapstructure:"readme" json:"readme,omitempty"`
	Format     string   `mapstructure:"format" json:"format,omitempty"`
}

// Load 读取配置文件。文件缺失或格式错误都返回错误，由调用方决定退出码。
// 除解码外不做校验，缺失的源字段在编排阶段才会暴露。
func Load(path string) (Config, error) {
	v := viper.NewWithOptions(viper.KeyDelimiter(keyDelimiter))
	v.SetConfigFile(path)
	if filepath.Ext(path) == "" {
		v.SetConfigType("json")
	}

	v.SetEnvPrefix(strings.TrimSuffix(share.PREFIX, "_"))
	v.AutomaticEnv()
	v.SetDefault(KeyCollectedDir, share.DEFAULT_COLLECTED_DIR)
	v.SetDefault(KeyPDFDir, "")
	v.SetDefault(KeyPDFFont, "")

	if err := v.ReadInConfig(); err != nil {
		return Config{}, fmt.Errorf("读取配置文件 %s 失败: %w", path, err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("解析配置文件 %s 失败: %w", path, err)
	}
	return cfg, nil
}

// Save 将配置以 JSON 格式写入 path
func Save(cfg Config, path string) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("创建目录失败: %w", err)
		}
	}
	return os.WriteFile(path, append(data, '\n'), 0644)
}

// Default 没有配置文件时使用的内置布局：fhevm 文档和 hardhat 模板
func Default() Config {
	return Config{
		CollectedDir: share.DEFAULT_COLLECTED_DIR,
		FileTypes: map[string][]string{
			CategoryMarkdown: {".md"},
			CategoryCode:     {".ts", ".sol"},
		},
		Submodules: map[string]Source{
			"fhevm": {
				DocsDir:    "./modules/fhevm/docs",
				OutputFile: "./collected/fhevm_docs.md",
				Readme:     share.NO_README,
			},
			"hardhat": {
				SourceDir:  "./modules/hardhat",
				OutputFile: "./collected/hardhat_files.md",
				Folders:    []string{"./contracts", "./deploy", "./tasks", "./test"},
			},
		},
	}
}

// SourceNames 按名称排序返回所有源
func (c Config) SourceNames() []string {
	names := make([]string, 0, len(c.Submodules))
	for name := range c.Submodules {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Extensions 返回源使用的扩展名列表
func (c Config) Extensions(s Source) ([]string, error) {
	category := s.Category()
	exts, ok := c.FileTypes[category]
	if !ok || len(exts) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFileType, category)
	}
	return exts, nil
}

// OutputPath 返回源的聚合文件路径，纯文件名放在 collected_dir 下
func (c Config) OutputPath(s Source) (string, error) {
	if s.OutputFile == "" {
		return "", ErrNoOutput
	}
	if filepath.IsAbs(s.OutputFile) || filepath.Dir(s.OutputFile) != "." {
		return s.OutputFile, nil
	}
	return filepath.Join(c.collectedDir(), s.OutputFile), nil
}

// PDFOutputDir PDF 输出目录，默认 collected_dir/pdf
func (c Config) PDFOutputDir() string {
	if c.PDFDir != "" {
		return c.PDFDir
	}
	return filepath.Join(c.collectedDir(), share.PDF_SUBDIR)
}

// Aggregates 返回所有源的聚合文件路径，顺序与 SourceNames 一致
func (c Config) Aggregates() ([]string, error) {
	var paths []string
	for _, name := range c.SourceNames() {
		path, err := c.OutputPath(c.Submodules[name])
		if err != nil {
			return nil, fmt.Errorf("source %s: %w", name, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}

func (c Config) collectedDir() string {
	if c.CollectedDir == "" {
		return share.DEFAULT_COLLECTED_DIR
	}
	return c.CollectedDir
}

// Root 源的根目录，docs_dir 优先
func (s Source) Root() (string, error) {
	switch {
	case s.DocsDir != "":
		return s.DocsDir, nil
	case s.SourceDir != "":
		return s.SourceDir, nil
	default:
		return "", ErrNoRoot
	}
}

// Category 源的文件类别，未指定时文档源用 markdown，代码源用 code
func (s Source) Category() string {
	if s.FileType != "" {
		return s.FileType
	}
	if s.DocsDir != "" {
		return CategoryMarkdown
	}
	return CategoryCode
}

// ReadmeName 需要首先收集的文件名，空字符串表示不收集
func (s Source) ReadmeName() string {
	switch s.Readme {
	case "":
		return share.DEFAULT_README
	case share.NO_README:
		return ""
	default:
		return s.Readme
	}
}
