package pack

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"unicode/utf8"

	"github.com/sirupsen/logrus"
	"github.com/sjzsdu/docbundle/helper"
)

var (
	// ErrNotText 匹配到的文件不是合法的 UTF-8 文本
	ErrNotText = errors.New("file is not valid UTF-8 text")
	// ErrNoExtensions 未指定任何扩展名
	ErrNoExtensions = errors.New("no extensions given")
)

// Collector 将目录中的文件拼接到聚合文件
type Collector struct {
	formatter Formatter
	logger    logrus.FieldLogger
	exclude   []string
}

// NewCollector 创建 Collector，默认原样拼接，不输出日志
func NewCollector(opts ...Option) *Collector {
	c := &Collector{
		formatter: &MarkdownFormatter{},
		logger:    helper.DiscardLogger(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Collect 递归遍历 root，把文件名以 extensions 之一结尾的文件依次写入 outputPath。
// truncate 为真时重新创建输出文件，否则追加。输出文件在整个遍历期间只打开一次。
// root 不存在时不写入任何块。匹配文件不是文本时中止，已写入的块保留在磁盘上。
// 返回写入的块数。
func (c *Collector) Collect(root, outputPath string, extensions []string, truncate bool) (int, error) {
	if len(extensions) == 0 {
		return 0, ErrNoExtensions
	}

	out, err := openOutput(outputPath, truncate)
	if err != nil {
		return 0, fmt.Errorf("打开输出文件 %s 失败: %w", outputPath, err)
	}
	defer out.Close()

	count := 0
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			// 与常见的目录遍历一致，不可读的目录直接跳过
			c.logger.WithError(walkErr).Debugf("skip %s", path)
			return nil
		}
		if d.IsDir() || !helper.HasAnySuffix(d.Name(), extensions) {
			return nil
		}
		if d.Type()&fs.ModeSymlink != 0 && helper.IsDir(path) {
			return nil
		}
		if samePath(path, outputPath) || c.excluded(path) {
			return nil
		}

		if err := c.writeBlock(out, path); err != nil {
			return err
		}
		count++
		return nil
	})
	if err != nil {
		return count, err
	}

	verb := "Collected"
	if !truncate {
		verb = "Appended"
	}
	c.logger.WithField("files", count).Infof("%s files into %s", verb, outputPath)
	return count, nil
}

// CollectOne 只收集 root/name 这一个文件。文件不存在时记录警告，不写入，返回 false。
func (c *Collector) CollectOne(root, outputPath, name string, truncate bool) (bool, error) {
	path := filepath.Join(root, name)
	c.logger.Debug(path)

	info, err := os.Stat(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return false, fmt.Errorf("读取 %s 失败: %w", path, err)
	}
	if err != nil || info.IsDir() {
		c.logger.Warnf("File %s not found in %s", name, root)
		return false, nil
	}

	out, err := openOutput(outputPath, truncate)
	if err != nil {
		return false, fmt.Errorf("打开输出文件 %s 失败: %w", outputPath, err)
	}
	defer out.Close()

	if err := c.writeBlock(out, path); err != nil {
		return false, err
	}

	verb := "Collected"
	if !truncate {
		verb = "Appended"
	}
	c.logger.Infof("%s %s into %s", verb, name, outputPath)
	return true, nil
}

// Truncate 将输出文件截断为空，必要时创建父目录
func Truncate(outputPath string) error {
	out, err := openOutput(outputPath, true)
	if err != nil {
		return fmt.Errorf("创建输出文件 %s 失败: %w", outputPath, err)
	}
	return out.Close()
}

func (c *Collector) excluded(path string) bool {
	for _, p := range c.exclude {
		if samePath(path, p) {
			return true
		}
	}
	return false
}

func (c *Collector) writeBlock(w io.Writer, path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("读取文件 %s 失败: %w", path, err)
	}
	if !utf8.Valid(content) {
		return fmt.Errorf("%w: %s", ErrNotText, path)
	}

	if _, err := io.WriteString(w, c.formatter.Format(path, string(content))); err != nil {
		return fmt.Errorf("写入 %s 失败: %w", path, err)
	}
	return nil
}
