package project

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/sjzsdu/docbundle/config"
	"github.com/sjzsdu/docbundle/helper"
	"github.com/sjzsdu/docbundle/project/output"
	"github.com/sjzsdu/docbundle/project/pack"
)

// Updater 更新子模块
type Updater interface {
	UpdateAll(ctx context.Context) error
}

// Renderer 将聚合文件渲染为 PDF
type Renderer interface {
	RenderAll(paths []string) (output.RenderResult, error)
}

// Report 一次运行的汇总
type Report struct {
	// Aggregates 按处理顺序列出的聚合文件
	Aggregates []string
	// Blocks 每个聚合文件写入的块数
	Blocks map[string]int
	// SkippedFolders 不存在而被跳过的目录
	SkippedFolders []string
	// MissingFiles 未找到的 README 等单独收集的文件
	MissingFiles []string
	PDF          output.RenderResult
}

// Bundler 按顺序执行：更新子模块、逐个聚合源、渲染 PDF
type Bundler struct {
	cfg      config.Config
	updater  Updater
	renderer Renderer
	logger   logrus.FieldLogger
	skipPDF  bool
}

// BundlerOption 配置 Bundler
type BundlerOption func(*Bundler)

// WithUpdater 设置子模块更新器；为 nil 时跳过更新
func WithUpdater(updater Updater) BundlerOption {
	return func(b *Bundler) {
		b.updater = updater
	}
}

// WithRenderer 替换默认的 PDF 渲染器
func WithRenderer(renderer Renderer) BundlerOption {
	return func(b *Bundler) {
		b.renderer = renderer
	}
}

// WithLogger 设置日志器
func WithLogger(logger logrus.FieldLogger) BundlerOption {
	return func(b *Bundler) {
		if logger != nil {
			b.logger = logger
		}
	}
}

// WithoutPDF 只聚合，不渲染 PDF
func WithoutPDF() BundlerOption {
	return func(b *Bundler) {
		b.skipPDF = true
	}
}

// NewBundler 创建编排器，cfg 按值保存，运行期间不再变化
func NewBundler(cfg config.Config, opts ...BundlerOption) *Bundler {
	b := &Bundler{
		cfg:    cfg,
		logger: helper.DiscardLogger(),
	}
	for _, opt := range opts {
		opt(b)
	}
	if b.renderer == nil {
		converter := output.NewPDFConverter(cfg.PDFOutputDir(), b.logger)
		converter.FontPath = cfg.PDFFont
		b.renderer = converter
	}
	return b
}

// Run 执行完整流程。子模块更新失败、配置缺项或聚合出错时中止；
// 单个 PDF 渲染失败只记录在 Report 中。
func (b *Bundler) Run(ctx context.Context) (Report, error) {
	report := Report{Blocks: make(map[string]int)}

	if b.updater != nil {
		b.logger.Info("Updating submodules")
		if err := b.updater.UpdateAll(ctx); err != nil {
			return report, fmt.Errorf("更新子模块失败: %w", err)
		}
	}

	if err := b.aggregate(&report); err != nil {
		return report, err
	}

	if b.skipPDF {
		return report, nil
	}

	result, err := b.renderer.RenderAll(report.Aggregates)
	report.PDF = result
	if err != nil {
		return report, err
	}
	return report, nil
}

func (b *Bundler) aggregate(report *Report) error {
	for _, name := range b.cfg.SourceNames() {
		out, err := b.AggregateSource(name, report)
		if err != nil {
			return fmt.Errorf("source %s: %w", name, err)
		}
		report.Aggregates = append(report.Aggregates, out)
	}
	return nil
}

// AggregateSource 聚合单个源：先截断输出并收集 README，再依次追加每个目录。
// 返回聚合文件路径。
func (b *Bundler) AggregateSource(name string, report *Report) (string, error) {
	src, ok := b.cfg.Submodules[name]
	if !ok {
		return "", fmt.Errorf("unknown source %q", name)
	}
	root, err := src.Root()
	if err != nil {
		return "", err
	}
	exts, err := b.cfg.Extensions(src)
	if err != nil {
		return "", err
	}
	out, err := b.cfg.OutputPath(src)
	if err != nil {
		return "", err
	}

	log := b.logger.WithField("source", name)
	readme := src.ReadmeName()
	opts := []pack.Option{
		pack.WithFormatter(pack.GetFormatter(src.Format)),
		pack.WithLogger(log),
	}
	if readme != "" {
		// README 已单独写在开头，目录遍历时不再重复收集
		opts = append(opts, pack.WithExclude(filepath.Join(root, readme)))
	}
	collector := pack.NewCollector(opts...)

	// README 缺失时也不能保留上一次运行的内容
	if err := pack.Truncate(out); err != nil {
		return "", err
	}

	blocks := 0
	if readme != "" {
		found, err := collector.CollectOne(root, out, readme, true)
		if err != nil {
			return "", err
		}
		if found {
			blocks++
		} else {
			report.MissingFiles = append(report.MissingFiles, filepath.Join(root, readme))
		}
	}

	folders := src.Folders
	if len(folders) == 0 {
		folders = []string{"."}
	}
	for _, folder := range folders {
		path := filepath.Join(root, folder)
		log.Infof("Processing folder: %s", folder)
		if !helper.IsDir(path) {
			log.Warnf("Folder %s does not exist, skipping", path)
			report.SkippedFolders = append(report.SkippedFolders, path)
			continue
		}

		n, err := collector.Collect(path, out, exts, false)
		blocks += n
		if err != nil {
			return "", err
		}
	}

	report.Blocks[out] = blocks
	return out, nil
}
