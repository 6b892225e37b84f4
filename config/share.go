package config

import "errors"

// 配置键常量定义
const (
	KeyCollectedDir = "collected_dir"
	KeyPDFDir       = "pdf_dir"
	KeyPDFFont      = "pdf_font"
)

// 文件类别
const (
	CategoryMarkdown = "markdown"
	CategoryCode     = "code"
)

// keyDelimiter 源名称中可能带 "."，嵌套键改用不会出现在名称里的分隔符
const keyDelimiter = "::"

var (
	// ErrNoRoot 源既没有 docs_dir 也没有 source_dir
	ErrNoRoot = errors.New("source has neither docs_dir nor source_dir")
	// ErrNoOutput 源没有 output_file
	ErrNoOutput = errors.New("source has no output_file")
	// ErrUnknownFileType 源引用了 file_types 中不存在的类别
	ErrUnknownFileType = errors.New("unknown file type")
)
