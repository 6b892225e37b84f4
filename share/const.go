package share

// VERSION 版本号
const VERSION = "1.0.0"

// BUILDNAME 制品名称
const BUILDNAME = "docbundle"

// PREFIX 环境变量前缀
const PREFIX = "DOCBUNDLE_"

// DEFAULT_CONFIG_FILE 默认配置文件
const DEFAULT_CONFIG_FILE = "config.json"

// DEFAULT_COLLECTED_DIR 默认聚合输出目录
const DEFAULT_COLLECTED_DIR = "./collected"

// PDF_SUBDIR 聚合目录下的 PDF 子目录
const PDF_SUBDIR = "pdf"

// DEFAULT_README 每个源首先收集的文件
const DEFAULT_README = "README.md"

// NO_README 配置中禁用 README 收集的占位值
const NO_README = "-"

// FILE_HEADER 聚合文件中每个块的头部格式
const FILE_HEADER = "# File: %s\n\n"

// BLOCK_SEPARATOR 块内容之后的分隔
const BLOCK_SEPARATOR = "\n\n"

// TOC_LEVEL PDF 目录收录的最大标题层级
const TOC_LEVEL = 2

// PDF_AUTHOR PDF 作者元数据
const PDF_AUTHOR = "Generated by docbundle"
