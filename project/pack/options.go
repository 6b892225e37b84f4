package pack

import "github.com/sirupsen/logrus"

// Option 配置 Collector
type Option func(*Collector)

// WithFormatter 指定块格式
func WithFormatter(formatter Formatter) Option {
	return func(c *Collector) {
		if formatter != nil {
			c.formatter = formatter
		}
	}
}

// WithLogger 指定日志器
func WithLogger(logger logrus.FieldLogger) Option {
	return func(c *Collector) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithExclude 遍历时跳过这些文件，例如已经单独收集过的 README
func WithExclude(paths ...string) Option {
	return func(c *Collector) {
		c.exclude = append(c.exclude, paths...)
	}
}
