package share

var debug bool

// SetDebug 设置全局调试模式
func SetDebug(enabled bool) {
	debug = enabled
}

// IsDebug 是否处于调试模式
func IsDebug() bool {
	return debug
}
