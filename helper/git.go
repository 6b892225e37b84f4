package helper

import (
	"os"
	"path/filepath"
)

// IsGitRoot 判断 path 是否为 git 仓库根目录
// 子模块和工作树中的 .git 是文件而不是目录，同样算作仓库根
func IsGitRoot(path string) bool {
	_, err := os.Stat(filepath.Join(path, ".git"))
	return err == nil
}

// FindGitRoot 查找给定路径所属的git项目根目录
func FindGitRoot(path string) (string, bool) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", false
	}

	// 从当前目录开始向上查找 .git
	currentPath := absPath
	for {
		if IsGitRoot(currentPath) {
			return currentPath, true
		}

		parentPath := filepath.Dir(currentPath)
		// 已经到达根目录
		if parentPath == currentPath {
			break
		}
		currentPath = parentPath
	}

	return "", false
}
