package git

import (
	"context"
	"os/exec"
)

// executor 抽象命令执行，测试中替换为假实现
type executor interface {
	LookPath(file string) (string, error)
	Run(ctx context.Context, dir string, name string, args ...string) ([]byte, error)
}

// osExecutor 基于 os/exec 的实现
type osExecutor struct{}

func (o *osExecutor) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

// Run 同步执行命令，返回合并后的标准输出和标准错误
func (o *osExecutor) Run(ctx context.Context, dir string, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	return cmd.CombinedOutput()
}
