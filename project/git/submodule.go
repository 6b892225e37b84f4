package git

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/sjzsdu/docbundle/helper"
)

const gitBin = "git"

var (
	initArgs   = []string{"submodule", "update", "--init", "--recursive"}
	remoteArgs = []string{"submodule", "update", "--remote", "--recursive"}
)

// CommandError git 命令以非零状态退出
type CommandError struct {
	Args   []string
	Output string
	Err    error
}

func (e *CommandError) Error() string {
	msg := fmt.Sprintf("%s %s: %v", gitBin, strings.Join(e.Args, " "), e.Err)
	if out := strings.TrimSpace(e.Output); out != "" {
		msg += "\n" + out
	}
	return msg
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// SubmoduleUpdater 通过命令行 git 维护仓库中的子模块
type SubmoduleUpdater struct {
	// Dir 仓库根目录
	Dir    string
	logger logrus.FieldLogger
	exec   executor
}

// NewSubmoduleUpdater 创建子模块更新器。dir 为空时从当前目录向上查找仓库根。
func NewSubmoduleUpdater(dir string, logger logrus.FieldLogger) (*SubmoduleUpdater, error) {
	return newSubmoduleUpdater(dir, logger, &osExecutor{})
}

func newSubmoduleUpdater(dir string, logger logrus.FieldLogger, ex executor) (*SubmoduleUpdater, error) {
	if _, err := ex.LookPath(gitBin); err != nil {
		return nil, fmt.Errorf("git命令不可用: %w", err)
	}

	if dir == "" {
		root, ok := helper.FindGitRoot(".")
		if !ok {
			return nil, fmt.Errorf("当前目录不在 git 仓库中")
		}
		dir = root
	}

	if logger == nil {
		logger = helper.DiscardLogger()
	}

	return &SubmoduleUpdater{Dir: dir, logger: logger, exec: ex}, nil
}

// UpdateAll 初始化所有子模块，再更新到各自跟踪分支的最新提交。
// 任一命令失败立即返回错误。
func (s *SubmoduleUpdater) UpdateAll(ctx context.Context) error {
	if err := s.run(ctx, initArgs...); err != nil {
		return err
	}
	s.logger.Info("Submodules initialized and updated.")

	if err := s.run(ctx, remoteArgs...); err != nil {
		return err
	}
	s.logger.Info("Submodules updated to the latest commits on tracked branches.")
	return nil
}

// Add 在 path 添加子模块；path 已存在时跳过
func (s *SubmoduleUpdater) Add(ctx context.Context, url, path string) (bool, error) {
	target := path
	if !filepath.IsAbs(target) {
		target = filepath.Join(s.Dir, path)
	}
	if _, err := os.Stat(target); err == nil {
		s.logger.Warnf("The folder %s already exists. Skipping submodule addition.", path)
		return false, nil
	}

	if err := s.run(ctx, "submodule", "add", url, path); err != nil {
		return false, err
	}
	if err := s.run(ctx, initArgs...); err != nil {
		return false, err
	}
	s.logger.Infof("Submodule added to %s successfully.", path)
	return true, nil
}

func (s *SubmoduleUpdater) run(ctx context.Context, args ...string) error {
	s.logger.Debugf("%s %s", gitBin, strings.Join(args, " "))
	output, err := s.exec.Run(ctx, s.Dir, gitBin, args...)
	if err != nil {
		return &CommandError{Args: args, Output: string(output), Err: err}
	}
	return nil
}
