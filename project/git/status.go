package git

import (
	"fmt"

	gogit "github.com/go-git/go-git/v5"
)

// SubmoduleStatus 单个子模块的状态
type SubmoduleStatus struct {
	Name     string
	Path     string
	URL      string
	Expected string // 父仓库记录的提交
	Current  string // 子模块工作区当前提交，未初始化时为空
	Clean    bool
}

// String 类似 git submodule status 的单行输出
func (s SubmoduleStatus) String() string {
	prefix := " "
	switch {
	case s.Current == "":
		prefix = "-"
	case !s.Clean:
		prefix = "+"
	}
	return fmt.Sprintf("%s%s %s", prefix, s.Expected, s.Path)
}

// Status 使用 go-git 读取仓库中所有子模块的状态
func Status(dir string) ([]SubmoduleStatus, error) {
	repo, err := gogit.PlainOpen(dir)
	if err != nil {
		return nil, fmt.Errorf("打开仓库 %s 失败: %w", dir, err)
	}

	wt, err := repo.Worktree()
	if err != nil {
		return nil, fmt.Errorf("获取工作区失败: %w", err)
	}

	subs, err := wt.Submodules()
	if err != nil {
		return nil, fmt.Errorf("读取子模块失败: %w", err)
	}

	result := make([]SubmoduleStatus, 0, len(subs))
	for _, sub := range subs {
		cfg := sub.Config()
		st, err := sub.Status()
		if err != nil {
			return nil, fmt.Errorf("读取子模块 %s 状态失败: %w", cfg.Name, err)
		}

		status := SubmoduleStatus{
			Name:     cfg.Name,
			Path:     cfg.Path,
			URL:      cfg.URL,
			Expected: st.Expected.String(),
			Clean:    st.IsClean(),
		}
		if !st.Current.IsZero() {
			status.Current = st.Current.String()
		}
		result = append(result, status)
	}
	return result, nil
}
