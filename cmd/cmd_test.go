package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sjzsdu/docbundle/config"
	"github.com/sjzsdu/docbundle/project"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute 运行命令并返回标准输出
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})
	err := rootCmd.Execute()
	return out.String(), err
}

func workspaceConfig(t *testing.T) (*project.ExampleWorkspace, string) {
	t.Helper()
	ws := project.CreateExampleWorkspace(t)
	path := filepath.Join(ws.RootPath, "config.json")
	require.NoError(t, config.Save(ws.Config, path))
	return ws, path
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "docbundle version: ")
}

func TestCollectCommand(t *testing.T) {
	ws, cfgPath := workspaceConfig(t)

	out, err := execute(t, "collect", "--config", cfgPath)
	require.NoError(t, err)

	assert.Contains(t, out, ws.OutputPath("fhevm_docs.md")+": 3 files")
	assert.Contains(t, out, ws.OutputPath("hardhat_files.md")+": 5 files")
	assert.Contains(t, out, "Skipped 1 missing folders")
	assert.NoDirExists(t, filepath.Join(ws.Config.CollectedDir, "pdf"))
}

func TestRunSkipUpdate(t *testing.T) {
	ws, cfgPath := workspaceConfig(t)

	out, err := execute(t, "run", "--skip-update", "--config", cfgPath)
	require.NoError(t, err)
	assert.Contains(t, out, filepath.Join(ws.Config.CollectedDir, "pdf", "hardhat_files.pdf"))
	assert.FileExists(t, filepath.Join(ws.Config.CollectedDir, "pdf", "fhevm_docs.pdf"))
}

func TestPDFCommandWithArgs(t *testing.T) {
	ws, cfgPath := workspaceConfig(t)
	md := filepath.Join(ws.RootPath, "notes.md")
	require.NoError(t, os.WriteFile(md, []byte("# Notes\n\nbody\n"), 0644))

	out, err := execute(t, "pdf", "--config", cfgPath, md)
	require.NoError(t, err)
	assert.Contains(t, out, "notes.pdf")
	assert.FileExists(t, filepath.Join(ws.Config.CollectedDir, "pdf", "notes.pdf"))
}

func TestPDFCommandReportsFailures(t *testing.T) {
	_, cfgPath := workspaceConfig(t)

	// 聚合文件还不存在，渲染失败但命令本身成功
	out, err := execute(t, "pdf", "--config", cfgPath)
	require.NoError(t, err)
	assert.Contains(t, out, "Failed to render 2 PDFs")
}

func TestMissingConfigIsFatal(t *testing.T) {
	_, err := execute(t, "collect", "--config", filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestMalformedConfigIsFatal(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	_, err := execute(t, "collect", "--config", path)
	assert.Error(t, err)
}

func TestInitCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")

	out, err := execute(t, "init", "--config", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Wrote "+path)

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"fhevm", "hardhat"}, cfg.SourceNames())

	// 已存在时拒绝覆盖
	_, err = execute(t, "init", "--config", path)
	assert.Error(t, err)
}

func TestPreviewCommand(t *testing.T) {
	md := filepath.Join(t.TempDir(), "a.md")
	require.NoError(t, os.WriteFile(md, []byte("# File: docs/a.md\n\nHello\n"), 0644))

	out, err := execute(t, "preview", "--style", "notty", md)
	require.NoError(t, err)
	assert.True(t, strings.Contains(out, "Hello"))
}
