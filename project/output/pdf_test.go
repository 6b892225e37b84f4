package output

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleAggregate = "# File: modules/hardhat/README.md\n\n" +
	"# FHEVM Hardhat Template\n\nA template for **confidential** smart contracts.\n\n" +
	"## Install\n\n1. `npm install`\n2. `npx hardhat test`\n\n" +
	"- nested\n  - item\n\n> quoted text\n\n---\n\n" +
	"# File: modules/hardhat/contracts/Counter.sol\n\n" +
	"```solidity\ncontract Counter {\n\tuint32 count;\n}\n```\n\n" +
	"    indented code\n\n<div>html block</div>\n\nUnicode: 加密 — ✓\n\n"

func writeMarkdown(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestConvert(t *testing.T) {
	src := writeMarkdown(t, t.TempDir(), "hardhat_files.md", sampleAggregate)
	outDir := t.TempDir()

	out, err := NewPDFConverter(outDir, nil).Convert(src)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(outDir, "hardhat_files.pdf"), out)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "%PDF-"))
	// 大纲包含文件头部
	assert.Contains(t, string(data), "/Outlines")
}

func TestRenderAllNamesOnePDFPerFile(t *testing.T) {
	srcDir := t.TempDir()
	a := writeMarkdown(t, srcDir, "fhevm_docs.md", "# File: docs/a.md\n\nHello\n\n")
	b := writeMarkdown(t, srcDir, "hardhat_files.md", sampleAggregate)
	outDir := filepath.Join(t.TempDir(), "collected", "pdf")

	result, err := NewPDFConverter(outDir, nil).RenderAll([]string{a, b})
	require.NoError(t, err)
	assert.Empty(t, result.Failed)
	assert.Equal(t, []string{
		filepath.Join(outDir, "fhevm_docs.pdf"),
		filepath.Join(outDir, "hardhat_files.pdf"),
	}, result.Rendered)

	entries, err := os.ReadDir(outDir)
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestRenderAllContinuesAfterFailure(t *testing.T) {
	logger, hook := test.NewNullLogger()
	srcDir := t.TempDir()
	missing := filepath.Join(srcDir, "missing.md")
	ok := writeMarkdown(t, srcDir, "ok.md", "# Title\n\nBody\n")
	outDir := t.TempDir()

	result, err := NewPDFConverter(outDir, logger).RenderAll([]string{missing, ok})
	require.NoError(t, err)

	assert.Contains(t, result.Failed, missing)
	assert.Equal(t, []string{filepath.Join(outDir, "ok.pdf")}, result.Rendered)

	var errorsLogged int
	for _, entry := range hook.AllEntries() {
		if entry.Level == logrus.ErrorLevel {
			errorsLogged++
		}
	}
	assert.Equal(t, 1, errorsLogged)
}

func TestRenderAllBadOutputDir(t *testing.T) {
	blocker := writeMarkdown(t, t.TempDir(), "file", "x")

	_, err := NewPDFConverter(filepath.Join(blocker, "pdf"), nil).RenderAll(nil)
	assert.Error(t, err)
}

func TestConvertEmptyFile(t *testing.T) {
	src := writeMarkdown(t, t.TempDir(), "empty.md", "")

	out, err := NewPDFConverter(t.TempDir(), nil).Convert(src)
	require.NoError(t, err)
	assert.FileExists(t, out)
}

func TestConvertWarnsOnCharactersOutsideCoreFonts(t *testing.T) {
	logger, hook := test.NewNullLogger()
	src := writeMarkdown(t, t.TempDir(), "unicode.md", "# Café → 加密\n")

	_, err := NewPDFConverter(t.TempDir(), logger).Convert(src)
	require.NoError(t, err)

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, logrus.WarnLevel, entry.Level)
	assert.Contains(t, entry.Message, "pdf_font")
	// → 加 密 各计一次，é 在 cp1252 内
	assert.Equal(t, 3, entry.Data["chars"])
}

func TestConvertLatinTextDoesNotWarn(t *testing.T) {
	logger, hook := test.NewNullLogger()
	src := writeMarkdown(t, t.TempDir(), "latin.md", "# Café\n\nNaïve — “quoted”\n")

	_, err := NewPDFConverter(t.TempDir(), logger).Convert(src)
	require.NoError(t, err)
	assert.Empty(t, hook.AllEntries())
}

func TestConvertMissingFont(t *testing.T) {
	src := writeMarkdown(t, t.TempDir(), "a.md", "# A\n")
	converter := NewPDFConverter(t.TempDir(), nil)
	converter.FontPath = filepath.Join(t.TempDir(), "missing.ttf")

	_, err := converter.Convert(src)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestConvertWithUTF8Font(t *testing.T) {
	var font string
	for _, candidate := range []string{
		"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
		"/usr/share/fonts/TTF/DejaVuSans.ttf",
		"/usr/share/fonts/dejavu/DejaVuSans.ttf",
		"/Library/Fonts/Arial Unicode.ttf",
	} {
		if _, err := os.Stat(candidate); err == nil {
			font = candidate
			break
		}
	}
	if font == "" {
		t.Skip("no TrueType font available")
	}

	logger, hook := test.NewNullLogger()
	src := writeMarkdown(t, t.TempDir(), "unicode.md", "# Café → 加密\n\n## Größe\n\n```\nx → y\n```\n")
	converter := NewPDFConverter(t.TempDir(), logger)
	converter.FontPath = font

	out, err := converter.Convert(src)
	require.NoError(t, err)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), "/Identity-H")
	assert.Contains(t, string(data), "/Outlines")
	for _, entry := range hook.AllEntries() {
		assert.NotEqual(t, logrus.WarnLevel, entry.Level)
	}
}
