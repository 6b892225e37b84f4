package pack

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMarkdownFormatter(t *testing.T) {
	formatter := &MarkdownFormatter{}
	assert.Equal(t, "# File: docs/a.md\n\nHello\n\n", formatter.Format("docs/a.md", "Hello"))
	// 内容原样保留，不补换行
	assert.Equal(t, "# File: x.md\n\nline\n\n\n", formatter.Format("x.md", "line\n"))
}

func TestFencedFormatter(t *testing.T) {
	formatter := &FencedFormatter{}
	assert.Equal(t,
		"# File: contracts/Token.sol\n\n```solidity\ncontract Token {}\n```\n\n",
		formatter.Format("contracts/Token.sol", "contract Token {}"))
	assert.Equal(t,
		"# File: deploy/x.ts\n\n```typescript\nexport {}\n```\n\n",
		formatter.Format("deploy/x.ts", "export {}\n"))
}

func TestGetFormatter(t *testing.T) {
	_, ok := GetFormatter("").(*MarkdownFormatter)
	assert.True(t, ok, "default formatter should be MarkdownFormatter")

	_, ok = GetFormatter("markdown").(*MarkdownFormatter)
	assert.True(t, ok)

	_, ok = GetFormatter("Fenced").(*FencedFormatter)
	assert.True(t, ok)
}

func TestGetLanguageFromExtension(t *testing.T) {
	testCases := []struct {
		ext      string
		expected string
	}{
		{".sol", "solidity"},
		{".ts", "typescript"},
		{".MD", "markdown"},
		{".unknown", ""},
		{"", ""},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.expected, getLanguageFromExtension(tc.ext), tc.ext)
	}
}
