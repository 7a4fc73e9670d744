//nolint:testpackage // Need package-level access to unexported helpers.
package cmd

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestListCommand(t *testing.T) {
	cfgPath := writeConfig(t, testConfigYAML)

	res := runRoot(t, "", "--config", cfgPath, "list")

	require.Equal(t, 0, res.code, res.stderr)
	lines := strings.Split(strings.TrimSuffix(res.stdout, "\n"), "\n")
	require.Equal(t, []string{
		"NAME   LINES  PREVIEW",
		"input  2      input : array_like",
		"axis   2      axis : int, optional",
	}, lines)
}

func TestLineCount(t *testing.T) {
	require.Equal(t, 0, lineCount(""))
	require.Equal(t, 1, lineCount("a\n"))
	require.Equal(t, 3, lineCount("a\n\nb"))
}

func TestPreview(t *testing.T) {
	require.Equal(t, "first", preview("\n  first  \nsecond"))
	long := strings.Repeat("x", previewWidth+10)
	got := preview(long)
	require.True(t, strings.HasSuffix(got, "…"))
	require.LessOrEqual(t, len([]rune(got)), previewWidth)
}
