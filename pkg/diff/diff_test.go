package diff

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUnifiedIdenticalContent(t *testing.T) {
	t.Parallel()

	content := []byte("line1\nline2\nline3\n")
	require.Empty(t, Unified(content, content, "want", "got"))
}

func TestUnifiedSingleLineChange(t *testing.T) {
	t.Parallel()

	result := Unified([]byte("line1\nline2\nline3\n"), []byte("line1\nmodified\nline3\n"), "want", "got")

	require.Equal(t, strings.Join([]string{
		"--- want",
		"+++ got",
		"@@ -1,3 +1,3 @@",
		" line1",
		"-line2",
		"+modified",
		" line3",
		"",
	}, "\n"), result)
}

func TestUnifiedWholeLinesOnly(t *testing.T) {
	t.Parallel()

	// A character diff would keep "  ===" as common text; the line diff must not.
	result := Unified([]byte("  ====o---\n"), []byte("  =====o--\n"), "golden", "render")

	require.Contains(t, result, "\n-  ====o---\n")
	require.Contains(t, result, "\n+  =====o--\n")
}

func TestUnifiedEmptyContent(t *testing.T) {
	t.Parallel()

	result := Unified(nil, []byte("new content\n"), "want", "got")

	require.Contains(t, result, "@@ -1,0 +1,1 @@")
	require.Contains(t, result, "+new content")
}

func TestUnifiedTruncatesLargeDiffs(t *testing.T) {
	t.Parallel()

	var want, got []string
	for i := 0; i < 3000; i++ {
		want = append(want, "want line")
		if i%2 == 0 {
			got = append(got, "got line")
		} else {
			got = append(got, "want line")
		}
	}

	result := Unified([]byte(strings.Join(want, "\n")), []byte(strings.Join(got, "\n")), "want", "got")

	require.Contains(t, result, "truncated")
	require.LessOrEqual(t, strings.Count(result, "\n"), maxDiffLines+4)
}
