// Package diff renders line-oriented unified diffs.
package diff

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

const (
	maxDiffLines    = 2000
	truncateMessage = "... (diff truncated, exceeds 2,000 lines) ..."
)

// Unified compares want and got line by line and returns the difference in
// unified format, or an empty string when both are equal. The output is a
// single hunk covering both inputs and is cut after 2,000 lines.
func Unified(want, got []byte, wantLabel, gotLabel string) string {
	if bytes.Equal(want, got) {
		return ""
	}

	dmp := diffmatchpatch.New()
	a, b, lines := dmp.DiffLinesToChars(string(want), string(got))
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)

	var body []string
	for _, d := range diffs {
		prefix := " "
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			prefix = "-"
		case diffmatchpatch.DiffInsert:
			prefix = "+"
		}
		for _, line := range splitLines(d.Text) {
			body = append(body, prefix+line)
		}
	}

	truncated := false
	if len(body) > maxDiffLines {
		body = body[:maxDiffLines]
		truncated = true
	}

	var buf strings.Builder
	fmt.Fprintf(&buf, "--- %s\n", wantLabel)
	fmt.Fprintf(&buf, "+++ %s\n", gotLabel)
	fmt.Fprintf(&buf, "@@ -1,%d +1,%d @@\n", countLines(want), countLines(got))
	for _, line := range body {
		buf.WriteString(line)
		buf.WriteByte('\n')
	}
	if truncated {
		buf.WriteString(truncateMessage)
		buf.WriteByte('\n')
	}
	return buf.String()
}

// splitLines breaks text into lines without their terminators.
func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(text, "\n"), "\n")
}

func countLines(data []byte) int {
	return len(splitLines(string(data)))
}
