package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestVersionCommandOutputsBuildInfo(t *testing.T) {
	originalVersion := version
	originalCommit := commit
	originalDate := date
	t.Cleanup(func() {
		version = originalVersion
		commit = originalCommit
		date = originalDate
	})

	version = "1.2.3"
	commit = "abcdef1"
	date = "2025-10-03"

	output, err := executeCommand("version")
	require.NoError(t, err)

	require.Contains(t, output, "Slidekit 1.2.3")
	require.Contains(t, output, "abcdef1")
	require.Contains(t, output, "2025-10-03")
}
