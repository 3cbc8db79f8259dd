package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const mixerCatalog = `version: "1.0"
name: Mixer
description: Studio levels
sliders:
  - id: volume
    label: Volume
    default_value: 50
  - id: band
    label: Band
    range: true
    step: 5
    default_value: [20, 80]
    marks:
      - value: 0
        label: lo
      - value: 100
        label: hi
  - id: temp
    label: Temp
    min: -10
    max: 40
    step: 0.5
    default_value: 21.5
    unit: "°C"
  - id: locked
    label: Locked
    disabled: true
`

func writeCatalog(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func executeCommand(args ...string) (string, error) {
	root := newRootCmd()
	buf := &bytes.Buffer{}
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)

	err := root.Execute()
	return buf.String(), err
}
