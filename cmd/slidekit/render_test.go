package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/require"
)

func TestRenderCommandDrawsEverySlider(t *testing.T) {
	path := writeCatalog(t, mixerCatalog)

	output, err := executeCommand("render", path)
	require.NoError(t, err)
	output = ansi.Strip(output)

	require.Contains(t, output, "Mixer")
	require.Contains(t, output, "Studio levels")
	require.Contains(t, output, "  Volume  50")
	require.Contains(t, output, "  "+strings.Repeat("=", 15)+"o"+strings.Repeat("-", 14))
	require.Contains(t, output, "  Band  20 - 80")
	require.Contains(t, output, "  +-----o"+strings.Repeat("=", 16)+"o-----+")
	require.Contains(t, output, "  Temp  21.5°C")
	require.Contains(t, output, "Locked  0 (disabled)")
}

func TestRenderCommandHonoursWidth(t *testing.T) {
	path := writeCatalog(t, mixerCatalog)

	output, err := executeCommand("render", path, "--width", "12")
	require.NoError(t, err)

	require.Contains(t, ansi.Strip(output), "  =====o----\n", "a 10 cell track")
}

func TestRenderCommandErrors(t *testing.T) {
	tests := []struct {
		name    string
		args    func(t *testing.T) []string
		wantErr string
	}{
		{
			name:    "missing file",
			args:    func(t *testing.T) []string { return []string{"render", "/nonexistent/catalog.yaml"} },
			wantErr: "locating catalog",
		},
		{
			name: "invalid yaml",
			args: func(t *testing.T) []string {
				return []string{"render", writeCatalog(t, "version: [broken")}
			},
			wantErr: "parsing catalog",
		},
		{
			name: "schema violation",
			args: func(t *testing.T) []string {
				return []string{"render", writeCatalog(t, "version: \"1.0\"\nname: Empty\nsliders: []\n")}
			},
			wantErr: "validating catalog",
		},
		{
			name: "unknown theme",
			args: func(t *testing.T) []string {
				return []string{"render", writeCatalog(t, mixerCatalog), "--theme", "neon"}
			},
			wantErr: "resolving theme",
		},
		{
			name: "negative width",
			args: func(t *testing.T) []string {
				return []string{"render", writeCatalog(t, mixerCatalog), "--width", "-1"}
			},
			wantErr: "width must not be negative",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := executeCommand(tt.args(t)...)
			require.Error(t, err)
			require.Contains(t, err.Error(), tt.wantErr)
			require.Contains(t, err.Error(), "Suggestion:")
		})
	}
}

func TestRenderCommandGoldenFile(t *testing.T) {
	path := writeCatalog(t, mixerCatalog)
	golden := filepath.Join(t.TempDir(), "mixer.golden")

	output, err := executeCommand("render", path, "--golden", golden, "--update")
	require.NoError(t, err)
	require.Contains(t, output, "updated "+golden)

	data, err := os.ReadFile(golden)
	require.NoError(t, err)
	require.Contains(t, string(data), "  Volume  50\n")
	require.Equal(t, string(data), ansi.Strip(string(data)), "golden files are plain text")

	output, err = executeCommand("render", path, "--golden", golden)
	require.NoError(t, err)
	require.Contains(t, output, "matches "+golden)

	changed := strings.Replace(mixerCatalog, "default_value: 50", "default_value: 60", 1)
	output, err = executeCommand("render", writeCatalog(t, changed), "--golden", golden)
	require.Error(t, err)
	require.Contains(t, err.Error(), "rendering differs")
	require.Contains(t, output, "-  Volume  50")
	require.Contains(t, output, "+  Volume  60")
}

func TestRenderCommandUpdateNeedsGolden(t *testing.T) {
	path := writeCatalog(t, mixerCatalog)

	_, err := executeCommand("render", path, "--update")
	require.Error(t, err)
	require.Contains(t, err.Error(), "--update needs --golden")
}
