package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/term"

	"github.com/alexisbeaulieu97/slidekit/internal/config"
	"github.com/alexisbeaulieu97/slidekit/internal/ui/components"
	slidekiterrors "github.com/alexisbeaulieu97/slidekit/pkg/errors"
)

func validateConfigPath(path string) error {
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("config file is required")
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolve config path: %w", err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return fmt.Errorf("config file does not exist: %w", err)
	}
	if info.IsDir() {
		return fmt.Errorf("config path %s is a directory", abs)
	}

	return nil
}

// loadConfig validates the path and parses the catalog document, turning
// failures into command errors for operation.
func loadConfig(operation, path string) (*config.Config, error) {
	if err := validateConfigPath(path); err != nil {
		return nil, newCommandError(operation, "locating catalog", err, "Pass the path of an existing catalog YAML file.")
	}

	cfg, err := config.ParseConfig(path)
	if err != nil {
		var parseErr *slidekiterrors.ParseError
		if errors.As(err, &parseErr) {
			return nil, newCommandError(operation, "parsing catalog", err, "Fix the YAML syntax at the reported line.")
		}
		return nil, newCommandError(operation, "validating catalog", err, "Check the reported fields against the catalog schema.")
	}
	return cfg, nil
}

// resolveTheme picks the flag theme, else the document theme, and switches to
// ASCII glyphs when asked or when out cannot show unicode.
func resolveTheme(name string, cfg *config.Config, ascii bool, out io.Writer) (components.Theme, error) {
	if name == "" {
		name = cfg.Settings.Theme
	}
	theme, err := components.ThemeByName(name)
	if err != nil {
		return components.Theme{}, err
	}
	if ascii || !supportsUnicode(out) {
		theme = theme.WithGlyphs(components.ASCIIGlyphs())
	}
	return theme, nil
}

func supportsUnicode(writer any) bool {
	if file, ok := writer.(*os.File); ok {
		return term.IsTerminal(int(file.Fd()))
	}
	return false
}
