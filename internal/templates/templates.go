package templates

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

//go:embed defaults/*.json
var defaultFiles embed.FS

// DefaultFiles lists the data files shipped with the planner, in install order.
var DefaultFiles = []string{
	"classes.json",
	"races.json",
	"backgrounds.json",
	"skills.json",
	"presets.json",
}

// GetDefault returns the embedded content of a default data file
func GetDefault(name string) ([]byte, error) {
	content, err := defaultFiles.ReadFile("defaults/" + name)
	if err != nil {
		return nil, err
	}
	return content, nil
}

// InstallResult reports which default files were written and which were left alone.
type InstallResult struct {
	Written []string
	Skipped []string
}

// Install writes the default catalogs and presets into dataDir.
// Existing files are never overwritten.
func Install(dataDir string) (*InstallResult, error) {
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	result := &InstallResult{}
	for _, name := range DefaultFiles {
		path := filepath.Join(dataDir, name)
		if _, err := os.Stat(path); err == nil {
			result.Skipped = append(result.Skipped, name)
			continue
		} else if !errors.Is(err, fs.ErrNotExist) {
			return result, fmt.Errorf("failed to stat %s: %w", name, err)
		}

		content, err := GetDefault(name)
		if err != nil {
			return result, fmt.Errorf("failed to read embedded %s: %w", name, err)
		}
		if err := os.WriteFile(path, content, 0644); err != nil {
			return result, fmt.Errorf("failed to write %s: %w", name, err)
		}
		result.Written = append(result.Written, name)
	}

	return result, nil
}
