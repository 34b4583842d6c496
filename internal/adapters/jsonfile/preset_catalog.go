package jsonfile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/example/bg3planner/internal/core/character"
	"github.com/example/bg3planner/internal/ports/secondary"
)

// PresetsFile is the preset catalog's file name inside the data directory.
const PresetsFile = "presets.json"

// PresetCatalog implements secondary.PresetCatalog over a JSON array file.
// It never writes.
type PresetCatalog struct {
	path   string
	logger *zap.Logger
}

// NewPresetCatalog creates a catalog for <dataDir>/presets.json.
func NewPresetCatalog(dataDir string, logger *zap.Logger) *PresetCatalog {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PresetCatalog{
		path:   filepath.Join(dataDir, PresetsFile),
		logger: logger.With(zap.String("module", "preset_catalog")),
	}
}

// LoadPresets returns every preset in catalog order. A missing file yields
// no presets.
func (c *PresetCatalog) LoadPresets(ctx context.Context) ([]character.Record, error) {
	data, err := os.ReadFile(c.path)
	if errors.Is(err, os.ErrNotExist) {
		return []character.Record{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", PresetsFile, err)
	}

	var presets []character.Record
	if err := json.Unmarshal(data, &presets); err != nil {
		c.logger.Error("preset catalog unreadable", zap.String("path", c.path), zap.Error(err))
		return nil, fmt.Errorf("%w: %s: %v", character.ErrStoreUnavailable, PresetsFile, err)
	}
	if presets == nil {
		presets = []character.Record{}
	}
	return presets, nil
}

// Exists reports whether presets.json is present.
func (c *PresetCatalog) Exists(ctx context.Context) (bool, error) {
	_, err := os.Stat(c.path)
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to check %s: %w", PresetsFile, err)
	}
	return true, nil
}

// Ensure PresetCatalog implements the interface
var _ secondary.PresetCatalog = (*PresetCatalog)(nil)
