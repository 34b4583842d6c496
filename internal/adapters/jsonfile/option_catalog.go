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

// OptionCatalog implements secondary.OptionCatalog: each named list lives in
// <dataDir>/<name>.json as a JSON array of strings.
type OptionCatalog struct {
	dataDir string
	logger  *zap.Logger
}

// NewOptionCatalog creates an option catalog rooted at dataDir.
func NewOptionCatalog(dataDir string, logger *zap.Logger) *OptionCatalog {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &OptionCatalog{
		dataDir: dataDir,
		logger:  logger.With(zap.String("module", "option_catalog")),
	}
}

// Load returns the named option list. A missing file yields an empty list.
func (c *OptionCatalog) Load(ctx context.Context, name string) ([]string, error) {
	path := filepath.Join(c.dataDir, name+".json")
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		c.logger.Debug("option catalog absent", zap.String("catalog", name))
		return []string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s catalog: %w", name, err)
	}

	var values []string
	if err := json.Unmarshal(data, &values); err != nil {
		return nil, fmt.Errorf("%w: %s.json: %v", character.ErrStoreUnavailable, name, err)
	}
	if values == nil {
		values = []string{}
	}
	return values, nil
}

// Ensure OptionCatalog implements the interface
var _ secondary.OptionCatalog = (*OptionCatalog)(nil)
