// Package secondary defines the secondary ports (driven adapters) for the application.
// These are the interfaces through which the application drives external systems.
package secondary

import (
	"context"

	"github.com/example/bg3planner/internal/core/character"
)

// CharacterRepository defines the secondary port for the user's characters.
// Positions are zero-based and refer to the order returned by LoadAll.
type CharacterRepository interface {
	// LoadAll returns every stored character in file order.
	LoadAll(ctx context.Context) ([]character.Record, error)

	// Append validates and stores a new character, returning its position.
	Append(ctx context.Context, rec character.Record) (int, error)

	// UpdateAt validates and replaces the character at index.
	UpdateAt(ctx context.Context, index int, rec character.Record) error

	// DeleteAt removes the character at index and returns it.
	DeleteAt(ctx context.Context, index int) (character.Record, error)
}

// PresetCatalog defines the secondary port for the read-only preset characters.
type PresetCatalog interface {
	// LoadPresets returns every preset in catalog order.
	LoadPresets(ctx context.Context) ([]character.Record, error)

	// Exists reports whether the preset source is present at all.
	Exists(ctx context.Context) (bool, error)
}

// Option catalog names.
const (
	CatalogClasses     = "classes"
	CatalogRaces       = "races"
	CatalogBackgrounds = "backgrounds"
	CatalogSkills      = "skills"
)

// OptionCatalog defines the secondary port for selectable option lists.
type OptionCatalog interface {
	// Load returns the named option list; a missing source yields an empty list.
	Load(ctx context.Context, name string) ([]string, error)
}
