// Package primary defines the primary ports (driving adapters) for the application.
package primary

import (
	"context"

	"github.com/example/bg3planner/internal/core/roster"
)

// CharacterService defines the primary port for character sheet operations.
// Every action takes the selection explicitly; the service holds no
// "currently selected" state.
type CharacterService interface {
	// ListRoster returns store characters followed by presets.
	ListRoster(ctx context.Context) ([]*Character, error)

	// GetCharacter resolves a selection to a single character.
	GetCharacter(ctx context.Context, ref roster.Ref) (*Character, error)

	// CreateCharacter appends a new character built from the form.
	CreateCharacter(ctx context.Context, form CharacterForm) (*Character, error)

	// EditCharacter overwrites a store character. Empty form fields keep
	// the current value.
	EditCharacter(ctx context.Context, ref roster.Ref, form CharacterForm) (*Character, error)

	// DeleteCharacter removes a store character and returns what was removed.
	DeleteCharacter(ctx context.Context, ref roster.Ref) (*Character, error)

	// CopyCharacter appends a clone of a preset or store character.
	CopyCharacter(ctx context.Context, ref roster.Ref) (*CopyCharacterResponse, error)

	// GetOptions returns the option catalogs.
	GetOptions(ctx context.Context) (*Options, error)
}

// CharacterForm carries the form field state of a save action.
type CharacterForm struct {
	Name          string
	Class         string
	Race          string
	Background    string
	Skills        []string
	AbilityScores map[string]string
}

// IsEmpty reports whether no field was filled in.
func (f CharacterForm) IsEmpty() bool {
	return f.Name == "" && f.Class == "" && f.Race == "" && f.Background == "" &&
		len(f.Skills) == 0 && len(f.AbilityScores) == 0
}

// Character represents one roster entry at the port boundary.
type Character struct {
	ID            string // CHAR-001, PRESET-001
	Position      int    // one-based position in the combined list
	IsPreset      bool
	Name          string
	Class         string
	Race          string
	Background    string
	Skills        []string
	AbilityScores map[string]string
}

// CopyCharacterResponse contains the result of a copy.
type CopyCharacterResponse struct {
	SourceID  string
	Character *Character
}

// Options holds the selectable values for each form field.
type Options struct {
	Classes     []string
	Races       []string
	Backgrounds []string
	Skills      []string
}
