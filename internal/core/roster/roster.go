// Package roster builds the combined character list shown to the user and
// resolves selections against it. Every entry remembers which collection it
// came from and its index there, so no caller does position arithmetic.
package roster

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/example/bg3planner/internal/core/character"
)

// Source identifies the collection an entry belongs to.
type Source int

const (
	SourceStore Source = iota
	SourcePreset
)

func (s Source) String() string {
	if s == SourcePreset {
		return "preset"
	}
	return "character"
}

// ID prefixes.
const (
	StorePrefix  = "CHAR"
	PresetPrefix = "PRESET"
)

// Selection is a tagged reference into one of the two collections.
// Index is zero-based.
type Selection struct {
	Source Source
	Index  int
}

// ID renders the selection for display, e.g. CHAR-001 or PRESET-002.
func (s Selection) ID() string {
	prefix := StorePrefix
	if s.Source == SourcePreset {
		prefix = PresetPrefix
	}
	return fmt.Sprintf("%s-%03d", prefix, s.Index+1)
}

// IsPreset reports whether the selection points into the preset catalog.
func (s Selection) IsPreset() bool {
	return s.Source == SourcePreset
}

// Entry is one row of the combined list.
type Entry struct {
	Selection
	Record character.Record
}

// Roster is the combined list: store characters first, presets second.
type Roster struct {
	entries    []Entry
	storeCount int
}

// Build creates the combined list.
func Build(store, presets []character.Record) Roster {
	entries := make([]Entry, 0, len(store)+len(presets))
	for i, r := range store {
		entries = append(entries, Entry{Selection: Selection{Source: SourceStore, Index: i}, Record: r})
	}
	for i, r := range presets {
		entries = append(entries, Entry{Selection: Selection{Source: SourcePreset, Index: i}, Record: r})
	}
	return Roster{entries: entries, storeCount: len(store)}
}

// Entries returns all rows in display order.
func (r Roster) Entries() []Entry {
	return r.entries
}

// Len returns the number of rows.
func (r Roster) Len() int {
	return len(r.entries)
}

// StoreCount returns the number of store characters.
func (r Roster) StoreCount() int {
	return r.storeCount
}

// PresetCount returns the number of presets.
func (r Roster) PresetCount() int {
	return len(r.entries) - r.storeCount
}

// Position returns the one-based display position of a selection.
func (r Roster) Position(sel Selection) int {
	if sel.Source == SourcePreset {
		return r.storeCount + sel.Index + 1
	}
	return sel.Index + 1
}

// At returns the row at a one-based display position.
func (r Roster) At(pos int) (Entry, error) {
	if err := character.CheckIndex(pos-1, len(r.entries)); err != nil {
		return Entry{}, fmt.Errorf("no entry at position %d: %w", pos, err)
	}
	return r.entries[pos-1], nil
}

// Lookup returns the row for a tagged selection.
func (r Roster) Lookup(sel Selection) (Entry, error) {
	switch sel.Source {
	case SourceStore:
		if err := character.CheckIndex(sel.Index, r.storeCount); err != nil {
			return Entry{}, fmt.Errorf("%s not found: %w", sel.ID(), err)
		}
		return r.entries[sel.Index], nil
	case SourcePreset:
		if err := character.CheckIndex(sel.Index, r.PresetCount()); err != nil {
			return Entry{}, fmt.Errorf("%s not found: %w", sel.ID(), err)
		}
		return r.entries[r.storeCount+sel.Index], nil
	}
	return Entry{}, fmt.Errorf("unknown source %d", sel.Source)
}

// Ref is a parsed user reference: either a tagged selection or a bare
// display position that still needs resolving against a roster.
type Ref struct {
	Selection Selection
	Position  int // one-based; zero when Selection is set
}

// Resolve turns the reference into an entry of the roster.
func (r Roster) Resolve(ref Ref) (Entry, error) {
	if ref.Position > 0 {
		return r.At(ref.Position)
	}
	return r.Lookup(ref.Selection)
}

// ParseRef parses CHAR-001, preset-2 or a bare display position like 3.
func ParseRef(s string) (Ref, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Ref{}, fmt.Errorf("empty selection")
	}

	if n, err := strconv.Atoi(s); err == nil {
		if n < 1 {
			return Ref{}, fmt.Errorf("invalid position %q: positions start at 1", s)
		}
		return Ref{Position: n}, nil
	}

	prefix, num, ok := strings.Cut(strings.ToUpper(s), "-")
	if !ok {
		return Ref{}, fmt.Errorf("invalid selection %q: expected %s-N, %s-N or a list position", s, StorePrefix, PresetPrefix)
	}

	var source Source
	switch prefix {
	case StorePrefix:
		source = SourceStore
	case PresetPrefix:
		source = SourcePreset
	default:
		return Ref{}, fmt.Errorf("invalid selection %q: unknown prefix %s", s, prefix)
	}

	n, err := strconv.Atoi(num)
	if err != nil || n < 1 {
		return Ref{}, fmt.Errorf("invalid selection %q: number must be 1 or greater", s)
	}

	return Ref{Selection: Selection{Source: source, Index: n - 1}}, nil
}
