// Package cli provides thin CLI adapters that translate between CLI concerns
// and application services. Adapters handle argument parsing, output formatting,
// but delegate business logic to services.
package cli

import (
	"context"
	"fmt"
	"hash/fnv"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/example/bg3planner/internal/core/character"
	"github.com/example/bg3planner/internal/core/roster"
	"github.com/example/bg3planner/internal/ports/primary"
)

// CharacterAdapter is a thin adapter that translates CLI operations to CharacterService calls.
type CharacterAdapter struct {
	service primary.CharacterService
	out     io.Writer
}

// NewCharacterAdapter creates a new CharacterAdapter with the given service.
func NewCharacterAdapter(service primary.CharacterService, out io.Writer) *CharacterAdapter {
	return &CharacterAdapter{
		service: service,
		out:     out,
	}
}

// List prints the combined roster: characters first, then presets.
func (a *CharacterAdapter) List(ctx context.Context) error {
	entries, err := a.service.ListRoster(ctx)
	if err != nil {
		return err
	}

	if len(entries) == 0 {
		fmt.Fprintln(a.out, "No characters found")
		fmt.Fprintln(a.out, "  Create one with: bg3 create --name ... (or run bg3 init for presets)")
		return nil
	}

	fmt.Fprintf(a.out, "\n%-4s %-11s %-20s %-12s %-16s %s\n", "#", "ID", "NAME", "CLASS", "RACE", "BACKGROUND")
	fmt.Fprintln(a.out, "──────────────────────────────────────────────────────────────────────────────")
	for _, c := range entries {
		fmt.Fprintf(a.out, "%-4d %s %-20s %-12s %-16s %s\n",
			c.Position, padID(c.ID, 11), c.Name, c.Class, c.Race, c.Background)
	}
	fmt.Fprintln(a.out)

	return nil
}

// Show prints one character sheet.
func (a *CharacterAdapter) Show(ctx context.Context, selection string) error {
	ref, err := roster.ParseRef(selection)
	if err != nil {
		return err
	}
	c, err := a.service.GetCharacter(ctx, ref)
	if err != nil {
		return err
	}

	a.printSheet(c)
	return nil
}

// Create saves a new character from form flags.
func (a *CharacterAdapter) Create(ctx context.Context, form primary.CharacterForm) error {
	c, err := a.service.CreateCharacter(ctx, form)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "✓ Character saved as %s: %s\n", colorizeID(c.ID), c.Name)
	return nil
}

// Edit overwrites the selected character with the non-empty form fields.
func (a *CharacterAdapter) Edit(ctx context.Context, selection string, form primary.CharacterForm) error {
	if form.IsEmpty() {
		return fmt.Errorf("nothing to change: pass at least one field flag")
	}
	ref, err := roster.ParseRef(selection)
	if err != nil {
		return err
	}

	c, err := a.service.EditCharacter(ctx, ref, form)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "✓ Character %s updated: %s\n", colorizeID(c.ID), c.Name)
	return nil
}

// Delete removes the selected character.
func (a *CharacterAdapter) Delete(ctx context.Context, selection string) error {
	ref, err := roster.ParseRef(selection)
	if err != nil {
		return err
	}

	c, err := a.service.DeleteCharacter(ctx, ref)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "✓ Deleted character %s: %s\n", c.ID, c.Name)
	return nil
}

// Copy clones the selected preset or character into the store.
func (a *CharacterAdapter) Copy(ctx context.Context, selection string) error {
	ref, err := roster.ParseRef(selection)
	if err != nil {
		return err
	}

	resp, err := a.service.CopyCharacter(ctx, ref)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "✓ Copied %s to %s: %s\n", colorizeID(resp.SourceID), colorizeID(resp.Character.ID), resp.Character.Name)
	return nil
}

// Options prints the option catalogs, or just one when catalog is set.
func (a *CharacterAdapter) Options(ctx context.Context, catalog string) error {
	opts, err := a.service.GetOptions(ctx)
	if err != nil {
		return err
	}

	sections := []struct {
		name   string
		values []string
	}{
		{"classes", opts.Classes},
		{"races", opts.Races},
		{"backgrounds", opts.Backgrounds},
		{"skills", opts.Skills},
	}

	found := false
	for _, s := range sections {
		if catalog != "" && catalog != s.name {
			continue
		}
		found = true
		fmt.Fprintf(a.out, "%s (%d):\n", color.New(color.Bold).Sprint(strings.ToUpper(s.name[:1])+s.name[1:]), len(s.values))
		if len(s.values) == 0 {
			fmt.Fprintln(a.out, "  (none - add "+s.name+".json to the data directory)")
		}
		for _, v := range s.values {
			fmt.Fprintf(a.out, "  %s\n", v)
		}
		fmt.Fprintln(a.out)
	}
	if !found {
		return fmt.Errorf("unknown catalog %q (want classes, races, backgrounds or skills)", catalog)
	}
	return nil
}

func (a *CharacterAdapter) printSheet(c *primary.Character) {
	kind := "Character"
	if c.IsPreset {
		kind = color.New(color.FgYellow).Sprint("Preset")
	}

	fmt.Fprintf(a.out, "\n%s: %s (#%d)\n", kind, colorizeID(c.ID), c.Position)
	fmt.Fprintf(a.out, "Name:       %s\n", c.Name)
	fmt.Fprintf(a.out, "Class:      %s\n", c.Class)
	fmt.Fprintf(a.out, "Race:       %s\n", c.Race)
	fmt.Fprintf(a.out, "Background: %s\n", c.Background)
	fmt.Fprintf(a.out, "Skills:     %s\n", strings.Join(c.Skills, ", "))
	fmt.Fprintln(a.out, "Ability Scores:")
	for _, ability := range character.Abilities {
		fmt.Fprintf(a.out, "  %-13s %s\n", ability, c.AbilityScores[ability])
	}
	fmt.Fprintln(a.out)
}

// colorizeID applies deterministic color to an ID based on its prefix
func colorizeID(id string) string {
	prefix, _, ok := strings.Cut(id, "-")
	if !ok {
		return id
	}
	return getIDColor(prefix).Sprint(id)
}

// getIDColor returns a deterministic color for an ID type (CHAR, PRESET, LOG).
// Uses FNV-1a hash on the ID prefix so all IDs of same type share a color.
func getIDColor(idType string) *color.Color {
	h := fnv.New32a()
	h.Write([]byte(idType))
	hash := h.Sum32()

	// Map to 256-color range (16-231 are the color cube)
	colorCode := 16 + (hash % 216)

	return color.New(color.Attribute(38), color.Attribute(5), color.Attribute(colorCode))
}

// padID pads after colorizing so escape codes don't break column widths.
func padID(id string, width int) string {
	pad := width - len(id)
	if pad < 0 {
		pad = 0
	}
	return colorizeID(id) + strings.Repeat(" ", pad)
}
