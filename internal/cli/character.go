package cli

import (
	"github.com/spf13/cobra"

	"github.com/example/bg3planner/internal/core/character"
	"github.com/example/bg3planner/internal/ports/primary"
	"github.com/example/bg3planner/internal/wire"
)

// formFlags holds the character form as command flags.
type formFlags struct {
	name       string
	class      string
	race       string
	background string
	skills     []string
	scores     map[string]*string
}

// abilityFlags maps flag names to ability keys, in sheet order.
var abilityFlags = []struct {
	flag    string
	ability string
}{
	{"str", character.Strength},
	{"dex", character.Dexterity},
	{"con", character.Constitution},
	{"int", character.Intelligence},
	{"wis", character.Wisdom},
	{"cha", character.Charisma},
}

func addFormFlags(cmd *cobra.Command) *formFlags {
	f := &formFlags{scores: make(map[string]*string, len(abilityFlags))}

	cmd.Flags().StringVar(&f.name, "name", "", "Character name")
	cmd.Flags().StringVar(&f.class, "class", "", "Class (see: bg3 options classes)")
	cmd.Flags().StringVar(&f.race, "race", "", "Race (see: bg3 options races)")
	cmd.Flags().StringVar(&f.background, "background", "", "Background (see: bg3 options backgrounds)")
	cmd.Flags().StringSliceVar(&f.skills, "skill", nil, "Skill proficiency (repeatable or comma-separated)")
	for _, a := range abilityFlags {
		f.scores[a.ability] = cmd.Flags().String(a.flag, "", a.ability+" score")
	}

	return f
}

// form converts the flags into a CharacterForm. Unset abilities are omitted.
func (f *formFlags) form() primary.CharacterForm {
	form := primary.CharacterForm{
		Name:       f.name,
		Class:      f.class,
		Race:       f.race,
		Background: f.background,
		Skills:     f.skills,
	}
	for ability, v := range f.scores {
		if *v == "" {
			continue
		}
		if form.AbilityScores == nil {
			form.AbilityScores = make(map[string]string)
		}
		form.AbilityScores[ability] = *v
	}
	return form
}

// ListCmd returns the list command
func ListCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List saved characters and presets",
		Long: `List saved characters followed by the read-only presets.

The # column is the position used by show, edit, delete and copy;
IDs (CHAR-001, PRESET-001) work as well.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return wire.CharacterAdapter().List(NewContext())
		},
	}
}

// ShowCmd returns the show command
func ShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show [selection]",
		Short: "Show a character sheet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return wire.CharacterAdapter().Show(NewContext(), args[0])
		},
	}
}

// CreateCmd returns the create command
func CreateCmd() *cobra.Command {
	var f *formFlags

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new character",
		Long: `Create a new character and append it to characters.json.

Every field is required: name, class, race, background, at least one
skill, and all six ability scores.

Examples:
  bg3 create --name Tav --class Fighter --race Human --background Soldier \
    --skill Athletics --skill Intimidation \
    --str 16 --dex 12 --con 14 --int 10 --wis 12 --cha 8`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return wire.CharacterAdapter().Create(NewContext(), f.form())
		},
	}
	f = addFormFlags(cmd)

	return cmd
}

// EditCmd returns the edit command
func EditCmd() *cobra.Command {
	var f *formFlags

	cmd := &cobra.Command{
		Use:   "edit [selection]",
		Short: "Edit a saved character",
		Long: `Overwrite fields of a saved character. Flags that are not passed keep
their current value; --skill replaces the whole skill list.

Presets are read-only: copy one first, then edit the copy.

Examples:
  bg3 edit CHAR-001 --class Paladin
  bg3 edit 2 --skill Arcana,History --int 17`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return wire.CharacterAdapter().Edit(NewContext(), args[0], f.form())
		},
	}
	f = addFormFlags(cmd)

	return cmd
}

// DeleteCmd returns the delete command
func DeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "delete [selection]",
		Aliases: []string{"rm"},
		Short:   "Delete a saved character",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return wire.CharacterAdapter().Delete(NewContext(), args[0])
		},
	}
}

// CopyCmd returns the copy command
func CopyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "copy [selection]",
		Short: "Copy a preset (or duplicate a character) into your characters",
		Long: `Append a copy of the selected entry to characters.json.

Examples:
  bg3 copy PRESET-003
  bg3 copy CHAR-001`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return wire.CharacterAdapter().Copy(NewContext(), args[0])
		},
	}
}

// OptionsCmd returns the options command
func OptionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "options [catalog]",
		Short:     "Show the selectable classes, races, backgrounds and skills",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{"classes", "races", "backgrounds", "skills"},
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog := ""
			if len(args) == 1 {
				catalog = args[0]
			}
			return wire.CharacterAdapter().Options(NewContext(), catalog)
		},
	}
}
