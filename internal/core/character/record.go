// Package character contains the pure business logic for character records.
// Nothing in this package touches the filesystem.
package character

// Ability names in sheet order.
const (
	Strength     = "Strength"
	Dexterity    = "Dexterity"
	Constitution = "Constitution"
	Intelligence = "Intelligence"
	Wisdom       = "Wisdom"
	Charisma     = "Charisma"
)

// Abilities lists the six ability keys every persisted record carries.
var Abilities = []string{Strength, Dexterity, Constitution, Intelligence, Wisdom, Charisma}

// Record is one character sheet as persisted in characters.json and presets.json.
type Record struct {
	Name          string            `json:"name" validate:"required"`
	Class         string            `json:"class" validate:"required"`
	Race          string            `json:"race" validate:"required"`
	Background    string            `json:"background" validate:"required"`
	Skills        []string          `json:"skills" validate:"required,min=1,dive,required"`
	AbilityScores AbilityScores     `json:"ability_scores" validate:"required,min=1"`
}

// Clone returns a deep copy of the record.
func Clone(r Record) Record {
	out := Record{
		Name:       r.Name,
		Class:      r.Class,
		Race:       r.Race,
		Background: r.Background,
	}
	if r.Skills != nil {
		out.Skills = append([]string(nil), r.Skills...)
	}
	if r.AbilityScores != nil {
		out.AbilityScores = make(AbilityScores, len(r.AbilityScores))
		for k, v := range r.AbilityScores {
			out.AbilityScores[k] = v
		}
	}
	return out
}

// Equal reports whether two records hold the same field values.
// Skill order is significant.
func Equal(a, b Record) bool {
	if a.Name != b.Name || a.Class != b.Class || a.Race != b.Race || a.Background != b.Background {
		return false
	}
	if len(a.Skills) != len(b.Skills) || len(a.AbilityScores) != len(b.AbilityScores) {
		return false
	}
	for i := range a.Skills {
		if a.Skills[i] != b.Skills[i] {
			return false
		}
	}
	for k, v := range a.AbilityScores {
		if bv, ok := b.AbilityScores[k]; !ok || bv != v {
			return false
		}
	}
	return true
}
