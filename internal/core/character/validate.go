package character

import (
	"errors"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func recordValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	return validate
}

// Validate checks the required-fields invariant: name, class, race,
// background non-empty, at least one non-empty skill, and a non-empty
// value for each of the six abilities.
func Validate(r Record) error {
	var fields []string
	seen := make(map[string]bool)
	add := func(f string) {
		if !seen[f] {
			seen[f] = true
			fields = append(fields, f)
		}
	}

	if err := recordValidator().Struct(r); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return err
		}
		for _, fe := range verrs {
			add(jsonField(fe.StructField()))
		}
	}

	if len(r.AbilityScores) > 0 {
		for _, ability := range Abilities {
			if r.AbilityScores[ability] == "" {
				add("ability_scores." + ability)
			}
		}
	}

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

func jsonField(structField string) string {
	switch {
	case structField == "Name":
		return "name"
	case structField == "Class":
		return "class"
	case structField == "Race":
		return "race"
	case structField == "Background":
		return "background"
	case strings.HasPrefix(structField, "Skills"):
		return "skills"
	case structField == "AbilityScores":
		return "ability_scores"
	}
	return structField
}
