package character

import (
	"reflect"
	"testing"
)

func TestOrderSkills(t *testing.T) {
	catalog := []string{"Acrobatics", "Athletics", "Intimidation", "Stealth"}

	tests := []struct {
		name   string
		skills []string
		want   []string
	}{
		{
			name:   "reorders to catalog order",
			skills: []string{"Stealth", "Athletics"},
			want:   []string{"Athletics", "Stealth"},
		},
		{
			name:   "drops duplicates and blanks",
			skills: []string{"Athletics", "", "Athletics"},
			want:   []string{"Athletics"},
		},
		{
			name:   "unknown skills keep input order after catalog skills",
			skills: []string{"Tinkering", "Intimidation", "Arcana"},
			want:   []string{"Intimidation", "Tinkering", "Arcana"},
		},
		{
			name:   "empty input",
			skills: nil,
			want:   nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := OrderSkills(tt.skills, catalog)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("OrderSkills(%v) = %v, want %v", tt.skills, got, tt.want)
			}
		})
	}
}
