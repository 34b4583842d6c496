package character

import (
	"encoding/json"
	"testing"
)

func TestAbilityScores_MarshalJSON(t *testing.T) {
	tests := []struct {
		name   string
		scores AbilityScores
		want   string
	}{
		{
			name: "sheet order",
			scores: AbilityScores{
				Charisma: "14", Wisdom: "10", Intelligence: "8",
				Constitution: "16", Dexterity: "12", Strength: "18",
			},
			want: `{"Strength":"18","Dexterity":"12","Constitution":"16","Intelligence":"8","Wisdom":"10","Charisma":"14"}`,
		},
		{
			name:   "unknown keys follow sorted",
			scores: AbilityScores{"Luck": "3", Wisdom: "10", "Agility": "5"},
			want:   `{"Wisdom":"10","Agility":"5","Luck":"3"}`,
		},
		{
			name:   "empty",
			scores: AbilityScores{},
			want:   `{}`,
		},
		{
			name:   "nil",
			scores: nil,
			want:   `null`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := json.Marshal(tt.scores)
			if err != nil {
				t.Fatalf("Marshal failed: %v", err)
			}
			if string(got) != tt.want {
				t.Errorf("got %s, want %s", got, tt.want)
			}
		})
	}
}

func TestRecord_MarshalKeepsSheetOrder(t *testing.T) {
	rec := Record{
		Name: "Karlach", Class: "Barbarian", Race: "Tiefling", Background: "Soldier",
		Skills: []string{"Athletics", "Intimidation"},
		AbilityScores: AbilityScores{
			Strength: "18", Dexterity: "12", Constitution: "16",
			Intelligence: "8", Wisdom: "10", Charisma: "14",
		},
	}

	got, err := json.Marshal(rec)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	want := `{"name":"Karlach","class":"Barbarian","race":"Tiefling","background":"Soldier",` +
		`"skills":["Athletics","Intimidation"],` +
		`"ability_scores":{"Strength":"18","Dexterity":"12","Constitution":"16","Intelligence":"8","Wisdom":"10","Charisma":"14"}}`
	if string(got) != want {
		t.Errorf("got %s\nwant %s", got, want)
	}

	var back Record
	if err := json.Unmarshal(got, &back); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if !Equal(rec, back) {
		t.Errorf("decoded record differs: %+v", back)
	}
}
