package app

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/example/bg3planner/internal/core/character"
	"github.com/example/bg3planner/internal/core/roster"
	"github.com/example/bg3planner/internal/ports/primary"
	"github.com/example/bg3planner/internal/ports/secondary"
)

// ============================================================================
// Mock Implementations
// ============================================================================

// mockCharacterRepository implements secondary.CharacterRepository in memory,
// validating the same way the file store does.
type mockCharacterRepository struct {
	records []character.Record
	loadErr error
	writes  int
}

func (m *mockCharacterRepository) LoadAll(ctx context.Context) ([]character.Record, error) {
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	out := make([]character.Record, len(m.records))
	for i, r := range m.records {
		out[i] = character.Clone(r)
	}
	return out, nil
}

func (m *mockCharacterRepository) Append(ctx context.Context, rec character.Record) (int, error) {
	if err := character.Validate(rec); err != nil {
		return 0, err
	}
	m.records = append(m.records, character.Clone(rec))
	m.writes++
	return len(m.records) - 1, nil
}

func (m *mockCharacterRepository) UpdateAt(ctx context.Context, index int, rec character.Record) error {
	if err := character.Validate(rec); err != nil {
		return err
	}
	if err := character.CheckIndex(index, len(m.records)); err != nil {
		return err
	}
	m.records[index] = character.Clone(rec)
	m.writes++
	return nil
}

func (m *mockCharacterRepository) DeleteAt(ctx context.Context, index int) (character.Record, error) {
	if err := character.CheckIndex(index, len(m.records)); err != nil {
		return character.Record{}, err
	}
	removed := m.records[index]
	m.records = append(m.records[:index], m.records[index+1:]...)
	m.writes++
	return removed, nil
}

// mockPresetCatalog implements secondary.PresetCatalog.
type mockPresetCatalog struct {
	presets []character.Record
	missing bool
}

func (m *mockPresetCatalog) LoadPresets(ctx context.Context) ([]character.Record, error) {
	if m.missing {
		return []character.Record{}, nil
	}
	return m.presets, nil
}

func (m *mockPresetCatalog) Exists(ctx context.Context) (bool, error) {
	return !m.missing, nil
}

// mockOptionCatalog implements secondary.OptionCatalog.
type mockOptionCatalog struct {
	lists map[string][]string
	loads int
}

func (m *mockOptionCatalog) Load(ctx context.Context, name string) ([]string, error) {
	m.loads++
	if v, ok := m.lists[name]; ok {
		return v, nil
	}
	return []string{}, nil
}

// mockLogWriter implements secondary.LogWriter, recording calls.
type mockLogWriter struct {
	entries []string
	err     error
}

func (m *mockLogWriter) LogCreate(ctx context.Context, entityID string, rec character.Record) error {
	m.entries = append(m.entries, "create "+entityID+" "+rec.Name)
	return m.err
}

func (m *mockLogWriter) LogUpdate(ctx context.Context, entityID string, rec character.Record) error {
	m.entries = append(m.entries, "update "+entityID+" "+rec.Name)
	return m.err
}

func (m *mockLogWriter) LogDelete(ctx context.Context, entityID string, rec character.Record) error {
	m.entries = append(m.entries, "delete "+entityID+" "+rec.Name)
	return m.err
}

func (m *mockLogWriter) LogCopy(ctx context.Context, sourceID, entityID string, rec character.Record) error {
	m.entries = append(m.entries, "copy "+sourceID+"->"+entityID+" "+rec.Name)
	return m.err
}

var (
	_ secondary.CharacterRepository = (*mockCharacterRepository)(nil)
	_ secondary.PresetCatalog       = (*mockPresetCatalog)(nil)
	_ secondary.OptionCatalog       = (*mockOptionCatalog)(nil)
	_ secondary.LogWriter           = (*mockLogWriter)(nil)
)

// ============================================================================
// Test Helper
// ============================================================================

func scores(str, dex, con, intel, wis, cha string) map[string]string {
	return map[string]string{
		character.Strength:     str,
		character.Dexterity:    dex,
		character.Constitution: con,
		character.Intelligence: intel,
		character.Wisdom:       wis,
		character.Charisma:     cha,
	}
}

func karlachForm() primary.CharacterForm {
	return primary.CharacterForm{
		Name:          "Karlach",
		Class:         "Barbarian",
		Race:          "Tiefling",
		Background:    "Soldier",
		Skills:        []string{"Intimidation", "Athletics"},
		AbilityScores: scores("18", "12", "16", "8", "10", "14"),
	}
}

func preset(name, class string) character.Record {
	return character.Record{
		Name:          name,
		Class:         class,
		Race:          "High Elf",
		Background:    "Charlatan",
		Skills:        []string{"Stealth"},
		AbilityScores: scores("8", "17", "14", "13", "13", "10"),
	}
}

type testDeps struct {
	repo    *mockCharacterRepository
	presets *mockPresetCatalog
	options *mockOptionCatalog
	log     *mockLogWriter
}

func newTestCharacterService() (*CharacterServiceImpl, *testDeps) {
	deps := &testDeps{
		repo: &mockCharacterRepository{},
		presets: &mockPresetCatalog{presets: []character.Record{
			preset("Astarion", "Rogue"),
			preset("Gale", "Wizard"),
		}},
		options: &mockOptionCatalog{lists: map[string][]string{
			secondary.CatalogClasses: {"Barbarian", "Rogue", "Wizard"},
			secondary.CatalogSkills:  {"Athletics", "Intimidation", "Stealth"},
		}},
		log: &mockLogWriter{},
	}
	service := NewCharacterService(deps.repo, deps.presets, deps.options, deps.log, nil)
	return service, deps
}

func storeRef(i int) roster.Ref {
	return roster.Ref{Selection: roster.Selection{Source: roster.SourceStore, Index: i}}
}

func presetRef(i int) roster.Ref {
	return roster.Ref{Selection: roster.Selection{Source: roster.SourcePreset, Index: i}}
}

// ============================================================================
// CreateCharacter Tests
// ============================================================================

func TestCreateCharacter_Success(t *testing.T) {
	service, deps := newTestCharacterService()
	ctx := context.Background()

	c, err := service.CreateCharacter(ctx, karlachForm())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if c.ID != "CHAR-001" || c.Position != 1 || c.IsPreset {
		t.Errorf("got %s pos %d preset=%v, want CHAR-001 pos 1", c.ID, c.Position, c.IsPreset)
	}
	if !reflect.DeepEqual(c.Skills, []string{"Athletics", "Intimidation"}) {
		t.Errorf("skills not in catalog order: %v", c.Skills)
	}
	if len(deps.repo.records) != 1 {
		t.Fatalf("expected 1 stored record, got %d", len(deps.repo.records))
	}
	if !reflect.DeepEqual(deps.log.entries, []string{"create CHAR-001 Karlach"}) {
		t.Errorf("audit entries = %v", deps.log.entries)
	}
}

func TestCreateCharacter_ValidationError(t *testing.T) {
	service, deps := newTestCharacterService()
	ctx := context.Background()

	form := karlachForm()
	form.Background = ""

	_, err := service.CreateCharacter(ctx, form)
	if !errors.Is(err, character.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
	if deps.repo.writes != 0 {
		t.Errorf("expected no writes, got %d", deps.repo.writes)
	}
	if len(deps.log.entries) != 0 {
		t.Errorf("expected no audit entries, got %v", deps.log.entries)
	}
}

func TestCreateCharacter_AuditFailureIsNotFatal(t *testing.T) {
	service, deps := newTestCharacterService()
	deps.log.err = errors.New("database is locked")

	if _, err := service.CreateCharacter(context.Background(), karlachForm()); err != nil {
		t.Fatalf("expected audit failure to be swallowed, got %v", err)
	}
	if len(deps.repo.records) != 1 {
		t.Errorf("expected record to be stored")
	}
}

// ============================================================================
// ListRoster / GetCharacter Tests
// ============================================================================

func TestListRoster_StoreThenPresets(t *testing.T) {
	service, _ := newTestCharacterService()
	ctx := context.Background()
	service.CreateCharacter(ctx, karlachForm())

	list, err := service.ListRoster(ctx)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	var ids []string
	for _, c := range list {
		ids = append(ids, c.ID)
	}
	want := []string{"CHAR-001", "PRESET-001", "PRESET-002"}
	if !reflect.DeepEqual(ids, want) {
		t.Errorf("ids = %v, want %v", ids, want)
	}
	if list[2].Position != 3 || !list[2].IsPreset {
		t.Errorf("PRESET-002 = pos %d preset=%v, want pos 3 preset", list[2].Position, list[2].IsPreset)
	}
}

func TestListRoster_StoreUnavailable(t *testing.T) {
	service, deps := newTestCharacterService()
	deps.repo.loadErr = character.ErrStoreUnavailable

	_, err := service.ListRoster(context.Background())
	if !errors.Is(err, character.ErrStoreUnavailable) {
		t.Errorf("expected ErrStoreUnavailable, got %v", err)
	}
}

func TestGetCharacter_ByPosition(t *testing.T) {
	service, _ := newTestCharacterService()
	ctx := context.Background()
	service.CreateCharacter(ctx, karlachForm())

	c, err := service.GetCharacter(ctx, roster.Ref{Position: 2})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if c.Name != "Astarion" || c.ID != "PRESET-001" {
		t.Errorf("position 2 = %s (%s), want Astarion (PRESET-001)", c.Name, c.ID)
	}
}

// ============================================================================
// EditCharacter Tests
// ============================================================================

func TestEditCharacter_OverlaysForm(t *testing.T) {
	service, deps := newTestCharacterService()
	ctx := context.Background()
	service.CreateCharacter(ctx, karlachForm())

	c, err := service.EditCharacter(ctx, storeRef(0), primary.CharacterForm{
		Class:         "Fighter",
		AbilityScores: map[string]string{character.Strength: "20"},
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if c.Class != "Fighter" || c.Name != "Karlach" {
		t.Errorf("got %s the %s, want Karlach the Fighter", c.Name, c.Class)
	}
	if c.AbilityScores[character.Strength] != "20" || c.AbilityScores[character.Charisma] != "14" {
		t.Errorf("ability scores not merged: %v", c.AbilityScores)
	}
	if deps.log.entries[len(deps.log.entries)-1] != "update CHAR-001 Karlach" {
		t.Errorf("audit entries = %v", deps.log.entries)
	}
}

func TestEditCharacter_PresetRefused(t *testing.T) {
	service, deps := newTestCharacterService()

	_, err := service.EditCharacter(context.Background(), presetRef(0), primary.CharacterForm{Name: "Astarion Ancunín"})
	if err == nil {
		t.Fatal("expected error editing a preset")
	}
	if deps.repo.writes != 0 {
		t.Errorf("expected no writes, got %d", deps.repo.writes)
	}
	if deps.presets.presets[0].Name != "Astarion" {
		t.Error("preset catalog was mutated")
	}
}

func TestEditCharacter_StaleIndex(t *testing.T) {
	service, _ := newTestCharacterService()

	_, err := service.EditCharacter(context.Background(), storeRef(0), karlachForm())
	if !errors.Is(err, character.ErrIndexOutOfRange) {
		t.Errorf("expected ErrIndexOutOfRange, got %v", err)
	}
}

// ============================================================================
// DeleteCharacter Tests
// ============================================================================

func TestDeleteCharacter_Success(t *testing.T) {
	service, deps := newTestCharacterService()
	ctx := context.Background()
	service.CreateCharacter(ctx, karlachForm())
	form := karlachForm()
	form.Name = "Wyll"
	service.CreateCharacter(ctx, form)

	removed, err := service.DeleteCharacter(ctx, storeRef(0))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if removed.Name != "Karlach" || removed.ID != "CHAR-001" {
		t.Errorf("removed %s (%s), want Karlach (CHAR-001)", removed.Name, removed.ID)
	}
	if len(deps.repo.records) != 1 || deps.repo.records[0].Name != "Wyll" {
		t.Errorf("remaining = %v", deps.repo.records)
	}
}

func TestDeleteCharacter_PresetRefused(t *testing.T) {
	service, deps := newTestCharacterService()

	_, err := service.DeleteCharacter(context.Background(), roster.Ref{Position: 1})
	if err == nil {
		t.Fatal("expected error deleting a preset")
	}
	if len(deps.presets.presets) != 2 {
		t.Error("preset catalog was mutated")
	}
}

func TestDeleteCharacter_OutOfRange(t *testing.T) {
	service, _ := newTestCharacterService()

	_, err := service.DeleteCharacter(context.Background(), storeRef(3))
	if !errors.Is(err, character.ErrIndexOutOfRange) {
		t.Errorf("expected ErrIndexOutOfRange, got %v", err)
	}
}

// ============================================================================
// CopyCharacter Tests
// ============================================================================

func TestCopyCharacter_Preset(t *testing.T) {
	service, deps := newTestCharacterService()
	ctx := context.Background()

	resp, err := service.CopyCharacter(ctx, presetRef(1))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if resp.SourceID != "PRESET-002" || resp.Character.ID != "CHAR-001" {
		t.Errorf("copy %s -> %s, want PRESET-002 -> CHAR-001", resp.SourceID, resp.Character.ID)
	}
	if resp.Character.Name != "Gale" {
		t.Errorf("copied name = %s, want Gale", resp.Character.Name)
	}
	if len(deps.presets.presets) != 2 {
		t.Error("preset catalog changed size")
	}
	if !reflect.DeepEqual(deps.log.entries, []string{"copy PRESET-002->CHAR-001 Gale"}) {
		t.Errorf("audit entries = %v", deps.log.entries)
	}

	// The copy is independent of the preset.
	deps.repo.records[0].AbilityScores[character.Strength] = "1"
	if deps.presets.presets[1].AbilityScores[character.Strength] != "8" {
		t.Error("copy shares state with the preset")
	}
}

func TestCopyCharacter_DuplicatesStoreCharacter(t *testing.T) {
	service, deps := newTestCharacterService()
	ctx := context.Background()
	service.CreateCharacter(ctx, karlachForm())

	resp, err := service.CopyCharacter(ctx, storeRef(0))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if resp.Character.ID != "CHAR-002" {
		t.Errorf("duplicate ID = %s, want CHAR-002", resp.Character.ID)
	}
	if len(deps.repo.records) != 2 {
		t.Errorf("expected 2 records, got %d", len(deps.repo.records))
	}
}

func TestCopyCharacter_PresetSourceUnavailable(t *testing.T) {
	service, deps := newTestCharacterService()
	deps.presets.missing = true
	deps.presets.presets = nil

	// With no presets file the roster has no presets, so the selection misses.
	_, err := service.CopyCharacter(context.Background(), presetRef(0))
	if err == nil {
		t.Fatal("expected error")
	}
	if deps.repo.writes != 0 {
		t.Errorf("expected no writes, got %d", deps.repo.writes)
	}
}

func TestCopyCharacter_PresetFileRemoved(t *testing.T) {
	service, deps := newTestCharacterService()
	service.presetCatalog = &vanishingPresetCatalog{deps.presets}

	_, err := service.CopyCharacter(context.Background(), presetRef(0))
	if !errors.Is(err, character.ErrPresetSourceUnavailable) {
		t.Errorf("expected ErrPresetSourceUnavailable, got %v", err)
	}
}

// vanishingPresetCatalog lists presets but reports the source as gone, as
// when presets.json is removed between listing and copying.
type vanishingPresetCatalog struct {
	*mockPresetCatalog
}

func (v *vanishingPresetCatalog) Exists(ctx context.Context) (bool, error) {
	return false, nil
}

// ============================================================================
// GetOptions Tests
// ============================================================================

func TestGetOptions_LoadedOnce(t *testing.T) {
	service, deps := newTestCharacterService()
	ctx := context.Background()

	opts, err := service.GetOptions(ctx)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !reflect.DeepEqual(opts.Classes, []string{"Barbarian", "Rogue", "Wizard"}) {
		t.Errorf("classes = %v", opts.Classes)
	}
	if opts.Races == nil || len(opts.Races) != 0 {
		t.Errorf("expected empty races, got %v", opts.Races)
	}

	service.GetOptions(ctx)
	if deps.options.loads != 4 {
		t.Errorf("expected 4 catalog loads, got %d", deps.options.loads)
	}
}
