package app

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/example/bg3planner/internal/core/character"
	"github.com/example/bg3planner/internal/core/roster"
	"github.com/example/bg3planner/internal/ports/primary"
	"github.com/example/bg3planner/internal/ports/secondary"
)

// CharacterServiceImpl implements the CharacterService interface.
type CharacterServiceImpl struct {
	characterRepo secondary.CharacterRepository
	presetCatalog secondary.PresetCatalog
	optionCatalog secondary.OptionCatalog
	logWriter     secondary.LogWriter // nil disables the audit log
	logger        *zap.Logger

	optionsOnce sync.Once
	options     *primary.Options
	optionsErr  error
}

// NewCharacterService creates a new CharacterService with injected dependencies.
func NewCharacterService(
	characterRepo secondary.CharacterRepository,
	presetCatalog secondary.PresetCatalog,
	optionCatalog secondary.OptionCatalog,
	logWriter secondary.LogWriter,
	logger *zap.Logger,
) *CharacterServiceImpl {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CharacterServiceImpl{
		characterRepo: characterRepo,
		presetCatalog: presetCatalog,
		optionCatalog: optionCatalog,
		logWriter:     logWriter,
		logger:        logger.With(zap.String("module", "character_service")),
	}
}

// ListRoster returns store characters followed by presets.
func (s *CharacterServiceImpl) ListRoster(ctx context.Context) ([]*primary.Character, error) {
	r, err := s.loadRoster(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]*primary.Character, 0, r.Len())
	for _, e := range r.Entries() {
		out = append(out, toCharacter(r, e))
	}
	return out, nil
}

// GetCharacter resolves a selection to a single character.
func (s *CharacterServiceImpl) GetCharacter(ctx context.Context, ref roster.Ref) (*primary.Character, error) {
	r, err := s.loadRoster(ctx)
	if err != nil {
		return nil, err
	}
	entry, err := r.Resolve(ref)
	if err != nil {
		return nil, err
	}
	return toCharacter(r, entry), nil
}

// CreateCharacter appends a new character built from the form.
func (s *CharacterServiceImpl) CreateCharacter(ctx context.Context, form primary.CharacterForm) (*primary.Character, error) {
	rec, err := s.recordFromForm(ctx, character.Record{}, form)
	if err != nil {
		return nil, err
	}

	idx, err := s.characterRepo.Append(ctx, rec)
	if err != nil {
		return nil, fmt.Errorf("failed to save character: %w", err)
	}

	sel := roster.Selection{Source: roster.SourceStore, Index: idx}
	s.audit(ctx, secondary.ActionCreate, func() error {
		return s.logWriter.LogCreate(ctx, sel.ID(), rec)
	})

	return s.characterAt(ctx, sel)
}

// EditCharacter overwrites a store character. Empty form fields keep the
// current value, the way a form is pre-filled from the selected entry.
func (s *CharacterServiceImpl) EditCharacter(ctx context.Context, ref roster.Ref, form primary.CharacterForm) (*primary.Character, error) {
	r, err := s.loadRoster(ctx)
	if err != nil {
		return nil, err
	}
	entry, err := r.Resolve(ref)
	if err != nil {
		return nil, err
	}

	guard := character.CanEdit(character.SelectionContext{ID: entry.ID(), IsPreset: entry.IsPreset()})
	if err := guard.Error(); err != nil {
		return nil, err
	}

	rec, err := s.recordFromForm(ctx, entry.Record, form)
	if err != nil {
		return nil, err
	}

	if err := s.characterRepo.UpdateAt(ctx, entry.Index, rec); err != nil {
		return nil, fmt.Errorf("failed to update %s: %w", entry.ID(), err)
	}

	s.audit(ctx, secondary.ActionUpdate, func() error {
		return s.logWriter.LogUpdate(ctx, entry.ID(), rec)
	})

	return s.characterAt(ctx, entry.Selection)
}

// DeleteCharacter removes a store character and returns what was removed.
func (s *CharacterServiceImpl) DeleteCharacter(ctx context.Context, ref roster.Ref) (*primary.Character, error) {
	r, err := s.loadRoster(ctx)
	if err != nil {
		return nil, err
	}
	entry, err := r.Resolve(ref)
	if err != nil {
		return nil, err
	}

	guard := character.CanDelete(character.SelectionContext{ID: entry.ID(), IsPreset: entry.IsPreset()})
	if err := guard.Error(); err != nil {
		return nil, err
	}

	removed, err := s.characterRepo.DeleteAt(ctx, entry.Index)
	if err != nil {
		return nil, fmt.Errorf("failed to delete %s: %w", entry.ID(), err)
	}

	s.audit(ctx, secondary.ActionDelete, func() error {
		return s.logWriter.LogDelete(ctx, entry.ID(), removed)
	})

	entry.Record = removed
	return toCharacter(r, entry), nil
}

// CopyCharacter appends a clone of a preset or store character.
func (s *CharacterServiceImpl) CopyCharacter(ctx context.Context, ref roster.Ref) (*primary.CopyCharacterResponse, error) {
	r, err := s.loadRoster(ctx)
	if err != nil {
		return nil, err
	}
	entry, err := r.Resolve(ref)
	if err != nil {
		return nil, err
	}

	guardCtx := character.CopyContext{
		SelectionContext: character.SelectionContext{ID: entry.ID(), IsPreset: entry.IsPreset()},
	}
	if entry.IsPreset() {
		exists, err := s.presetCatalog.Exists(ctx)
		if err != nil {
			return nil, err
		}
		guardCtx.PresetSourceExists = exists
	}
	if err := character.CanCopy(guardCtx).Error(); err != nil {
		return nil, err
	}

	rec := character.Clone(entry.Record)
	idx, err := s.characterRepo.Append(ctx, rec)
	if err != nil {
		return nil, fmt.Errorf("failed to copy %s: %w", entry.ID(), err)
	}

	sel := roster.Selection{Source: roster.SourceStore, Index: idx}
	s.audit(ctx, secondary.ActionCopy, func() error {
		return s.logWriter.LogCopy(ctx, entry.ID(), sel.ID(), rec)
	})

	copied, err := s.characterAt(ctx, sel)
	if err != nil {
		return nil, err
	}
	return &primary.CopyCharacterResponse{
		SourceID:  entry.ID(),
		Character: copied,
	}, nil
}

// GetOptions returns the option catalogs, loading them once.
func (s *CharacterServiceImpl) GetOptions(ctx context.Context) (*primary.Options, error) {
	s.optionsOnce.Do(func() {
		opts := &primary.Options{}
		targets := []struct {
			name string
			dst  *[]string
		}{
			{secondary.CatalogClasses, &opts.Classes},
			{secondary.CatalogRaces, &opts.Races},
			{secondary.CatalogBackgrounds, &opts.Backgrounds},
			{secondary.CatalogSkills, &opts.Skills},
		}
		for _, t := range targets {
			values, err := s.optionCatalog.Load(ctx, t.name)
			if err != nil {
				s.optionsErr = fmt.Errorf("failed to load %s: %w", t.name, err)
				return
			}
			*t.dst = values
		}
		s.options = opts
	})
	return s.options, s.optionsErr
}

// Helper methods

func (s *CharacterServiceImpl) loadRoster(ctx context.Context) (roster.Roster, error) {
	store, err := s.characterRepo.LoadAll(ctx)
	if err != nil {
		return roster.Roster{}, fmt.Errorf("failed to load characters: %w", err)
	}
	presets, err := s.presetCatalog.LoadPresets(ctx)
	if err != nil {
		return roster.Roster{}, fmt.Errorf("failed to load presets: %w", err)
	}
	return roster.Build(store, presets), nil
}

func (s *CharacterServiceImpl) characterAt(ctx context.Context, sel roster.Selection) (*primary.Character, error) {
	r, err := s.loadRoster(ctx)
	if err != nil {
		return nil, err
	}
	entry, err := r.Lookup(sel)
	if err != nil {
		return nil, err
	}
	return toCharacter(r, entry), nil
}

// recordFromForm overlays the non-empty form fields onto base and orders
// skills by the skills catalog.
func (s *CharacterServiceImpl) recordFromForm(ctx context.Context, base character.Record, form primary.CharacterForm) (character.Record, error) {
	rec := character.Clone(base)
	if form.Name != "" {
		rec.Name = form.Name
	}
	if form.Class != "" {
		rec.Class = form.Class
	}
	if form.Race != "" {
		rec.Race = form.Race
	}
	if form.Background != "" {
		rec.Background = form.Background
	}
	if len(form.Skills) > 0 {
		rec.Skills = append([]string(nil), form.Skills...)
	}
	for k, v := range form.AbilityScores {
		if v == "" {
			continue
		}
		if rec.AbilityScores == nil {
			rec.AbilityScores = make(map[string]string, len(character.Abilities))
		}
		rec.AbilityScores[k] = v
	}

	opts, err := s.GetOptions(ctx)
	if err != nil {
		return character.Record{}, err
	}
	rec.Skills = character.OrderSkills(rec.Skills, opts.Skills)

	return rec, nil
}

// audit records a mutation. Failures are logged, never returned.
func (s *CharacterServiceImpl) audit(ctx context.Context, action string, write func() error) {
	if s.logWriter == nil {
		return
	}
	if err := write(); err != nil {
		s.logger.Warn("audit log write failed", zap.String("action", action), zap.Error(err))
	}
}

func toCharacter(r roster.Roster, e roster.Entry) *primary.Character {
	rec := character.Clone(e.Record)
	return &primary.Character{
		ID:            e.ID(),
		Position:      r.Position(e.Selection),
		IsPreset:      e.IsPreset(),
		Name:          rec.Name,
		Class:         rec.Class,
		Race:          rec.Race,
		Background:    rec.Background,
		Skills:        rec.Skills,
		AbilityScores: rec.AbilityScores,
	}
}

// Ensure CharacterServiceImpl implements the interface.
var _ primary.CharacterService = (*CharacterServiceImpl)(nil)
