package character

import "fmt"

// GuardResult represents the outcome of a guard evaluation.
type GuardResult struct {
	Allowed bool
	Reason  string
	Cause   error // optional sentinel, kept matchable with errors.Is
}

// Error converts the guard result to an error if not allowed.
func (r GuardResult) Error() error {
	if r.Allowed {
		return nil
	}
	if r.Cause != nil {
		return fmt.Errorf("%s: %w", r.Reason, r.Cause)
	}
	return fmt.Errorf("%s", r.Reason)
}

// SelectionContext describes the entry an action was invoked on.
type SelectionContext struct {
	ID       string // CHAR-001, PRESET-002
	IsPreset bool
}

// CanEdit evaluates whether the selected entry can be overwritten.
// Rules:
// - Presets are read-only; copy them into the store first
func CanEdit(ctx SelectionContext) GuardResult {
	if ctx.IsPreset {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("cannot edit preset %s. Copy it first with: bg3 copy %s", ctx.ID, ctx.ID),
		}
	}
	return GuardResult{Allowed: true}
}

// CanDelete evaluates whether the selected entry can be removed.
// Rules:
// - Presets are read-only
func CanDelete(ctx SelectionContext) GuardResult {
	if ctx.IsPreset {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("cannot delete preset %s: presets are read-only", ctx.ID),
		}
	}
	return GuardResult{Allowed: true}
}

// CopyContext provides context for copy guards.
type CopyContext struct {
	SelectionContext
	PresetSourceExists bool
}

// CanCopy evaluates whether the selected entry can be copied into the store.
// Rules:
// - Copying a preset requires the preset source to exist
// - Store characters can always be duplicated
func CanCopy(ctx CopyContext) GuardResult {
	if ctx.IsPreset && !ctx.PresetSourceExists {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("cannot copy %s", ctx.ID),
			Cause:   ErrPresetSourceUnavailable,
		}
	}
	return GuardResult{Allowed: true}
}
