package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/example/bg3planner/internal/ports/primary"
)

// HistoryAdapter translates CLI operations to HistoryService calls.
type HistoryAdapter struct {
	service primary.HistoryService
	out     io.Writer
}

// NewHistoryAdapter creates a new HistoryAdapter with the given service.
func NewHistoryAdapter(service primary.HistoryService, out io.Writer) *HistoryAdapter {
	return &HistoryAdapter{
		service: service,
		out:     out,
	}
}

// List prints audit entries, newest first.
func (a *HistoryAdapter) List(ctx context.Context, filters primary.HistoryFilters) error {
	entries, err := a.service.ListHistory(ctx, filters)
	if err != nil {
		return err
	}

	if len(entries) == 0 {
		fmt.Fprintln(a.out, "No history found")
		return nil
	}

	for _, e := range entries {
		target := colorizeID(e.EntityID)
		if e.SourceID != "" {
			target = fmt.Sprintf("%s → %s", colorizeID(e.SourceID), target)
		}
		actor := ""
		if e.ActorID != "" {
			actor = color.New(color.FgHiBlack).Sprintf(" by %s", e.ActorID)
		}
		fmt.Fprintf(a.out, "%s %s %s %s%s\n", e.Timestamp, colorizeAction(e.Action), target, e.CharacterName, actor)
	}
	return nil
}

// Prune deletes entries older than days.
func (a *HistoryAdapter) Prune(ctx context.Context, days int) error {
	count, err := a.service.PruneHistory(ctx, days)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "✓ Pruned %d history entr%s older than %d days\n", count, pluralSuffix(count), days)
	return nil
}

// colorizeAction formats an audit action with semantic color
func colorizeAction(action string) string {
	label := fmt.Sprintf("%-6s", action)
	switch action {
	case "create":
		return color.New(color.FgHiGreen).Sprint(label)
	case "update":
		return color.New(color.FgHiBlue).Sprint(label)
	case "delete":
		return color.New(color.FgRed).Sprint(label)
	case "copy":
		return color.New(color.FgHiMagenta).Sprint(label)
	default:
		return label
	}
}

func pluralSuffix(n int) string {
	if n == 1 {
		return "y"
	}
	return "ies"
}
