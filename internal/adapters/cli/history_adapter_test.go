package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/example/bg3planner/internal/ports/primary"
)

// mockHistoryService implements primary.HistoryService for testing
type mockHistoryService struct {
	entries     []*primary.HistoryEntry
	lastFilters primary.HistoryFilters
	pruned      int
}

func (m *mockHistoryService) ListHistory(ctx context.Context, filters primary.HistoryFilters) ([]*primary.HistoryEntry, error) {
	m.lastFilters = filters
	return m.entries, nil
}

func (m *mockHistoryService) PruneHistory(ctx context.Context, olderThanDays int) (int, error) {
	return m.pruned, nil
}

func TestHistoryAdapter_List(t *testing.T) {
	mock := &mockHistoryService{entries: []*primary.HistoryEntry{
		{ID: "LOG-0002", Timestamp: "2026-10-19T10:00:00Z", Action: "copy", EntityID: "CHAR-002", SourceID: "PRESET-001", CharacterName: "Astarion", ActorID: "tav"},
		{ID: "LOG-0001", Timestamp: "2026-10-19T09:00:00Z", Action: "create", EntityID: "CHAR-001", CharacterName: "Karlach"},
	}}
	var buf bytes.Buffer
	adapter := NewHistoryAdapter(mock, &buf)

	if err := adapter.List(context.Background(), primary.HistoryFilters{Limit: 10}); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "PRESET-001 → CHAR-002 Astarion by tav") {
		t.Errorf("expected copy line, got:\n%s", out)
	}
	if !strings.Contains(out, "create CHAR-001 Karlach") {
		t.Errorf("expected create line, got:\n%s", out)
	}
	if mock.lastFilters.Limit != 10 {
		t.Errorf("expected limit 10, got %d", mock.lastFilters.Limit)
	}
}

func TestHistoryAdapter_List_Empty(t *testing.T) {
	var buf bytes.Buffer
	adapter := NewHistoryAdapter(&mockHistoryService{}, &buf)

	if err := adapter.List(context.Background(), primary.HistoryFilters{}); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !strings.Contains(buf.String(), "No history found") {
		t.Errorf("unexpected output '%s'", buf.String())
	}
}

func TestHistoryAdapter_Prune(t *testing.T) {
	var buf bytes.Buffer
	adapter := NewHistoryAdapter(&mockHistoryService{pruned: 1}, &buf)

	if err := adapter.Prune(context.Background(), 30); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !strings.Contains(buf.String(), "Pruned 1 history entry older than 30 days") {
		t.Errorf("unexpected output '%s'", buf.String())
	}
}
