package encounter

import (
	"context"
	"fmt"
	"testing"
)

// -- Mock Repository --

type mockRepo struct {
	encounters []*Encounter
	nextID     int64
}

func newMockRepo() *mockRepo {
	return &mockRepo{nextID: 1}
}

func (m *mockRepo) Create(_ context.Context, enc *Encounter) error {
	enc.ID = m.nextID
	m.nextID++
	m.encounters = append(m.encounters, enc)
	return nil
}

func (m *mockRepo) GetByID(_ context.Context, id int64) (*Encounter, error) {
	for _, e := range m.encounters {
		if e.ID == id {
			return e, nil
		}
	}
	return nil, fmt.Errorf("not found")
}

func (m *mockRepo) List(_ context.Context, limit, offset int) ([]*Encounter, int, error) {
	return m.encounters, len(m.encounters), nil
}

func (m *mockRepo) ListAll(_ context.Context) ([]*Encounter, error) {
	return m.encounters, nil
}

func (m *mockRepo) ListBySource(_ context.Context, source string, limit, offset int) ([]*Encounter, int, error) {
	var result []*Encounter
	for _, e := range m.encounters {
		if e.Source == source {
			result = append(result, e)
		}
	}
	return result, len(result), nil
}

// -- Tests --

func TestCreate_RequiresSource(t *testing.T) {
	svc := NewService(newMockRepo(), 0)
	err := svc.Create(context.Background(), &Encounter{Date: "2024-01-01"})
	if err == nil {
		t.Error("expected error for missing source")
	}
}

func TestCreate_NormalizesDate(t *testing.T) {
	repo := newMockRepo()
	svc := NewService(repo, 0)
	e := &Encounter{Source: "epic_anderson", Date: "01/15/2026"}
	if err := svc.Create(context.Background(), e); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if e.Date != "2026-01-15" {
		t.Errorf("expected normalized date 2026-01-15, got %s", e.Date)
	}
}

func TestCoalesced_UsesDefaultTolerance(t *testing.T) {
	repo := newMockRepo()
	repo.encounters = []*Encounter{
		enc(1, "epic_anderson", "2024-01-01"),
		enc(2, "meditech_siteman", "2024-01-02"),
	}
	svc := NewService(repo, 1)

	groups, err := svc.Coalesced(context.Background(), -1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(groups) != 1 {
		t.Fatalf("expected default tolerance 1 to group, got %d groups", len(groups))
	}

	groups, err = svc.Coalesced(context.Background(), 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(groups) != 0 {
		t.Fatalf("expected explicit tolerance 0 to not group, got %d groups", len(groups))
	}
}
