package medication

import (
	"context"
	"strings"
	"testing"
)

type mockRepo struct {
	meds          []*Medication
	historyFilter string
}

func (m *mockRepo) Create(_ context.Context, med *Medication) error {
	m.meds = append(m.meds, med)
	return nil
}

func (m *mockRepo) List(_ context.Context, limit, offset int) ([]*Medication, int, error) {
	return m.meds, len(m.meds), nil
}

func (m *mockRepo) ListAll(_ context.Context) ([]*Medication, error) {
	return m.meds, nil
}

func (m *mockRepo) ListActive(_ context.Context) ([]*Medication, error) {
	var out []*Medication
	for _, med := range m.meds {
		if strings.EqualFold(med.Status, "active") {
			out = append(out, med)
		}
	}
	return out, nil
}

func (m *mockRepo) History(_ context.Context, nameFilter string) ([]*Medication, error) {
	m.historyFilter = nameFilter
	return m.meds, nil
}

func TestCreate_RequiresSourceAndName(t *testing.T) {
	svc := NewService(&mockRepo{})

	if err := svc.Create(context.Background(), &Medication{Name: "Capecitabine"}); err == nil {
		t.Error("expected error for missing source")
	}
	if err := svc.Create(context.Background(), &Medication{Source: "epic_anderson"}); err == nil {
		t.Error("expected error for missing name")
	}
}

func TestCreate_NormalizesDates(t *testing.T) {
	repo := &mockRepo{}
	svc := NewService(repo)

	m := &Medication{
		Source:    "epic_anderson",
		Name:      "Capecitabine 500mg",
		Status:    "active",
		StartDate: "06/15/2025",
		StopDate:  "July 20, 2025",
	}
	if err := svc.Create(context.Background(), m); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.StartDate != "2025-06-15" {
		t.Errorf("expected normalized start date, got %q", m.StartDate)
	}
	if m.StopDate != "2025-07-20" {
		t.Errorf("expected normalized stop date, got %q", m.StopDate)
	}
}

func TestCreate_UnparseableDateDegradesToEmpty(t *testing.T) {
	repo := &mockRepo{}
	svc := NewService(repo)

	m := &Medication{Source: "epic_anderson", Name: "Oxaliplatin", StartDate: "unknown"}
	if err := svc.Create(context.Background(), m); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.StartDate != "" {
		t.Errorf("expected empty sentinel for unparseable date, got %q", m.StartDate)
	}
}

func TestReconciled_CrossSourceView(t *testing.T) {
	repo := &mockRepo{meds: []*Medication{
		med(1, "epic_anderson", "Capecitabine 500mg", "active"),
		med(2, "meditech_siteman", "Capecitabine 500mg", "completed"),
		med(3, "epic_anderson", "Lisinopril 10mg", "completed"),
	}}
	svc := NewService(repo)

	rec, err := svc.Reconciled(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rec.Active) != 1 || rec.Active[0].Name != "Capecitabine 500mg" {
		t.Errorf("expected capecitabine active, got %+v", rec.Active)
	}
	if len(rec.Discrepancies) != 1 {
		t.Errorf("expected 1 discrepancy, got %+v", rec.Discrepancies)
	}
}

func TestActive_FiltersByStatus(t *testing.T) {
	repo := &mockRepo{meds: []*Medication{
		med(1, "epic_anderson", "Capecitabine 500mg", "Active"),
		med(2, "epic_anderson", "Lisinopril 10mg", "stopped"),
	}}
	svc := NewService(repo)

	active, err := svc.Active(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(active) != 1 || active[0].ID != 1 {
		t.Errorf("expected only the active row, got %+v", active)
	}
}

func TestHistory_PassesFilter(t *testing.T) {
	repo := &mockRepo{}
	svc := NewService(repo)

	if _, err := svc.History(context.Background(), "capecit"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.historyFilter != "capecit" {
		t.Errorf("expected filter passed through, got %q", repo.historyFilter)
	}
}
