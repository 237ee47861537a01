package labs

import (
	"context"
	"strings"
	"testing"
)

type mockRepo struct {
	results []*LabResult
	nextID  int64
}

func newMockRepo() *mockRepo {
	return &mockRepo{nextID: 1}
}

func (m *mockRepo) Create(_ context.Context, lab *LabResult) error {
	lab.ID = m.nextID
	m.nextID++
	m.results = append(m.results, lab)
	return nil
}

func (m *mockRepo) List(_ context.Context, limit, offset int) ([]*LabResult, int, error) {
	return m.results, len(m.results), nil
}

func (m *mockRepo) ListAll(_ context.Context) ([]*LabResult, error) {
	return m.results, nil
}

func (m *mockRepo) Trend(_ context.Context, f TrendFilter) ([]*LabResult, error) {
	var out []*LabResult
	for _, r := range m.results {
		if f.TestName != "" && !strings.Contains(strings.ToLower(r.TestName), strings.ToLower(f.TestName)) {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

func (m *mockRepo) Abnormal(_ context.Context, startDate, endDate string) ([]*LabResult, error) {
	var out []*LabResult
	for _, r := range m.results {
		if r.Interpretation != "" {
			out = append(out, r)
		}
	}
	return out, nil
}

func TestCreate_ParsesNumericValue(t *testing.T) {
	svc := NewService(newMockRepo())
	lab := &LabResult{Source: "epic_anderson", TestName: "CEA", Value: "<0.5"}
	if err := svc.Create(context.Background(), lab); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if lab.ValueNumeric == nil || *lab.ValueNumeric != 0.5 {
		t.Errorf("expected value_numeric 0.5, got %v", lab.ValueNumeric)
	}
}

func TestCreate_NonNumericValueStaysNil(t *testing.T) {
	svc := NewService(newMockRepo())
	lab := &LabResult{Source: "epic_anderson", TestName: "Culture", Value: "no growth"}
	if err := svc.Create(context.Background(), lab); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if lab.ValueNumeric != nil {
		t.Errorf("expected nil value_numeric, got %v", *lab.ValueNumeric)
	}
}

func TestCreate_Validation(t *testing.T) {
	svc := NewService(newMockRepo())
	if err := svc.Create(context.Background(), &LabResult{TestName: "CEA"}); err == nil {
		t.Error("expected error for missing source")
	}
	if err := svc.Create(context.Background(), &LabResult{Source: "epic_anderson"}); err == nil {
		t.Error("expected error for missing test_name")
	}
}

func TestDuplicates_ReadsAllResults(t *testing.T) {
	repo := newMockRepo()
	repo.results = []*LabResult{
		lab(1, "epic_anderson", "2025-06-15", "CEA", "5.8"),
		lab(2, "meditech_siteman", "2025-06-15", "CEA", "5.8"),
	}
	svc := NewService(repo)

	groups, err := svc.Duplicates(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(groups) != 1 {
		t.Fatalf("expected 1 group, got %d", len(groups))
	}
}
