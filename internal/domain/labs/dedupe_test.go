package labs

import "testing"

func lab(id int64, source, date, test, value string) *LabResult {
	return &LabResult{ID: id, Source: source, Date: date, TestName: test, Value: value}
}

func TestFindDuplicates_ValueMatch(t *testing.T) {
	groups := FindDuplicates([]*LabResult{
		lab(1, "epic_anderson", "2025-06-15", "CEA", "5.8"),
		lab(2, "meditech_siteman", "2025-06-15", "CEA", "5.8"),
	})

	if len(groups) != 1 {
		t.Fatalf("expected 1 group, got %d", len(groups))
	}
	g := groups[0]
	if g.TestName != "CEA" || g.Date != "2025-06-15" {
		t.Errorf("unexpected group key: %s %s", g.TestName, g.Date)
	}
	if !g.ValueMatch {
		t.Error("expected value_match true for identical values")
	}
	if len(g.Records) != 2 {
		t.Errorf("expected both records, got %d", len(g.Records))
	}
}

func TestFindDuplicates_ValueMismatch(t *testing.T) {
	groups := FindDuplicates([]*LabResult{
		lab(1, "epic_anderson", "2025-06-15", "CEA", "5.8"),
		lab(2, "meditech_siteman", "2025-06-15", "CEA", "6.1"),
	})

	if len(groups) != 1 {
		t.Fatalf("expected 1 group, got %d", len(groups))
	}
	if groups[0].ValueMatch {
		t.Error("expected value_match false for differing values")
	}
}

func TestFindDuplicates_LiteralComparison(t *testing.T) {
	// "5.8" and "5.80" are numerically equal but not byte-identical.
	groups := FindDuplicates([]*LabResult{
		lab(1, "epic_anderson", "2025-06-15", "CEA", "5.8"),
		lab(2, "meditech_siteman", "2025-06-15", "CEA", "5.80"),
	})
	if len(groups) != 1 || groups[0].ValueMatch {
		t.Error("expected literal string comparison to report a mismatch")
	}
}

func TestFindDuplicates_SingleSourceIgnored(t *testing.T) {
	groups := FindDuplicates([]*LabResult{
		lab(1, "epic_anderson", "2025-06-15", "CEA", "5.8"),
		lab(2, "epic_anderson", "2025-06-15", "CEA", "5.8"),
	})
	if len(groups) != 0 {
		t.Fatalf("expected no groups for a single source, got %d", len(groups))
	}
}

func TestFindDuplicates_EmptyDateExcluded(t *testing.T) {
	groups := FindDuplicates([]*LabResult{
		lab(1, "epic_anderson", "", "CEA", "5.8"),
		lab(2, "meditech_siteman", "", "CEA", "5.8"),
	})
	if len(groups) != 0 {
		t.Fatalf("expected undated results excluded, got %d groups", len(groups))
	}
}

func TestFindDuplicates_Ordering(t *testing.T) {
	groups := FindDuplicates([]*LabResult{
		lab(1, "epic_anderson", "2025-01-01", "CEA", "5.8"),
		lab(2, "meditech_siteman", "2025-01-01", "CEA", "5.8"),
		lab(3, "epic_anderson", "2025-06-15", "CBC", "10"),
		lab(4, "meditech_siteman", "2025-06-15", "CBC", "10"),
		lab(5, "epic_anderson", "2025-06-15", "ALT", "30"),
		lab(6, "meditech_siteman", "2025-06-15", "ALT", "30"),
	})
	if len(groups) != 3 {
		t.Fatalf("expected 3 groups, got %d", len(groups))
	}
	if groups[0].TestName != "ALT" || groups[1].TestName != "CBC" {
		t.Errorf("expected newest date first then test-name order, got %s, %s, %s",
			groups[0].TestName, groups[1].TestName, groups[2].TestName)
	}
	if groups[2].Date != "2025-01-01" {
		t.Errorf("expected oldest group last, got %s", groups[2].Date)
	}
}
