package dates

import "testing"

func TestNormalize_AlreadyISO(t *testing.T) {
	if got := Normalize("2025-06-30"); got != "2025-06-30" {
		t.Errorf("expected 2025-06-30, got %q", got)
	}
}

func TestNormalize_ISOWithTime(t *testing.T) {
	if got := Normalize("2025-06-30T13:25:00+00:00"); got != "2025-06-30" {
		t.Errorf("expected 2025-06-30, got %q", got)
	}
}

func TestNormalize_Slash(t *testing.T) {
	if got := Normalize("01/15/2026"); got != "2026-01-15" {
		t.Errorf("expected 2026-01-15, got %q", got)
	}
	// Single-digit month and day, always month-first.
	if got := Normalize("3/4/2024"); got != "2024-03-04" {
		t.Errorf("expected 2024-03-04, got %q", got)
	}
}

func TestNormalize_Compact(t *testing.T) {
	if got := Normalize("20211123"); got != "2021-11-23" {
		t.Errorf("expected 2021-11-23, got %q", got)
	}
	// CDA effectiveTime with time and timezone digits.
	if got := Normalize("20220201073445-0600"); got != "2022-02-01" {
		t.Errorf("expected 2022-02-01, got %q", got)
	}
}

func TestNormalize_Narrative(t *testing.T) {
	cases := map[string]string{
		"November 23rd, 2021 2:37pm": "2021-11-23",
		"November 23, 2021":          "2021-11-23",
		"march 1st, 2020":            "2020-03-01",
		"July 4th 1999":              "1999-07-04",
	}
	for in, want := range cases {
		if got := Normalize(in); got != want {
			t.Errorf("Normalize(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestNormalize_Unparseable(t *testing.T) {
	for _, in := range []string{"", "   ", "not a date", "Nonexistember 5, 2021"} {
		if got := Normalize(in); got != "" {
			t.Errorf("Normalize(%q) = %q, want empty sentinel", in, got)
		}
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{"2025-06-30", "01/15/2026", "20211123", "November 23rd, 2021"}
	for _, in := range inputs {
		once := Normalize(in)
		if twice := Normalize(once); twice != once {
			t.Errorf("Normalize not idempotent for %q: %q != %q", in, once, twice)
		}
	}
}

func TestDaysBetween(t *testing.T) {
	if d, ok := DaysBetween("2021-12-30", "2021-12-29"); !ok || d != 1 {
		t.Errorf("expected 1 day, got %d ok=%v", d, ok)
	}
	if d, ok := DaysBetween("2021-12-29", "2021-12-30"); !ok || d != 1 {
		t.Errorf("gap should be symmetric, got %d ok=%v", d, ok)
	}
	if _, ok := DaysBetween("", "2021-12-30"); ok {
		t.Error("empty sentinel should not parse")
	}
	if _, ok := DaysBetween("2021-12-30", "garbage"); ok {
		t.Error("unparseable date should not parse")
	}
}

func TestParseISO(t *testing.T) {
	if _, ok := ParseISO("2024-02-30"); ok {
		t.Error("invalid calendar date should be rejected")
	}
	if tm, ok := ParseISO("2024-02-29"); !ok || tm.Day() != 29 {
		t.Errorf("leap day should parse, got %v ok=%v", tm, ok)
	}
}
