package labs

import "testing"

func TestTryParseNumeric(t *testing.T) {
	cases := []struct {
		in   string
		want float64
		ok   bool
	}{
		{"5.8", 5.8, true},
		{"<0.5", 0.5, true},
		{">= 10", 10, true},
		{"  42 ", 42, true},
		{"positive", 0, false},
		{"", 0, false},
		{"1.2 mg/dL", 0, false},
	}
	for _, tc := range cases {
		got, ok := TryParseNumeric(tc.in)
		if ok != tc.ok || (ok && got != tc.want) {
			t.Errorf("TryParseNumeric(%q) = %v, %v; want %v, %v", tc.in, got, ok, tc.want, tc.ok)
		}
	}
}
