package core

import "testing"

func TestParseDecimalToCents(t *testing.T) {
	cases := []struct {
		in  string
		out int64
		ok  bool
	}{
		{"1", 100, true},
		{"1.0", 100, true},
		{"1.23", 123, true},
		{"1,23", 123, true},
		{"0.01", 1, true},
		{"1.005", 101, true}, // half-up rounding
		{" 42.50 ", 4250, true},
		{"-1", 0, false},
		{"0", 0, false},
		{"abc", 0, false},
		{"1.2.3", 0, false},
		{"", 0, false},
	}
	for _, tc := range cases {
		got, err := ParseDecimalToCents(tc.in)
		if tc.ok {
			if err != nil || got != tc.out {
				t.Fatalf("%q expected %d, got %d (err=%v)", tc.in, tc.out, got, err)
			}
		} else {
			if err == nil {
				t.Fatalf("%q expected error", tc.in)
			}
		}
	}
}

func TestMoneyFloatRoundTrip(t *testing.T) {
	for _, cents := range []int64{1, 99, 100, 4250, 1000000001} {
		m := Money{Cents: cents}
		if got := CentsFromFloat(m.Float()); got != cents {
			t.Fatalf("round trip of %d cents gave %d", cents, got)
		}
	}
}

func TestMoneyString(t *testing.T) {
	if got := (Money{Cents: 4250}).String(); got != "$42.50" {
		t.Fatalf("expected $42.50, got %s", got)
	}
	if got := (Money{Cents: 5}).String(); got != "$0.05" {
		t.Fatalf("expected $0.05, got %s", got)
	}
}
