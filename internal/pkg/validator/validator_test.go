package validator

import (
	"testing"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		got := IsEmpty(c.input)
		if got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsNumeric(t *testing.T) {
	valid := []string{"0", "42", "007"}
	invalid := []string{"", " 42", "4.2", "-1", "abc", "1,000"}
	for _, s := range valid {
		if !IsNumeric(s) {
			t.Errorf("IsNumeric(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if IsNumeric(s) {
			t.Errorf("IsNumeric(%q) = true, want false", s)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	if _, ok := IsValidDate("2026-01-31"); !ok {
		t.Error("IsValidDate rejected 2026-01-31")
	}
	for _, s := range []string{"", "2026-1-31", "31-01-2026", "2026-02-30", "20260131"} {
		if _, ok := IsValidDate(s); ok {
			t.Errorf("IsValidDate(%q) accepted", s)
		}
	}
}

func TestIsValidDateTime(t *testing.T) {
	valid := []string{"2026-01-15T10:30:00Z", "2026-01-15 10:30:00"}
	invalid := []string{"", "2026-01-15", "10:30:00", "2026/01/15 10:30"}
	for _, s := range valid {
		if _, ok := IsValidDateTime(s); !ok {
			t.Errorf("IsValidDateTime(%q) rejected", s)
		}
	}
	for _, s := range invalid {
		if _, ok := IsValidDateTime(s); ok {
			t.Errorf("IsValidDateTime(%q) accepted", s)
		}
	}
}

func TestIsValidClock(t *testing.T) {
	valid := []string{"08:30", "08:30:15", "23:59"}
	invalid := []string{"", "8am", "24:00", "08:60"}
	for _, s := range valid {
		if _, ok := IsValidClock(s); !ok {
			t.Errorf("IsValidClock(%q) rejected", s)
		}
	}
	for _, s := range invalid {
		if _, ok := IsValidClock(s); ok {
			t.Errorf("IsValidClock(%q) accepted", s)
		}
	}
}

func TestIsValidPeriod(t *testing.T) {
	cases := []struct {
		year, month int
		want        bool
	}{
		{2026, 1, true},
		{2026, 12, true},
		{2026, 0, false},
		{2026, 13, false},
		{1999, 6, false},
		{2101, 6, false},
	}
	for _, c := range cases {
		if got := IsValidPeriod(c.year, c.month); got != c.want {
			t.Errorf("IsValidPeriod(%d, %d) = %v, want %v", c.year, c.month, got, c.want)
		}
	}
}
