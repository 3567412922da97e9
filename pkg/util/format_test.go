package util

import (
	"testing"
	"time"
)

func TestFormatDayMonth(t *testing.T) {
	d := time.Date(2025, time.March, 8, 0, 0, 0, 0, time.UTC)
	if got := FormatDayMonth(d); got != "Mar 8" {
		t.Fatalf("unexpected label %q", got)
	}
}

func TestFormatDateRange(t *testing.T) {
	start := time.Date(2025, time.March, 8, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, 3)
	if got := FormatDateRange(start, end); got != "Mar 8–Mar 11" {
		t.Fatalf("unexpected label %q", got)
	}
}

func TestFormatINR(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "₹0"},
		{950, "₹950"},
		{18400, "₹18,400"},
		{1234567, "₹12,34,567"},
		{-2500, "-₹2,500"},
	}
	for _, c := range cases {
		if got := FormatINR(c.in); got != c.want {
			t.Fatalf("FormatINR(%v) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestClampInt(t *testing.T) {
	if got := ClampInt(120, 5, 95); got != 95 {
		t.Fatalf("expected 95, got %d", got)
	}
	if got := ClampInt(-3, 5, 95); got != 5 {
		t.Fatalf("expected 5, got %d", got)
	}
	if got := ClampInt(40, 5, 95); got != 40 {
		t.Fatalf("expected 40, got %d", got)
	}
}
