package util

import (
	"fmt"
	"strconv"
	"time"
)

// FormatDayMonth renders a date as "Mar 8" for display labels.
func FormatDayMonth(t time.Time) string {
	return t.Format("Jan") + " " + strconv.Itoa(t.Day())
}

// FormatDateRange renders "Mar 8–11" style labels for a date range.
func FormatDateRange(start, end time.Time) string {
	return FormatDayMonth(start) + "–" + FormatDayMonth(end)
}

// FormatINR renders a currency amount with Indian digit grouping and the
// rupee sign, dropping fractional paise: 1234567 -> "₹12,34,567".
func FormatINR(v float64) string {
	neg := v < 0
	if neg {
		v = -v
	}
	s := strconv.FormatInt(int64(v+0.5), 10)

	// Indian grouping: last three digits, then pairs.
	if len(s) > 3 {
		head, tail := s[:len(s)-3], s[len(s)-3:]
		for len(head) > 2 {
			tail = head[len(head)-2:] + "," + tail
			head = head[:len(head)-2]
		}
		s = head + "," + tail
	}
	if neg {
		return "-₹" + s
	}
	return "₹" + s
}

// FormatPerKg renders a per-kilogram price like "₹28.5".
func FormatPerKg(v float64) string {
	return fmt.Sprintf("₹%.1f", v)
}

// Clamp bounds v into [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ClampInt bounds v into [lo, hi].
func ClampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
