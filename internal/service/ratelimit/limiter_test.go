package ratelimit

import "testing"

func TestAllowWithinBurst(t *testing.T) {
	l := New(1, 3)

	for i := 0; i < 3; i++ {
		if !l.Allow("1.2.3.4") {
			t.Fatalf("request %d within burst was denied", i+1)
		}
	}
	if l.Allow("1.2.3.4") {
		t.Fatalf("request beyond burst was allowed")
	}
}

func TestAllowIsolatesKeys(t *testing.T) {
	l := New(1, 1)

	if !l.Allow("a") {
		t.Fatalf("first request for a denied")
	}
	if l.Allow("a") {
		t.Fatalf("second request for a allowed")
	}
	if !l.Allow("b") {
		t.Fatalf("unrelated key b was throttled")
	}
}
