package ratelimit

import (
	"testing"
	"time"
)

func TestWindowLimiter_BlocksOverLimit(t *testing.T) {
	t.Parallel()

	l := NewWindowLimiter(time.Minute, 3)

	for i := 0; i < 3; i++ {
		if !l.Allow("1.2.3.4") {
			t.Fatalf("request %d unexpectedly blocked", i+1)
		}
	}
	if l.Allow("1.2.3.4") {
		t.Fatal("request over the limit was allowed")
	}
}

func TestWindowLimiter_PerIP(t *testing.T) {
	t.Parallel()

	l := NewWindowLimiter(time.Minute, 1)

	if !l.Allow("1.1.1.1") {
		t.Fatal("first request for first IP blocked")
	}
	if !l.Allow("2.2.2.2") {
		t.Fatal("first request for second IP blocked")
	}
	if l.Allow("1.1.1.1") {
		t.Fatal("second request for first IP allowed")
	}
}

func TestWindowLimiter_WindowExpiry(t *testing.T) {
	t.Parallel()

	l := NewWindowLimiter(50*time.Millisecond, 1)

	if !l.Allow("1.2.3.4") {
		t.Fatal("first request blocked")
	}
	if l.Allow("1.2.3.4") {
		t.Fatal("second request within window allowed")
	}

	time.Sleep(60 * time.Millisecond)

	if !l.Allow("1.2.3.4") {
		t.Fatal("request after window expiry blocked")
	}
}
