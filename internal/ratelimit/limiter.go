// Package ratelimit protects the unauthenticated endpoints (login and
// registration) with a per-IP request limit.
package ratelimit

import (
	"sync"
	"time"
)

// Limiter reports whether a client may make another request.
type Limiter interface {
	Allow(ip string) bool
}

// WindowLimiter is an in-memory sliding-window limiter. It is the fallback
// used when redis is not configured.
type WindowLimiter struct {
	requests map[string][]time.Time
	mu       sync.Mutex
	window   time.Duration
	maxReqs  int
}

// NewWindowLimiter creates a limiter allowing maxReqs requests per window
// per IP.
func NewWindowLimiter(window time.Duration, maxReqs int) *WindowLimiter {
	return &WindowLimiter{
		requests: make(map[string][]time.Time),
		window:   window,
		maxReqs:  maxReqs,
	}
}

// Allow records a request for the IP and reports whether it is within the
// limit.
func (l *WindowLimiter) Allow(ip string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()

	// Drop requests that fell out of the window
	if reqs, exists := l.requests[ip]; exists {
		var valid []time.Time
		for _, t := range reqs {
			if now.Sub(t) < l.window {
				valid = append(valid, t)
			}
		}
		l.requests[ip] = valid
	}

	if len(l.requests[ip]) >= l.maxReqs {
		return false
	}

	l.requests[ip] = append(l.requests[ip], now)
	return true
}
