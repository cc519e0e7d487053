// Package ratelimit implements the fixed-window request limiter guarding the
// order endpoint. State lives in process memory only and resets on restart;
// this is a best-effort limiter for a single-instance deployment, not a
// precise distributed one.
package ratelimit

import (
	"net/http"
	"strings"
	"sync"
	"time"
)

const (
	DefaultWindow      = 15 * time.Minute
	DefaultMaxRequests = 5
	DefaultSweepAt     = 1000
)

type entry struct {
	count   int
	resetAt time.Time
}

// Store is a fixed-window counter keyed by client identifier. Construct one
// per server and inject it into the handler chain; it is not a package
// global.
type Store struct {
	mu      sync.Mutex
	entries map[string]*entry

	window  time.Duration
	max     int
	sweepAt int
	now     func() time.Time
}

type Option func(*Store)

func WithWindow(w time.Duration) Option { return func(s *Store) { s.window = w } }

func WithMaxRequests(n int) Option { return func(s *Store) { s.max = n } }

func WithSweepThreshold(n int) Option { return func(s *Store) { s.sweepAt = n } }

// WithClock overrides the time source, for tests.
func WithClock(now func() time.Time) Option { return func(s *Store) { s.now = now } }

func NewStore(opts ...Option) *Store {
	s := &Store{
		entries: make(map[string]*entry),
		window:  DefaultWindow,
		max:     DefaultMaxRequests,
		sweepAt: DefaultSweepAt,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Check records one request for the identifier and reports whether it is
// allowed plus how many requests remain in the current window. The first
// request per identifier, or the first after the window expired, starts a
// fresh window with count 1.
func (s *Store) Check(identifier string) (allowed bool, remaining int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()

	// Sweep expired entries once the map has grown large. Growth-triggered,
	// never a background timer.
	if len(s.entries) > s.sweepAt {
		for key, e := range s.entries {
			if e.resetAt.Before(now) {
				delete(s.entries, key)
			}
		}
	}

	e, ok := s.entries[identifier]
	if !ok || e.resetAt.Before(now) {
		s.entries[identifier] = &entry{count: 1, resetAt: now.Add(s.window)}
		return true, s.max - 1
	}

	if e.count >= s.max {
		return false, 0
	}

	e.count++
	return true, s.max - e.count
}

// Len reports the number of tracked identifiers.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// ClientIP extracts the client identifier from proxy headers, in the priority
// order the hosting platforms set them. Requests with none of the headers all
// share the "unknown" bucket.
func ClientIP(h http.Header) string {
	if forwardedFor := h.Get("X-Forwarded-For"); forwardedFor != "" {
		// May contain a chain of proxies; the first hop is the client.
		return strings.TrimSpace(strings.Split(forwardedFor, ",")[0])
	}
	if realIP := h.Get("X-Real-Ip"); realIP != "" {
		return realIP
	}
	if cfIP := h.Get("Cf-Connecting-Ip"); cfIP != "" {
		return cfIP
	}
	return "unknown"
}
