package wizard

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/ezrarag/Stamped-in-style/internal/places"
)

// DefaultDebounce matches the original keystroke debounce window.
const DefaultDebounce = 300 * time.Millisecond

const minQueryLength = 2

// Searcher coalesces destination keystrokes. Each Query bumps a correlation
// sequence and restarts the debounce timer; when the timer fires the lookup
// runs, and its reply is applied only if no newer query was issued meanwhile.
// In-flight requests are never aborted, their results are just discarded.
type Searcher struct {
	client  places.Client
	delay   time.Duration
	timeout time.Duration

	mu           sync.Mutex
	seq          uint64
	timer        *time.Timer
	pendingQuery string
	apply        func(results []places.Prediction, err error)
}

func NewSearcher(client places.Client, delay time.Duration, apply func([]places.Prediction, error)) *Searcher {
	return &Searcher{
		client:  client,
		delay:   delay,
		timeout: 10 * time.Second,
		apply:   apply,
	}
}

// Query records a keystroke. Queries shorter than two characters clear the
// results immediately and never reach the collaborator.
func (s *Searcher) Query(query string) {
	query = strings.TrimSpace(query)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.seq++
	issued := s.seq

	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.pendingQuery = ""

	if len(query) < minQueryLength {
		s.apply([]places.Prediction{}, nil)
		return
	}

	s.pendingQuery = query
	s.timer = time.AfterFunc(s.delay, func() {
		s.lookup(issued, query)
	})
}

// Flush runs any pending lookup immediately instead of waiting out the
// debounce window. Tests use it to keep timing out of assertions.
func (s *Searcher) Flush() {
	s.mu.Lock()
	timer := s.timer
	issued := s.seq
	query := s.pendingQuery
	s.mu.Unlock()

	if timer != nil && timer.Stop() && query != "" {
		s.lookup(issued, query)
	}
}

func (s *Searcher) lookup(issued uint64, query string) {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	results, err := s.client.Predict(ctx, query)

	s.mu.Lock()
	defer s.mu.Unlock()

	// a newer query was issued while this one was in flight
	if issued != s.seq {
		return
	}
	s.apply(results, err)
}
