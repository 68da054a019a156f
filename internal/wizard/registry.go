package wizard

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ezrarag/Stamped-in-style/internal/places"
	"github.com/ezrarag/Stamped-in-style/internal/trip"
)

var ErrSessionNotFound = errors.New("wizard session not found")

const sessionTTL = 2 * time.Hour

// Registry holds the live wizard sessions, one per traveler pass.
type Registry struct {
	client   places.Client
	debounce time.Duration

	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewRegistry(client places.Client, debounce time.Duration) *Registry {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	return &Registry{
		client:   client,
		debounce: debounce,
		sessions: make(map[string]*Session),
	}
}

func (r *Registry) Create() *Session {
	session := &Session{
		ID:        uuid.New().String(),
		touchedAt: time.Now(),
	}
	session.searcher = NewSearcher(r.client, r.debounce, func(results []places.Prediction, err error) {
		session.mu.Lock()
		defer session.mu.Unlock()
		if err != nil {
			// collaborator down: fall back to the featured list untouched,
			// the handler serves Featured() alongside empty results
			session.searchResults = []places.Prediction{}
			return
		}
		session.searchResults = results
	})

	r.mu.Lock()
	r.sessions[session.ID] = session
	r.mu.Unlock()
	return session
}

func (r *Registry) Get(id string) (*Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	session, ok := r.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return session, nil
}

func (r *Registry) Delete(id string) {
	r.mu.Lock()
	delete(r.sessions, id)
	r.mu.Unlock()
}

// Sweep drops sessions idle past their TTL. Main runs it on a ticker.
func (r *Registry) Sweep() {
	cutoff := time.Now().Add(-sessionTTL)

	r.mu.Lock()
	defer r.mu.Unlock()
	for id, session := range r.sessions {
		session.mu.Lock()
		idle := session.touchedAt.Before(cutoff)
		session.mu.Unlock()
		if idle {
			delete(r.sessions, id)
		}
	}
}

// ResolvePlace turns a selected autocomplete prediction into a full
// destination via the details collaborator.
func (r *Registry) ResolvePlace(ctx context.Context, placeID string) (trip.Destination, error) {
	if r.client == nil {
		return trip.Destination{}, places.ErrUpstreamUnavailable
	}
	details, err := r.client.Details(ctx, placeID)
	if err != nil {
		return trip.Destination{}, err
	}

	dest := trip.Destination{
		ID:      placeID,
		Name:    details.Name,
		Country: details.Address,
	}
	if len(details.PhotoURLs) > 0 {
		dest.ImageURL = details.PhotoURLs[0]
	}
	return dest, nil
}

// SetDestination records a resolved pick without advancing the step.
func (s *Session) SetDestination(dest trip.Destination) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touchedAt = time.Now()
	s.destination = dest
}

// Search feeds a destination keystroke into the session's debounced
// searcher.
func (s *Session) Search(query string) {
	s.mu.Lock()
	s.touchedAt = time.Now()
	searcher := s.searcher
	s.mu.Unlock()

	if searcher != nil {
		searcher.Query(query)
	}
}
