package cart

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/ezrarag/Stamped-in-style/internal/trip"
)

// MaxTrips is the cart cap. Insertion beyond it is rejected, not truncated.
const MaxTrips = 5

var ErrCartFull = errors.New("trip cart is full")

// Store is one traveler's draft trip cart. Every mutation rewrites the full
// collection through the backend, and every read loads it back, so two
// sessions over the same backend see last-writer-wins without any merge.
//
// An unreadable or corrupt payload reads as an empty cart. Callers cannot
// distinguish "empty" from "unreadable"; that trade was made deliberately so
// storage trouble never breaks the wizard.
type Store struct {
	backend Backend
}

func NewStore(backend Backend) *Store {
	return &Store{backend: backend}
}

// Items returns the cart in insertion order. Never fails.
func (s *Store) Items(ctx context.Context) []trip.TripItem {
	payload, ok, err := s.backend.Load(ctx)
	if err != nil || !ok {
		return []trip.TripItem{}
	}

	var items []trip.TripItem
	if err := json.Unmarshal(payload, &items); err != nil {
		return []trip.TripItem{}
	}
	return items
}

// Add assigns an id and timestamp to the candidate and appends it.
// Returns ErrCartFull without mutating anything when the cap is reached.
func (s *Store) Add(ctx context.Context, candidate trip.Candidate) (*trip.TripItem, error) {
	items := s.Items(ctx)

	if len(items) >= MaxTrips {
		return nil, ErrCartFull
	}

	item := trip.TripItem{
		ID:          uuid.New().String(),
		Destination: candidate.Destination,
		Budget:      candidate.Budget,
		Duration:    candidate.Duration,
		Experiences: candidate.Experiences,
		Name:        candidate.Name,
		Email:       candidate.Email,
		Notes:       candidate.Notes,
		TotalPrice:  candidate.TotalPrice,
		CreatedAt:   time.Now().UTC(),
	}

	items = append(items, item)
	if err := s.save(ctx, items); err != nil {
		return nil, err
	}
	return &item, nil
}

// Remove drops the matching entry. Removing an unknown id is a no-op.
func (s *Store) Remove(ctx context.Context, id string) error {
	items := s.Items(ctx)

	kept := items[:0]
	for _, it := range items {
		if it.ID != id {
			kept = append(kept, it)
		}
	}
	return s.save(ctx, kept)
}

// Update merges the given fields into the matching entry, keeping its id and
// createdAt. Unknown id is a no-op.
func (s *Store) Update(ctx context.Context, id string, updates ItemUpdate) error {
	items := s.Items(ctx)

	for i := range items {
		if items[i].ID == id {
			updates.apply(&items[i])
			break
		}
	}
	return s.save(ctx, items)
}

func (s *Store) Clear(ctx context.Context) error {
	return s.save(ctx, []trip.TripItem{})
}

func (s *Store) Count(ctx context.Context) int {
	return len(s.Items(ctx))
}

func (s *Store) IsFull(ctx context.Context) bool {
	return s.Count(ctx) >= MaxTrips
}

// TotalPrice sums the frozen per-item estimates, treating a missing price
// as zero.
func (s *Store) TotalPrice(ctx context.Context) int {
	total := 0
	for _, it := range s.Items(ctx) {
		total += it.TotalPrice
	}
	return total
}

// Watch exposes the backend's change signal so callers can refresh their
// view when the cart was written elsewhere.
func (s *Store) Watch(ctx context.Context) <-chan struct{} {
	return s.backend.Watch(ctx)
}

func (s *Store) save(ctx context.Context, items []trip.TripItem) error {
	payload, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return s.backend.Save(ctx, payload)
}

// --------------------------------------------------
// PARTIAL UPDATE
// --------------------------------------------------

type ItemUpdate struct {
	Destination *trip.Destination `json:"destination,omitempty"`
	Budget      *trip.Budget      `json:"budget,omitempty"`
	Duration    *trip.Duration    `json:"duration,omitempty"`
	Experiences *[]string         `json:"experiences,omitempty"`
	Name        *string           `json:"name,omitempty"`
	Email       *string           `json:"email,omitempty"`
	Notes       *string           `json:"notes,omitempty"`
	TotalPrice  *int              `json:"totalPrice,omitempty"`
}

func (u ItemUpdate) apply(item *trip.TripItem) {
	if u.Destination != nil {
		item.Destination = *u.Destination
	}
	if u.Budget != nil {
		item.Budget = *u.Budget
	}
	if u.Duration != nil {
		item.Duration = *u.Duration
	}
	if u.Experiences != nil {
		item.Experiences = *u.Experiences
	}
	if u.Name != nil {
		item.Name = *u.Name
	}
	if u.Email != nil {
		item.Email = *u.Email
	}
	if u.Notes != nil {
		item.Notes = *u.Notes
	}
	if u.TotalPrice != nil {
		item.TotalPrice = *u.TotalPrice
	}
}
