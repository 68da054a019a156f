package wizard

import (
	"context"
	"errors"
	"testing"

	"github.com/ezrarag/Stamped-in-style/internal/cart"
	"github.com/ezrarag/Stamped-in-style/internal/trip"
)

func newTestSession() *Session {
	return NewRegistry(nil, DefaultDebounce).Create()
}

func paris() *trip.Destination {
	return &trip.Destination{ID: "paris", Name: "Paris", Country: "France"}
}

func walkToContact(t *testing.T, s *Session, store *cart.Store) {
	t.Helper()
	ctx := context.Background()

	if _, err := s.Next(ctx, NextInput{Destination: paris()}, store); err != nil {
		t.Fatalf("destination step: %v", err)
	}
	if _, err := s.Next(ctx, NextInput{Budget: "luxury", Duration: "week"}, store); err != nil {
		t.Fatalf("budget step: %v", err)
	}
	if _, err := s.Next(ctx, NextInput{Experiences: []string{"Fine Dining", "Nightlife"}}, store); err != nil {
		t.Fatalf("experiences step: %v", err)
	}
	if got := s.CurrentStep(); got != StepContact {
		t.Fatalf("step = %v, want contact", got)
	}
}

func TestCannotAdvanceWithoutDestination(t *testing.T) {
	s := newTestSession()
	store := cart.NewStore(cart.NewMemoryBackend())

	_, err := s.Next(context.Background(), NextInput{}, store)

	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("got %v, want ValidationError", err)
	}
	if s.CurrentStep() != StepDestination {
		t.Fatalf("state advanced to %v on refused transition", s.CurrentStep())
	}
}

func TestFeaturedPickFillsDestination(t *testing.T) {
	s := newTestSession()
	store := cart.NewStore(cart.NewMemoryBackend())
	ctx := context.Background()

	if _, err := s.Next(ctx, NextInput{FeaturedID: "tokyo"}, store); err != nil {
		t.Fatalf("featured pick: %v", err)
	}
	if got := s.Snapshot().Destination.Name; got != "Tokyo" {
		t.Fatalf("destination = %q, want Tokyo", got)
	}

	s2 := newTestSession()
	_, err := s2.Next(ctx, NextInput{FeaturedID: "atlantis"}, store)
	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("got %v, want ValidationError for unknown featured id", err)
	}
}

func TestBudgetAndDurationBothRequired(t *testing.T) {
	s := newTestSession()
	store := cart.NewStore(cart.NewMemoryBackend())
	ctx := context.Background()

	s.Next(ctx, NextInput{Destination: paris()}, store)

	var vErr *ValidationError
	if _, err := s.Next(ctx, NextInput{Budget: "luxury"}, store); !errors.As(err, &vErr) {
		t.Fatalf("missing duration accepted: %v", err)
	}
	if _, err := s.Next(ctx, NextInput{Budget: "lavish", Duration: "week"}, store); !errors.As(err, &vErr) {
		t.Fatalf("unknown budget accepted: %v", err)
	}
	if s.CurrentStep() != StepBudgetAndDuration {
		t.Fatal("state advanced on refused transition")
	}
}

func TestExperiencesStepAllowsEmptyAndDedupes(t *testing.T) {
	s := newTestSession()
	store := cart.NewStore(cart.NewMemoryBackend())
	ctx := context.Background()

	s.Next(ctx, NextInput{Destination: paris()}, store)
	s.Next(ctx, NextInput{Budget: "budget", Duration: "weekend"}, store)

	if _, err := s.Next(ctx, NextInput{Experiences: []string{"Shopping", "Shopping"}}, store); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := s.Snapshot().Experiences; len(got) != 1 {
		t.Fatalf("experiences = %v, want deduped single entry", got)
	}
}

func TestContactStepInsertsIntoCart(t *testing.T) {
	s := newTestSession()
	store := cart.NewStore(cart.NewMemoryBackend())
	ctx := context.Background()

	walkToContact(t, s, store)

	item, err := s.Next(ctx, NextInput{Name: "Ada", Email: "ada@example.com", Notes: "window seat"}, store)
	if err != nil {
		t.Fatalf("contact step: %v", err)
	}
	if item == nil {
		t.Fatal("no trip returned from the confirmation transition")
	}
	if item.TotalPrice != 12000 {
		t.Fatalf("totalPrice = %d, want 12000", item.TotalPrice)
	}
	if s.CurrentStep() != StepConfirmation {
		t.Fatalf("step = %v, want confirmation", s.CurrentStep())
	}
	if store.Count(ctx) != 1 {
		t.Fatalf("cart count = %d, want 1", store.Count(ctx))
	}
}

func TestContactStepRejectsBadEmail(t *testing.T) {
	s := newTestSession()
	store := cart.NewStore(cart.NewMemoryBackend())

	walkToContact(t, s, store)

	var vErr *ValidationError
	_, err := s.Next(context.Background(), NextInput{Name: "Ada", Email: "not-an-email"}, store)
	if !errors.As(err, &vErr) {
		t.Fatalf("got %v, want ValidationError", err)
	}
	if s.CurrentStep() != StepContact {
		t.Fatal("state advanced despite invalid email")
	}
	if store.Count(context.Background()) != 0 {
		t.Fatal("item entered the cart despite refused transition")
	}
}

func TestFullCartRefusesConfirmation(t *testing.T) {
	store := cart.NewStore(cart.NewMemoryBackend())
	ctx := context.Background()

	for i := 0; i < cart.MaxTrips; i++ {
		if _, err := store.Add(ctx, trip.Candidate{Destination: trip.Destination{Name: "filler"}}); err != nil {
			t.Fatalf("seed add: %v", err)
		}
	}

	s := newTestSession()
	walkToContact(t, s, store)

	_, err := s.Next(ctx, NextInput{Name: "Ada", Email: "ada@example.com"}, store)
	if !errors.Is(err, cart.ErrCartFull) {
		t.Fatalf("got %v, want ErrCartFull", err)
	}
	if s.CurrentStep() != StepContact {
		t.Fatal("state advanced despite full cart")
	}
}

func TestBackPreservesFields(t *testing.T) {
	s := newTestSession()
	store := cart.NewStore(cart.NewMemoryBackend())

	walkToContact(t, s, store)

	if err := s.Back(); err != nil {
		t.Fatalf("back: %v", err)
	}
	if s.CurrentStep() != StepExperiences {
		t.Fatalf("step = %v, want experiences", s.CurrentStep())
	}

	snap := s.Snapshot()
	if snap.Destination.Name != "Paris" || snap.Budget != trip.BudgetLuxury || len(snap.Experiences) != 2 {
		t.Fatalf("fields lost on back: %+v", snap)
	}
}

func TestBackAtFirstStepIsRefused(t *testing.T) {
	s := newTestSession()
	if err := s.Back(); err == nil {
		t.Fatal("back at the first step succeeded")
	}
}

func TestConfirmationResetsForNextPass(t *testing.T) {
	s := newTestSession()
	store := cart.NewStore(cart.NewMemoryBackend())
	ctx := context.Background()

	walkToContact(t, s, store)
	if _, err := s.Next(ctx, NextInput{Name: "Ada", Email: "ada@example.com"}, store); err != nil {
		t.Fatalf("contact step: %v", err)
	}

	if _, err := s.Next(ctx, NextInput{}, store); err != nil {
		t.Fatalf("confirmation step: %v", err)
	}

	snap := s.Snapshot()
	if s.CurrentStep() != StepDestination || snap.Destination.Name != "" || snap.Budget != "" {
		t.Fatalf("session not reset: %+v", snap)
	}
	// the cart keeps the inserted trip
	if store.Count(ctx) != 1 {
		t.Fatalf("cart count = %d, want 1", store.Count(ctx))
	}
}
