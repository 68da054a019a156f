package wizard

import (
	"context"
	"fmt"
	"regexp"
	"sync"
	"time"

	"github.com/ezrarag/Stamped-in-style/internal/cart"
	"github.com/ezrarag/Stamped-in-style/internal/places"
	"github.com/ezrarag/Stamped-in-style/internal/trip"
)

// --------------------------------------------------
// STEPS
// --------------------------------------------------

type Step int

const (
	StepDestination Step = iota
	StepBudgetAndDuration
	StepExperiences
	StepContact
	StepConfirmation
)

var stepNames = map[Step]string{
	StepDestination:       "destination",
	StepBudgetAndDuration: "budget-and-duration",
	StepExperiences:       "experiences",
	StepContact:           "contact",
	StepConfirmation:      "confirmation",
}

func (s Step) String() string {
	return stepNames[s]
}

// --------------------------------------------------
// VALIDATION
// --------------------------------------------------

type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// --------------------------------------------------
// SESSION
// --------------------------------------------------

// Session is one traveler's pass through the five wizard steps. Steps are
// strictly ordered; a refused transition leaves every field untouched.
type Session struct {
	ID string

	mu          sync.Mutex
	step        Step
	destination trip.Destination
	budget      trip.Budget
	duration    trip.Duration
	experiences []string
	name        string
	email       string
	notes       string

	searcher      *Searcher
	searchResults []places.Prediction
	searchSeq     uint64

	lastAdded *trip.TripItem
	touchedAt time.Time
}

// NextInput carries the fields the traveler filled in on the current step.
// Only the fields belonging to that step are read.
type NextInput struct {
	Destination *trip.Destination `json:"destination,omitempty"`
	FeaturedID  string            `json:"featuredId,omitempty"`
	Budget      string            `json:"budget,omitempty"`
	Duration    string            `json:"duration,omitempty"`
	Experiences []string          `json:"experiences,omitempty"`
	Name        string            `json:"name,omitempty"`
	Email       string            `json:"email,omitempty"`
	Notes       string            `json:"notes,omitempty"`
}

// Next validates the current step against in and advances on success.
// The Contact step also inserts the finished trip into the cart; a full
// cart refuses the transition and the session stays at Contact.
func (s *Session) Next(ctx context.Context, in NextInput, store *cart.Store) (*trip.TripItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touchedAt = time.Now()

	switch s.step {

	case StepDestination:
		if in.FeaturedID != "" {
			dest, ok := places.FeaturedByID(in.FeaturedID)
			if !ok {
				return nil, &ValidationError{Field: "featuredId", Reason: fmt.Sprintf("unknown featured destination %q", in.FeaturedID)}
			}
			s.destination = dest
		}
		if in.Destination != nil {
			s.destination = *in.Destination
		}
		if s.destination.Name == "" {
			return nil, &ValidationError{Field: "destination", Reason: "select a destination first"}
		}
		s.step = StepBudgetAndDuration
		return nil, nil

	case StepBudgetAndDuration:
		if in.Budget == "" || in.Duration == "" {
			return nil, &ValidationError{Field: "budget", Reason: "budget and duration are both required"}
		}
		budget, err := trip.ParseBudget(in.Budget)
		if err != nil {
			return nil, &ValidationError{Field: "budget", Reason: err.Error()}
		}
		duration, err := trip.ParseDuration(in.Duration)
		if err != nil {
			return nil, &ValidationError{Field: "duration", Reason: err.Error()}
		}
		s.budget = budget
		s.duration = duration
		s.step = StepExperiences
		return nil, nil

	case StepExperiences:
		// zero tags is fine, unknown tags are not
		seen := map[string]bool{}
		tags := make([]string, 0, len(in.Experiences))
		for _, tag := range in.Experiences {
			if !trip.ValidExperience(tag) {
				return nil, &ValidationError{Field: "experiences", Reason: fmt.Sprintf("unknown experience %q", tag)}
			}
			if !seen[tag] {
				seen[tag] = true
				tags = append(tags, tag)
			}
		}
		s.experiences = tags
		s.step = StepContact
		return nil, nil

	case StepContact:
		if in.Name == "" {
			return nil, &ValidationError{Field: "name", Reason: "name is required"}
		}
		if !emailPattern.MatchString(in.Email) {
			return nil, &ValidationError{Field: "email", Reason: "a valid email is required"}
		}
		s.name = in.Name
		s.email = in.Email
		s.notes = in.Notes

		item, err := store.Add(ctx, trip.Candidate{
			Destination: s.destination,
			Budget:      s.budget,
			Duration:    s.duration,
			Experiences: s.experiences,
			Name:        s.name,
			Email:       s.email,
			Notes:       s.notes,
			TotalPrice:  trip.EstimatePrice(s.budget, s.duration, len(s.experiences)),
		})
		if err != nil {
			// cart full or storage trouble, state does not advance
			return nil, err
		}
		s.lastAdded = item
		s.step = StepConfirmation
		return item, nil

	case StepConfirmation:
		// terminal for this pass, the next pass starts clean
		s.resetLocked()
		return nil, nil
	}

	return nil, fmt.Errorf("unknown step %d", s.step)
}

// Back moves to the previous step, preserving everything already entered.
func (s *Session) Back() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touchedAt = time.Now()

	if s.step == StepDestination {
		return &ValidationError{Field: "step", Reason: "already at the first step"}
	}
	s.step--
	return nil
}

func (s *Session) resetLocked() {
	s.step = StepDestination
	s.destination = trip.Destination{}
	s.budget = ""
	s.duration = ""
	s.experiences = nil
	s.name = ""
	s.email = ""
	s.notes = ""
	s.lastAdded = nil
}

// --------------------------------------------------
// SNAPSHOT (READ VIEW)
// --------------------------------------------------

type Snapshot struct {
	ID             string              `json:"id"`
	Step           string              `json:"step"`
	StepIndex      int                 `json:"stepIndex"`
	Destination    trip.Destination    `json:"destination"`
	Budget         trip.Budget         `json:"budget,omitempty"`
	Duration       trip.Duration       `json:"duration,omitempty"`
	Experiences    []string            `json:"experiences"`
	Name           string              `json:"name,omitempty"`
	Email          string              `json:"email,omitempty"`
	Notes          string              `json:"notes,omitempty"`
	EstimatedPrice int                 `json:"estimatedPrice"`
	SearchResults  []places.Prediction `json:"searchResults"`
	LastAdded      *trip.TripItem      `json:"lastAdded,omitempty"`
}

func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	price := 0
	if s.budget != "" && s.duration != "" {
		price = trip.EstimatePrice(s.budget, s.duration, len(s.experiences))
	}

	experiences := s.experiences
	if experiences == nil {
		experiences = []string{}
	}
	results := s.searchResults
	if results == nil {
		results = []places.Prediction{}
	}

	return Snapshot{
		ID:             s.ID,
		Step:           s.step.String(),
		StepIndex:      int(s.step),
		Destination:    s.destination,
		Budget:         s.budget,
		Duration:       s.duration,
		Experiences:    experiences,
		Name:           s.name,
		Email:          s.email,
		Notes:          s.notes,
		EstimatedPrice: price,
		SearchResults:  results,
		LastAdded:      s.lastAdded,
	}
}

// Step reports the current step. Used by tests.
func (s *Session) CurrentStep() Step {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.step
}
