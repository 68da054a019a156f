package llm

import (
	"context"
	"errors"

	"github.com/ezrarag/Stamped-in-style/internal/trip"
)

// ErrInvalidInput marks a request missing destination, duration, or budget.
// An empty experience list is acceptable; an absent one is not, which the
// HTTP layer enforces before the enums are parsed.
var ErrInvalidInput = errors.New("missing required fields: destination, duration, budget, experiences")

type Service struct {
	client Client
}

func NewService(client Client) *Service {
	return &Service{client: client}
}

type BreakdownInput struct {
	Destination string
	Duration    trip.Duration
	Budget      trip.Budget
	Experiences []string
	Notes       string
}

// GenerateTripBreakdown builds the itinerary prompt, asks the completion
// collaborator, and normalizes whatever comes back. An unusable reply is a
// defaulted TripAnalysis, not an error; only validation and upstream
// transport problems surface.
func (s *Service) GenerateTripBreakdown(ctx context.Context, in BreakdownInput) (*TripAnalysis, error) {
	if in.Destination == "" || in.Duration == "" || in.Budget == "" {
		return nil, ErrInvalidInput
	}

	reply, err := s.client.Complete(ctx, Request{
		System:      plannerPersona,
		Prompt:      BuildItineraryPrompt(in.Destination, in.Duration.Days(), in.Budget.Range(), in.Experiences, in.Notes),
		Temperature: 0.7,
		MaxTokens:   3000,
	})
	if err != nil {
		return nil, err
	}

	analysis := Normalize(ParseTripAnalysis(reply), in.Destination)
	return &analysis, nil
}

type RecommendationsInput struct {
	Destination   string
	Budget        trip.Budget
	Experiences   []string
	PreviousTrips []string
}

func (s *Service) GenerateRecommendations(ctx context.Context, in RecommendationsInput) ([]Recommendation, error) {
	if in.Destination == "" || in.Budget == "" {
		return nil, ErrInvalidInput
	}

	reply, err := s.client.Complete(ctx, Request{
		System:      recommenderPersona,
		Prompt:      BuildRecommendationsPrompt(in.Destination, in.Budget.Range(), in.Experiences, in.PreviousTrips),
		Temperature: 0.8,
		MaxTokens:   2000,
	})
	if err != nil {
		return nil, err
	}

	return ParseRecommendations(reply), nil
}
