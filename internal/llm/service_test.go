package llm

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/ezrarag/Stamped-in-style/internal/trip"
)

// --------------------------------------------------
// Mock Client
// --------------------------------------------------

type mockClient struct {
	reply    string
	err      error
	lastReq  Request
	requests int
}

func (m *mockClient) Complete(ctx context.Context, req Request) (string, error) {
	m.lastReq = req
	m.requests++
	if m.err != nil {
		return "", m.err
	}
	return m.reply, nil
}

// --------------------------------------------------
// TESTS
// --------------------------------------------------

func TestGenerateTripBreakdownValidatesInput(t *testing.T) {
	client := &mockClient{reply: "{}"}
	service := NewService(client)

	_, err := service.GenerateTripBreakdown(context.Background(), BreakdownInput{
		Duration: trip.DurationWeek,
		Budget:   trip.BudgetLuxury,
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("got %v, want ErrInvalidInput", err)
	}
	if client.requests != 0 {
		t.Fatal("collaborator was called for invalid input")
	}
}

func TestGenerateTripBreakdownUnusableReplyReturnsDefaults(t *testing.T) {
	client := &mockClient{reply: "not json at all"}
	service := NewService(client)

	analysis, err := service.GenerateTripBreakdown(context.Background(), BreakdownInput{
		Destination: "Paris",
		Duration:    trip.DurationWeek,
		Budget:      trip.BudgetLuxury,
		Experiences: []string{},
	})
	if err != nil {
		t.Fatalf("unusable reply surfaced as error: %v", err)
	}
	if len(analysis.Breakdown) != 0 || analysis.Summary == "" {
		t.Fatalf("defaults not applied: %+v", analysis)
	}
}

func TestGenerateTripBreakdownUpstreamFailureIsDistinct(t *testing.T) {
	client := &mockClient{err: ErrUpstreamUnavailable}
	service := NewService(client)

	_, err := service.GenerateTripBreakdown(context.Background(), BreakdownInput{
		Destination: "Paris",
		Duration:    trip.DurationWeek,
		Budget:      trip.BudgetLuxury,
	})
	if !errors.Is(err, ErrUpstreamUnavailable) {
		t.Fatalf("got %v, want ErrUpstreamUnavailable", err)
	}
}

func TestGenerateTripBreakdownPromptContents(t *testing.T) {
	client := &mockClient{reply: "{}"}
	service := NewService(client)

	_, err := service.GenerateTripBreakdown(context.Background(), BreakdownInput{
		Destination: "Kyoto",
		Duration:    trip.DurationTwoWeeks,
		Budget:      trip.BudgetUltraLuxury,
		Experiences: []string{"Fine Dining", "Culture & Arts"},
		Notes:       "anniversary trip",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, want := range []string{"14-day", "Kyoto", "$15,000+", "Fine Dining, Culture & Arts", "anniversary trip"} {
		if !strings.Contains(client.lastReq.Prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
	if client.lastReq.System != plannerPersona {
		t.Error("planner persona not used as system prompt")
	}
	if client.lastReq.MaxTokens != 3000 {
		t.Errorf("maxTokens = %d, want 3000", client.lastReq.MaxTokens)
	}
}
