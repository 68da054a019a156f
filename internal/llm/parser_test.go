package llm

import (
	"strings"
	"testing"
)

func TestParseNotJSONFallsBackToDefaults(t *testing.T) {
	analysis := Normalize(ParseTripAnalysis("not json at all"), "Paris")

	if analysis.Breakdown == nil || len(analysis.Breakdown) != 0 {
		t.Fatalf("breakdown = %v, want empty slice", analysis.Breakdown)
	}
	if analysis.Recommendations == nil || len(analysis.Recommendations) != 0 {
		t.Fatalf("recommendations = %v, want empty slice", analysis.Recommendations)
	}
	if analysis.Tips == nil || len(analysis.Tips) != 0 {
		t.Fatalf("tips = %v, want empty slice", analysis.Tips)
	}
	if analysis.Summary == "" {
		t.Fatal("summary was not synthesized")
	}
	if !strings.Contains(analysis.Summary, "Paris") {
		t.Fatalf("summary %q does not mention the destination", analysis.Summary)
	}
	if analysis.TotalEstimatedCost != 0 {
		t.Fatalf("totalEstimatedCost = %d, want 0", analysis.TotalEstimatedCost)
	}
}

func TestParseDirectJSON(t *testing.T) {
	raw := `{
		"breakdown": [
			{"day": 1, "title": "Arrival", "description": "Check in", "activities": ["Seine walk"], "estimatedCost": 500},
			{"day": 2, "title": "Museums", "description": "Louvre day", "activities": ["Louvre"], "estimatedCost": 300}
		],
		"recommendations": [{"type": "restaurant", "name": "Le Cinq", "description": "three stars", "whyRecommended": "fits the budget", "estimatedCost": 400}],
		"summary": "A Paris classic.",
		"tips": ["Book ahead"]
	}`

	analysis := Normalize(ParseTripAnalysis(raw), "Paris")

	if len(analysis.Breakdown) != 2 {
		t.Fatalf("breakdown length = %d, want 2", len(analysis.Breakdown))
	}
	if analysis.Breakdown[0].Title != "Arrival" {
		t.Fatalf("day 1 title = %q", analysis.Breakdown[0].Title)
	}
	if analysis.Summary != "A Paris classic." {
		t.Fatalf("summary overwritten: %q", analysis.Summary)
	}

	// absent total derives from per-day costs
	if analysis.TotalEstimatedCost != 800 {
		t.Fatalf("totalEstimatedCost = %d, want 800", analysis.TotalEstimatedCost)
	}
}

func TestParseFencedJSON(t *testing.T) {
	raw := "Here is your itinerary:\n```json\n" +
		`{"breakdown": [{"day": 1, "title": "Day One", "description": "d", "activities": [], "estimatedCost": 100}], "totalEstimatedCost": 100}` +
		"\n```\nEnjoy your trip!"

	analysis := Normalize(ParseTripAnalysis(raw), "Tokyo")

	if len(analysis.Breakdown) != 1 || analysis.Breakdown[0].Title != "Day One" {
		t.Fatalf("fenced block not parsed: %+v", analysis)
	}
	if analysis.TotalEstimatedCost != 100 {
		t.Fatalf("totalEstimatedCost = %d, want 100", analysis.TotalEstimatedCost)
	}
}

func TestNormalizeKeepsExplicitTotal(t *testing.T) {
	in := TripAnalysis{
		Breakdown:          []TripBreakdown{{Day: 1, EstimatedCost: 100}},
		TotalEstimatedCost: 9000,
	}
	out := Normalize(in, "Bali")
	if out.TotalEstimatedCost != 9000 {
		t.Fatalf("explicit total overwritten: %d", out.TotalEstimatedCost)
	}
}

func TestParseRecommendationsFallsBackToEmpty(t *testing.T) {
	recs := ParseRecommendations("sorry, I cannot help with that")
	if recs == nil || len(recs) != 0 {
		t.Fatalf("recs = %v, want empty slice", recs)
	}

	recs = ParseRecommendations(`[{"type": "hotel", "name": "Aman", "description": "d", "whyRecommended": "w", "estimatedCost": 900}]`)
	if len(recs) != 1 || recs[0].Name != "Aman" {
		t.Fatalf("recs = %v", recs)
	}
}
