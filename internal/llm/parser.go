package llm

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ParseTripAnalysis extracts a TripAnalysis from the model's free-text
// reply. Policy: try the whole reply as JSON, then the contents of a fenced
// code block, then give up and return the zero value. It never fails; the
// preview feature must always receive some structure.
func ParseTripAnalysis(raw string) TripAnalysis {
	var analysis TripAnalysis

	if err := json.Unmarshal([]byte(raw), &analysis); err == nil {
		return analysis
	}

	if fenced, ok := extractFencedBlock(raw); ok {
		if err := json.Unmarshal([]byte(fenced), &analysis); err == nil {
			return analysis
		}
	}

	return TripAnalysis{}
}

// ParseRecommendations does the same for a bare recommendation array.
func ParseRecommendations(raw string) []Recommendation {
	var recs []Recommendation

	if err := json.Unmarshal([]byte(raw), &recs); err == nil {
		return recs
	}
	if fenced, ok := extractFencedBlock(raw); ok {
		if err := json.Unmarshal([]byte(fenced), &recs); err == nil {
			return recs
		}
	}
	return []Recommendation{}
}

// extractFencedBlock returns the body of the first ``` fence, tolerating a
// language tag on the opening line.
func extractFencedBlock(raw string) (string, bool) {
	start := strings.Index(raw, "```")
	if start < 0 {
		return "", false
	}
	rest := raw[start+3:]

	if nl := strings.IndexByte(rest, '\n'); nl >= 0 {
		firstLine := strings.TrimSpace(rest[:nl])
		if firstLine == "" || isLanguageTag(firstLine) {
			rest = rest[nl+1:]
		}
	}

	end := strings.Index(rest, "```")
	if end < 0 {
		return "", false
	}
	return strings.TrimSpace(rest[:end]), true
}

func isLanguageTag(s string) bool {
	for _, r := range s {
		if (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') {
			return false
		}
	}
	return true
}

// Normalize repairs whatever shape the model returned: each sequence field
// defaults to empty independently, the total derives from per-day costs when
// absent, and a missing summary is synthesized from the destination.
func Normalize(analysis TripAnalysis, destination string) TripAnalysis {
	if analysis.Breakdown == nil {
		analysis.Breakdown = []TripBreakdown{}
	}
	if analysis.Recommendations == nil {
		analysis.Recommendations = []Recommendation{}
	}
	if analysis.Tips == nil {
		analysis.Tips = []string{}
	}

	if analysis.TotalEstimatedCost == 0 {
		for _, day := range analysis.Breakdown {
			analysis.TotalEstimatedCost += day.EstimatedCost
		}
	}

	if analysis.Summary == "" {
		analysis.Summary = fmt.Sprintf(
			"Experience the best of %s with this carefully curated luxury itinerary designed for discerning travelers.",
			destination,
		)
	}

	return analysis
}
