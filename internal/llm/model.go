package llm

// TripBreakdown is one day of the generated itinerary.
type TripBreakdown struct {
	Day            int      `json:"day"`
	Title          string   `json:"title"`
	Description    string   `json:"description"`
	Activities     []string `json:"activities"`
	Accommodation  string   `json:"accommodation,omitempty"`
	Dining         string   `json:"dining,omitempty"`
	Transportation string   `json:"transportation,omitempty"`
	EstimatedCost  int      `json:"estimatedCost"`
}

type Recommendation struct {
	Type           string `json:"type"` // activity | restaurant | hotel | experience
	Name           string `json:"name"`
	Description    string `json:"description"`
	WhyRecommended string `json:"whyRecommended"`
	EstimatedCost  int    `json:"estimatedCost"`
	Location       string `json:"location,omitempty"`
}

// TripAnalysis is the normalized itinerary result. It is ephemeral unless
// the traveler saves it as a trip plan.
type TripAnalysis struct {
	Breakdown          []TripBreakdown  `json:"breakdown"`
	Recommendations    []Recommendation `json:"recommendations"`
	TotalEstimatedCost int              `json:"totalEstimatedCost"`
	Summary            string           `json:"summary"`
	Tips               []string         `json:"tips"`
}
