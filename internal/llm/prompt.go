package llm

import (
	"fmt"
	"strings"
)

const plannerPersona = "You are an expert luxury travel planner with deep knowledge of destinations worldwide. You create personalized, high-end travel experiences that exceed expectations. Always provide specific, actionable recommendations with realistic pricing."

const recommenderPersona = "You are a luxury travel expert who knows the hidden gems and exclusive experiences at destinations worldwide. Provide recommendations that go beyond typical tourist attractions."

func BuildItineraryPrompt(destination string, days int, budgetRange string, experiences []string, notes string) string {
	if notes == "" {
		notes = "None"
	}

	return fmt.Sprintf(`Create a detailed %d-day luxury travel itinerary for %s with the following specifications:

Budget Range: %s
Duration: %d days
Preferred Experiences: %s
Special Notes: %s

Please provide:
1. A day-by-day breakdown with:
   - Day number and title
   - Detailed description of the day
   - 3-4 specific activities
   - Recommended accommodation (if overnight)
   - Dining recommendations
   - Transportation details
   - Estimated daily cost

2. 5-8 personalized recommendations for:
   - Unique activities
   - Fine dining restaurants
   - Luxury hotels
   - Special experiences

3. A summary paragraph about the trip
4. 3-5 insider tips for the destination

Format the response as JSON with this structure:
{
  "breakdown": [
    {
      "day": 1,
      "title": "Day Title",
      "description": "Detailed day description",
      "activities": ["Activity 1", "Activity 2", "Activity 3"],
      "accommodation": "Hotel name and brief description",
      "dining": "Restaurant recommendations",
      "transportation": "Transportation details",
      "estimatedCost": 500
    }
  ],
  "recommendations": [
    {
      "type": "activity|restaurant|hotel|experience",
      "name": "Name",
      "description": "Description",
      "whyRecommended": "Why this is perfect for this traveler",
      "estimatedCost": 200,
      "location": "Location if applicable"
    }
  ],
  "totalEstimatedCost": 5000,
  "summary": "Overall trip summary",
  "tips": ["Tip 1", "Tip 2", "Tip 3"]
}

Make it luxurious, personalized, and include insider knowledge that only a luxury travel expert would know.`,
		days, destination, budgetRange, days, strings.Join(experiences, ", "), notes)
}

func BuildRecommendationsPrompt(destination, budgetRange string, experiences, previousTrips []string) string {
	previous := "None"
	if len(previousTrips) > 0 {
		previous = strings.Join(previousTrips, ", ")
	}

	return fmt.Sprintf(`Based on the following traveler profile, suggest 6-8 unique luxury recommendations for %s:

Budget Range: %s
Preferred Experiences: %s
Previous Destinations: %s

Provide recommendations that are:
- Within the budget range
- Aligned with their experience preferences
- Unique and not commonly found in guidebooks
- Suitable for luxury travelers
- Specific to %s

Format as JSON array:
[
  {
    "type": "activity|restaurant|hotel|experience",
    "name": "Name",
    "description": "Detailed description",
    "whyRecommended": "Why this matches their preferences",
    "estimatedCost": 200,
    "location": "Specific location"
  }
]`,
		destination, budgetRange, strings.Join(experiences, ", "), previous, destination)
}
