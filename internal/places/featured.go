package places

import "github.com/ezrarag/Stamped-in-style/internal/trip"

// Featured is the static destination list shown when the search collaborator
// is down or before the traveler has typed anything.
func Featured() []trip.Destination {
	return []trip.Destination{
		{ID: "paris", Name: "Paris", ImageURL: "/about-hero.jpg", Country: "France"},
		{ID: "tokyo", Name: "Tokyo", ImageURL: "/hero-desert.jpg", Country: "Japan"},
		{ID: "bali", Name: "Bali", ImageURL: "/placeholder.jpg", Country: "Indonesia"},
	}
}

// FeaturedByID resolves a pick from the fallback list.
func FeaturedByID(id string) (trip.Destination, bool) {
	for _, d := range Featured() {
		if d.ID == id {
			return d, true
		}
	}
	return trip.Destination{}, false
}
