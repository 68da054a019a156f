package curated

import "time"

// Item is one curated trip offering shown on the browsing page.
type Item struct {
	ID          int       `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Type        string    `json:"type"`
	PriceRange  string    `json:"price_range"`
	Distance    string    `json:"distance"`
	ImageURL    string    `json:"image_url,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// Filters narrows the curated listing. Zero values mean "no filter".
type Filters struct {
	Category string
	Type     string
	Cost     string
	Distance string
	Search   string
}
