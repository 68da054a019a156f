package trip

import "time"

// --------------------------------------------------
// DESTINATION
// --------------------------------------------------

type Destination struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	ImageURL string `json:"image_url"`
	Country  string `json:"country,omitempty"`
}

// --------------------------------------------------
// TRIP ITEM (CART ENTRY)
// --------------------------------------------------

// TripItem is one fully configured draft trip. The JSON field names match
// the persisted cart layout, so a format change requires a coordinated
// consumer update.
type TripItem struct {
	ID          string      `json:"id"`
	Destination Destination `json:"destination"`
	Budget      Budget      `json:"budget"`
	Duration    Duration    `json:"duration"`
	Experiences []string    `json:"experiences"`
	Name        string      `json:"name"`
	Email       string      `json:"email"`
	Notes       string      `json:"notes"`
	TotalPrice  int         `json:"totalPrice"`
	CreatedAt   time.Time   `json:"createdAt"`
}

// Candidate is a TripItem before the cart assigns its id and timestamp.
type Candidate struct {
	Destination Destination `json:"destination"`
	Budget      Budget      `json:"budget"`
	Duration    Duration    `json:"duration"`
	Experiences []string    `json:"experiences"`
	Name        string      `json:"name"`
	Email       string      `json:"email"`
	Notes       string      `json:"notes"`
	TotalPrice  int         `json:"totalPrice"`
}
