package submissions

import "time"

// --------------------------------------------------
// CLIENT (PERSISTED)
// --------------------------------------------------

type ClientRecord struct {
	ID                string    `json:"id"`
	FullName          string    `json:"full_name"`
	Email             string    `json:"email"`
	Phone             string    `json:"phone,omitempty"`
	ContactPreference string    `json:"contact_preference,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
}

// --------------------------------------------------
// TRIP SUBMISSION (PERSISTED)
// --------------------------------------------------

type TripSubmission struct {
	ID          string    `json:"id"`
	ClientID    string    `json:"client_id"`
	Destination string    `json:"destination"`
	Budget      string    `json:"budget"`
	Duration    string    `json:"duration"`
	Experiences []string  `json:"experiences"`
	Notes       string    `json:"notes,omitempty"`
	TotalPrice  int       `json:"total_price"`
	Status      string    `json:"status"` // pending | reviewed | booked
	CreatedAt   time.Time `json:"created_at"`
}

const StatusPending = "pending"
