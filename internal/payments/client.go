package payments

import "context"

type SessionParams struct {
	AmountCents int64
	Description string
	SuccessURL  string
	CancelURL   string
	Metadata    map[string]string
}

type Session struct {
	URL string
}

// Client creates hosted checkout sessions. The submission relay depends
// ONLY on this interface.
type Client interface {
	CreateCheckoutSession(ctx context.Context, params SessionParams) (*Session, error)
}
