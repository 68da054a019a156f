package submissions

import (
	"context"
	"fmt"

	"github.com/ezrarag/Stamped-in-style/internal/payments"
	"github.com/ezrarag/Stamped-in-style/internal/trip"
)

// --------------------------------------------------
// ERROR KINDS
// --------------------------------------------------

// PersistenceError carries the storage collaborator's failure verbatim so
// the client sees the real status and message, not a generic wrapper.
type PersistenceError struct {
	Status  int
	Message string
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistence failed (%d): %s", e.Status, e.Message)
}

type PaymentError struct {
	Message string
}

func (e *PaymentError) Error() string {
	return "payment session failed: " + e.Message
}

// --------------------------------------------------
// RELAY
// --------------------------------------------------

type Service struct {
	repo       Repository
	payments   payments.Client
	successURL string
	cancelURL  string
}

func NewService(repo Repository, paymentsClient payments.Client, successURL, cancelURL string) *Service {
	return &Service{
		repo:       repo,
		payments:   paymentsClient,
		successURL: successURL,
		cancelURL:  cancelURL,
	}
}

type SubmitInput struct {
	Item              trip.TripItem
	Phone             string
	ContactPreference string
}

// Result of one submission attempt. PaymentErr set with a non-empty
// SubmissionID means the trip was saved but payment setup failed; the
// client should offer a payment retry, not a resubmission.
type Result struct {
	ClientID     string        `json:"clientId"`
	SubmissionID string        `json:"id"`
	CheckoutURL  string        `json:"checkoutUrl,omitempty"`
	PaymentErr   *PaymentError `json:"paymentError,omitempty"`
}

// Submit persists the trip and then opens a checkout session. Persistence
// strictly precedes payment: the session's metadata references the stored
// record, so a failed insert must never reach the payment collaborator.
func (s *Service) Submit(ctx context.Context, in SubmitInput) (*Result, error) {
	client := &ClientRecord{
		FullName:          in.Item.Name,
		Email:             in.Item.Email,
		Phone:             in.Phone,
		ContactPreference: in.ContactPreference,
	}
	if err := s.repo.CreateClient(ctx, client); err != nil {
		return nil, &PersistenceError{Status: 500, Message: err.Error()}
	}

	submission := &TripSubmission{
		ClientID:    client.ID,
		Destination: in.Item.Destination.Name,
		Budget:      string(in.Item.Budget),
		Duration:    string(in.Item.Duration),
		Experiences: in.Item.Experiences,
		Notes:       in.Item.Notes,
		TotalPrice:  in.Item.TotalPrice,
		Status:      StatusPending,
	}
	if err := s.repo.CreateSubmission(ctx, submission); err != nil {
		return nil, &PersistenceError{Status: 500, Message: err.Error()}
	}

	result := &Result{
		ClientID:     client.ID,
		SubmissionID: submission.ID,
	}

	session, err := s.payments.CreateCheckoutSession(ctx, payments.SessionParams{
		AmountCents: int64(submission.TotalPrice) * 100,
		Description: fmt.Sprintf("Deposit for your custom trip to %s", submission.Destination),
		SuccessURL:  s.successURL,
		CancelURL:   s.cancelURL,
		Metadata: map[string]string{
			"submission_id": submission.ID,
			"client_id":     client.ID,
		},
	})
	if err != nil {
		// the trip was saved, only payment setup failed
		result.PaymentErr = &PaymentError{Message: err.Error()}
		return result, nil
	}

	result.CheckoutURL = session.URL
	return result, nil
}

func (s *Service) List(ctx context.Context) ([]*TripSubmission, error) {
	return s.repo.ListSubmissions(ctx)
}

func (s *Service) ListByClient(ctx context.Context, clientID string) ([]*TripSubmission, error) {
	return s.repo.ListByClient(ctx, clientID)
}
