package submissions

import (
	"context"
	"errors"
	"testing"

	"github.com/ezrarag/Stamped-in-style/internal/payments"
	"github.com/ezrarag/Stamped-in-style/internal/trip"
)

// --------------------------------------------------
// Mock Repository
// --------------------------------------------------

type mockRepository struct {
	clientErr     error
	submissionErr error
	clients       []*ClientRecord
	submissions   []*TripSubmission
	nextID        int
}

func (m *mockRepository) CreateClient(ctx context.Context, client *ClientRecord) error {
	if m.clientErr != nil {
		return m.clientErr
	}
	m.nextID++
	client.ID = "client-1"
	m.clients = append(m.clients, client)
	return nil
}

func (m *mockRepository) CreateSubmission(ctx context.Context, submission *TripSubmission) error {
	if m.submissionErr != nil {
		return m.submissionErr
	}
	submission.ID = "submission-1"
	m.submissions = append(m.submissions, submission)
	return nil
}

func (m *mockRepository) ListSubmissions(ctx context.Context) ([]*TripSubmission, error) {
	return m.submissions, nil
}

func (m *mockRepository) ListByClient(ctx context.Context, clientID string) ([]*TripSubmission, error) {
	return m.submissions, nil
}

// --------------------------------------------------
// Mock Payments
// --------------------------------------------------

type mockPayments struct {
	err    error
	calls  int
	params payments.SessionParams
}

func (m *mockPayments) CreateCheckoutSession(ctx context.Context, params payments.SessionParams) (*payments.Session, error) {
	m.calls++
	m.params = params
	if m.err != nil {
		return nil, m.err
	}
	return &payments.Session{URL: "https://checkout.example/session"}, nil
}

// --------------------------------------------------
// TESTS
// --------------------------------------------------

func submitInput() SubmitInput {
	return SubmitInput{
		Item: trip.TripItem{
			ID:          "cart-item-1",
			Destination: trip.Destination{ID: "paris", Name: "Paris"},
			Budget:      trip.BudgetLuxury,
			Duration:    trip.DurationWeek,
			Experiences: []string{"Fine Dining"},
			Name:        "Ada",
			Email:       "ada@example.com",
			TotalPrice:  12000,
		},
	}
}

func TestPersistenceFailurePreventsPaymentCall(t *testing.T) {
	repo := &mockRepository{clientErr: errors.New("duplicate key value violates unique constraint")}
	pay := &mockPayments{}
	service := NewService(repo, pay, "https://x/success", "https://x/cancel")

	_, err := service.Submit(context.Background(), submitInput())

	var pErr *PersistenceError
	if !errors.As(err, &pErr) {
		t.Fatalf("got %v, want PersistenceError", err)
	}
	if pErr.Message != "duplicate key value violates unique constraint" {
		t.Fatalf("message not passed verbatim: %q", pErr.Message)
	}
	if pay.calls != 0 {
		t.Fatalf("payment collaborator was invoked %d times after persistence failure", pay.calls)
	}
}

func TestSubmissionFailurePreventsPaymentCall(t *testing.T) {
	repo := &mockRepository{submissionErr: errors.New("relation does not exist")}
	pay := &mockPayments{}
	service := NewService(repo, pay, "https://x/success", "https://x/cancel")

	_, err := service.Submit(context.Background(), submitInput())

	var pErr *PersistenceError
	if !errors.As(err, &pErr) {
		t.Fatalf("got %v, want PersistenceError", err)
	}
	if pay.calls != 0 {
		t.Fatal("payment collaborator invoked after submission insert failed")
	}
}

func TestPaymentFailureReturnsIDAndPaymentError(t *testing.T) {
	repo := &mockRepository{}
	pay := &mockPayments{err: errors.New("card network unreachable")}
	service := NewService(repo, pay, "https://x/success", "https://x/cancel")

	result, err := service.Submit(context.Background(), submitInput())
	if err != nil {
		t.Fatalf("payment failure surfaced as hard error: %v", err)
	}
	if result.SubmissionID != "submission-1" {
		t.Fatalf("submission id missing from result: %+v", result)
	}
	if result.PaymentErr == nil {
		t.Fatal("payment error missing from result")
	}
	if result.CheckoutURL != "" {
		t.Fatal("checkout url set despite payment failure")
	}
}

func TestSuccessfulSubmitCreatesSessionWithMetadata(t *testing.T) {
	repo := &mockRepository{}
	pay := &mockPayments{}
	service := NewService(repo, pay, "https://x/success", "https://x/cancel")

	result, err := service.Submit(context.Background(), submitInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.CheckoutURL != "https://checkout.example/session" {
		t.Fatalf("checkout url = %q", result.CheckoutURL)
	}

	if pay.params.AmountCents != 1200000 {
		t.Fatalf("amount = %d cents, want 1200000", pay.params.AmountCents)
	}
	if pay.params.Metadata["submission_id"] != "submission-1" {
		t.Fatal("checkout session metadata does not reference the persisted record")
	}
	if len(repo.submissions) != 1 || repo.submissions[0].Status != StatusPending {
		t.Fatalf("submission not stored as pending: %+v", repo.submissions)
	}
}
