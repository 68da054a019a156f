package payments

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/checkout/session"
)

type StripeClient struct{}

func NewStripeClient() (*StripeClient, error) {
	key := os.Getenv("STRIPE_SECRET_KEY")
	if key == "" {
		return nil, errors.New("missing STRIPE_SECRET_KEY")
	}
	stripe.Key = key
	return &StripeClient{}, nil
}

func (s *StripeClient) CreateCheckoutSession(ctx context.Context, params SessionParams) (*Session, error) {
	if params.AmountCents <= 0 {
		return nil, fmt.Errorf("checkout amount must be positive, got %d", params.AmountCents)
	}

	checkoutParams := &stripe.CheckoutSessionParams{
		Mode:               stripe.String(string(stripe.CheckoutSessionModePayment)),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency: stripe.String("usd"),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name:        stripe.String("Custom Trip Deposit"),
						Description: stripe.String(params.Description),
					},
					UnitAmount: stripe.Int64(params.AmountCents),
				},
				Quantity: stripe.Int64(1),
			},
		},
		SuccessURL: stripe.String(params.SuccessURL),
		CancelURL:  stripe.String(params.CancelURL),
	}
	checkoutParams.Context = ctx
	for k, v := range params.Metadata {
		checkoutParams.AddMetadata(k, v)
	}

	result, err := session.New(checkoutParams)
	if err != nil {
		return nil, err
	}
	return &Session{URL: result.URL}, nil
}
