package stripe

import (
	"github.com/stripe/stripe-go/v81"
	"github.com/stripe/stripe-go/v81/paymentintent"
)

// Client defines the methods that any payment client must implement.
type Client interface {
	CreatePaymentIntent(amount int64, currency string, description string, customerID string) (*stripe.PaymentIntent, error)
	CancelPaymentIntent(paymentIntentID string) (*stripe.PaymentIntent, error)
}

type stripeClient struct{}

func NewStripeClient(apiKey string) Client {
	stripe.Key = apiKey

	return &stripeClient{}
}

// PaymentIntent == "planned payment", a booking waiting for payment.
func (s *stripeClient) CreatePaymentIntent(amount int64, currency string, description string, customerID string) (*stripe.PaymentIntent, error) {
	params := &stripe.PaymentIntentParams{
		Amount:      stripe.Int64(amount),
		Currency:    stripe.String(currency),
		Description: stripe.String(description),
	}

	if customerID != "" {
		params.Customer = stripe.String(customerID)
	}

	return paymentintent.New(params)
}

func (s *stripeClient) CancelPaymentIntent(paymentIntentID string) (*stripe.PaymentIntent, error) {
	return paymentintent.Cancel(paymentIntentID, nil)
}
