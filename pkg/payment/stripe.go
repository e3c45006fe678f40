package payment

import (
	"fmt"

	stripe "github.com/stripe/stripe-go/v81"
	"github.com/stripe/stripe-go/v81/customer"
	"github.com/stripe/stripe-go/v81/paymentintent"
)

// Client wraps the Stripe API for checkout payments
type Client struct{}

func NewClient(secretKey string) *Client {
	stripe.Key = secretKey
	return &Client{}
}

// CreateCustomer registers a Stripe customer and returns its id
func (c *Client) CreateCustomer(email, name string) (string, error) {
	params := &stripe.CustomerParams{
		Email: stripe.String(email),
		Name:  stripe.String(name),
	}

	cust, err := customer.New(params)
	if err != nil {
		return "", fmt.Errorf("failed to create stripe customer: %w", err)
	}

	return cust.ID, nil
}

// Charge creates and confirms a payment intent for the given amount in cents
func (c *Client) Charge(paymentMethodID string, amountCents int64) (string, error) {
	params := &stripe.PaymentIntentParams{
		PaymentMethod:      stripe.String(paymentMethodID),
		Amount:             stripe.Int64(amountCents),
		Currency:           stripe.String(string(stripe.CurrencyUSD)),
		ConfirmationMethod: stripe.String(string(stripe.PaymentIntentConfirmationMethodManual)),
		Confirm:            stripe.Bool(true),
	}

	intent, err := paymentintent.New(params)
	if err != nil {
		return "", fmt.Errorf("failed to confirm payment intent: %w", err)
	}

	return intent.ID, nil
}
