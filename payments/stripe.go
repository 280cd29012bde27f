package payments

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/client"
)

// ErrInvalidPrice is returned when a checkout is attempted for a price that
// cannot produce a chargeable amount.
var ErrInvalidPrice = errors.New("price must be greater than zero")

// IntentCreator requests a payment intent for an amount in minor currency
// units and returns the client-side secret used to complete the charge.
type IntentCreator interface {
	CreateIntent(ctx context.Context, amount int64, currency string) (string, error)
}

// MinorUnits converts a price in major currency units to integer minor units,
// truncating sub-cent fractions.
func MinorUnits(price float64) (int64, error) {
	amount := int64(price * 100)
	if amount <= 0 {
		return 0, ErrInvalidPrice
	}
	return amount, nil
}

// StripeIntents creates payment intents through the Stripe API.
type StripeIntents struct {
	api *client.API
}

func NewStripeIntents(secretKey string) *StripeIntents {
	api := &client.API{}
	api.Init(secretKey, nil)
	return &StripeIntents{api: api}
}

func (s *StripeIntents) CreateIntent(ctx context.Context, amount int64, currency string) (string, error) {
	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(amount),
		Currency:           stripe.String(currency),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}
	params.Context = ctx
	params.SetIdempotencyKey(uuid.NewString())

	intent, err := s.api.PaymentIntents.New(params)
	if err != nil {
		return "", err
	}
	return intent.ClientSecret, nil
}
