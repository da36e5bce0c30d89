package payment

import (
	"context"
	"errors"
	"math"
	"time"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"

	"skyfare/pkg/logger"
)

// StripeAuthorizer charges through Stripe PaymentIntents. The API key is
// injected, not read from the environment here.
type StripeAuthorizer struct {
	api    *client.API
	logger logger.Client
}

func NewStripeAuthorizer(secretKey string, log logger.Client) *StripeAuthorizer {
	api := &client.API{}
	api.Init(secretKey, nil)
	return &StripeAuthorizer{api: api, logger: log}
}

func (s *StripeAuthorizer) Authorize(ctx context.Context, methodToken string, amount float64) (*Response, error) {
	if amount <= 0 {
		return nil, errors.New("invalid payment amount")
	}
	if methodToken == "" {
		return nil, errors.New("missing payment method")
	}

	params := &stripe.PaymentIntentParams{
		Params:        stripe.Params{Context: ctx},
		Amount:        stripe.Int64(toCents(amount)),
		Currency:      stripe.String(string(stripe.CurrencyUSD)),
		PaymentMethod: stripe.String(methodToken),
		Confirm:       stripe.Bool(true),
	}

	pi, err := s.api.PaymentIntents.New(params)
	if err != nil {
		// A card decline is a normal outcome; anything else is surfaced.
		var stripeErr *stripe.Error
		if errors.As(err, &stripeErr) && stripeErr.Type == stripe.ErrorTypeCard {
			s.logger.Warn("card declined", logger.Field{Key: "stripe_code", Value: string(stripeErr.Code)})
			return &Response{
				Success:   false,
				Amount:    amount,
				Timestamp: time.Now(),
			}, nil
		}
		return nil, err
	}

	resp := &Response{
		Success:       pi.Status == stripe.PaymentIntentStatusSucceeded,
		TransactionID: pi.ID,
		Amount:        amount,
		Timestamp:     time.Now(),
	}
	s.logger.Info("stripe payment processed",
		logger.Field{Key: "payment_intent", Value: pi.ID},
		logger.Field{Key: "status", Value: string(pi.Status)},
	)
	return resp, nil
}

func (s *StripeAuthorizer) CreateIntent(ctx context.Context, amount float64, currency string) (*Intent, error) {
	if amount <= 0 {
		return nil, errors.New("invalid payment amount")
	}
	if currency == "" {
		currency = string(stripe.CurrencyUSD)
	}

	pi, err := s.api.PaymentIntents.New(&stripe.PaymentIntentParams{
		Params:   stripe.Params{Context: ctx},
		Amount:   stripe.Int64(toCents(amount)),
		Currency: stripe.String(currency),
	})
	if err != nil {
		return nil, err
	}

	return &Intent{
		ClientSecret: pi.ClientSecret,
		Amount:       amount,
		Currency:     currency,
	}, nil
}

func toCents(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

var _ Authorizer = (*StripeAuthorizer)(nil)
