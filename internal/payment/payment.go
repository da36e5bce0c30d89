package payment

import (
	"context"
	"time"
)

// Response is the outcome of one authorization attempt. Created once per
// attempt, never mutated. A declined charge is a normal Response with
// Success=false, not an error.
type Response struct {
	Success       bool      `json:"success"`
	TransactionID string    `json:"transactionId"`
	Amount        float64   `json:"amount"`
	Timestamp     time.Time `json:"timestamp"`
}

// Intent mirrors a payment-intent handshake: the secret the front end needs
// to complete a charge.
type Intent struct {
	ClientSecret string  `json:"clientSecret"`
	Amount       float64 `json:"amount"`
	Currency     string  `json:"currency"`
}

// Authorizer requests authorization for a charge against a payment-method
// reference. Callers must treat Success=false as a hard stop.
type Authorizer interface {
	Authorize(ctx context.Context, methodToken string, amount float64) (*Response, error)
	CreateIntent(ctx context.Context, amount float64, currency string) (*Intent, error)
}
