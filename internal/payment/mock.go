package payment

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"skyfare/pkg/logger"
)

// DeclinedToken simulates a declined card in demo mode.
const DeclinedToken = "pm_card_declined"

// MockAuthorizer simulates charges when no payment credential is configured.
type MockAuthorizer struct {
	logger logger.Client
}

func NewMockAuthorizer(log logger.Client) *MockAuthorizer {
	return &MockAuthorizer{logger: log}
}

func (m *MockAuthorizer) Authorize(_ context.Context, methodToken string, amount float64) (*Response, error) {
	if amount <= 0 {
		return nil, errors.New("invalid payment amount")
	}
	if methodToken == "" {
		return nil, errors.New("missing payment method")
	}

	resp := &Response{
		Success:       methodToken != DeclinedToken,
		TransactionID: "txn_" + uuid.NewString(),
		Amount:        amount,
		Timestamp:     time.Now(),
	}

	if resp.Success {
		m.logger.Info("simulated payment authorized",
			logger.Field{Key: "transaction_id", Value: resp.TransactionID},
			logger.Field{Key: "amount", Value: amount},
		)
	} else {
		m.logger.Warn("simulated payment declined",
			logger.Field{Key: "transaction_id", Value: resp.TransactionID})
	}
	return resp, nil
}

func (m *MockAuthorizer) CreateIntent(_ context.Context, amount float64, currency string) (*Intent, error) {
	if amount <= 0 {
		return nil, errors.New("invalid payment amount")
	}
	if currency == "" {
		currency = "usd"
	}
	return &Intent{
		ClientSecret: "pi_mock_secret_" + uuid.NewString(),
		Amount:       amount,
		Currency:     currency,
	}, nil
}

var _ Authorizer = (*MockAuthorizer)(nil)
