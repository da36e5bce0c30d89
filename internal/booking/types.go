package booking

import "time"

type Status string

const (
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
	StatusPending   Status = "pending"
)

// Booking is a committed purchase. Immutable after creation except for
// status transitions.
type Booking struct {
	ID            string    `json:"id"`
	UserID        string    `json:"userId"`
	FlightID      string    `json:"flightId"`
	Airline       string    `json:"airline"`
	Price         float64   `json:"price"`
	Date          string    `json:"date"`
	Time          string    `json:"time"`
	Duration      string    `json:"duration"`
	TransactionID string    `json:"transactionId"`
	Status        Status    `json:"status"`
	From          string    `json:"from"`
	To            string    `json:"to"`
	Passengers    int       `json:"passengers"`
	CreatedAt     time.Time `json:"createdAt"`
}

type CreateInput struct {
	FlightID      string `json:"flightId"`
	Passengers    int    `json:"passengers"`
	PaymentMethod string `json:"paymentMethod"`
}
