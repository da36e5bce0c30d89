package booking

import "context"

// Repository persists bookings. Create failures must be surfaced to the
// caller: bookings represent money movement and are never mock-silenced.
type Repository interface {
	Create(ctx context.Context, b *Booking) error
	ListByUser(ctx context.Context, userID string) ([]Booking, error)
}
