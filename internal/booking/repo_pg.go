package booking

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// PGRepository stores bookings in Postgres.
type PGRepository struct {
	db *pgxpool.Pool
}

func NewPGRepository(db *pgxpool.Pool) *PGRepository {
	return &PGRepository{db: db}
}

func (r *PGRepository) Create(ctx context.Context, b *Booking) error {
	_, err := r.db.Exec(ctx, `INSERT INTO bookings
		(id, user_id, flight_id, airline, price, travel_date, travel_time, duration,
		 transaction_id, status, from_airport, to_airport, passengers, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`,
		b.ID, b.UserID, b.FlightID, b.Airline, b.Price, b.Date, b.Time, b.Duration,
		b.TransactionID, b.Status, b.From, b.To, b.Passengers, b.CreatedAt)
	return err
}

func (r *PGRepository) ListByUser(ctx context.Context, userID string) ([]Booking, error) {
	rows, err := r.db.Query(ctx, `SELECT id, user_id, flight_id, airline, price,
		travel_date, travel_time, duration, transaction_id, status, from_airport,
		to_airport, passengers, created_at
		FROM bookings WHERE user_id=$1 ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bookings []Booking
	for rows.Next() {
		var b Booking
		if err := rows.Scan(&b.ID, &b.UserID, &b.FlightID, &b.Airline, &b.Price,
			&b.Date, &b.Time, &b.Duration, &b.TransactionID, &b.Status, &b.From,
			&b.To, &b.Passengers, &b.CreatedAt); err != nil {
			return nil, err
		}
		bookings = append(bookings, b)
	}
	return bookings, rows.Err()
}

var _ Repository = (*PGRepository)(nil)
