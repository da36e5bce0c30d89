package booking

import (
	"context"
	"fmt"
	"math/rand"
	"sort"
	"sync"
	"time"
)

var demoAirlines = []string{
	"Emirates",
	"Qatar Airways",
	"Singapore Airlines",
	"Lufthansa",
	"British Airways",
}

var demoRoutes = [][2]string{
	{"New York", "London"},
	{"Paris", "Tokyo"},
	{"Dubai", "Sydney"},
	{"Singapore", "Los Angeles"},
	{"Berlin", "Mumbai"},
}

const demoBookingCount = 5

// MemoryRepository is the mock persistence collaborator used when no
// database is configured. Created bookings are kept in memory; a user with
// none yet gets a synthesized demo history.
type MemoryRepository struct {
	mu       sync.RWMutex
	byUser   map[string][]Booking
	rng      *rand.Rand
	demoMode bool
}

func NewMemoryRepository(demoMode bool) *MemoryRepository {
	return &MemoryRepository{
		byUser:   make(map[string][]Booking),
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
		demoMode: demoMode,
	}
}

func (r *MemoryRepository) Create(_ context.Context, b *Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.byUser[b.UserID] = append(r.byUser[b.UserID], *b)
	return nil
}

func (r *MemoryRepository) ListByUser(_ context.Context, userID string) ([]Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := r.byUser[userID]
	if len(stored) == 0 && r.demoMode {
		stored = r.synthesize(userID)
		r.byUser[userID] = stored
	}

	out := make([]Booking, len(stored))
	copy(out, stored)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

// synthesize builds a small random past-booking history: bounded count,
// dates within the past 60 days, times on a 15-minute grid.
func (r *MemoryRepository) synthesize(userID string) []Booking {
	bookings := make([]Booking, 0, demoBookingCount)

	for i := 0; i < demoBookingCount; i++ {
		route := demoRoutes[r.rng.Intn(len(demoRoutes))]

		created := time.Now().AddDate(0, 0, -r.rng.Intn(60))
		departure := time.Date(created.Year(), created.Month(), created.Day(),
			r.rng.Intn(24), r.rng.Intn(4)*15, 0, 0, time.UTC)

		bookings = append(bookings, Booking{
			ID:            fmt.Sprintf("BOOKING-%d", i+1000),
			UserID:        userID,
			FlightID:      fmt.Sprintf("FLIGHT-%d", i+1000),
			Airline:       demoAirlines[r.rng.Intn(len(demoAirlines))],
			Price:         float64(100 + r.rng.Intn(900)),
			Date:          departure.Format("2006-01-02"),
			Time:          departure.Format("15:04"),
			Duration:      fmt.Sprintf("%dh %dm", 1+r.rng.Intn(5), r.rng.Intn(4)*15),
			TransactionID: fmt.Sprintf("TXN-%d", r.rng.Intn(1000000)),
			Status:        StatusConfirmed,
			From:          route[0],
			To:            route[1],
			Passengers:    1 + r.rng.Intn(3),
			CreatedAt:     created,
		})
	}
	return bookings
}

var _ Repository = (*MemoryRepository)(nil)
