package flight

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateReturnsFixedCount(t *testing.T) {
	gen := NewGeneratorWithSource(rand.NewSource(1))

	flights := gen.Generate(SearchParams{
		From:       "JFK",
		To:         "LHR",
		DepartDate: "2026-09-01",
		Passengers: 1,
		TripType:   TripTypeOneWay,
	})

	assert.Len(t, flights, 10)
}

func TestGenerateBounds(t *testing.T) {
	gen := NewGeneratorWithSource(rand.NewSource(42))

	flights := gen.Generate(SearchParams{
		From:       "JFK",
		To:         "LHR",
		DepartDate: "2026-09-01",
		Passengers: 2,
		TripType:   TripTypeOneWay,
	})

	for _, f := range flights {
		assert.GreaterOrEqual(t, f.Price, 100.0)
		assert.Less(t, f.Price, 1000.0)
		assert.Contains(t, []int{0, 1, 2}, f.Stops)
		assert.Equal(t, "JFK", f.Departure.Airport)
		assert.Equal(t, "LHR", f.Arrival.Airport)

		hour := f.Departure.Scheduled.Hour()
		assert.GreaterOrEqual(t, hour, 6)
		assert.LessOrEqual(t, hour, 21)
		assert.Zero(t, f.Departure.Scheduled.Minute()%15)
	}
}

func TestGenerateSortedByPrice(t *testing.T) {
	gen := NewGeneratorWithSource(rand.NewSource(7))

	flights := gen.Generate(SearchParams{
		From:       "SIN",
		To:         "LAX",
		DepartDate: "2026-09-01",
		Passengers: 1,
		TripType:   TripTypeOneWay,
	})

	for i := 1; i < len(flights); i++ {
		assert.LessOrEqual(t, flights[i-1].Price, flights[i].Price)
	}
}

func TestGenerateDurationMatchesSchedule(t *testing.T) {
	gen := NewGeneratorWithSource(rand.NewSource(99))

	flights := gen.Generate(SearchParams{
		From:       "DXB",
		To:         "SYD",
		DepartDate: "2026-09-01",
		Passengers: 1,
		TripType:   TripTypeOneWay,
	})

	for _, f := range flights {
		minutes, err := DurationMinutes(f.Duration)
		require.NoError(t, err)

		elapsed := int(f.Arrival.Scheduled.Sub(f.Departure.Scheduled).Minutes())
		assert.Equal(t, elapsed, minutes)
		assert.GreaterOrEqual(t, minutes, 90)
		assert.LessOrEqual(t, minutes, 270)
		assert.Zero(t, minutes%15)
	}
}

func TestGenerateAnchorsToDepartDate(t *testing.T) {
	gen := NewGeneratorWithSource(rand.NewSource(3))

	flights := gen.Generate(SearchParams{
		From:       "CDG",
		To:         "NRT",
		DepartDate: "2026-12-24",
		Passengers: 1,
		TripType:   TripTypeOneWay,
	})

	want := time.Date(2026, 12, 24, 0, 0, 0, 0, time.UTC)
	for _, f := range flights {
		dep := f.Departure.Scheduled
		assert.Equal(t, want.Year(), dep.Year())
		assert.Equal(t, want.Month(), dep.Month())
		assert.Equal(t, want.Day(), dep.Day())
	}
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "2h 15m", FormatDuration(135))
	assert.Equal(t, "1h 30m", FormatDuration(90))
	assert.Equal(t, "4h 30m", FormatDuration(270))
}

func TestDurationMinutesRoundTrip(t *testing.T) {
	minutes, err := DurationMinutes("3h 45m")
	require.NoError(t, err)
	assert.Equal(t, 225, minutes)

	_, err = DurationMinutes("not a duration")
	assert.Error(t, err)
}
