package flight

import (
	"fmt"
	"math/rand"
	"net/url"
	"sort"
	"strings"
	"sync"
	"time"
)

// Bounds for synthetic fares and routings. Providers do not expose commercial
// prices, so the same policy covers both generated flights and mapped
// provider records.
const (
	minPrice = 100
	maxPrice = 1000
	maxStops = 2

	generatedCount = 10

	// Departures land on a 15-minute grid between 06:00 and 21:00.
	departureWindowStartHour = 6
	departureWindowEndHour   = 21
	slotMinutes              = 15

	minDurationMinutes = 90
	maxDurationMinutes = 270
)

type poolAirline struct {
	name string
	iata string
}

var airlinePool = []poolAirline{
	{"Emirates", "EK"},
	{"Qatar Airways", "QR"},
	{"Singapore Airlines", "SQ"},
	{"Lufthansa", "LH"},
	{"British Airways", "BA"},
}

// Generator synthesizes flight result sets when no live provider is
// available. Pure synthesis, it never fails.
type Generator struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func NewGenerator() *Generator {
	return NewGeneratorWithSource(rand.NewSource(time.Now().UnixNano()))
}

// NewGeneratorWithSource exists so tests can pin the random sequence.
func NewGeneratorWithSource(src rand.Source) *Generator {
	return &Generator{rng: rand.New(src)}
}

// Generate returns a fixed-size set of flights for the given search, sorted
// ascending by price. The departure day anchors to params.DepartDate; an
// unparseable date falls back to today.
func (g *Generator) Generate(params SearchParams) []Flight {
	g.mu.Lock()
	defer g.mu.Unlock()

	day, err := ParseDate(params.DepartDate)
	if err != nil {
		day = time.Now().UTC()
	}
	midnight := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)

	flights := make([]Flight, 0, generatedCount)
	now := time.Now().UnixMilli()

	for i := 0; i < generatedCount; i++ {
		airline := airlinePool[g.rng.Intn(len(airlinePool))]
		number := fmt.Sprintf("%d", 100+g.rng.Intn(900))

		slots := (departureWindowEndHour-departureWindowStartHour)*60/slotMinutes + 1
		offset := time.Duration(departureWindowStartHour)*time.Hour +
			time.Duration(g.rng.Intn(slots)*slotMinutes)*time.Minute
		departure := midnight.Add(offset)

		durationSteps := (maxDurationMinutes-minDurationMinutes)/slotMinutes + 1
		durationMin := minDurationMinutes + g.rng.Intn(durationSteps)*slotMinutes
		arrival := departure.Add(time.Duration(durationMin) * time.Minute)

		flights = append(flights, Flight{
			ID: fmt.Sprintf("flight-%d-%d", i, now),
			Airline: Airline{
				Name: airline.name,
				Logo: airlineLogoURL(airline.name),
			},
			Designator: Designator{
				Number: number,
				IATA:   airline.iata + number,
			},
			Departure: Schedule{
				Airport:   params.From,
				Scheduled: departure,
				Timezone:  "UTC",
			},
			Arrival: Schedule{
				Airport:   params.To,
				Scheduled: arrival,
				Timezone:  "UTC",
			},
			Price:    RandomPrice(g.rng),
			Duration: FormatDuration(durationMin),
			Stops:    RandomStops(g.rng),
		})
	}

	sort.SliceStable(flights, func(i, j int) bool {
		return flights[i].Price < flights[j].Price
	})
	return flights
}

// RandomPrice returns a synthetic whole-dollar fare in [minPrice, maxPrice).
func RandomPrice(rng *rand.Rand) float64 {
	return float64(minPrice + rng.Intn(maxPrice-minPrice))
}

// RandomStops returns a stop count in {0, 1, 2}.
func RandomStops(rng *rand.Rand) int {
	return rng.Intn(maxStops + 1)
}

// FormatDuration renders a minute count as "2h 15m".
func FormatDuration(minutes int) string {
	return fmt.Sprintf("%dh %dm", minutes/60, minutes%60)
}

// DurationMinutes parses a "2h 15m" style string back into minutes.
func DurationMinutes(formatted string) (int, error) {
	d, err := time.ParseDuration(strings.ReplaceAll(formatted, " ", ""))
	if err != nil {
		return 0, fmt.Errorf("invalid duration %q: %w", formatted, err)
	}
	return int(d.Minutes()), nil
}

func airlineLogoURL(name string) string {
	return "https://dummyimage.com/200x80/f1f1f1/000000.png&text=" + url.QueryEscape(name)
}
