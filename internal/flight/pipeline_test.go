package flight

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pipelineFixture() []Flight {
	base := time.Date(2026, 9, 1, 6, 0, 0, 0, time.UTC)
	return []Flight{
		{
			ID:        "f1",
			Airline:   Airline{Name: "Emirates"},
			Departure: Schedule{Airport: "JFK", Scheduled: base.Add(4 * time.Hour)},
			Arrival:   Schedule{Airport: "LHR", Scheduled: base.Add(7 * time.Hour)},
			Price:     450,
			Duration:  "3h 0m",
			Stops:     0,
		},
		{
			ID:        "f2",
			Airline:   Airline{Name: "Lufthansa"},
			Departure: Schedule{Airport: "JFK", Scheduled: base},
			Arrival:   Schedule{Airport: "LHR", Scheduled: base.Add(2 * time.Hour)},
			Price:     250,
			Duration:  "2h 0m",
			Stops:     1,
		},
		{
			ID:        "f3",
			Airline:   Airline{Name: "Qatar Airways"},
			Departure: Schedule{Airport: "JFK", Scheduled: base.Add(2 * time.Hour)},
			Arrival:   Schedule{Airport: "LHR", Scheduled: base.Add(6 * time.Hour)},
			Price:     800,
			Duration:  "4h 0m",
			Stops:     2,
		},
		{
			ID:        "f4",
			Airline:   Airline{Name: "Emirates"},
			Departure: Schedule{Airport: "JFK", Scheduled: base.Add(8 * time.Hour)},
			Arrival:   Schedule{Airport: "LHR", Scheduled: base.Add(9 * time.Hour)},
			Price:     250,
			Duration:  "1h 0m",
			Stops:     0,
		},
	}
}

func ids(flights []Flight) []string {
	out := make([]string, 0, len(flights))
	for _, f := range flights {
		out = append(out, f.ID)
	}
	return out
}

func TestApplyPipelineNoFiltersPreservesOrder(t *testing.T) {
	in := pipelineFixture()

	out := ApplyPipeline(in, Filters{}, "")

	assert.Equal(t, ids(in), ids(out))
}

func TestApplyPipelinePriceRangeInclusive(t *testing.T) {
	out := ApplyPipeline(pipelineFixture(), Filters{
		PriceRange: &PriceRange{Min: 250, Max: 450},
	}, "")

	assert.Equal(t, []string{"f1", "f2", "f4"}, ids(out))
}

func TestApplyPipelineAirlinesEmptyIsNoOp(t *testing.T) {
	out := ApplyPipeline(pipelineFixture(), Filters{Airlines: []string{}}, "")
	assert.Len(t, out, 4)
}

func TestApplyPipelineAirlineMembership(t *testing.T) {
	out := ApplyPipeline(pipelineFixture(), Filters{
		Airlines: []string{"emirates"},
	}, "")

	assert.Equal(t, []string{"f1", "f4"}, ids(out))
}

func TestApplyPipelineStopsMembership(t *testing.T) {
	out := ApplyPipeline(pipelineFixture(), Filters{
		Stops: []int{0, 1},
	}, "")

	assert.Equal(t, []string{"f1", "f2", "f4"}, ids(out))
}

func TestApplyPipelineConjunctive(t *testing.T) {
	out := ApplyPipeline(pipelineFixture(), Filters{
		PriceRange: &PriceRange{Min: 0, Max: 500},
		Airlines:   []string{"Emirates"},
		Stops:      []int{0},
	}, "")

	assert.Equal(t, []string{"f1", "f4"}, ids(out))
}

func TestApplyPipelineSortByPriceStable(t *testing.T) {
	out := ApplyPipeline(pipelineFixture(), Filters{}, SortByPrice)

	// f2 and f4 tie on price; input order decides.
	assert.Equal(t, []string{"f2", "f4", "f1", "f3"}, ids(out))
}

func TestApplyPipelineSortByDurationLexicographic(t *testing.T) {
	in := []Flight{
		{ID: "long", Duration: "2h 0m"},
		{ID: "short", Duration: "10h 0m"},
	}

	out := ApplyPipeline(in, Filters{}, SortByDuration)

	// String comparison, not elapsed time: "10h 0m" < "2h 0m".
	assert.Equal(t, []string{"short", "long"}, ids(out))
}

func TestApplyPipelineSortByDeparture(t *testing.T) {
	out := ApplyPipeline(pipelineFixture(), Filters{}, SortByDeparture)
	assert.Equal(t, []string{"f2", "f3", "f1", "f4"}, ids(out))
}

func TestApplyPipelineSortByArrival(t *testing.T) {
	out := ApplyPipeline(pipelineFixture(), Filters{}, SortByArrival)
	assert.Equal(t, []string{"f2", "f3", "f1", "f4"}, ids(out))
}

func TestApplyPipelineUnknownSortKeyPreservesOrder(t *testing.T) {
	in := pipelineFixture()
	out := ApplyPipeline(in, Filters{}, "rating")
	assert.Equal(t, ids(in), ids(out))
}

func TestApplyPipelineDoesNotMutateInput(t *testing.T) {
	in := pipelineFixture()
	want := ids(in)

	_ = ApplyPipeline(in, Filters{Stops: []int{0}}, SortByPrice)

	assert.Equal(t, want, ids(in))
}

func TestApplyPipelineIdempotent(t *testing.T) {
	filters := Filters{PriceRange: &PriceRange{Min: 0, Max: 2000}}

	once := ApplyPipeline(pipelineFixture(), filters, SortByPrice)
	twice := ApplyPipeline(once, filters, SortByPrice)

	require.Equal(t, ids(once), ids(twice))
}
