package flight

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skyfare/pkg/cache"
	"skyfare/pkg/logger"
)

type stubProvider struct {
	flights []Flight
	err     error
	calls   int
}

func (s *stubProvider) FetchFlights(_ context.Context, _ SearchParams) ([]Flight, error) {
	s.calls++
	return s.flights, s.err
}

func testService(provider Provider) *Service {
	log := logger.NewWithWriter("test", io.Discard)
	return NewService(provider, NewGenerator(), cache.NewMemoryCache(), 5, log)
}

func validParams() SearchParams {
	return SearchParams{
		From:       "JFK",
		To:         "LHR",
		DepartDate: "2026-09-01",
		Passengers: 1,
		TripType:   TripTypeOneWay,
	}
}

func TestSearchWithoutProviderGeneratesFlights(t *testing.T) {
	svc := testService(nil)

	flights, err := svc.Search(context.Background(), validParams())

	require.NoError(t, err)
	assert.Len(t, flights, 10)
}

func TestSearchFallsBackWhenProviderFails(t *testing.T) {
	provider := &stubProvider{err: errors.New("upstream timeout")}
	svc := testService(provider)

	flights, err := svc.Search(context.Background(), validParams())

	require.NoError(t, err)
	assert.Len(t, flights, 10)
	assert.Equal(t, 1, provider.calls)
}

func TestSearchFallsBackWhenProviderReturnsNothing(t *testing.T) {
	provider := &stubProvider{flights: []Flight{}}
	svc := testService(provider)

	flights, err := svc.Search(context.Background(), validParams())

	require.NoError(t, err)
	assert.Len(t, flights, 10)
}

func TestSearchUsesProviderResults(t *testing.T) {
	provider := &stubProvider{flights: []Flight{{ID: "ext-1", Price: 300}}}
	svc := testService(provider)

	flights, err := svc.Search(context.Background(), validParams())

	require.NoError(t, err)
	require.Len(t, flights, 1)
	assert.Equal(t, "ext-1", flights[0].ID)
}

func TestSearchValidationErrorSurfaces(t *testing.T) {
	svc := testService(nil)

	_, err := svc.Search(context.Background(), SearchParams{
		From:       "JFK",
		To:         "JFK",
		DepartDate: "2026-09-01",
		Passengers: 0,
		TripType:   TripTypeOneWay,
	})

	var appErr *AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 400, appErr.Status)
	assert.Equal(t, ErrorCodeValidation, appErr.Code)
}

func TestSearchServesSecondCallFromCache(t *testing.T) {
	provider := &stubProvider{flights: []Flight{{ID: "ext-1", Price: 300}}}
	svc := testService(provider)

	_, err := svc.Search(context.Background(), validParams())
	require.NoError(t, err)
	_, err = svc.Search(context.Background(), validParams())
	require.NoError(t, err)

	assert.Equal(t, 1, provider.calls)
}

func TestGetFlightByIDResolvesLastResultSet(t *testing.T) {
	svc := testService(nil)

	flights, err := svc.Search(context.Background(), validParams())
	require.NoError(t, err)
	require.NotEmpty(t, flights)

	got, err := svc.GetFlightByID(context.Background(), flights[3].ID)
	require.NoError(t, err)
	assert.Equal(t, flights[3].ID, got.ID)
	assert.Equal(t, flights[3].Price, got.Price)
}

func TestGetFlightByIDUnknownID(t *testing.T) {
	svc := testService(nil)

	_, err := svc.GetFlightByID(context.Background(), "no-such-flight")

	assert.ErrorIs(t, err, ErrFlightNotFound)
}

func TestFilterAppliesPipelineOverSearchResults(t *testing.T) {
	provider := &stubProvider{flights: []Flight{
		{ID: "a", Airline: Airline{Name: "Emirates"}, Price: 500, Stops: 0},
		{ID: "b", Airline: Airline{Name: "Lufthansa"}, Price: 200, Stops: 1},
		{ID: "c", Airline: Airline{Name: "Emirates"}, Price: 300, Stops: 2},
	}}
	svc := testService(provider)

	req := FilterRequest{
		SearchParams: validParams(),
		Filters:      Filters{Airlines: []string{"Emirates"}},
		SortBy:       SortByPrice,
	}
	flights, err := svc.Filter(context.Background(), req)

	require.NoError(t, err)
	require.Len(t, flights, 2)
	assert.Equal(t, "c", flights[0].ID)
	assert.Equal(t, "a", flights[1].ID)
}
