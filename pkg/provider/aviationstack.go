package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"net/http"
	"net/url"
	"sync"
	"time"

	"skyfare/internal/flight"
	"skyfare/pkg/logger"
)

// Client talks to an aviationstack-compatible flight data API.
type Client struct {
	httpClient *http.Client
	baseURL    string
	accessKey  string
	limit      int
	logger     logger.Client

	mu  sync.Mutex
	rng *rand.Rand
}

func NewClient(httpClient *http.Client, baseURL, accessKey string, limit int, log logger.Client) *Client {
	return &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
		accessKey:  accessKey,
		limit:      limit,
		logger:     log,
		rng:        rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

type apiResponse struct {
	Data []apiFlight `json:"data"`
}

type apiFlight struct {
	FlightStatus string      `json:"flight_status"`
	Departure    apiSchedule `json:"departure"`
	Arrival      apiSchedule `json:"arrival"`
	Airline      apiAirline  `json:"airline"`
	Flight       apiNumber   `json:"flight"`
}

type apiSchedule struct {
	Airport   string `json:"airport"`
	Terminal  string `json:"terminal"`
	Gate      string `json:"gate"`
	Scheduled string `json:"scheduled"`
	Timezone  string `json:"timezone"`
}

type apiAirline struct {
	Name string `json:"name"`
}

type apiNumber struct {
	Number string `json:"number"`
	IATA   string `json:"iata"`
}

// FetchFlights performs a single provider request for the given search. The
// date is truncated to day granularity as the API expects.
func (c *Client) FetchFlights(ctx context.Context, params flight.SearchParams) ([]flight.Flight, error) {
	day, err := flight.ParseDate(params.DepartDate)
	if err != nil {
		return nil, fmt.Errorf("invalid departure date: %w", err)
	}

	query := url.Values{}
	query.Set("access_key", c.accessKey)
	query.Set("dep_iata", params.From)
	query.Set("arr_iata", params.To)
	query.Set("flight_date", day.Format("2006-01-02"))
	query.Set("limit", fmt.Sprintf("%d", c.limit))

	reqURL := fmt.Sprintf("%s/flights?%s", c.baseURL, query.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("external api call failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("external api returned non-200 status: %d", resp.StatusCode)
	}

	var apiResp apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, fmt.Errorf("failed to decode provider response: %w", err)
	}
	if apiResp.Data == nil {
		return nil, fmt.Errorf("unexpected provider response shape: missing data array")
	}

	return c.mapFlights(apiResp.Data), nil
}

// mapFlights converts provider records to the internal shape. Records missing
// mandatory fields are dropped; the provider carries no commercial price, so
// price and stops follow the same synthesis policy as generated flights.
func (c *Client) mapFlights(records []apiFlight) []flight.Flight {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now()
	mapped := make([]flight.Flight, 0, len(records))

	for i, record := range records {
		if record.FlightStatus == "" || record.Departure.Scheduled == "" ||
			record.Arrival.Scheduled == "" || record.Airline.Name == "" {
			continue
		}

		departure := parseScheduled(record.Departure.Scheduled, now)
		arrival := parseScheduled(record.Arrival.Scheduled, now)

		durationMin := int(arrival.Sub(departure).Minutes())
		if durationMin < 0 {
			durationMin = 0
		}

		number := record.Flight.Number
		if number == "" {
			number = "Unknown"
		}
		iata := record.Flight.IATA
		if iata == "" {
			iata = "Unknown"
		}

		mapped = append(mapped, flight.Flight{
			ID: fmt.Sprintf("flight-%d-%d", i, now.UnixMilli()),
			Airline: flight.Airline{
				Name: record.Airline.Name,
			},
			Designator: flight.Designator{
				Number: number,
				IATA:   iata,
			},
			Departure: flight.Schedule{
				Airport:   record.Departure.Airport,
				Terminal:  record.Departure.Terminal,
				Gate:      record.Departure.Gate,
				Scheduled: departure,
				Timezone:  record.Departure.Timezone,
			},
			Arrival: flight.Schedule{
				Airport:   record.Arrival.Airport,
				Terminal:  record.Arrival.Terminal,
				Gate:      record.Arrival.Gate,
				Scheduled: arrival,
				Timezone:  record.Arrival.Timezone,
			},
			Price:    flight.RandomPrice(c.rng),
			Duration: flight.FormatDuration(durationMin),
			Stops:    flight.RandomStops(c.rng),
		})
	}
	return mapped
}

func parseScheduled(value string, fallback time.Time) time.Time {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t
	}
	if t, err := time.Parse("2006-01-02T15:04:05", value); err == nil {
		return t
	}
	return fallback
}

var _ flight.Provider = (*Client)(nil)
