package main

import (
	"encoding/json"
	"fmt"
	"log"
	"math/rand"
	"net/http"
	"os"
	"strconv"
	"time"

	"skyfare/internal/flight"
)

// Standalone mock of the aviationstack flights endpoint. Point the main
// service at it with PROVIDER_BASE_URL=http://localhost:8081 and any
// non-empty PROVIDER_ACCESS_KEY.

type mockResponse struct {
	Data []mockFlight `json:"data"`
}

type mockFlight struct {
	FlightStatus string       `json:"flight_status"`
	Departure    mockSchedule `json:"departure"`
	Arrival      mockSchedule `json:"arrival"`
	Airline      mockAirline  `json:"airline"`
	Flight       mockNumber   `json:"flight"`
}

type mockSchedule struct {
	Airport   string `json:"airport"`
	Terminal  string `json:"terminal"`
	Gate      string `json:"gate"`
	Scheduled string `json:"scheduled"`
	Timezone  string `json:"timezone"`
}

type mockAirline struct {
	Name string `json:"name"`
}

type mockNumber struct {
	Number string `json:"number"`
	IATA   string `json:"iata"`
}

func flightsHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	query := r.URL.Query()
	if query.Get("access_key") == "" {
		http.Error(w, "Missing access_key", http.StatusUnauthorized)
		return
	}

	from := query.Get("dep_iata")
	to := query.Get("arr_iata")
	if from == "" || to == "" {
		http.Error(w, "dep_iata and arr_iata are required", http.StatusBadRequest)
		return
	}

	date := query.Get("flight_date")
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}

	limit := 10
	if raw := query.Get("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			limit = n
		}
	}

	gen := flight.NewGenerator()
	flights := gen.Generate(flight.SearchParams{
		From:       from,
		To:         to,
		DepartDate: date,
		Passengers: 1,
		TripType:   flight.TripTypeOneWay,
	})
	if len(flights) > limit {
		flights = flights[:limit]
	}

	data := make([]mockFlight, 0, len(flights))
	for _, f := range flights {
		data = append(data, mockFlight{
			FlightStatus: "scheduled",
			Departure: mockSchedule{
				Airport:   f.Departure.Airport,
				Terminal:  fmt.Sprintf("T%d", 1+rand.Intn(3)),
				Gate:      fmt.Sprintf("%c%d", 'A'+rand.Intn(4), 1+rand.Intn(30)),
				Scheduled: f.Departure.Scheduled.Format(time.RFC3339),
				Timezone:  "UTC",
			},
			Arrival: mockSchedule{
				Airport:   f.Arrival.Airport,
				Terminal:  fmt.Sprintf("T%d", 1+rand.Intn(3)),
				Gate:      fmt.Sprintf("%c%d", 'A'+rand.Intn(4), 1+rand.Intn(30)),
				Scheduled: f.Arrival.Scheduled.Format(time.RFC3339),
				Timezone:  "UTC",
			},
			Airline: mockAirline{Name: f.Airline.Name},
			Flight: mockNumber{
				Number: f.Designator.Number,
				IATA:   f.Designator.IATA,
			},
		})
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(mockResponse{Data: data})
}

func main() {
	// Default port
	port := "8081"

	// Check if port is provided as command line argument
	if len(os.Args) > 1 {
		port = os.Args[1]
	}

	http.HandleFunc("/flights", flightsHandler)

	addr := fmt.Sprintf(":%s", port)
	fmt.Printf("Flight provider mock running on port %s...\n", port)
	if err := http.ListenAndServe(addr, nil); err != nil {
		log.Fatal(err)
	}
}
