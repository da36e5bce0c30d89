package flight

import (
	"errors"
	"strings"
	"time"
)

type TripType string

const (
	TripTypeOneWay    TripType = "oneWay"
	TripTypeRoundTrip TripType = "roundTrip"
)

type Airline struct {
	Name string `json:"name"`
	Logo string `json:"logo,omitempty"`
}

// Designator is the airline flight designator (number plus IATA form).
type Designator struct {
	Number string `json:"number"`
	IATA   string `json:"iata"`
}

// Schedule is one end of a flight: where and when.
type Schedule struct {
	Airport   string    `json:"airport"`
	Terminal  string    `json:"terminal,omitempty"`
	Gate      string    `json:"gate,omitempty"`
	Scheduled time.Time `json:"scheduled"`
	Timezone  string    `json:"timezone"`
}

type Flight struct {
	ID         string     `json:"id"`
	Airline    Airline    `json:"airline"`
	Designator Designator `json:"flight"`
	Departure  Schedule   `json:"departure"`
	Arrival    Schedule   `json:"arrival"`
	Price      float64    `json:"price"`
	Duration   string     `json:"duration"`
	Stops      int        `json:"stops"`
}

type SearchParams struct {
	From       string   `json:"from"`
	To         string   `json:"to"`
	DepartDate string   `json:"departDate"`
	ReturnDate string   `json:"returnDate,omitempty"`
	Passengers int      `json:"passengers"`
	TripType   TripType `json:"tripType"`
}

// Validate rejects malformed search input before any external call is made.
func (p SearchParams) Validate() error {
	var errs []error

	if strings.TrimSpace(p.From) == "" {
		errs = append(errs, errors.New("from is required"))
	}
	if strings.TrimSpace(p.To) == "" {
		errs = append(errs, errors.New("to is required"))
	}
	if strings.EqualFold(strings.TrimSpace(p.From), strings.TrimSpace(p.To)) && p.From != "" {
		errs = append(errs, errors.New("from and to must differ"))
	}
	if p.DepartDate == "" {
		errs = append(errs, errors.New("departDate is required"))
	} else if _, err := ParseDate(p.DepartDate); err != nil {
		errs = append(errs, errors.New("departDate is not a valid date"))
	}
	if p.Passengers < 1 {
		errs = append(errs, errors.New("passengers must be at least 1"))
	}

	switch p.TripType {
	case TripTypeOneWay:
		if p.ReturnDate != "" {
			errs = append(errs, errors.New("returnDate is not allowed for a one-way trip"))
		}
	case TripTypeRoundTrip:
		if p.ReturnDate == "" {
			errs = append(errs, errors.New("returnDate is required for a round trip"))
		}
	default:
		errs = append(errs, errors.New("tripType must be oneWay or roundTrip"))
	}

	return errors.Join(errs...)
}

// ParseDate accepts either a full RFC 3339 timestamp or a bare YYYY-MM-DD day.
func ParseDate(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", value)
}
