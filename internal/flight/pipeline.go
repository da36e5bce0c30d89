package flight

import (
	"sort"
	"strings"
)

const (
	SortByPrice     = "price"
	SortByDuration  = "duration"
	SortByDeparture = "departure"
	SortByArrival   = "arrival"
)

type PriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Filters narrows a result set. An empty Airlines or Stops slice leaves that
// dimension unfiltered; a nil PriceRange leaves price unfiltered.
type Filters struct {
	PriceRange *PriceRange `json:"price_range,omitempty"`
	Airlines   []string    `json:"airlines,omitempty"`
	Stops      []int       `json:"stops,omitempty"`
}

// ApplyPipeline filters conjunctively and then sorts. The input slice is
// never mutated; ties keep their relative order and an unknown sort key
// preserves input order.
func ApplyPipeline(flights []Flight, filters Filters, sortBy string) []Flight {
	result := make([]Flight, 0, len(flights))

	for _, f := range flights {
		if !matches(f, filters) {
			continue
		}
		result = append(result, f)
	}

	switch sortBy {
	case SortByPrice:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].Price < result[j].Price
		})
	case SortByDuration:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].Duration < result[j].Duration
		})
	case SortByDeparture:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].Departure.Scheduled.Before(result[j].Departure.Scheduled)
		})
	case SortByArrival:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].Arrival.Scheduled.Before(result[j].Arrival.Scheduled)
		})
	}

	return result
}

func matches(f Flight, filters Filters) bool {
	if filters.PriceRange != nil {
		if f.Price < filters.PriceRange.Min || f.Price > filters.PriceRange.Max {
			return false
		}
	}

	if len(filters.Airlines) > 0 {
		matched := false
		for _, airline := range filters.Airlines {
			if strings.EqualFold(f.Airline.Name, airline) {
				matched = true
				break
			}
		}
		if !matched {
			return false
		}
	}

	if len(filters.Stops) > 0 {
		matched := false
		for _, stops := range filters.Stops {
			if f.Stops == stops {
				matched = true
				break
			}
		}
		if !matched {
			return false
		}
	}

	return true
}
