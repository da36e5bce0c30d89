package flight

import (
	"context"
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"time"

	"skyfare/pkg/cache"
	"skyfare/pkg/logger"
)

// Provider is a live flight-data source. A nil Provider means no credential
// was configured and every search is served by the generator.
type Provider interface {
	FetchFlights(ctx context.Context, params SearchParams) ([]Flight, error)
}

type Service struct {
	provider Provider
	gen      *Generator
	cache    cache.Cache
	ttl      time.Duration
	logger   logger.Client
}

func NewService(provider Provider, gen *Generator, c cache.Cache, ttlMinutes int, log logger.Client) *Service {
	return &Service{
		provider: provider,
		gen:      gen,
		cache:    c,
		ttl:      time.Duration(ttlMinutes) * time.Minute,
		logger:   log,
	}
}

type FilterRequest struct {
	SearchParams
	Filters Filters `json:"filters"`
	SortBy  string  `json:"sort_by"`
}

// Search returns a result set for the given parameters. Provider failures
// never reach the caller: the search path degrades to generated flights so
// the user always gets a result set. Only validation errors surface.
func (s *Service) Search(ctx context.Context, params SearchParams) ([]Flight, error) {
	if err := params.Validate(); err != nil {
		return nil, NewValidationError(err)
	}

	cacheKey := searchCacheKey(params)
	cached, err := s.cache.Get(ctx, cacheKey)
	if err == nil && cached != "" {
		var flights []Flight
		if err := json.Unmarshal([]byte(cached), &flights); err == nil {
			return flights, nil
		}
		s.logger.Error("failed to unmarshal cached search", logger.Field{Key: "err", Value: err})
	}

	flights := s.fetch(ctx, params)
	s.store(ctx, cacheKey, flights)
	return flights, nil
}

// Filter runs a search (cache-aside, refreshing on miss) and applies the
// filter/sort pipeline over the result set.
func (s *Service) Filter(ctx context.Context, req FilterRequest) ([]Flight, error) {
	flights, err := s.Search(ctx, req.SearchParams)
	if err != nil {
		return nil, err
	}
	return ApplyPipeline(flights, req.Filters, req.SortBy), nil
}

// GetFlightByID resolves an id against the last generated or fetched set.
// There is no durable flight index; entries age out with the search cache.
func (s *Service) GetFlightByID(ctx context.Context, id string) (*Flight, error) {
	cached, err := s.cache.Get(ctx, flightCacheKey(id))
	if err != nil || cached == "" {
		return nil, ErrFlightNotFound
	}

	var f Flight
	if err := json.Unmarshal([]byte(cached), &f); err != nil {
		s.logger.Error("failed to unmarshal cached flight", logger.Field{Key: "err", Value: err})
		return nil, ErrFlightNotFound
	}
	return &f, nil
}

func (s *Service) fetch(ctx context.Context, params SearchParams) []Flight {
	if s.provider == nil {
		s.logger.Debug("no provider configured, generating flights",
			logger.Field{Key: "route", Value: params.From + "->" + params.To})
		return s.gen.Generate(params)
	}

	flights, err := s.provider.FetchFlights(ctx, params)
	if err != nil {
		s.logger.Warn("provider search failed, falling back to generated flights",
			logger.Field{Key: "err", Value: err},
			logger.Field{Key: "route", Value: params.From + "->" + params.To},
		)
		return s.gen.Generate(params)
	}
	if len(flights) == 0 {
		s.logger.Info("provider returned no flights, falling back to generated flights",
			logger.Field{Key: "route", Value: params.From + "->" + params.To})
		return s.gen.Generate(params)
	}
	return flights
}

func (s *Service) store(ctx context.Context, cacheKey string, flights []Flight) {
	data, err := json.Marshal(flights)
	if err != nil {
		s.logger.Error("failed to marshal search results", logger.Field{Key: "err", Value: err})
		return
	}
	if err := s.cache.Set(ctx, cacheKey, string(data), s.ttl); err != nil {
		s.logger.Error("failed to cache search results",
			logger.Field{Key: "err", Value: err},
			logger.Field{Key: "cache_key", Value: cacheKey},
		)
	}

	// Index each flight by id so details lookups can resolve against the
	// last result set.
	for _, f := range flights {
		entry, err := json.Marshal(f)
		if err != nil {
			continue
		}
		if err := s.cache.Set(ctx, flightCacheKey(f.ID), string(entry), s.ttl); err != nil {
			s.logger.Error("failed to index flight",
				logger.Field{Key: "err", Value: err},
				logger.Field{Key: "flight_id", Value: f.ID},
			)
		}
	}
}

// searchCacheKey creates a deterministic key from search parameters
func searchCacheKey(params SearchParams) string {
	key := fmt.Sprintf("flight:%s:%s:%s:%s:%d:%s",
		params.From,
		params.To,
		params.DepartDate,
		params.ReturnDate,
		params.Passengers,
		params.TripType,
	)

	hash := sha256.Sum256([]byte(key))
	return fmt.Sprintf("flight:search:%x", hash[:16])
}

func flightCacheKey(id string) string {
	return "flight:id:" + id
}
