package service

import (
	"context"
	"time"

	"estate-search/internal/model"
	"estate-search/internal/observability"
	"estate-search/internal/repository"

	"github.com/rs/zerolog"
)

// SearchService handles the query → filter → match pipeline
type SearchService struct {
	store     *repository.ListingStore
	extractor *FilterExtractor
	logger    zerolog.Logger
}

// NewSearchService creates a new search service
func NewSearchService(store *repository.ListingStore, extractor *FilterExtractor, logger zerolog.Logger) *SearchService {
	return &SearchService{
		store:     store,
		extractor: extractor,
		logger:    logger,
	}
}

// Search extracts a filter from query and returns the matching listings.
// It does not fail: an extraction failure searches with the empty filter and sets Warning.
func (s *SearchService) Search(ctx context.Context, query string) *model.SearchResponse {
	startTime := time.Now()

	extraction := s.extractor.Extract(ctx, query)
	filter := extraction.Effective()

	listings := MatchListings(s.store.Listings(), filter)

	reasons := MatchedReasons(filter)
	results := make([]model.ListingHit, len(listings))
	for i, listing := range listings {
		results[i] = model.ListingHit{Listing: listing, MatchedReasons: reasons}
	}

	took := time.Since(startTime).Milliseconds()
	observability.ObserveSearch(len(results))

	s.logger.Info().
		Str("query", query).
		Bool("extracted", extraction.OK()).
		Int("hits", len(results)).
		Int64("took_ms", took).
		Msg("search")

	return &model.SearchResponse{
		Query:   query,
		Filters: filter,
		Warning: extraction.Warning(),
		Results: results,
		Total:   len(results),
		Took:    took,
	}
}

// Listings returns the whole collection in load order
func (s *SearchService) Listings() []model.Listing {
	return s.store.Listings()
}
