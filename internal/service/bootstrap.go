package service

import (
	"context"

	"estate-search/internal/config"
	"estate-search/internal/repository"

	"github.com/rs/zerolog"
)

// NewSearchServiceFromConfig loads the listing store and wires the extraction client.
// The only error it returns wraps repository.ErrDataLoad.
func NewSearchServiceFromConfig(ctx context.Context, cfg *config.Config, logger zerolog.Logger) (*SearchService, error) {
	store, err := repository.LoadListings(ctx, cfg.Listings)
	if err != nil {
		return nil, err
	}
	logger.Info().Str("source", cfg.Listings.Source).Int("listings", store.Len()).Msg("listings loaded")

	client := NewOpenAIClient(&cfg.LLM)
	if client.IsEnabled() {
		logger.Info().
			Str("api_base", cfg.LLM.APIBase).
			Str("model", cfg.LLM.ChatModel).
			Float64("rate_limit", cfg.LLM.RateLimit).
			Msg("completion client initialized")
	} else {
		logger.Warn().Msg("no API key set (GROQ_API_KEY or LLM_API_KEY): every query will fall back to showing all listings")
	}

	extractor := NewFilterExtractor(client, store.Sample(cfg.Listings.SampleSize), logger)
	return NewSearchService(store, extractor, logger), nil
}
