package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"slices"

	"estate-search/internal/config"
	"estate-search/internal/model"
)

// ErrDataLoad wraps every failure to build the listing collection at startup.
// Callers treat it as fatal: there is nothing to search without listings.
var ErrDataLoad = errors.New("listing data load failed")

// ListingStore holds the listing collection in memory.
// It is never mutated after construction, so it is safe to share between requests.
type ListingStore struct {
	listings []model.Listing
}

// NewListingStore creates a store over a copy of the given listings
func NewListingStore(listings []model.Listing) *ListingStore {
	return &ListingStore{listings: slices.Clone(listings)}
}

// LoadListingsFile reads a JSON array of listings from path
func LoadListingsFile(path string) (*ListingStore, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %v", ErrDataLoad, path, err)
	}
	return DecodeListings(data)
}

// DecodeListings parses a JSON array of listing objects.
// Unknown keys are ignored and absent or null keys stay nil.
func DecodeListings(data []byte) (*ListingStore, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, fmt.Errorf("%w: expected a JSON array of listings", ErrDataLoad)
	}

	var listings []model.Listing
	if err := json.Unmarshal(trimmed, &listings); err != nil {
		return nil, fmt.Errorf("%w: decode listings: %v", ErrDataLoad, err)
	}
	return &ListingStore{listings: listings}, nil
}

// Listings returns a copy of the whole collection in load order
func (s *ListingStore) Listings() []model.Listing {
	return slices.Clone(s.listings)
}

// Sample returns up to n listings from the head of the collection
func (s *ListingStore) Sample(n int) []model.Listing {
	if n <= 0 {
		return []model.Listing{}
	}
	if n > len(s.listings) {
		n = len(s.listings)
	}
	return slices.Clone(s.listings[:n])
}

// Len returns the number of listings
func (s *ListingStore) Len() int {
	return len(s.listings)
}

// LoadListings builds the store from the configured source
func LoadListings(ctx context.Context, cfg config.ListingsConfig) (*ListingStore, error) {
	switch cfg.Source {
	case config.SourcePostgres:
		return LoadListingsPostgres(ctx, cfg.DSN, cfg.Table)
	case config.SourceFile:
		return LoadListingsFile(cfg.File)
	default:
		return nil, fmt.Errorf("%w: unknown listing source %q", ErrDataLoad, cfg.Source)
	}
}
