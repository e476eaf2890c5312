package repository

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"estate-search/internal/config"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "listings.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

func TestLoadListingsFile(t *testing.T) {
	path := writeFile(t, `[
		{"title": "2BHK in Baner", "location": "Baner", "city": "Pune", "type": "flat",
		 "bedrooms": 2, "bathrooms": 2, "price": 5500000, "furnished": true},
		{"title": "Studio", "city": "Mumbai", "bedrooms": 0, "price": null}
	]`)

	store, err := LoadListingsFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if store.Len() != 2 {
		t.Fatalf("expected 2 listings, got %d", store.Len())
	}

	listings := store.Listings()
	if listings[0].Price == nil || *listings[0].Price != 5500000 {
		t.Errorf("unexpected price: %v", listings[0].Price)
	}
	studio := listings[1]
	if studio.Bedrooms == nil || *studio.Bedrooms != 0 {
		t.Errorf("expected bedrooms 0 to be kept, got %v", studio.Bedrooms)
	}
	if studio.Price != nil {
		t.Errorf("expected null price to stay nil, got %d", *studio.Price)
	}
	if studio.Location != nil || studio.Bathrooms != nil {
		t.Error("expected absent keys to stay nil")
	}
}

func TestLoadListingsFile_Errors(t *testing.T) {
	tests := []struct {
		name string
		path func(t *testing.T) string
	}{
		{
			name: "missing file",
			path: func(t *testing.T) string { return filepath.Join(t.TempDir(), "nope.json") },
		},
		{
			name: "malformed JSON",
			path: func(t *testing.T) string { return writeFile(t, `[{"title": "x",]`) },
		},
		{
			name: "object instead of array",
			path: func(t *testing.T) string { return writeFile(t, `{"title": "x"}`) },
		},
		{
			name: "wrong field type",
			path: func(t *testing.T) string { return writeFile(t, `[{"bedrooms": "two"}]`) },
		},
		{
			name: "empty file",
			path: func(t *testing.T) string { return writeFile(t, "") },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadListingsFile(tt.path(t))
			if !errors.Is(err, ErrDataLoad) {
				t.Fatalf("expected ErrDataLoad, got %v", err)
			}
		})
	}
}

func TestListingStore_Sample(t *testing.T) {
	store, err := DecodeListings([]byte(`[{"title":"a"},{"title":"b"},{"title":"c"},{"title":"d"}]`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := store.Sample(3); len(got) != 3 || *got[2].Title != "c" {
		t.Errorf("unexpected sample: %+v", got)
	}
	if got := store.Sample(10); len(got) != 4 {
		t.Errorf("expected sample capped at 4, got %d", len(got))
	}
	if got := store.Sample(0); got == nil || len(got) != 0 {
		t.Errorf("expected empty non-nil sample, got %v", got)
	}
}

func TestListingStore_ListingsIsACopy(t *testing.T) {
	store, _ := DecodeListings([]byte(`[{"title":"a"}]`))

	listings := store.Listings()
	listings[0].Title = nil

	if store.Listings()[0].Title == nil {
		t.Error("mutating the returned slice must not change the store")
	}
}

func TestLoadListings_Source(t *testing.T) {
	path := writeFile(t, `[{"title": "a"}]`)

	store, err := LoadListings(context.Background(), config.ListingsConfig{Source: config.SourceFile, File: path})
	if err != nil || store.Len() != 1 {
		t.Fatalf("unexpected result: %v, %v", store, err)
	}

	_, err = LoadListings(context.Background(), config.ListingsConfig{Source: "ftp"})
	if !errors.Is(err, ErrDataLoad) {
		t.Errorf("expected ErrDataLoad for unknown source, got %v", err)
	}
}
