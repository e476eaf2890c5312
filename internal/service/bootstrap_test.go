package service

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"estate-search/internal/config"
	"estate-search/internal/repository"

	"github.com/rs/zerolog"
)

func TestNewSearchServiceFromConfig_FileWithoutKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "listings.json")
	data := `[{"title": "Studio", "city": "Pune", "bedrooms": 0, "price": 2500000},
	          {"title": "Villa", "city": "Pune", "bedrooms": 4, "price": 20000000}]`
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg := &config.Config{
		Listings: config.ListingsConfig{Source: config.SourceFile, File: path, SampleSize: 1},
		LLM:      config.LLMConfig{APIBase: "http://127.0.0.1:0", ChatModel: "m", Timeout: 1},
	}

	svc, err := NewSearchServiceFromConfig(context.Background(), cfg, zerolog.Nop())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	resp := svc.Search(context.Background(), "studio in Pune")
	if resp.Warning == "" {
		t.Error("expected a warning when no API key is configured")
	}
	if resp.Total != 2 {
		t.Errorf("expected all listings, got %d", resp.Total)
	}
}

func TestNewSearchServiceFromConfig_MissingFile(t *testing.T) {
	cfg := &config.Config{
		Listings: config.ListingsConfig{Source: config.SourceFile, File: filepath.Join(t.TempDir(), "nope.json")},
	}

	_, err := NewSearchServiceFromConfig(context.Background(), cfg, zerolog.Nop())
	if !errors.Is(err, repository.ErrDataLoad) {
		t.Fatalf("expected ErrDataLoad, got %v", err)
	}
}
