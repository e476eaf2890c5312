package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"estate-search/internal/model"
	"estate-search/internal/observability"
	"estate-search/internal/utils"

	"github.com/rs/zerolog"
)

// Extraction failure classes. Both are recovered the same way: the caller
// searches with an empty filter and shows a warning.
var (
	ErrExtractionTransport = errors.New("extraction service call failed")
	ErrExtractionFormat    = errors.New("extraction response is not a valid filter")
)

const systemPrompt = "You convert user queries into structured filters for real estate search."

const filterExample = `{
  "bedrooms": 2,
  "city": "Pune",
  "type": "flat",
  "max_price": 6000000,
  "location": null
}`

// Extraction is the outcome of one extraction call
type Extraction struct {
	Filter model.Filter
	Err    error // nil on success, wraps ErrExtractionTransport or ErrExtractionFormat otherwise
}

// OK reports whether the filter came from a usable response
func (e Extraction) OK() bool {
	return e.Err == nil
}

// Effective returns the filter to search with: the extracted one on success,
// the empty filter (match everything) on failure.
func (e Extraction) Effective() model.Filter {
	if e.Err != nil {
		return model.Filter{}
	}
	return e.Filter
}

// Warning returns the user-facing message for a failed extraction, or ""
func (e Extraction) Warning() string {
	if e.Err == nil {
		return ""
	}
	return fmt.Sprintf("AI parsing failed, showing all listings: %v", e.Err)
}

// FilterExtractor turns free-text queries into filters using a chat-completion service
type FilterExtractor struct {
	client CompletionClient
	sample string
	logger zerolog.Logger
}

// NewFilterExtractor creates an extractor. sample is embedded in every prompt so the
// model sees real field names and value formats.
func NewFilterExtractor(client CompletionClient, sample []model.Listing, logger zerolog.Logger) *FilterExtractor {
	sampleJSON, err := json.MarshalIndent(sample, "", "  ")
	if err != nil || sample == nil {
		sampleJSON = []byte("[]")
	}

	return &FilterExtractor{
		client: client,
		sample: string(sampleJSON),
		logger: logger,
	}
}

// Extract sends exactly one completion request for a non-blank query.
// It never returns an error directly; failures are carried in Extraction.Err.
func (e *FilterExtractor) Extract(ctx context.Context, query string) Extraction {
	query = strings.TrimSpace(query)
	if query == "" {
		observability.ObserveExtraction(observability.OutcomeSkipped)
		return Extraction{}
	}

	result := e.extract(ctx, query)

	switch {
	case result.Err == nil:
		observability.ObserveExtraction(observability.OutcomeSuccess)
		e.logger.Debug().Str("query", query).Interface("filter", result.Filter).Msg("filter extracted")
	case errors.Is(result.Err, ErrExtractionFormat):
		observability.ObserveExtraction(observability.OutcomeFormat)
		e.logger.Warn().Err(result.Err).Str("query", query).Msg("extraction response unusable, falling back to empty filter")
	default:
		observability.ObserveExtraction(observability.OutcomeTransport)
		e.logger.Warn().Err(result.Err).Str("query", query).Msg("extraction call failed, falling back to empty filter")
	}
	return result
}

func (e *FilterExtractor) extract(ctx context.Context, query string) Extraction {
	if e.client == nil || !e.client.IsEnabled() {
		return Extraction{Err: fmt.Errorf("%w: %v", ErrExtractionTransport, ErrClientDisabled)}
	}

	content, err := e.client.Complete(ctx, e.Messages(query))
	if err != nil {
		return Extraction{Err: fmt.Errorf("%w: %v", ErrExtractionTransport, err)}
	}

	filter, err := ParseFilter(content)
	if err != nil {
		return Extraction{Err: fmt.Errorf("%w: %v", ErrExtractionFormat, err)}
	}
	return Extraction{Filter: filter}
}

// Messages builds the system and user messages for query
func (e *FilterExtractor) Messages(query string) []ChatMessage {
	var b strings.Builder
	b.WriteString("You are an AI real estate assistant. Given the data format below:\n\n")
	b.WriteString(e.sample)
	b.WriteString("\n\nConvert the following natural language query into structured filters:\n\n")
	fmt.Fprintf(&b, "%q\n\n", query)
	b.WriteString("Return output ONLY as a JSON object with exactly these keys: bedrooms (integer), city (string), ")
	b.WriteString("type (string), max_price (integer), location (string). For example:\n")
	b.WriteString(filterExample)
	b.WriteString("\n\nReturn null if a value is not available. Do not wrap the JSON in markdown or add any explanation.")

	return []ChatMessage{
		{Role: "system", Content: systemPrompt},
		{Role: "user", Content: b.String()},
	}
}

// rawFilter keeps each value undecoded so that null, absent and mistyped values can be told apart
type rawFilter struct {
	Bedrooms json.RawMessage `json:"bedrooms"`
	City     json.RawMessage `json:"city"`
	Type     json.RawMessage `json:"type"`
	MaxPrice json.RawMessage `json:"max_price"`
	Location json.RawMessage `json:"location"`
}

// ParseFilter decodes a completion reply into a Filter.
// Absent and null keys stay unset, unknown keys are ignored. Numbers may arrive as
// integers, integral floats or numeric strings; empty strings count as unset.
func ParseFilter(content string) (model.Filter, error) {
	var raw rawFilter
	if err := utils.DecodeAIObject(content, &raw); err != nil {
		return model.Filter{}, err
	}

	var filter model.Filter

	bedrooms, err := decodeInt(raw.Bedrooms)
	if err != nil {
		return model.Filter{}, fmt.Errorf("bedrooms: %w", err)
	}
	if bedrooms != nil {
		n := int(*bedrooms)
		filter.Bedrooms = &n
	}
	if filter.MaxPrice, err = decodeInt(raw.MaxPrice); err != nil {
		return model.Filter{}, fmt.Errorf("max_price: %w", err)
	}
	if filter.City, err = decodeString(raw.City); err != nil {
		return model.Filter{}, fmt.Errorf("city: %w", err)
	}
	if filter.Type, err = decodeString(raw.Type); err != nil {
		return model.Filter{}, fmt.Errorf("type: %w", err)
	}
	if filter.Location, err = decodeString(raw.Location); err != nil {
		return model.Filter{}, fmt.Errorf("location: %w", err)
	}

	return filter, nil
}

func isNull(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}

func decodeInt(raw json.RawMessage) (*int64, error) {
	if isNull(raw) {
		return nil, nil
	}

	var num float64
	var s string
	switch {
	case json.Unmarshal(raw, &num) == nil:
	case json.Unmarshal(raw, &s) == nil:
		s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
		if s == "" {
			return nil, nil
		}
		parsed, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, fmt.Errorf("%q is not a number", s)
		}
		num = parsed
	default:
		return nil, fmt.Errorf("expected a number, got %s", utils.Truncate(string(raw), 40))
	}

	if num != math.Trunc(num) || math.Abs(num) > 1<<53 {
		return nil, fmt.Errorf("%v is not a whole number in range", num)
	}
	n := int64(num)
	return &n, nil
}

func decodeString(raw json.RawMessage) (*string, error) {
	if isNull(raw) {
		return nil, nil
	}

	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, fmt.Errorf("expected a string, got %s", utils.Truncate(string(raw), 40))
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	return &s, nil
}
