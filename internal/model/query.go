package model

// Filter represents structured constraints extracted from a natural language query.
// A nil field imposes no constraint; a zero value is a real constraint
// (bedrooms = 0 only matches studios).
type Filter struct {
	Bedrooms *int    `json:"bedrooms"`
	City     *string `json:"city"`
	Type     *string `json:"type"`
	MaxPrice *int64  `json:"max_price"`
	Location *string `json:"location"`
}

// IsEmpty reports whether no field is set, i.e. the filter matches everything
func (f Filter) IsEmpty() bool {
	return f.Bedrooms == nil &&
		f.City == nil &&
		f.Type == nil &&
		f.MaxPrice == nil &&
		f.Location == nil
}

// SearchRequest represents a search query request
type SearchRequest struct {
	Query string `json:"query" binding:"required"`
}

// SearchResponse represents a search result response
type SearchResponse struct {
	Query    string       `json:"query"`
	Filters  Filter       `json:"filters"`
	Warning  string       `json:"warning,omitempty"`
	Results  []ListingHit `json:"results"`
	Total    int          `json:"total"`
	Took     int64        `json:"took_ms"`            // Response time in milliseconds
	Currency string       `json:"currency,omitempty"` // price prefix for display
}

// ListingsResponse represents the full listing collection
type ListingsResponse struct {
	Listings []Listing `json:"listings"`
	Total    int       `json:"total"`
}
