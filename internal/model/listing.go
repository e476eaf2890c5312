package model

// Listing represents a property listing.
// Every field is optional: a key that is absent or null in the source stays nil,
// which is not the same as a zero value.
type Listing struct {
	Title     *string `json:"title,omitempty" db:"title"`
	Location  *string `json:"location,omitempty" db:"location"`
	City      *string `json:"city,omitempty" db:"city"`
	Type      *string `json:"type,omitempty" db:"type"`
	Bedrooms  *int    `json:"bedrooms,omitempty" db:"bedrooms"`
	Bathrooms *int    `json:"bathrooms,omitempty" db:"bathrooms"`
	Price     *int64  `json:"price,omitempty" db:"price"`
}

// ListingHit is a matched listing together with the filter fields it satisfied
type ListingHit struct {
	Listing
	MatchedReasons []string `json:"matched_reasons"`
}

// StringValue returns the pointed-to string or "" for nil
func StringValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// Helper constructors, mostly used by tests and fixtures.

func StringPtr(v string) *string { return &v }

func IntPtr(v int) *int { return &v }

func Int64Ptr(v int64) *int64 { return &v }
