package service

import (
	"strings"

	"estate-search/internal/model"
)

// Match reason constants
const (
	ReasonBedroomsMatch = "Bedrooms match"
	ReasonCityMatch     = "City match"
	ReasonTypeMatch     = "Property type match"
	ReasonLocationMatch = "Location match"
	ReasonPriceMatch    = "Price within budget"
	ReasonNoFilter      = "No filter applied"
)

// MatchListings returns the listings that satisfy every set field of filter, in input order.
// The result is never nil and listings is not modified.
func MatchListings(listings []model.Listing, filter model.Filter) []model.Listing {
	matched := make([]model.Listing, 0, len(listings))
	for _, listing := range listings {
		if Matches(listing, filter) {
			matched = append(matched, listing)
		}
	}
	return matched
}

// Matches reports whether listing satisfies filter.
// An unset filter field passes; a set field fails against a missing listing value.
func Matches(listing model.Listing, filter model.Filter) bool {
	if filter.Bedrooms != nil {
		if listing.Bedrooms == nil || *listing.Bedrooms != *filter.Bedrooms {
			return false
		}
	}
	if filter.City != nil && !equalFold(listing.City, *filter.City) {
		return false
	}
	if filter.Type != nil && !equalFold(listing.Type, *filter.Type) {
		return false
	}
	if filter.Location != nil {
		if listing.Location == nil || !strings.Contains(strings.ToLower(*listing.Location), strings.ToLower(*filter.Location)) {
			return false
		}
	}
	if filter.MaxPrice != nil {
		if listing.Price == nil || *listing.Price > *filter.MaxPrice {
			return false
		}
	}
	return true
}

func equalFold(value *string, want string) bool {
	return value != nil && strings.EqualFold(*value, want)
}

// MatchedReasons lists a human-readable reason for every set field of filter.
// Only meaningful for listings that already passed Matches.
func MatchedReasons(filter model.Filter) []string {
	reasons := []string{}

	if filter.Bedrooms != nil {
		reasons = append(reasons, ReasonBedroomsMatch)
	}
	if filter.City != nil {
		reasons = append(reasons, ReasonCityMatch)
	}
	if filter.Type != nil {
		reasons = append(reasons, ReasonTypeMatch)
	}
	if filter.Location != nil {
		reasons = append(reasons, ReasonLocationMatch)
	}
	if filter.MaxPrice != nil {
		reasons = append(reasons, ReasonPriceMatch)
	}

	if len(reasons) == 0 {
		reasons = append(reasons, ReasonNoFilter)
	}
	return reasons
}
