package models

import "fmt"

// amenitySymbols is the closed set of amenity tags the catalog may carry,
// mapped to the display symbol the frontend renders. An unknown tag is a data
// error, not something to skip quietly.
var amenitySymbols = map[string]string{
	"wifi":       "📶",
	"parking":    "🅿️",
	"restaurant": "🍽️",
	"gym":        "🏋️",
	"spa":        "💆",
	"pool":       "🏊",
}

// AmenitySymbol resolves a tag to its display symbol.
func AmenitySymbol(tag string) (string, error) {
	sym, ok := amenitySymbols[tag]
	if !ok {
		return "", fmt.Errorf("unknown amenity tag %q", tag)
	}
	return sym, nil
}

// ValidateAmenityTags checks every tag against the amenity table and reports
// the first unknown one.
func ValidateAmenityTags(tags []string) error {
	for _, tag := range tags {
		if _, err := AmenitySymbol(tag); err != nil {
			return err
		}
	}
	return nil
}
