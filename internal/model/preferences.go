package model

import "fmt"

// HotelPreference narrows hotel redemptions to a category tier.
type HotelPreference string

const (
	// HotelAny accepts every category.
	HotelAny HotelPreference = "any"
	// HotelBudget accepts categories 1-2.
	HotelBudget HotelPreference = "budget"
	// HotelMidRange accepts categories 3-5.
	HotelMidRange HotelPreference = "mid-range"
	// HotelLuxury accepts categories 6 and up.
	HotelLuxury HotelPreference = "luxury"
)

// Accepts reports whether a hotel category falls inside the preferred tier.
func (p HotelPreference) Accepts(category int) bool {
	switch p {
	case HotelBudget:
		return category <= 2
	case HotelMidRange:
		return category >= 3 && category <= 5
	case HotelLuxury:
		return category >= 6
	default:
		return true
	}
}

// ParseHotelPreference converts user input into a HotelPreference.
func ParseHotelPreference(s string) (HotelPreference, error) {
	switch p := HotelPreference(s); p {
	case HotelAny, HotelBudget, HotelMidRange, HotelLuxury:
		return p, nil
	case "":
		return HotelAny, nil
	default:
		return "", fmt.Errorf("unknown hotel preference %q: must be any, budget, mid-range or luxury", s)
	}
}

// UserPreferences steers filtering and ordering of recommendations.
type UserPreferences struct {
	HotelPreference     HotelPreference `json:"hotel_preference"`
	MinValuePerUnit     float64         `json:"min_value_per_unit"`
	MaxLayovers         int             `json:"max_layovers"`
	MaximizeValue       bool            `json:"maximize_value"`
	MinimizeFees        bool            `json:"minimize_fees"`
	PreferDirectFlights bool            `json:"prefer_direct_flights"`
	IncludeAlternatives bool            `json:"include_alternatives"`
}

// DefaultPreferences returns the preferences used when the caller has none.
func DefaultPreferences() UserPreferences {
	return UserPreferences{
		MaximizeValue:       true,
		MinimizeFees:        false,
		PreferDirectFlights: true,
		MaxLayovers:         1,
		HotelPreference:     HotelAny,
		IncludeAlternatives: true,
		MinValuePerUnit:     1.0,
	}
}

// Validate ensures the preferences are usable.
func (p UserPreferences) Validate() error {
	if p.MaxLayovers < 0 {
		return fmt.Errorf("max layovers must be non-negative, got %d", p.MaxLayovers)
	}
	if p.MinValuePerUnit < 0 {
		return fmt.Errorf("minimum value per unit must be non-negative, got %.2f", p.MinValuePerUnit)
	}
	if _, err := ParseHotelPreference(string(p.HotelPreference)); err != nil {
		return err
	}
	return nil
}
