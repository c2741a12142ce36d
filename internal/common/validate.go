package common

import (
	"fmt"
	"strings"
	"time"
)

// ParseAirportCode normalizes a three-letter IATA code to upper case.
func ParseAirportCode(code string) (string, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if len(code) != 3 {
		return "", fmt.Errorf("%w: %q must be three letters", ErrInvalidAirport, code)
	}
	for _, r := range code {
		if r < 'A' || r > 'Z' {
			return "", fmt.Errorf("%w: %q must be three letters", ErrInvalidAirport, code)
		}
	}
	return code, nil
}

// ParseTravelDate reads a YYYY-MM-DD date in UTC.
func ParseTravelDate(s string) (time.Time, error) {
	d, err := time.Parse(time.DateOnly, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q is not YYYY-MM-DD", ErrInvalidDate, s)
	}
	return d, nil
}

// ValidateUnits rejects negative balances.
func ValidateUnits(units int) error {
	if units < 0 {
		return fmt.Errorf("%w: %d is negative", ErrInvalidUnits, units)
	}
	return nil
}
