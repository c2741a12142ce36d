// Package service defines the contracts shared between the engine packages
// and their collaborators.
package service

import (
	"context"
	"time"

	"github.com/Veraticus/the-points-must-flow/internal/model"
)

// OfferQuery describes a flight-offer search.
type OfferQuery struct {
	DepartureDate time.Time
	ReturnDate    *time.Time
	Origin        string
	Destination   string
	Adults        int
	MaxResults    int
}

// OfferSearcher returns raw flight offers for a city pair and date.
type OfferSearcher interface {
	SearchOffers(ctx context.Context, query OfferQuery) ([]model.FlightOffer, error)
}

// AirportInfo describes an airport as reported by the flight-data source.
type AirportInfo struct {
	Code    string `json:"code"`
	Name    string `json:"name"`
	City    string `json:"city"`
	Country string `json:"country"`
}

// AirportLookup resolves airport codes to names.
type AirportLookup interface {
	AirportInfo(ctx context.Context, code string) (AirportInfo, error)
}

// ProgressReporter receives one tick per unit of search work.
type ProgressReporter interface {
	Start(total int, description string)
	Advance(label string)
	Finish()
}

// RetryOptions configures retry behavior for operations.
type RetryOptions struct {
	MaxAttempts  int
	InitialDelay time.Duration
	MaxDelay     time.Duration
	Multiplier   float64
}
