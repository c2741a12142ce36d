package flightdata

import (
	"context"
	"log/slog"

	"github.com/Veraticus/the-points-must-flow/internal/common"
	"github.com/Veraticus/the-points-must-flow/internal/model"
	"github.com/Veraticus/the-points-must-flow/internal/service"
)

// FallbackSource wraps an optional live searcher. Any failure of the live
// searcher, or its absence, is answered with mock offers; the returned
// offers' Provenance tells callers which path produced them.
type FallbackSource struct {
	primary service.OfferSearcher
	mock    *MockGenerator
	logger  *slog.Logger
}

// NewFallbackSource creates a source. primary may be nil when no credentials
// are configured.
func NewFallbackSource(primary service.OfferSearcher, mock *MockGenerator) *FallbackSource {
	if mock == nil {
		mock = NewMockGenerator(nil)
	}
	return &FallbackSource{
		primary: primary,
		mock:    mock,
		logger:  common.ComponentLogger("flightdata"),
	}
}

// Available reports whether a live searcher is configured.
func (f *FallbackSource) Available() bool {
	return f.primary != nil
}

// SearchOffers implements service.OfferSearcher. It never returns an error.
func (f *FallbackSource) SearchOffers(ctx context.Context, query service.OfferQuery) ([]model.FlightOffer, error) {
	if f.primary == nil {
		f.logger.Debug("Using mock flight data, live source not configured",
			"origin", query.Origin,
			"destination", query.Destination)
		return f.mock.Offers(query), nil
	}

	offers, err := f.primary.SearchOffers(ctx, query)
	if err != nil {
		f.logger.Warn("Live flight search failed, using mock flight data",
			"origin", query.Origin,
			"destination", query.Destination,
			"error", err)
		return f.mock.Offers(query), nil
	}

	return offers, nil
}

// AirportInfo resolves an airport through the live source when it supports
// lookups, and otherwise returns a placeholder.
func (f *FallbackSource) AirportInfo(ctx context.Context, code string) (service.AirportInfo, error) {
	if lookup, ok := f.primary.(service.AirportLookup); ok {
		info, err := lookup.AirportInfo(ctx, code)
		if err == nil {
			return info, nil
		}
		f.logger.Warn("Airport lookup failed", "code", code, "error", err)
	}

	return placeholderAirport(code), nil
}

func placeholderAirport(code string) service.AirportInfo {
	return service.AirportInfo{
		Code:    code,
		Name:    "Airport " + code,
		City:    "Unknown",
		Country: "Unknown",
	}
}

var (
	_ service.OfferSearcher = (*FallbackSource)(nil)
	_ service.AirportLookup = (*FallbackSource)(nil)
)
