package flightdata

import (
	"context"

	"github.com/Veraticus/the-points-must-flow/internal/model"
	"github.com/Veraticus/the-points-must-flow/internal/service"
)

// MockSearcher is a scriptable OfferSearcher for tests.
type MockSearcher struct {
	// SearchOffersFn controls the response; nil returns no offers.
	SearchOffersFn func(ctx context.Context, query service.OfferQuery) ([]model.FlightOffer, error)

	// Calls records every query in order.
	Calls []service.OfferQuery
}

// NewMockSearcher creates a new mock searcher.
func NewMockSearcher() *MockSearcher {
	return &MockSearcher{Calls: []service.OfferQuery{}}
}

// SearchOffers implements service.OfferSearcher.
func (m *MockSearcher) SearchOffers(ctx context.Context, query service.OfferQuery) ([]model.FlightOffer, error) {
	m.Calls = append(m.Calls, query)

	if m.SearchOffersFn != nil {
		return m.SearchOffersFn(ctx, query)
	}

	return []model.FlightOffer{}, nil
}

var _ service.OfferSearcher = (*MockSearcher)(nil)
