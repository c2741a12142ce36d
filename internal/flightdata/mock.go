package flightdata

import (
	"context"
	"fmt"

	"github.com/Veraticus/the-points-must-flow/internal/award"
	"github.com/Veraticus/the-points-must-flow/internal/model"
	"github.com/Veraticus/the-points-must-flow/internal/service"
)

const (
	dateLayout = "2006-01-02"

	// mockPricePerMile approximates a cash fare from distance.
	mockPricePerMile = 0.15
	// mockConnectionHub is where the mock one-stop offer connects.
	mockConnectionHub = "ORD"
)

// MockGenerator produces two deterministic offers for any query, scaled by
// the award chart's distance estimate.
type MockGenerator struct {
	chart *award.Chart
}

// NewMockGenerator creates a generator using chart for distances.
func NewMockGenerator(chart *award.Chart) *MockGenerator {
	if chart == nil {
		chart = award.NewChart()
	}
	return &MockGenerator{chart: chart}
}

// SearchOffers implements service.OfferSearcher and never fails.
func (m *MockGenerator) SearchOffers(_ context.Context, query service.OfferQuery) ([]model.FlightOffer, error) {
	return m.Offers(query), nil
}

// Offers returns an economy nonstop and a premium-economy one-stop offer,
// truncated to query.MaxResults when it is positive.
func (m *MockGenerator) Offers(query service.OfferQuery) []model.FlightOffer {
	distance := m.chart.Distance(query.Origin, query.Destination)
	basePrice := float64(distance) * mockPricePerMile
	duration := fmt.Sprintf("PT%dH", distance/500+1)
	day := query.DepartureDate.Format(dateLayout)

	var returnDate string
	if query.ReturnDate != nil {
		returnDate = query.ReturnDate.Format(dateLayout)
	}

	offers := []model.FlightOffer{
		{
			ID:            "mock_1",
			Origin:        query.Origin,
			Destination:   query.Destination,
			DepartureDate: day,
			ReturnDate:    returnDate,
			Price:         basePrice * 0.8,
			Currency:      "USD",
			Carrier:       "AA",
			FlightNumber:  "123",
			Duration:      duration,
			Stops:         0,
			CabinClass:    "ECONOMY",
			Provenance:    model.ProvenanceMock,
			Segments: []model.Segment{
				{
					DepartureAirport: query.Origin,
					DepartureAt:      day + "T10:00:00",
					ArrivalAirport:   query.Destination,
					ArrivalAt:        day + "T13:00:00",
					Carrier:          "AA",
					Number:           "123",
				},
			},
		},
		{
			ID:            "mock_2",
			Origin:        query.Origin,
			Destination:   query.Destination,
			DepartureDate: day,
			ReturnDate:    returnDate,
			Price:         basePrice * 1.5,
			Currency:      "USD",
			Carrier:       "DL",
			FlightNumber:  "456",
			Duration:      duration,
			Stops:         1,
			CabinClass:    "PREMIUM_ECONOMY",
			Provenance:    model.ProvenanceMock,
			Segments: []model.Segment{
				{
					DepartureAirport: query.Origin,
					DepartureAt:      day + "T08:00:00",
					ArrivalAirport:   mockConnectionHub,
					ArrivalAt:        day + "T10:00:00",
					Carrier:          "DL",
					Number:           "456",
				},
				{
					DepartureAirport: mockConnectionHub,
					DepartureAt:      day + "T11:30:00",
					ArrivalAirport:   query.Destination,
					ArrivalAt:        day + "T14:30:00",
					Carrier:          "DL",
					Number:           "789",
				},
			},
		},
	}

	if query.MaxResults > 0 && query.MaxResults < len(offers) {
		offers = offers[:query.MaxResults]
	}
	return offers
}

var _ service.OfferSearcher = (*MockGenerator)(nil)
