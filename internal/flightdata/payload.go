package flightdata

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/Veraticus/the-points-must-flow/internal/model"
)

var errMalformedOffer = errors.New("malformed offer")

type offersResponse struct {
	Data []offerPayload `json:"data"`
}

type offerPayload struct {
	ID    string `json:"id"`
	Price struct {
		Total    string `json:"total"`
		Currency string `json:"currency"`
	} `json:"price"`
	Itineraries      []itineraryPayload `json:"itineraries"`
	TravelerPricings []struct {
		FareDetailsBySegment []struct {
			Cabin string `json:"cabin"`
		} `json:"fareDetailsBySegment"`
	} `json:"travelerPricings"`
}

type itineraryPayload struct {
	Duration string           `json:"duration"`
	Segments []segmentPayload `json:"segments"`
}

type segmentPayload struct {
	Departure   endpointPayload `json:"departure"`
	Arrival     endpointPayload `json:"arrival"`
	CarrierCode string          `json:"carrierCode"`
	Number      string          `json:"number"`
}

type endpointPayload struct {
	IATACode string `json:"iataCode"`
	At       string `json:"at"`
}

type locationsResponse struct {
	Data []struct {
		Name    string `json:"name"`
		Address struct {
			CityName    string `json:"cityName"`
			CountryName string `json:"countryName"`
		} `json:"address"`
	} `json:"data"`
}

// toOffer flattens the outbound itinerary into an offer. A second itinerary,
// when present, only contributes the return date.
func (p offerPayload) toOffer() (model.FlightOffer, error) {
	if len(p.Itineraries) == 0 || len(p.Itineraries[0].Segments) == 0 {
		return model.FlightOffer{}, fmt.Errorf("%w: no outbound segments", errMalformedOffer)
	}
	if len(p.TravelerPricings) == 0 || len(p.TravelerPricings[0].FareDetailsBySegment) == 0 {
		return model.FlightOffer{}, fmt.Errorf("%w: no fare details", errMalformedOffer)
	}

	price, err := strconv.ParseFloat(p.Price.Total, 64)
	if err != nil {
		return model.FlightOffer{}, fmt.Errorf("%w: price %q: %v", errMalformedOffer, p.Price.Total, err)
	}

	outbound := p.Itineraries[0]
	first := outbound.Segments[0]
	last := outbound.Segments[len(outbound.Segments)-1]

	segments := make([]model.Segment, 0, len(outbound.Segments))
	for _, s := range outbound.Segments {
		segments = append(segments, model.Segment{
			DepartureAirport: s.Departure.IATACode,
			DepartureAt:      s.Departure.At,
			ArrivalAirport:   s.Arrival.IATACode,
			ArrivalAt:        s.Arrival.At,
			Carrier:          s.CarrierCode,
			Number:           s.Number,
		})
	}

	offer := model.FlightOffer{
		ID:            p.ID,
		Origin:        first.Departure.IATACode,
		Destination:   last.Arrival.IATACode,
		DepartureDate: datePart(first.Departure.At),
		Price:         price,
		Currency:      p.Price.Currency,
		Carrier:       first.CarrierCode,
		FlightNumber:  first.Number,
		Duration:      outbound.Duration,
		Stops:         len(outbound.Segments) - 1,
		CabinClass:    p.TravelerPricings[0].FareDetailsBySegment[0].Cabin,
		Segments:      segments,
		Provenance:    model.ProvenanceLive,
	}

	if len(p.Itineraries) > 1 && len(p.Itineraries[1].Segments) > 0 {
		offer.ReturnDate = datePart(p.Itineraries[1].Segments[0].Departure.At)
	}

	return offer, nil
}

func datePart(at string) string {
	if len(at) < 10 {
		return at
	}
	return at[:10]
}
