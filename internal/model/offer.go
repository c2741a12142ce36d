package model

// Provenance records where a piece of flight data came from.
type Provenance string

const (
	// ProvenanceLive marks data returned by the live flight-data API.
	ProvenanceLive Provenance = "live"
	// ProvenanceMock marks data produced by the local mock generator.
	ProvenanceMock Provenance = "mock"
)

// Combine returns mock if either side is mock.
func (p Provenance) Combine(other Provenance) Provenance {
	if p == ProvenanceMock || other == ProvenanceMock {
		return ProvenanceMock
	}
	if p == "" {
		return other
	}
	return p
}

// Segment is a single flown leg of an offer.
type Segment struct {
	DepartureAirport string `json:"departure_airport"`
	DepartureAt      string `json:"departure_at"`
	ArrivalAirport   string `json:"arrival_airport"`
	ArrivalAt        string `json:"arrival_at"`
	Carrier          string `json:"carrier"`
	Number           string `json:"number"`
}

// FlightOffer is a raw priced itinerary from a flight-data source.
type FlightOffer struct {
	ID            string
	Origin        string
	Destination   string
	DepartureDate string
	ReturnDate    string
	Currency      string
	Carrier       string
	FlightNumber  string
	// Duration is an ISO-8601 duration such as "PT5H30M".
	Duration   string
	CabinClass string
	Provenance Provenance
	Segments   []Segment
	Price      float64
	Stops      int
}
