package model

import "strings"

// RouteType distinguishes nonstop itineraries from synthetic hub routings.
type RouteType string

const (
	// RouteDirect is a single zero-stop offer.
	RouteDirect RouteType = "direct"
	// RouteLayover is two independently priced legs joined at a hub.
	RouteLayover RouteType = "layover"
)

// FlightRoute is a candidate itinerary priced in award units.
type FlightRoute struct {
	Origin          string
	Destination     string
	RouteType       RouteType
	Airline         string
	Provenance      Provenance
	Segments        []Segment
	LayoverAirports []string
	TotalUnits      int
	TotalFees       float64
	DurationHours   float64
	CashPrice       float64
}

// TotalCost sums award units and cash fees. The two are different currencies;
// the figure is a ranking heuristic, not an amount anyone pays.
func (r FlightRoute) TotalCost() float64 {
	return float64(r.TotalUnits) + r.TotalFees
}

// Description renders the airports the route touches, e.g. "JFK → ATL → LAX".
func (r FlightRoute) Description() string {
	stops := make([]string, 0, len(r.LayoverAirports)+2)
	stops = append(stops, r.Origin)
	if r.RouteType != RouteDirect {
		stops = append(stops, r.LayoverAirports...)
	}
	stops = append(stops, r.Destination)
	return strings.Join(stops, " → ")
}
