package routing

// MajorHubs are the primary connection airports, busiest first.
var MajorHubs = []string{"ATL", "DFW", "ORD", "LAX", "JFK", "LHR", "CDG", "NRT", "HKG", "SIN"}

// RegionalHubs are secondary connection airports.
var RegionalHubs = []string{"DEN", "MIA", "SEA", "SFO", "BOS", "IAH", "MSP", "DTW", "PHX", "LAS"}

// DefaultHubCount is how many major hubs a layover search tries by default.
const DefaultHubCount = 3

// DefaultHubs returns the hubs searched when the caller supplies none.
func DefaultHubs() []string {
	return append([]string(nil), MajorHubs[:DefaultHubCount]...)
}

// AllHubs returns major hubs followed by regional hubs.
func AllHubs() []string {
	hubs := make([]string, 0, len(MajorHubs)+len(RegionalHubs))
	hubs = append(hubs, MajorHubs...)
	return append(hubs, RegionalHubs...)
}
