// Package award prices flights in points using fixed distance-zone award charts.
package award

// DefaultDistance is used for city pairs missing from the distance table.
const DefaultDistance = 1000

// InternationalThreshold is the distance above which a route is priced on the
// international chart when no explicit classification is available.
const InternationalThreshold = 2000

type cityPair struct {
	a, b string
}

var defaultDistances = map[cityPair]int{
	{"JFK", "LAX"}: 2475,
	{"JFK", "ORD"}: 740,
	{"JFK", "ATL"}: 760,
	{"JFK", "DFW"}: 1389,
	{"LAX", "ORD"}: 1744,
	{"LAX", "ATL"}: 1947,
	{"LAX", "DFW"}: 1235,
	{"ORD", "ATL"}: 606,
	{"ORD", "DFW"}: 802,
	{"ATL", "DFW"}: 731,
}

// Zone is one band of an award chart.
type Zone struct {
	// MaxDistance bounds the zone; zero means unbounded.
	MaxDistance int `json:"max_distance"`
	Points      int `json:"points"`
}

// Domestic zones include their upper bound: 500 miles is still zone 1.
var domesticZones = []Zone{
	{MaxDistance: 500, Points: 7500},
	{MaxDistance: 1000, Points: 12500},
	{MaxDistance: 1500, Points: 20000},
	{MaxDistance: 2000, Points: 25000},
	{MaxDistance: 0, Points: 35000},
}

// International zones exclude their upper bound: 2000 miles is zone 2.
var internationalZones = []Zone{
	{MaxDistance: 2000, Points: 30000},
	{MaxDistance: 4000, Points: 40000},
	{MaxDistance: 6000, Points: 50000},
	{MaxDistance: 8000, Points: 60000},
	{MaxDistance: 0, Points: 70000},
}

// Chart looks up award prices. The zero value is not usable; call NewChart.
type Chart struct {
	distances map[cityPair]int
}

// NewChart returns a chart backed by the built-in distance table.
func NewChart() *Chart {
	return &Chart{distances: defaultDistances}
}

// Distance returns the flown distance between two airports in miles. Lookups
// are symmetric and unknown pairs fall back to DefaultDistance.
func (c *Chart) Distance(origin, destination string) int {
	if d, ok := c.distances[cityPair{origin, destination}]; ok {
		return d
	}
	if d, ok := c.distances[cityPair{destination, origin}]; ok {
		return d
	}
	return DefaultDistance
}

// IsInternational applies the distance heuristic used for direct routes.
func (c *Chart) IsInternational(origin, destination string) bool {
	return c.Distance(origin, destination) > InternationalThreshold
}

// Cost returns the award price in points for flying between two airports.
func (c *Chart) Cost(origin, destination string, international bool) int {
	distance := c.Distance(origin, destination)
	if international {
		return internationalPoints(distance)
	}
	return domesticPoints(distance)
}

func domesticPoints(distance int) int {
	for _, z := range domesticZones {
		if z.MaxDistance == 0 || distance <= z.MaxDistance {
			return z.Points
		}
	}
	return domesticZones[len(domesticZones)-1].Points
}

func internationalPoints(distance int) int {
	for _, z := range internationalZones {
		if z.MaxDistance == 0 || distance < z.MaxDistance {
			return z.Points
		}
	}
	return internationalZones[len(internationalZones)-1].Points
}

// DomesticZones returns a copy of the domestic chart.
func DomesticZones() []Zone {
	return append([]Zone(nil), domesticZones...)
}

// InternationalZones returns a copy of the international chart.
func InternationalZones() []Zone {
	return append([]Zone(nil), internationalZones...)
}
