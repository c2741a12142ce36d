package routing

import (
	"sort"

	"github.com/Veraticus/the-points-must-flow/internal/model"
)

const (
	// efficiencyNumerator scales the inverse-cost efficiency score.
	efficiencyNumerator = 1000.0
	// segmentPenalty is subtracted per flown segment.
	segmentPenalty = 0.1
	// worthwhileSavingsPercent is the minimum saving for a synthetic route
	// to be worth the extra connection.
	worthwhileSavingsPercent = 10.0
)

// RankedRoute is a route with its score breakdown.
type RankedRoute struct {
	Route             model.FlightRoute `json:"route"`
	TotalCost         float64           `json:"total_cost"`
	CostPerHour       float64           `json:"cost_per_hour"`
	EfficiencyScore   float64           `json:"efficiency_score"`
	ComplexityPenalty float64           `json:"complexity_penalty"`
	FinalScore        float64           `json:"final_score"`
}

// Ranker scores routes: cheaper and simpler is better.
type Ranker struct{}

// NewRanker creates a ranker.
func NewRanker() *Ranker {
	return &Ranker{}
}

// Score computes the breakdown for a single route.
//
//	efficiency = 1000 / total_cost   (0 when total_cost <= 0)
//	penalty    = 0.1 * segments
//	final      = efficiency - penalty
func (r *Ranker) Score(route model.FlightRoute) RankedRoute {
	total := route.TotalCost()

	var efficiency float64
	if total > 0 {
		efficiency = efficiencyNumerator / total
	}

	var perHour float64
	if route.DurationHours > 0 {
		perHour = float64(route.TotalUnits) / route.DurationHours
	}

	penalty := float64(len(route.Segments)) * segmentPenalty

	return RankedRoute{
		Route:             route,
		TotalCost:         total,
		CostPerHour:       perHour,
		EfficiencyScore:   efficiency,
		ComplexityPenalty: penalty,
		FinalScore:        efficiency - penalty,
	}
}

// Rank scores routes and orders them by final score, highest first. Routes
// with equal scores keep their input order. The input is not modified.
func (r *Ranker) Rank(routes []model.FlightRoute) []RankedRoute {
	ranked := make([]RankedRoute, 0, len(routes))
	for _, route := range routes {
		ranked = append(ranked, r.Score(route))
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].FinalScore > ranked[j].FinalScore
	})

	return ranked
}

// Savings compares a direct route cost against a synthetic alternative.
type Savings struct {
	DirectCost        float64 `json:"direct_cost"`
	LayoverCost       float64 `json:"layover_cost"`
	Savings           float64 `json:"savings"`
	SavingsPercentage float64 `json:"savings_percentage"`
	IsWorthwhile      bool    `json:"is_worthwhile"`
}

// SyntheticSavings reports how much a layover route saves over a direct one.
// It is worthwhile only when it saves something and more than 10%.
func (r *Ranker) SyntheticSavings(directCost, layoverCost float64) Savings {
	savings := directCost - layoverCost

	var pct float64
	if directCost > 0 {
		pct = savings / directCost * 100
	}

	return Savings{
		DirectCost:        directCost,
		LayoverCost:       layoverCost,
		Savings:           savings,
		SavingsPercentage: pct,
		IsWorthwhile:      savings > 0 && pct > worthwhileSavingsPercent,
	}
}
