package routing

import (
	"context"
	"log/slog"
	"time"

	"github.com/Veraticus/the-points-must-flow/internal/common"
	"github.com/Veraticus/the-points-must-flow/internal/model"
)

// DefaultMaxRoutes caps the ranked routes returned by FindOptimalRoutes.
const DefaultMaxRoutes = 5

// SavingsOpportunity is a layover route that beats the direct route.
type SavingsOpportunity struct {
	Route   model.FlightRoute `json:"layover_route"`
	Savings Savings           `json:"savings_analysis"`
}

// RouteSearch is the outcome of an optimal-route search.
type RouteSearch struct {
	Best                 *RankedRoute         `json:"best_route"`
	Message              string               `json:"message,omitempty"`
	Provenance           model.Provenance     `json:"provenance"`
	Routes               []RankedRoute        `json:"routes"`
	SavingsOpportunities []SavingsOpportunity `json:"savings_opportunities"`
	TotalRoutesFound     int                  `json:"total_routes_found"`
	DirectCount          int                  `json:"direct_routes_count"`
	LayoverCount         int                  `json:"layover_routes_count"`
}

// SearchOptions controls FindOptimalRoutes.
type SearchOptions struct {
	// Hubs overrides the constructor's hubs when non-nil.
	Hubs      []string
	MaxRoutes int
	// SkipLayovers disables the synthetic route search.
	SkipLayovers bool
}

// Optimizer combines construction and ranking.
type Optimizer struct {
	constructor *Constructor
	ranker      *Ranker
	logger      *slog.Logger
}

// NewOptimizer creates an optimizer.
func NewOptimizer(constructor *Constructor, ranker *Ranker) *Optimizer {
	if ranker == nil {
		ranker = NewRanker()
	}
	return &Optimizer{
		constructor: constructor,
		ranker:      ranker,
		logger:      common.ComponentLogger("optimizer"),
	}
}

// FindOptimalRoutes builds direct and layover routes, ranks them, keeps the
// top MaxRoutes, and lists layover routes that save more than 10% over the
// first direct route.
func (o *Optimizer) FindOptimalRoutes(ctx context.Context, origin, destination string, date time.Time, opts SearchOptions) RouteSearch {
	maxRoutes := opts.MaxRoutes
	if maxRoutes <= 0 {
		maxRoutes = DefaultMaxRoutes
	}

	o.logger.Info("Searching for routes",
		"origin", origin,
		"destination", destination,
		"date", date.Format("2006-01-02"))

	direct := o.constructor.DirectRoutes(ctx, origin, destination, date)

	var layover []model.FlightRoute
	if !opts.SkipLayovers {
		layover = o.constructor.LayoverRoutes(ctx, origin, destination, date, opts.Hubs)
	}

	o.logger.Info("Routes found", "direct", len(direct), "layover", len(layover))

	all := make([]model.FlightRoute, 0, len(direct)+len(layover))
	all = append(all, direct...)
	all = append(all, layover...)

	result := RouteSearch{
		Routes:               []RankedRoute{},
		SavingsOpportunities: []SavingsOpportunity{},
		TotalRoutesFound:     len(all),
		DirectCount:          len(direct),
		LayoverCount:         len(layover),
	}
	if len(all) == 0 {
		result.Message = "No routes available for the specified criteria."
		return result
	}

	for _, route := range all {
		result.Provenance = result.Provenance.Combine(route.Provenance)
	}

	ranked := o.ranker.Rank(all)
	if len(ranked) > maxRoutes {
		ranked = ranked[:maxRoutes]
	}
	result.Routes = ranked
	result.Best = &result.Routes[0]

	if len(direct) > 0 {
		directCost := direct[0].TotalCost()
		for _, route := range layover {
			savings := o.ranker.SyntheticSavings(directCost, route.TotalCost())
			if savings.IsWorthwhile {
				result.SavingsOpportunities = append(result.SavingsOpportunities, SavingsOpportunity{
					Route:   route,
					Savings: savings,
				})
			}
		}
	}

	return result
}
