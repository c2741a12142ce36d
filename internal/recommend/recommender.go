// Package recommend merges flight, hotel and alternative redemptions into a
// ranked shortlist for a points balance.
package recommend

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/Veraticus/the-points-must-flow/internal/catalog"
	"github.com/Veraticus/the-points-must-flow/internal/common"
	"github.com/Veraticus/the-points-must-flow/internal/model"
	"github.com/Veraticus/the-points-must-flow/internal/routing"
	"github.com/Veraticus/the-points-must-flow/internal/valuation"
)

const (
	// MaxRecommendations caps the returned shortlist.
	MaxRecommendations = 5
	// MaxHotelOptions caps the hotel pool before merging.
	MaxHotelOptions = 5
	// flightRouteLimit is how many ranked routes are considered for flights.
	flightRouteLimit = 5
	// fallbackCentsPerMile prices a flight with no cash fare.
	fallbackCentsPerMile = 0.02
)

// RouteFinder is the routing capability the recommender depends on.
type RouteFinder interface {
	FindOptimalRoutes(ctx context.Context, origin, destination string, date time.Time, opts routing.SearchOptions) routing.RouteSearch
}

// Recommender builds recommendation results. It keeps no state between calls.
type Recommender struct {
	routes     RouteFinder
	calculator *valuation.Calculator
	catalog    *catalog.Catalog
	logger     *slog.Logger
}

// NewRecommender creates a recommender. A nil calculator or catalog uses the
// defaults; a nil route finder disables flight options.
func NewRecommender(routes RouteFinder, calculator *valuation.Calculator, cat *catalog.Catalog) *Recommender {
	if calculator == nil {
		calculator = valuation.NewCalculator()
	}
	if cat == nil {
		cat = catalog.Default()
	}
	return &Recommender{
		routes:     routes,
		calculator: calculator,
		catalog:    cat,
		logger:     common.ComponentLogger("recommender"),
	}
}

// candidates tracks the cheapest redemption seen while building pools,
// including ones the balance cannot cover.
type candidates struct {
	cheapest int
}

func (c *candidates) see(units int) {
	if units <= 0 {
		return
	}
	if c.cheapest == 0 || units < c.cheapest {
		c.cheapest = units
	}
}

// Recommend searches every redemption kind for the balance and returns the
// shortlist. It never fails: upstream problems surface as fewer options or
// mock provenance, and an empty shortlist carries guidance instead.
func (r *Recommender) Recommend(ctx context.Context, origin, destination string, date time.Time, available int, prefs model.UserPreferences) model.RecommendationResult {
	r.logger.Info("Generating recommendations",
		"origin", origin,
		"destination", destination,
		"available_units", available)

	var seen candidates

	flights, provenance := r.flightOptions(ctx, origin, destination, date, available, prefs, &seen)
	hotels := r.hotelOptions(destination, available, prefs.HotelPreference, &seen)

	var alternatives []model.Option
	if prefs.IncludeAlternatives {
		alternatives = r.alternatives(available, &seen)
	}

	pool := make([]model.Option, 0, len(flights)+len(hotels)+len(alternatives))
	pool = append(pool, flights...)
	pool = append(pool, hotels...)
	pool = append(pool, alternatives...)

	filtered := make([]model.Option, 0, len(pool))
	for _, option := range pool {
		if option.ValuePerUnit >= prefs.MinValuePerUnit {
			filtered = append(filtered, option)
		}
	}

	r.logger.Debug("Option pools built",
		"flights", len(flights),
		"hotels", len(hotels),
		"alternatives", len(alternatives),
		"meeting_min_value", len(filtered))

	order(filtered, prefs)
	top := filtered
	if len(top) > MaxRecommendations {
		top = top[:MaxRecommendations]
	}

	result := model.RecommendationResult{
		Recommendations: top,
		DataProvenance:  provenance,
		Summary:         summarize(pool, top),
		Criteria: model.SearchCriteria{
			Origin:         origin,
			Destination:    destination,
			TravelDate:     date.Format(time.DateOnly),
			AvailableUnits: available,
			Preferences:    prefs,
		},
	}

	if len(top) > 0 {
		result.BestOverall = &top[0]
		result.BestValuePerUnit = &top[bestValueIndex(top)]
		return result
	}

	guidance := r.Insufficient(available, seen.cheapest)
	result.Guidance = &guidance
	return result
}

func (r *Recommender) flightOptions(ctx context.Context, origin, destination string, date time.Time, available int, prefs model.UserPreferences, seen *candidates) ([]model.Option, model.Provenance) {
	if r.routes == nil {
		return nil, ""
	}

	search := r.routes.FindOptimalRoutes(ctx, origin, destination, date, routing.SearchOptions{
		MaxRoutes:    flightRouteLimit,
		SkipLayovers: prefs.MaxLayovers == 0,
	})

	var options []model.Option
	for _, ranked := range search.Routes {
		route := ranked.Route
		seen.see(route.TotalUnits)
		if route.TotalUnits > available {
			continue
		}

		cash := route.CashPrice
		if cash <= 0 {
			cash = float64(route.TotalUnits) * fallbackCentsPerMile
		}
		v := r.calculator.FlightValue(route.TotalUnits, cash, route.TotalFees)

		description := route.Description()
		options = append(options, model.Option{
			ID:             model.NewOptionID(model.RedemptionFlight, route.RouteType, description, route.Airline, route.TotalUnits),
			Kind:           model.RedemptionFlight,
			Name:           description,
			CostUnits:      route.TotalUnits,
			CashEquivalent: v.CashPrice,
			Fees:           route.TotalFees,
			ValuePerUnit:   v.ValuePerUnit,
			SavingsVsCash:  v.SavingsVsCash,
			IsAffordable:   true,
			IsGoodValue:    v.IsGoodValue,
			Flight: &model.FlightDetails{
				RouteType:     route.RouteType,
				Route:         description,
				Airline:       route.Airline,
				Provenance:    route.Provenance,
				Segments:      route.Segments,
				DurationHours: route.DurationHours,
			},
		})
	}

	return options, search.Provenance
}

func (r *Recommender) hotelOptions(destination string, available int, pref model.HotelPreference, seen *candidates) []model.Option {
	var options []model.Option
	for _, hotel := range r.catalog.Hotels {
		if !pref.Accepts(hotel.Category) {
			continue
		}
		seen.see(hotel.Points)
		if hotel.Points > available {
			continue
		}

		v := r.calculator.HotelValue(hotel.Points, hotel.CashValue, 0)
		options = append(options, model.Option{
			ID:             model.NewOptionID(model.RedemptionHotel, hotel.Chain, hotel.Category, destination),
			Kind:           model.RedemptionHotel,
			Name:           fmt.Sprintf("%s category %d", hotel.Chain, hotel.Category),
			CostUnits:      hotel.Points,
			CashEquivalent: hotel.CashValue,
			ValuePerUnit:   v.ValuePerUnit,
			SavingsVsCash:  v.SavingsVsCash,
			IsAffordable:   true,
			IsGoodValue:    v.IsGoodValue,
			Hotel: &model.HotelDetails{
				Chain:    hotel.Chain,
				Category: hotel.Category,
				Location: destination,
			},
		})
	}

	sortByValue(options)
	if len(options) > MaxHotelOptions {
		options = options[:MaxHotelOptions]
	}
	return options
}

// alternatives returns gift cards then statement credits the balance covers.
func (r *Recommender) alternatives(available int, seen *candidates) []model.Option {
	var options []model.Option

	for _, card := range r.catalog.GiftCards {
		seen.see(card.Points)
		if card.Points > available {
			continue
		}
		v := r.calculator.CashValue(model.RedemptionGiftCard, card.Points, card.Value)
		options = append(options, model.Option{
			ID:             model.NewOptionID(model.RedemptionGiftCard, card.Merchant, card.Points),
			Kind:           model.RedemptionGiftCard,
			Name:           card.Merchant + " gift card",
			CostUnits:      card.Points,
			CashEquivalent: card.Value,
			ValuePerUnit:   v.ValuePerUnit,
			SavingsVsCash:  v.SavingsVsCash,
			IsAffordable:   true,
			IsGoodValue:    v.IsGoodValue,
			GiftCard:       &model.GiftCardDetails{Merchant: card.Merchant},
		})
	}

	for _, credit := range r.catalog.StatementCredits {
		seen.see(credit.Points)
		if credit.Points > available {
			continue
		}
		v := r.calculator.CashValue(model.RedemptionStatementCredit, credit.Points, credit.CashValue())
		options = append(options, model.Option{
			ID:              model.NewOptionID(model.RedemptionStatementCredit, credit.Program, credit.Points),
			Kind:            model.RedemptionStatementCredit,
			Name:            credit.Program,
			CostUnits:       credit.Points,
			CashEquivalent:  v.CashPrice,
			ValuePerUnit:    v.ValuePerUnit,
			SavingsVsCash:   v.SavingsVsCash,
			IsAffordable:    true,
			IsGoodValue:     v.IsGoodValue,
			StatementCredit: &model.StatementCreditDetails{Program: credit.Program},
		})
	}

	return options
}

// order applies the preferred ordering in place. Value wins over fees when
// both are requested; with neither the merge order stands.
func order(options []model.Option, prefs model.UserPreferences) {
	switch {
	case prefs.MaximizeValue:
		sortByValue(options)
	case prefs.MinimizeFees:
		sort.SliceStable(options, func(i, j int) bool {
			return options[i].Fees < options[j].Fees
		})
	}
}

func sortByValue(options []model.Option) {
	sort.SliceStable(options, func(i, j int) bool {
		return options[i].ValuePerUnit > options[j].ValuePerUnit
	})
}

// bestValueIndex returns the first option holding the highest value per unit.
func bestValueIndex(options []model.Option) int {
	best := 0
	for i := 1; i < len(options); i++ {
		if options[i].ValuePerUnit > options[best].ValuePerUnit {
			best = i
		}
	}
	return best
}

func summarize(pool, top []model.Option) model.Summary {
	s := model.Summary{
		TotalOptionsFound:        len(pool),
		RecommendationsGenerated: len(top),
	}
	for _, option := range pool {
		if option.IsAffordable {
			s.AffordableOptions++
		}
	}
	if len(top) > 0 {
		var total float64
		for _, option := range top {
			total += option.ValuePerUnit
		}
		s.AverageValuePerUnit = total / float64(len(top))
	}
	return s
}
