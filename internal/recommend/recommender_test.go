package recommend

import (
	"context"
	"testing"
	"time"

	"github.com/Veraticus/the-points-must-flow/internal/award"
	"github.com/Veraticus/the-points-must-flow/internal/catalog"
	"github.com/Veraticus/the-points-must-flow/internal/flightdata"
	"github.com/Veraticus/the-points-must-flow/internal/model"
	"github.com/Veraticus/the-points-must-flow/internal/routing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var travelDate = time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)

func mockOptimizer() *routing.Optimizer {
	chart := award.NewChart()
	source := flightdata.NewFallbackSource(nil, flightdata.NewMockGenerator(chart))
	constructor := routing.NewConstructor(source, chart, routing.DefaultOptions())
	return routing.NewOptimizer(constructor, routing.NewRanker())
}

// fakeFinder returns fixed routes and records the options it was called with.
type fakeFinder struct {
	routes []model.FlightRoute
	calls  []routing.SearchOptions
}

func (f *fakeFinder) FindOptimalRoutes(_ context.Context, _, _ string, _ time.Time, opts routing.SearchOptions) routing.RouteSearch {
	f.calls = append(f.calls, opts)
	ranked := routing.NewRanker().Rank(f.routes)
	return routing.RouteSearch{Routes: ranked, Provenance: model.ProvenanceLive}
}

func names(options []model.Option) []string {
	out := make([]string, 0, len(options))
	for _, o := range options {
		out = append(out, o.Name)
	}
	return out
}

func TestRecommend_DefaultPreferences(t *testing.T) {
	r := NewRecommender(mockOptimizer(), nil, nil)

	result := r.Recommend(context.Background(), "JFK", "LAX", travelDate, 50000, model.DefaultPreferences())

	assert.Equal(t, []string{
		"hyatt category 1",
		"hyatt category 2",
		"hyatt category 3",
		"hyatt category 4",
		"hyatt category 5",
	}, names(result.Recommendations))

	require.NotNil(t, result.BestOverall)
	require.NotNil(t, result.BestValuePerUnit)
	assert.Equal(t, "hyatt category 1", result.BestOverall.Name)
	assert.Equal(t, result.BestOverall.ID, result.BestValuePerUnit.ID, "ties pick the first maximum")
	assert.Nil(t, result.Guidance)

	// 4 flights, 5 hotels after the hotel cap, 5 gift cards and 2 credits.
	assert.Equal(t, 16, result.Summary.TotalOptionsFound)
	assert.Equal(t, 16, result.Summary.AffordableOptions)
	assert.Equal(t, 5, result.Summary.RecommendationsGenerated)
	assert.InDelta(t, 2.0, result.Summary.AverageValuePerUnit, 1e-9)

	assert.Equal(t, model.ProvenanceMock, result.DataProvenance)
	assert.Equal(t, "2024-06-15", result.Criteria.TravelDate)
	assert.Equal(t, 50000, result.Criteria.AvailableUnits)
	assert.Equal(t, model.DefaultPreferences(), result.Criteria.Preferences)

	hotel := result.Recommendations[0]
	assert.Equal(t, model.RedemptionHotel, hotel.Kind)
	require.NotNil(t, hotel.Hotel)
	assert.Equal(t, "LAX", hotel.Hotel.Location)
	assert.Equal(t, 3500, hotel.CostUnits)
	assert.True(t, hotel.IsGoodValue)
}

func TestRecommend_FlightOptions(t *testing.T) {
	prefs := model.DefaultPreferences()
	prefs.MinValuePerUnit = 0
	prefs.IncludeAlternatives = false
	prefs.HotelPreference = model.HotelLuxury
	prefs.MaximizeValue = false

	result := NewRecommender(mockOptimizer(), nil, nil).
		Recommend(context.Background(), "JFK", "LAX", travelDate, 50000, prefs)

	// Neither ordering preference: ranked flights first, then hotels.
	assert.Equal(t, []string{
		"JFK → LAX",
		"JFK → ATL → LAX",
		"JFK → ORD → LAX",
		"JFK → DFW → LAX",
		"hyatt category 6",
	}, names(result.Recommendations))

	direct := result.Recommendations[0]
	require.NotNil(t, direct.Flight)
	assert.Equal(t, model.RouteDirect, direct.Flight.RouteType)
	assert.Equal(t, "AA", direct.Flight.Airline)
	assert.Equal(t, model.ProvenanceMock, direct.Flight.Provenance)
	assert.Equal(t, 40000, direct.CostUnits)
	assert.InDelta(t, 50.0, direct.Fees, 1e-9)
	assert.InDelta(t, 297.0, direct.CashEquivalent, 1e-9)
	assert.InDelta(t, (297.0-50.0)/40000*100, direct.ValuePerUnit, 1e-9)
	assert.True(t, direct.IsGoodValue, "0.62 cents per mile clears the 0.5 threshold")

	require.NotNil(t, result.BestValuePerUnit)
	assert.Equal(t, "hyatt category 6", result.BestValuePerUnit.Name)
}

func TestRecommend_MinimizeFees(t *testing.T) {
	prefs := model.DefaultPreferences()
	prefs.MaximizeValue = false
	prefs.MinimizeFees = true
	prefs.MinValuePerUnit = 0
	prefs.IncludeAlternatives = false
	prefs.HotelPreference = model.HotelLuxury

	result := NewRecommender(mockOptimizer(), nil, nil).
		Recommend(context.Background(), "JFK", "LAX", travelDate, 50000, prefs)

	assert.Equal(t, []string{
		"hyatt category 6",
		"hyatt category 7",
		"hyatt category 8",
		"marriott category 6",
		"JFK → LAX",
	}, names(result.Recommendations))

	for i := 1; i < len(result.Recommendations); i++ {
		assert.LessOrEqual(t, result.Recommendations[i-1].Fees, result.Recommendations[i].Fees)
	}
}

func TestRecommend_MaximizeValueWinsOverFees(t *testing.T) {
	prefs := model.DefaultPreferences()
	prefs.MinimizeFees = true
	prefs.MinValuePerUnit = 0

	result := NewRecommender(mockOptimizer(), nil, nil).
		Recommend(context.Background(), "JFK", "LAX", travelDate, 50000, prefs)

	require.NotEmpty(t, result.Recommendations)
	for i := 1; i < len(result.Recommendations); i++ {
		assert.GreaterOrEqual(t, result.Recommendations[i-1].ValuePerUnit, result.Recommendations[i].ValuePerUnit)
	}
}

func TestRecommend_MinValueFilter(t *testing.T) {
	prefs := model.DefaultPreferences()
	prefs.MinValuePerUnit = 1.2
	prefs.HotelPreference = model.HotelMidRange

	result := NewRecommender(mockOptimizer(), nil, nil).
		Recommend(context.Background(), "JFK", "LAX", travelDate, 50000, prefs)

	assert.Equal(t, []string{
		"hyatt category 3",
		"hyatt category 4",
		"hyatt category 5",
		"chase_pay_yourself_back",
	}, names(result.Recommendations))
	for _, o := range result.Recommendations {
		assert.GreaterOrEqual(t, o.ValuePerUnit, 1.2)
	}
}

func TestRecommend_BudgetFilter(t *testing.T) {
	prefs := model.DefaultPreferences()
	prefs.MinValuePerUnit = 0

	result := NewRecommender(mockOptimizer(), nil, nil).
		Recommend(context.Background(), "JFK", "LAX", travelDate, 10000, prefs)

	for _, o := range result.Recommendations {
		assert.LessOrEqual(t, o.CostUnits, 10000, o.Name)
	}
	assert.Equal(t, 5+5+2, result.Summary.TotalOptionsFound, "five hotels, five gift cards and two credits fit")
}

func TestRecommend_ZeroCashFareUsesFallbackPrice(t *testing.T) {
	finder := &fakeFinder{routes: []model.FlightRoute{{
		Origin:        "BOS",
		Destination:   "MIA",
		RouteType:     model.RouteDirect,
		TotalUnits:    10000,
		TotalFees:     50,
		DurationHours: 3,
		Segments:      []model.Segment{{DepartureAirport: "BOS", ArrivalAirport: "MIA"}},
	}}}
	prefs := model.DefaultPreferences()
	prefs.IncludeAlternatives = false

	result := NewRecommender(finder, nil, &catalog.Catalog{}).
		Recommend(context.Background(), "BOS", "MIA", travelDate, 10000, prefs)

	require.Len(t, result.Recommendations, 1)
	flight := result.Recommendations[0]
	assert.InDelta(t, 200.0, flight.CashEquivalent, 1e-9)
	assert.InDelta(t, 1.5, flight.ValuePerUnit, 1e-9)
	assert.Equal(t, model.ProvenanceLive, result.DataProvenance)
}

func TestRecommend_MaxLayoversZeroSkipsLayovers(t *testing.T) {
	finder := &fakeFinder{}
	prefs := model.DefaultPreferences()

	r := NewRecommender(finder, nil, nil)
	r.Recommend(context.Background(), "JFK", "LAX", travelDate, 50000, prefs)
	prefs.MaxLayovers = 0
	r.Recommend(context.Background(), "JFK", "LAX", travelDate, 50000, prefs)

	require.Len(t, finder.calls, 2)
	assert.False(t, finder.calls[0].SkipLayovers)
	assert.True(t, finder.calls[1].SkipLayovers)
	assert.Equal(t, 5, finder.calls[0].MaxRoutes)
}

func TestRecommend_InsufficientBalance(t *testing.T) {
	cat := &catalog.Catalog{
		Hotels: []catalog.HotelAward{
			{Chain: "marriott", Category: 4, Points: 25000, CashValue: 250},
			{Chain: "hyatt", Category: 7, Points: 20000, CashValue: 400},
		},
		GiftCards: []catalog.GiftCard{
			{Merchant: "amazon", Points: 30000, Value: 300},
		},
		Transfers: catalog.Default().Transfers,
	}

	result := NewRecommender(mockOptimizer(), nil, cat).
		Recommend(context.Background(), "JFK", "LAX", travelDate, 15000, model.DefaultPreferences())

	assert.Empty(t, result.Recommendations)
	assert.Nil(t, result.BestOverall)
	assert.Nil(t, result.BestValuePerUnit)
	assert.Zero(t, result.Summary.TotalOptionsFound)
	assert.Zero(t, result.Summary.AverageValuePerUnit)

	require.NotNil(t, result.Guidance)
	g := result.Guidance
	assert.Equal(t, 15000, g.AvailableUnits)
	assert.Equal(t, 20000, g.RequiredUnits)
	assert.Equal(t, 5000, g.UnitsShort)
	assert.Equal(t, "You need 5,000 more units", g.EarnMore.Description)
	assert.Len(t, g.EarnMore.Suggestions, 4)
	assert.Empty(t, g.Alternatives)
	require.Len(t, g.TransferPaths, 4)
	assert.Equal(t, 18750, g.TransferPaths[0].TransferredUnits)
	assert.False(t, g.TransferPaths[0].CoversShortfall)
}

func TestRecommend_Idempotent(t *testing.T) {
	r := NewRecommender(mockOptimizer(), nil, nil)
	prefs := model.DefaultPreferences()
	prefs.MinValuePerUnit = 0

	first := r.Recommend(context.Background(), "JFK", "LAX", travelDate, 45000, prefs)
	second := r.Recommend(context.Background(), "JFK", "LAX", travelDate, 45000, prefs)

	assert.Equal(t, first, second)
}

func TestInsufficient(t *testing.T) {
	r := NewRecommender(nil, nil, nil)

	g := r.Insufficient(15000, 20000)

	assert.Equal(t, 5000, g.UnitsShort)
	assert.Equal(t, []string{
		"Apply for a new credit card with sign-up bonus",
		"Use shopping portals for bonus miles",
		"Dine at partner restaurants",
		"Transfer points from other programs",
	}, g.EarnMore.Suggestions)

	require.Len(t, g.Alternatives, 7)
	assert.Equal(t, model.RedemptionGiftCard, g.Alternatives[0].Kind)
	assert.Equal(t, "chase_pay_yourself_back", g.Alternatives[5].Name)
	assert.InDelta(t, 125.0, g.Alternatives[5].CashEquivalent, 1e-9)
	assert.InDelta(t, 1.25, g.Alternatives[5].ValuePerUnit, 1e-9)
	for _, alt := range g.Alternatives {
		assert.LessOrEqual(t, alt.CostUnits, 15000)
	}

	covering := r.Insufficient(15000, 18000)
	require.Len(t, covering.TransferPaths, 4)
	assert.True(t, covering.TransferPaths[0].CoversShortfall, "the 25% hyatt bonus turns 15,000 into 18,750")
	assert.False(t, covering.TransferPaths[1].CoversShortfall)
}

func TestInsufficient_NoShortfall(t *testing.T) {
	g := NewRecommender(nil, nil, nil).Insufficient(30000, 20000)

	assert.Zero(t, g.UnitsShort)
	assert.Equal(t, "You need 0 more units", g.EarnMore.Description)
}

func TestInsufficient_SmallBalance(t *testing.T) {
	g := NewRecommender(nil, nil, nil).Insufficient(500, 20000)

	assert.NotNil(t, g.Alternatives)
	assert.Empty(t, g.Alternatives)
	assert.Equal(t, "You need 19,500 more units", g.EarnMore.Description)
}
