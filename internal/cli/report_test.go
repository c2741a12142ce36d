package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/Veraticus/the-points-must-flow/internal/award"
	"github.com/Veraticus/the-points-must-flow/internal/flightdata"
	"github.com/Veraticus/the-points-must-flow/internal/model"
	"github.com/Veraticus/the-points-must-flow/internal/recommend"
	"github.com/Veraticus/the-points-must-flow/internal/routing"
	"github.com/Veraticus/the-points-must-flow/internal/service"
	"github.com/Veraticus/the-points-must-flow/internal/valuation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var travelDate = time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)

func mockOptimizer() *routing.Optimizer {
	chart := award.NewChart()
	source := flightdata.NewFallbackSource(nil, flightdata.NewMockGenerator(chart))
	return routing.NewOptimizer(routing.NewConstructor(source, chart, routing.DefaultOptions()), nil)
}

func TestRenderRecommendations(t *testing.T) {
	result := recommend.NewRecommender(mockOptimizer(), nil, nil).
		Recommend(context.Background(), "JFK", "LAX", travelDate, 50000, model.DefaultPreferences())

	out := RenderRecommendations(result)

	assert.Contains(t, out, "50,000")
	assert.Contains(t, out, "JFK → LAX")
	assert.Contains(t, out, "2024-06-15")
	assert.Contains(t, out, "estimates")
	assert.Contains(t, out, "hyatt category 1")
	assert.Contains(t, out, "hotel/hyatt")
	assert.Contains(t, out, "3,500")
	assert.Contains(t, out, "$70.00")
	assert.Contains(t, out, "2.00¢")
	assert.Contains(t, out, "Excellent")
	assert.Contains(t, out, "Best overall: hyatt category 1")
	assert.Contains(t, out, "16 options found")
}

func TestRenderRecommendations_Guidance(t *testing.T) {
	result := recommend.NewRecommender(mockOptimizer(), nil, nil).
		Recommend(context.Background(), "JFK", "LAX", travelDate, 2000, model.DefaultPreferences())
	require.NotNil(t, result.Guidance)

	out := RenderRecommendations(result)

	assert.Contains(t, out, "No redemptions meet your balance")
	assert.Contains(t, out, "Not enough points")
	assert.Contains(t, out, "You need 1,500 more units")
	assert.Contains(t, out, "Dine at partner restaurants")
	assert.Contains(t, out, "chase_ur_to_hyatt → 2,500 points")
}

func TestRenderRoutes(t *testing.T) {
	search := mockOptimizer().FindOptimalRoutes(context.Background(), "JFK", "LAX", travelDate, routing.SearchOptions{
		Hubs: []string{"ATL", "XXX"},
	})

	out := RenderRoutes(search)

	assert.Contains(t, out, "Routes JFK → LAX")
	assert.Contains(t, out, "JFK → ATL → LAX")
	assert.Contains(t, out, "40,000")
	assert.Contains(t, out, "3 routes found (1 direct, 2 via hubs)")
	assert.Contains(t, out, "JFK → XXX → LAX saves 14,975 points")
}

func TestRenderRoutes_Empty(t *testing.T) {
	out := RenderRoutes(routing.RouteSearch{Message: "No routes available for the specified criteria."})
	assert.Contains(t, out, "No routes available")
}

func TestRenderValuation(t *testing.T) {
	v := valuation.NewCalculator().FlightValue(25000, 400, 50)

	out := RenderValuation(v)

	assert.Contains(t, out, "25,000 points")
	assert.Contains(t, out, "$350.00")
	assert.Contains(t, out, "1.40¢")
	assert.Contains(t, out, "Poor")
}

func TestRenderSampleAnalysis(t *testing.T) {
	calc := valuation.NewCalculator()
	out := RenderSampleAnalysis(calc.Analyze(valuation.SampleOptions()))

	assert.Contains(t, out, "JFK to LAX Direct")
	assert.Contains(t, out, "Marriott Hotel Night")
	assert.Contains(t, out, "Amazon Gift Card")
	assert.Contains(t, out, "Best: JFK to LAX Direct")
	assert.Contains(t, out, "Worst: Amazon Gift Card")
}

func TestRenderAirport(t *testing.T) {
	out := RenderAirport(service.AirportInfo{Code: "LAX", Name: "Los Angeles Intl", City: "Los Angeles", Country: "US"})

	assert.Contains(t, out, "LAX")
	assert.Contains(t, out, "Los Angeles Intl")
	assert.Contains(t, out, "US")
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, service.AirportInfo{Code: "JFK"}))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "JFK", decoded["code"])
}

func TestKindIcon(t *testing.T) {
	assert.Equal(t, PlaneIcon, KindIcon(model.RedemptionFlight))
	assert.Equal(t, HotelIcon, KindIcon(model.RedemptionHotel))
	assert.Equal(t, GiftIcon, KindIcon(model.RedemptionGiftCard))
	assert.Equal(t, CardIcon, KindIcon(model.RedemptionStatementCredit))
	assert.Empty(t, KindIcon("cruise"))
}

func TestRenderAwardChart(t *testing.T) {
	out := RenderAwardChart(award.DomesticZones(), award.InternationalZones())

	assert.Contains(t, out, "0-500 mi")
	assert.Contains(t, out, "501-1,000 mi")
	assert.Contains(t, out, "2,001+ mi")
	assert.Contains(t, out, "0-1,999 mi")
	assert.Contains(t, out, "2,000-3,999 mi")
	assert.Contains(t, out, "8,000+ mi")
	assert.Contains(t, out, "35,000")
	assert.Contains(t, out, "70,000")
}
