package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFlightRoute_TotalCost(t *testing.T) {
	route := FlightRoute{TotalUnits: 35000, TotalFees: 50}
	assert.InDelta(t, 35050.0, route.TotalCost(), 1e-9)
}

func TestFlightRoute_Description(t *testing.T) {
	direct := FlightRoute{Origin: "JFK", Destination: "LAX", RouteType: RouteDirect}
	assert.Equal(t, "JFK → LAX", direct.Description())

	layover := FlightRoute{
		Origin:          "JFK",
		Destination:     "LAX",
		RouteType:       RouteLayover,
		LayoverAirports: []string{"ATL"},
	}
	assert.Equal(t, "JFK → ATL → LAX", layover.Description())
}

func TestHotelPreference_Accepts(t *testing.T) {
	tests := []struct {
		pref     HotelPreference
		category int
		want     bool
	}{
		{HotelAny, 1, true},
		{HotelAny, 8, true},
		{HotelBudget, 2, true},
		{HotelBudget, 3, false},
		{HotelMidRange, 3, true},
		{HotelMidRange, 5, true},
		{HotelMidRange, 6, false},
		{HotelLuxury, 6, true},
		{HotelLuxury, 5, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.pref.Accepts(tt.category), "%s category %d", tt.pref, tt.category)
	}
}

func TestUserPreferences_Validate(t *testing.T) {
	prefs := DefaultPreferences()
	assert.NoError(t, prefs.Validate())

	prefs.MaxLayovers = -1
	assert.Error(t, prefs.Validate())

	prefs = DefaultPreferences()
	prefs.HotelPreference = "palatial"
	assert.Error(t, prefs.Validate())
}

func TestNewOptionID_Deterministic(t *testing.T) {
	a := NewOptionID(RedemptionHotel, "hyatt", 4)
	b := NewOptionID(RedemptionHotel, "hyatt", 4)
	c := NewOptionID(RedemptionHotel, "hyatt", 5)

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
}
