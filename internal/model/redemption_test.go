package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRedemptionOption_ValuePerUnit(t *testing.T) {
	tests := []struct {
		name      string
		option    RedemptionOption
		wantNet   float64
		wantValue float64
	}{
		{
			name: "flight with fees",
			option: RedemptionOption{
				Type:           RedemptionFlight,
				Name:           "JFK to LAX Direct",
				UnitsCost:      25000,
				CashEquivalent: 400,
				TaxesFees:      50,
			},
			wantNet:   350,
			wantValue: 1.4,
		},
		{
			name: "gift card without fees",
			option: RedemptionOption{
				Type:           RedemptionGiftCard,
				UnitsCost:      10000,
				CashEquivalent: 100,
			},
			wantNet:   100,
			wantValue: 1.0,
		},
		{
			name: "zero units",
			option: RedemptionOption{
				Type:           RedemptionHotel,
				UnitsCost:      0,
				CashEquivalent: 300,
			},
			wantNet:   300,
			wantValue: 0,
		},
		{
			name: "negative units",
			option: RedemptionOption{
				Type:           RedemptionHotel,
				UnitsCost:      -500,
				CashEquivalent: 300,
			},
			wantNet:   300,
			wantValue: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.wantNet, tt.option.NetCashValue(), 1e-9)
			assert.InDelta(t, tt.wantValue, tt.option.ValuePerUnit(), 1e-9)
		})
	}
}

func TestRedemptionType_Valid(t *testing.T) {
	assert.True(t, RedemptionFlight.Valid())
	assert.True(t, RedemptionStatementCredit.Valid())
	assert.False(t, RedemptionType("transfer").Valid())
}

func TestProvenance_Combine(t *testing.T) {
	assert.Equal(t, ProvenanceLive, ProvenanceLive.Combine(ProvenanceLive))
	assert.Equal(t, ProvenanceMock, ProvenanceLive.Combine(ProvenanceMock))
	assert.Equal(t, ProvenanceMock, ProvenanceMock.Combine(ProvenanceLive))
	assert.Equal(t, ProvenanceLive, Provenance("").Combine(ProvenanceLive))
}
