// Package valuation converts point costs and cash prices into a comparable
// cents-per-unit figure.
package valuation

import (
	"sort"

	"github.com/Veraticus/the-points-must-flow/internal/model"
)

// DefaultGoodValueThreshold is the cents-per-unit figure at or above which a
// redemption is labeled good value.
const DefaultGoodValueThreshold = 0.5

// Valuation is the computed value of spending units on a redemption.
type Valuation struct {
	Type          model.RedemptionType `json:"type"`
	UnitsCost     int                  `json:"units_cost"`
	CashPrice     float64              `json:"cash_price"`
	TaxesFees     float64              `json:"taxes_fees"`
	NetValue      float64              `json:"net_value"`
	ValuePerUnit  float64              `json:"value_per_unit"`
	SavingsVsCash float64              `json:"savings_vs_cash"`
	IsGoodValue   bool                 `json:"is_good_value"`
}

// Comparison pairs an option with its valuation.
type Comparison struct {
	Option    model.RedemptionOption `json:"option"`
	Valuation Valuation              `json:"valuation"`
}

// Calculator values redemptions. It holds no state beyond its threshold.
type Calculator struct {
	GoodValueThreshold float64
}

// NewCalculator returns a calculator using the default good-value threshold.
func NewCalculator() *Calculator {
	return &Calculator{GoodValueThreshold: DefaultGoodValueThreshold}
}

// Value computes the valuation of a redemption that carries fees.
func (c *Calculator) Value(unitsCost int, cashPrice, taxesFees float64) Valuation {
	net := cashPrice - taxesFees
	return c.build(unitsCost, cashPrice, taxesFees, net)
}

// FlightValue values an award flight.
func (c *Calculator) FlightValue(miles int, cashPrice, taxesFees float64) Valuation {
	v := c.Value(miles, cashPrice, taxesFees)
	v.Type = model.RedemptionFlight
	return v
}

// HotelValue values an award hotel stay.
func (c *Calculator) HotelValue(points int, cashPrice, taxesFees float64) Valuation {
	v := c.Value(points, cashPrice, taxesFees)
	v.Type = model.RedemptionHotel
	return v
}

// CashValue values gift cards and statement credits, which carry no fees:
// the full cash value counts.
func (c *Calculator) CashValue(kind model.RedemptionType, points int, cashValue float64) Valuation {
	v := c.build(points, cashValue, 0, cashValue)
	v.Type = kind
	return v
}

func (c *Calculator) build(units int, cash, fees, net float64) Valuation {
	vpu := perUnit(units, net)
	return Valuation{
		UnitsCost:     units,
		CashPrice:     cash,
		TaxesFees:     fees,
		NetValue:      net,
		ValuePerUnit:  vpu,
		IsGoodValue:   vpu >= c.GoodValueThreshold,
		SavingsVsCash: net,
	}
}

// perUnit never divides by a non-positive unit count and never reports a
// negative value.
func perUnit(units int, net float64) float64 {
	if units <= 0 || net <= 0 {
		return 0
	}
	return net / float64(units) * 100
}

// Valuate values an option according to its type.
func (c *Calculator) Valuate(option model.RedemptionOption) (Valuation, bool) {
	switch option.Type {
	case model.RedemptionFlight:
		return c.FlightValue(option.UnitsCost, option.CashEquivalent, option.TaxesFees), true
	case model.RedemptionHotel:
		return c.HotelValue(option.UnitsCost, option.CashEquivalent, option.TaxesFees), true
	case model.RedemptionGiftCard, model.RedemptionStatementCredit:
		return c.CashValue(option.Type, option.UnitsCost, option.CashEquivalent), true
	default:
		return Valuation{}, false
	}
}

// Compare values every option and orders them from best to worst value per
// unit. Options of unknown type are dropped; equal values keep input order.
func (c *Calculator) Compare(options []model.RedemptionOption) []Comparison {
	comparisons := make([]Comparison, 0, len(options))
	for _, option := range options {
		v, ok := c.Valuate(option)
		if !ok {
			continue
		}
		comparisons = append(comparisons, Comparison{Option: option, Valuation: v})
	}

	sort.SliceStable(comparisons, func(i, j int) bool {
		return comparisons[i].Valuation.ValuePerUnit > comparisons[j].Valuation.ValuePerUnit
	})

	return comparisons
}
