// Package model defines the records shared by the valuation, routing and
// recommendation packages.
package model

// RedemptionType identifies what a block of points or miles is spent on.
type RedemptionType string

const (
	// RedemptionFlight is an award flight.
	RedemptionFlight RedemptionType = "flight"
	// RedemptionHotel is an award hotel night.
	RedemptionHotel RedemptionType = "hotel"
	// RedemptionGiftCard is a merchant gift card bought with points.
	RedemptionGiftCard RedemptionType = "giftcard"
	// RedemptionStatementCredit is a card statement credit bought with points.
	RedemptionStatementCredit RedemptionType = "statement_credit"
)

// Valid reports whether t is a known redemption type.
func (t RedemptionType) Valid() bool {
	switch t {
	case RedemptionFlight, RedemptionHotel, RedemptionGiftCard, RedemptionStatementCredit:
		return true
	default:
		return false
	}
}

// RedemptionOption is a single way to spend units, used for one comparison.
type RedemptionOption struct {
	Type           RedemptionType
	Name           string
	Description    string
	UnitsCost      int
	CashEquivalent float64
	TaxesFees      float64
}

// NetCashValue is the cash equivalent after taxes and fees.
func (o RedemptionOption) NetCashValue() float64 {
	return o.CashEquivalent - o.TaxesFees
}

// ValuePerUnit returns the net cash value in cents per unit spent.
// Options with no unit cost are worth nothing.
func (o RedemptionOption) ValuePerUnit() float64 {
	if o.UnitsCost <= 0 {
		return 0
	}
	return o.NetCashValue() / float64(o.UnitsCost) * 100
}
