package model

import (
	"fmt"

	"github.com/google/uuid"
)

// optionNamespace seeds deterministic option IDs.
var optionNamespace = uuid.MustParse("6f1c2f7e-4b0a-5d59-9a51-3d0f5b8c2e14")

// Option is a scored redemption in the recommendation pool. Every kind carries
// the same cost and value fields; exactly one of the detail pointers is set.
type Option struct {
	Flight          *FlightDetails          `json:"flight,omitempty"`
	Hotel           *HotelDetails           `json:"hotel,omitempty"`
	GiftCard        *GiftCardDetails        `json:"gift_card,omitempty"`
	StatementCredit *StatementCreditDetails `json:"statement_credit,omitempty"`
	ID              string                  `json:"id"`
	Kind            RedemptionType          `json:"kind"`
	Name            string                  `json:"name"`
	CostUnits       int                     `json:"cost_units"`
	CashEquivalent  float64                 `json:"cash_equivalent"`
	Fees            float64                 `json:"fees"`
	ValuePerUnit    float64                 `json:"value_per_unit"`
	SavingsVsCash   float64                 `json:"savings_vs_cash"`
	IsAffordable    bool                    `json:"is_affordable"`
	IsGoodValue     bool                    `json:"is_good_value"`
}

// FlightDetails is the flight payload of an Option.
type FlightDetails struct {
	RouteType     RouteType  `json:"route_type"`
	Route         string     `json:"route"`
	Airline       string     `json:"airline"`
	Provenance    Provenance `json:"provenance"`
	Segments      []Segment  `json:"segments"`
	DurationHours float64    `json:"duration_hours"`
}

// HotelDetails is the hotel payload of an Option.
type HotelDetails struct {
	Chain    string `json:"chain"`
	Location string `json:"location"`
	Category int    `json:"category"`
}

// GiftCardDetails is the gift card payload of an Option.
type GiftCardDetails struct {
	Merchant string `json:"merchant"`
}

// StatementCreditDetails is the statement credit payload of an Option.
type StatementCreditDetails struct {
	Program string `json:"program"`
}

// Subtype returns the kind-specific label shown next to the option type:
// the route type, hotel chain, merchant or program.
func (o Option) Subtype() string {
	switch {
	case o.Flight != nil:
		return string(o.Flight.RouteType)
	case o.Hotel != nil:
		return o.Hotel.Chain
	case o.GiftCard != nil:
		return o.GiftCard.Merchant
	case o.StatementCredit != nil:
		return o.StatementCredit.Program
	default:
		return ""
	}
}

// NewOptionID derives a stable identifier from the parts that make an option
// unique, so repeated searches produce identical IDs.
func NewOptionID(kind RedemptionType, parts ...any) string {
	key := string(kind)
	for _, p := range parts {
		key += fmt.Sprintf("|%v", p)
	}
	return uuid.NewSHA1(optionNamespace, []byte(key)).String()
}
