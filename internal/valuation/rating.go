package valuation

import "github.com/Veraticus/the-points-must-flow/internal/model"

// Rating is a human-readable value band.
type Rating string

// Value bands, best first.
const (
	RatingExcellent Rating = "Excellent"
	RatingGood      Rating = "Good"
	RatingFair      Rating = "Fair"
	RatingPoor      Rating = "Poor"
)

// Rate buckets a cents-per-unit figure.
func Rate(valuePerUnit float64) Rating {
	switch {
	case valuePerUnit >= 2.0:
		return RatingExcellent
	case valuePerUnit >= 1.5:
		return RatingGood
	case valuePerUnit >= 1.0:
		return RatingFair
	default:
		return RatingPoor
	}
}

// SampleAnalysis summarizes a comparison of reference redemptions.
type SampleAnalysis struct {
	Best         *Comparison  `json:"best_value"`
	Worst        *Comparison  `json:"worst_value"`
	Comparisons  []Comparison `json:"sample_analysis"`
	AverageValue float64      `json:"average_value"`
}

// SampleOptions are three typical redemptions used for calibration.
func SampleOptions() []model.RedemptionOption {
	return []model.RedemptionOption{
		{
			Type:           model.RedemptionFlight,
			Name:           "JFK to LAX Direct",
			Description:    "American Airlines direct flight",
			UnitsCost:      25000,
			CashEquivalent: 400,
			TaxesFees:      50,
		},
		{
			Type:           model.RedemptionHotel,
			Name:           "Marriott Hotel Night",
			Description:    "Marriott Bonvoy redemption",
			UnitsCost:      30000,
			CashEquivalent: 300,
		},
		{
			Type:           model.RedemptionGiftCard,
			Name:           "Amazon Gift Card",
			Description:    "Amazon gift card redemption",
			UnitsCost:      10000,
			CashEquivalent: 100,
		},
	}
}

// Analyze compares options and reports the best, worst and mean value.
func (c *Calculator) Analyze(options []model.RedemptionOption) SampleAnalysis {
	comparisons := c.Compare(options)
	analysis := SampleAnalysis{Comparisons: comparisons}
	if len(comparisons) == 0 {
		return analysis
	}

	analysis.Best = &comparisons[0]
	analysis.Worst = &comparisons[len(comparisons)-1]

	var total float64
	for _, cmp := range comparisons {
		total += cmp.Valuation.ValuePerUnit
	}
	analysis.AverageValue = total / float64(len(comparisons))

	return analysis
}
