package recommend

import (
	"fmt"

	"github.com/Veraticus/the-points-must-flow/internal/common"
	"github.com/Veraticus/the-points-must-flow/internal/model"
)

var earnMoreSuggestions = []string{
	"Apply for a new credit card with sign-up bonus",
	"Use shopping portals for bonus miles",
	"Dine at partner restaurants",
	"Transfer points from other programs",
}

// Insufficient explains a shortfall between a balance and the units a
// redemption needs, and lists what the balance can do instead. The shortfall
// never goes below zero.
func (r *Recommender) Insufficient(available, required int) model.InsufficientGuidance {
	short := max(required-available, 0)

	alternatives := r.alternatives(available, &candidates{})
	if alternatives == nil {
		alternatives = []model.Option{}
	}

	paths := make([]model.TransferPath, 0, len(r.catalog.Transfers))
	for _, t := range r.catalog.Transfers {
		transferred := t.Apply(available)
		paths = append(paths, model.TransferPath{
			Name:             t.Name,
			Ratio:            t.Ratio,
			Bonus:            t.Bonus,
			TransferredUnits: transferred,
			CoversShortfall:  required > 0 && transferred >= required,
		})
	}

	return model.InsufficientGuidance{
		AvailableUnits: available,
		RequiredUnits:  required,
		UnitsShort:     short,
		EarnMore: model.EarnMoreAdvice{
			Description: fmt.Sprintf("You need %s more units", common.FormatUnits(short)),
			Suggestions: append([]string(nil), earnMoreSuggestions...),
		},
		Alternatives:  alternatives,
		TransferPaths: paths,
	}
}
