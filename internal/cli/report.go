package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/Veraticus/the-points-must-flow/internal/award"
	"github.com/Veraticus/the-points-must-flow/internal/common"
	"github.com/Veraticus/the-points-must-flow/internal/model"
	"github.com/Veraticus/the-points-must-flow/internal/routing"
	"github.com/Veraticus/the-points-must-flow/internal/service"
	"github.com/Veraticus/the-points-must-flow/internal/valuation"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// WriteJSON writes v as indented JSON.
func WriteJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode json: %w", err)
	}
	return nil
}

// KindIcon returns the icon for a redemption type.
func KindIcon(kind model.RedemptionType) string {
	switch kind {
	case model.RedemptionFlight:
		return PlaneIcon
	case model.RedemptionHotel:
		return HotelIcon
	case model.RedemptionGiftCard:
		return GiftIcon
	case model.RedemptionStatementCredit:
		return CardIcon
	default:
		return ""
	}
}

// RatingStyle colors a value band.
func RatingStyle(r valuation.Rating) lipgloss.Style {
	switch r {
	case valuation.RatingExcellent, valuation.RatingGood:
		return SuccessStyle
	case valuation.RatingFair:
		return WarningStyle
	default:
		return ErrorStyle
	}
}

func centsPerUnit(v float64) string {
	return fmt.Sprintf("%.2f¢", v)
}

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(SubtleStyle).
		Headers(headers...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return BoldStyle.PaddingRight(1).PaddingLeft(1)
			}
			return TableCellStyle.PaddingLeft(1).PaddingRight(1)
		})
}

// RenderRecommendations formats a recommendation result.
func RenderRecommendations(result model.RecommendationResult) string {
	var b strings.Builder

	c := result.Criteria
	b.WriteString(FormatTitle(fmt.Sprintf("Redemptions for %s points: %s → %s on %s",
		common.FormatUnits(c.AvailableUnits), c.Origin, c.Destination, c.TravelDate)))
	b.WriteString("\n")

	if result.DataProvenance == model.ProvenanceMock {
		b.WriteString(FormatWarning("Flight prices are estimates; live flight data was unavailable."))
		b.WriteString("\n")
	}

	if len(result.Recommendations) == 0 {
		b.WriteString(FormatWarning("No redemptions meet your balance and preferences."))
		b.WriteString("\n")
		if result.Guidance != nil {
			b.WriteString(RenderGuidance(*result.Guidance))
		}
		return b.String()
	}

	t := newTable("#", "Type", "Redemption", "Cost", "Cash value", "Fees", "Value", "Rating")
	for i, o := range result.Recommendations {
		rating := valuation.Rate(o.ValuePerUnit)
		kind := string(o.Kind)
		if sub := o.Subtype(); sub != "" {
			kind += "/" + sub
		}
		t.Row(
			fmt.Sprintf("%d", i+1),
			KindIcon(o.Kind)+" "+kind,
			o.Name,
			common.FormatUnits(o.CostUnits),
			common.FormatMoney(o.CashEquivalent),
			common.FormatMoney(o.Fees),
			centsPerUnit(o.ValuePerUnit),
			RatingStyle(rating).Render(string(rating)),
		)
	}
	b.WriteString(t.String())
	b.WriteString("\n")

	var picks []string
	if result.BestOverall != nil {
		picks = append(picks, fmt.Sprintf("%s Best overall: %s", StarIcon, result.BestOverall.Name))
	}
	if result.BestValuePerUnit != nil {
		picks = append(picks, fmt.Sprintf("%s Best value: %s at %s", StarIcon,
			result.BestValuePerUnit.Name, centsPerUnit(result.BestValuePerUnit.ValuePerUnit)))
	}
	s := result.Summary
	picks = append(picks, SubtleStyle.Render(fmt.Sprintf(
		"%d options found, %d affordable, %d shown, average %s",
		s.TotalOptionsFound, s.AffordableOptions, s.RecommendationsGenerated, centsPerUnit(s.AverageValuePerUnit))))
	b.WriteString(RenderBox("Summary", strings.Join(picks, "\n")))
	b.WriteString("\n")

	return b.String()
}

// RenderGuidance formats the advice shown when the balance falls short.
func RenderGuidance(g model.InsufficientGuidance) string {
	var lines []string
	if g.RequiredUnits > 0 {
		lines = append(lines, fmt.Sprintf("Cheapest redemption needs %s points; you have %s.",
			common.FormatUnits(g.RequiredUnits), common.FormatUnits(g.AvailableUnits)))
	}
	lines = append(lines, BoldStyle.Render(g.EarnMore.Description))
	for _, s := range g.EarnMore.Suggestions {
		lines = append(lines, "  • "+s)
	}

	if len(g.Alternatives) > 0 {
		lines = append(lines, "", BoldStyle.Render("With your current balance:"))
		for _, o := range g.Alternatives {
			lines = append(lines, fmt.Sprintf("  %s %s: %s for %s points",
				KindIcon(o.Kind), o.Name, common.FormatMoney(o.CashEquivalent), common.FormatUnits(o.CostUnits)))
		}
	}

	if len(g.TransferPaths) > 0 {
		lines = append(lines, "", BoldStyle.Render("Transfer partners:"))
		for _, p := range g.TransferPaths {
			line := fmt.Sprintf("  %s → %s points", p.Name, common.FormatUnits(p.TransferredUnits))
			if p.CoversShortfall {
				line += " " + SuccessStyle.Render(SuccessIcon+" covers it")
			}
			lines = append(lines, line)
		}
	}

	return RenderBox("Not enough points", strings.Join(lines, "\n")) + "\n"
}

// RenderRoutes formats an optimal-route search.
func RenderRoutes(search routing.RouteSearch) string {
	var b strings.Builder

	if search.Best == nil {
		b.WriteString(FormatWarning(search.Message))
		b.WriteString("\n")
		return b.String()
	}

	best := search.Best.Route
	b.WriteString(FormatTitle(fmt.Sprintf("Routes %s → %s", best.Origin, best.Destination)))
	b.WriteString("\n")
	if search.Provenance == model.ProvenanceMock {
		b.WriteString(FormatWarning("Using estimated flight data."))
		b.WriteString("\n")
	}

	t := newTable("#", "Route", "Type", "Points", "Fees", "Hours", "Airline", "Score")
	for i, r := range search.Routes {
		t.Row(
			fmt.Sprintf("%d", i+1),
			r.Route.Description(),
			string(r.Route.RouteType),
			common.FormatUnits(r.Route.TotalUnits),
			common.FormatMoney(r.Route.TotalFees),
			fmt.Sprintf("%.0f", r.Route.DurationHours),
			r.Route.Airline,
			fmt.Sprintf("%.4f", r.FinalScore),
		)
	}
	b.WriteString(t.String())
	b.WriteString("\n")

	b.WriteString(SubtleStyle.Render(fmt.Sprintf("%d routes found (%d direct, %d via hubs)",
		search.TotalRoutesFound, search.DirectCount, search.LayoverCount)))
	b.WriteString("\n")

	for _, opp := range search.SavingsOpportunities {
		b.WriteString(FormatSuccess(fmt.Sprintf("%s saves %s points (%.1f%%) over flying direct",
			opp.Route.Description(), common.FormatUnits(int(opp.Savings.Savings)), opp.Savings.SavingsPercentage)))
		b.WriteString("\n")
	}

	return b.String()
}

// RenderValuation formats a single valuation.
func RenderValuation(v valuation.Valuation) string {
	rating := valuation.Rate(v.ValuePerUnit)
	lines := []string{
		fmt.Sprintf("Cost:        %s points", common.FormatUnits(v.UnitsCost)),
		fmt.Sprintf("Cash price:  %s", common.FormatMoney(v.CashPrice)),
		fmt.Sprintf("Fees:        %s", common.FormatMoney(v.TaxesFees)),
		fmt.Sprintf("Net value:   %s", common.FormatMoney(v.NetValue)),
		fmt.Sprintf("Value:       %s per point", centsPerUnit(v.ValuePerUnit)),
		"Rating:      " + RatingStyle(rating).Render(string(rating)),
	}
	return RenderBox(fmt.Sprintf("%s %s valuation", KindIcon(v.Type), v.Type), strings.Join(lines, "\n")) + "\n"
}

// RenderSampleAnalysis formats a comparison of reference redemptions.
func RenderSampleAnalysis(a valuation.SampleAnalysis) string {
	var b strings.Builder
	b.WriteString(FormatTitle("Sample redemption analysis"))
	b.WriteString("\n")

	t := newTable("Redemption", "Type", "Cost", "Net value", "Value", "Rating")
	for _, c := range a.Comparisons {
		rating := valuation.Rate(c.Valuation.ValuePerUnit)
		t.Row(
			c.Option.Name,
			KindIcon(c.Option.Type)+" "+string(c.Option.Type),
			common.FormatUnits(c.Option.UnitsCost),
			common.FormatMoney(c.Valuation.NetValue),
			centsPerUnit(c.Valuation.ValuePerUnit),
			RatingStyle(rating).Render(string(rating)),
		)
	}
	b.WriteString(t.String())
	b.WriteString("\n")

	if a.Best != nil && a.Worst != nil {
		b.WriteString(fmt.Sprintf("Best: %s  Worst: %s  Average: %s\n",
			a.Best.Option.Name, a.Worst.Option.Name, centsPerUnit(a.AverageValue)))
	}
	return b.String()
}

// RenderAirport formats an airport lookup.
func RenderAirport(info service.AirportInfo) string {
	lines := []string{
		fmt.Sprintf("Name:    %s", info.Name),
		fmt.Sprintf("City:    %s", info.City),
		fmt.Sprintf("Country: %s", info.Country),
	}
	return RenderBox(PlaneIcon+" "+info.Code, strings.Join(lines, "\n")) + "\n"
}

// RenderAwardChart formats the domestic and international award zones.
func RenderAwardChart(domestic, international []award.Zone) string {
	var b strings.Builder
	b.WriteString(FormatTitle("Award chart"))
	b.WriteString("\n")

	t := newTable("Chart", "Distance", "Points")
	prev := 0
	for _, z := range domestic {
		t.Row("domestic", zoneRange(prev, z.MaxDistance, true), common.FormatUnits(z.Points))
		prev = z.MaxDistance
	}
	prev = 0
	for _, z := range international {
		t.Row("international", zoneRange(prev, z.MaxDistance, false), common.FormatUnits(z.Points))
		prev = z.MaxDistance
	}
	b.WriteString(t.String())
	b.WriteString("\n")
	b.WriteString(SubtleStyle.Render(fmt.Sprintf("Nonstop routes over %s miles price on the international chart.",
		common.FormatUnits(award.InternationalThreshold))))
	b.WriteString("\n")
	return b.String()
}

// zoneRange labels a zone band. Inclusive zones end at their bound; exclusive
// zones end one mile short of it.
func zoneRange(lower, upper int, inclusive bool) string {
	first := lower
	if inclusive && lower > 0 {
		first++
	}
	if upper == 0 {
		return fmt.Sprintf("%s+ mi", common.FormatUnits(first))
	}
	last := upper
	if !inclusive {
		last--
	}
	return fmt.Sprintf("%s-%s mi", common.FormatUnits(first), common.FormatUnits(last))
}
