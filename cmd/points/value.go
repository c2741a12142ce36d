package main

import (
	"fmt"

	"github.com/Veraticus/the-points-must-flow/internal/cli"
	"github.com/Veraticus/the-points-must-flow/internal/common"
	"github.com/Veraticus/the-points-must-flow/internal/model"
	"github.com/Veraticus/the-points-must-flow/internal/valuation"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func valueCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "value",
		Short: "Value a single redemption in cents per point",
		Long: `Compute the net value and cents-per-point of spending points on a
redemption, or compare a set of typical redemptions with --sample.

Example:
  points value --type flight --points 25000 --cash 400 --fees 50`,
		Args: cobra.NoArgs,
		RunE: runValue,
	}

	// Flags
	cmd.Flags().String("type", string(model.RedemptionFlight), "Redemption type (flight, hotel, giftcard, statement_credit)")
	cmd.Flags().Int("points", 0, "Points or miles spent")
	cmd.Flags().Float64("cash", 0, "Cash price of the same redemption")
	cmd.Flags().Float64("fees", 0, "Taxes and fees paid in cash")
	cmd.Flags().Bool("sample", false, "Analyze a set of typical redemptions")
	cmd.Flags().String("format", formatText, "Output format (text, json)")

	// Bind to viper
	_ = viper.BindPFlag("value.format", cmd.Flags().Lookup("format"))

	return cmd
}

func runValue(cmd *cobra.Command, _ []string) error {
	format := viper.GetString("value.format")
	if err := validateFormat(format); err != nil {
		return err
	}

	calculator := &valuation.Calculator{GoodValueThreshold: appConfig.GoodValueThreshold}

	if sample, _ := cmd.Flags().GetBool("sample"); sample {
		analysis := calculator.Analyze(valuation.SampleOptions())
		return writeOutput(cmd.OutOrStdout(), format, analysis, func() string {
			return cli.RenderSampleAnalysis(analysis)
		})
	}

	kind, _ := cmd.Flags().GetString("type")
	points, _ := cmd.Flags().GetInt("points")
	cash, _ := cmd.Flags().GetFloat64("cash")
	fees, _ := cmd.Flags().GetFloat64("fees")

	option := model.RedemptionOption{
		Type:           model.RedemptionType(kind),
		UnitsCost:      points,
		CashEquivalent: cash,
		TaxesFees:      fees,
	}
	v, ok := calculator.Valuate(option)
	if !ok {
		return common.NewUserError(fmt.Sprintf("unknown redemption type %q", kind), nil)
	}
	if points <= 0 {
		return common.NewUserError("--points must be positive",
			fmt.Errorf("%w: %d", common.ErrInvalidUnits, points))
	}

	return writeOutput(cmd.OutOrStdout(), format, v, func() string {
		return cli.RenderValuation(v)
	})
}
