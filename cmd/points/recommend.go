package main

import (
	"github.com/Veraticus/the-points-must-flow/internal/cli"
	"github.com/Veraticus/the-points-must-flow/internal/common"
	"github.com/Veraticus/the-points-must-flow/internal/model"
	"github.com/Veraticus/the-points-must-flow/internal/recommend"
	"github.com/Veraticus/the-points-must-flow/internal/valuation"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func recommendCmd() *cobra.Command {
	defaults := model.DefaultPreferences()

	cmd := &cobra.Command{
		Use:   "recommend <origin> <destination> <date> <points>",
		Short: "Recommend the best redemptions for a balance",
		Long: `Search award flights, hotel nights, gift cards and statement credits
that the balance covers, and list the top five by value per point.

Example:
  points recommend JFK LAX 2024-06-15 50000`,
		Args: cobra.ExactArgs(4),
		RunE: runRecommend,
	}

	// Flags
	cmd.Flags().Bool("maximize-value", defaults.MaximizeValue, "Order by value per point")
	cmd.Flags().Bool("minimize-fees", defaults.MinimizeFees, "Order by fees when not maximizing value")
	cmd.Flags().Bool("prefer-direct", defaults.PreferDirectFlights, "Prefer nonstop flights")
	cmd.Flags().Int("max-layovers", defaults.MaxLayovers, "Maximum layovers; 0 searches nonstop flights only")
	cmd.Flags().String("hotel", string(defaults.HotelPreference), "Hotel tier (any, budget, mid-range, luxury)")
	cmd.Flags().Bool("alternatives", defaults.IncludeAlternatives, "Include gift cards and statement credits")
	cmd.Flags().Float64("min-value", defaults.MinValuePerUnit, "Minimum value in cents per point")
	cmd.Flags().String("format", formatText, "Output format (text, json)")
	cmd.Flags().Bool("progress", true, "Show hub search progress")

	// Bind to viper
	_ = viper.BindPFlag("recommend.maximize_value", cmd.Flags().Lookup("maximize-value"))
	_ = viper.BindPFlag("recommend.minimize_fees", cmd.Flags().Lookup("minimize-fees"))
	_ = viper.BindPFlag("recommend.prefer_direct", cmd.Flags().Lookup("prefer-direct"))
	_ = viper.BindPFlag("recommend.max_layovers", cmd.Flags().Lookup("max-layovers"))
	_ = viper.BindPFlag("recommend.hotel", cmd.Flags().Lookup("hotel"))
	_ = viper.BindPFlag("recommend.alternatives", cmd.Flags().Lookup("alternatives"))
	_ = viper.BindPFlag("recommend.min_value", cmd.Flags().Lookup("min-value"))
	_ = viper.BindPFlag("recommend.format", cmd.Flags().Lookup("format"))
	_ = viper.BindPFlag("recommend.progress", cmd.Flags().Lookup("progress"))

	return cmd
}

func recommendPreferences() (model.UserPreferences, error) {
	hotel, err := model.ParseHotelPreference(viper.GetString("recommend.hotel"))
	if err != nil {
		return model.UserPreferences{}, common.NewUserError("invalid hotel preference", err)
	}

	prefs := model.UserPreferences{
		MaximizeValue:       viper.GetBool("recommend.maximize_value"),
		MinimizeFees:        viper.GetBool("recommend.minimize_fees"),
		PreferDirectFlights: viper.GetBool("recommend.prefer_direct"),
		MaxLayovers:         viper.GetInt("recommend.max_layovers"),
		HotelPreference:     hotel,
		IncludeAlternatives: viper.GetBool("recommend.alternatives"),
		MinValuePerUnit:     viper.GetFloat64("recommend.min_value"),
	}
	if err := prefs.Validate(); err != nil {
		return model.UserPreferences{}, common.NewUserError("invalid preferences", err)
	}
	return prefs, nil
}

func runRecommend(cmd *cobra.Command, args []string) error {
	format := viper.GetString("recommend.format")
	if err := validateFormat(format); err != nil {
		return err
	}
	trip, err := parseTrip(args[0], args[1], args[2])
	if err != nil {
		return err
	}
	units, err := parseUnits(args[3])
	if err != nil {
		return err
	}
	prefs, err := recommendPreferences()
	if err != nil {
		return err
	}

	cat, err := appConfig.Catalog()
	if err != nil {
		return common.NewUserError("could not load redemption catalog", err)
	}

	var progress *cli.ProgressBar
	if viper.GetBool("recommend.progress") && format == formatText {
		progress = cli.NewProgressBar(cmd.ErrOrStderr())
	}

	ctx := cmd.Context()
	calculator := &valuation.Calculator{GoodValueThreshold: appConfig.GoodValueThreshold}
	recommender := recommend.NewRecommender(initOptimizer(ctx, appConfig, progressOrNil(progress)), calculator, cat)

	result := recommender.Recommend(ctx, trip.origin, trip.destination, trip.date, units, prefs)
	if err := ctx.Err(); err != nil {
		return err
	}

	return writeOutput(cmd.OutOrStdout(), format, result, func() string {
		return cli.RenderRecommendations(result)
	})
}
