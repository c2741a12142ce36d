package main

import (
	"github.com/Veraticus/the-points-must-flow/internal/award"
	"github.com/Veraticus/the-points-must-flow/internal/cli"
	"github.com/Veraticus/the-points-must-flow/internal/common"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func airportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "airport <code>",
		Short: "Look up an airport by IATA code",
		Long: `Resolve an airport code to its name, city and country. Without live
flight data credentials the lookup returns a placeholder.`,
		Args: cobra.ExactArgs(1),
		RunE: runAirport,
	}

	cmd.Flags().String("format", formatText, "Output format (text, json)")
	_ = viper.BindPFlag("airport.format", cmd.Flags().Lookup("format"))

	return cmd
}

func runAirport(cmd *cobra.Command, args []string) error {
	format := viper.GetString("airport.format")
	if err := validateFormat(format); err != nil {
		return err
	}
	code, err := common.ParseAirportCode(args[0])
	if err != nil {
		return common.NewUserError("invalid airport code", err)
	}

	ctx := cmd.Context()
	source := initFlightSource(ctx, appConfig, award.NewChart())
	info, err := source.AirportInfo(ctx, code)
	if err != nil {
		return err
	}

	return writeOutput(cmd.OutOrStdout(), format, info, func() string {
		return cli.RenderAirport(info)
	})
}
