package main

import (
	"github.com/Veraticus/the-points-must-flow/internal/award"
	"github.com/Veraticus/the-points-must-flow/internal/cli"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

type chartOutput struct {
	Domestic      []award.Zone `json:"domestic"`
	International []award.Zone `json:"international"`
}

func chartCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chart",
		Short: "Show the distance-based award chart",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format := viper.GetString("chart.format")
			if err := validateFormat(format); err != nil {
				return err
			}
			out := chartOutput{
				Domestic:      award.DomesticZones(),
				International: award.InternationalZones(),
			}
			return writeOutput(cmd.OutOrStdout(), format, out, func() string {
				return cli.RenderAwardChart(out.Domestic, out.International)
			})
		},
	}

	cmd.Flags().String("format", formatText, "Output format (text, json)")
	_ = viper.BindPFlag("chart.format", cmd.Flags().Lookup("format"))

	return cmd
}
