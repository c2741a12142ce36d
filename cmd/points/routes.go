package main

import (
	"github.com/Veraticus/the-points-must-flow/internal/cli"
	"github.com/Veraticus/the-points-must-flow/internal/common"
	"github.com/Veraticus/the-points-must-flow/internal/routing"
	"github.com/Veraticus/the-points-must-flow/internal/service"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func routesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "routes <origin> <destination> <date>",
		Short: "Rank direct and hub routes for a trip",
		Long: `Build nonstop routes and synthetic routes through connection hubs,
rank them by award cost and complexity, and flag hub routings that save
more than 10% over flying direct.`,
		Args: cobra.ExactArgs(3),
		RunE: runRoutes,
	}

	// Flags
	cmd.Flags().StringSlice("hubs", nil, "Hubs to route through (default: search.hubs)")
	cmd.Flags().Bool("all-hubs", false, "Route through every major and regional hub")
	cmd.Flags().Bool("direct-only", false, "Skip hub routes")
	cmd.Flags().Int("max-routes", routing.DefaultMaxRoutes, "Number of ranked routes to show")
	cmd.Flags().String("format", formatText, "Output format (text, json)")
	cmd.Flags().Bool("progress", true, "Show hub search progress")

	// Bind to viper
	_ = viper.BindPFlag("search.max_routes", cmd.Flags().Lookup("max-routes"))
	_ = viper.BindPFlag("routes.format", cmd.Flags().Lookup("format"))
	_ = viper.BindPFlag("routes.progress", cmd.Flags().Lookup("progress"))

	return cmd
}

func runRoutes(cmd *cobra.Command, args []string) error {
	format := viper.GetString("routes.format")
	if err := validateFormat(format); err != nil {
		return err
	}
	trip, err := parseTrip(args[0], args[1], args[2])
	if err != nil {
		return err
	}

	opts := routing.SearchOptions{MaxRoutes: appConfig.Search.MaxRoutes}
	opts.SkipLayovers, _ = cmd.Flags().GetBool("direct-only")
	if all, _ := cmd.Flags().GetBool("all-hubs"); all {
		opts.Hubs = routing.AllHubs()
	}
	if hubs, _ := cmd.Flags().GetStringSlice("hubs"); len(hubs) > 0 {
		opts.Hubs = make([]string, 0, len(hubs))
		for _, h := range hubs {
			code, err := common.ParseAirportCode(h)
			if err != nil {
				return common.NewUserError("invalid hub", err)
			}
			opts.Hubs = append(opts.Hubs, code)
		}
	}

	var progress *cli.ProgressBar
	if viper.GetBool("routes.progress") && format == formatText {
		progress = cli.NewProgressBar(cmd.ErrOrStderr())
	}

	ctx := cmd.Context()
	search := initOptimizer(ctx, appConfig, progressOrNil(progress)).
		FindOptimalRoutes(ctx, trip.origin, trip.destination, trip.date, opts)
	if err := ctx.Err(); err != nil {
		return err
	}

	return writeOutput(cmd.OutOrStdout(), format, search, func() string {
		return cli.RenderRoutes(search)
	})
}

// progressOrNil keeps a nil *ProgressBar from becoming a non-nil interface.
func progressOrNil(p *cli.ProgressBar) service.ProgressReporter {
	if p == nil {
		return nil
	}
	return p
}
