package main

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/Veraticus/the-points-must-flow/internal/award"
	"github.com/Veraticus/the-points-must-flow/internal/cli"
	"github.com/Veraticus/the-points-must-flow/internal/common"
	"github.com/Veraticus/the-points-must-flow/internal/config"
	"github.com/Veraticus/the-points-must-flow/internal/flightdata"
	"github.com/Veraticus/the-points-must-flow/internal/routing"
	"github.com/Veraticus/the-points-must-flow/internal/service"
)

const (
	formatText = "text"
	formatJSON = "json"
)

// initFlightSource wraps the live Amadeus client, when credentials are
// configured, in the mock fallback.
func initFlightSource(ctx context.Context, cfg *config.Config, chart *award.Chart) *flightdata.FallbackSource {
	var primary service.OfferSearcher
	if cfg.Amadeus.Configured() {
		client, err := flightdata.NewAmadeusClient(ctx, cfg.Amadeus)
		if err != nil {
			common.LogError(err, "Amadeus client unavailable, using estimated flight data", common.Fields{
				"base_url": cfg.Amadeus.BaseURL,
			})
		} else {
			primary = client
		}
	} else {
		common.LogInfo("Amadeus credentials not set, using estimated flight data", common.Fields{
			"env": "AMADEUS_API_KEY, AMADEUS_API_SECRET",
		})
	}
	return flightdata.NewFallbackSource(primary, flightdata.NewMockGenerator(chart))
}

// initOptimizer builds the route optimizer, reporting hub progress when
// progress is non-nil.
func initOptimizer(ctx context.Context, cfg *config.Config, progress service.ProgressReporter) *routing.Optimizer {
	chart := award.NewChart()
	source := initFlightSource(ctx, cfg, chart)
	constructor := routing.NewConstructor(source, chart, cfg.RoutingOptions())
	if progress != nil {
		constructor.WithProgress(progress)
	}
	return routing.NewOptimizer(constructor, routing.NewRanker())
}

type tripArgs struct {
	date        time.Time
	origin      string
	destination string
}

func parseTrip(origin, destination, date string) (tripArgs, error) {
	o, err := common.ParseAirportCode(origin)
	if err != nil {
		return tripArgs{}, common.NewUserError("invalid origin airport", err)
	}
	d, err := common.ParseAirportCode(destination)
	if err != nil {
		return tripArgs{}, common.NewUserError("invalid destination airport", err)
	}
	if o == d {
		return tripArgs{}, common.NewUserError("origin and destination must differ",
			fmt.Errorf("%w: %s", common.ErrInvalidAirport, o))
	}
	when, err := common.ParseTravelDate(date)
	if err != nil {
		return tripArgs{}, common.NewUserError("invalid travel date, use YYYY-MM-DD", err)
	}
	return tripArgs{origin: o, destination: d, date: when}, nil
}

func parseUnits(s string) (int, error) {
	units, err := strconv.Atoi(s)
	if err != nil {
		return 0, common.NewUserError("points balance must be a whole number",
			fmt.Errorf("%w: %q", common.ErrInvalidUnits, s))
	}
	if err := common.ValidateUnits(units); err != nil {
		return 0, common.NewUserError("points balance must not be negative", err)
	}
	return units, nil
}

func validateFormat(format string) error {
	if format != formatText && format != formatJSON {
		return common.NewUserError(fmt.Sprintf("unknown output format %q, use text or json", format), nil)
	}
	return nil
}

// writeOutput prints v as JSON or the rendered text.
func writeOutput(w io.Writer, format string, v any, render func() string) error {
	if format == formatJSON {
		return cli.WriteJSON(w, v)
	}
	_, err := fmt.Fprint(w, render())
	return err
}
