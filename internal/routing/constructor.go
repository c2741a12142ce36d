// Package routing builds direct and synthetic layover routes from raw flight
// offers, ranks them, and measures what a synthetic routing saves.
package routing

import (
	"context"
	"log/slog"
	"time"

	"github.com/Veraticus/the-points-must-flow/internal/award"
	"github.com/Veraticus/the-points-must-flow/internal/common"
	"github.com/Veraticus/the-points-must-flow/internal/model"
	"github.com/Veraticus/the-points-must-flow/internal/service"
)

// Options tunes route construction. Start from DefaultOptions: zero fees and
// buffers are honored as given, only an unset offer cap and hub list are filled in.
type Options struct {
	Hubs              []string
	MaxDirectOffers   int
	DirectFee         float64
	LayoverFee        float64
	LayoverBufferHour float64
}

// DefaultOptions returns the standard fees, caps and hubs.
func DefaultOptions() Options {
	return Options{
		Hubs:              DefaultHubs(),
		MaxDirectOffers:   5,
		DirectFee:         50.0,
		LayoverFee:        75.0,
		LayoverBufferHour: 2.0,
	}
}

// Constructor turns flight offers into award-priced routes.
type Constructor struct {
	searcher service.OfferSearcher
	chart    *award.Chart
	progress service.ProgressReporter
	logger   *slog.Logger
	opts     Options
}

// NewConstructor creates a constructor. The searcher is expected to absorb
// upstream failures itself; errors it does return are logged and treated as
// "no offers".
func NewConstructor(searcher service.OfferSearcher, chart *award.Chart, opts Options) *Constructor {
	if chart == nil {
		chart = award.NewChart()
	}
	defaults := DefaultOptions()
	if opts.MaxDirectOffers <= 0 {
		opts.MaxDirectOffers = defaults.MaxDirectOffers
	}
	if opts.Hubs == nil {
		opts.Hubs = defaults.Hubs
	}
	return &Constructor{
		searcher: searcher,
		chart:    chart,
		opts:     opts,
		logger:   common.ComponentLogger("routing"),
	}
}

// WithProgress attaches a reporter that ticks once per hub searched.
func (c *Constructor) WithProgress(p service.ProgressReporter) *Constructor {
	c.progress = p
	return c
}

// Hubs returns the hubs searched when LayoverRoutes is given none.
func (c *Constructor) Hubs() []string {
	return append([]string(nil), c.opts.Hubs...)
}

// DirectRoutes prices every nonstop offer for the pair on the award chart.
// The award price never depends on the cash fare; the fare is kept for
// value comparison.
func (c *Constructor) DirectRoutes(ctx context.Context, origin, destination string, date time.Time) []model.FlightRoute {
	offers := c.search(ctx, origin, destination, date, c.opts.MaxDirectOffers)

	international := c.chart.IsInternational(origin, destination)
	units := c.chart.Cost(origin, destination, international)

	routes := make([]model.FlightRoute, 0, len(offers))
	for _, offer := range offers {
		if offer.Stops != 0 {
			continue
		}
		routes = append(routes, model.FlightRoute{
			Origin:          origin,
			Destination:     destination,
			RouteType:       model.RouteDirect,
			TotalUnits:      units,
			TotalFees:       c.opts.DirectFee,
			Segments:        append([]model.Segment(nil), offer.Segments...),
			DurationHours:   ParseDurationHours(offer.Duration),
			LayoverAirports: []string{},
			CashPrice:       offer.Price,
			Airline:         offer.Carrier,
			Provenance:      offer.Provenance,
		})
	}

	c.logger.Debug("Built direct routes",
		"origin", origin,
		"destination", destination,
		"offers", len(offers),
		"routes", len(routes))
	return routes
}

// LayoverRoutes builds one synthetic route per hub by pricing origin→hub and
// hub→destination separately. Hubs equal to either endpoint are skipped, as
// are hubs where either leg has no offer. A nil hubs slice uses the
// constructor's configured hubs.
func (c *Constructor) LayoverRoutes(ctx context.Context, origin, destination string, date time.Time, hubs []string) []model.FlightRoute {
	if hubs == nil {
		hubs = c.opts.Hubs
	}

	if c.progress != nil {
		c.progress.Start(len(hubs), "Searching hubs")
		defer c.progress.Finish()
	}

	var routes []model.FlightRoute
	for _, hub := range hubs {
		if c.progress != nil {
			c.progress.Advance(hub)
		}
		if hub == origin || hub == destination {
			continue
		}

		first := c.search(ctx, origin, hub, date, 1)
		second := c.search(ctx, hub, destination, date, 1)
		if len(first) == 0 || len(second) == 0 {
			c.logger.Debug("Hub skipped, missing leg", "hub", hub,
				"first_leg_offers", len(first),
				"second_leg_offers", len(second))
			continue
		}

		routes = append(routes, c.joinLegs(origin, hub, destination, first[0], second[0]))
	}

	return routes
}

// joinLegs combines two offers into a layover route. Each leg is priced on the
// domestic chart.
func (c *Constructor) joinLegs(origin, hub, destination string, first, second model.FlightOffer) model.FlightRoute {
	units := c.chart.Cost(origin, hub, false) + c.chart.Cost(hub, destination, false)
	hours := ParseDurationHours(first.Duration) + ParseDurationHours(second.Duration) + c.opts.LayoverBufferHour

	segments := make([]model.Segment, 0, len(first.Segments)+len(second.Segments))
	segments = append(segments, first.Segments...)
	segments = append(segments, second.Segments...)

	return model.FlightRoute{
		Origin:          origin,
		Destination:     destination,
		RouteType:       model.RouteLayover,
		TotalUnits:      units,
		TotalFees:       c.opts.LayoverFee,
		Segments:        segments,
		DurationHours:   hours,
		LayoverAirports: []string{hub},
		CashPrice:       first.Price + second.Price,
		Airline:         first.Carrier + "/" + second.Carrier,
		Provenance:      first.Provenance.Combine(second.Provenance),
	}
}

func (c *Constructor) search(ctx context.Context, origin, destination string, date time.Time, limit int) []model.FlightOffer {
	if c.searcher == nil {
		return nil
	}
	offers, err := c.searcher.SearchOffers(ctx, service.OfferQuery{
		Origin:        origin,
		Destination:   destination,
		DepartureDate: date,
		Adults:        1,
		MaxResults:    limit,
	})
	if err != nil {
		c.logger.Warn("Offer search failed, continuing without offers",
			"origin", origin,
			"destination", destination,
			"error", err)
		return nil
	}
	return offers
}
