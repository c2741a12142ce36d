package flightdata

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/Veraticus/the-points-must-flow/internal/common"
	"github.com/Veraticus/the-points-must-flow/internal/model"
	"github.com/Veraticus/the-points-must-flow/internal/service"
	"github.com/patrickmn/go-cache"
	"golang.org/x/oauth2/clientcredentials"
	"golang.org/x/time/rate"
)

// DefaultBaseURL is the Amadeus self-service test environment.
const DefaultBaseURL = "https://test.api.amadeus.com"

// Config holds Amadeus API configuration.
type Config struct {
	APIKey            string
	APISecret         string
	BaseURL           string
	Timeout           time.Duration
	CacheTTL          time.Duration
	RequestsPerSecond float64
}

// Configured reports whether credentials are present.
func (c *Config) Configured() bool {
	return c.APIKey != "" && c.APISecret != ""
}

// Validate ensures all required fields are present.
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("%w: amadeus api key is required", common.ErrMissingConfig)
	}
	if c.APISecret == "" {
		return fmt.Errorf("%w: amadeus api secret is required", common.ErrMissingConfig)
	}
	if c.BaseURL != "" {
		if _, err := url.ParseRequestURI(c.BaseURL); err != nil {
			return fmt.Errorf("%w: amadeus base url: %v", common.ErrInvalidConfig, err)
		}
	}
	if c.RequestsPerSecond < 0 {
		return fmt.Errorf("%w: requests per second must be non-negative", common.ErrInvalidConfig)
	}
	return nil
}

// AmadeusClient searches flight offers through the Amadeus REST API.
type AmadeusClient struct {
	httpClient *http.Client
	limiter    *rate.Limiter
	offers     *cache.Cache
	logger     *slog.Logger
	baseURL    string
	retryOpts  service.RetryOptions
}

// NewAmadeusClient creates a client that authenticates with the OAuth2
// client-credentials grant. The token is fetched lazily on first request.
func NewAmadeusClient(ctx context.Context, cfg Config) (*AmadeusClient, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	credentials := &clientcredentials.Config{
		ClientID:     cfg.APIKey,
		ClientSecret: cfg.APISecret,
		TokenURL:     baseURL + "/v1/security/oauth2/token",
	}

	httpClient := credentials.Client(ctx)
	httpClient.Timeout = cfg.Timeout
	if httpClient.Timeout <= 0 {
		httpClient.Timeout = 30 * time.Second
	}

	limit := rate.Inf
	if cfg.RequestsPerSecond > 0 {
		limit = rate.Limit(cfg.RequestsPerSecond)
	}

	ttl := cfg.CacheTTL
	if ttl <= 0 {
		ttl = 15 * time.Minute
	}

	return &AmadeusClient{
		httpClient: httpClient,
		limiter:    rate.NewLimiter(limit, 1),
		offers:     cache.New(ttl, 2*ttl),
		logger:     common.ComponentLogger("amadeus"),
		baseURL:    baseURL,
		retryOpts: service.RetryOptions{
			MaxAttempts:  3,
			InitialDelay: 500 * time.Millisecond,
			MaxDelay:     5 * time.Second,
			Multiplier:   2.0,
		},
	}, nil
}

// SearchOffers implements service.OfferSearcher.
func (c *AmadeusClient) SearchOffers(ctx context.Context, query service.OfferQuery) ([]model.FlightOffer, error) {
	if query.Origin == "" || query.Destination == "" {
		return nil, fmt.Errorf("%w: origin and destination are required", common.ErrInvalidAirport)
	}

	key := offerCacheKey(query)
	if cached, found := c.offers.Get(key); found {
		c.logger.Debug("Flight offers served from cache", "key", key)
		return slices.Clone(cached.([]model.FlightOffer)), nil
	}

	params := url.Values{}
	params.Set("originLocationCode", query.Origin)
	params.Set("destinationLocationCode", query.Destination)
	params.Set("departureDate", query.DepartureDate.Format(dateLayout))
	if query.ReturnDate != nil {
		params.Set("returnDate", query.ReturnDate.Format(dateLayout))
	}
	adults := query.Adults
	if adults <= 0 {
		adults = 1
	}
	params.Set("adults", strconv.Itoa(adults))
	if query.MaxResults > 0 {
		params.Set("max", strconv.Itoa(query.MaxResults))
	}
	params.Set("currencyCode", "USD")

	var payload offersResponse
	err := common.WithRetry(ctx, func() error {
		return c.getJSON(ctx, "/v2/shopping/flight-offers", params, &payload)
	}, c.retryOpts)
	if err != nil {
		return nil, fmt.Errorf("%w: %s to %s: %w", common.ErrOfferSearch, query.Origin, query.Destination, err)
	}

	offers := c.parseOffers(payload.Data)
	c.logger.Info("Fetched flight offers",
		"origin", query.Origin,
		"destination", query.Destination,
		"count", len(offers))

	c.offers.Set(key, offers, cache.DefaultExpiration)
	return slices.Clone(offers), nil
}

// AirportInfo implements service.AirportLookup.
func (c *AmadeusClient) AirportInfo(ctx context.Context, code string) (service.AirportInfo, error) {
	params := url.Values{}
	params.Set("keyword", code)
	params.Set("subType", "AIRPORT")

	var payload locationsResponse
	err := common.WithRetry(ctx, func() error {
		return c.getJSON(ctx, "/v1/reference-data/locations", params, &payload)
	}, c.retryOpts)
	if err != nil {
		return service.AirportInfo{}, fmt.Errorf("airport lookup %s: %w", code, err)
	}
	if len(payload.Data) == 0 {
		return service.AirportInfo{}, fmt.Errorf("airport lookup %s: %w", code, common.ErrInvalidAirport)
	}

	loc := payload.Data[0]
	return service.AirportInfo{
		Code:    code,
		Name:    loc.Name,
		City:    loc.Address.CityName,
		Country: loc.Address.CountryName,
	}, nil
}

// getJSON performs a throttled GET and decodes the body into out. Rate
// limiting and server errors come back retryable; other failures do not.
func (c *AmadeusClient) getJSON(ctx context.Context, path string, params url.Values, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limiter canceled: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return err
		}
		return &common.RetryableError{Err: fmt.Errorf("%w: %v", common.ErrUpstreamFailure, err), Retryable: true}
	}
	defer func() { _ = resp.Body.Close() }()

	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		return common.ErrRateLimit
	case resp.StatusCode >= http.StatusInternalServerError:
		return fmt.Errorf("%w: status %d", common.ErrUpstreamFailure, resp.StatusCode)
	case resp.StatusCode != http.StatusOK:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// parseOffers converts API payloads into offers, skipping malformed entries.
func (c *AmadeusClient) parseOffers(data []offerPayload) []model.FlightOffer {
	offers := make([]model.FlightOffer, 0, len(data))
	for _, raw := range data {
		offer, err := raw.toOffer()
		if err != nil {
			c.logger.Debug("Skipping malformed flight offer", "id", raw.ID, "error", err)
			continue
		}
		offers = append(offers, offer)
	}
	return offers
}

func offerCacheKey(q service.OfferQuery) string {
	ret := ""
	if q.ReturnDate != nil {
		ret = q.ReturnDate.Format(dateLayout)
	}
	return fmt.Sprintf("%s|%s|%s|%s|%d|%d",
		q.Origin, q.Destination, q.DepartureDate.Format(dateLayout), ret, q.Adults, q.MaxResults)
}

var (
	_ service.OfferSearcher = (*AmadeusClient)(nil)
	_ service.AirportLookup = (*AmadeusClient)(nil)
)
