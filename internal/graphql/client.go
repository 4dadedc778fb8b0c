// Package graphql is the query client for the countries GraphQL endpoint.
// A Client is built once at startup, handed to the views that need it and
// closed on exit.
package graphql

import (
	"context"
	"fmt"
	"net/http"
	"time"

	gql "github.com/machinebox/graphql"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	oteltrace "go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
	"go.uber.org/zap"

	"countrydeck/internal/country"
)

// CountriesQuery is the static query sent on every fetch. It takes no variables.
const CountriesQuery = `query {
  countries {
    code
    name
    capital
    currency
    continent {
      name
    }
  }
}`

// Fetcher fetches the full country list. Views depend on this rather than
// on *Client so tests can substitute a fake.
type Fetcher interface {
	Countries(ctx context.Context) ([]country.Country, error)
}

// Options configures a Client.
type Options struct {
	Endpoint  string
	Timeout   time.Duration
	UserAgent string
	Logger    *zap.Logger
	Tracer    oteltrace.Tracer
}

// Client sends the countries query to a GraphQL endpoint.
type Client struct {
	endpoint   string
	userAgent  string
	httpClient *http.Client
	gql        *gql.Client
	logger     *zap.Logger
	tracer     oteltrace.Tracer
}

var _ Fetcher = (*Client)(nil)

// NewClient builds a client for opts.Endpoint. Nil logger and tracer are
// replaced by no-op implementations.
func NewClient(opts Options) *Client {
	httpClient := &http.Client{Timeout: opts.Timeout}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	tracer := opts.Tracer
	if tracer == nil {
		tracer = noop.NewTracerProvider().Tracer("countrydeck")
	}
	return &Client{
		endpoint:   opts.Endpoint,
		userAgent:  opts.UserAgent,
		httpClient: httpClient,
		gql:        gql.NewClient(opts.Endpoint, gql.WithHTTPClient(httpClient)),
		logger:     logger.With(zap.String("endpoint", opts.Endpoint)),
		tracer:     tracer,
	}
}

// countriesResponse is the data payload of CountriesQuery.
type countriesResponse struct {
	Countries []country.Country `json:"countries"`
}

// Countries runs CountriesQuery. A response without a countries field yields
// an empty, non-nil slice.
func (c *Client) Countries(ctx context.Context) ([]country.Country, error) {
	ctx, span := c.tracer.Start(ctx, "graphql.countries",
		oteltrace.WithSpanKind(oteltrace.SpanKindClient),
		oteltrace.WithAttributes(attribute.String("countrydeck.graphql.endpoint", c.endpoint)),
	)
	defer span.End()

	req := gql.NewRequest(CountriesQuery)
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	start := time.Now()
	c.logger.Debug("fetching countries")

	var resp countriesResponse
	if err := c.gql.Run(ctx, req, &resp); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		c.logger.Warn("fetch countries failed", zap.Error(err), zap.Duration("elapsed", time.Since(start)))
		return nil, fmt.Errorf("fetch countries: %w", err)
	}

	countries := resp.Countries
	if countries == nil {
		countries = []country.Country{}
	}
	span.SetAttributes(attribute.Int("countrydeck.countries.count", len(countries)))
	c.logger.Info("fetched countries",
		zap.Int("count", len(countries)),
		zap.Duration("elapsed", time.Since(start)),
	)
	return countries, nil
}

// Endpoint returns the endpoint the client queries.
func (c *Client) Endpoint() string {
	return c.endpoint
}

// Close releases idle connections held by the client.
func (c *Client) Close() {
	c.httpClient.CloseIdleConnections()
}
