package maps

import (
	"context"
	"errors"
	"fmt"

	gmaps "googlemaps.github.io/maps"

	"github.com/quickfixlabs/receptionist/internal/domains/booking"
	"github.com/quickfixlabs/receptionist/pkg/Logger"
)

var ErrNoRoute = errors.New("no route to destination")

// Client estimates travel via the Distance Matrix API. It implements
// booking.DistanceEstimator.
type Client struct {
	maps   *gmaps.Client
	origin string
	logger *Logger.Logger
}

func NewClient(apiKey, origin string, logger *Logger.Logger) (*Client, error) {
	mc, err := gmaps.NewClient(gmaps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("initializing maps client: %w", err)
	}
	return &Client{maps: mc, origin: origin, logger: logger}, nil
}

func (c *Client) Estimate(ctx context.Context, destination string) (booking.Travel, error) {
	resp, err := c.maps.DistanceMatrix(ctx, &gmaps.DistanceMatrixRequest{
		Origins:      []string{c.origin},
		Destinations: []string{destination},
		Units:        gmaps.UnitsImperial,
	})
	if err != nil {
		return booking.Travel{}, fmt.Errorf("distance matrix request: %w", err)
	}
	if len(resp.Rows) == 0 || len(resp.Rows[0].Elements) == 0 {
		return booking.Travel{}, ErrNoRoute
	}
	el := resp.Rows[0].Elements[0]
	if el.Status != "OK" {
		return booking.Travel{}, fmt.Errorf("%w: %s", ErrNoRoute, el.Status)
	}
	mins := int(el.Duration.Minutes() + 0.5)
	if mins < 1 {
		mins = 1
	}
	return booking.Travel{
		Distance: el.Distance.HumanReadable,
		Duration: fmt.Sprintf("%d minutes", mins),
	}, nil
}

// StaticEstimator answers with a fixed estimate. It stands in when no maps
// API key is configured.
type StaticEstimator struct{}

func (StaticEstimator) Estimate(context.Context, string) (booking.Travel, error) {
	return booking.Travel{Distance: "5.2 miles", Duration: "15 minutes"}, nil
}
