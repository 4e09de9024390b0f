package booking

import (
	"context"

	"github.com/quickfixlabs/receptionist/internal/domains/knowledge"
	"github.com/quickfixlabs/receptionist/pkg/Logger"
)

// Travel is a human-readable trip estimate to the customer's address.
type Travel struct {
	Distance string `json:"distance"`
	Duration string `json:"duration"`
}

// DistanceEstimator produces the trip estimate shown on a quote.
type DistanceEstimator interface {
	Estimate(ctx context.Context, destination string) (Travel, error)
}

// Quote prices one job. Total is always BasePrice + TravelFee.
type Quote struct {
	ServiceType string  `json:"service_type"`
	BasePrice   float64 `json:"base_price"`
	TravelFee   float64 `json:"travel_fee"`
	Total       float64 `json:"total"`
	Travel      Travel  `json:"travel"`
}

// Pricer builds quotes off the knowledge store's pricing table.
type Pricer struct {
	store    *knowledge.Store
	distance DistanceEstimator
	logger   *Logger.Logger
}

func NewPricer(store *knowledge.Store, distance DistanceEstimator, logger *Logger.Logger) *Pricer {
	return &Pricer{store: store, distance: distance, logger: logger}
}

// Quote prices serviceType for a job at destination. Unrecognized service
// types are quoted at the standard call-out rate rather than rejected; a
// receptionist quotes something, then a human firms it up.
func (p *Pricer) Quote(ctx context.Context, serviceType, destination string) *Quote {
	rate, ok := p.store.BasePrice(serviceType)
	if !ok {
		p.logger.Warnf("no rate for service %q, quoting standard call-out", serviceType)
		rate = p.store.StandardRate()
	}
	travelFee := p.store.Travel().FlatFee

	travel, err := p.distance.Estimate(ctx, destination)
	if err != nil {
		p.logger.Warnf("distance estimate for %q failed, using defaults: %v", destination, err)
		travel = defaultTravel
	}

	return &Quote{
		ServiceType: serviceType,
		BasePrice:   rate.BasePrice,
		TravelFee:   travelFee,
		Total:       rate.BasePrice + travelFee,
		Travel:      travel,
	}
}

// defaultTravel is quoted when no live estimate is available.
var defaultTravel = Travel{Distance: "5.2 miles", Duration: "15 minutes"}
