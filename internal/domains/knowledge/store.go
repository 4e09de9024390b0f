package knowledge

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"
)

var (
	ErrEmptyKnowledge   = errors.New("knowledge snapshot is empty")
	ErrMissingPricing   = errors.New("knowledge snapshot has no pricing section")
	ErrMalformedPricing = errors.New("pricing section is malformed")
)

// ServiceRate is one priced line of work.
type ServiceRate struct {
	BasePrice   float64 `json:"base_price"`
	Description string  `json:"description,omitempty"`
}

// TravelPolicy prices the trip to the customer.
type TravelPolicy struct {
	FlatFee float64 `json:"flat_fee"`
}

type pricingTable struct {
	Services map[string]ServiceRate `json:"services"`
	Travel   TravelPolicy           `json:"travel"`
	// StandardCallout names the Services key quoted when the requested
	// service type is unknown.
	StandardCallout string `json:"standard_callout"`
}

// Store holds the company knowledge snapshot, loaded once at startup and
// never mutated afterwards. All readers share it without locking.
type Store struct {
	sections    map[string]json.RawMessage
	pricing     pricingTable
	contextJSON string
}

// Load reads and validates the snapshot at path. The full document is
// serialized once here so per-request prompt assembly is a string copy.
func Load(path string) (*Store, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading knowledge snapshot: %w", err)
	}

	var sections map[string]json.RawMessage
	if err := json.Unmarshal(raw, &sections); err != nil {
		return nil, fmt.Errorf("decoding knowledge snapshot: %w", err)
	}
	if len(sections) == 0 {
		return nil, ErrEmptyKnowledge
	}

	pricingRaw, ok := sections["pricing"]
	if !ok {
		return nil, ErrMissingPricing
	}
	var pricing pricingTable
	if err := json.Unmarshal(pricingRaw, &pricing); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedPricing, err)
	}
	if len(pricing.Services) == 0 {
		return nil, fmt.Errorf("%w: no services priced", ErrMalformedPricing)
	}
	normalized := make(map[string]ServiceRate, len(pricing.Services))
	for name, rate := range pricing.Services {
		normalized[normalizeService(name)] = rate
	}
	pricing.Services = normalized
	pricing.StandardCallout = normalizeService(pricing.StandardCallout)
	if _, ok := pricing.Services[pricing.StandardCallout]; !ok {
		return nil, fmt.Errorf("%w: standard_callout %q is not a priced service", ErrMalformedPricing, pricing.StandardCallout)
	}

	ctx, err := json.MarshalIndent(sections, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("serializing knowledge context: %w", err)
	}

	return &Store{
		sections:    sections,
		pricing:     pricing,
		contextJSON: string(ctx),
	}, nil
}

// ContextJSON returns the full snapshot, pre-serialized for prompt embedding.
func (s *Store) ContextJSON() string {
	return s.contextJSON
}

// BasePrice looks up the rate for a service type. Matching is
// case- and whitespace-insensitive.
func (s *Store) BasePrice(serviceType string) (ServiceRate, bool) {
	rate, ok := s.pricing.Services[normalizeService(serviceType)]
	return rate, ok
}

// StandardRate is the call-out rate quoted for unrecognized service types.
func (s *Store) StandardRate() ServiceRate {
	return s.pricing.Services[s.pricing.StandardCallout]
}

func (s *Store) Travel() TravelPolicy {
	return s.pricing.Travel
}

// Categories lists the snapshot's top-level sections, sorted.
func (s *Store) Categories() []string {
	out := make([]string, 0, len(s.sections))
	for name := range s.sections {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

func normalizeService(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
