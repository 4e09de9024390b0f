package booking

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/quickfixlabs/receptionist/pkg/Logger"
)

var (
	ErrBookingFailed  = errors.New("appointment booking failed")
	ErrSlotTaken      = errors.New("appointment slot already taken")
	ErrMissingDetails = errors.New("customer name is required")
)

// Event is a calendar entry for one appointment.
type Event struct {
	Summary     string
	Description string
	Location    string
	Start       time.Time
	End         time.Time
	Timezone    string
}

// EventInserter writes an event to the business calendar and returns a link
// to the created entry.
type EventInserter interface {
	Insert(ctx context.Context, ev Event) (string, error)
}

// SlotGuard reserves appointment slots so two concurrent bookings cannot
// land on the same window.
type SlotGuard interface {
	Reserve(slot string, ttl time.Duration) (bool, error)
	Release(slot string) error
}

// Request carries the caller's details for an appointment.
type Request struct {
	CustomerName string `json:"customer_name"`
	Phone        string `json:"phone"`
	Address      string `json:"address"`
	ServiceType  string `json:"service_type"`
	Issue        string `json:"issue"`
}

// Confirmation is returned once the appointment is on the calendar.
type Confirmation struct {
	Booked    bool      `json:"booked"`
	EventLink string    `json:"event_link,omitempty"`
	Start     time.Time `json:"start"`
	End       time.Time `json:"end"`
	Quote     *Quote    `json:"quote"`
	Message   string    `json:"message"`
}

type Service interface {
	Book(ctx context.Context, req Request) (*Confirmation, error)
}

type service struct {
	pricer       *Pricer
	calendar     EventInserter
	slots        SlotGuard
	businessName string
	timezone     *time.Location
	lead         time.Duration
	duration     time.Duration
	slotTTL      time.Duration
	timeout      time.Duration
	logger       *Logger.Logger
	now          func() time.Time
}

func NewService(
	pricer *Pricer,
	calendar EventInserter,
	slots SlotGuard,
	businessName string,
	timezone *time.Location,
	lead, duration, slotTTL, timeout time.Duration,
	logger *Logger.Logger,
) Service {
	return &service{
		pricer:       pricer,
		calendar:     calendar,
		slots:        slots,
		businessName: businessName,
		timezone:     timezone,
		lead:         lead,
		duration:     duration,
		slotTTL:      slotTTL,
		timeout:      timeout,
		logger:       logger,
		now:          time.Now,
	}
}

// Book schedules the next available window, reserves it against concurrent
// bookings, and writes the calendar entry. The slot reservation is released
// if the calendar write fails, so a transient calendar outage does not burn
// the window.
func (s *service) Book(ctx context.Context, req Request) (*Confirmation, error) {
	if strings.TrimSpace(req.CustomerName) == "" {
		return nil, ErrMissingDetails
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	start := s.now().In(s.timezone).Add(s.lead).Truncate(time.Minute)
	end := start.Add(s.duration)

	slot := slotKey(start)
	reserved, err := s.slots.Reserve(slot, s.slotTTL)
	if err != nil {
		return nil, fmt.Errorf("%w: reserving slot: %v", ErrBookingFailed, err)
	}
	if !reserved {
		return nil, fmt.Errorf("%w: %s", ErrSlotTaken, start.Format(time.RFC3339))
	}

	quote := s.pricer.Quote(ctx, req.ServiceType, req.Address)

	link, err := s.calendar.Insert(ctx, Event{
		Summary:     fmt.Sprintf("%s: %s - %s", s.businessName, orDefault(req.ServiceType, "call-out"), req.CustomerName),
		Description: s.eventDescription(req, quote),
		Location:    req.Address,
		Start:       start,
		End:         end,
		Timezone:    s.timezone.String(),
	})
	if err != nil {
		if relErr := s.slots.Release(slot); relErr != nil {
			s.logger.Errorf("releasing slot %s after failed insert: %v", slot, relErr)
		}
		return nil, fmt.Errorf("%w: %v", ErrBookingFailed, err)
	}

	s.logger.Infof("booked %s for %s at %s", req.ServiceType, req.CustomerName, start.Format(time.RFC3339))
	return &Confirmation{
		Booked:    true,
		EventLink: link,
		Start:     start,
		End:       end,
		Quote:     quote,
		Message: fmt.Sprintf("Appointment confirmed for %s. Estimated total £%.0f.",
			start.Format("Mon 2 Jan 15:04"), quote.Total),
	}, nil
}

func (s *service) eventDescription(req Request, quote *Quote) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Customer: %s\n", req.CustomerName)
	if req.Phone != "" {
		fmt.Fprintf(&b, "Phone: %s\n", req.Phone)
	}
	if req.Issue != "" {
		fmt.Fprintf(&b, "Issue: %s\n", req.Issue)
	}
	fmt.Fprintf(&b, "Quote: £%.0f (base £%.0f + travel £%.0f)\n", quote.Total, quote.BasePrice, quote.TravelFee)
	fmt.Fprintf(&b, "Travel: %s, about %s", quote.Travel.Distance, quote.Travel.Duration)
	return b.String()
}

func slotKey(start time.Time) string {
	return "booking:slot:" + start.UTC().Format(time.RFC3339)
}

func orDefault(s, def string) string {
	if strings.TrimSpace(s) == "" {
		return def
	}
	return s
}
