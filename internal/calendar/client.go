package calendar

import (
	"context"
	"fmt"

	gcal "google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"

	"github.com/quickfixlabs/receptionist/internal/domains/booking"
	"github.com/quickfixlabs/receptionist/pkg/Logger"
)

// Client writes appointments to a Google Calendar. It implements
// booking.EventInserter.
type Client struct {
	svc        *gcal.Service
	calendarID string
	logger     *Logger.Logger
}

func NewClient(ctx context.Context, credentialsFile, calendarID string, logger *Logger.Logger) (*Client, error) {
	svc, err := gcal.NewService(ctx,
		option.WithCredentialsFile(credentialsFile),
		option.WithScopes(gcal.CalendarEventsScope),
	)
	if err != nil {
		return nil, fmt.Errorf("initializing calendar service: %w", err)
	}
	return &Client{svc: svc, calendarID: calendarID, logger: logger}, nil
}

func (c *Client) Insert(ctx context.Context, ev booking.Event) (string, error) {
	entry := &gcal.Event{
		Summary:     ev.Summary,
		Description: ev.Description,
		Location:    ev.Location,
		Start: &gcal.EventDateTime{
			DateTime: ev.Start.Format("2006-01-02T15:04:05-07:00"),
			TimeZone: ev.Timezone,
		},
		End: &gcal.EventDateTime{
			DateTime: ev.End.Format("2006-01-02T15:04:05-07:00"),
			TimeZone: ev.Timezone,
		},
	}

	created, err := c.svc.Events.Insert(c.calendarID, entry).Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("inserting calendar event: %w", err)
	}
	c.logger.Infof("calendar event created: %s", created.Id)
	return created.HtmlLink, nil
}
