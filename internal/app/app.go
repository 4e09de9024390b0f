package app

import (
	"context"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/quickfixlabs/receptionist/internal/calendar"
	"github.com/quickfixlabs/receptionist/internal/config"
	"github.com/quickfixlabs/receptionist/internal/database"
	"github.com/quickfixlabs/receptionist/internal/domains/booking"
	"github.com/quickfixlabs/receptionist/internal/domains/knowledge"
	"github.com/quickfixlabs/receptionist/internal/domains/persona"
	"github.com/quickfixlabs/receptionist/internal/domains/session"
	"github.com/quickfixlabs/receptionist/internal/handlers"
	"github.com/quickfixlabs/receptionist/internal/maps"
	"github.com/quickfixlabs/receptionist/internal/realtime"
	"github.com/quickfixlabs/receptionist/internal/server"
	"github.com/quickfixlabs/receptionist/pkg/Logger"
)

// App owns the wired service graph and its cleanup.
type App struct {
	Router  *gin.Engine
	cleanup []func()
}

// New wires the whole service graph from config. Fail-fast: any collaborator
// that cannot be initialized aborts startup.
func New(ctx context.Context, cfg *config.Settings, logger *Logger.Logger) (*App, error) {
	a := &App{}

	store, err := knowledge.Load(cfg.Business.KnowledgeFile)
	if err != nil {
		return nil, fmt.Errorf("loading knowledge snapshot: %w", err)
	}
	logger.Infof("knowledge snapshot loaded: sections %v", store.Categories())

	asst, cleanup, err := NewAssistant(ctx, cfg)
	if err != nil {
		return nil, err
	}
	a.cleanup = append(a.cleanup, cleanup)

	redisClient, err := database.NewRedisClient(cfg.Redis)
	if err != nil {
		a.Close()
		return nil, err
	}
	a.cleanup = append(a.cleanup, func() { _ = redisClient.Close() })

	// knowledge-grounded responder
	responder := knowledge.NewResponder(
		store,
		asst,
		cfg.Business.Name,
		cfg.Assistant.Model,
		time.Duration(cfg.Assistant.TimeoutSecs)*time.Second,
		logger,
	)

	// persona + session provisioning
	personas := persona.NewService(
		asst,
		cfg.Assistant.Model,
		time.Duration(cfg.Assistant.TimeoutSecs)*time.Second,
		logger,
	)
	minter, err := realtime.NewTokenMinter(
		cfg.LiveKit.APIKey,
		cfg.LiveKit.APISecret,
		time.Duration(cfg.LiveKit.TokenTTLMins)*time.Minute,
	)
	if err != nil {
		a.Close()
		return nil, err
	}
	rooms := realtime.NewRoomClient(cfg.LiveKit.URL, minter, 10*time.Second, logger)
	sessions := session.NewService(personas, rooms, minter, cfg.LiveKit.URL, logger)

	// booking workflow
	tz, err := time.LoadLocation(cfg.Business.Timezone)
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("loading business timezone: %w", err)
	}
	cal, err := calendar.NewClient(ctx, cfg.Google.CredentialsFile, cfg.Google.CalendarID, logger)
	if err != nil {
		a.Close()
		return nil, err
	}
	var estimator booking.DistanceEstimator = maps.StaticEstimator{}
	if cfg.Google.MapsAPIKey != "" {
		estimator, err = maps.NewClient(cfg.Google.MapsAPIKey, cfg.Business.Address, logger)
		if err != nil {
			a.Close()
			return nil, err
		}
	}
	bookings := booking.NewService(
		booking.NewPricer(store, estimator, logger),
		cal,
		booking.NewRedisSlotGuard(redisClient),
		cfg.Business.Name,
		tz,
		time.Duration(cfg.Booking.LeadTimeMins)*time.Minute,
		time.Duration(cfg.Booking.DurationMins)*time.Minute,
		time.Duration(cfg.Booking.SlotLockTTLMins)*time.Minute,
		time.Duration(cfg.Booking.TimeoutSecs)*time.Second,
		logger,
	)

	a.Router = server.InitializeRoutes(cfg, server.Dependencies{
		Knowledge: handlers.NewKnowledgeHandler(responder, store, cfg.Business.Name, logger),
		Demo:      handlers.NewDemoHandler(sessions, logger),
		Booking:   handlers.NewBookingHandler(bookings, logger),
	}, logger)

	return a, nil
}

// Close releases collaborator resources in reverse wiring order.
func (a *App) Close() {
	for i := len(a.cleanup) - 1; i >= 0; i-- {
		a.cleanup[i]()
	}
	a.cleanup = nil
}
