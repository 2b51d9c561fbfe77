package queue

import (
	"context"
	"errors"
	"log/slog"

	"github.com/SscSPs/hotel_booking_app/internal/core/domain"
	"github.com/SscSPs/hotel_booking_app/internal/core/ports"
	"github.com/posthog/posthog-go"
)

// DefaultAnalyticsEndpoint is used when no endpoint is configured.
const DefaultAnalyticsEndpoint = "https://eu.i.posthog.com"

// capturer is the subset of posthog.Client the analytics publisher uses.
type capturer interface {
	Enqueue(msg posthog.Message) error
	Close() error
}

// AnalyticsPublisher reports booking events to PostHog, keyed by the booking's user.
type AnalyticsPublisher struct {
	client capturer
	logger *slog.Logger
}

var _ ports.BookingEventPublisher = (*AnalyticsPublisher)(nil)

// NewAnalyticsPublisher returns nil when apiKey is empty.
func NewAnalyticsPublisher(apiKey, endpoint string, logger *slog.Logger) (*AnalyticsPublisher, error) {
	if apiKey == "" {
		logger.Warn("PostHog API key is empty, booking analytics disabled")
		return nil, nil
	}
	if endpoint == "" {
		endpoint = DefaultAnalyticsEndpoint
	}
	client, err := posthog.NewWithConfig(apiKey, posthog.Config{Endpoint: endpoint})
	if err != nil {
		return nil, err
	}
	logger.Info("PostHog client initialized", slog.String("endpoint", endpoint))
	return &AnalyticsPublisher{client: client, logger: logger}, nil
}

// PublishBookingEvent enqueues the event; the client batches and sends in the background.
func (p *AnalyticsPublisher) PublishBookingEvent(ctx context.Context, event domain.BookingEvent) error {
	props := posthog.NewProperties().
		Set("booking_id", event.BookingID).
		Set("room_id", event.RoomID).
		Set("location_id", event.LocationID).
		Set("start", event.Start).
		Set("end", event.End).
		Set("guests", event.Guests).
		Set("currency", event.CurrencyCode)

	p.logger.DebugContext(ctx, "Enqueueing analytics event",
		slog.String("distinct_id", event.UserID), slog.String("event", string(event.Type)))
	return p.client.Enqueue(posthog.Capture{
		DistinctId: event.UserID,
		Event:      string(event.Type),
		Timestamp:  event.OccurredAt,
		Properties: props,
	})
}

// Close flushes pending events.
func (p *AnalyticsPublisher) Close() error {
	return p.client.Close()
}

// FanoutPublisher hands every event to each publisher in turn.
// All publishers are tried; their errors are joined.
type FanoutPublisher []ports.BookingEventPublisher

var _ ports.BookingEventPublisher = FanoutPublisher(nil)

func (f FanoutPublisher) PublishBookingEvent(ctx context.Context, event domain.BookingEvent) error {
	var errs []error
	for _, p := range f {
		if err := p.PublishBookingEvent(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
