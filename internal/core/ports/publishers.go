package ports

import (
	"context"

	"github.com/SscSPs/hotel_booking_app/internal/core/domain"
)

// BookingEventPublisher delivers booking lifecycle events to other systems.
// Delivery is best effort; callers log failures and carry on.
type BookingEventPublisher interface {
	PublishBookingEvent(ctx context.Context, event domain.BookingEvent) error
}
