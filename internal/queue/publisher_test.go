package queue

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/SscSPs/hotel_booking_app/internal/core/domain"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeChannel struct {
	declared   []string
	published  []amqp.Publishing
	keys       []string
	publishErr error
	closed     int
}

func (f *fakeChannel) QueueDeclare(name string, durable, autoDelete, exclusive, noWait bool, args amqp.Table) (amqp.Queue, error) {
	f.declared = append(f.declared, name)
	return amqp.Queue{Name: name}, nil
}

func (f *fakeChannel) PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error {
	if f.publishErr != nil {
		return f.publishErr
	}
	f.keys = append(f.keys, key)
	f.published = append(f.published, msg)
	return nil
}

func (f *fakeChannel) Close() error {
	f.closed++
	return nil
}

func newTestPublisher(ch *fakeChannel, dials *int) *AMQPPublisher {
	p := NewAMQPPublisher("amqp://test", "booking.events")
	p.dial = func(string, time.Duration) (*amqp.Connection, channel, error) {
		*dials++
		return nil, ch, nil
	}
	return p
}

func testEvent() domain.BookingEvent {
	b := domain.Booking{
		BookingID:    "b-1",
		UserID:       "u-1",
		RoomID:       42,
		LocationID:   8,
		Guests:       2,
		BookingStart: time.Date(2024, time.August, 1, 0, 0, 0, 0, time.UTC),
		BookingEnd:   time.Date(2024, time.August, 3, 0, 0, 0, 0, time.UTC),
		CurrencyCode: "GBP",
	}
	return domain.NewBookingEvent(domain.BookingCreated, b, time.Date(2024, time.May, 1, 12, 0, 0, 0, time.UTC))
}

func TestPublishBookingEvent(t *testing.T) {
	ch := &fakeChannel{}
	dials := 0
	p := newTestPublisher(ch, &dials)

	require.NoError(t, p.PublishBookingEvent(context.Background(), testEvent()))
	require.NoError(t, p.PublishBookingEvent(context.Background(), testEvent()))

	assert.Equal(t, 1, dials, "channel is reused")
	assert.Equal(t, []string{"booking.events"}, ch.declared)
	assert.Equal(t, []string{"booking.events", "booking.events"}, ch.keys)

	msg := ch.published[0]
	assert.Equal(t, "application/json", msg.ContentType)
	assert.Equal(t, amqp.Persistent, msg.DeliveryMode)
	assert.Equal(t, "booking.created", msg.Type)

	var decoded domain.BookingEvent
	require.NoError(t, json.Unmarshal(msg.Body, &decoded))
	assert.Equal(t, "b-1", decoded.BookingID)
	assert.Equal(t, "2024-08-01", decoded.Start)
	assert.Equal(t, "2024-08-03", decoded.End)
}

func TestPublishBookingEvent_RedialsAfterFailure(t *testing.T) {
	ch := &fakeChannel{publishErr: errors.New("channel closed")}
	dials := 0
	p := newTestPublisher(ch, &dials)

	err := p.PublishBookingEvent(context.Background(), testEvent())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "booking.created")
	assert.Equal(t, 1, ch.closed)

	ch.publishErr = nil
	require.NoError(t, p.PublishBookingEvent(context.Background(), testEvent()))
	assert.Equal(t, 2, dials)
}

func TestPublishBookingEvent_SlowDialHonoursContext(t *testing.T) {
	ch := &fakeChannel{}
	release := make(chan struct{})
	var dials atomic.Int32
	p := NewAMQPPublisher("amqp://test", "booking.events")
	p.dial = func(string, time.Duration) (*amqp.Connection, channel, error) {
		dials.Add(1)
		select {
		case <-release:
		case <-time.After(500 * time.Millisecond):
		}
		return nil, ch, nil
	}

	var wg sync.WaitGroup
	errs := make([]error, 3)
	started := time.Now()
	for i := 0; i < len(errs); i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
			defer cancel()
			errs[i] = p.PublishBookingEvent(ctx, testEvent())
		}(i)
	}
	wg.Wait()
	elapsed := time.Since(started)

	assert.Less(t, elapsed, 250*time.Millisecond, "callers do not queue behind the dial")
	for _, err := range errs {
		assert.ErrorIs(t, err, context.DeadlineExceeded)
	}
	assert.Equal(t, int32(1), dials.Load(), "one dial in flight at a time")

	// the dial finishes in the background and the next publish uses it
	close(release)
	require.NoError(t, p.PublishBookingEvent(context.Background(), testEvent()))
	assert.Equal(t, int32(1), dials.Load())
	assert.Len(t, ch.published, 1)
	require.NoError(t, p.Close())
}

func TestPublishBookingEvent_BacksOffAfterDialFailure(t *testing.T) {
	ch := &fakeChannel{}
	now := time.Date(2024, time.May, 20, 9, 0, 0, 0, time.UTC)
	dials := 0
	p := NewAMQPPublisher("amqp://test", "booking.events")
	p.now = func() time.Time { return now }
	p.dial = func(string, time.Duration) (*amqp.Connection, channel, error) {
		dials++
		if dials == 1 {
			return nil, nil, errors.New("connection refused")
		}
		return nil, ch, nil
	}

	err := p.PublishBookingEvent(context.Background(), testEvent())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection refused")

	now = now.Add(p.redialBackoff / 2)
	err = p.PublishBookingEvent(context.Background(), testEvent())
	assert.ErrorIs(t, err, ErrBrokerBackoff)
	assert.Equal(t, 1, dials, "no redial before the backoff elapses")

	now = now.Add(p.redialBackoff)
	require.NoError(t, p.PublishBookingEvent(context.Background(), testEvent()))
	assert.Equal(t, 2, dials)
	assert.Len(t, ch.published, 1)
}

func TestPublishBookingEvent_CancelledContextFailsFast(t *testing.T) {
	dials := 0
	p := newTestPublisher(&fakeChannel{}, &dials)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := p.PublishBookingEvent(ctx, testEvent())

	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 0, dials)
}

func TestNopPublisher(t *testing.T) {
	assert.NoError(t, NopPublisher{}.PublishBookingEvent(context.Background(), testEvent()))
}
