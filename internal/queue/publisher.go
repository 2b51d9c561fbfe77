// Package queue publishes booking events to RabbitMQ and PostHog.
package queue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/hotel_booking_app/internal/core/domain"
	"github.com/SscSPs/hotel_booking_app/internal/core/ports"
	amqp "github.com/rabbitmq/amqp091-go"
)

// channel is the subset of *amqp.Channel the publisher uses.
type channel interface {
	QueueDeclare(name string, durable, autoDelete, exclusive, noWait bool, args amqp.Table) (amqp.Queue, error)
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

const (
	defaultDialTimeout   = 5 * time.Second
	defaultRedialBackoff = 5 * time.Second
)

// ErrBrokerBackoff is returned while the publisher waits before re-dialling
// a broker that refused the last connection attempt.
var ErrBrokerBackoff = errors.New("rabbitmq unavailable, waiting before redial")

type dialResult struct {
	conn *amqp.Connection
	ch   channel
	err  error
}

// AMQPPublisher publishes events as persistent JSON messages to a durable queue.
// The connection is opened lazily and re-dialled after the broker drops it.
// At most one dial runs at a time and callers stop waiting on it when their
// context is done.
type AMQPPublisher struct {
	url   string
	queue string
	dial  func(url string, timeout time.Duration) (*amqp.Connection, channel, error)
	now   func() time.Time

	dialTimeout   time.Duration
	redialBackoff time.Duration

	// sem is a one slot lock; unlike a mutex, waiting on it respects ctx
	sem     chan struct{}
	conn    *amqp.Connection
	ch      channel
	pending chan dialResult // non-nil while a dial is in flight
	retryAt time.Time
}

var _ ports.BookingEventPublisher = (*AMQPPublisher)(nil)

// NewAMQPPublisher creates a publisher for the given broker URL and queue.
func NewAMQPPublisher(url, queueName string) *AMQPPublisher {
	return &AMQPPublisher{
		url:           url,
		queue:         queueName,
		dial:          dialChannel,
		now:           time.Now,
		dialTimeout:   defaultDialTimeout,
		redialBackoff: defaultRedialBackoff,
		sem:           make(chan struct{}, 1),
	}
}

func dialChannel(url string, timeout time.Duration) (*amqp.Connection, channel, error) {
	conn, err := amqp.DialConfig(url, amqp.Config{
		Dial:      amqp.DefaultDial(timeout),
		Heartbeat: 10 * time.Second,
		Locale:    "en_US",
	})
	if err != nil {
		return nil, nil, fmt.Errorf("rabbitmq dial: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, nil, fmt.Errorf("rabbitmq channel open: %w", err)
	}
	return conn, ch, nil
}

// PublishBookingEvent marshals the event and publishes it with the queue name as routing key.
func (p *AMQPPublisher) PublishBookingEvent(ctx context.Context, event domain.BookingEvent) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("rabbitmq publish %s: %w", event.Type, err)
	}
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal booking event: %w", err)
	}

	select {
	case p.sem <- struct{}{}:
	case <-ctx.Done():
		return fmt.Errorf("rabbitmq publish %s: %w", event.Type, ctx.Err())
	}
	defer func() { <-p.sem }()

	if err := p.ensureChannel(ctx); err != nil {
		return err
	}

	msg := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    p.now().UTC(),
		Type:         string(event.Type),
		MessageId:    event.BookingID + ":" + string(event.Type),
		Body:         body,
	}
	if err := p.ch.PublishWithContext(ctx, "", p.queue, false, false, msg); err != nil {
		p.reset()
		return fmt.Errorf("rabbitmq publish %s: %w", event.Type, err)
	}
	return nil
}

// ensureChannel must be called holding sem. A dial outlives the caller that
// started it; the next caller picks up its result.
func (p *AMQPPublisher) ensureChannel(ctx context.Context) error {
	if p.pending == nil {
		if p.ch != nil && (p.conn == nil || !p.conn.IsClosed()) {
			return nil
		}
		if p.now().Before(p.retryAt) {
			return ErrBrokerBackoff
		}
		p.reset()
		p.pending = p.startDial()
	}

	select {
	case res := <-p.pending:
		p.pending = nil
		if res.err != nil {
			p.retryAt = p.now().Add(p.redialBackoff)
			return res.err
		}
		p.conn, p.ch = res.conn, res.ch
		return nil
	case <-ctx.Done():
		return fmt.Errorf("rabbitmq connect: %w", ctx.Err())
	}
}

func (p *AMQPPublisher) startDial() chan dialResult {
	// buffered so the dial goroutine never blocks when nobody is waiting
	out := make(chan dialResult, 1)
	go func() {
		conn, ch, err := p.dial(p.url, p.dialTimeout)
		if err == nil {
			if _, err = ch.QueueDeclare(p.queue, true, false, false, false, nil); err != nil {
				closeChannel(conn, ch)
				conn, ch = nil, nil
				err = fmt.Errorf("rabbitmq queue declare %s: %w", p.queue, err)
			}
		}
		out <- dialResult{conn: conn, ch: ch, err: err}
	}()
	return out
}

func closeChannel(conn *amqp.Connection, ch channel) {
	if ch != nil {
		_ = ch.Close()
	}
	if conn != nil {
		_ = conn.Close()
	}
}

func (p *AMQPPublisher) reset() {
	closeChannel(p.conn, p.ch)
	p.conn, p.ch = nil, nil
}

// Close releases the broker connection. A dial still in flight is closed
// when it finishes.
func (p *AMQPPublisher) Close() error {
	p.sem <- struct{}{}
	defer func() { <-p.sem }()

	if pending := p.pending; pending != nil {
		p.pending = nil
		go func() {
			res := <-pending
			closeChannel(res.conn, res.ch)
		}()
	}
	p.reset()
	return nil
}

// NopPublisher drops every event. It is used when no broker is configured.
type NopPublisher struct{}

var _ ports.BookingEventPublisher = NopPublisher{}

func (NopPublisher) PublishBookingEvent(ctx context.Context, event domain.BookingEvent) error {
	slog.DebugContext(ctx, "Booking event dropped, no broker configured",
		slog.String("type", string(event.Type)), slog.String("booking_id", event.BookingID))
	return nil
}
