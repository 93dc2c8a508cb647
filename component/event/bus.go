/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package event

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"

	"github.com/samber/lo"
	"github.com/trustbloc/logutil-go/pkg/log"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/trustbloc/vcs-event-listener/internal/logfields"
	"github.com/trustbloc/vcs-event-listener/pkg/event/spi"
)

var logger = log.New("event-bus")

// ErrClosed is returned when the bus is used after Close.
var ErrClosed = errors.New("event bus closed")

const (
	defaultBufferSize = 250
)

// Config holds the configuration for the publisher/subscriber.
type Config struct {
	BufferSize int
	Tracer     trace.Tracer
}

// DefaultConfig returns the default bus configuration.
func DefaultConfig() Config {
	return Config{BufferSize: defaultBufferSize}
}

// Bus is an in-memory publisher/subscriber for flow outcome events.
//
// Publishing queues the events and returns. A subscriber whose buffer is full
// misses the event instead of stalling delivery to the others, so a slow
// subscriber never holds up the callback path.
type Bus struct {
	Config

	subscribers map[string][]chan *spi.Event
	mutex       sync.RWMutex

	queue   chan *delivery
	stopped chan struct{}
	done    chan struct{}
	dropped atomic.Uint64

	closed    atomic.Bool
	closeOnce sync.Once
}

type delivery struct {
	topic  string
	events []*spi.Event
}

// NewEventBus returns an in-memory event bus that accepts events until it is closed.
func NewEventBus(cfg Config) *Bus {
	if cfg.BufferSize <= 0 {
		cfg.BufferSize = defaultBufferSize
	}

	b := &Bus{
		Config:      cfg,
		subscribers: make(map[string][]chan *spi.Event),
		queue:       make(chan *delivery, cfg.BufferSize),
		stopped:     make(chan struct{}),
		done:        make(chan struct{}),
	}

	go b.deliverAll()

	return b
}

// Close stops delivery and closes all subscriber channels.
func (b *Bus) Close() error {
	b.closeOnce.Do(b.stop)

	return nil
}

// IsConnected returns true while the bus accepts events.
func (b *Bus) IsConnected() bool {
	return !b.closed.Load()
}

// Dropped returns the number of events that were not handed to a subscriber because its buffer was full.
func (b *Bus) Dropped() uint64 {
	return b.dropped.Load()
}

func (b *Bus) stop() {
	logger.Info("Stopping event bus")

	b.closed.Store(true)

	close(b.stopped)

	<-b.done

	b.mutex.Lock()
	defer b.mutex.Unlock()

	for _, chans := range b.subscribers {
		for _, ch := range chans {
			close(ch)
		}
	}

	b.subscribers = nil

	logger.Info("Event bus stopped", zap.Uint64("dropped", b.Dropped()))
}

// Subscribe returns the channel that events published to the topic are delivered on.
// The channel is closed when the bus is closed.
func (b *Bus) Subscribe(_ context.Context, topic string) (<-chan *spi.Event, error) {
	if b.closed.Load() {
		return nil, ErrClosed
	}

	logger.Debug("Subscribing to topic", log.WithTopic(topic))

	b.mutex.Lock()
	defer b.mutex.Unlock()

	// closed while waiting for the lock
	if b.subscribers == nil {
		return nil, ErrClosed
	}

	ch := make(chan *spi.Event, b.BufferSize)

	b.subscribers[topic] = append(b.subscribers[topic], ch)

	return ch, nil
}

// Publish queues the events for delivery to the subscribers of the topic. It blocks only while
// the queue is full, and returns the context error if the context is done first.
func (b *Bus) Publish(ctx context.Context, topic string, events ...*spi.Event) error {
	if b.closed.Load() {
		return ErrClosed
	}

	if b.Tracer != nil {
		var span trace.Span

		ctx, span = b.Tracer.Start(ctx, "event-bus.Publish")
		span.SetAttributes(
			attribute.String("topic", topic),
			attribute.StringSlice("types", lo.Map(events, func(e *spi.Event, _ int) string {
				return string(e.Type)
			})),
		)

		defer span.End()
	}

	select {
	case b.queue <- &delivery{topic: topic, events: events}:
		return nil
	case <-b.stopped:
		return ErrClosed
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (b *Bus) deliverAll() {
	defer close(b.done)

	for {
		select {
		case d := <-b.queue:
			b.deliver(d)
		case <-b.stopped:
			return
		}
	}
}

func (b *Bus) deliver(d *delivery) {
	b.mutex.RLock()
	defer b.mutex.RUnlock()

	subscribers := b.subscribers[d.topic]

	if len(subscribers) == 0 {
		logger.Debug("No subscribers for topic", log.WithTopic(d.topic))

		return
	}

	for _, e := range d.events {
		for _, ch := range subscribers {
			select {
			case ch <- e.Copy():
				logger.Debug("Event delivered", log.WithTopic(d.topic), log.WithID(e.ID),
					logfields.WithEventKind(string(e.Type)))
			default:
				b.dropped.Add(1)

				logger.Warn("Subscriber buffer full, event dropped", log.WithTopic(d.topic), log.WithID(e.ID),
					logfields.WithEventKind(string(e.Type)), log.WithTxID(e.TransactionID))
			}
		}
	}
}
