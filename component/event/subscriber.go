/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package event

//go:generate mockgen -destination subscriber_mocks_test.go -package event_test . EventSubscriber

import (
	"context"
	"fmt"
	"sync"

	"github.com/trustbloc/logutil-go/pkg/log"

	"github.com/trustbloc/vcs-event-listener/internal/logfields"
	"github.com/trustbloc/vcs-event-listener/pkg/event/spi"
)

// EventHandler handles a single event delivered to a subscriber.
type EventHandler func(event *spi.Event) error

// EventSubscriber subscribes to a topic.
type EventSubscriber interface {
	Subscribe(ctx context.Context, topic string) (<-chan *spi.Event, error)
}

// Subscriber implements an event subscriber.
type Subscriber struct {
	handler   EventHandler
	startOnce sync.Once

	eventChan <-chan *spi.Event
	doneChan  chan struct{}
}

// NewEventSubscriber returns a new subscriber.
func NewEventSubscriber(sub EventSubscriber, topic string, handler EventHandler) (*Subscriber, error) {
	h := &Subscriber{
		handler:  handler,
		doneChan: make(chan struct{}),
	}

	logger.Debug("Subscribing to topic", log.WithTopic(topic))

	ch, err := sub.Subscribe(context.Background(), topic)
	if err != nil {
		return nil, fmt.Errorf("subscribe to topic [%s]: %w", topic, err)
	}

	h.eventChan = ch

	return h, nil
}

// Done is closed once the event channel has been drained and closed.
func (h *Subscriber) Done() <-chan struct{} {
	return h.doneChan
}

// Start handles events on a separate goroutine until the bus closes the channel.
// Subsequent calls are no-ops.
func (h *Subscriber) Start() {
	h.startOnce.Do(func() {
		go h.listen()
	})
}

func (h *Subscriber) listen() {
	defer close(h.doneChan)

	logger.Debug("Listening for flow events")

	for e := range h.eventChan {
		logger.Debug("Received event", log.WithID(e.ID), logfields.WithEvent(e))

		h.handleEvent(e)
	}

	logger.Info("Event channel closed")
}

func (h *Subscriber) handleEvent(e *spi.Event) {
	if err := h.handler(e); err != nil {
		logger.Error("Failed to handle event", log.WithID(e.ID), logfields.WithEventKind(string(e.Type)),
			log.WithError(err))
	}
}
