/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package event

import (
	"encoding/json"
	"fmt"

	"github.com/trustbloc/logutil-go/pkg/log"
	"go.uber.org/zap"

	"github.com/trustbloc/vcs-event-listener/internal/logfields"
	"github.com/trustbloc/vcs-event-listener/pkg/event/spi"
)

// Initialize creates the event bus and starts the subscriber that reports flow outcomes.
func Initialize(cfg Config, topic string) (*Bus, error) {
	eventBus := NewEventBus(cfg)

	subscriber, err := NewEventSubscriber(eventBus, topic, HandleFlowEvent)
	if err != nil {
		return nil, err
	}

	subscriber.Start()

	return eventBus, nil
}

// HandleFlowEvent reports a flow outcome to the operator log.
func HandleFlowEvent(e *spi.Event) error {
	payload := &spi.FlowEventPayload{}

	if len(e.Data) > 0 {
		if err := json.Unmarshal(e.Data, payload); err != nil {
			return fmt.Errorf("unmarshal flow event payload: %w", err)
		}
	}

	fields := []zap.Field{
		log.WithID(e.ID),
		log.WithTxID(e.TransactionID),
		logfields.WithFlowKind(payload.Kind),
	}

	switch e.Type {
	case spi.FlowInitiated:
		logger.Info("Flow initiated", fields...)
	case spi.CredentialOfferCompleted:
		logger.Info("Credential submitted", append(fields, logfields.WithSubjectID(payload.SubjectID))...)
	case spi.IdentityVerified:
		logger.Info("Self-issued identity verified", append(fields, logfields.WithIDToken(payload.Token))...)
	case spi.PresentationVerified:
		logger.Info("Presentation verified", append(fields, logfields.WithVPToken(payload.Token))...)
	case spi.CorrelationMismatch:
		logger.Warn("Event for unknown flow", append(fields, logfields.WithCorrelationID(payload.CorrelationID))...)
	case spi.FlowInitiationFailed, spi.CredentialSubmissionFailed, spi.CredentialSubmissionUnresolved:
		logger.Error("Flow failed", append(fields, logfields.WithEventKind(string(e.Type)),
			zap.String("reason", payload.Error))...)
	default:
		logger.Info("Handling event", logfields.WithEvent(e))
	}

	return nil
}
