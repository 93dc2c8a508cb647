/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package spi

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

const (
	// FlowEventTopic is the default topic flow outcomes are published to.
	FlowEventTopic = "vcs-event-listener-flows"

	// FlowEventSource is the source URI of flow outcome events.
	FlowEventSource = "source://vcs-event-listener/flows"
)

// EventType event type.
type EventType string

const (
	// FlowInitiated is published once the delegated service returned a transport string for a flow.
	FlowInitiated = EventType("flow_initiated")
	// FlowInitiationFailed is published when a flow could not be started.
	FlowInitiationFailed = EventType("flow_initiation_failed")

	// CredentialOfferCompleted is published after the credential was submitted for a verified credential request.
	CredentialOfferCompleted = EventType("credential_offer_completed")
	// CredentialSubmissionFailed is published when the credential submission failed after retries.
	CredentialSubmissionFailed = EventType("credential_submission_failed")
	// CredentialSubmissionUnresolved is published when it is unknown whether the credential was submitted.
	// The flow stays Completing until an operator resolves it.
	CredentialSubmissionUnresolved = EventType("credential_submission_unresolved")

	// IdentityVerified carries the id_token of a completed SIOPv2 authorization response.
	IdentityVerified = EventType("identity_verified")
	// PresentationVerified carries the vp_token of a completed OID4VP authorization response.
	PresentationVerified = EventType("presentation_verified")

	// CorrelationMismatch is published when an inbound event refers to a flow that is not tracked.
	CorrelationMismatch = EventType("correlation_mismatch")
)

type Payload []byte

type Event struct {
	// SpecVersion is spec version(required).
	SpecVersion string `json:"specVersion"`

	// ID identifies the event(required).
	ID string `json:"id"`

	// Source is URI for producer(required).
	Source string `json:"source"`

	// Type defines event type(required).
	Type EventType `json:"type"`

	// Time defines time of occurrence(required).
	Time *time.Time `json:"time"`

	// DataContentType is data content type(optional).
	DataContentType string `json:"dataContentType,omitempty"`

	// Data defines message(optional).
	Data []byte `json:"data,omitempty"`

	// TransactionID carries the flow correlation ID(optional).
	TransactionID string `json:"txnId,omitempty"`

	// Subject defines subject(optional).
	Subject string `json:"subject,omitempty"`
}

// Copy an event.
func (m *Event) Copy() *Event {
	return &Event{
		SpecVersion:     m.SpecVersion,
		ID:              m.ID,
		Source:          m.Source,
		Type:            m.Type,
		Time:            m.Time,
		DataContentType: m.DataContentType,
		Data:            m.Data,
		TransactionID:   m.TransactionID,
		Subject:         m.Subject,
	}
}

// NewEventWithPayload creates a new Event with payload.
func NewEventWithPayload(uuid string, source string, eventType EventType, payload Payload) *Event {
	event := NewEvent(uuid, source, eventType)

	event.Data = payload

	// flow payloads are always json
	event.DataContentType = "application/json"

	return event
}

// NewEvent creates a new Event and sets all required fields.
func NewEvent(uuid string, source string, eventType EventType) *Event {
	now := time.Now().UTC()

	return &Event{
		SpecVersion: "1.0",
		ID:          uuid,
		Source:      source,
		Type:        eventType,
		Time:        &now,
	}
}

// FlowEventPayload is the data carried by flow outcome events.
type FlowEventPayload struct {
	CorrelationID string `json:"correlationId"`
	Kind          string `json:"kind"`
	SubjectID     string `json:"subjectId,omitempty"`
	Token         string `json:"token,omitempty"`
	Error         string `json:"error,omitempty"`
}

// NewFlowEvent creates a flow outcome event correlated by the payload's correlation ID.
func NewFlowEvent(eventType EventType, payload *FlowEventPayload) (*Event, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	event := NewEventWithPayload(uuid.NewString(), FlowEventSource, eventType, data)
	event.TransactionID = payload.CorrelationID

	return event, nil
}
