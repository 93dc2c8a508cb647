/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package flow

import (
	"errors"
	"time"
)

// CorrelationID ties a flow's initiation to its completion event.
type CorrelationID string

// DefaultCorrelationID is used when no correlation ID is configured.
const DefaultCorrelationID CorrelationID = "my-first-offer"

// Kind is the kind of flow initiated against the delegated service.
type Kind string

const (
	// CredentialOffer is an OpenID4VCI credential offer.
	CredentialOffer Kind = "CredentialOffer"
	// SelfIssuedIdentityRequest is a SIOPv2 authorization request.
	SelfIssuedIdentityRequest Kind = "SelfIssuedIdentityRequest"
	// PresentationRequest is an OID4VP authorization request.
	PresentationRequest Kind = "PresentationRequest"
)

// Kinds lists all flow kinds in initiation order.
var Kinds = []Kind{CredentialOffer, SelfIssuedIdentityRequest, PresentationRequest}

// State is the state of a flow.
type State string

const (
	// StateInitiated is set when the initiation request is about to be sent.
	StateInitiated State = "Initiated"
	// StateAwaitingCompletion is set once the delegated service returned a transport string.
	StateAwaitingCompletion State = "AwaitingCompletion"
	// StateCompleting is held while the completion side effect is in flight.
	StateCompleting State = "Completing"
	// StateCompleted is terminal.
	StateCompleted State = "Completed"
)

var (
	// ErrNotFound is returned when no flow exists for the given correlation ID and kind.
	ErrNotFound = errors.New("flow not found")
	// ErrNotAwaiting is returned when a flow has not reached AwaitingCompletion.
	ErrNotAwaiting = errors.New("flow is not awaiting completion")
	// ErrAlreadyCompleted is returned when a flow is being completed or is completed.
	ErrAlreadyCompleted = errors.New("flow already completed")
	// ErrInvalidTransition is returned when a transition is not allowed from the current state.
	ErrInvalidTransition = errors.New("invalid flow state transition")
)

// Record is the state of a single flow.
type Record struct {
	CorrelationID   CorrelationID `json:"correlationId"`
	Kind            Kind          `json:"kind"`
	State           State         `json:"state"`
	TransportString string        `json:"transportString,omitempty"`
	SubjectID       string        `json:"subjectId,omitempty"`
	Token           string        `json:"token,omitempty"`
	InitiatedAt     time.Time     `json:"initiatedAt"`
	CompletedAt     *time.Time    `json:"completedAt,omitempty"`
}

// Completion holds the data recorded when a flow completes.
type Completion struct {
	SubjectID string
	Token     string
}
