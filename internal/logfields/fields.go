/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package logfields

import (
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Log Fields.
const (
	FieldAttempt             = "attempt"
	FieldCorrelationID       = "correlationID"
	FieldEvent               = "event"
	FieldEventKind           = "eventKind"
	FieldFlowKind            = "flowKind"
	FieldFlowState           = "flowState"
	FieldIDToken             = "idToken"
	FieldPresDefID           = "presDefID"
	FieldSleep               = "sleep"
	FieldSubjectID           = "subjectID"
	FieldCredentialSubjectID = "credentialSubjectID"
	FieldTransportString     = "transportString"
	FieldUserLogLevel        = "userLogLevel"
	FieldVPToken             = "vpToken"
)

// WithAttempt sets the Attempt field.
func WithAttempt(attempt int) zap.Field {
	return zap.Int(FieldAttempt, attempt)
}

// WithCorrelationID sets the CorrelationID field.
func WithCorrelationID(correlationID string) zap.Field {
	return zap.String(FieldCorrelationID, correlationID)
}

// WithEvent sets the Event field.
func WithEvent(event interface{}) zap.Field {
	return zap.Inline(NewObjectMarshaller(FieldEvent, event))
}

// WithEventKind sets the EventKind field.
func WithEventKind(kind string) zap.Field {
	return zap.String(FieldEventKind, kind)
}

// WithFlowKind sets the FlowKind field.
func WithFlowKind(kind string) zap.Field {
	return zap.String(FieldFlowKind, kind)
}

// WithFlowState sets the FlowState field.
func WithFlowState(state string) zap.Field {
	return zap.String(FieldFlowState, state)
}

// WithIDToken sets the id token field.
func WithIDToken(idToken string) zap.Field {
	return zap.String(FieldIDToken, idToken)
}

// WithPresDefID sets the PresDefID (presentation definition ID) field.
func WithPresDefID(presDefID string) zap.Field {
	return zap.String(FieldPresDefID, presDefID)
}

// WithSleep sets the sleep field.
func WithSleep(sleep time.Duration) zap.Field {
	return zap.Duration(FieldSleep, sleep)
}

// WithSubjectID sets the SubjectID field.
func WithSubjectID(subjectID string) zap.Field {
	return zap.String(FieldSubjectID, subjectID)
}

// WithCredentialSubjectID sets the subject of the pre-signed credential.
func WithCredentialSubjectID(subjectID string) zap.Field {
	return zap.String(FieldCredentialSubjectID, subjectID)
}

// WithTransportString sets the TransportString field.
func WithTransportString(value string) zap.Field {
	return zap.String(FieldTransportString, value)
}

// WithUserLogLevel sets the UserLogLevel field.
func WithUserLogLevel(logLevel string) zap.Field {
	return zap.String(FieldUserLogLevel, logLevel)
}

// WithVPToken sets the vp token field.
func WithVPToken(vpToken string) zap.Field {
	return zap.String(FieldVPToken, vpToken)
}

// ObjectMarshaller uses reflection to marshal an object's fields.
type ObjectMarshaller struct {
	key string
	obj interface{}
}

// NewObjectMarshaller returns a new ObjectMarshaller.
func NewObjectMarshaller(key string, obj interface{}) *ObjectMarshaller {
	return &ObjectMarshaller{key: key, obj: obj}
}

// MarshalLogObject marshals the object's fields.
func (m *ObjectMarshaller) MarshalLogObject(e zapcore.ObjectEncoder) error {
	return e.AddReflected(m.key, m.obj)
}
