/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

//go:generate mockgen -destination flowreactor_service_mocks_test.go -package flowreactor_test -source=flowreactor_service.go -mock_names delegatedService=MockDelegatedService,flowRegistry=MockFlowRegistry,eventService=MockEventService,metricsProvider=MockMetricsProvider

package flowreactor

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/trustbloc/logutil-go/pkg/log"

	"github.com/trustbloc/vcs-event-listener/internal/logfields"
	"github.com/trustbloc/vcs-event-listener/pkg/callbackevent"
	"github.com/trustbloc/vcs-event-listener/pkg/credential"
	"github.com/trustbloc/vcs-event-listener/pkg/event/spi"
	"github.com/trustbloc/vcs-event-listener/pkg/flow"
	noopMetricsProvider "github.com/trustbloc/vcs-event-listener/pkg/observability/metrics/noop"
	"github.com/trustbloc/vcs-event-listener/pkg/restapiclient"
)

var logger = log.New("flow-reactor")

// nonceClaim carries the correlation ID inside id_token and vp_token JWTs.
const nonceClaim = "nonce"

// ErrDuplicateCompletion is returned when an event arrives for a flow that is completing or completed.
var ErrDuplicateCompletion = errors.New("duplicate completion")

type delegatedService interface {
	SubmitCredential(ctx context.Context, req *restapiclient.SubmitCredentialRequest) error
}

type flowRegistry interface {
	Claim(id flow.CorrelationID, kind flow.Kind) (flow.Record, error)
	Complete(id flow.CorrelationID, kind flow.Kind, c flow.Completion) (flow.Record, error)
	Release(id flow.CorrelationID, kind flow.Kind) error
}

type eventService interface {
	Publish(ctx context.Context, topic string, messages ...*spi.Event) error
}

type metricsProvider interface {
	FlowCompleted(kind string)
	CorrelationMismatch()
	DuplicateCompletion()
	ReactionFailed()
	CredentialSubmissionTime(value time.Duration)
	CredentialSubmissionFailed()
}

// CorrelationMismatchError is returned when an event refers to a flow this process is not awaiting.
type CorrelationMismatchError struct {
	CorrelationID flow.CorrelationID
	Kind          flow.Kind
}

func (e *CorrelationMismatchError) Error() string {
	return fmt.Sprintf("no %s flow awaiting completion for correlation ID [%s]", e.Kind, e.CorrelationID)
}

// ReactionIOError is returned when the side effect of an event failed.
// Unresolved is set when the delegated service may have applied it anyway.
type ReactionIOError struct {
	Kind       flow.Kind
	Err        error
	Unresolved bool
}

func (e *ReactionIOError) Error() string {
	return fmt.Sprintf("react to %s completion: %v", e.Kind, e.Err)
}

func (e *ReactionIOError) Unwrap() error {
	return e.Err
}

type Config struct {
	DelegatedService     delegatedService
	Registry             flowRegistry
	EventSvc             eventService
	EventTopic           string
	Credential           *credential.Credential
	DefaultCorrelationID flow.CorrelationID
	Metrics              metricsProvider
}

type Service struct {
	delegatedService     delegatedService
	registry             flowRegistry
	eventSvc             eventService
	eventTopic           string
	credential           *credential.Credential
	defaultCorrelationID flow.CorrelationID
	metrics              metricsProvider
}

func New(cfg *Config) *Service {
	metrics := cfg.Metrics
	if metrics == nil {
		metrics = &noopMetricsProvider.NoMetrics{}
	}

	defaultCorrelationID := cfg.DefaultCorrelationID
	if defaultCorrelationID == "" {
		defaultCorrelationID = flow.DefaultCorrelationID
	}

	return &Service{
		delegatedService:     cfg.DelegatedService,
		registry:             cfg.Registry,
		eventSvc:             cfg.EventSvc,
		eventTopic:           cfg.EventTopic,
		credential:           cfg.Credential,
		defaultCorrelationID: defaultCorrelationID,
		metrics:              metrics,
	}
}

// React performs the side effect for a decoded completion event.
func (s *Service) React(ctx context.Context, event callbackevent.Event) error {
	switch e := event.(type) {
	case callbackevent.CredentialRequestVerified:
		return s.submitCredential(ctx, e)
	case callbackevent.SelfIssuedIdentityVerified:
		logger.Infoc(ctx, "Self-issued identity verified", logfields.WithIDToken(e.IDToken))

		return s.recordToken(ctx, flow.SelfIssuedIdentityRequest, e.IDToken, spi.IdentityVerified)
	case callbackevent.PresentationVerified:
		logger.Infoc(ctx, "Presentation verified", logfields.WithVPToken(e.VPToken))

		return s.recordToken(ctx, flow.PresentationRequest, e.VPToken, spi.PresentationVerified)
	default:
		return fmt.Errorf("unsupported event type %T", event)
	}
}

func (s *Service) submitCredential(ctx context.Context, e callbackevent.CredentialRequestVerified) error {
	id := flow.CorrelationID(e.OfferID)

	if err := s.claim(ctx, id, flow.CredentialOffer); err != nil {
		return err
	}

	subjectID := s.credential.SubjectID()

	if e.SubjectID != nil {
		if subjectID != "" && *e.SubjectID != subjectID {
			logger.Warnc(ctx, "Credential subject differs from the verified holder, submitting pre-signed credential as is",
				logfields.WithCorrelationID(e.OfferID), logfields.WithSubjectID(*e.SubjectID),
				logfields.WithCredentialSubjectID(subjectID))
		}

		subjectID = *e.SubjectID
	}

	if s.credential.Expired(time.Now()) {
		logger.Warnc(ctx, "Pre-signed credential has expired", logfields.WithCorrelationID(e.OfferID))
	}

	st := time.Now()

	err := s.delegatedService.SubmitCredential(ctx, &restapiclient.SubmitCredentialRequest{
		OfferID:    e.OfferID,
		Credential: s.credential.Raw(),
		IsSigned:   true,
	})

	s.metrics.CredentialSubmissionTime(time.Since(st))

	if err != nil {
		return s.submissionFailed(ctx, e.OfferID, subjectID, err)
	}

	if _, err = s.registry.Complete(id, flow.CredentialOffer, flow.Completion{SubjectID: subjectID}); err != nil {
		return fmt.Errorf("complete flow: %w", err)
	}

	s.metrics.FlowCompleted(string(flow.CredentialOffer))

	logger.Infoc(ctx, "Credential submitted", logfields.WithCorrelationID(e.OfferID),
		logfields.WithSubjectID(subjectID))

	s.sendEvent(ctx, spi.CredentialOfferCompleted, &spi.FlowEventPayload{
		CorrelationID: e.OfferID,
		Kind:          string(flow.CredentialOffer),
		SubjectID:     subjectID,
	})

	return nil
}

// submissionFailed rolls the flow back for redelivery when the credential was not accepted.
// When the outcome is unknown the flow stays Completing until an operator resolves it.
func (s *Service) submissionFailed(ctx context.Context, offerID, subjectID string, err error) error {
	id := flow.CorrelationID(offerID)

	s.metrics.CredentialSubmissionFailed()
	s.metrics.ReactionFailed()

	reactionErr := &ReactionIOError{
		Kind:       flow.CredentialOffer,
		Err:        err,
		Unresolved: restapiclient.IsIndeterminate(err),
	}

	eventType := spi.CredentialSubmissionFailed

	if reactionErr.Unresolved {
		eventType = spi.CredentialSubmissionUnresolved

		logger.Errorc(ctx, "Credential submission outcome unknown, flow left completing for operator resolution",
			logfields.WithCorrelationID(offerID), log.WithError(err))
	} else if releaseErr := s.registry.Release(id, flow.CredentialOffer); releaseErr != nil {
		logger.Errorc(ctx, "Failed to release flow", logfields.WithCorrelationID(offerID),
			log.WithError(releaseErr))
	}

	s.sendEvent(ctx, eventType, &spi.FlowEventPayload{
		CorrelationID: offerID,
		Kind:          string(flow.CredentialOffer),
		SubjectID:     subjectID,
		Error:         reactionErr.Error(),
	})

	return reactionErr
}

func (s *Service) recordToken(ctx context.Context, kind flow.Kind, token string, eventType spi.EventType) error {
	id := s.defaultCorrelationID

	if nonce, ok := credential.UnverifiedStringClaim(token, nonceClaim); ok {
		id = flow.CorrelationID(nonce)
	}

	if err := s.claim(ctx, id, kind); err != nil {
		return err
	}

	if _, err := s.registry.Complete(id, kind, flow.Completion{Token: token}); err != nil {
		return fmt.Errorf("complete flow: %w", err)
	}

	s.metrics.FlowCompleted(string(kind))

	s.sendEvent(ctx, eventType, &spi.FlowEventPayload{
		CorrelationID: string(id),
		Kind:          string(kind),
		Token:         token,
	})

	return nil
}

func (s *Service) claim(ctx context.Context, id flow.CorrelationID, kind flow.Kind) error {
	_, err := s.registry.Claim(id, kind)

	switch {
	case err == nil:
		return nil
	case errors.Is(err, flow.ErrAlreadyCompleted):
		s.metrics.DuplicateCompletion()

		logger.Infoc(ctx, "Flow already completed, ignoring event", logfields.WithCorrelationID(string(id)),
			logfields.WithFlowKind(string(kind)))

		return ErrDuplicateCompletion
	case errors.Is(err, flow.ErrNotFound), errors.Is(err, flow.ErrNotAwaiting):
		s.metrics.CorrelationMismatch()

		mismatchErr := &CorrelationMismatchError{CorrelationID: id, Kind: kind}

		logger.Warnc(ctx, "Event does not match an awaiting flow", logfields.WithCorrelationID(string(id)),
			logfields.WithFlowKind(string(kind)), log.WithError(err))

		s.sendEvent(ctx, spi.CorrelationMismatch, &spi.FlowEventPayload{
			CorrelationID: string(id),
			Kind:          string(kind),
			Error:         mismatchErr.Error(),
		})

		return mismatchErr
	default:
		return fmt.Errorf("claim flow: %w", err)
	}
}

func (s *Service) sendEvent(ctx context.Context, eventType spi.EventType, payload *spi.FlowEventPayload) {
	if s.eventSvc == nil {
		return
	}

	e, err := spi.NewFlowEvent(eventType, payload)
	if err == nil {
		err = s.eventSvc.Publish(ctx, s.eventTopic, e)
	}

	if err != nil {
		logger.Warnc(ctx, "Failed to publish flow event, ignoring..", log.WithError(err))
	}
}
