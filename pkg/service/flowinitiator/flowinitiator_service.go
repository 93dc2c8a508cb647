/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

//go:generate mockgen -destination flowinitiator_service_mocks_test.go -package flowinitiator_test -source=flowinitiator_service.go -mock_names delegatedService=MockDelegatedService,flowRegistry=MockFlowRegistry,eventService=MockEventService,metricsProvider=MockMetricsProvider

package flowinitiator

import (
	"context"
	"errors"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/trustbloc/logutil-go/pkg/log"
	"golang.org/x/sync/errgroup"

	"github.com/trustbloc/vcs-event-listener/internal/logfields"
	"github.com/trustbloc/vcs-event-listener/pkg/event/spi"
	"github.com/trustbloc/vcs-event-listener/pkg/flow"
	noopMetricsProvider "github.com/trustbloc/vcs-event-listener/pkg/observability/metrics/noop"
	"github.com/trustbloc/vcs-event-listener/pkg/restapiclient"
)

var logger = log.New("flow-initiator")

// DefaultPresentationDefinitionID is requested by presentation flows when none is configured.
const DefaultPresentationDefinitionID = "selv_presentation_definition"

var (
	// ErrEmptyTransportString is returned when the delegated service replied with an empty body.
	ErrEmptyTransportString = errors.New("empty transport string")
	// ErrInvalidEncoding is returned when the delegated service replied with a body that is not UTF-8.
	ErrInvalidEncoding = errors.New("transport string is not valid UTF-8")
	// ErrUnsupportedKind is returned for an unknown flow kind.
	ErrUnsupportedKind = errors.New("unsupported flow kind")
)

type delegatedService interface {
	CreateOffer(ctx context.Context, req *restapiclient.CreateOfferRequest) ([]byte, error)
	CreateAuthorizationRequest(ctx context.Context, req *restapiclient.CreateAuthorizationRequest) ([]byte, error)
}

type flowRegistry interface {
	Register(id flow.CorrelationID, kind flow.Kind) flow.Record
	Await(id flow.CorrelationID, kind flow.Kind, transportString string) error
}

type eventService interface {
	Publish(ctx context.Context, topic string, messages ...*spi.Event) error
}

type metricsProvider interface {
	FlowInitiated(kind string)
	FlowInitiationFailed(kind string)
	FlowInitiationTime(kind string, value time.Duration)
}

// InitiationError is returned when a flow could not be started.
type InitiationError struct {
	Kind flow.Kind
	Err  error
}

func (e *InitiationError) Error() string {
	return fmt.Sprintf("initiate %s flow: %v", e.Kind, e.Err)
}

func (e *InitiationError) Unwrap() error {
	return e.Err
}

// Result is the outcome of a single initiation.
type Result struct {
	Kind            flow.Kind
	TransportString string
	Err             error
}

type Config struct {
	DelegatedService         delegatedService
	Registry                 flowRegistry
	EventSvc                 eventService
	EventTopic               string
	PresentationDefinitionID string
	Metrics                  metricsProvider
}

type Service struct {
	delegatedService         delegatedService
	registry                 flowRegistry
	eventSvc                 eventService
	eventTopic               string
	presentationDefinitionID string
	metrics                  metricsProvider
}

func New(cfg *Config) *Service {
	metrics := cfg.Metrics
	if metrics == nil {
		metrics = &noopMetricsProvider.NoMetrics{}
	}

	presDefID := cfg.PresentationDefinitionID
	if presDefID == "" {
		presDefID = DefaultPresentationDefinitionID
	}

	return &Service{
		delegatedService:         cfg.DelegatedService,
		registry:                 cfg.Registry,
		eventSvc:                 cfg.EventSvc,
		eventTopic:               cfg.EventTopic,
		presentationDefinitionID: presDefID,
		metrics:                  metrics,
	}
}

// Initiate starts a flow of the given kind and returns the transport string exactly as the
// delegated service produced it. On success the flow awaits completion in the registry.
func (s *Service) Initiate(ctx context.Context, kind flow.Kind, id flow.CorrelationID) (string, error) {
	st := time.Now()

	defer func() {
		s.metrics.FlowInitiationTime(string(kind), time.Since(st))
	}()

	s.registry.Register(id, kind)

	transportString, err := s.initiate(ctx, kind, id)
	if err == nil {
		err = s.registry.Await(id, kind, transportString)
	}

	if err != nil {
		s.metrics.FlowInitiationFailed(string(kind))

		initErr := &InitiationError{Kind: kind, Err: err}

		s.sendEvent(ctx, spi.FlowInitiationFailed, &spi.FlowEventPayload{
			CorrelationID: string(id),
			Kind:          string(kind),
			Error:         initErr.Error(),
		})

		return "", initErr
	}

	s.metrics.FlowInitiated(string(kind))

	logger.Debugc(ctx, "Flow initiated", logfields.WithCorrelationID(string(id)),
		logfields.WithFlowKind(string(kind)), logfields.WithTransportString(transportString))

	s.sendEvent(ctx, spi.FlowInitiated, &spi.FlowEventPayload{
		CorrelationID: string(id),
		Kind:          string(kind),
	})

	return transportString, nil
}

// InitiateAll starts one flow of every kind concurrently. Results are returned in flow.Kinds order.
// A failed initiation is logged and does not cancel the others.
func (s *Service) InitiateAll(ctx context.Context, id flow.CorrelationID) []Result {
	results := make([]Result, len(flow.Kinds))

	var g errgroup.Group

	for i, kind := range flow.Kinds {
		i, kind := i, kind

		g.Go(func() error {
			transportString, err := s.Initiate(ctx, kind, id)
			if err != nil {
				logger.Errorc(ctx, "Flow initiation failed", logfields.WithFlowKind(string(kind)),
					logfields.WithCorrelationID(string(id)), log.WithError(err))
			}

			results[i] = Result{Kind: kind, TransportString: transportString, Err: err}

			return nil
		})
	}

	_ = g.Wait() //nolint:errcheck

	return results
}

func (s *Service) initiate(ctx context.Context, kind flow.Kind, id flow.CorrelationID) (string, error) {
	var (
		body []byte
		err  error
	)

	switch kind {
	case flow.CredentialOffer:
		body, err = s.delegatedService.CreateOffer(ctx, &restapiclient.CreateOfferRequest{
			OfferID: string(id),
		})
	case flow.SelfIssuedIdentityRequest:
		body, err = s.delegatedService.CreateAuthorizationRequest(ctx, &restapiclient.CreateAuthorizationRequest{
			Nonce: string(id),
		})
	case flow.PresentationRequest:
		logger.Debugc(ctx, "Requesting presentation", logfields.WithPresDefID(s.presentationDefinitionID))

		body, err = s.delegatedService.CreateAuthorizationRequest(ctx, &restapiclient.CreateAuthorizationRequest{
			Nonce:                    string(id),
			PresentationDefinitionID: s.presentationDefinitionID,
		})
	default:
		return "", ErrUnsupportedKind
	}

	if err != nil {
		return "", err
	}

	if !utf8.Valid(body) {
		return "", ErrInvalidEncoding
	}

	if len(body) == 0 {
		return "", ErrEmptyTransportString
	}

	return string(body), nil
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
