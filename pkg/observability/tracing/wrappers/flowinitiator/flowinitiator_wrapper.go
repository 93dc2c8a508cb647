/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

//go:generate mockgen -destination gomocks_test.go -package flowinitiator . Service

package flowinitiator

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/trustbloc/vcs-event-listener/pkg/flow"
	"github.com/trustbloc/vcs-event-listener/pkg/service/flowinitiator"
)

type Service interface {
	Initiate(ctx context.Context, kind flow.Kind, correlationID flow.CorrelationID) (string, error)
	InitiateAll(ctx context.Context, correlationID flow.CorrelationID) []flowinitiator.Result
}

type Wrapper struct {
	svc    Service
	tracer trace.Tracer
}

func Wrap(svc Service, tracer trace.Tracer) *Wrapper {
	return &Wrapper{svc: svc, tracer: tracer}
}

func (w *Wrapper) Initiate(ctx context.Context, kind flow.Kind, correlationID flow.CorrelationID) (string, error) {
	ctx, span := w.tracer.Start(ctx, "flowinitiator.Initiate")
	defer span.End()

	span.SetAttributes(attribute.String("flow_kind", string(kind)))
	span.SetAttributes(attribute.String("correlation_id", string(correlationID)))

	transportString, err := w.svc.Initiate(ctx, kind, correlationID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())

		return "", err
	}

	span.SetAttributes(attribute.String("transport_string", transportString))

	return transportString, nil
}

func (w *Wrapper) InitiateAll(ctx context.Context, correlationID flow.CorrelationID) []flowinitiator.Result {
	ctx, span := w.tracer.Start(ctx, "flowinitiator.InitiateAll")
	defer span.End()

	span.SetAttributes(attribute.String("correlation_id", string(correlationID)))

	results := w.svc.InitiateAll(ctx, correlationID)

	for _, r := range results {
		if r.Err != nil {
			span.RecordError(r.Err, trace.WithAttributes(attribute.String("flow_kind", string(r.Kind))))
		}
	}

	return results
}
