/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

//go:generate mockgen -destination gomocks_test.go -package flowreactor . Service

package flowreactor

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/trustbloc/vcs-event-listener/pkg/callbackevent"
	"github.com/trustbloc/vcs-event-listener/pkg/observability/tracing/attributeutil"
)

type Service interface {
	React(ctx context.Context, event callbackevent.Event) error
}

type Wrapper struct {
	svc    Service
	tracer trace.Tracer
}

func Wrap(svc Service, tracer trace.Tracer) *Wrapper {
	return &Wrapper{svc: svc, tracer: tracer}
}

func (w *Wrapper) React(ctx context.Context, event callbackevent.Event) error {
	ctx, span := w.tracer.Start(ctx, "flowreactor.React")
	defer span.End()

	span.SetAttributes(attribute.String("event_tag", event.Tag()))
	span.SetAttributes(attributeutil.JSON("event", event,
		attributeutil.WithRedacted("id_token"), attributeutil.WithRedacted("vp_token")))

	if err := w.svc.React(ctx, event); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())

		return err
	}

	return nil
}
