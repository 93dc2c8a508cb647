/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package flow

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/samber/lo"
)

type key struct {
	id   CorrelationID
	kind Kind
}

// Registry tracks flows keyed by correlation ID and kind. It is safe for concurrent use.
type Registry struct {
	mutex   sync.RWMutex
	records map[key]*Record
	now     func() time.Time
}

// Opt is a registry option.
type Opt func(r *Registry)

// WithClock sets the time source used for timestamps.
func WithClock(now func() time.Time) Opt {
	return func(r *Registry) {
		r.now = now
	}
}

// NewRegistry returns an empty registry.
func NewRegistry(opts ...Opt) *Registry {
	r := &Registry{
		records: make(map[key]*Record),
		now:     func() time.Time { return time.Now().UTC() },
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Register creates the flow in the Initiated state, replacing any previous record for the same key.
func (r *Registry) Register(id CorrelationID, kind Kind) Record {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	rec := &Record{
		CorrelationID: id,
		Kind:          kind,
		State:         StateInitiated,
		InitiatedAt:   r.now(),
	}

	r.records[key{id: id, kind: kind}] = rec

	return *rec
}

// Await moves an Initiated flow to AwaitingCompletion and records its transport string.
func (r *Registry) Await(id CorrelationID, kind Kind, transportString string) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	rec, err := r.get(id, kind)
	if err != nil {
		return err
	}

	if rec.State != StateInitiated {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, rec.State, StateAwaitingCompletion)
	}

	rec.State = StateAwaitingCompletion
	rec.TransportString = transportString

	return nil
}

// Get returns a copy of the flow record.
func (r *Registry) Get(id CorrelationID, kind Kind) (Record, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	rec, err := r.get(id, kind)
	if err != nil {
		return Record{}, err
	}

	return *rec, nil
}

// List returns copies of all flow records for the correlation ID in kind order.
func (r *Registry) List(id CorrelationID) []Record {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	records := lo.FilterMap(lo.Values(r.records), func(rec *Record, _ int) (Record, bool) {
		return *rec, rec.CorrelationID == id
	})

	sort.Slice(records, func(i, j int) bool {
		return kindOrder(records[i].Kind) < kindOrder(records[j].Kind)
	})

	return records
}

// Summary returns the number of flows in each state.
func (r *Registry) Summary() map[State]int {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	summary := make(map[State]int)

	for _, rec := range r.records {
		summary[rec.State]++
	}

	return summary
}

// Claim moves a flow from AwaitingCompletion to Completing. Exactly one caller
// succeeds for a given flow until it is released.
func (r *Registry) Claim(id CorrelationID, kind Kind) (Record, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	rec, err := r.get(id, kind)
	if err != nil {
		return Record{}, err
	}

	switch rec.State {
	case StateAwaitingCompletion:
		rec.State = StateCompleting

		return *rec, nil
	case StateCompleting, StateCompleted:
		return Record{}, ErrAlreadyCompleted
	default:
		return Record{}, ErrNotAwaiting
	}
}

// Complete moves a claimed flow to Completed and records the completion data.
func (r *Registry) Complete(id CorrelationID, kind Kind, c Completion) (Record, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	rec, err := r.get(id, kind)
	if err != nil {
		return Record{}, err
	}

	if rec.State != StateCompleting {
		return Record{}, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, rec.State, StateCompleted)
	}

	now := r.now()

	rec.State = StateCompleted
	rec.SubjectID = c.SubjectID
	rec.Token = c.Token
	rec.CompletedAt = &now

	return *rec, nil
}

// Release returns a claimed flow to AwaitingCompletion so that a redelivered event may retry.
func (r *Registry) Release(id CorrelationID, kind Kind) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	rec, err := r.get(id, kind)
	if err != nil {
		return err
	}

	if rec.State != StateCompleting {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, rec.State, StateAwaitingCompletion)
	}

	rec.State = StateAwaitingCompletion

	return nil
}

func (r *Registry) get(id CorrelationID, kind Kind) (*Record, error) {
	rec, ok := r.records[key{id: id, kind: kind}]
	if !ok {
		return nil, fmt.Errorf("%w: %s/%s", ErrNotFound, id, kind)
	}

	return rec, nil
}

func kindOrder(kind Kind) int {
	return lo.IndexOf(Kinds, kind)
}
