package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"marnthara/order"
)

// ErrNothingToUndo is returned by Undo when the history is empty.
var ErrNothingToUndo = errors.New("nothing to undo")

// Persister loads and saves the current order. LoadState returns a nil order
// when nothing has been saved yet.
type Persister interface {
	LoadState(ctx context.Context) (*order.Order, error)
	SaveState(ctx context.Context, o *order.Order) error
}

// DispatchOptions opt a single dispatch out of undo recording or saving.
type DispatchOptions struct {
	SkipUndo bool `json:"skipUndo"`
	SkipSave bool `json:"skipSave"`
}

// Subscriber is called with the new state after every change.
type Subscriber func(*order.Order)

type subscription struct {
	id int
	fn Subscriber
}

// Store owns the current order, its undo history and its subscribers. It is
// not safe for concurrent use; callers serialize access.
type Store struct {
	state     *order.Order
	undo      *UndoManager
	persister Persister
	log       zerolog.Logger
	metrics   *Metrics

	subs   []subscription
	nextID int
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger used for dispatch warnings and failures.
func WithLogger(l zerolog.Logger) Option { return func(s *Store) { s.log = l } }

// WithPersister sets where state is loaded from and saved to.
func WithPersister(p Persister) Option { return func(s *Store) { s.persister = p } }

// WithMetrics records dispatch outcomes to m.
func WithMetrics(m *Metrics) Option { return func(s *Store) { s.metrics = m } }

// WithUndoLimit sets how many snapshots the undo history keeps.
func WithUndoLimit(n int) Option { return func(s *Store) { s.undo = NewUndoManager(n) } }

// New returns a Store holding the default empty order.
func New(opts ...Option) *Store {
	s := &Store{
		state: order.Default(),
		undo:  NewUndoManager(DefaultUndoLimit),
		log:   zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// GetState returns the current order. Callers must treat it as read-only.
func (s *Store) GetState() *order.Order { return s.state }

// Subscribe registers fn and returns a function that removes it.
func (s *Store) Subscribe(fn Subscriber) (unsubscribe func()) {
	s.nextID++
	id := s.nextID
	s.subs = append(s.subs, subscription{id: id, fn: fn})
	return func() {
		for i, sub := range s.subs {
			if sub.id == id {
				s.subs = append(s.subs[:i:i], s.subs[i+1:]...)
				return
			}
		}
	}
}

// Dispatch applies action to the current state. Unless opted out, the
// current state is recorded for undo first and the new state is saved after.
// Subscribers and the persister only see actual changes. The returned error
// reports a failed save; the new state is kept regardless.
func (s *Store) Dispatch(ctx context.Context, action ActionType, p Payload, opts DispatchOptions) error {
	if !action.Known() {
		s.log.Warn().Str("action", string(action)).Msg("unknown action type")
		s.metrics.dispatched(action, resultUnknown)
	}

	if !opts.SkipUndo {
		if err := s.undo.Record(s.state); err != nil {
			s.log.Error().Err(err).Str("action", string(action)).Msg("skipping undo snapshot")
			s.metrics.snapshotFailed()
		}
	}

	next := Reduce(s.state, action, p)
	if next == s.state {
		if action.Known() {
			s.metrics.dispatched(action, resultUnchanged)
		}
		return nil
	}

	s.state = next
	s.metrics.dispatched(action, resultChanged)
	s.notify()

	if opts.SkipSave {
		return nil
	}
	return s.save(ctx)
}

// Undo restores the most recent snapshot without recording the restored
// state again. The restored state is saved.
func (s *Store) Undo(ctx context.Context) error {
	prev, ok := s.undo.Pop()
	if !ok {
		return ErrNothingToUndo
	}
	s.metrics.restored()
	return s.Dispatch(ctx, ActionLoadState, Payload{State: prev}, DispatchOptions{SkipUndo: true})
}

// CanUndo reports whether Undo has a snapshot to restore.
func (s *Store) CanUndo() bool { return s.undo.Len() > 0 }

// UndoDepth returns the number of stored snapshots.
func (s *Store) UndoDepth() int { return s.undo.Len() }

// LoadInitialState replaces the state with the persisted order, if any,
// without recording undo or saving. With nothing persisted the default
// order is published to subscribers.
func (s *Store) LoadInitialState(ctx context.Context) error {
	var loaded *order.Order
	if s.persister != nil {
		var err error
		loaded, err = s.persister.LoadState(ctx)
		if err != nil {
			return fmt.Errorf("load state: %w", err)
		}
	}
	if loaded == nil {
		s.state = order.Default()
		s.notify()
		return nil
	}
	return s.Dispatch(ctx, ActionLoadState, Payload{State: loaded}, DispatchOptions{SkipUndo: true, SkipSave: true})
}

// Reset replaces the order with the default empty one. The previous state
// can be restored with Undo.
func (s *Store) Reset(ctx context.Context) error {
	return s.Dispatch(ctx, ActionLoadState, Payload{State: order.Default()}, DispatchOptions{})
}

// SaveCurrentState writes the current state through the persister.
func (s *Store) SaveCurrentState(ctx context.Context) error {
	return s.save(ctx)
}

func (s *Store) save(ctx context.Context) error {
	if s.persister == nil {
		return nil
	}
	if err := s.persister.SaveState(ctx, s.state); err != nil {
		s.metrics.saveFailed()
		s.log.Error().Err(err).Msg("save state")
		return fmt.Errorf("save state: %w", err)
	}
	return nil
}

func (s *Store) notify() {
	subs := append([]subscription(nil), s.subs...)
	for _, sub := range subs {
		sub.fn(s.state)
	}
}
