package handlers

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/pocketbase/pocketbase/core"

	"marnthara/collections"
	"marnthara/store"
)

// ErrOrderNotFound is returned when no order record has the requested id.
var ErrOrderNotFound = errors.New("order not found")

type orderEntry struct {
	mu    sync.Mutex
	store *store.Store
}

// OrderStores keeps one store per order record, loaded from the database on
// first use. Access to each store is serialized.
type OrderStores struct {
	app     core.App
	metrics *store.Metrics

	mu      sync.Mutex
	entries map[string]*orderEntry
}

// NewOrderStores returns an empty registry. metrics may be nil.
func NewOrderStores(app core.App, metrics *store.Metrics) *OrderStores {
	return &OrderStores{app: app, metrics: metrics, entries: map[string]*orderEntry{}}
}

// With runs fn with exclusive access to the store of order id.
func (o *OrderStores) With(ctx context.Context, id string, fn func(*store.Store) error) error {
	entry, err := o.entry(ctx, id)
	if err != nil {
		return err
	}
	entry.mu.Lock()
	defer entry.mu.Unlock()
	return fn(entry.store)
}

// Forget drops the cached store of order id.
func (o *OrderStores) Forget(id string) {
	o.mu.Lock()
	delete(o.entries, id)
	o.mu.Unlock()
}

func (o *OrderStores) entry(ctx context.Context, id string) (*orderEntry, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if e, ok := o.entries[id]; ok {
		return e, nil
	}

	repo := collections.NewOrderRepository(o.app, id)
	if _, err := repo.Record(); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrOrderNotFound, id)
	}
	s := store.New(
		store.WithPersister(repo),
		store.WithLogger(logger.With().Str("order", id).Logger()),
		store.WithMetrics(o.metrics),
	)
	if err := s.LoadInitialState(ctx); err != nil {
		return nil, err
	}

	e := &orderEntry{store: s}
	o.entries[id] = e
	return e, nil
}
