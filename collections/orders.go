package collections

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/pocketbase/pocketbase/core"
	"github.com/pocketbase/pocketbase/tools/types"

	"marnthara/order"
	"marnthara/services"
)

// CreateOrder stores a new order record holding the default state and the
// next quote number for now's month.
func CreateOrder(app core.App, now time.Time) (*core.Record, error) {
	col, err := app.FindCollectionByNameOrId(OrdersCollection)
	if err != nil {
		return nil, fmt.Errorf("find orders collection: %w", err)
	}
	number, err := services.GenerateQuoteNumber(app, now)
	if err != nil {
		return nil, err
	}

	data, err := json.Marshal(order.Default())
	if err != nil {
		return nil, fmt.Errorf("encode default state: %w", err)
	}

	record := core.NewRecord(col)
	record.Set("quote_number", number)
	record.Set("state", types.JSONRaw(data))
	if err := app.Save(record); err != nil {
		return nil, fmt.Errorf("save order: %w", err)
	}
	return record, nil
}

// OrderRepository persists one order record's state. It implements
// store.Persister.
type OrderRepository struct {
	app core.App
	id  string
}

// NewOrderRepository returns the repository for the order with the given id.
func NewOrderRepository(app core.App, id string) *OrderRepository {
	return &OrderRepository{app: app, id: id}
}

// ID returns the record id.
func (r *OrderRepository) ID() string { return r.id }

// Record loads the order record.
func (r *OrderRepository) Record() (*core.Record, error) {
	record, err := r.app.FindRecordById(OrdersCollection, r.id)
	if err != nil {
		return nil, fmt.Errorf("find order %s: %w", r.id, err)
	}
	return record, nil
}

// LoadState decodes the stored state. An empty state loads as nil.
func (r *OrderRepository) LoadState(_ context.Context) (*order.Order, error) {
	record, err := r.Record()
	if err != nil {
		return nil, err
	}
	raw, _ := record.Get("state").(types.JSONRaw)
	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}
	o, err := order.Decode(raw)
	if err != nil {
		return nil, fmt.Errorf("order %s: %w", r.id, err)
	}
	return o, nil
}

// SaveState stores o and mirrors the customer name into its own column.
func (r *OrderRepository) SaveState(_ context.Context, o *order.Order) error {
	record, err := r.Record()
	if err != nil {
		return err
	}
	data, err := json.Marshal(o)
	if err != nil {
		return fmt.Errorf("encode order %s: %w", r.id, err)
	}
	record.Set("state", types.JSONRaw(data))
	record.Set("customer_name", o.CustomerName)
	if err := r.app.Save(record); err != nil {
		return fmt.Errorf("save order %s: %w", r.id, err)
	}
	return nil
}
