// Package testhelpers provides utilities for testing PocketBase-backed code.
package testhelpers

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
	"github.com/pocketbase/pocketbase/tools/types"
	"github.com/rs/zerolog"

	"marnthara/collections"
	"marnthara/order"
)

// NewTestApp creates a PocketBase instance backed by a temporary directory
// with the orders and favorites collections in place.
func NewTestApp(t *testing.T) *pocketbase.PocketBase {
	t.Helper()

	app := pocketbase.NewWithConfig(pocketbase.Config{
		DefaultDataDir: t.TempDir(),
	})
	if err := app.Bootstrap(); err != nil {
		t.Fatalf("failed to bootstrap test app: %v", err)
	}
	if err := collections.Setup(app, zerolog.Nop()); err != nil {
		t.Fatalf("failed to set up collections: %v", err)
	}
	return app
}

// CreateTestOrder stores a new order record. A nil state stores the default
// empty order.
func CreateTestOrder(t *testing.T, app core.App, state *order.Order) *core.Record {
	t.Helper()

	record, err := collections.CreateOrder(app, time.Now())
	if err != nil {
		t.Fatalf("failed to create test order: %v", err)
	}
	if state == nil {
		return record
	}
	if err := collections.NewOrderRepository(app, record.Id).SaveState(context.Background(), state); err != nil {
		t.Fatalf("failed to save test order state: %v", err)
	}
	return record
}

// LoadTestState reads back the stored state of an order record.
func LoadTestState(t *testing.T, app core.App, orderID string) *order.Order {
	t.Helper()

	record, err := app.FindRecordById(collections.OrdersCollection, orderID)
	if err != nil {
		t.Fatalf("failed to find order %s: %v", orderID, err)
	}
	raw, _ := record.Get("state").(types.JSONRaw)
	var o order.Order
	if err := json.Unmarshal(raw, &o); err != nil {
		t.Fatalf("failed to decode order %s: %v", orderID, err)
	}
	return &o
}

// SampleOrder returns an order with one room holding a wave curtain set
// (2 x 2.4 m at 1,000 = 6,000) and a roller blind (1 x 1 m at 500 per sq.yd
// = 750).
func SampleOrder() *order.Order {
	o := order.Default()
	o.CustomerName = "คุณทดสอบ"
	o.Rooms = []*order.Room{{
		ID:     "room-1",
		Name:   "ห้องนั่งเล่น",
		IsOpen: true,
		Items: []*order.Item{
			{ID: "item-1", RoomID: "room-1", Type: order.CategorySet, WidthM: 2, HeightM: 2.4,
				SetSpec: &order.SetSpec{Style: order.StyleWave, FabricVariant: order.FabricOpaque, PricePerMRaw: 1000}},
			{ID: "item-2", RoomID: "room-1", Type: order.CategoryRollerBlind, WidthM: 1, HeightM: 1,
				AreaSpec: &order.AreaSpec{PriceSqyd: 500}},
		},
	}}
	return o
}

// AssertHTMLContains checks that body contains all specified fragments.
func AssertHTMLContains(t *testing.T, body string, fragments ...string) {
	t.Helper()

	for _, frag := range fragments {
		if !strings.Contains(body, frag) {
			t.Errorf("expected HTML to contain %q, but it was not found\nbody (first 500 chars): %s",
				frag, truncate(body, 500))
		}
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
