package store

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"marnthara/order"
)

type memPersister struct {
	loaded  *order.Order
	saved   []*order.Order
	loadErr error
	saveErr error
}

func (m *memPersister) LoadState(context.Context) (*order.Order, error) {
	return m.loaded, m.loadErr
}

func (m *memPersister) SaveState(_ context.Context, o *order.Order) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.saved = append(m.saved, o)
	return nil
}

func TestStore_DispatchNotifiesAndSaves(t *testing.T) {
	ctx := context.Background()
	p := &memPersister{}
	s := New(WithPersister(p))

	var seen []*order.Order
	unsubscribe := s.Subscribe(func(o *order.Order) { seen = append(seen, o) })

	require.NoError(t, s.Dispatch(ctx, ActionAddRoom, Payload{}, DispatchOptions{}))
	require.Len(t, seen, 1)
	assert.Same(t, s.GetState(), seen[0])
	require.Len(t, p.saved, 1)

	require.NoError(t, s.Dispatch(ctx, ActionDeleteRoom, Payload{RoomID: "missing"}, DispatchOptions{}))
	assert.Len(t, seen, 1, "no-op dispatch must not notify")
	assert.Len(t, p.saved, 1, "no-op dispatch must not save")

	unsubscribe()
	require.NoError(t, s.Dispatch(ctx, ActionAddRoom, Payload{}, DispatchOptions{SkipSave: true}))
	assert.Len(t, seen, 1)
	assert.Len(t, p.saved, 1)
	assert.Len(t, s.GetState().Rooms, 2)
}

func TestStore_UndoRestoresPreviousState(t *testing.T) {
	ctx := context.Background()
	p := &memPersister{}
	s := New(WithPersister(p))

	require.NoError(t, s.Dispatch(ctx, ActionUpdateCustomer, Payload{Field: "customer_name", Value: "A"}, DispatchOptions{}))
	require.NoError(t, s.Dispatch(ctx, ActionUpdateCustomer, Payload{Field: "customer_name", Value: "B"}, DispatchOptions{}))
	require.Equal(t, 2, s.UndoDepth())

	require.NoError(t, s.Undo(ctx))
	assert.Equal(t, "A", s.GetState().CustomerName)
	assert.Equal(t, 1, s.UndoDepth(), "undo must not record the restored state")
	assert.Equal(t, "A", p.saved[len(p.saved)-1].CustomerName)

	require.NoError(t, s.Undo(ctx))
	assert.Empty(t, s.GetState().CustomerName)
	assert.False(t, s.CanUndo())
	assert.ErrorIs(t, s.Undo(ctx), ErrNothingToUndo)
}

func TestStore_UndoHistoryIsBounded(t *testing.T) {
	ctx := context.Background()
	s := New()
	for i := 0; i < 12; i++ {
		require.NoError(t, s.Dispatch(ctx, ActionAddRoom, Payload{}, DispatchOptions{}))
	}
	assert.Equal(t, DefaultUndoLimit, s.UndoDepth())

	for s.CanUndo() {
		require.NoError(t, s.Undo(ctx))
	}
	assert.Len(t, s.GetState().Rooms, 2, "the two oldest snapshots were evicted")
}

func TestStore_SkipUndo(t *testing.T) {
	s := New(WithUndoLimit(3))
	require.NoError(t, s.Dispatch(context.Background(), ActionAddRoom, Payload{}, DispatchOptions{SkipUndo: true}))
	assert.Zero(t, s.UndoDepth())
}

func TestStore_SaveErrorKeepsState(t *testing.T) {
	p := &memPersister{saveErr: errors.New("disk full")}
	s := New(WithPersister(p))

	err := s.Dispatch(context.Background(), ActionSetLock, Payload{Locked: true}, DispatchOptions{})
	require.Error(t, err)
	assert.ErrorIs(t, err, p.saveErr)
	assert.True(t, s.GetState().IsLocked)
}

func TestStore_LoadInitialState(t *testing.T) {
	ctx := context.Background()

	t.Run("persisted", func(t *testing.T) {
		p := &memPersister{loaded: &order.Order{CustomerName: "Kim"}}
		s := New(WithPersister(p))
		require.NoError(t, s.LoadInitialState(ctx))

		assert.Equal(t, "Kim", s.GetState().CustomerName)
		assert.NotNil(t, s.GetState().Rooms)
		assert.Zero(t, s.UndoDepth())
		assert.Empty(t, p.saved)
	})

	t.Run("nothing saved", func(t *testing.T) {
		s := New(WithPersister(&memPersister{}))
		notified := 0
		s.Subscribe(func(*order.Order) { notified++ })
		require.NoError(t, s.LoadInitialState(ctx))

		assert.Equal(t, order.Default(), s.GetState())
		assert.Equal(t, 1, notified)
	})

	t.Run("load error", func(t *testing.T) {
		s := New(WithPersister(&memPersister{loadErr: errors.New("corrupt")}))
		assert.Error(t, s.LoadInitialState(ctx))
	})
}

func TestStore_ResetIsUndoable(t *testing.T) {
	ctx := context.Background()
	s := New()
	require.NoError(t, s.Dispatch(ctx, ActionAddRoom, Payload{}, DispatchOptions{}))
	require.NoError(t, s.Reset(ctx))
	assert.Empty(t, s.GetState().Rooms)

	require.NoError(t, s.Undo(ctx))
	assert.Len(t, s.GetState().Rooms, 1)
}

func TestStore_SuspendedItemScenario(t *testing.T) {
	ctx := context.Background()
	s := New()
	require.NoError(t, s.Dispatch(ctx, ActionAddRoom, Payload{}, DispatchOptions{}))
	roomID := s.GetState().Rooms[0].ID

	for i := 0; i < 2; i++ {
		require.NoError(t, s.Dispatch(ctx, ActionAddItem, Payload{RoomID: roomID, WidthM: 2, HeightM: 2.4}, DispatchOptions{}))
	}
	items := s.GetState().Rooms[0].Items
	require.Len(t, items, 2)
	for _, it := range items {
		require.NoError(t, s.Dispatch(ctx, ActionSetItemType, Payload{RoomID: roomID, ItemID: it.ID, ItemType: order.CategorySet}, DispatchOptions{}))
		require.NoError(t, s.Dispatch(ctx, ActionUpdateItem, Payload{RoomID: roomID, ItemID: it.ID, Field: "price_per_m_raw", Value: 1000}, DispatchOptions{}))
	}
	require.NoError(t, s.Dispatch(ctx, ActionToggleItem, Payload{RoomID: roomID, ItemID: items[1].ID}, DispatchOptions{}))

	got := s.GetState().Rooms[0].Items
	assert.False(t, got[0].IsSuspended)
	assert.True(t, got[1].IsSuspended)
	assert.Equal(t, order.StyleWave, got[1].Style)
}

func TestStore_Metrics(t *testing.T) {
	ctx := context.Background()
	reg := prometheus.NewRegistry()
	m := NewMetrics("test", reg)
	s := New(WithMetrics(m), WithPersister(&memPersister{saveErr: errors.New("nope")}))

	_ = s.Dispatch(ctx, ActionAddRoom, Payload{}, DispatchOptions{})
	_ = s.Dispatch(ctx, ActionDeleteRoom, Payload{RoomID: "missing"}, DispatchOptions{})
	_ = s.Dispatch(ctx, "ROOM/NOPE", Payload{}, DispatchOptions{})
	_ = s.Undo(ctx)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.Dispatches.WithLabelValues(string(ActionAddRoom), resultChanged)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Dispatches.WithLabelValues(string(ActionDeleteRoom), resultUnchanged)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Dispatches.WithLabelValues(unknownActionLabel, resultUnknown)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.UndoRestores))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.SaveFailures))
}

func TestStore_UnknownActionsShareOneMetricSeries(t *testing.T) {
	ctx := context.Background()
	m := NewMetrics("test", prometheus.NewRegistry())
	s := New(WithMetrics(m))

	for i := range 50 {
		_ = s.Dispatch(ctx, ActionType(fmt.Sprintf("junk-%d", i)), Payload{}, DispatchOptions{SkipUndo: true})
	}

	assert.Equal(t, 1, testutil.CollectAndCount(m.Dispatches))
	assert.Equal(t, 50.0, testutil.ToFloat64(m.Dispatches.WithLabelValues(unknownActionLabel, resultUnknown)))
}

func TestStore_SnapshotFailureStillDispatches(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics("test", reg)
	s := New(WithMetrics(m))
	s.undo.clone = func(*order.Order) (*order.Order, error) { return nil, errors.New("boom") }

	require.NoError(t, s.Dispatch(context.Background(), ActionAddRoom, Payload{}, DispatchOptions{}))
	assert.Len(t, s.GetState().Rooms, 1)
	assert.Zero(t, s.UndoDepth())
	assert.Equal(t, 1.0, testutil.ToFloat64(m.SnapshotFailures))
}
