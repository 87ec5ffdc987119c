package store

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"marnthara/order"
)

func named(name string) *order.Order {
	o := order.Default()
	o.CustomerName = name
	return o
}

func TestUndoManager_EvictsOldest(t *testing.T) {
	u := NewUndoManager(DefaultUndoLimit)
	for i := 0; i < 12; i++ {
		require.NoError(t, u.Record(named(fmt.Sprint(i))))
	}

	require.Equal(t, 10, u.Len())
	snaps := u.Snapshots()
	assert.Equal(t, "2", snaps[0].CustomerName)
	assert.Equal(t, "11", snaps[9].CustomerName)

	top, ok := u.Pop()
	require.True(t, ok)
	assert.Equal(t, "11", top.CustomerName)
	assert.Equal(t, 9, u.Len())
}

func TestUndoManager_SnapshotsAreIsolated(t *testing.T) {
	u := NewUndoManager(3)
	live := fixture()
	require.NoError(t, u.Record(live))

	live.Rooms[0].Name = "changed"
	live.Rooms[0].Items[2].Widths[0] = 9

	snap, ok := u.Pop()
	require.True(t, ok)
	assert.Equal(t, "Living", snap.Rooms[0].Name)
	assert.Equal(t, order.Num(1.5), snap.Rooms[0].Items[2].Widths[0])
}

func TestUndoManager_CloneFailureRecordsNothing(t *testing.T) {
	u := NewUndoManager(0)
	u.clone = func(*order.Order) (*order.Order, error) { return nil, errors.New("boom") }

	assert.Error(t, u.Record(order.Default()))
	assert.Zero(t, u.Len())
}

func TestUndoManager_PopEmptyAndClear(t *testing.T) {
	u := NewUndoManager(2)
	_, ok := u.Pop()
	assert.False(t, ok)

	require.NoError(t, u.Record(order.Default()))
	u.Clear()
	assert.Zero(t, u.Len())
}
