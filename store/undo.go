package store

import "marnthara/order"

// DefaultUndoLimit is the number of snapshots kept by NewUndoManager when no
// positive limit is given.
const DefaultUndoLimit = 10

// UndoManager is a bounded stack of deep-copied order snapshots. Only copies
// cross its boundary, so later changes to live state never reach a stored
// snapshot.
type UndoManager struct {
	limit int
	stack []*order.Order
	clone func(*order.Order) (*order.Order, error)
}

// NewUndoManager returns a manager that keeps at most limit snapshots.
func NewUndoManager(limit int) *UndoManager {
	if limit <= 0 {
		limit = DefaultUndoLimit
	}
	return &UndoManager{limit: limit, clone: order.Clone}
}

// Record pushes a deep copy of s, evicting the oldest snapshot when full.
// On a clone error nothing is recorded.
func (u *UndoManager) Record(s *order.Order) error {
	snap, err := u.clone(s)
	if err != nil {
		return err
	}
	u.stack = append(u.stack, snap)
	if len(u.stack) > u.limit {
		u.stack = append(u.stack[:0:0], u.stack[len(u.stack)-u.limit:]...)
	}
	return nil
}

// Pop removes and returns the most recent snapshot.
func (u *UndoManager) Pop() (*order.Order, bool) {
	if len(u.stack) == 0 {
		return nil, false
	}
	last := u.stack[len(u.stack)-1]
	u.stack[len(u.stack)-1] = nil
	u.stack = u.stack[:len(u.stack)-1]
	return last, true
}

// Len returns the number of stored snapshots.
func (u *UndoManager) Len() int { return len(u.stack) }

// Snapshots returns copies of the stored snapshots, oldest first.
func (u *UndoManager) Snapshots() []*order.Order {
	out := make([]*order.Order, 0, len(u.stack))
	for _, s := range u.stack {
		if cp, err := u.clone(s); err == nil {
			out = append(out, cp)
		}
	}
	return out
}

// Clear drops every snapshot.
func (u *UndoManager) Clear() { u.stack = nil }
