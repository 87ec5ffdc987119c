package store

import (
	"slices"

	"github.com/spf13/cast"

	"marnthara/order"
)

// Reduce returns the state that results from applying action to state. It
// never mutates state: changed rooms and items are copied and the rest are
// shared. Unknown actions, lookup misses and actions that do not apply to
// the target return state itself.
func Reduce(state *order.Order, action ActionType, p Payload) *order.Order {
	if !action.Known() {
		return state
	}
	if state == nil {
		state = order.Default()
	}

	switch action {
	case ActionLoadState:
		if p.State == nil {
			return state
		}
		return order.WithDefaults(p.State)

	case ActionUpdateCustomer:
		return updateCustomer(state, p.Field, p.Value)

	case ActionSetDiscount:
		typ := p.Type
		if typ == "" {
			typ = state.Discount.Type
		}
		if typ != order.DiscountAmount && typ != order.DiscountPercent {
			return state
		}
		next := *state
		next.Discount = order.Discount{Type: typ, Value: max(float64(order.ToNum(p.Value)), 0)}
		return &next

	case ActionSetLock:
		next := *state
		next.IsLocked = p.Locked
		return &next

	case ActionAddRoom:
		next := *state
		next.Rooms = append(slices.Clip(state.Rooms), order.NewRoom())
		return &next

	case ActionDeleteRoom:
		_, i := state.FindRoom(p.RoomID)
		if i < 0 {
			return state
		}
		next := *state
		next.Rooms = slices.Delete(slices.Clone(state.Rooms), i, i+1)
		return &next

	case ActionUpdateRoomName:
		return updateRoom(state, p.RoomID, func(r *order.Room) *order.Room {
			nr := *r
			nr.Name = cast.ToString(p.Value)
			return &nr
		})

	case ActionToggleRoom:
		return updateRoom(state, p.RoomID, func(r *order.Room) *order.Room {
			nr := *r
			nr.IsSuspended = !r.IsSuspended
			return &nr
		})

	case ActionToggleRoomOpen:
		return updateRoom(state, p.RoomID, func(r *order.Room) *order.Room {
			nr := *r
			nr.IsOpen = !r.IsOpen
			return &nr
		})

	case ActionSetDefaults:
		return updateRoom(state, p.RoomID, func(r *order.Room) *order.Room {
			nr := *r
			nr.Defaults = order.RoomDefaults{}
			if p.Defaults != nil {
				nr.Defaults = *p.Defaults
			}
			return &nr
		})

	case ActionApplyHardware:
		if p.Hardware == nil {
			return state
		}
		return updateRoom(state, p.RoomID, func(r *order.Room) *order.Room {
			nr := *r
			nr.Items = make([]*order.Item, len(r.Items))
			for i, it := range r.Items {
				if it.Type == order.CategorySet && !it.IsSuspended {
					nr.Items[i] = it.ApplyHardware(*p.Hardware)
				} else {
					nr.Items[i] = it
				}
			}
			return &nr
		})

	case ActionAddItem:
		return updateRoom(state, p.RoomID, func(r *order.Room) *order.Room {
			it := order.NewPlaceholder(r.ID)
			if p.WidthM > 0 && p.HeightM > 0 {
				it.WidthM, it.HeightM = p.WidthM, p.HeightM
			}
			nr := *r
			nr.Items = append(slices.Clip(r.Items), it)
			return &nr
		})

	case ActionDeleteItem:
		return updateRoom(state, p.RoomID, func(r *order.Room) *order.Room {
			_, i := r.FindItem(p.ItemID)
			if i < 0 {
				return r
			}
			nr := *r
			nr.Items = slices.Delete(slices.Clone(r.Items), i, i+1)
			return &nr
		})

	case ActionDuplicateItem:
		return updateRoom(state, p.RoomID, func(r *order.Room) *order.Room {
			it, _ := r.FindItem(p.ItemID)
			if it == nil {
				return r
			}
			dup := it.Copy()
			dup.ID = order.NewID("item")
			dup.IsSuspended = false
			nr := *r
			nr.Items = append(slices.Clip(r.Items), dup)
			return &nr
		})

	case ActionSetItemType:
		if !p.ItemType.Valid() {
			return state
		}
		return updateItem(state, p.RoomID, p.ItemID, func(r *order.Room, it *order.Item) *order.Item {
			return it.Promote(p.ItemType, r.Defaults)
		})

	case ActionToggleItem:
		return updateItem(state, p.RoomID, p.ItemID, func(_ *order.Room, it *order.Item) *order.Item {
			cp := it.Copy()
			cp.IsSuspended = !it.IsSuspended
			return cp
		})

	case ActionUpdateItem:
		return updateItem(state, p.RoomID, p.ItemID, func(_ *order.Room, it *order.Item) *order.Item {
			next, _ := it.WithField(p.Field, p.Value)
			return next
		})

	case ActionAddWall:
		return updateItem(state, p.RoomID, p.ItemID, func(_ *order.Room, it *order.Item) *order.Item {
			if it.Kind() != order.KindWallpaper {
				return it
			}
			cp := it.Copy()
			if cp.WallpaperSpec == nil {
				cp.WallpaperSpec = &order.WallpaperSpec{}
			}
			cp.Widths = append(cp.Widths, 0)
			return cp
		})

	case ActionDeleteWall:
		return updateItem(state, p.RoomID, p.ItemID, func(_ *order.Room, it *order.Item) *order.Item {
			w := it.Wallpaper()
			if w == nil || p.Index < 0 || p.Index >= len(w.Widths) {
				return it
			}
			cp := it.Copy()
			cp.Widths = slices.Delete(cp.Widths, p.Index, p.Index+1)
			return cp
		})
	}

	return state
}

func updateCustomer(state *order.Order, field string, value any) *order.Order {
	next := *state
	switch field {
	case "customer_name":
		next.CustomerName = cast.ToString(value)
	case "customer_phone":
		next.CustomerPhone = cast.ToString(value)
	case "customer_address":
		next.CustomerAddress = cast.ToString(value)
	case "customer_card_open":
		next.CustomerCardOpen = cast.ToBool(value)
	default:
		return state
	}
	return &next
}

// updateRoom replaces the room with the given id by fn's result. When the
// room is missing or fn returns its argument, state is returned unchanged.
func updateRoom(state *order.Order, roomID string, fn func(*order.Room) *order.Room) *order.Order {
	r, i := state.FindRoom(roomID)
	if r == nil {
		return state
	}
	nr := fn(r)
	if nr == r {
		return state
	}
	next := *state
	next.Rooms = slices.Clone(state.Rooms)
	next.Rooms[i] = nr
	return &next
}

// updateItem replaces one item of one room by fn's result, with the same
// unchanged-state semantics as updateRoom.
func updateItem(state *order.Order, roomID, itemID string, fn func(*order.Room, *order.Item) *order.Item) *order.Order {
	return updateRoom(state, roomID, func(r *order.Room) *order.Room {
		it, j := r.FindItem(itemID)
		if it == nil {
			return r
		}
		ni := fn(r, it)
		if ni == it {
			return r
		}
		nr := *r
		nr.Items = slices.Clone(r.Items)
		nr.Items[j] = ni
		return &nr
	})
}
