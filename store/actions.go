// Package store holds the quote state machine: a pure reducer over a closed
// action catalog, a bounded undo history and the Store that ties them to
// persistence and subscribers.
package store

import "marnthara/order"

// ActionType tags a state transition.
type ActionType string

const (
	ActionLoadState      ActionType = "APP/LOAD_STATE"
	ActionSetLock        ActionType = "APP/SET_LOCK"
	ActionUpdateCustomer ActionType = "CUSTOMER/UPDATE_FIELD"
	ActionSetDiscount    ActionType = "DISCOUNT/SET"

	ActionAddRoom        ActionType = "ROOM/ADD"
	ActionDeleteRoom     ActionType = "ROOM/DELETE"
	ActionUpdateRoomName ActionType = "ROOM/UPDATE_NAME"
	ActionToggleRoom     ActionType = "ROOM/TOGGLE_SUSPEND"
	ActionToggleRoomOpen ActionType = "ROOM/TOGGLE_OPEN"
	ActionSetDefaults    ActionType = "ROOM/SET_DEFAULTS"
	ActionApplyHardware  ActionType = "ROOM/APPLY_HARDWARE"

	ActionAddItem       ActionType = "ITEM/ADD"
	ActionDeleteItem    ActionType = "ITEM/DELETE"
	ActionDuplicateItem ActionType = "ITEM/DUPLICATE"
	ActionUpdateItem    ActionType = "ITEM/UPDATE_FIELD"
	ActionToggleItem    ActionType = "ITEM/TOGGLE_SUSPEND"
	ActionSetItemType   ActionType = "ITEM/SET_TYPE"
	ActionAddWall       ActionType = "ITEM/ADD_WALL"
	ActionDeleteWall    ActionType = "ITEM/DELETE_WALL"
)

// Actions lists the whole catalog.
var Actions = []ActionType{
	ActionLoadState, ActionSetLock, ActionUpdateCustomer, ActionSetDiscount,
	ActionAddRoom, ActionDeleteRoom, ActionUpdateRoomName, ActionToggleRoom,
	ActionToggleRoomOpen, ActionSetDefaults, ActionApplyHardware,
	ActionAddItem, ActionDeleteItem, ActionDuplicateItem, ActionUpdateItem,
	ActionToggleItem, ActionSetItemType, ActionAddWall, ActionDeleteWall,
}

// Known reports whether a is part of the catalog.
func (a ActionType) Known() bool {
	for _, k := range Actions {
		if k == a {
			return true
		}
	}
	return false
}

// Payload carries the arguments of every action. Each action reads only the
// fields it needs.
type Payload struct {
	RoomID   string              `json:"roomId,omitempty"`
	ItemID   string              `json:"itemId,omitempty"`
	Field    string              `json:"field,omitempty"`
	Value    any                 `json:"value,omitempty"`
	Type     string              `json:"type,omitempty"` // discount type
	ItemType order.Category      `json:"itemType,omitempty"`
	Index    int                 `json:"index,omitempty"`
	WidthM   order.Num           `json:"width_m,omitempty"`
	HeightM  order.Num           `json:"height_m,omitempty"`
	Locked   bool                `json:"locked,omitempty"`
	Defaults *order.RoomDefaults `json:"defaults,omitempty"`
	Hardware *order.Hardware     `json:"hardwareData,omitempty"`
	State    *order.Order        `json:"state,omitempty"`
}
