package order

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/oklog/ulid/v2"
	"github.com/tiendc/go-deepcopy"
)

// DefaultRoomName is given to freshly added rooms.
const DefaultRoomName = "ห้องใหม่"

// ErrMalformedState is returned when persisted or imported data is not an
// order object with a rooms list.
var ErrMalformedState = errors.New("malformed order state")

// NewID returns a prefixed identifier made of a millisecond timestamp and a
// random suffix, e.g. "room-01hx3...".
func NewID(prefix string) string {
	return prefix + "-" + strings.ToLower(ulid.Make().String())
}

// Default returns the canonical empty order.
func Default() *Order {
	return &Order{
		AppVersion:       AppVersion,
		CustomerCardOpen: true,
		Discount:         Discount{Type: DiscountAmount},
		Rooms:            []*Room{},
	}
}

// NewRoom returns an open, empty room with the default name.
func NewRoom() *Room {
	return &Room{
		ID:     NewID("room"),
		Name:   DefaultRoomName,
		IsOpen: true,
		Items:  []*Item{},
	}
}

// NewPlaceholder returns an unconfigured item owned by roomID.
func NewPlaceholder(roomID string) *Item {
	return &Item{
		ID:     NewID("item"),
		RoomID: roomID,
		Type:   CategoryPlaceholder,
	}
}

// WithDefaults returns a copy of o whose missing parts are filled from the
// default shape. Rooms and items are shared with o.
func WithDefaults(o *Order) *Order {
	d := Default()
	if o == nil {
		return d
	}
	cp := *o
	if cp.AppVersion == "" {
		cp.AppVersion = d.AppVersion
	}
	if cp.Discount.Type == "" {
		cp.Discount.Type = d.Discount.Type
	}
	if cp.Rooms == nil {
		cp.Rooms = d.Rooms
	}
	return &cp
}

// Clone returns a deep copy of o that shares no mutable structure with it.
func Clone(o *Order) (*Order, error) {
	if o == nil {
		return nil, nil
	}
	var cp Order
	if err := deepcopy.Copy(&cp, o); err != nil {
		return nil, fmt.Errorf("clone order: %w", err)
	}
	return &cp, nil
}

// Decode parses persisted or imported JSON. The payload must be an object
// carrying a rooms array; absent fields take their default values.
func Decode(data []byte) (*Order, error) {
	var probe map[string]json.RawMessage
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedState, err)
	}
	rooms, ok := probe["rooms"]
	if !ok || len(rooms) == 0 || rooms[0] != '[' {
		return nil, fmt.Errorf("%w: missing rooms list", ErrMalformedState)
	}

	o := Default()
	if err := json.Unmarshal(data, o); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedState, err)
	}
	o = WithDefaults(o)
	for _, r := range o.Rooms {
		if r == nil {
			return nil, fmt.Errorf("%w: null room", ErrMalformedState)
		}
		if r.Items == nil {
			r.Items = []*Item{}
		}
		for _, it := range r.Items {
			if it == nil {
				return nil, fmt.Errorf("%w: null item in room %s", ErrMalformedState, r.ID)
			}
			if it.RoomID == "" {
				it.RoomID = r.ID
			}
		}
	}
	if err := Validate(o); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedState, err)
	}
	return o, nil
}

// Validate checks the structural invariants of an order: a known discount
// type with a non-negative value, and unique non-empty room and item ids.
func Validate(o *Order) error {
	if err := validation.ValidateStruct(&o.Discount,
		validation.Field(&o.Discount.Type, validation.Required, validation.In(DiscountAmount, DiscountPercent)),
		validation.Field(&o.Discount.Value, validation.Min(0.0)),
	); err != nil {
		return fmt.Errorf("discount: %w", err)
	}

	rooms := make(map[string]bool, len(o.Rooms))
	items := make(map[string]bool)
	for i, r := range o.Rooms {
		if err := validation.Validate(r.ID, validation.Required); err != nil {
			return fmt.Errorf("rooms[%d].id: %w", i, err)
		}
		if rooms[r.ID] {
			return fmt.Errorf("rooms[%d].id: duplicate %q", i, r.ID)
		}
		rooms[r.ID] = true
		for j, it := range r.Items {
			if err := validation.Validate(it.ID, validation.Required); err != nil {
				return fmt.Errorf("rooms[%d].items[%d].id: %w", i, j, err)
			}
			if items[it.ID] {
				return fmt.Errorf("rooms[%d].items[%d].id: duplicate %q", i, j, it.ID)
			}
			items[it.ID] = true
		}
	}
	return nil
}
