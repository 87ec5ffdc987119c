// Package order defines the quote data model: an order made of rooms, each
// room owning an ordered list of priced items.
package order

// AppVersion is stamped on exported state files.
const AppVersion = "go/6.1.0"

// Discount types.
const (
	DiscountAmount  = "amount"
	DiscountPercent = "percent"
)

// Discount is the single discount applied to an order subtotal.
type Discount struct {
	Type  string  `json:"type"`
	Value float64 `json:"value"`
}

// Order is the root of the quote being built.
type Order struct {
	AppVersion       string   `json:"app_version"`
	CustomerName     string   `json:"customer_name"`
	CustomerPhone    string   `json:"customer_phone"`
	CustomerAddress  string   `json:"customer_address"`
	CustomerCardOpen bool     `json:"customer_card_open"`
	IsLocked         bool     `json:"is_locked"`
	Discount         Discount `json:"discount"`
	Rooms            []*Room  `json:"rooms"`
}

// Hardware holds the curtain hardware and louis trim choices.
type Hardware struct {
	TrackColor   string `json:"track_color,omitempty"`
	BracketColor string `json:"bracket_color,omitempty"`
	FinialColor  string `json:"finial_color,omitempty"`
	GrommetColor string `json:"grommet_color,omitempty"`
	LouisValance string `json:"louis_valance,omitempty"`
	LouisTassels string `json:"louis_tassels,omitempty"`
}

// RoomDefaults is the partial curtain configuration applied to items that are
// promoted to the set category inside a room.
type RoomDefaults struct {
	Style          string `json:"style,omitempty"`
	FabricVariant  string `json:"fabric_variant,omitempty"`
	OpeningStyle   string `json:"opening_style,omitempty"`
	AdjustmentSide string `json:"adjustment_side,omitempty"`
	Hardware
}

// Room groups items. A suspended room excludes all of its items from totals.
type Room struct {
	ID          string       `json:"id"`
	Name        string       `json:"room_name"`
	IsSuspended bool         `json:"is_suspended"`
	IsOpen      bool         `json:"is_open"`
	Defaults    RoomDefaults `json:"room_defaults"`
	Items       []*Item      `json:"items"`
}

// FindItem returns the item with the given id and its index, or nil and -1.
func (r *Room) FindItem(id string) (*Item, int) {
	for i, it := range r.Items {
		if it.ID == id {
			return it, i
		}
	}
	return nil, -1
}

// FindRoom returns the room with the given id and its index, or nil and -1.
func (o *Order) FindRoom(id string) (*Room, int) {
	for i, r := range o.Rooms {
		if r.ID == id {
			return r, i
		}
	}
	return nil, -1
}

// ItemCount returns the number of items across all rooms.
func (o *Order) ItemCount() int {
	n := 0
	for _, r := range o.Rooms {
		n += len(r.Items)
	}
	return n
}
