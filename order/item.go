package order

import (
	"bytes"
	"encoding/json"

	"github.com/spf13/cast"
)

// Category tags an item with the calculator that prices it. The empty
// category marks a placeholder that has not been configured yet and is
// encoded as JSON null.
type Category string

const (
	CategoryPlaceholder   Category = ""
	CategorySet           Category = "set"
	CategoryWallpaper     Category = "wallpaper"
	CategoryWoodenBlind   Category = "wooden_blind"
	CategoryRollerBlind   Category = "roller_blind"
	CategoryVerticalBlind Category = "vertical_blind"
	CategoryPartition     Category = "partition"
	CategoryPleatedScreen Category = "pleated_screen"
	CategoryAluminumBlind Category = "aluminum_blind"
)

// Kind is the closed set of item variants a category resolves to.
type Kind int

const (
	KindUnknown Kind = iota
	KindPlaceholder
	KindSet
	KindWallpaper
	KindAreaBased
)

// Kind resolves the category tag to its variant.
func (c Category) Kind() Kind {
	switch c {
	case CategoryPlaceholder:
		return KindPlaceholder
	case CategorySet:
		return KindSet
	case CategoryWallpaper:
		return KindWallpaper
	case CategoryWoodenBlind, CategoryRollerBlind, CategoryVerticalBlind,
		CategoryPartition, CategoryPleatedScreen, CategoryAluminumBlind:
		return KindAreaBased
	}
	return KindUnknown
}

// Valid reports whether c is a concrete, known category.
func (c Category) Valid() bool {
	k := c.Kind()
	return k != KindUnknown && k != KindPlaceholder
}

func (c Category) MarshalJSON() ([]byte, error) {
	if c == CategoryPlaceholder {
		return []byte("null"), nil
	}
	return json.Marshal(string(c))
}

func (c *Category) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*c = CategoryPlaceholder
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*c = Category(s)
	return nil
}

// Curtain styles as stored in state.
const (
	StyleWave    = "ลอน"
	StyleGrommet = "ตาไก่"
	StylePleat   = "จีบ"
	StyleRoman   = "ม่านพับ"
	StylePanel   = "ม่านแป๊บ"
	StyleLouis   = "หลุยส์"
)

// Fabric variants. A variant may name both components, e.g. "ทึบ&โปร่ง".
const (
	FabricOpaque = "ทึบ"
	FabricSheer  = "โปร่ง"
)

// SetSpec carries the curtain-only attributes of a set item.
type SetSpec struct {
	Style           string `json:"style,omitempty"`
	FabricVariant   string `json:"fabric_variant,omitempty"`
	PricePerMRaw    Num    `json:"price_per_m_raw,omitempty"`
	SheerPricePerM  Num    `json:"sheer_price_per_m,omitempty"`
	LouisPricePerM  Num    `json:"louis_price_per_m,omitempty"`
	FabricCode      string `json:"fabric_code,omitempty"`
	SheerFabricCode string `json:"sheer_fabric_code,omitempty"`
	OpeningStyle    string `json:"opening_style,omitempty"`
	AdjustmentSide  string `json:"adjustment_side,omitempty"`
	Hardware
}

// WallpaperSpec carries the wallpaper-only attributes. Widths lists one entry
// per measured wall segment.
type WallpaperSpec struct {
	PricePerRoll       Num      `json:"price_per_roll,omitempty"`
	InstallCostPerRoll OptFloat `json:"install_cost_per_roll"`
	Widths             []Num    `json:"widths"`
}

// AreaSpec carries the attributes of blinds, partitions and screens.
type AreaSpec struct {
	PriceSqyd Num `json:"price_sqyd,omitempty"`
}

// Item is one priced line. Exactly one of the embedded specs is set for a
// concrete category; a placeholder carries none.
type Item struct {
	ID          string   `json:"id"`
	RoomID      string   `json:"roomId"`
	Type        Category `json:"type"`
	IsSuspended bool     `json:"is_suspended"`
	WidthM      Num      `json:"width_m"`
	HeightM     Num      `json:"height_m"`
	Notes       string   `json:"notes,omitempty"`
	Code        string   `json:"code,omitempty"`

	*SetSpec
	*WallpaperSpec
	*AreaSpec
}

// Kind is shorthand for it.Type.Kind().
func (it *Item) Kind() Kind { return it.Type.Kind() }

// Set returns the curtain attributes, or nil when the item is not a set.
func (it *Item) Set() *SetSpec {
	if it.Kind() != KindSet {
		return nil
	}
	return it.SetSpec
}

// Wallpaper returns the wallpaper attributes, or nil when the item is not wallpaper.
func (it *Item) Wallpaper() *WallpaperSpec {
	if it.Kind() != KindWallpaper {
		return nil
	}
	return it.WallpaperSpec
}

// Area returns the area-based attributes, or nil for other categories.
func (it *Item) Area() *AreaSpec {
	if it.Kind() != KindAreaBased {
		return nil
	}
	return it.AreaSpec
}

// Copy returns a copy of the item with its own spec structs and widths slice.
func (it *Item) Copy() *Item {
	cp := *it
	if it.SetSpec != nil {
		s := *it.SetSpec
		cp.SetSpec = &s
	}
	if it.WallpaperSpec != nil {
		w := *it.WallpaperSpec
		w.Widths = append([]Num(nil), it.WallpaperSpec.Widths...)
		cp.WallpaperSpec = &w
	}
	if it.AreaSpec != nil {
		a := *it.AreaSpec
		cp.AreaSpec = &a
	}
	return &cp
}

// Promote changes the category of a copy of the item. Common fields are kept,
// the attribute struct of the new category is allocated and the others dropped.
// Promoting to set fills style and hardware from the room defaults.
func (it *Item) Promote(c Category, defaults RoomDefaults) *Item {
	cp := it.Copy()
	cp.Type = c
	cp.SetSpec, cp.WallpaperSpec, cp.AreaSpec = nil, nil, nil

	switch c.Kind() {
	case KindSet:
		spec := &SetSpec{}
		if it.SetSpec != nil {
			*spec = *it.SetSpec
		}
		spec.Style = firstNonEmpty(defaults.Style, StyleWave)
		spec.FabricVariant = firstNonEmpty(defaults.FabricVariant, FabricOpaque)
		spec.OpeningStyle = firstNonEmpty(defaults.OpeningStyle, "แยกกลาง")
		spec.AdjustmentSide = firstNonEmpty(defaults.AdjustmentSide, "ปรับขวา")
		spec.TrackColor = firstNonEmpty(defaults.TrackColor, "ขาว")
		spec.BracketColor = firstNonEmpty(defaults.BracketColor, "ขาว")
		spec.FinialColor = firstNonEmpty(defaults.FinialColor, "ขาว")
		spec.GrommetColor = firstNonEmpty(defaults.GrommetColor, "เงิน")
		spec.LouisValance = firstNonEmpty(defaults.LouisValance, "กล่องหลุยส์")
		spec.LouisTassels = firstNonEmpty(defaults.LouisTassels, "พู่หลุยส์")
		cp.SetSpec = spec
	case KindWallpaper:
		spec := &WallpaperSpec{Widths: []Num{}}
		if it.WallpaperSpec != nil {
			*spec = *it.WallpaperSpec
			spec.Widths = append([]Num(nil), it.WallpaperSpec.Widths...)
		}
		cp.WallpaperSpec = spec
	case KindAreaBased:
		spec := &AreaSpec{}
		if it.AreaSpec != nil {
			*spec = *it.AreaSpec
		}
		cp.AreaSpec = spec
	}
	return cp
}

// ApplyHardware overwrites the non-empty hardware fields of a set item copy.
func (it *Item) ApplyHardware(h Hardware) *Item {
	cp := it.Copy()
	if cp.SetSpec == nil {
		cp.SetSpec = &SetSpec{}
	}
	hw := &cp.SetSpec.Hardware
	hw.TrackColor = firstNonEmpty(h.TrackColor, hw.TrackColor)
	hw.BracketColor = firstNonEmpty(h.BracketColor, hw.BracketColor)
	hw.FinialColor = firstNonEmpty(h.FinialColor, hw.FinialColor)
	hw.GrommetColor = firstNonEmpty(h.GrommetColor, hw.GrommetColor)
	hw.LouisValance = firstNonEmpty(h.LouisValance, hw.LouisValance)
	hw.LouisTassels = firstNonEmpty(h.LouisTassels, hw.LouisTassels)
	return cp
}

// WithField returns a copy of the item with the named JSON field replaced.
// The boolean is false, and the item is returned untouched, when the field is
// unknown or does not belong to the item's category.
func (it *Item) WithField(field string, value any) (*Item, bool) {
	cp := it.Copy()
	switch field {
	case "width_m":
		cp.WidthM = ToNum(value)
	case "height_m":
		cp.HeightM = ToNum(value)
	case "notes":
		cp.Notes = cast.ToString(value)
	case "code":
		cp.Code = cast.ToString(value)
	case "is_suspended":
		cp.IsSuspended = cast.ToBool(value)
	default:
		if !cp.setSpecField(field, value) {
			return it, false
		}
	}
	return cp, true
}

func (it *Item) setSpecField(field string, value any) bool {
	switch it.Kind() {
	case KindSet:
		if it.SetSpec == nil {
			it.SetSpec = &SetSpec{}
		}
		return it.SetSpec.setField(field, value)
	case KindWallpaper:
		if it.WallpaperSpec == nil {
			it.WallpaperSpec = &WallpaperSpec{}
		}
		w := it.WallpaperSpec
		switch field {
		case "price_per_roll":
			w.PricePerRoll = ToNum(value)
		case "install_cost_per_roll":
			w.InstallCostPerRoll = ParseOptFloat(value)
		case "widths":
			raw := cast.ToSlice(value)
			widths := make([]Num, 0, len(raw))
			for _, v := range raw {
				widths = append(widths, ToNum(v))
			}
			w.Widths = widths
		default:
			return false
		}
		return true
	case KindAreaBased:
		if field != "price_sqyd" {
			return false
		}
		if it.AreaSpec == nil {
			it.AreaSpec = &AreaSpec{}
		}
		it.AreaSpec.PriceSqyd = ToNum(value)
		return true
	}
	return false
}

func (s *SetSpec) setField(field string, value any) bool {
	str := func() string { return cast.ToString(value) }
	switch field {
	case "style":
		s.Style = str()
	case "fabric_variant":
		s.FabricVariant = str()
	case "price_per_m_raw":
		s.PricePerMRaw = ToNum(value)
	case "sheer_price_per_m":
		s.SheerPricePerM = ToNum(value)
	case "louis_price_per_m":
		s.LouisPricePerM = ToNum(value)
	case "fabric_code":
		s.FabricCode = str()
	case "sheer_fabric_code":
		s.SheerFabricCode = str()
	case "opening_style":
		s.OpeningStyle = str()
	case "adjustment_side":
		s.AdjustmentSide = str()
	case "track_color":
		s.TrackColor = str()
	case "bracket_color":
		s.BracketColor = str()
	case "finial_color":
		s.FinialColor = str()
	case "grommet_color":
		s.GrommetColor = str()
	case "louis_valance":
		s.LouisValance = str()
	case "louis_tassels":
		s.LouisTassels = str()
	default:
		return false
	}
	return true
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
