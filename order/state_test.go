package order

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode(t *testing.T) {
	t.Run("fills defaults and room ids", func(t *testing.T) {
		o, err := Decode([]byte(`{
			"customer_name": "Ann",
			"rooms": [{"id": "r1", "room_name": "Living", "items": [
				{"id": "i1", "type": "set", "width_m": "2.5", "height_m": 2.4, "style": "ลอน", "price_per_m_raw": "1,200"},
				{"id": "i2", "type": null}
			]}]
		}`))
		require.NoError(t, err)

		assert.Equal(t, AppVersion, o.AppVersion)
		assert.Equal(t, DiscountAmount, o.Discount.Type)
		require.Len(t, o.Rooms, 1)
		items := o.Rooms[0].Items
		require.Len(t, items, 2)
		assert.Equal(t, "r1", items[0].RoomID)
		assert.Equal(t, Num(2.5), items[0].WidthM)
		require.NotNil(t, items[0].Set())
		assert.Equal(t, Num(1200), items[0].PricePerMRaw)
		assert.Equal(t, CategoryPlaceholder, items[1].Type)
	})

	bad := map[string]string{
		"not json":       `{`,
		"array":          `[]`,
		"missing rooms":  `{"customer_name": "x"}`,
		"rooms not list": `{"rooms": {}}`,
		"null room":      `{"rooms": [null]}`,
		"duplicate ids":  `{"rooms": [{"id": "a"}, {"id": "a"}]}`,
		"bad discount":   `{"rooms": [], "discount": {"type": "bogus", "value": 1}}`,
	}
	for name, in := range bad {
		t.Run(name, func(t *testing.T) {
			_, err := Decode([]byte(in))
			assert.ErrorIs(t, err, ErrMalformedState)
		})
	}
}

func TestCategoryJSON(t *testing.T) {
	it := &Item{ID: "x"}
	data, err := json.Marshal(it)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"type":null`)

	var back Item
	require.NoError(t, json.Unmarshal([]byte(`{"id":"x","type":"roller_blind","price_sqyd":500}`), &back))
	assert.Equal(t, KindAreaBased, back.Kind())
	require.NotNil(t, back.Area())
	assert.Equal(t, Num(500), back.PriceSqyd)
}

func TestClone_Isolated(t *testing.T) {
	o := Default()
	o.Rooms = append(o.Rooms, &Room{ID: "r", Items: []*Item{{
		ID: "w", Type: CategoryWallpaper, WallpaperSpec: &WallpaperSpec{Widths: []Num{1, 2}},
	}}})

	cp, err := Clone(o)
	require.NoError(t, err)
	cp.Rooms[0].Items[0].Widths[0] = 7
	cp.Rooms[0].ID = "changed"

	assert.Equal(t, Num(1), o.Rooms[0].Items[0].Widths[0])
	assert.Equal(t, "r", o.Rooms[0].ID)

	nilClone, err := Clone(nil)
	assert.NoError(t, err)
	assert.Nil(t, nilClone)
}

func TestWithDefaults(t *testing.T) {
	assert.Equal(t, Default(), WithDefaults(nil))

	in := &Order{Discount: Discount{Value: 5}}
	out := WithDefaults(in)
	assert.NotSame(t, in, out)
	assert.Empty(t, in.AppVersion)
	assert.Equal(t, DiscountAmount, out.Discount.Type)
	assert.Equal(t, 5.0, out.Discount.Value)
}

func TestNewID(t *testing.T) {
	a, b := NewID("item"), NewID("item")
	assert.NotEqual(t, a, b)
	assert.Regexp(t, `^item-[0-9a-z]{26}$`, a)
}
