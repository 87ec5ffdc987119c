package order

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToNum(t *testing.T) {
	cases := []struct {
		in   any
		want Num
	}{
		{"1,250.50", 1250.5},
		{" 3 ", 3},
		{"abc", 0},
		{nil, 0},
		{2, 2},
		{Num(1.5), 1.5},
		{true, 1},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, ToNum(tc.in), "ToNum(%#v)", tc.in)
	}
}

func TestOptFloat(t *testing.T) {
	assert.False(t, ParseOptFloat("").Valid)
	assert.False(t, ParseOptFloat(nil).Valid)
	assert.False(t, ParseOptFloat("x").Valid)
	assert.Equal(t, Float(0), ParseOptFloat("0"))
	assert.Equal(t, Float(150), ParseOptFloat(150))

	var w WallpaperSpec
	require.NoError(t, w.InstallCostPerRoll.UnmarshalJSON([]byte("null")))
	assert.False(t, w.InstallCostPerRoll.Valid)

	data, err := Float(0).MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, "0", string(data))
}

func TestPromote(t *testing.T) {
	base := &Item{ID: "i", RoomID: "r", WidthM: 2, HeightM: 3, Notes: "n"}

	set := base.Promote(CategorySet, RoomDefaults{Style: StylePleat, Hardware: Hardware{FinialColor: "ทอง"}})
	require.NotNil(t, set.Set())
	assert.Equal(t, StylePleat, set.Style)
	assert.Equal(t, FabricOpaque, set.FabricVariant)
	assert.Equal(t, "ทอง", set.FinialColor)
	assert.Equal(t, "เงิน", set.GrommetColor)
	assert.Equal(t, Num(2), set.WidthM)
	assert.Equal(t, "n", set.Notes)
	assert.Nil(t, base.SetSpec, "source untouched")

	wp := set.Promote(CategoryWallpaper, RoomDefaults{})
	assert.Nil(t, wp.SetSpec)
	require.NotNil(t, wp.Wallpaper())
	assert.NotNil(t, wp.Widths)
}

func TestWithField(t *testing.T) {
	it := &Item{ID: "i", Type: CategoryWallpaper, WallpaperSpec: &WallpaperSpec{}}

	got, ok := it.WithField("widths", []any{"1.5", 2})
	require.True(t, ok)
	assert.Equal(t, []Num{1.5, 2}, got.Widths)
	assert.Empty(t, it.Widths)

	got, ok = it.WithField("install_cost_per_roll", "")
	require.True(t, ok)
	assert.False(t, got.InstallCostPerRoll.Valid)

	same, ok := it.WithField("style", StyleWave)
	assert.False(t, ok)
	assert.Same(t, it, same)

	area := &Item{Type: CategoryPartition}
	got, ok = area.WithField("price_sqyd", "800")
	require.True(t, ok)
	assert.Equal(t, Num(800), got.PriceSqyd)
}

func TestApplyHardwareKeepsUnsetFields(t *testing.T) {
	it := &Item{Type: CategorySet, SetSpec: &SetSpec{Hardware: Hardware{TrackColor: "ขาว", FinialColor: "ดำ"}}}
	got := it.ApplyHardware(Hardware{TrackColor: "ทอง"})
	assert.Equal(t, "ทอง", got.TrackColor)
	assert.Equal(t, "ดำ", got.FinialColor)
	assert.Equal(t, "ขาว", it.TrackColor)
}

func TestDisplayName(t *testing.T) {
	louis := &Item{Type: CategorySet, SetSpec: &SetSpec{Style: StyleLouis}}
	assert.Equal(t, LouisSetName, louis.DisplayName())
	assert.Equal(t, "ม่านม้วน", (&Item{Type: CategoryRollerBlind}).DisplayName())
	assert.Equal(t, "carpet", Category("carpet").Name())
	assert.False(t, CategoryPlaceholder.Valid())
	assert.False(t, Category("carpet").Valid())
}
