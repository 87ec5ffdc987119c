package services

import (
	"strings"
	"testing"

	"marnthara/order"
)

func summaryOrder() *order.Order {
	o := order.Default()
	living := &order.Room{ID: "room-1", Name: "ห้องนั่งเล่น", Items: []*order.Item{
		setItem(order.StyleWave, order.FabricOpaque, 2, 2.4, 1000, 0),
		areaItem(order.CategoryRollerBlind, 1, 1, 500),
		{ID: "placeholder", RoomID: "room-1"},
	}}
	bedroom := &order.Room{ID: "room-2", Name: "ห้องนอน", IsSuspended: true, Items: []*order.Item{
		setItem(order.StyleWave, order.FabricOpaque, 2, 2.4, 1000, 0),
	}}
	o.Rooms = []*order.Room{living, bedroom}
	return o
}

func TestGenerateTextSummary(t *testing.T) {
	o := summaryOrder()
	o.Discount = order.Discount{Type: order.DiscountPercent, Value: 10}

	got := GenerateTextSummary(o)
	want := "สรุปรายการ:\n" +
		"\n*ห้องนั่งเล่น*:\n" +
		"  - ผ้าม่าน: 2.00x2.40 ม. (ลอน, ทึบ) = 6,000 บ.\n" +
		"  - ม่านม้วน: 1.00x1.00 ม. (1.5 หลา) = 750 บ.\n" +
		"  _ยอดรวม ห้องนั่งเล่น: 6,750 บ._\n" +
		"\n--------------------\n" +
		"*ยอดรวม (ก่อนส่วนลด): 6,750 บ.*\n" +
		"*ส่วนลด 10%: -675 บ.*\n" +
		"*ยอดสุทธิ: 6,075 บ.*\n"
	if got != want {
		t.Errorf("GenerateTextSummary mismatch\n got: %q\nwant: %q", got, want)
	}
}

func TestGenerateTextSummary_AmountDiscount(t *testing.T) {
	o := summaryOrder()
	o.Discount = order.Discount{Type: order.DiscountAmount, Value: 750}

	got := GenerateTextSummary(o)
	if !strings.Contains(got, "*ส่วนลด: -750 บ.*\n") {
		t.Errorf("missing amount discount line in %q", got)
	}
	if !strings.Contains(got, "*ยอดสุทธิ: 6,000 บ.*\n") {
		t.Errorf("missing grand total in %q", got)
	}
}

func TestGenerateTextSummary_NoDiscountLine(t *testing.T) {
	got := GenerateTextSummary(summaryOrder())
	if strings.Contains(got, "ส่วนลด") {
		t.Errorf("zero discount should not print a discount line: %q", got)
	}
	if strings.Contains(got, "ห้องนอน") {
		t.Errorf("suspended room should be omitted: %q", got)
	}
}

func TestDescribeItem_Wallpaper(t *testing.T) {
	line, ok := DescribeItem(wallpaperItem(2.0, 1000, order.OptFloat{}, 1.0, 1.0))
	if !ok {
		t.Fatal("DescribeItem returned false for wallpaper")
	}
	if line.Details != "สูง 2.00 ม., กว้าง 2.00 ม. (2 ม้วน)" {
		t.Errorf("Details = %q", line.Details)
	}
	if line.Price != 2600 {
		t.Errorf("Price = %v, want 2600", line.Price)
	}
}

func TestDescribeItem_LouisName(t *testing.T) {
	it := setItem(order.StyleLouis, order.FabricOpaque, 2, 2, 1000, 0)
	line, ok := DescribeItem(it)
	if !ok || line.Name != order.LouisSetName {
		t.Errorf("Name = %q, want %q", line.Name, order.LouisSetName)
	}
}
