package services

import (
	"testing"
	"time"

	"marnthara/order"
)

func TestGenerateQuotePDF_Basic(t *testing.T) {
	o := summaryOrder()
	o.CustomerName = "Somchai"
	o.Discount = order.Discount{Type: order.DiscountAmount, Value: 500}
	data := BuildQuoteData(o, testShop, "QT-2603-001", time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC))

	result, err := GenerateQuotePDF(data, PDFOptions{})
	if err != nil {
		t.Fatalf("GenerateQuotePDF() error = %v", err)
	}
	if len(result) < 5 {
		t.Fatal("GenerateQuotePDF() returned empty bytes")
	}
	if string(result[:5]) != "%PDF-" {
		t.Errorf("result does not start with PDF header, got %q", string(result[:5]))
	}
}

func TestGenerateQuotePDF_EmptyOrder(t *testing.T) {
	data := BuildQuoteData(order.Default(), ShopInfo{}, "", time.Now())

	result, err := GenerateQuotePDF(data, PDFOptions{})
	if err != nil {
		t.Fatalf("GenerateQuotePDF() error = %v", err)
	}
	if len(result) == 0 {
		t.Fatal("GenerateQuotePDF() returned empty bytes")
	}
}

func TestGenerateQuotePDF_MissingFont(t *testing.T) {
	data := BuildQuoteData(summaryOrder(), testShop, "", time.Now())

	if _, err := GenerateQuotePDF(data, PDFOptions{FontPath: "/nonexistent/font.ttf"}); err == nil {
		t.Error("expected error for missing font file")
	}
}

func TestFormatQty(t *testing.T) {
	tests := []struct {
		name  string
		input float64
		want  string
	}{
		{"whole number", 10, "10"},
		{"zero", 0, "0"},
		{"half yard", 1.5, "1.50"},
		{"small decimal", 0.25, "0.25"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := formatQty(tt.input)
			if got != tt.want {
				t.Errorf("formatQty(%v) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestLatinOnly(t *testing.T) {
	if got := latinOnly("Curtain ผ้าม่าน 2.00 m"); got != "Curtain  2.00 m" {
		t.Errorf("latinOnly = %q", got)
	}
}
