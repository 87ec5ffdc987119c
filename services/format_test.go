package services

import (
	"math"
	"testing"
)

func TestFormatThaiNumber(t *testing.T) {
	tests := []struct {
		name   string
		input  float64
		digits int
		expect string
	}{
		{"zero", 0, 0, "0"},
		{"hundreds", 950, 0, "950"},
		{"thousands", 12500, 0, "12,500"},
		{"millions", 1234567, 0, "1,234,567"},
		{"rounds", 1499.6, 0, "1,500"},
		{"two digits", 1234.5, 2, "1,234.50"},
		{"negative", -1000, 0, "-1,000"},
		{"nan", math.NaN(), 0, "0"},
		{"inf", math.Inf(1), 2, "0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatThaiNumber(tt.input, tt.digits)
			if got != tt.expect {
				t.Errorf("FormatThaiNumber(%v, %d) = %q, want %q", tt.input, tt.digits, got, tt.expect)
			}
		})
	}
}

func TestFormatDecimal(t *testing.T) {
	tests := []struct {
		name   string
		input  float64
		digits int
		expect string
	}{
		{"yards", 5.46805, 2, "5.47"},
		{"grouped", 12345.678, 2, "12,345.68"},
		{"one digit", 2.26, 1, "2.3"},
		{"integer", 1500, 0, "1,500"},
		{"nan", math.NaN(), 2, "0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatDecimal(tt.input, tt.digits)
			if got != tt.expect {
				t.Errorf("FormatDecimal(%v, %d) = %q, want %q", tt.input, tt.digits, got, tt.expect)
			}
		})
	}
}

func TestBahtText(t *testing.T) {
	tests := []struct {
		name   string
		input  float64
		expect string
	}{
		{"zero", 0, "ศูนย์บาทถ้วน"},
		{"one", 1, "หนึ่งบาทถ้วน"},
		{"eleven", 11, "สิบเอ็ดบาทถ้วน"},
		{"twenty one", 21, "ยี่สิบเอ็ดบาทถ้วน"},
		{"hundred and one", 101, "หนึ่งร้อยเอ็ดบาทถ้วน"},
		{"thousand five hundred", 1500, "หนึ่งพันห้าร้อยบาทถ้วน"},
		{"with satang", 1500.25, "หนึ่งพันห้าร้อยบาทยี่สิบห้าสตางค์"},
		{"satang only", 0.5, "ศูนย์บาทห้าสิบสตางค์"},
		{"one million", 1000000, "หนึ่งล้านบาทถ้วน"},
		{"millions and change", 2350010, "สองล้านสามแสนห้าหมื่นสิบบาทถ้วน"},
		{"negative", -5, "N/A"},
		{"too large", 1e12, "N/A"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BahtText(tt.input)
			if got != tt.expect {
				t.Errorf("BahtText(%v) = %q, want %q", tt.input, got, tt.expect)
			}
		})
	}
}
