package services

import (
	"testing"
	"time"
)

func TestQuotePeriod(t *testing.T) {
	tests := []struct {
		name   string
		date   time.Time
		expect string
	}{
		{"march", time.Date(2026, time.March, 31, 0, 0, 0, 0, time.UTC), "2603"},
		{"december", time.Date(2025, time.December, 1, 0, 0, 0, 0, time.UTC), "2512"},
		{"year_2000", time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC), "0001"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := QuotePeriod(tt.date); got != tt.expect {
				t.Errorf("QuotePeriod(%v) = %q, want %q", tt.date, got, tt.expect)
			}
		})
	}
}

func TestQuoteNumberFormat(t *testing.T) {
	tests := []struct {
		period string
		seq    int
		expect string
	}{
		{"2603", 1, "QT-2603-001"},
		{"2603", 42, "QT-2603-042"},
		{"2512", 1234, "QT-2512-1234"},
	}
	for _, tt := range tests {
		if got := formatQuoteNumber(tt.period, tt.seq); got != tt.expect {
			t.Errorf("formatQuoteNumber(%q, %d) = %q, want %q", tt.period, tt.seq, got, tt.expect)
		}
	}
}
