package services

import (
	"fmt"
	"time"

	"github.com/pocketbase/pocketbase/core"
)

// QuotePeriod returns the two-digit year and month used in quote numbers.
// March 2026 → "2603".
func QuotePeriod(t time.Time) string {
	return fmt.Sprintf("%02d%02d", t.Year()%100, int(t.Month()))
}

func formatQuoteNumber(period string, sequence int) string {
	return fmt.Sprintf("QT-%s-%03d", period, sequence)
}

// GenerateQuoteNumber creates the next quote number for the month of now.
// Format: QT-{yymm}-{sequence}, where sequence is 3-digit zero-padded and
// restarts every month.
func GenerateQuoteNumber(app core.App, now time.Time) (string, error) {
	period := QuotePeriod(now)
	prefix := fmt.Sprintf("QT-%s-", period)

	existing, err := app.FindRecordsByFilter(
		"orders",
		"quote_number ~ {:prefix}",
		"",
		0,
		0,
		map[string]any{"prefix": prefix + "%"},
	)
	if err != nil {
		return "", fmt.Errorf("count quotes for %s: %w", period, err)
	}

	return formatQuoteNumber(period, len(existing)+1), nil
}
