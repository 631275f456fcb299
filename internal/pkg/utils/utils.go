package utils

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// calendarDateLayouts are the accepted input formats for a travel date.
var calendarDateLayouts = []string{
	time.DateOnly,
	"Jan 2, 2006",
	"January 2, 2006",
}

// ParseCalendarDate parses a travel date given as ISO or as an English month-day-year
// Example: "2025-01-15" or "Jan 15, 2025" -> 2025-01-15 00:00:00 UTC
func ParseCalendarDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, fmt.Errorf("empty date")
	}

	var lastErr error
	for _, layout := range calendarDateLayouts {
		t, err := time.Parse(layout, value)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}

	return time.Time{}, fmt.Errorf("unsupported date %q: %w", value, lastErr)
}

// RoundPrice rounds an amount half away from zero to two decimals
// Example: 120.005 -> 120.01
func RoundPrice(amount float64) float64 {
	return math.Round(amount*100) / 100
}

// FormatPrice formats an amount with its currency
// Example: ("EUR", 120) -> "EUR 120.00"
func FormatPrice(currency string, amount float64) string {
	return fmt.Sprintf("%s %.2f", currency, amount)
}

// FormatHoursMinutes formats a duration in words
// Example: (2, 30) -> "2 hours 30 minutes", (1, 0) -> "1 hour", (0, 0) -> "0 minutes"
func FormatHoursMinutes(hours, minutes int64) string {
	parts := make([]string, 0, 2)

	if hours > 0 {
		parts = append(parts, pluralize(hours, "hour"))
	}

	if minutes > 0 {
		parts = append(parts, pluralize(minutes, "minute"))
	}

	if len(parts) == 0 {
		return "0 minutes"
	}

	return strings.Join(parts, " ")
}

func pluralize(n int64, unit string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, unit)
	}

	return fmt.Sprintf("%d %ss", n, unit)
}
