// File: studiobook/utils/format.go
package utils

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// FormatDate renders an ISO date ("2006-01-02") as "January 2, 2006".
// Anything that does not parse is returned unchanged so stale or partial
// data still renders.
func FormatDate(date string) string {
	t, err := time.Parse(DateLayout, date)
	if err != nil {
		return date
	}
	return t.Format(DisplayDateLayout)
}

// FormatTime renders a 24h clock string ("14:30" or "14:30:00") as "2:30 PM".
// Anything that does not parse is returned unchanged.
func FormatTime(clock string) string {
	t, err := time.Parse(TimeLayout, clock)
	if err != nil {
		t, err = time.Parse(TimeLayoutSeconds, clock)
		if err != nil {
			return clock
		}
	}
	return t.Format(DisplayTimeLayout)
}

// FormatDuration renders a minute count for display: "45 minutes",
// "1 hour", "2 hours", "1h 15m".
func FormatDuration(minutes int) string {
	if minutes < 60 {
		return fmt.Sprintf("%d minutes", minutes)
	}
	hours := minutes / 60
	rem := minutes % 60
	if rem == 0 {
		if hours == 1 {
			return "1 hour"
		}
		return fmt.Sprintf("%d hours", hours)
	}
	return fmt.Sprintf("%dh %dm", hours, rem)
}

// CalculateDuration subtracts two clock strings as decimal HHMM numbers:
// ("09:00", "10:30") yields 130, not 90. The value is a display artifact,
// not a minute count, and goes negative when end precedes start. Capacity
// and validation logic must never consume it.
func CalculateDuration(start, end string) int {
	sh, sm, ok := splitClock(start)
	if !ok {
		return 0
	}
	eh, em, ok := splitClock(end)
	if !ok {
		return 0
	}
	return (eh*100 + em) - (sh*100 + sm)
}

func splitClock(clock string) (hours, minutes int, ok bool) {
	parts := strings.Split(clock, ":")
	if len(parts) < 2 {
		return 0, 0, false
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, false
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, false
	}
	return h, m, true
}

// FormatPrice renders an amount with its currency code, e.g. "150.00 USD".
func FormatPrice(amount float64, currency string) string {
	if currency == "" {
		return fmt.Sprintf("%.2f", amount)
	}
	return fmt.Sprintf("%.2f %s", amount, currency)
}
