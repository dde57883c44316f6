package fetchers

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// FIRMS reports acquisition times in UTC; Chile display times use a
// fixed UTC-3 offset (summer time). The conversion is deliberately not
// DST-aware: fire season is the austral summer and the feed's consumers
// expect the summer offset year-round. Known limitation, kept for
// output compatibility.
const chileUTCOffset = -3 * time.Hour

// FormatAcqTime converts the FIRMS HHMM encoding (possibly missing
// leading zeros, e.g. "438") to "HH:MM". Unparseable input is returned
// unchanged; a bad time field degrades the display string, it never
// fails the row.
func FormatAcqTime(raw string) string {
	hours, minutes, ok := splitAcqTime(raw)
	if !ok {
		return raw
	}
	return fmt.Sprintf("%02d:%02d", hours, minutes)
}

// AcqDateTimeUTC combines an acquisition date (YYYY-MM-DD) with the raw
// HHMM time into a UTC instant. The second return value is false when
// either part fails to parse, and callers must propagate that absence
// into every derived field.
func AcqDateTimeUTC(acqDate, rawTime string) (time.Time, bool) {
	hours, minutes, ok := splitAcqTime(rawTime)
	if !ok || hours > 23 || minutes > 59 {
		return time.Time{}, false
	}

	day, err := time.Parse("2006-01-02", acqDate)
	if err != nil {
		return time.Time{}, false
	}

	return time.Date(day.Year(), day.Month(), day.Day(), hours, minutes, 0, 0, time.UTC), true
}

// ChileLocal shifts a UTC instant to Chile display time.
func ChileLocal(utc time.Time) time.Time {
	return utc.Add(chileUTCOffset)
}

// HoursAgo returns the age of an acquisition instant in hours, rounded
// to one decimal.
func HoursAgo(utc, now time.Time) float64 {
	hours := now.Sub(utc).Seconds() / 3600
	return math.Round(hours*10) / 10
}

// splitAcqTime left-pads the raw value to four characters and splits it
// into hour and minute integers.
func splitAcqTime(raw string) (hours, minutes int, ok bool) {
	padded := raw
	if len(padded) < 4 {
		padded = strings.Repeat("0", 4-len(padded)) + padded
	}

	hours, err := strconv.Atoi(padded[:2])
	if err != nil || hours < 0 {
		return 0, 0, false
	}
	minutes, err = strconv.Atoi(padded[2:])
	if err != nil || minutes < 0 {
		return 0, 0, false
	}
	return hours, minutes, true
}
