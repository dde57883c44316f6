package fetchers

import (
	"testing"
	"time"
)

func TestFormatAcqTime(t *testing.T) {
	tests := []struct {
		raw      string
		expected string
	}{
		{"438", "04:38"},
		{"1230", "12:30"},
		{"1", "00:01"},
		{"0", "00:00"},
		{"", "00:00"},
		{"abc", "abc"},
		{"12ab", "12ab"},
		{"-438", "-438"}, // signed input is not two digit pairs
	}

	for _, tt := range tests {
		if got := FormatAcqTime(tt.raw); got != tt.expected {
			t.Errorf("FormatAcqTime(%q) = %q, want %q", tt.raw, got, tt.expected)
		}
	}
}

func TestAcqDateTimeUTC(t *testing.T) {
	dt, ok := AcqDateTimeUTC("2024-01-15", "438")
	if !ok {
		t.Fatal("Expected valid datetime for 2024-01-15 438")
	}
	expected := time.Date(2024, 1, 15, 4, 38, 0, 0, time.UTC)
	if !dt.Equal(expected) {
		t.Errorf("Got %v, want %v", dt, expected)
	}
}

func TestAcqDateTimeUTCAbsent(t *testing.T) {
	tests := []struct {
		name    string
		date    string
		rawTime string
	}{
		{"bad date", "15/01/2024", "438"},
		{"empty date", "", "438"},
		{"non-numeric time", "2024-01-15", "abc"},
		{"minutes out of range", "2024-01-15", "1299"},
		{"hours out of range", "2024-01-15", "2500"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, ok := AcqDateTimeUTC(tt.date, tt.rawTime); ok {
				t.Errorf("Expected absent datetime for date=%q time=%q", tt.date, tt.rawTime)
			}
		})
	}
}

func TestChileLocal(t *testing.T) {
	utc := time.Date(2024, 1, 15, 2, 30, 0, 0, time.UTC)
	chile := ChileLocal(utc)

	// Fixed UTC-3 offset, crossing midnight backwards.
	if chile.Format("2006-01-02 15:04") != "2024-01-14 23:30" {
		t.Errorf("ChileLocal(%v) = %v", utc, chile)
	}
}

func TestHoursAgo(t *testing.T) {
	now := time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		utc      time.Time
		expected float64
	}{
		{time.Date(2024, 1, 15, 9, 0, 0, 0, time.UTC), 3.0},
		{time.Date(2024, 1, 15, 11, 33, 0, 0, time.UTC), 0.5}, // 27 min rounds to 0.5
		{time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC), 0.0},
		{time.Date(2024, 1, 14, 12, 0, 0, 0, time.UTC), 24.0},
	}

	for _, tt := range tests {
		if got := HoursAgo(tt.utc, now); got != tt.expected {
			t.Errorf("HoursAgo(%v) = %v, want %v", tt.utc, got, tt.expected)
		}
	}
}
