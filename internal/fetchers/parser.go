package fetchers

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/mperezcarrasco/wildfires/internal/metrics"
	"github.com/mperezcarrasco/wildfires/internal/models"
)

// parseCSV converts one source's FIRMS area CSV into normalized
// detections, applying the geographic and confidence filters per row.
// A row that fails to parse is logged and skipped; empty or malformed
// input yields an empty slice, never an error.
func (f *DataFetcher) parseCSV(source, csvText string, bounds models.RegionBounds) []models.FireDetection {
	fires := []models.FireDetection{}
	if strings.TrimSpace(csvText) == "" {
		return fires
	}

	reader := csv.NewReader(strings.NewReader(csvText))
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		f.log.Warnf("Unreadable CSV header from %s: %v", source, err)
		return fires
	}
	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.TrimSpace(name)] = i
	}

	now := f.now().UTC()
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			f.log.Warnf("Error reading %s row: %v", source, err)
			metrics.RowsDropped.WithLabelValues(source, "malformed").Inc()
			continue
		}

		fire, dropReason, err := parseRow(columns, record, bounds, now)
		switch {
		case err != nil:
			f.log.Warnf("Error parsing %s row: %v", source, err)
			metrics.RowsDropped.WithLabelValues(source, "malformed").Inc()
		case fire == nil:
			metrics.RowsDropped.WithLabelValues(source, dropReason).Inc()
		default:
			metrics.RowsParsed.WithLabelValues(source).Inc()
			fires = append(fires, *fire)
		}
	}

	return fires
}

// parseRow builds one detection from a CSV record. A nil detection with
// a nil error means the row was filtered (out of bounds or below the
// confidence threshold), which is expected and not logged.
func parseRow(columns map[string]int, record []string, bounds models.RegionBounds, now time.Time) (*models.FireDetection, string, error) {
	lat, err := floatField(columns, record, "latitude")
	if err != nil {
		return nil, "", err
	}
	lon, err := floatField(columns, record, "longitude")
	if err != nil {
		return nil, "", err
	}
	if !bounds.Contains(lat, lon) {
		return nil, "bounds", nil
	}

	confidence, ok := normalizeConfidence(stringField(columns, record, "confidence"))
	if !ok {
		return nil, "confidence", nil
	}

	frp, err := floatField(columns, record, "frp")
	if err != nil {
		return nil, "", err
	}

	acqDate := stringField(columns, record, "acq_date")
	acqTimeRaw := stringField(columns, record, "acq_time")
	utcFormatted := FormatAcqTime(acqTimeRaw)

	fire := &models.FireDetection{
		Latitude:   lat,
		Longitude:  lon,
		FRP:        frp,
		AcqDate:    acqDate,
		AcqTimeRaw: acqTimeRaw,
		AcqTimeUTC: utcFormatted,
		Confidence: confidence,
		Satellite:  stringField(columns, record, "satellite"),
		DayNight:   localizeDayNight(stringField(columns, record, "daynight")),
	}

	if dtUTC, ok := AcqDateTimeUTC(acqDate, acqTimeRaw); ok {
		chile := ChileLocal(dtUTC)
		fire.AcqTimeChile = chile.Format("15:04")
		fire.AcqDatetimeChile = chile.Format("2006-01-02 15:04")
		fire.TimestampUTC = dtUTC.Unix()
		fire.HoursAgo = HoursAgo(dtUTC, now)
	} else {
		// Unparseable date/time degrades to the UTC display strings;
		// the zero timestamp sorts the record as very old.
		fire.AcqTimeChile = utcFormatted
		fire.AcqDatetimeChile = acqDate + " " + utcFormatted
	}

	return fire, "", nil
}

// normalizeConfidence collapses both FIRMS confidence encodings into
// the two-tier n/h bucket. Numeric values below 50 and the textual "l"
// tier are rejected outright.
func normalizeConfidence(raw string) (string, bool) {
	trimmed := strings.TrimSpace(raw)

	if n, err := strconv.Atoi(trimmed); err == nil {
		if n < 50 {
			return "", false
		}
		if n >= 80 {
			return "h", true
		}
		return "n", true
	}

	switch strings.ToLower(trimmed) {
	case "h", "high":
		return "h", true
	case "n", "nominal":
		return "n", true
	}
	return "", false
}

// localizeDayNight maps the FIRMS illumination code to its Spanish
// label, passing unrecognized codes through unchanged.
func localizeDayNight(code string) string {
	switch code {
	case "D":
		return "Día"
	case "N":
		return "Noche"
	}
	return code
}

// floatField parses a float column. An absent column defaults to zero
// (historical feed behavior); a present but unparseable value is a row
// error.
func floatField(columns map[string]int, record []string, name string) (float64, error) {
	idx, ok := columns[name]
	if !ok || idx >= len(record) {
		return 0, nil
	}
	value, err := strconv.ParseFloat(strings.TrimSpace(record[idx]), 64)
	if err != nil {
		return 0, fmt.Errorf("bad %s value %q", name, record[idx])
	}
	return value, nil
}

// stringField returns a column value, or "" when the column is absent.
func stringField(columns map[string]int, record []string, name string) string {
	idx, ok := columns[name]
	if !ok || idx >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[idx])
}
