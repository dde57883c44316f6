package fetchers

import (
	"fmt"
	"strings"
)

// Sources lists the FIRMS near-real-time products polled each cycle.
// Each carries its own confidence encoding: the VIIRS products report
// letters (l/n/h), MODIS reports 0-100.
var Sources = []string{
	"VIIRS_NOAA20_NRT",
	"VIIRS_SNPP_NRT",
	"MODIS_NRT",
}

// MinDays and MaxDays bound the FIRMS day-window parameter.
const (
	MinDays = 1
	MaxDays = 10
)

// ClampDays forces a requested day window into the range FIRMS accepts.
func ClampDays(days int) int {
	if days < MinDays {
		return MinDays
	}
	if days > MaxDays {
		return MaxDays
	}
	return days
}

// areaURL builds the FIRMS area query:
// {endpoint}/{key}/{source}/{west},{south},{east},{north}/{days}
func areaURL(endpoint, mapKey, source, area string, days int) string {
	return fmt.Sprintf("%s/%s/%s/%s/%d", strings.TrimRight(endpoint, "/"), mapKey, source, area, days)
}
