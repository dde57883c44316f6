// Package regions maps named Chilean administrative regions to the
// bounding boxes the feed can be configured with. Lookup tolerates
// accents, case, and spacing so "Biobío", "biobio" and "VIII Region"
// all resolve to the same bounds.
package regions

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/mperezcarrasco/wildfires/internal/models"
)

// Region couples a display name with its rectangular bounds. The boxes
// are coarse: they exist to trim the FIRMS query, not to trace
// administrative borders.
type Region struct {
	Name   string
	Bounds models.RegionBounds
}

var registry = map[string]Region{
	"biobio": {
		Name:   "Biobío (VIII Región)",
		Bounds: models.RegionBounds{North: -36.0, South: -38.5, West: -73.5, East: -71.0},
	},
	"nuble": {
		Name:   "Ñuble (XVI Región)",
		Bounds: models.RegionBounds{North: -35.9, South: -37.2, West: -73.0, East: -71.0},
	},
	"araucania": {
		Name:   "La Araucanía (IX Región)",
		Bounds: models.RegionBounds{North: -37.5, South: -39.7, West: -73.5, East: -70.8},
	},
	"maule": {
		Name:   "Maule (VII Región)",
		Bounds: models.RegionBounds{North: -34.7, South: -36.5, West: -72.8, East: -70.3},
	},
	"valparaiso": {
		Name:   "Valparaíso (V Región)",
		Bounds: models.RegionBounds{North: -32.0, South: -33.7, West: -72.0, East: -70.0},
	},
}

var aliases = map[string]string{
	"viiiregion":         "biobio",
	"regiondelbiobio":    "biobio",
	"xviregion":          "nuble",
	"ixregion":           "araucania",
	"laaraucania":        "araucania",
	"viiregion":          "maule",
	"vregion":            "valparaiso",
	"regiondevalparaiso": "valparaiso",
}

// Lookup resolves a region by name, ignoring accents, case, hyphens and
// whitespace.
func Lookup(name string) (Region, bool) {
	key := normalizeName(name)
	if canonical, ok := aliases[key]; ok {
		key = canonical
	}
	region, ok := registry[key]
	return region, ok
}

// Names lists the canonical registry keys, for error messages.
func Names() []string {
	names := make([]string, 0, len(registry))
	for key := range registry {
		names = append(names, key)
	}
	return names
}

// normalizeName lowercases, strips diacritics and collapses separators.
func normalizeName(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	s = stripAccents(s)
	s = strings.ReplaceAll(s, "-", " ")
	s = strings.ReplaceAll(s, "_", " ")
	s = strings.Join(strings.Fields(s), " ")
	return strings.ReplaceAll(s, " ", "")
}

func stripAccents(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, _ := transform.String(t, s)
	return out
}
