package config

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sethvargo/go-envconfig"

	"github.com/mperezcarrasco/wildfires/internal/models"
	"github.com/mperezcarrasco/wildfires/internal/regions"
)

// Config holds all configuration for the fire feed service.
type Config struct {
	// Server configuration
	Port string `env:"PORT,default=8080"`

	// NASA FIRMS map key. Deliberately not required here: a missing key
	// is surfaced as a configuration error on each feed request, the
	// process itself still starts.
	MapKey string `env:"MAP_KEY"`

	// FIRMS area endpoint, completed per request as
	// {url}/{key}/{source}/{west},{south},{east},{north}/{days}
	FIRMSAreaURL string `env:"FIRMS_AREA_URL,default=https://firms.modaps.eosdis.nasa.gov/api/area/csv"`

	// Geographic filter: a named Chilean region, or explicit bounds
	// overriding it when all four are set.
	Region      string   `env:"REGION,default=biobio"`
	BoundsNorth *float64 `env:"BOUNDS_NORTH,noinit"`
	BoundsSouth *float64 `env:"BOUNDS_SOUTH,noinit"`
	BoundsWest  *float64 `env:"BOUNDS_WEST,noinit"`
	BoundsEast  *float64 `env:"BOUNDS_EAST,noinit"`

	// Feed configuration
	DefaultDays  int           `env:"DEFAULT_DAYS,default=2"`
	FetchTimeout time.Duration `env:"FETCH_TIMEOUT,default=30s"`

	// Service configuration
	Environment string `env:"ENVIRONMENT,default=development"`
	LogLevel    string `env:"LOG_LEVEL,default=info"`
	LogFormat   string `env:"LOG_FORMAT,default=text"`

	// Bounds is resolved from Region or the BOUNDS_* overrides, and
	// RegionName is the display name of whichever won. Neither is read
	// from the environment directly.
	Bounds     models.RegionBounds
	RegionName string
}

// Load loads configuration from environment variables and resolves the
// geographic bounds.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}
	if err := cfg.resolveBounds(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) resolveBounds() error {
	overrides := 0
	for _, v := range []*float64{c.BoundsNorth, c.BoundsSouth, c.BoundsWest, c.BoundsEast} {
		if v != nil {
			overrides++
		}
	}

	switch overrides {
	case 4:
		c.Bounds = models.RegionBounds{
			North: *c.BoundsNorth,
			South: *c.BoundsSouth,
			West:  *c.BoundsWest,
			East:  *c.BoundsEast,
		}
		if c.Bounds.South > c.Bounds.North || c.Bounds.West > c.Bounds.East {
			return fmt.Errorf("invalid bounds override: south above north or west beyond east")
		}
		c.RegionName = "custom bounds"
		return nil
	case 0:
		region, ok := regions.Lookup(c.Region)
		if !ok {
			return fmt.Errorf("unknown region %q (known: %s)", c.Region, strings.Join(regions.Names(), ", "))
		}
		c.Bounds = region.Bounds
		c.RegionName = region.Name
		return nil
	default:
		return fmt.Errorf("partial bounds override: BOUNDS_NORTH, BOUNDS_SOUTH, BOUNDS_WEST and BOUNDS_EAST must all be set")
	}
}
