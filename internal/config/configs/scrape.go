package configs

import (
	"fmt"
	"time"
)

// Scrape controls when reconciliation runs happen.
type Scrape struct {
	Interval time.Duration `env:"INTERVAL" envDefault:"1h"`
	// OnStart triggers a run right after startup instead of waiting for
	// the first tick.
	OnStart bool `env:"ON_START" envDefault:"false"`
	// Timezone decides which calendar day is "today" for lifecycle dates
	// and report periods.
	Timezone string `env:"TIMEZONE" envDefault:"Europe/Kyiv"`
}

// Validate rejects an interval the scheduler cannot tick with.
func (c Scrape) Validate() error {
	if c.Interval <= 0 {
		return fmt.Errorf("scrape interval must be positive, got %s", c.Interval)
	}
	return nil
}

// Location loads Timezone.
func (c Scrape) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("scrape timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}
