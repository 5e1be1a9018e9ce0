package config

import (
	"time"

	"ahoy_market/internal/domain/value"
)

const (
	ScanModeContinuous = "continuous"
	ScanModeOnce       = "once"
)

type Scan struct {
	Factions      []string      `env:"SCAN_FACTIONS" envSeparator:","`
	Rarities      []string      `env:"SCAN_RARITIES" envSeparator:","`
	Foils         []string      `env:"SCAN_FOILS" envSeparator:","`
	PageSize      uint32        `env:"SCAN_PAGE_SIZE" envDefault:"20" validate:"min=1,max=100"`
	FanOut        int           `env:"SCAN_FAN_OUT" envDefault:"3" validate:"min=1,max=32"`
	CycleInterval time.Duration `env:"SCAN_CYCLE_INTERVAL" envDefault:"0s" validate:"min=0"`
	Mode          string        `env:"SCAN_MODE" envDefault:"continuous" validate:"oneof=continuous once"`
}

// Filter parses the configured faction, rarity and foil names.
func (s Scan) Filter() (value.CategoryFilter, error) {
	var (
		filter value.CategoryFilter
		err    error
	)

	if filter.Factions, err = parseSet(s.Factions, value.ParseCategory); err != nil {
		return value.CategoryFilter{}, err
	}

	if filter.Rarities, err = parseSet(s.Rarities, value.ParseRarity); err != nil {
		return value.CategoryFilter{}, err
	}

	if filter.Foils, err = parseSet(s.Foils, value.ParseFoil); err != nil {
		return value.CategoryFilter{}, err
	}

	return filter, nil
}

func parseSet[T comparable](names []string, parse func(string) (T, error)) (value.Set[T], error) {
	set := value.NewSet[T]()

	for _, name := range names {
		if name == "" {
			continue
		}

		v, err := parse(name)
		if err != nil {
			return nil, err
		}

		set[v] = struct{}{}
	}

	return set, nil
}
