package app

import (
	"fmt"
	"time"

	"tv-import/internal/merge"
	"tv-import/internal/store"
	"tv-import/internal/timefmt"
)

// ProvideConfig loads and validates config from environment (for Wire).
func ProvideConfig() (*Config, error) {
	cfg := LoadConfig()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ProvideLocation resolves the reference timezone (for Wire).
func ProvideLocation(cfg *Config) (*time.Location, error) {
	return timefmt.LoadZone(cfg.Timezone)
}

// ProvideTableStore creates TableStore from config (for Wire).
// Returns error if SaveFormat is not supported.
func ProvideTableStore(cfg *Config, loc *time.Location) (store.TableStore, error) {
	ts := store.New(cfg.SaveFormat, loc)
	if ts == nil {
		return nil, fmt.Errorf("unsupported SAVE_FORMAT %q (use: csv, json, parquet)", cfg.SaveFormat)
	}
	return ts, nil
}

// ProvideMerger wires the table merger onto the configured store (for Wire).
func ProvideMerger(cfg *Config, ts store.TableStore) *merge.Merger {
	return &merge.Merger{
		Store:      ts,
		Path:       cfg.TablePath(ts.Extension()),
		StrictLoad: cfg.StrictLoad,
	}
}
