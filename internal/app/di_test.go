package app

import (
	"path/filepath"
	"testing"
	"time"
)

func TestProvideTableStoreUnsupported(t *testing.T) {
	cfg := &Config{SaveFormat: "xlsx"}
	if _, err := ProvideTableStore(cfg, time.UTC); err == nil {
		t.Error("ProvideTableStore accepted xlsx")
	}
}

func TestProvideMergerPath(t *testing.T) {
	clearEnv(t)
	cfg := LoadConfig()
	loc, err := ProvideLocation(cfg)
	if err != nil {
		t.Fatalf("ProvideLocation: %v", err)
	}
	ts, err := ProvideTableStore(cfg, loc)
	if err != nil {
		t.Fatalf("ProvideTableStore: %v", err)
	}
	m := ProvideMerger(cfg, ts)
	want := filepath.Join("data", "historical_ohlcv_15m.csv")
	if m.Path != want {
		t.Errorf("merger path = %q, want %q", m.Path, want)
	}
}
