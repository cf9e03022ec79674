package store

import (
	"strings"
	"time"

	"tv-import/internal/model"
)

// TableStore là abstraction cho load/persist bảng giá — one file, full rewrite.
// High-level (merge) inject implementation; format is a config concern — DIP.
type TableStore interface {
	// Load reads the whole table. Timestamps are canonicalized through
	// timefmt so stored keys compare equal to freshly parsed ones.
	Load(path string) ([]model.Row, error)
	// Save rewrites the whole table atomically (temp file + rename).
	Save(rows []model.Row, path string) error
	Extension() string
}

// New creates implementation by format (csv, json, parquet).
// Returns nil if format not supported.
func New(format string, loc *time.Location) TableStore {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "csv":
		return CSVStore{Loc: loc}
	case "json":
		return JSONStore{Loc: loc}
	case "parquet":
		return ParquetStore{Loc: loc}
	default:
		return nil
	}
}
