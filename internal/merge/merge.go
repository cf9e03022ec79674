// Package merge reconciles a batch of parsed bars against the persisted table.
package merge

import (
	"errors"
	"io/fs"
	"log/slog"
	"sort"

	"tv-import/internal/model"
	"tv-import/internal/store"
)

// Merger owns the table for the duration of one run: load, upsert, sort, persist.
type Merger struct {
	Store store.TableStore
	Path  string
	// StrictLoad makes an existing-but-unreadable table fatal instead of
	// silently starting empty. A missing file is never fatal.
	StrictLoad bool
}

// Run merges batch into the persisted table and rewrites it sorted ascending
// by timestamp. The returned rows are the persisted table. Only the final
// write can fail; load problems degrade to an empty table unless StrictLoad.
func (m *Merger) Run(batch []model.Bar) ([]model.Row, error) {
	rows, err := m.Store.Load(m.Path)
	if err != nil {
		if m.StrictLoad && !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
		slog.Warn("table not found or unreadable, creating a new one", "path", m.Path, "error", err)
		rows = nil
	}

	rows = Upsert(rows, batch)
	sort.Slice(rows, func(i, j int) bool {
		return rows[i].Timestamp.Before(rows[j].Timestamp)
	})

	if err := m.Store.Save(rows, m.Path); err != nil {
		return nil, err
	}
	slog.Info("updated table", "path", m.Path, "rows", len(rows))
	return rows, nil
}

// Upsert applies batch to rows in input order, keyed by canonical instant.
// A matched row gets its OHLC overwritten in place and keeps its volume;
// a new key is appended with volume 0. At most one row per instant.
func Upsert(rows []model.Row, batch []model.Bar) []model.Row {
	index := make(map[int64]int, len(rows))
	for i, r := range rows {
		index[r.Timestamp.UnixNano()] = i
	}
	for _, b := range batch {
		key := b.Timestamp.UnixNano()
		if i, ok := index[key]; ok {
			rows[i].Open = b.Open
			rows[i].High = b.High
			rows[i].Low = b.Low
			rows[i].Close = b.Close
			continue
		}
		rows = append(rows, model.Row{Bar: b, Volume: 0})
		index[key] = len(rows) - 1
	}
	return rows
}
