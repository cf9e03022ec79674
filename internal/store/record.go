package store

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"tv-import/internal/model"
	"tv-import/internal/timefmt"
)

// Header of the persisted table, in column order.
var Header = []string{"ts_event", "open", "high", "low", "close", "volume"}

// record is the serialized row shape shared by the json and parquet stores.
// ts_event keeps the fixed textual form so every format round-trips the
// same way the csv reference format does.
type record struct {
	TsEvent string  `json:"ts_event" parquet:"ts_event"`
	Open    float64 `json:"open" parquet:"open"`
	High    float64 `json:"high" parquet:"high"`
	Low     float64 `json:"low" parquet:"low"`
	Close   float64 `json:"close" parquet:"close"`
	Volume  float64 `json:"volume" parquet:"volume"`
}

func toRecords(rows []model.Row) []record {
	recs := make([]record, len(rows))
	for i, r := range rows {
		recs[i] = record{
			TsEvent: timefmt.Format(r.Timestamp),
			Open:    r.Open,
			High:    r.High,
			Low:     r.Low,
			Close:   r.Close,
			Volume:  r.Volume,
		}
	}
	return recs
}

func fromRecords(recs []record, loc *time.Location) ([]model.Row, error) {
	rows := make([]model.Row, len(recs))
	for i, rec := range recs {
		ts, err := timefmt.Parse(rec.TsEvent, loc)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		rows[i] = model.Row{
			Bar: model.Bar{
				Timestamp: ts,
				Open:      rec.Open,
				High:      rec.High,
				Low:       rec.Low,
				Close:     rec.Close,
			},
			Volume: rec.Volume,
		}
	}
	return rows, nil
}

// writeAtomic writes data next to path and renames it into place, so a
// concurrent reader never sees a half-written table.
func writeAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp*")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return nil
}
