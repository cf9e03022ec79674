package store

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"math"
	"os"
	"strconv"
	"time"

	"tv-import/internal/model"
	"tv-import/internal/timefmt"
)

// CSVStore lưu bảng giá dưới dạng CSV (header: ts_event,open,high,low,close,volume).
// This is the reference persisted format.
type CSVStore struct {
	Loc *time.Location
}

func (CSVStore) Extension() string { return "csv" }

func (s CSVStore) Load(path string) ([]model.Row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("read %s: empty file", path)
	}
	if !headerOK(records[0]) {
		return nil, fmt.Errorf("read %s: unexpected header %v", path, records[0])
	}

	rows := make([]model.Row, 0, len(records)-1)
	for i, rec := range records[1:] {
		row, err := parseCSVRow(rec, s.Loc)
		if err != nil {
			return nil, fmt.Errorf("read %s row %d: %w", path, i+1, err)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func (s CSVStore) Save(rows []model.Row, path string) error {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(Header); err != nil {
		return err
	}
	for _, r := range rows {
		if err := w.Write([]string{
			timefmt.Format(r.Timestamp),
			floatStr(r.Open),
			floatStr(r.High),
			floatStr(r.Low),
			floatStr(r.Close),
			floatStr(r.Volume),
		}); err != nil {
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return err
	}
	return writeAtomic(path, buf.Bytes())
}

func headerOK(got []string) bool {
	if len(got) != len(Header) {
		return false
	}
	for i, h := range Header {
		if got[i] != h {
			return false
		}
	}
	return true
}

func parseCSVRow(rec []string, loc *time.Location) (model.Row, error) {
	if len(rec) != len(Header) {
		return model.Row{}, fmt.Errorf("expected %d columns, got %d", len(Header), len(rec))
	}
	ts, err := timefmt.Parse(rec[0], loc)
	if err != nil {
		return model.Row{}, err
	}
	var vals [5]float64
	for i := 1; i < len(rec); i++ {
		v, err := strconv.ParseFloat(rec[i], 64)
		if err != nil || math.IsInf(v, 0) || math.IsNaN(v) {
			return model.Row{}, fmt.Errorf("bad %s value %q", Header[i], rec[i])
		}
		vals[i-1] = v
	}
	return model.Row{
		Bar: model.Bar{
			Timestamp: ts,
			Open:      vals[0],
			High:      vals[1],
			Low:       vals[2],
			Close:     vals[3],
		},
		Volume: vals[4],
	}, nil
}

func floatStr(f float64) string { return strconv.FormatFloat(f, 'f', -1, 64) }
