package store

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"tv-import/internal/model"
)

// JSONStore lưu bảng giá dưới dạng JSON (array, indent).
type JSONStore struct {
	Loc *time.Location
}

func (JSONStore) Extension() string { return "json" }

func (s JSONStore) Load(path string) ([]model.Row, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var recs []record
	if err := json.Unmarshal(data, &recs); err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return fromRecords(recs, s.Loc)
}

func (s JSONStore) Save(rows []model.Row, path string) error {
	data, err := json.MarshalIndent(toRecords(rows), "", "  ")
	if err != nil {
		return err
	}
	return writeAtomic(path, append(data, '\n'))
}
