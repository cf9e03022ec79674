package store

import (
	"bytes"
	"fmt"
	"time"

	"github.com/parquet-go/parquet-go"

	"tv-import/internal/model"
)

// ParquetStore lưu bảng giá dưới dạng Parquet.
type ParquetStore struct {
	Loc *time.Location
}

func (ParquetStore) Extension() string { return "parquet" }

func (s ParquetStore) Load(path string) ([]model.Row, error) {
	recs, err := parquet.ReadFile[record](path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return fromRecords(recs, s.Loc)
}

func (s ParquetStore) Save(rows []model.Row, path string) error {
	var buf bytes.Buffer
	if err := parquet.Write(&buf, toRecords(rows)); err != nil {
		return err
	}
	return writeAtomic(path, buf.Bytes())
}
