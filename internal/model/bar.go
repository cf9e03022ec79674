package model

import "time"

// Bar represents one OHLC bar parsed from a pasted TradingView line.
// Dùng chung cho parser, merger và store.
type Bar struct {
	Timestamp time.Time // tz-aware canonical instant (key)
	Open      float64
	High      float64
	Low       float64
	Close     float64
}

// Row is one row of the persisted table: a Bar plus volume.
// Volume defaults to 0 on insert and is never touched by an upsert.
type Row struct {
	Bar
	Volume float64
}
