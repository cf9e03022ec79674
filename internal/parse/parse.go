// Package parse converts raw TradingView lines into model.Bar values.
package parse

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"tv-import/internal/model"
	"tv-import/internal/timefmt"
)

// FieldCount is the exact number of comma-separated fields per line:
// timestamp, open, high, low, close.
const FieldCount = 5

// MalformedRecordError reports one rejected input line.
// It is always recoverable: the caller logs it and moves on.
type MalformedRecordError struct {
	Line   string
	Reason string
}

func (e *MalformedRecordError) Error() string {
	return fmt.Sprintf("malformed record %q: %s", e.Line, e.Reason)
}

// Line parses one raw input line into a Bar. The timestamp is canonicalized:
// explicit offsets are kept, naive times are localized to loc.
func Line(raw string, loc *time.Location) (model.Bar, error) {
	line := strings.TrimSpace(raw)
	parts := strings.Split(line, ",")
	if len(parts) != FieldCount {
		return model.Bar{}, &MalformedRecordError{
			Line:   line,
			Reason: fmt.Sprintf("expected %d fields, got %d", FieldCount, len(parts)),
		}
	}

	ts, err := timefmt.Parse(parts[0], loc)
	if err != nil {
		return model.Bar{}, &MalformedRecordError{Line: line, Reason: err.Error()}
	}

	var prices [4]float64
	for i, name := range [...]string{"open", "high", "low", "close"} {
		v, err := strconv.ParseFloat(strings.TrimSpace(parts[i+1]), 64)
		if err != nil || math.IsInf(v, 0) || math.IsNaN(v) {
			return model.Bar{}, &MalformedRecordError{
				Line:   line,
				Reason: fmt.Sprintf("bad %s value %q", name, strings.TrimSpace(parts[i+1])),
			}
		}
		prices[i] = v
	}

	return model.Bar{
		Timestamp: ts,
		Open:      prices[0],
		High:      prices[1],
		Low:       prices[2],
		Close:     prices[3],
	}, nil
}
