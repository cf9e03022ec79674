// Package timefmt is the single place timestamps are parsed and rendered.
// Naive inputs are localized to the reference zone here and nowhere else, so
// keys loaded from the table and keys parsed from fresh input stay comparable.
package timefmt

import (
	"fmt"
	"strings"
	"time"
)

// DefaultZone is the reference zone applied to timestamps without an offset.
const DefaultZone = "America/New_York"

// Table render format: colon-separated UTC offset, never compact ±HHMM.
const outLayout = "2006-01-02 15:04:05-07:00"

// Layouts carrying explicit offset/zone info are kept as parsed.
var awareLayouts = []string{
	"2006-01-02 15:04:05Z07:00",
	"2006-01-02 15:04:05-0700",
	"2006-01-02 15:04Z07:00",
	"2006-01-02 15:04-0700",
}

// Naive layouts are interpreted as wall-clock time in the reference zone.
var naiveLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

// Parse converts one timestamp string to a tz-aware canonical instant.
// A literal 'T' date/time separator is normalized to a space first.
func Parse(s string, loc *time.Location) (time.Time, error) {
	s = strings.Replace(strings.TrimSpace(s), "T", " ", 1)
	for _, layout := range awareLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	for _, layout := range naiveLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp %q", s)
}

// Format renders t in the fixed table form YYYY-MM-DD HH:MM:SS±HH:MM.
// Parse(Format(t)) is always the identical instant.
func Format(t time.Time) string {
	return t.Format(outLayout)
}

// LoadZone resolves a named reference zone (must carry DST history,
// not a fixed offset).
func LoadZone(name string) (*time.Location, error) {
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("load timezone %q: %w", name, err)
	}
	return loc, nil
}
