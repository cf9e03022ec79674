package timefmt

import (
	"testing"
	"time"
)

func mustZone(t *testing.T) *time.Location {
	t.Helper()
	loc, err := LoadZone(DefaultZone)
	if err != nil {
		t.Fatalf("load zone: %v", err)
	}
	return loc
}

func TestParseNaiveAppliesReferenceZone(t *testing.T) {
	loc := mustZone(t)

	// Winter: EST (-05:00)
	ts, err := Parse("2024-01-02 09:30:00", loc)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if _, off := ts.Zone(); off != -5*3600 {
		t.Errorf("january offset = %d, want -18000", off)
	}

	// Summer: EDT (-04:00)
	ts, err = Parse("2024-07-02 09:30:00", loc)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if _, off := ts.Zone(); off != -4*3600 {
		t.Errorf("july offset = %d, want -14400", off)
	}
}

func TestParseKeepsExplicitOffset(t *testing.T) {
	loc := mustZone(t)
	ts, err := Parse("2024-01-02 09:30:00+01:00", loc)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if _, off := ts.Zone(); off != 3600 {
		t.Errorf("offset = %d, want 3600", off)
	}
	want := time.Date(2024, 1, 2, 8, 30, 0, 0, time.UTC)
	if !ts.Equal(want) {
		t.Errorf("instant = %v, want %v", ts.UTC(), want)
	}
}

func TestParseVariants(t *testing.T) {
	loc := mustZone(t)
	want := time.Date(2024, 1, 2, 9, 30, 0, 0, loc)

	cases := []string{
		"2024-01-02 09:30:00",
		"2024-01-02T09:30:00",
		"2024-01-02 09:30",
		"2024-01-02T09:30:00-05:00",
		"2024-01-02 09:30:00-0500",
		"2024-01-02T14:30:00Z",
	}
	for _, in := range cases {
		ts, err := Parse(in, loc)
		if err != nil {
			t.Errorf("Parse(%q): %v", in, err)
			continue
		}
		if !ts.Equal(want) {
			t.Errorf("Parse(%q) = %v, want instant %v", in, ts, want)
		}
	}
}

func TestParseBareDate(t *testing.T) {
	loc := mustZone(t)
	ts, err := Parse("2024-01-02", loc)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if !ts.Equal(time.Date(2024, 1, 2, 0, 0, 0, 0, loc)) {
		t.Errorf("got %v", ts)
	}
}

func TestParseRejectsGarbage(t *testing.T) {
	loc := mustZone(t)
	for _, in := range []string{"", "yesterday", "2024/01/02 09:30:00", "02-01-2024 09:30:00"} {
		if _, err := Parse(in, loc); err == nil {
			t.Errorf("Parse(%q) did not fail", in)
		}
	}
}

func TestFormatRoundTrip(t *testing.T) {
	loc := mustZone(t)
	cases := []time.Time{
		time.Date(2024, 1, 2, 9, 30, 0, 0, loc),
		time.Date(2024, 7, 2, 15, 45, 0, 0, loc),
		time.Date(2024, 1, 2, 8, 30, 0, 0, time.FixedZone("", 3600)),
		time.Date(2024, 1, 2, 14, 30, 0, 0, time.UTC),
	}
	for _, want := range cases {
		s := Format(want)
		got, err := Parse(s, loc)
		if err != nil {
			t.Errorf("Parse(Format(%v)) = %q: %v", want, s, err)
			continue
		}
		if !got.Equal(want) {
			t.Errorf("round trip %v → %q → %v", want, s, got)
		}
	}
}

func TestFormatUsesColonOffset(t *testing.T) {
	loc := mustZone(t)
	got := Format(time.Date(2024, 1, 2, 9, 30, 0, 0, loc))
	if got != "2024-01-02 09:30:00-05:00" {
		t.Errorf("Format = %q, want %q", got, "2024-01-02 09:30:00-05:00")
	}
}

func TestLoadZoneUnknown(t *testing.T) {
	if _, err := LoadZone("Not/AZone"); err == nil {
		t.Error("LoadZone did not fail for unknown zone")
	}
}
