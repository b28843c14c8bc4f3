package models

import (
	"math"
	"testing"
	"time"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestNewTimeSeriesSortsAndFilters(t *testing.T) {
	ts := NewTimeSeries([]PricePoint{
		{Date: day(2023, 3, 1), Price: 110},
		{Date: day(2023, 1, 1), Price: 100},
		{Date: day(2023, 2, 1), Price: 0},     // non-positive price dropped
		{Date: time.Time{}, Price: 105},       // zero date dropped
		{Date: day(2023, 2, 15), Price: -5.0}, // negative price dropped
	})

	if ts.Len() != 2 {
		t.Fatalf("expected 2 points, got %d", ts.Len())
	}
	if !ts.First().Date.Equal(day(2023, 1, 1)) {
		t.Errorf("expected first point 2023-01-01, got %v", ts.First().Date)
	}
	if !ts.Last().Date.Equal(day(2023, 3, 1)) {
		t.Errorf("expected last point 2023-03-01, got %v", ts.Last().Date)
	}
}

func TestIsUsable(t *testing.T) {
	empty := NewTimeSeries(nil)
	if empty.IsUsable() {
		t.Error("empty series must not be usable")
	}

	single := NewTimeSeries([]PricePoint{{Date: day(2023, 1, 1), Price: 100}})
	if single.IsUsable() {
		t.Error("single-point series must not be usable")
	}

	pair := NewTimeSeries([]PricePoint{
		{Date: day(2023, 1, 1), Price: 100},
		{Date: day(2023, 1, 2), Price: 101},
	})
	if !pair.IsUsable() {
		t.Error("two-point series must be usable")
	}
}

func TestDailyPercentageChange(t *testing.T) {
	ts := NewTimeSeries([]PricePoint{
		{Date: day(2023, 1, 1), Price: 100},
		{Date: day(2023, 1, 2), Price: 110},
		{Date: day(2023, 1, 3), Price: 99},
	})

	changes := ts.DailyPercentageChange()
	if len(changes) != 2 {
		t.Fatalf("expected 2 changes, got %d", len(changes))
	}
	if math.Abs(changes[0]-10.0) > 1e-9 {
		t.Errorf("expected +10%%, got %v", changes[0])
	}
	if math.Abs(changes[1]-(-10.0)) > 1e-9 {
		t.Errorf("expected -10%%, got %v", changes[1])
	}

	short := NewTimeSeries([]PricePoint{{Date: day(2023, 1, 1), Price: 100}})
	if got := short.DailyPercentageChange(); got != nil {
		t.Errorf("expected nil for short series, got %v", got)
	}
}

func TestLatestOnOrBefore(t *testing.T) {
	ts := NewTimeSeries([]PricePoint{
		{Date: day(2023, 1, 1), Price: 100},
		{Date: day(2023, 2, 1), Price: 105},
		{Date: day(2023, 3, 1), Price: 110},
	})

	// Exact date counts
	p, ok := ts.LatestOnOrBefore(day(2023, 2, 1))
	if !ok || p.Price != 105 {
		t.Errorf("expected point at 105, got %v ok=%v", p, ok)
	}

	// Between points picks the earlier one
	p, ok = ts.LatestOnOrBefore(day(2023, 2, 15))
	if !ok || p.Price != 105 {
		t.Errorf("expected point at 105, got %v ok=%v", p, ok)
	}

	// Before the series start
	_, ok = ts.LatestOnOrBefore(day(2022, 12, 31))
	if ok {
		t.Error("expected no point before the series start")
	}
}

func TestParseInstrumentType(t *testing.T) {
	cases := []struct {
		in   string
		want InstrumentType
	}{
		{"mutual_fund", InstrumentTypeMutualFund},
		{"Mutual Fund", InstrumentTypeMutualFund},
		{"stock", InstrumentTypeStock},
		{"equity", InstrumentTypeStock}, // unknown defaults to stock
	}
	for _, tc := range cases {
		if got := ParseInstrumentType(tc.in); got != tc.want {
			t.Errorf("ParseInstrumentType(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
