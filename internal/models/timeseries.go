// Package models defines data structures for Financial-Tracker
package models

import (
	"sort"
	"time"
)

// PricePoint is one observation in an instrument's price/NAV history.
type PricePoint struct {
	Date  time.Time `json:"date"`
	Price float64   `json:"price"`
}

// TimeSeries is an ordered price/NAV history for one instrument.
// Points are sorted ascending by date; prices are strictly positive.
// A series with fewer than 2 points is unusable for return computation.
// The series is never mutated after construction; derived values such as
// daily percentage changes are computed views.
type TimeSeries struct {
	Points []PricePoint `json:"points"`
}

// NewTimeSeries builds a TimeSeries from provider data. Points with
// non-positive prices or zero dates are dropped; the remainder is sorted
// ascending by date.
func NewTimeSeries(points []PricePoint) TimeSeries {
	valid := make([]PricePoint, 0, len(points))
	for _, p := range points {
		if p.Price <= 0 || p.Date.IsZero() {
			continue
		}
		valid = append(valid, p)
	}
	sort.SliceStable(valid, func(i, j int) bool {
		return valid[i].Date.Before(valid[j].Date)
	})
	return TimeSeries{Points: valid}
}

// Len returns the number of points in the series.
func (ts TimeSeries) Len() int {
	return len(ts.Points)
}

// IsUsable reports whether the series has enough points for any return
// computation (at least 2).
func (ts TimeSeries) IsUsable() bool {
	return len(ts.Points) >= 2
}

// First returns the oldest point. Valid only when Len() > 0.
func (ts TimeSeries) First() PricePoint {
	return ts.Points[0]
}

// Last returns the most recent point. Valid only when Len() > 0.
func (ts TimeSeries) Last() PricePoint {
	return ts.Points[len(ts.Points)-1]
}

// DailyPercentageChange returns the point-to-point percentage changes:
// element i = (price[i+1] - price[i]) / price[i] * 100.
// Returns an empty slice when the series has fewer than 2 points.
func (ts TimeSeries) DailyPercentageChange() []float64 {
	if len(ts.Points) < 2 {
		return nil
	}
	changes := make([]float64, len(ts.Points)-1)
	for i := 0; i < len(ts.Points)-1; i++ {
		prev := ts.Points[i].Price
		changes[i] = (ts.Points[i+1].Price - prev) / prev * 100
	}
	return changes
}

// LatestOnOrBefore returns the most recent point with date <= cutoff,
// or false when no such point exists.
func (ts TimeSeries) LatestOnOrBefore(cutoff time.Time) (PricePoint, bool) {
	for i := len(ts.Points) - 1; i >= 0; i-- {
		if !ts.Points[i].Date.After(cutoff) {
			return ts.Points[i], true
		}
	}
	return PricePoint{}, false
}
