package model

import "time"

// PriceBar represents a single daily candlestick bar.
type PriceBar struct {
	Date   time.Time
	Open   float64
	High   float64
	Low    float64
	Close  float64
	Volume float64
}

// PriceSeries holds the raw bar data for one instrument.
// Bars are expected in ascending date order with no duplicate dates;
// the analyzer re-sorts defensively before computing anything.
type PriceSeries struct {
	Code     string
	Bars     []PriceBar
	LoadedAt time.Time
}
