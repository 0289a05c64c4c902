// Package entity defines the domain models for the quotes feature.
package entity

import "time"

// Markets whose index series are ingested and served.
const (
	MarketKRX    = "krx"
	MarketKospi  = "kospi"
	MarketKosdaq = "kosdaq"
)

// IndexQuote represents one day of trading data for a single market index
// series (e.g., KOSPI 200 on 2024-01-02).
type IndexQuote struct {
	Market    string    // Market the index belongs to ("krx", "kospi", "kosdaq")
	IndexName string    // Official index series name (e.g., "KOSPI 200")
	TradeDate time.Time // Base date of the quote
	Open      float64   // Opening index value
	High      float64   // Highest index value
	Low       float64   // Lowest index value
	Close     float64   // Closing index value
	Volume    int64     // Accumulated trading volume
	Value     float64   // Accumulated trading value
	FlucRate  float64   // Day-over-day fluctuation rate (%)
}
