package models

import "time"

// InstrumentType identifies the kind of instrument a holding refers to.
type InstrumentType string

const (
	InstrumentTypeMutualFund InstrumentType = "mutual_fund"
	InstrumentTypeStock      InstrumentType = "stock"
)

// ParseInstrumentType normalises external representations ("Mutual Fund",
// "stock", ...) to an InstrumentType. Anything unrecognised is treated as a
// stock, matching the upstream data where only two types exist.
func ParseInstrumentType(s string) InstrumentType {
	switch s {
	case string(InstrumentTypeMutualFund), "Mutual Fund", "mutual fund", "MutualFund", "fund":
		return InstrumentTypeMutualFund
	default:
		return InstrumentTypeStock
	}
}

// PeriodReturn is the trailing return for one named window.
// CAGRPct is populated only for windows of one year or longer.
type PeriodReturn struct {
	ReturnPct float64  `json:"return_pct"`
	CAGRPct   *float64 `json:"cagr_pct,omitempty"`
}

// ReturnsResult captures valuation and trailing returns for one instrument.
// Invariants: CurrentValue = Units * CurrentPrice,
// AbsoluteReturn = CurrentValue - InvestedAmount, and ReturnPercentage is 0
// (never NaN) when InvestedAmount is 0.
type ReturnsResult struct {
	CurrentPrice     float64                 `json:"current_price"`
	CurrentValue     float64                 `json:"current_value"`
	InvestedAmount   float64                 `json:"invested_amount"`
	AbsoluteReturn   float64                 `json:"absolute_return"`
	ReturnPercentage float64                 `json:"return_percentage"`
	Units            float64                 `json:"units"`
	LatestDate       time.Time               `json:"latest_date"`
	Periods          map[string]PeriodReturn `json:"periods,omitempty"`
}

// RiskMetrics captures volatility and drawdown statistics for one instrument.
// MaxDrawdown is always <= 0; SharpeRatio is 0 by convention when volatility
// is 0.
type RiskMetrics struct {
	MaxPrice    float64 `json:"max_price"`
	MinPrice    float64 `json:"min_price"`
	Volatility  float64 `json:"volatility"`
	MaxDrawdown float64 `json:"max_drawdown"`
	SharpeRatio float64 `json:"sharpe_ratio"`
}

// FundMeta is the metadata block returned for a mutual fund scheme.
type FundMeta struct {
	SchemeCode     string `json:"scheme_code"`
	SchemeName     string `json:"scheme_name"`
	FundHouse      string `json:"fund_house"`
	SchemeCategory string `json:"scheme_category"`
	SchemeType     string `json:"scheme_type"`
}

// StockMeta is the metadata block returned for a listed stock.
type StockMeta struct {
	Symbol    string  `json:"symbol"`
	Name      string  `json:"name"`
	Exchange  string  `json:"exchange"`
	Sector    string  `json:"sector"`
	Industry  string  `json:"industry"`
	MarketCap float64 `json:"market_cap"`
}

// Metadata is a tagged union over the per-type metadata blocks.
// Exactly one field is non-nil for a successful analysis.
type Metadata struct {
	MutualFund *FundMeta  `json:"mutual_fund,omitempty"`
	Stock      *StockMeta `json:"stock,omitempty"`
}

// InstrumentAnalysis is the full analysis record for one holding.
// Success is false when metadata or the time series could not be obtained;
// in that case Returns and Risk are zero-valued.
type InstrumentAnalysis struct {
	InstrumentType InstrumentType `json:"instrument_type"`
	Name           string         `json:"name"`
	Metadata       Metadata       `json:"metadata"`
	Returns        ReturnsResult  `json:"returns"`
	Risk           RiskMetrics    `json:"risk_metrics"`
	Success        bool           `json:"success"`
}

// PortfolioAnalysis aggregates instrument analyses across a set of holdings.
// TotalInvested sums invested amounts over ALL holdings passed in, including
// ones that failed analysis; TotalCurrentValue sums only successful analyses.
type PortfolioAnalysis struct {
	TotalInvested     float64              `json:"total_invested"`
	TotalCurrentValue float64              `json:"total_current_value"`
	TotalReturn       float64              `json:"total_return"`
	ReturnPercentage  float64              `json:"return_percentage"`
	Count             int                  `json:"num_investments"`
	Instruments       []InstrumentAnalysis `json:"instruments"`
}
