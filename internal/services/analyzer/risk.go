package analyzer

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/sarbotrikbasu/Financial-Tracker/internal/common"
	"github.com/sarbotrikbasu/Financial-Tracker/internal/models"
)

// tradingDaysPerYear is the annualisation factor for daily return statistics.
const tradingDaysPerYear = 252

// riskFreeRate is the annual risk-free rate in percent used for the Sharpe
// ratio, aligned with Indian government bond yields.
const riskFreeRate = 6.0

// CalculateRisk computes volatility, drawdown and Sharpe statistics from a
// price history. The series must be usable (at least 2 points).
func CalculateRisk(series models.TimeSeries) models.RiskMetrics {
	maxPrice := series.First().Price
	minPrice := series.First().Price
	for _, p := range series.Points {
		if p.Price > maxPrice {
			maxPrice = p.Price
		}
		if p.Price < minPrice {
			minPrice = p.Price
		}
	}

	metrics := models.RiskMetrics{
		MaxPrice: common.Round2(maxPrice),
		MinPrice: common.Round2(minPrice),
	}

	daily := series.DailyPercentageChange()
	if len(daily) >= 2 {
		metrics.Volatility = common.Round2(stat.StdDev(daily, nil) * math.Sqrt(tradingDaysPerYear))
	}

	// Max drawdown over the cumulative growth path, expressed as a
	// non-positive percentage from the running peak. The first cumulative
	// value is its own peak, so an immediate decline is not a drawdown.
	cumulative := 1.0
	peak := 0.0
	maxDrawdown := 0.0
	for i, change := range daily {
		cumulative *= 1 + change/100
		if i == 0 || cumulative > peak {
			peak = cumulative
		}
		drawdown := (cumulative - peak) / peak * 100
		if drawdown < maxDrawdown {
			maxDrawdown = drawdown
		}
	}
	metrics.MaxDrawdown = common.Round2(maxDrawdown)

	// Sharpe uses the rounded annualised volatility; 0 by convention when
	// the series shows no variation.
	if metrics.Volatility > 0 {
		annualReturn := stat.Mean(daily, nil) * tradingDaysPerYear
		metrics.SharpeRatio = common.Round2((annualReturn - riskFreeRate) / metrics.Volatility)
	}

	return metrics
}
