package analyzer

import (
	"math"

	"github.com/sarbotrikbasu/Financial-Tracker/internal/common"
	"github.com/sarbotrikbasu/Financial-Tracker/internal/models"
)

// periodOrder fixes the iteration order of trailing return windows.
var periodOrder = []string{"1_month", "3_months", "6_months", "1_year", "3_years"}

// periodDays maps window names to their length in calendar days.
var periodDays = map[string]int{
	"1_month":  30,
	"3_months": 90,
	"6_months": 180,
	"1_year":   365,
	"3_years":  1095,
}

// CalculateReturns computes valuation and trailing returns from a price
// history. Units are derived from the oldest available price, so the invested
// amount is treated as a lump sum at the start of the series. The series must
// be usable (at least 2 points).
func CalculateReturns(series models.TimeSeries, invested float64) models.ReturnsResult {
	oldest := series.First()
	latest := series.Last()

	units := invested / oldest.Price
	currentValue := units * latest.Price
	absoluteReturn := currentValue - invested

	returnPct := 0.0
	if invested > 0 {
		returnPct = absoluteReturn / invested * 100
	}

	result := models.ReturnsResult{
		CurrentPrice:     common.Round2(latest.Price),
		CurrentValue:     common.Round2(currentValue),
		InvestedAmount:   common.Round2(invested),
		AbsoluteReturn:   common.Round2(absoluteReturn),
		ReturnPercentage: common.Round2(returnPct),
		Units:            common.Round2(units),
		LatestDate:       latest.Date,
		Periods:          make(map[string]models.PeriodReturn),
	}

	for _, name := range periodOrder {
		days := periodDays[name]
		cutoff := latest.Date.AddDate(0, 0, -days)
		past, ok := series.LatestOnOrBefore(cutoff)
		if !ok {
			// Series does not reach back far enough; omit the window.
			continue
		}

		period := models.PeriodReturn{
			ReturnPct: common.Round2((latest.Price - past.Price) / past.Price * 100),
		}
		if days >= 365 {
			years := float64(days) / 365.0
			cagr := common.Round2((math.Pow(latest.Price/past.Price, 1/years) - 1) * 100)
			period.CAGRPct = &cagr
		}
		result.Periods[name] = period
	}

	return result
}
