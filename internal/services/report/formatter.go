package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/sarbotrikbasu/Financial-Tracker/internal/common"
	"github.com/sarbotrikbasu/Financial-Tracker/internal/models"
)

const lineWidth = 80

var heavyRule = strings.Repeat("=", lineWidth)
var lightRule = strings.Repeat("-", lineWidth)

// periodLabels maps period keys to their display names, in render order.
var periodLabels = []struct {
	key   string
	label string
}{
	{"1_month", "1 Month"},
	{"3_months", "3 Months"},
	{"6_months", "6 Months"},
	{"1_year", "1 Year"},
	{"3_years", "3 Years"},
}

// FormatClientReport renders a plain-text portfolio report for a client.
// The layout is fixed-width and meant for terminal or email delivery.
func FormatClientReport(user *models.User, analysis *models.PortfolioAnalysis, generatedAt time.Time) string {
	var b strings.Builder

	fmt.Fprintf(&b, "\n%s\n", heavyRule)
	fmt.Fprintf(&b, "                    PORTFOLIO ANALYSIS REPORT\n")
	fmt.Fprintf(&b, "%s\n\n", heavyRule)

	fmt.Fprintf(&b, "CLIENT INFORMATION\n%s\n", lightRule)
	fmt.Fprintf(&b, "Name              : %s\n", user.Name)
	fmt.Fprintf(&b, "Mobile            : %s\n", user.Mobile)
	fmt.Fprintf(&b, "Client Since      : %s\n\n", user.CreatedAt.Format("2006-01-02"))

	fmt.Fprintf(&b, "PORTFOLIO SUMMARY\n%s\n", lightRule)
	fmt.Fprintf(&b, "Total Investments     : %d\n", analysis.Count)
	fmt.Fprintf(&b, "Total Invested Amount : %s\n", common.FormatMoney(analysis.TotalInvested))
	fmt.Fprintf(&b, "Current Portfolio Value: %s\n", common.FormatMoney(analysis.TotalCurrentValue))
	fmt.Fprintf(&b, "Total Returns         : %s\n", common.FormatMoney(analysis.TotalReturn))
	fmt.Fprintf(&b, "Return Percentage     : %s\n\n", common.FormatPct(analysis.ReturnPercentage))

	fmt.Fprintf(&b, "%s\nINDIVIDUAL INVESTMENTS\n%s\n", heavyRule, heavyRule)

	for i, instrument := range analysis.Instruments {
		writeInstrument(&b, i+1, instrument)
	}

	fmt.Fprintf(&b, "\n\n%s\n", heavyRule)
	fmt.Fprintf(&b, "Report Generated: %s\n", generatedAt.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(&b, "%s\n", heavyRule)

	return b.String()
}

func writeInstrument(b *strings.Builder, index int, instrument models.InstrumentAnalysis) {
	fmt.Fprintf(b, "\n%s\nINVESTMENT #%d: %s\n%s\n\n", heavyRule, index, instrument.Name, heavyRule)

	fmt.Fprintf(b, "INSTRUMENT INFORMATION\n%s\n", lightRule)
	fmt.Fprintf(b, "Type                  : %s\n", displayType(instrument.InstrumentType))

	if !instrument.Success {
		fmt.Fprintf(b, "Status                : Analysis unavailable (data could not be retrieved)\n")
		return
	}

	switch {
	case instrument.Metadata.MutualFund != nil:
		meta := instrument.Metadata.MutualFund
		fmt.Fprintf(b, "Scheme Code           : %s\n", orNA(meta.SchemeCode))
		fmt.Fprintf(b, "Fund House            : %s\n", orNA(meta.FundHouse))
		fmt.Fprintf(b, "Scheme Category       : %s\n", orNA(meta.SchemeCategory))
		fmt.Fprintf(b, "Scheme Type           : %s\n", orNA(meta.SchemeType))
	case instrument.Metadata.Stock != nil:
		meta := instrument.Metadata.Stock
		fmt.Fprintf(b, "Symbol                : %s\n", orNA(meta.Symbol))
		fmt.Fprintf(b, "Exchange              : %s\n", orNA(meta.Exchange))
		fmt.Fprintf(b, "Sector                : %s\n", orNA(meta.Sector))
		fmt.Fprintf(b, "Industry              : %s\n", orNA(meta.Industry))
		fmt.Fprintf(b, "Market Cap            : %s\n", common.FormatMarketCap(meta.MarketCap))
	}

	returns := instrument.Returns
	fmt.Fprintf(b, "\nCURRENT HOLDINGS\n%s\n", lightRule)
	fmt.Fprintf(b, "Current NAV/Price     : %s\n", common.FormatMoney(returns.CurrentPrice))
	fmt.Fprintf(b, "Latest Date           : %s\n", returns.LatestDate.Format("2006-01-02"))
	fmt.Fprintf(b, "Units Held (Est.)     : %.2f\n", returns.Units)
	fmt.Fprintf(b, "Invested Amount       : %s\n", common.FormatMoney(returns.InvestedAmount))
	fmt.Fprintf(b, "Current Value (Est.)  : %s\n", common.FormatMoney(returns.CurrentValue))

	fmt.Fprintf(b, "\nPERFORMANCE RETURNS\n%s\n", lightRule)
	fmt.Fprintf(b, "Note: Returns are based on historical instrument performance\n")
	for _, p := range periodLabels {
		period, ok := returns.Periods[p.key]
		if !ok {
			continue
		}
		fmt.Fprintf(b, "%-20s: %8.2f%%", p.label, period.ReturnPct)
		if period.CAGRPct != nil {
			fmt.Fprintf(b, "  (CAGR: %.2f%%)", *period.CAGRPct)
		}
		fmt.Fprintf(b, "\n")
	}

	risk := instrument.Risk
	fmt.Fprintf(b, "\nRISK METRICS\n%s\n", lightRule)
	fmt.Fprintf(b, "Annualized Volatility : %.2f%%\n", risk.Volatility)
	fmt.Fprintf(b, "Sharpe Ratio          : %.2f\n", risk.SharpeRatio)
	fmt.Fprintf(b, "Max Drawdown          : %.2f%%\n", risk.MaxDrawdown)
	fmt.Fprintf(b, "52-Week High          : %s\n", common.FormatMoney(risk.MaxPrice))
	fmt.Fprintf(b, "52-Week Low           : %s\n", common.FormatMoney(risk.MinPrice))

	level, desc := riskAssessment(risk.Volatility)
	fmt.Fprintf(b, "\nRISK ASSESSMENT\n%s\n", lightRule)
	fmt.Fprintf(b, "Risk Level            : %s\n", level)
	fmt.Fprintf(b, "Interpretation        : %s\n", desc)
}

// riskAssessment buckets annualised volatility into a client-facing label.
func riskAssessment(volatility float64) (string, string) {
	switch {
	case volatility < 10:
		return "Low Risk", "This instrument shows low volatility, indicating relatively stable returns."
	case volatility < 20:
		return "Moderate Risk", "This instrument shows moderate volatility with balanced risk-return profile."
	default:
		return "High Risk", "This instrument shows high volatility, indicating significant fluctuations in returns."
	}
}

func displayType(t models.InstrumentType) string {
	if t == models.InstrumentTypeMutualFund {
		return "Mutual Fund"
	}
	return "Stock"
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
