// Package report renders portfolio analytics as client-facing documents:
// a fixed-width plain-text report and PNG history charts.
package report

import (
	"context"
	"fmt"
	"time"

	"github.com/sarbotrikbasu/Financial-Tracker/internal/common"
	"github.com/sarbotrikbasu/Financial-Tracker/internal/interfaces"
	"github.com/sarbotrikbasu/Financial-Tracker/internal/models"
)

// Service implements ReportService. The AI client is optional; when nil the
// report is rendered without an executive summary.
type Service struct {
	logger      *common.Logger
	userStore   interfaces.UserStore
	portfolio   interfaces.PortfolioService
	fundClient  interfaces.FundDataClient
	stockClient interfaces.StockDataClient
	aiClient    interfaces.AIClient
	now         func() time.Time
}

// NewService creates a new report service. aiClient may be nil.
func NewService(
	logger *common.Logger,
	userStore interfaces.UserStore,
	portfolio interfaces.PortfolioService,
	fundClient interfaces.FundDataClient,
	stockClient interfaces.StockDataClient,
	aiClient interfaces.AIClient,
) *Service {
	return &Service{
		logger:      logger,
		userStore:   userStore,
		portfolio:   portfolio,
		fundClient:  fundClient,
		stockClient: stockClient,
		aiClient:    aiClient,
		now:         time.Now,
	}
}

// GenerateClientReport analyses a user's portfolio and renders the full
// plain-text report. When an AI client is configured, an executive summary is
// appended; AI failures degrade to the plain report.
func (s *Service) GenerateClientReport(ctx context.Context, userID string) (string, error) {
	user, err := s.userStore.GetUser(ctx, userID)
	if err != nil {
		return "", fmt.Errorf("failed to load user: %w", err)
	}

	analysis, err := s.portfolio.AnalyzeUserPortfolio(ctx, userID)
	if err != nil {
		return "", fmt.Errorf("failed to analyze portfolio: %w", err)
	}

	text := FormatClientReport(user, analysis, s.now())

	if s.aiClient != nil {
		summary, err := s.aiClient.GenerateContent(ctx, summaryPrompt(user, analysis))
		if err != nil {
			s.logger.Warn().Err(err).Str("user_id", userID).Msg("AI summary generation failed, returning plain report")
		} else if summary != "" {
			text += fmt.Sprintf("\nEXECUTIVE SUMMARY\n%s\n%s\n", lightRule, summary)
		}
	}

	return text, nil
}

// RenderHistoryChart fetches an instrument's full price history and renders
// it as a PNG chart.
func (s *Service) RenderHistoryChart(ctx context.Context, instrumentType models.InstrumentType, identifier string) ([]byte, error) {
	var title string
	var series models.TimeSeries

	switch instrumentType {
	case models.InstrumentTypeMutualFund:
		meta, err := s.fundClient.GetFundMeta(ctx, identifier)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve scheme '%s': %w", identifier, err)
		}
		title = meta.SchemeName
		series, err = s.fundClient.GetNAVHistory(ctx, identifier)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch NAV history for '%s': %w", identifier, err)
		}
	default:
		meta, err := s.stockClient.LookupSymbol(ctx, identifier)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve symbol '%s': %w", identifier, err)
		}
		title = meta.Name
		if title == "" {
			title = meta.Symbol
		}
		series, err = s.stockClient.GetPriceHistory(ctx, meta.Symbol)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch price history for '%s': %w", identifier, err)
		}
	}

	return RenderPriceChart(title, series.Points)
}

// summaryPrompt builds the executive summary prompt from portfolio totals.
// Only aggregate figures are shared with the AI provider.
func summaryPrompt(user *models.User, analysis *models.PortfolioAnalysis) string {
	return fmt.Sprintf(
		"Write a concise executive summary (3-4 sentences, plain text, no markdown) of this investment portfolio for a client named %s. "+
			"Portfolio: %d investments, total invested %s, current value %s, overall return %s. "+
			"Keep a professional advisory tone and do not give buy or sell recommendations.",
		user.Name,
		analysis.Count,
		common.FormatMoney(analysis.TotalInvested),
		common.FormatMoney(analysis.TotalCurrentValue),
		common.FormatPct(analysis.ReturnPercentage),
	)
}

// Ensure Service implements ReportService
var _ interfaces.ReportService = (*Service)(nil)
