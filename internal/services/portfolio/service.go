// Package portfolio aggregates per-instrument analyses into portfolio level
// totals for a user's full set of holdings.
package portfolio

import (
	"context"
	"fmt"

	"github.com/sarbotrikbasu/Financial-Tracker/internal/common"
	"github.com/sarbotrikbasu/Financial-Tracker/internal/interfaces"
	"github.com/sarbotrikbasu/Financial-Tracker/internal/models"
)

// Service implements PortfolioService on top of the instrument analyzer and
// the user store.
type Service struct {
	logger    *common.Logger
	analyzer  interfaces.AnalyzerService
	userStore interfaces.UserStore
}

// NewService creates a new portfolio service
func NewService(logger *common.Logger, analyzer interfaces.AnalyzerService, userStore interfaces.UserStore) *Service {
	return &Service{
		logger:    logger,
		analyzer:  analyzer,
		userStore: userStore,
	}
}

// AnalyzePortfolio analyses each holding in order and aggregates the results.
// Total invested capital counts every holding, including ones that could not
// be analysed; the instrument list and current value cover successful
// analyses only, so a provider outage understates value rather than failing
// the whole portfolio.
func (s *Service) AnalyzePortfolio(ctx context.Context, holdings []models.Holding) *models.PortfolioAnalysis {
	analysis := &models.PortfolioAnalysis{
		Instruments: make([]models.InstrumentAnalysis, 0, len(holdings)),
	}

	for _, holding := range holdings {
		analysis.TotalInvested += holding.InvestedAmount

		if holding.Identifier == "" {
			s.logger.Warn().Str("instrument_type", string(holding.InstrumentType)).Msg("Skipping holding with blank identifier")
			continue
		}

		result := s.analyzer.AnalyzeInstrument(ctx, holding)
		if !result.Success {
			s.logger.Warn().Str("identifier", holding.Identifier).Msg("Excluding unresolvable holding from portfolio analysis")
			continue
		}

		analysis.TotalCurrentValue += result.Returns.CurrentValue
		analysis.Instruments = append(analysis.Instruments, result)
	}

	analysis.Count = len(analysis.Instruments)
	analysis.TotalReturn = analysis.TotalCurrentValue - analysis.TotalInvested
	if analysis.TotalInvested > 0 {
		analysis.ReturnPercentage = analysis.TotalReturn / analysis.TotalInvested * 100
	}

	analysis.TotalInvested = common.Round2(analysis.TotalInvested)
	analysis.TotalCurrentValue = common.Round2(analysis.TotalCurrentValue)
	analysis.TotalReturn = common.Round2(analysis.TotalReturn)
	analysis.ReturnPercentage = common.Round2(analysis.ReturnPercentage)

	return analysis
}

// AnalyzeUserPortfolio loads a user's investments and analyses them as a
// portfolio.
func (s *Service) AnalyzeUserPortfolio(ctx context.Context, userID string) (*models.PortfolioAnalysis, error) {
	investments, err := s.userStore.ListInvestments(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load investments for user '%s': %w", userID, err)
	}

	holdings := make([]models.Holding, len(investments))
	for i, inv := range investments {
		holdings[i] = inv.ToHolding()
	}

	s.logger.Debug().Str("user_id", userID).Int("holdings", len(holdings)).Msg("Analyzing user portfolio")
	return s.AnalyzePortfolio(ctx, holdings), nil
}

// Ensure Service implements PortfolioService
var _ interfaces.PortfolioService = (*Service)(nil)
