// Package analyzer computes returns and risk metrics for individual
// instruments from their full price history.
package analyzer

import (
	"context"

	"github.com/sarbotrikbasu/Financial-Tracker/internal/common"
	"github.com/sarbotrikbasu/Financial-Tracker/internal/interfaces"
	"github.com/sarbotrikbasu/Financial-Tracker/internal/models"
)

// Service implements AnalyzerService over the fund and stock data clients.
type Service struct {
	logger      *common.Logger
	fundClient  interfaces.FundDataClient
	stockClient interfaces.StockDataClient
}

// NewService creates a new analyzer service
func NewService(logger *common.Logger, fundClient interfaces.FundDataClient, stockClient interfaces.StockDataClient) *Service {
	return &Service{
		logger:      logger,
		fundClient:  fundClient,
		stockClient: stockClient,
	}
}

// AnalyzeInstrument resolves a holding's identifier, fetches its price
// history, and computes returns and risk metrics. Provider failures and
// unusable histories degrade to Success=false rather than returning an error,
// so one bad instrument never aborts a portfolio run.
func (s *Service) AnalyzeInstrument(ctx context.Context, holding models.Holding) models.InstrumentAnalysis {
	switch holding.InstrumentType {
	case models.InstrumentTypeMutualFund:
		return s.analyzeMutualFund(ctx, holding)
	default:
		return s.analyzeStock(ctx, holding)
	}
}

func (s *Service) analyzeMutualFund(ctx context.Context, holding models.Holding) models.InstrumentAnalysis {
	failed := models.InstrumentAnalysis{
		InstrumentType: models.InstrumentTypeMutualFund,
		Name:           holding.Identifier,
	}

	meta, err := s.fundClient.GetFundMeta(ctx, holding.Identifier)
	if err != nil {
		s.logger.Warn().Err(err).Str("scheme_code", holding.Identifier).Msg("Failed to fetch fund metadata")
		return failed
	}

	series, err := s.fundClient.GetNAVHistory(ctx, holding.Identifier)
	if err != nil {
		s.logger.Warn().Err(err).Str("scheme_code", holding.Identifier).Msg("Failed to fetch NAV history")
		return failed
	}
	if !series.IsUsable() {
		s.logger.Warn().Str("scheme_code", holding.Identifier).Int("points", series.Len()).Msg("NAV history too short for analysis")
		return failed
	}

	return models.InstrumentAnalysis{
		InstrumentType: models.InstrumentTypeMutualFund,
		Name:           meta.SchemeName,
		Metadata:       models.Metadata{MutualFund: meta},
		Returns:        CalculateReturns(series, holding.InvestedAmount),
		Risk:           CalculateRisk(series),
		Success:        true,
	}
}

func (s *Service) analyzeStock(ctx context.Context, holding models.Holding) models.InstrumentAnalysis {
	failed := models.InstrumentAnalysis{
		InstrumentType: models.InstrumentTypeStock,
		Name:           holding.Identifier,
	}

	meta, err := s.stockClient.LookupSymbol(ctx, holding.Identifier)
	if err != nil {
		s.logger.Warn().Err(err).Str("symbol", holding.Identifier).Msg("Failed to resolve stock symbol")
		return failed
	}

	series, err := s.stockClient.GetPriceHistory(ctx, meta.Symbol)
	if err != nil {
		s.logger.Warn().Err(err).Str("symbol", meta.Symbol).Msg("Failed to fetch price history")
		return failed
	}
	if !series.IsUsable() {
		s.logger.Warn().Str("symbol", meta.Symbol).Int("points", series.Len()).Msg("Price history too short for analysis")
		return failed
	}

	name := meta.Name
	if name == "" {
		name = meta.Symbol
	}

	return models.InstrumentAnalysis{
		InstrumentType: models.InstrumentTypeStock,
		Name:           name,
		Metadata:       models.Metadata{Stock: meta},
		Returns:        CalculateReturns(series, holding.InvestedAmount),
		Risk:           CalculateRisk(series),
		Success:        true,
	}
}

// Ensure Service implements AnalyzerService
var _ interfaces.AnalyzerService = (*Service)(nil)
