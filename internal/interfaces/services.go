package interfaces

import (
	"context"

	"github.com/sarbotrikbasu/Financial-Tracker/internal/models"
)

// AnalyzerService analyses a single instrument.
type AnalyzerService interface {
	// AnalyzeInstrument resolves the identifier, fetches its history, and
	// computes returns and risk metrics. Provider failures degrade to a
	// result with Success=false; the error return is reserved for context
	// cancellation.
	AnalyzeInstrument(ctx context.Context, holding models.Holding) models.InstrumentAnalysis
}

// PortfolioService aggregates instrument analyses across holdings.
type PortfolioService interface {
	// AnalyzePortfolio analyses every holding and produces portfolio totals.
	// Holdings with blank identifiers are skipped for analysis but still
	// counted in total invested capital.
	AnalyzePortfolio(ctx context.Context, holdings []models.Holding) *models.PortfolioAnalysis

	// AnalyzeUserPortfolio loads a user's investments and analyses them.
	AnalyzeUserPortfolio(ctx context.Context, userID string) (*models.PortfolioAnalysis, error)
}

// ReportService renders portfolio analytics as a client-facing document.
type ReportService interface {
	// GenerateClientReport produces the plain-text portfolio report for a user
	GenerateClientReport(ctx context.Context, userID string) (string, error)

	// RenderHistoryChart renders a PNG price/NAV history chart for an instrument
	RenderHistoryChart(ctx context.Context, instrumentType models.InstrumentType, identifier string) ([]byte, error)
}
