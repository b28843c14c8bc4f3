// Package interfaces defines service contracts for Financial-Tracker
package interfaces

import (
	"context"

	"github.com/sarbotrikbasu/Financial-Tracker/internal/models"
)

// FundDataClient provides access to mutual fund data (mfapi.in).
type FundDataClient interface {
	// SearchFunds searches schemes by name
	SearchFunds(ctx context.Context, query string) ([]models.FundSearchResult, error)

	// GetFundMeta retrieves scheme metadata
	GetFundMeta(ctx context.Context, schemeCode string) (*models.FundMeta, error)

	// GetNAVHistory retrieves the full NAV history for a scheme.
	// The returned series may be empty when the scheme has no data.
	GetNAVHistory(ctx context.Context, schemeCode string) (models.TimeSeries, error)
}

// StockDataClient provides access to listed stock data (Yahoo Finance).
type StockDataClient interface {
	// LookupSymbol validates a ticker and returns its metadata.
	// Bare symbols are retried with NSE/BSE suffixes.
	LookupSymbol(ctx context.Context, symbol string) (*models.StockMeta, error)

	// GetPriceHistory retrieves the full daily price history for a symbol.
	GetPriceHistory(ctx context.Context, symbol string) (models.TimeSeries, error)
}

// AIClient generates narrative text for reports. Optional collaborator;
// callers must tolerate a nil client.
type AIClient interface {
	// GenerateContent generates content from a prompt
	GenerateContent(ctx context.Context, prompt string) (string, error)
}
