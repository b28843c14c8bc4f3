package server

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/sarbotrikbasu/Financial-Tracker/internal/models"
)

// handleFundSearch handles GET /api/market/funds/search?q=.
func (s *Server) handleFundSearch(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	query := strings.TrimSpace(r.URL.Query().Get("q"))
	if query == "" {
		WriteError(w, http.StatusBadRequest, "query parameter 'q' is required")
		return
	}

	results, err := s.app.FundClient.SearchFunds(r.Context(), query)
	if err != nil {
		s.logger.Error().Err(err).Str("query", query).Msg("Fund search failed")
		WriteError(w, http.StatusBadGateway, "fund search failed")
		return
	}

	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"status": "ok",
		"data":   results,
	})
}

// handleFundMeta handles GET /api/market/funds/{scheme}.
func (s *Server) handleFundMeta(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	schemeCode := strings.TrimPrefix(r.URL.Path, "/api/market/funds/")
	if schemeCode == "" || strings.Contains(schemeCode, "/") {
		WriteError(w, http.StatusBadRequest, "scheme code is required in path")
		return
	}

	meta, err := s.app.FundClient.GetFundMeta(r.Context(), schemeCode)
	if err != nil {
		WriteError(w, http.StatusNotFound, fmt.Sprintf("scheme '%s' not found", schemeCode))
		return
	}

	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"status": "ok",
		"data":   meta,
	})
}

// handleStockLookup handles GET /api/market/stocks/{symbol}.
func (s *Server) handleStockLookup(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	symbol := strings.TrimPrefix(r.URL.Path, "/api/market/stocks/")
	if symbol == "" || strings.Contains(symbol, "/") {
		WriteError(w, http.StatusBadRequest, "symbol is required in path")
		return
	}

	meta, err := s.app.StockClient.LookupSymbol(r.Context(), symbol)
	if err != nil {
		WriteError(w, http.StatusNotFound, fmt.Sprintf("symbol '%s' not found", symbol))
		return
	}

	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"status": "ok",
		"data":   meta,
	})
}

// handleHistory handles GET /api/market/history/{type}/{id}.
func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request, instrumentType, identifier string) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	var series models.TimeSeries
	var err error
	switch models.ParseInstrumentType(instrumentType) {
	case models.InstrumentTypeMutualFund:
		series, err = s.app.FundClient.GetNAVHistory(r.Context(), identifier)
	default:
		series, err = s.app.StockClient.GetPriceHistory(r.Context(), identifier)
	}
	if err != nil {
		WriteError(w, http.StatusNotFound, fmt.Sprintf("history for '%s' not available", identifier))
		return
	}

	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"status": "ok",
		"data":   series,
	})
}

// handleHistoryChart handles GET /api/market/history/{type}/{id}/chart.
// Responds with a PNG image.
func (s *Server) handleHistoryChart(w http.ResponseWriter, r *http.Request, instrumentType, identifier string) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	png, err := s.app.ReportService.RenderHistoryChart(r.Context(), models.ParseInstrumentType(instrumentType), identifier)
	if err != nil {
		WriteError(w, http.StatusNotFound, fmt.Sprintf("chart for '%s' not available", identifier))
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	w.Write(png)
}
