package server

import (
	"fmt"
	"net/http"
)

// handleUserPortfolio handles GET /api/users/{id}/portfolio.
func (s *Server) handleUserPortfolio(w http.ResponseWriter, r *http.Request, userID string) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	if _, err := s.app.UserStore.GetUser(r.Context(), userID); err != nil {
		WriteError(w, http.StatusNotFound, fmt.Sprintf("user '%s' not found", userID))
		return
	}

	analysis, err := s.app.PortfolioService.AnalyzeUserPortfolio(r.Context(), userID)
	if err != nil {
		s.logger.Error().Err(err).Str("user_id", userID).Msg("Portfolio analysis failed")
		WriteError(w, http.StatusInternalServerError, "portfolio analysis failed")
		return
	}

	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"status": "ok",
		"data":   analysis,
	})
}

// handleUserReport handles GET /api/users/{id}/report. The report is plain
// text, not JSON.
func (s *Server) handleUserReport(w http.ResponseWriter, r *http.Request, userID string) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	text, err := s.app.ReportService.GenerateClientReport(r.Context(), userID)
	if err != nil {
		s.logger.Error().Err(err).Str("user_id", userID).Msg("Report generation failed")
		WriteError(w, http.StatusNotFound, fmt.Sprintf("failed to generate report for user '%s'", userID))
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(text))
}
