package server

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/sarbotrikbasu/Financial-Tracker/internal/models"
)

// handleInvestmentList handles GET /api/users/{id}/investments.
func (s *Server) handleInvestmentList(w http.ResponseWriter, r *http.Request, userID string) {
	if _, err := s.app.UserStore.GetUser(r.Context(), userID); err != nil {
		WriteError(w, http.StatusNotFound, fmt.Sprintf("user '%s' not found", userID))
		return
	}

	investments, err := s.app.UserStore.ListInvestments(r.Context(), userID)
	if err != nil {
		s.logger.Error().Err(err).Str("user_id", userID).Msg("Failed to list investments")
		WriteError(w, http.StatusInternalServerError, "failed to list investments")
		return
	}

	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"status": "ok",
		"data":   investments,
	})
}

// handleInvestmentAdd handles POST /api/users/{id}/investments.
func (s *Server) handleInvestmentAdd(w http.ResponseWriter, r *http.Request, userID string) {
	var req struct {
		InstrumentType string  `json:"instrument_type"`
		InstrumentName string  `json:"instrument_name"`
		Identifier     string  `json:"identifier"`
		InvestedAmount float64 `json:"invested_amount"`
	}
	if !DecodeJSON(w, r, &req) {
		return
	}

	req.Identifier = strings.TrimSpace(req.Identifier)
	if req.Identifier == "" {
		WriteError(w, http.StatusBadRequest, "identifier is required")
		return
	}
	if req.InvestedAmount <= 0 {
		WriteError(w, http.StatusBadRequest, "invested_amount must be positive")
		return
	}

	if _, err := s.app.UserStore.GetUser(r.Context(), userID); err != nil {
		WriteError(w, http.StatusNotFound, fmt.Sprintf("user '%s' not found", userID))
		return
	}

	inv := &models.Investment{
		UserID:         userID,
		InstrumentType: models.ParseInstrumentType(req.InstrumentType),
		InstrumentName: strings.TrimSpace(req.InstrumentName),
		Identifier:     req.Identifier,
		InvestedAmount: req.InvestedAmount,
	}

	if err := s.app.UserStore.AddInvestment(r.Context(), inv); err != nil {
		s.logger.Error().Err(err).Str("user_id", userID).Msg("Failed to add investment")
		WriteError(w, http.StatusInternalServerError, "failed to add investment")
		return
	}

	WriteJSON(w, http.StatusCreated, map[string]interface{}{
		"status": "ok",
		"data":   inv,
	})
}

// handleInvestmentDelete handles DELETE /api/investments/{id}.
func (s *Server) handleInvestmentDelete(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodDelete) {
		return
	}

	investmentID := strings.TrimPrefix(r.URL.Path, "/api/investments/")
	if investmentID == "" || strings.Contains(investmentID, "/") {
		WriteError(w, http.StatusBadRequest, "investment id is required in path")
		return
	}

	if err := s.app.UserStore.DeleteInvestment(r.Context(), investmentID); err != nil {
		if strings.Contains(err.Error(), "not found") {
			WriteError(w, http.StatusNotFound, err.Error())
			return
		}
		s.logger.Error().Err(err).Str("investment_id", investmentID).Msg("Failed to delete investment")
		WriteError(w, http.StatusInternalServerError, "failed to delete investment")
		return
	}

	WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
