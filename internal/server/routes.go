package server

import (
	"net/http"
	"strings"

	"github.com/sarbotrikbasu/Financial-Tracker/internal/common"
)

// registerRoutes sets up all REST API routes on the mux.
func (s *Server) registerRoutes(mux *http.ServeMux) {
	// System
	mux.HandleFunc("/api/health", s.handleHealth)
	mux.HandleFunc("/api/version", s.handleVersion)

	// Auth
	mux.HandleFunc("/api/auth/login", s.handleAuthLogin)

	// Users and their resources
	mux.HandleFunc("/api/users/", s.routeUsers)
	mux.HandleFunc("/api/users", s.handleUsers)

	// Investments (delete by ID)
	mux.HandleFunc("/api/investments/", s.handleInvestmentDelete)

	// Market data
	mux.HandleFunc("/api/market/funds/search", s.handleFundSearch)
	mux.HandleFunc("/api/market/funds/", s.handleFundMeta)
	mux.HandleFunc("/api/market/stocks/", s.handleStockLookup)
	mux.HandleFunc("/api/market/history/", s.routeHistory)
}

// routeUsers dispatches /api/users/{id} and /api/users/{id}/{resource}.
func (s *Server) routeUsers(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimPrefix(r.URL.Path, "/api/users/")
	if path == "" {
		s.handleUsers(w, r)
		return
	}

	parts := strings.SplitN(path, "/", 2)
	userID := parts[0]
	subpath := ""
	if len(parts) > 1 {
		subpath = parts[1]
	}

	switch subpath {
	case "":
		switch r.Method {
		case http.MethodGet:
			s.handleUserGet(w, r, userID)
		case http.MethodDelete:
			s.handleUserDelete(w, r, userID)
		default:
			RequireMethod(w, r, http.MethodGet, http.MethodDelete)
		}
	case "investments":
		switch r.Method {
		case http.MethodGet:
			s.handleInvestmentList(w, r, userID)
		case http.MethodPost:
			s.handleInvestmentAdd(w, r, userID)
		default:
			RequireMethod(w, r, http.MethodGet, http.MethodPost)
		}
	case "portfolio":
		s.handleUserPortfolio(w, r, userID)
	case "report":
		s.handleUserReport(w, r, userID)
	default:
		WriteError(w, http.StatusNotFound, "Not found")
	}
}

// routeHistory dispatches /api/market/history/{type}/{id} and
// /api/market/history/{type}/{id}/chart.
func (s *Server) routeHistory(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimPrefix(r.URL.Path, "/api/market/history/")
	parts := strings.SplitN(path, "/", 3)
	if len(parts) < 2 || parts[0] == "" || parts[1] == "" {
		WriteError(w, http.StatusBadRequest, "instrument type and identifier are required in path")
		return
	}

	instrumentType := parts[0]
	identifier := parts[1]

	if len(parts) == 3 {
		if parts[2] != "chart" {
			WriteError(w, http.StatusNotFound, "Not found")
			return
		}
		s.handleHistoryChart(w, r, instrumentType, identifier)
		return
	}

	s.handleHistory(w, r, instrumentType, identifier)
}

// --- System handlers ---

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet, http.MethodHead) {
		return
	}
	WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet, http.MethodHead) {
		return
	}
	WriteJSON(w, http.StatusOK, map[string]string{
		"version": common.GetVersion(),
		"build":   common.GetBuild(),
		"commit":  common.GetGitCommit(),
	})
}
