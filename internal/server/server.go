// Package server exposes the dashboard view models over HTTP. The
// server itself is stateless: the dataset is immutable after startup
// and filter/sort selections travel as query parameters, so every
// request is one synchronous recomputation.
package server

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/echoez0401/lol-dashboard/internal/model"
	"github.com/echoez0401/lol-dashboard/internal/stats"
	"github.com/echoez0401/lol-dashboard/internal/view"
)

// Server serves the dashboard API over an immutable dataset.
type Server struct {
	dataset *model.Dataset
	builder *view.Builder
	clock   stats.Clock
}

// New creates a server over the loaded dataset.
func New(dataset *model.Dataset, assetVersion string, clock stats.Clock) *Server {
	return &Server{
		dataset: dataset,
		builder: view.NewBuilder(dataset.Matches, assetVersion),
		clock:   clock,
	}
}

// Router builds the chi router with middleware and all API routes.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RealIP)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	r.Route("/api", func(r chi.Router) {
		r.Get("/summary", s.handleSummary)
		r.Get("/filters", s.handleFilters)
		r.Get("/champions", s.handleChampions)
		r.Get("/matches", s.handleMatches)
		r.Get("/match/{id}", s.handleMatchDetail)
	})

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, map[string]string{"status": "ok"})
	})

	return r
}

// filterParams reads the filter selectors, defaulting both axes to
// "all". Unrecognized values pass through; the filter engine treats
// them as no filtering.
func filterParams(r *http.Request) stats.FilterState {
	state := stats.FilterState{
		Period: r.URL.Query().Get("period"),
		Mode:   r.URL.Query().Get("mode"),
	}
	if state.Period == "" {
		state.Period = stats.PeriodAll
	}
	if state.Mode == "" {
		state.Mode = stats.ModeAll
	}
	return state
}

// handleSummary returns the summoner, refresh time and match count.
func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, map[string]any{
		"summoner":   s.dataset.Summoner,
		"lastUpdate": s.dataset.LastUpdate,
		"matches":    len(s.dataset.Matches),
	})
}

// handleFilters returns the filter options present in the dataset.
func (s *Server) handleFilters(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, map[string]any{
		"patches": stats.AvailablePatches(s.dataset.Matches),
		"modes":   stats.AvailableModes(s.dataset.Matches),
	})
}

// handleChampions returns the champion table for the current filters,
// optionally sorted by an explicit column and direction.
func (s *Server) handleChampions(w http.ResponseWriter, r *http.Request) {
	filter := filterParams(r)
	championStats := stats.CalculateStats(s.dataset.Matches, filter.Period, filter.Mode, s.clock)

	sortState := stats.DefaultSortState()
	if column := r.URL.Query().Get("sort"); column != "" {
		// A fresh column sorts descending; dir=asc is the same as a
		// second action on the already-active column.
		championStats, sortState = stats.SortTable(championStats, column, sortState)
		if r.URL.Query().Get("dir") == "asc" {
			championStats, sortState = stats.SortTable(championStats, column, sortState)
		}
	}

	respondJSON(w, map[string]any{
		"filter": filter,
		"sort":   sortState,
		"rows":   s.builder.ChampionTableView(championStats),
	})
}

// handleMatches returns the recent-matches cards for the current
// filters.
func (s *Server) handleMatches(w http.ResponseWriter, r *http.Request) {
	filter := filterParams(r)
	filtered := stats.FilterMatches(s.dataset.Matches, filter.Period, filter.Mode, s.clock)

	respondJSON(w, map[string]any{
		"filter": filter,
		"cards":  s.builder.MatchListView(filtered),
	})
}

// handleMatchDetail returns one match by ID from the full collection,
// regardless of the current filters.
func (s *Server) handleMatchDetail(w http.ResponseWriter, r *http.Request) {
	matchID := chi.URLParam(r, "id")

	detail, err := s.builder.MatchDetailView(matchID)
	if err != nil {
		if errors.Is(err, view.ErrMatchNotFound) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(map[string]string{"error": "match not found", "matchId": matchID})
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	respondJSON(w, detail)
}

// respondJSON writes v as a JSON response.
func respondJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("[Server] Failed to encode response: %v", err)
	}
}
