// Package leaderboard serves the high score table over HTTP as JSON.
package leaderboard

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/mux"

	"github.com/vovakirdan/carrot-rush/internal/registry"
	"github.com/vovakirdan/carrot-rush/internal/storage"
)

// MaxLimit caps the number of scores a single request can ask for.
const MaxLimit = 100

// Store is the part of storage the leaderboard reads.
type Store interface {
	TopScores(gameID string, limit int) ([]storage.Run, error)
	Run(id string) (storage.Run, error)
	Replay(runID string) ([]byte, error)
	GetAllGamesStats() (map[string]*storage.GameStats, error)
}

// GameEntry describes one game in the /api/games listing.
type GameEntry struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Summary   string `json:"summary"`
	Plays     int    `json:"plays"`
	Victories int    `json:"victories"`
	HighScore int    `json:"high_score"`
}

// RunEntry is the JSON form of a stored run.
type RunEntry struct {
	ID         string    `json:"id"`
	Game       string    `json:"game"`
	Score      int       `json:"score"`
	Victory    bool      `json:"victory"`
	Ticks      int       `json:"ticks"`
	Difficulty string    `json:"difficulty,omitempty"`
	HasReplay  bool      `json:"has_replay"`
	CreatedAt  time.Time `json:"created_at"`
}

func toEntry(r storage.Run) RunEntry {
	return RunEntry{
		ID:         r.ID,
		Game:       r.GameID,
		Score:      r.Score,
		Victory:    r.Victory,
		Ticks:      r.Ticks,
		Difficulty: r.Difficulty,
		HasReplay:  r.HasReplay,
		CreatedAt:  r.CreatedAt,
	}
}

// Server is the leaderboard HTTP server.
type Server struct {
	store  Store
	logger *log.Logger
	server *http.Server
}

// NewServer creates a leaderboard listening on addr.
func NewServer(addr string, store Store, logger *log.Logger) *Server {
	s := &Server{store: store, logger: logger}
	s.server = &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	return s
}

// Handler returns the router with every endpoint mounted.
func (s *Server) Handler() http.Handler {
	r := mux.NewRouter()
	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/games", s.handleGames).Methods(http.MethodGet)
	api.HandleFunc("/scores/{game}", s.handleScores).Methods(http.MethodGet)
	api.HandleFunc("/runs/{id}", s.handleRun).Methods(http.MethodGet)
	api.HandleFunc("/runs/{id}/replay", s.handleReplay).Methods(http.MethodGet)
	r.Use(s.logRequests)
	return r
}

// Start serves until Shutdown is called.
func (s *Server) Start() error {
	s.logger.Info("Leaderboard listening", "addr", s.server.Addr)
	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown stops the server gracefully.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.logger.Debug("HTTP request", "method", r.Method, "path", r.URL.Path, "took", time.Since(start))
	})
}

func (s *Server) handleGames(w http.ResponseWriter, _ *http.Request) {
	stats, err := s.store.GetAllGamesStats()
	if err != nil {
		s.fail(w, "failed to load stats", err)
		return
	}

	games := registry.List()
	entries := make([]GameEntry, 0, len(games))
	for _, g := range games {
		e := GameEntry{ID: g.ID, Title: g.Title, Summary: g.Summary}
		if st, ok := stats[g.ID]; ok {
			e.Plays = st.GamesCount
			e.Victories = st.Victories
			e.HighScore = st.HighScore
		}
		entries = append(entries, e)
	}
	s.writeJSON(w, entries)
}

func (s *Server) handleScores(w http.ResponseWriter, r *http.Request) {
	game := mux.Vars(r)["game"]
	if !registry.Exists(game) {
		http.Error(w, "unknown game", http.StatusNotFound)
		return
	}

	limit := 10
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			http.Error(w, "limit must be a positive integer", http.StatusBadRequest)
			return
		}
		limit = min(n, MaxLimit)
	}

	runs, err := s.store.TopScores(game, limit)
	if err != nil {
		s.fail(w, "failed to load scores", err)
		return
	}

	entries := make([]RunEntry, 0, len(runs))
	for _, run := range runs {
		entries = append(entries, toEntry(run))
	}
	s.writeJSON(w, entries)
}

func (s *Server) handleRun(w http.ResponseWriter, r *http.Request) {
	run, err := s.store.Run(mux.Vars(r)["id"])
	if errors.Is(err, storage.ErrRunNotFound) {
		http.Error(w, "run not found", http.StatusNotFound)
		return
	}
	if err != nil {
		s.fail(w, "failed to load run", err)
		return
	}
	s.writeJSON(w, toEntry(run))
}

func (s *Server) handleReplay(w http.ResponseWriter, r *http.Request) {
	data, err := s.store.Replay(mux.Vars(r)["id"])
	if errors.Is(err, storage.ErrRunNotFound) {
		http.Error(w, "replay not found", http.StatusNotFound)
		return
	}
	if err != nil {
		s.fail(w, "failed to load replay", err)
		return
	}
	w.Header().Set("Content-Type", "application/zstd")
	if _, err := w.Write(data); err != nil {
		s.logger.Warn("Failed to write replay", "error", err)
	}
}

func (s *Server) writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Warn("Failed to encode response", "error", err)
	}
}

func (s *Server) fail(w http.ResponseWriter, msg string, err error) {
	s.logger.Error(msg, "error", err)
	http.Error(w, msg, http.StatusInternalServerError)
}
