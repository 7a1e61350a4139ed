package leaderboard

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/vovakirdan/tui-driller/internal/storage"
)

// Store is the persistence the server needs.
type Store interface {
	SaveScore(e storage.ScoreEntry) (string, error)
	TopScores(gameID string, limit int) ([]storage.ScoreEntry, error)
	GetGameStats(gameID string) (*storage.GameStats, error)
}

// ServerConfig holds configuration for the leaderboard server.
type ServerConfig struct {
	// Address is the host:port to listen on (e.g., ":8088").
	Address string

	// APIKey, when set, is required in X-Api-Key for submissions.
	APIKey string

	// KnownGame reports whether a game id may be used. Nil accepts any id.
	KnownGame func(id string) bool

	// Logger receives access and lifecycle logs. Nil logs to stderr.
	Logger *log.Logger
}

// DefaultServerConfig returns a config with sensible defaults.
func DefaultServerConfig() ServerConfig {
	return ServerConfig{Address: ":8088"}
}

// Server is the leaderboard HTTP service.
type Server struct {
	cfg    ServerConfig
	store  Store
	logger *log.Logger
	router chi.Router
	server *http.Server
}

// NewServer builds the router and the http.Server.
func NewServer(store Store, cfg ServerConfig) *Server {
	logger := cfg.Logger
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "leaderboard",
		})
	}

	s := &Server{cfg: cfg, store: store, logger: logger}
	s.router = s.routes()
	s.server = &http.Server{
		Addr:         cfg.Address,
		Handler:      s.router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}
	return s
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(accessLog(s.logger))
	r.Use(middleware.Recoverer)
	r.Use(compression)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/api/games/{game}", func(r chi.Router) {
		r.Use(s.gameContext)
		r.Get("/scores", s.handleTop)
		r.With(requireAPIKey(s.cfg.APIKey)).Post("/scores", s.handleSubmit)
		r.Get("/stats", s.handleStats)
	})
	return r
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler { return s.router }

// Addr returns the configured listen address.
func (s *Server) Addr() string { return s.cfg.Address }

// ListenAndServe serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	s.logger.Info("starting leaderboard server", "address", s.cfg.Address)

	errCh := make(chan error, 1)
	go func() {
		errCh <- s.server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return s.server.Shutdown(shutdownCtx)
}

type gameKey struct{}

func (s *Server) gameContext(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		game := chi.URLParam(r, "game")
		if s.cfg.KnownGame != nil && !s.cfg.KnownGame(game) {
			writeError(w, http.StatusNotFound, "unknown game "+strconv.Quote(game))
			return
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), gameKey{}, game)))
	})
}

func gameFrom(r *http.Request) string {
	game, _ := r.Context().Value(gameKey{}).(string)
	return game
}

func (s *Server) handleTop(w http.ResponseWriter, r *http.Request) {
	limit := defaultLimit
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			writeError(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = min(n, maxLimit)
	}

	entries, err := s.store.TopScores(gameFrom(r), limit)
	if err != nil {
		s.logger.Error("cannot load scores", "game", gameFrom(r), "error", err)
		writeError(w, http.StatusInternalServerError, "cannot load scores")
		return
	}

	scores := make([]Score, len(entries))
	for i, e := range entries {
		scores[i] = Score{
			ID:        e.ID,
			Rank:      i + 1,
			Name:      e.Player,
			Depth:     e.Depth,
			Stage:     e.Stage,
			CreatedAt: e.CreatedAt,
		}
	}
	writeJSON(w, http.StatusOK, scores)
}

func (s *Server) handleSubmit(w http.ResponseWriter, r *http.Request) {
	var e Entry
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&e); err != nil {
		writeError(w, http.StatusBadRequest, "invalid body: "+err.Error())
		return
	}
	if err := e.validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	id, err := s.store.SaveScore(storage.ScoreEntry{
		GameID: gameFrom(r),
		Player: strings.TrimSpace(e.Name),
		Depth:  e.Depth,
		Stage:  max(e.Stage, 1),
	})
	if err != nil {
		s.logger.Error("cannot save score", "game", gameFrom(r), "error", err)
		writeError(w, http.StatusInternalServerError, "cannot save score")
		return
	}
	writeJSON(w, http.StatusCreated, submitted{ID: id})
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	stats, err := s.store.GetGameStats(gameFrom(r))
	if err != nil {
		s.logger.Error("cannot load stats", "game", gameFrom(r), "error", err)
		writeError(w, http.StatusInternalServerError, "cannot load stats")
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

func (e Entry) validate() error {
	name := strings.TrimSpace(e.Name)
	switch {
	case name == "":
		return errors.New("name is required")
	case len(name) > maxNameLen:
		return errors.New("name is too long")
	case e.Depth < 0:
		return errors.New("depth must not be negative")
	case e.Stage < 0:
		return errors.New("stage must not be negative")
	}
	return nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorBody{Error: msg})
}
