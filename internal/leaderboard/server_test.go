package leaderboard

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"

	"github.com/vovakirdan/tui-driller/internal/storage"
)

func newTestServer(t *testing.T, apiKey string) (*Server, *storage.Store) {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	srv := NewServer(store, ServerConfig{
		APIKey:    apiKey,
		KnownGame: func(id string) bool { return id == "driller" || id == "driller_wrap" },
		Logger:    log.New(io.Discard),
	})
	return srv, store
}

func do(t *testing.T, h http.Handler, method, path, body string, headers ...string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestHealthz(t *testing.T) {
	srv, _ := newTestServer(t, "")
	rec := do(t, srv.Handler(), http.MethodGet, "/healthz", "")
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, expected 200", rec.Code)
	}
}

func TestSubmitAndTop(t *testing.T) {
	srv, _ := newTestServer(t, "")
	h := srv.Handler()

	for _, body := range []string{
		`{"name":"ada","depth":40,"stage":2}`,
		`{"name":"bob","depth":90,"stage":3}`,
		`{"name":"cy","depth":10,"stage":1}`,
	} {
		rec := do(t, h, http.MethodPost, "/api/games/driller/scores", body)
		if rec.Code != http.StatusCreated {
			t.Fatalf("POST status = %d, body %s", rec.Code, rec.Body)
		}
		var out submitted
		if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil || out.ID == "" {
			t.Fatalf("POST body = %s, err %v", rec.Body, err)
		}
	}

	rec := do(t, h, http.MethodGet, "/api/games/driller/scores?limit=2", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("GET status = %d", rec.Code)
	}
	var scores []Score
	if err := json.Unmarshal(rec.Body.Bytes(), &scores); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(scores) != 2 {
		t.Fatalf("len(scores) = %d, expected 2", len(scores))
	}
	if scores[0].Name != "bob" || scores[0].Rank != 1 || scores[1].Name != "ada" {
		t.Errorf("scores = %+v", scores)
	}
}

func TestSubmitRejectsBadInput(t *testing.T) {
	srv, _ := newTestServer(t, "")
	h := srv.Handler()

	tests := []struct {
		name string
		path string
		body string
		want int
	}{
		{"malformed", "/api/games/driller/scores", `{"name":`, http.StatusBadRequest},
		{"negative depth", "/api/games/driller/scores", `{"name":"a","depth":-1}`, http.StatusBadRequest},
		{"missing name", "/api/games/driller/scores", `{"depth":3}`, http.StatusBadRequest},
		{"unknown field", "/api/games/driller/scores", `{"name":"a","score":3}`, http.StatusBadRequest},
		{"unknown game", "/api/games/tetris/scores", `{"name":"a","depth":3}`, http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if rec := do(t, h, http.MethodPost, tt.path, tt.body); rec.Code != tt.want {
				t.Errorf("status = %d, expected %d (body %s)", rec.Code, tt.want, rec.Body)
			}
		})
	}
}

func TestTopRejectsBadLimit(t *testing.T) {
	srv, _ := newTestServer(t, "")
	rec := do(t, srv.Handler(), http.MethodGet, "/api/games/driller/scores?limit=zero", "")
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, expected 400", rec.Code)
	}
}

func TestAPIKey(t *testing.T) {
	srv, _ := newTestServer(t, "secret")
	h := srv.Handler()
	body := `{"name":"ada","depth":4}`

	if rec := do(t, h, http.MethodPost, "/api/games/driller/scores", body); rec.Code != http.StatusUnauthorized {
		t.Errorf("no key: status = %d, expected 401", rec.Code)
	}
	if rec := do(t, h, http.MethodPost, "/api/games/driller/scores", body, "X-Api-Key", "wrong"); rec.Code != http.StatusUnauthorized {
		t.Errorf("wrong key: status = %d, expected 401", rec.Code)
	}
	if rec := do(t, h, http.MethodPost, "/api/games/driller/scores", body, "X-Api-Key", "secret"); rec.Code != http.StatusCreated {
		t.Errorf("right key: status = %d, expected 201", rec.Code)
	}
	// Reads stay open
	if rec := do(t, h, http.MethodGet, "/api/games/driller/scores", ""); rec.Code != http.StatusOK {
		t.Errorf("GET status = %d, expected 200", rec.Code)
	}
}

func TestStats(t *testing.T) {
	srv, store := newTestServer(t, "")
	store.SaveScore(storage.ScoreEntry{GameID: "driller", Depth: 12, Stage: 2})
	store.SaveScore(storage.ScoreEntry{GameID: "driller", Depth: 30, Stage: 1})

	rec := do(t, srv.Handler(), http.MethodGet, "/api/games/driller/stats", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var stats Stats
	if err := json.Unmarshal(rec.Body.Bytes(), &stats); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if stats.GamesCount != 2 || stats.HighScore != 30 || stats.BestStage != 2 {
		t.Errorf("stats = %+v", stats)
	}
}

func TestGzipResponse(t *testing.T) {
	srv, _ := newTestServer(t, "")
	rec := do(t, srv.Handler(), http.MethodGet, "/healthz", "", "Accept-Encoding", "gzip")

	if got := rec.Header().Get("Content-Encoding"); got != "gzip" {
		t.Fatalf("Content-Encoding = %q, expected gzip", got)
	}
	zr, err := gzip.NewReader(bytes.NewReader(rec.Body.Bytes()))
	if err != nil {
		t.Fatalf("gzip.NewReader: %v", err)
	}
	body, err := io.ReadAll(zr)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if !strings.Contains(string(body), `"ok"`) {
		t.Errorf("body = %s", body)
	}
}

func TestZstdResponse(t *testing.T) {
	srv, _ := newTestServer(t, "")
	rec := do(t, srv.Handler(), http.MethodGet, "/healthz", "", "Accept-Encoding", "zstd, gzip")

	if got := rec.Header().Get("Content-Encoding"); got != "zstd" {
		t.Fatalf("Content-Encoding = %q, expected zstd", got)
	}
	dec, err := zstd.NewReader(bytes.NewReader(rec.Body.Bytes()))
	if err != nil {
		t.Fatalf("zstd.NewReader: %v", err)
	}
	defer dec.Close()
	body, err := io.ReadAll(dec)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if !strings.Contains(string(body), `"ok"`) {
		t.Errorf("body = %s", body)
	}
}

func TestAcceptsEncoding(t *testing.T) {
	tests := []struct {
		header string
		coding string
		want   bool
	}{
		{"", "gzip", false},
		{"gzip", "gzip", true},
		{"GZIP", "gzip", true},
		{"deflate, gzip;q=0.5", "gzip", true},
		{"zstd;q=0", "zstd", false},
		{"zstd; q=0.0, gzip", "zstd", false},
		{"zstd;q=bogus", "zstd", false},
		{"*", "zstd", true},
		{"*;q=0", "gzip", false},
		{"zstd;q=0, *", "zstd", false},
		{"gzip, *;q=0", "gzip", true},
		{"br", "zstd", false},
	}
	for _, tt := range tests {
		if got := accepts(tt.header, tt.coding); got != tt.want {
			t.Errorf("accepts(%q, %q) = %v, expected %v", tt.header, tt.coding, got, tt.want)
		}
	}
}

func TestRefusedZstdFallsBackToGzip(t *testing.T) {
	srv, _ := newTestServer(t, "")
	rec := do(t, srv.Handler(), http.MethodGet, "/healthz", "", "Accept-Encoding", "zstd;q=0, gzip")

	if got := rec.Header().Get("Content-Encoding"); got != "gzip" {
		t.Fatalf("Content-Encoding = %q, expected gzip", got)
	}
}

func TestAllCodingsRefused(t *testing.T) {
	srv, _ := newTestServer(t, "")
	rec := do(t, srv.Handler(), http.MethodGet, "/healthz", "", "Accept-Encoding", "zstd;q=0, gzip;q=0")

	if got := rec.Header().Get("Content-Encoding"); got != "" {
		t.Fatalf("Content-Encoding = %q, expected none", got)
	}
	if !strings.Contains(rec.Body.String(), `"ok"`) {
		t.Errorf("body = %s", rec.Body.String())
	}
}
