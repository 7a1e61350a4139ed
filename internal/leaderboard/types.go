// Package leaderboard serves finished runs over HTTP and provides the
// client the game uses to submit and fetch them.
package leaderboard

import (
	"time"

	"github.com/vovakirdan/tui-driller/internal/storage"
)

// Entry is the body of a score submission.
type Entry struct {
	Name  string `json:"name"`
	Depth int    `json:"depth"`
	Stage int    `json:"stage"`
}

// Score is one ranked run as returned by the API.
type Score struct {
	ID        string    `json:"id"`
	Rank      int       `json:"rank"`
	Name      string    `json:"name"`
	Depth     int       `json:"depth"`
	Stage     int       `json:"stage"`
	CreatedAt time.Time `json:"created_at"`
}

// Stats is the per-game summary returned by the stats endpoint.
type Stats = storage.GameStats

// submitted is the response to a successful submission.
type submitted struct {
	ID string `json:"id"`
}

type errorBody struct {
	Error string `json:"error"`
}

const (
	defaultLimit = 10
	maxLimit     = 100
	maxNameLen   = 32
	maxBodyBytes = 4 << 10
)
