package pkg

import (
	"sort"
	"sync"
	"time"
)

// ScoreEntry is one row of the standings as shown to players.
type ScoreEntry struct {
	Name string
	Best int
}

type boardEntry struct {
	best     int
	lastSeen time.Time
}

// Leaderboard keeps the best score seen per player for the lifetime of the
// server process. Nothing is persisted.
type Leaderboard struct {
	mu      sync.Mutex
	entries map[string]*boardEntry
	now     func() time.Time
}

func NewLeaderboard() *Leaderboard {
	return &Leaderboard{
		entries: make(map[string]*boardEntry),
		now:     time.Now,
	}
}

// Report records a score for name. Reports whether the standings changed.
func (lb *Leaderboard) Report(name string, score int) bool {
	lb.mu.Lock()
	defer lb.mu.Unlock()

	e, ok := lb.entries[name]
	if !ok {
		lb.entries[name] = &boardEntry{best: score, lastSeen: lb.now()}
		return true
	}
	e.lastSeen = lb.now()
	if score > e.best {
		e.best = score
		return true
	}
	return false
}

// Top returns up to n entries, best first. Ties break by name so the order
// is stable across broadcasts.
func (lb *Leaderboard) Top(n int) []ScoreEntry {
	lb.mu.Lock()
	defer lb.mu.Unlock()

	board := make([]ScoreEntry, 0, len(lb.entries))
	for name, e := range lb.entries {
		board = append(board, ScoreEntry{Name: name, Best: e.best})
	}
	sort.Slice(board, func(i, j int) bool {
		if board[i].Best != board[j].Best {
			return board[i].Best > board[j].Best
		}
		return board[i].Name < board[j].Name
	})
	if len(board) > n {
		board = board[:n]
	}
	return board
}

// Sweep drops entries idle for longer than maxIdle and reports how many
// were dropped.
func (lb *Leaderboard) Sweep(maxIdle time.Duration) int {
	lb.mu.Lock()
	defer lb.mu.Unlock()

	cutoff := lb.now().Add(-maxIdle)
	dropped := 0
	for name, e := range lb.entries {
		if e.lastSeen.Before(cutoff) {
			delete(lb.entries, name)
			dropped++
		}
	}
	return dropped
}
