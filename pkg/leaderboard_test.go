package pkg

import (
	"testing"
	"time"
)

func TestLeaderboardOrdering(t *testing.T) {
	lb := NewLeaderboard()
	lb.Report("gentle-walrus", 4)
	lb.Report("rapid-mole", 12)
	lb.Report("calm-finch", 4)

	board := lb.Top(10)
	if len(board) != 3 {
		t.Fatalf("got %d entries", len(board))
	}
	if board[0].Name != "rapid-mole" {
		t.Errorf("top entry = %s", board[0].Name)
	}
	// Equal scores order by name
	if board[1].Name != "calm-finch" || board[2].Name != "gentle-walrus" {
		t.Errorf("tie order wrong: %v", board)
	}
}

func TestLeaderboardKeepsBest(t *testing.T) {
	lb := NewLeaderboard()
	if !lb.Report("rapid-mole", 8) {
		t.Error("first report should change the board")
	}
	if lb.Report("rapid-mole", 3) {
		t.Error("lower score should not change the board")
	}
	if !lb.Report("rapid-mole", 11) {
		t.Error("higher score should change the board")
	}
	board := lb.Top(1)
	if board[0].Best != 11 {
		t.Errorf("best = %d, want 11", board[0].Best)
	}
}

func TestLeaderboardTopLimit(t *testing.T) {
	lb := NewLeaderboard()
	lb.Report("a", 1)
	lb.Report("b", 2)
	lb.Report("c", 3)
	if got := len(lb.Top(2)); got != 2 {
		t.Errorf("Top(2) returned %d entries", got)
	}
}

func TestLeaderboardSweep(t *testing.T) {
	lb := NewLeaderboard()
	now := time.Unix(1000, 0)
	lb.now = func() time.Time { return now }

	lb.Report("old-otter", 5)
	now = now.Add(2 * time.Hour)
	lb.Report("fresh-crab", 3)

	if n := lb.Sweep(time.Hour); n != 1 {
		t.Errorf("swept %d entries, want 1", n)
	}
	board := lb.Top(10)
	if len(board) != 1 || board[0].Name != "fresh-crab" {
		t.Errorf("board after sweep: %v", board)
	}
}
