package pkg

import (
	"testing"
)

func TestScoreMessageRoundTrip(t *testing.T) {
	sent := MessageScore{Score: -4}
	transport := MessageTransport{MsgType: sent.Type(), Data: sent.Encode()}

	var gotTransport MessageTransport
	Decode(transport.Encode(), &gotTransport)
	if gotTransport.MsgType != TypeMessageScore {
		t.Fatalf("type = %s", gotTransport.MsgType)
	}

	var got MessageScore
	Decode(gotTransport.Data, &got)
	if got.Score != -4 {
		t.Errorf("score = %d, want -4", got.Score)
	}
}

func TestLeaderboardMessageRoundTrip(t *testing.T) {
	sent := MessageLeaderboard{
		Board: []ScoreEntry{
			{Name: "rapid-mole", Best: 12},
			{Name: "calm-finch", Best: -3},
		},
	}
	transport := MessageTransport{MsgType: sent.Type(), Data: sent.Encode()}

	var gotTransport MessageTransport
	Decode(transport.Encode(), &gotTransport)
	if gotTransport.MsgType != TypeMessageLeaderboard {
		t.Fatalf("type = %s", gotTransport.MsgType)
	}

	var got MessageLeaderboard
	Decode(gotTransport.Data, &got)
	if len(got.Board) != 2 || got.Board[0] != sent.Board[0] || got.Board[1] != sent.Board[1] {
		t.Errorf("board = %v", got.Board)
	}
}

func TestConnectMessageRoundTrip(t *testing.T) {
	sent := MessageConnect{
		Name:  "rapid-mole",
		Board: []ScoreEntry{{Name: "calm-finch", Best: 9}},
	}

	var got MessageConnect
	Decode(sent.Encode(), &got)
	if got.Name != sent.Name {
		t.Errorf("name = %s", got.Name)
	}
	if len(got.Board) != 1 || got.Board[0] != sent.Board[0] {
		t.Errorf("board = %v", got.Board)
	}
}
