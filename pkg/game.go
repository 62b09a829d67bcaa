package pkg

import (
	"fmt"
)

// Face is a die outcome or a player's prediction, 1-6. NoFace means the
// player has not picked yet.
type Face int

const NoFace Face = 0

// View selects which screen the client shows
type View int

const (
	ViewMenu View = iota
	ViewPlay
)

func (v View) String() string {
	switch v {
	case ViewMenu:
		return "ViewMenu"
	case ViewPlay:
		return "ViewPlay"
	default:
		return "Unknown View"
	}
}

const (
	// MissPenalty is subtracted from the score when the draw does not
	// match the prediction. The score has no floor, going negative is
	// part of the game.
	MissPenalty = 2

	NoSelectionMsg = "Pick a number before you roll!"
)

// GameState is everything one session needs. It lives in memory only and
// is mutated by the methods below, nothing else.
type GameState struct {
	View         View
	Selected     Face // NoFace between rolls
	DieFace      Face // always 1-6, starts at 1
	Score        int
	ErrMsg       string
	RulesVisible bool
}

func NewGameState() *GameState {
	return &GameState{
		View:    ViewMenu,
		DieFace: 1,
	}
}

// SelectFace records the player's prediction and clears any pending error.
func (g *GameState) SelectFace(f Face) error {
	if f < 1 || f > 6 {
		return fmt.Errorf("face out of range: %d", f)
	}
	g.Selected = f
	g.ErrMsg = ""
	return nil
}

// AttemptRoll resolves one turn. Without a selection it only sets ErrMsg,
// no draw happens and the score stays put. With a selection it draws a
// face, scores +face on a match and -MissPenalty on a miss, then forces a
// re-selection. Reports whether a draw happened.
func (g *GameState) AttemptRoll(src DieSource) bool {
	if g.Selected == NoFace {
		g.ErrMsg = NoSelectionMsg
		return false
	}
	g.ErrMsg = ""

	face := src.Draw()
	g.DieFace = face
	if face == g.Selected {
		g.Score += int(face)
	} else {
		g.Score -= MissPenalty
	}
	g.Selected = NoFace
	return true
}

// ResetScore zeroes the score and nothing else.
func (g *GameState) ResetScore() {
	g.Score = 0
}

func (g *GameState) EnterPlay() {
	g.View = ViewPlay
}

func (g *GameState) ReturnToMenu() {
	g.View = ViewMenu
}

func (g *GameState) ToggleRules() {
	g.RulesVisible = !g.RulesVisible
}
