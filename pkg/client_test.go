package pkg

import (
	"strings"
	"sync"
	"testing"

	"github.com/gdamore/tcell/v2"
)

func key(k tcell.Key, r rune) *tcell.EventKey {
	return tcell.NewEventKey(k, r, tcell.ModNone)
}

func TestClientRoll(t *testing.T) {
	cl := NewClient()
	cl.SetOffline()
	cl.Game.EnterPlay()

	cl.Dice = fixedDie(4)
	cl.Game.SelectFace(4)
	cl.Roll()
	if cl.Game.Score != 4 {
		t.Errorf("score = %d, want 4", cl.Game.Score)
	}
	if cl.outcome != outcomeMatch {
		t.Errorf("outcome = %d, want match", cl.outcome)
	}

	// Rolling again without re-selecting is rejected
	cl.Roll()
	if cl.Game.Score != 4 {
		t.Errorf("score changed on rejected roll: %d", cl.Game.Score)
	}
	if got := cl.errView.GetText(true); !strings.Contains(got, NoSelectionMsg) {
		t.Errorf("error line = %q", got)
	}
}

func TestMenuFocusCycling(t *testing.T) {
	cl := NewClient()
	cl.SetOffline()

	if cl.handleKey(key(tcell.KeyTab, 0)) != nil {
		t.Error("Tab not consumed on the menu")
	}
	if cl.menuFocused != 1 {
		t.Errorf("menuFocused = %d, want 1", cl.menuFocused)
	}
	// A full lap lands back on Play
	for i := 0; i < len(cl.menuFocusables)-1; i++ {
		cl.handleKey(key(tcell.KeyTab, 0))
	}
	if cl.menuFocused != 0 {
		t.Errorf("menuFocused = %d after full cycle, want 0", cl.menuFocused)
	}
	cl.handleKey(key(tcell.KeyBacktab, 0))
	if cl.menuFocused != len(cl.menuFocusables)-1 {
		t.Errorf("menuFocused = %d after Backtab, want %d", cl.menuFocused, len(cl.menuFocusables)-1)
	}
}

func TestMenuRulesToggle(t *testing.T) {
	cl := NewClient()
	cl.SetOffline()

	cl.handleKey(key(tcell.KeyRune, '?'))
	if got := cl.menuRules.GetText(true); !strings.Contains(got, "roll the die") {
		t.Errorf("menu rules = %q", got)
	}
	cl.handleKey(key(tcell.KeyRune, '?'))
	if got := cl.menuRules.GetText(true); strings.TrimSpace(got) != "" {
		t.Errorf("menu rules still shown: %q", got)
	}
}

func TestSetOfflineConcurrent(t *testing.T) {
	cl := NewClient()

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		cl.SetOffline()
	}()
	for i := 0; i < 100; i++ {
		cl.isOffline()
	}
	wg.Wait()
	if !cl.isOffline() {
		t.Error("offline flag lost")
	}
}

func TestClientRenderBoardOffline(t *testing.T) {
	cl := NewClient()
	cl.SetOffline()
	cl.Render()
	if got := cl.boardView.GetText(true); !strings.Contains(got, "offline") {
		t.Errorf("board = %q", got)
	}
}
