package pkg

import (
	"bufio"
	"fmt"
	"log"
	"net"
	"strings"
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

const RulesText = `Pick a number between 1 and 6, then roll the die.
Guess right and the face value is added to your score.
Guess wrong and you lose 2 points.
There is no floor, the score happily goes negative.`

const titleArt = `
 ██████╗ ██╗ ██████╗███████╗████████╗███████╗██████╗ ███╗   ███╗
 ██╔══██╗██║██╔════╝██╔════╝╚══██╔══╝██╔════╝██╔══██╗████╗ ████║
 ██║  ██║██║██║     █████╗     ██║   █████╗  ██████╔╝██╔████╔██║
 ██║  ██║██║██║     ██╔══╝     ██║   ██╔══╝  ██╔══██╗██║╚██╔╝██║
 ██████╔╝██║╚██████╗███████╗   ██║   ███████╗██║  ██║██║ ╚═╝ ██║
 ╚═════╝ ╚═╝ ╚═════╝╚══════╝   ╚═╝   ╚══════╝╚═╝  ╚═╝╚═╝     ╚═╝`

const (
	pageMenu = "menu"
	pagePlay = "play"
)

const (
	outcomeIdle = iota
	outcomeMatch
	outcomeMiss
)

type Client struct {
	Game  *GameState
	Dice  DieSource
	Theme Theme

	App   *tview.Application
	Pages *tview.Pages

	dieView      *tview.TextView
	scoreView    *tview.TextView
	errView      *tview.TextView
	rulesView    *tview.TextView
	menuRules    *tview.TextView
	boardView    *tview.TextView
	faceBtns     [6]*tview.Button
	rulesBtn     *tview.Button
	menuRulesBtn *tview.Button

	focusables     []tview.Primitive
	focused        int
	menuFocusables []tview.Primitive
	menuFocused    int
	outcome        int

	Conn  net.Conn
	Out   chan MessageInterface
	Name  string
	board []ScoreEntry

	mu      sync.Mutex
	offline bool
}

func NewClient() *Client {
	cl := &Client{
		Game:  NewGameState(),
		Dice:  NewDieSource(),
		Theme: DefaultTheme(),
		App:   tview.NewApplication(),
		Out:   make(chan MessageInterface, ConnQueueSize),
	}
	cl.initUI()
	cl.Render()
	return cl
}

func (cl *Client) initUI() {
	// Menu page
	title := tview.NewTextView().
		SetTextAlign(tview.AlignCenter).
		SetText(titleArt)
	title.SetTextColor(cl.Theme.Title)

	playBtn := tview.NewButton(string(ActionPlay)).SetSelectedFunc(func() {
		cl.Game.EnterPlay()
		cl.Render()
	})
	cl.menuRulesBtn = tview.NewButton(ActionRules).SetSelectedFunc(func() {
		cl.Game.ToggleRules()
		cl.Render()
	})
	quitBtn := tview.NewButton(ActionQuit).SetSelectedFunc(func() {
		cl.Quit()
	})
	hint := tview.NewTextView().
		SetTextAlign(tview.AlignCenter).
		SetText("1-6 pick a number · r roll · c reset · ? rules · Esc menu")
	cl.menuRules = tview.NewTextView().SetTextAlign(tview.AlignCenter)

	menuLayout := tview.NewGrid().
		SetRows(-1, 8, 3, 1, 3, 1, 3, 1, 6, -1).
		SetColumns(-1, 20, -1).
		AddItem(title, 1, 0, 1, 3, 0, 0, false).
		AddItem(playBtn, 2, 1, 1, 1, 0, 0, true).
		AddItem(cl.menuRulesBtn, 4, 1, 1, 1, 0, 0, false).
		AddItem(quitBtn, 6, 1, 1, 1, 0, 0, false).
		AddItem(hint, 7, 0, 1, 3, 0, 0, false).
		AddItem(cl.menuRules, 8, 0, 1, 3, 0, 0, false)

	cl.menuFocusables = []tview.Primitive{playBtn, cl.menuRulesBtn, quitBtn}

	// Play page
	cl.dieView = tview.NewTextView().SetTextAlign(tview.AlignCenter)
	cl.scoreView = tview.NewTextView().SetTextAlign(tview.AlignCenter)
	cl.errView = tview.NewTextView().SetTextAlign(tview.AlignCenter)
	cl.errView.SetTextColor(cl.Theme.Err)
	cl.rulesView = tview.NewTextView().SetTextAlign(tview.AlignCenter)
	cl.boardView = tview.NewTextView()
	cl.boardView.SetBorder(true).SetTitle(" Leaderboard ")

	faces := tview.NewGrid().SetColumns(-1, -1, -1, -1, -1, -1).SetRows(3)
	for i := range cl.faceBtns {
		f := Face(i + 1)
		btn := tview.NewButton(fmt.Sprintf("%d", f)).SetSelectedFunc(func() {
			cl.Game.SelectFace(f)
			cl.Render()
		})
		cl.faceBtns[i] = btn
		faces.AddItem(btn, 0, i, 1, 1, 0, 0, i == 0)
	}

	rollBtn := tview.NewButton(ActionRoll).SetSelectedFunc(func() {
		cl.Roll()
	})
	resetBtn := tview.NewButton(ActionReset).SetSelectedFunc(func() {
		cl.Game.ResetScore()
		cl.report()
		cl.Render()
	})
	cl.rulesBtn = tview.NewButton(ActionRules).SetSelectedFunc(func() {
		cl.Game.ToggleRules()
		cl.Render()
	})
	menuBtn := tview.NewButton(ActionMenu).SetSelectedFunc(func() {
		cl.Game.ReturnToMenu()
		cl.Render()
	})

	actions := tview.NewGrid().SetColumns(-1, -1, -1, -1).SetRows(3).
		AddItem(rollBtn, 0, 0, 1, 1, 0, 0, false).
		AddItem(resetBtn, 0, 1, 1, 1, 0, 0, false).
		AddItem(cl.rulesBtn, 0, 2, 1, 1, 0, 0, false).
		AddItem(menuBtn, 0, 3, 1, 1, 0, 0, false)

	playLayout := tview.NewGrid().
		SetRows(1, 5, 1, 1, 1, 3, 1, 3, -1).
		SetColumns(-1, 44, 24, -1).
		AddItem(cl.dieView, 1, 1, 1, 1, 0, 0, false).
		AddItem(cl.scoreView, 3, 1, 1, 1, 0, 0, false).
		AddItem(cl.errView, 4, 1, 1, 1, 0, 0, false).
		AddItem(faces, 5, 1, 1, 1, 0, 0, true).
		AddItem(actions, 7, 1, 1, 1, 0, 0, false).
		AddItem(cl.rulesView, 8, 1, 1, 1, 0, 0, false).
		AddItem(cl.boardView, 1, 2, 8, 1, 0, 0, false)

	cl.Pages = tview.NewPages().
		AddPage(pageMenu, menuLayout, true, true).
		AddPage(pagePlay, playLayout, true, false)

	cl.focusables = []tview.Primitive{
		cl.faceBtns[0], cl.faceBtns[1], cl.faceBtns[2],
		cl.faceBtns[3], cl.faceBtns[4], cl.faceBtns[5],
		rollBtn, resetBtn, cl.rulesBtn, menuBtn,
	}

	cl.App.SetInputCapture(cl.handleKey)
	cl.App.SetRoot(cl.Pages, true).EnableMouse(true)
}

func (cl *Client) handleKey(ev *tcell.EventKey) *tcell.EventKey {
	if cl.Game.View == ViewMenu {
		switch ev.Key() {
		case tcell.KeyEscape:
			cl.Quit()
			return nil
		case tcell.KeyTab:
			cl.menuFocused = (cl.menuFocused + 1) % len(cl.menuFocusables)
			cl.App.SetFocus(cl.menuFocusables[cl.menuFocused])
			return nil
		case tcell.KeyBacktab:
			cl.menuFocused = (cl.menuFocused + len(cl.menuFocusables) - 1) % len(cl.menuFocusables)
			cl.App.SetFocus(cl.menuFocusables[cl.menuFocused])
			return nil
		}
		switch ev.Rune() {
		case 'q':
			cl.Quit()
			return nil
		case '?':
			cl.Game.ToggleRules()
			cl.Render()
			return nil
		}
		return ev
	}

	switch ev.Key() {
	case tcell.KeyEscape:
		cl.Game.ReturnToMenu()
		cl.Render()
		return nil
	case tcell.KeyTab:
		cl.focused = (cl.focused + 1) % len(cl.focusables)
		cl.App.SetFocus(cl.focusables[cl.focused])
		return nil
	case tcell.KeyBacktab:
		cl.focused = (cl.focused + len(cl.focusables) - 1) % len(cl.focusables)
		cl.App.SetFocus(cl.focusables[cl.focused])
		return nil
	}

	switch r := ev.Rune(); {
	case r >= '1' && r <= '6':
		cl.Game.SelectFace(Face(r - '0'))
		cl.Render()
		return nil
	case r == 'r':
		cl.Roll()
		return nil
	case r == 'c':
		cl.Game.ResetScore()
		cl.report()
		cl.Render()
		return nil
	case r == '?':
		cl.Game.ToggleRules()
		cl.Render()
		return nil
	case r == 'q':
		cl.Quit()
		return nil
	}
	return ev
}

// Roll resolves one turn and pushes the new score to the leaderboard.
func (cl *Client) Roll() {
	selected := cl.Game.Selected
	if cl.Game.AttemptRoll(cl.Dice) {
		if cl.Game.DieFace == selected {
			cl.outcome = outcomeMatch
		} else {
			cl.outcome = outcomeMiss
		}
		cl.report()
	}
	cl.Render()
}

// Render redraws the whole visible state from the GameState. Called after
// every mutation, nothing is patched incrementally.
func (cl *Client) Render() {
	switch cl.Game.View {
	case ViewPlay:
		cl.Pages.SwitchToPage(pagePlay)
		if cl.focused < len(cl.focusables) {
			cl.App.SetFocus(cl.focusables[cl.focused])
		}
	default:
		cl.Pages.SwitchToPage(pageMenu)
		if cl.menuFocused < len(cl.menuFocusables) {
			cl.App.SetFocus(cl.menuFocusables[cl.menuFocused])
		}
	}

	cl.dieView.SetText(strings.Join(FaceArt(cl.Game.DieFace), "\n"))
	switch cl.outcome {
	case outcomeMatch:
		cl.dieView.SetTextColor(cl.Theme.DieMatch)
	case outcomeMiss:
		cl.dieView.SetTextColor(cl.Theme.DieMiss)
	default:
		cl.dieView.SetTextColor(cl.Theme.DieIdle)
	}

	who := cl.Name
	if who == "" {
		who = "you"
	}
	cl.scoreView.SetText(fmt.Sprintf("%s · score: %d", who, cl.Game.Score))
	if cl.Game.Score < 0 {
		cl.scoreView.SetTextColor(cl.Theme.ScoreNeg)
	} else {
		cl.scoreView.SetTextColor(cl.Theme.ScorePos)
	}

	cl.errView.SetText(cl.Game.ErrMsg)

	for i, btn := range cl.faceBtns {
		if Face(i+1) == cl.Game.Selected {
			btn.SetBackgroundColor(cl.Theme.Selected)
		} else {
			btn.SetBackgroundColor(cl.Theme.Button)
		}
	}

	if cl.Game.RulesVisible {
		cl.rulesView.SetText(RulesText)
		cl.menuRules.SetText(RulesText)
		cl.rulesBtn.SetLabel(ActionHideRules)
		cl.menuRulesBtn.SetLabel(ActionHideRules)
	} else {
		cl.rulesView.SetText("")
		cl.menuRules.SetText("")
		cl.rulesBtn.SetLabel(ActionRules)
		cl.menuRulesBtn.SetLabel(ActionRules)
	}

	cl.renderBoard()
}

func (cl *Client) renderBoard() {
	if cl.isOffline() {
		cl.boardView.SetText(" offline")
		return
	}
	var b strings.Builder
	for i, e := range cl.board {
		fmt.Fprintf(&b, " %2d. %-14s %4d\n", i+1, e.Name, e.Best)
	}
	cl.boardView.SetText(b.String())
}

// Connect dials the leaderboard server. Failure is not fatal, the game
// plays on offline.
func (cl *Client) Connect(addr string) {
	conn, err := net.Dial("tcp", addr)
	if err != nil {
		log.Printf("Leaderboard unreachable (%v), playing offline", err)
		cl.SetOffline()
		return
	}
	cl.Conn = conn
	go cl.HandleRead()
	go cl.HandleWrite()
}

// SetOffline skips the leaderboard entirely. Safe to call from the
// connection goroutines.
func (cl *Client) SetOffline() {
	cl.mu.Lock()
	cl.offline = true
	cl.mu.Unlock()
}

func (cl *Client) isOffline() bool {
	cl.mu.Lock()
	defer cl.mu.Unlock()
	return cl.offline
}

// report queues the current score for the server, dropping it when the
// queue is full. The game never waits on the network.
func (cl *Client) report() {
	if cl.isOffline() || cl.Conn == nil {
		return
	}
	select {
	case cl.Out <- MessageScore{Score: cl.Game.Score}:
	default:
	}
}

func (cl *Client) HandleWrite() {
	for command := range cl.Out {
		commandData := Encode(command)
		commandTransport := MessageTransport{MsgType: command.Type(), Data: commandData}
		b := Encode(commandTransport)
		b = append(b, '\n')
		if _, err := cl.Conn.Write(b); err != nil {
			log.Printf("Failed to write: %v, playing offline", err)
			cl.SetOffline()
			return
		}
	}
}

func (cl *Client) HandleRead() {
	scanner := bufio.NewScanner(cl.Conn)
	for scanner.Scan() {
		var messageTransport MessageTransport
		Decode(scanner.Bytes(), &messageTransport)
		switch messageTransport.MsgType {
		case TypeMessageConnect:
			var message MessageConnect
			Decode(messageTransport.Data, &message)
			cl.App.QueueUpdateDraw(func() {
				cl.Name = message.Name
				cl.board = message.Board
				cl.Render()
			})

		case TypeMessageLeaderboard:
			var message MessageLeaderboard
			Decode(messageTransport.Data, &message)
			cl.App.QueueUpdateDraw(func() {
				cl.board = message.Board
				cl.renderBoard()
			})

		default:
			log.Printf("Received unknown message type %s", messageTransport.MsgType)
		}
	}
	cl.SetOffline()
}

func (cl *Client) Quit() {
	cl.App.Stop()
	cl.Disconnect()
}

func (cl *Client) Disconnect() {
	if cl.Conn != nil {
		cl.Conn.Close()
	}
}
