package pkg

import (
	"github.com/gdamore/tcell/v2"
)

// Theme colors the UI. Stick to the terminal safe palette so the game
// survives whatever TERM an SSH visitor brings along.
type Theme struct {
	DieIdle   tcell.Color
	DieMatch  tcell.Color
	DieMiss   tcell.Color
	Selected  tcell.Color
	Button    tcell.Color
	ScorePos  tcell.Color
	ScoreNeg  tcell.Color
	Err       tcell.Color
	Title     tcell.Color
}

func DefaultTheme() Theme {
	return Theme{
		DieIdle:  tcell.ColorWhite,
		DieMatch: tcell.ColorGreen,
		DieMiss:  tcell.ColorRed,
		Selected: tcell.ColorDarkCyan,
		Button:   tcell.ColorDarkBlue,
		ScorePos: tcell.ColorGreen,
		ScoreNeg: tcell.ColorRed,
		Err:      tcell.ColorYellow,
		Title:    tcell.ColorAqua,
	}
}
