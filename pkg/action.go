package pkg

type Action string

const (
	ActionPlay      Action = "Play"
	ActionRules            = "Rules"
	ActionHideRules        = "Hide Rules"
	ActionQuit             = "Quit"
	ActionRoll             = "Roll!"
	ActionReset            = "Reset Score"
	ActionMenu             = "Menu"
)
