package ui

// Action is the structured command attached to a button.
type Action int

const (
	ActionNone Action = iota
	ActionStart
	ActionOptions
	ActionQuit
	ActionResume
	ActionMainMenu
	ActionBack
	ActionToggleFPS
)

// String returns the string representation of the action
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionStart:
		return "Start"
	case ActionOptions:
		return "Options"
	case ActionQuit:
		return "Quit"
	case ActionResume:
		return "Resume"
	case ActionMainMenu:
		return "MainMenu"
	case ActionBack:
		return "Back"
	case ActionToggleFPS:
		return "ToggleFPS"
	default:
		return "Unknown"
	}
}
