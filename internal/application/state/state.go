// Package state holds the enums that tag screens and track their lifecycle.
package state

// Kind identifies a screen variant
type Kind int

const (
	KindIntro Kind = iota
	KindMenu
	KindPlaying
	KindPaused
	KindOptions
)

// String returns the string representation of the screen kind
func (k Kind) String() string {
	switch k {
	case KindIntro:
		return "Intro"
	case KindMenu:
		return "Menu"
	case KindPlaying:
		return "Playing"
	case KindPaused:
		return "Paused"
	case KindOptions:
		return "Options"
	default:
		return "Unknown"
	}
}

// Phase is the lifecycle position of a screen on the stack.
//
//	Uninitialized -> Active            Init (push or change)
//	Active        -> PausedBelowTop    another screen pushed above
//	PausedBelowTop -> Active           screen above popped
//	Active        -> CleanedUp         change, pop or shutdown
//	Active        -> Dormant           a retained screen leaves the stack
//	Dormant       -> Active            a retained screen is pushed again
type Phase int

const (
	PhaseUninitialized Phase = iota
	PhaseActive
	PhasePausedBelowTop
	PhaseCleanedUp
	PhaseDormant
)

// String returns the string representation of the phase
func (p Phase) String() string {
	switch p {
	case PhaseUninitialized:
		return "Uninitialized"
	case PhaseActive:
		return "Active"
	case PhasePausedBelowTop:
		return "PausedBelowTop"
	case PhaseCleanedUp:
		return "CleanedUp"
	case PhaseDormant:
		return "Dormant"
	default:
		return "Unknown"
	}
}
