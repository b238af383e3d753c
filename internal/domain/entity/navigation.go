package entity

import "github.com/Amankewlld/swift-register/internal/domain/enum"

// ScreenTransition records a two-phase screen handoff. While Pending is true
// the From screen is still mounted ("exiting") and To is already current; the
// underlying register state has already mutated by the time the transition is
// observable. A new transition supersedes a pending one.
type ScreenTransition struct {
	From    enum.Screen `json:"from"`
	To      enum.Screen `json:"to"`
	Pending bool        `json:"pending"`
}

// ScreenState is the navigator view handed to the presentation layer.
type ScreenState struct {
	Current    enum.Screen       `json:"current"`
	Transition *ScreenTransition `json:"transition,omitempty"`
}
