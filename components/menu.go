package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// MainMenuOption represents the available main menu selections
type MainMenuOption int

const (
	MainMenuStart MainMenuOption = iota
	MainMenuExit
)

// MenuData stores the current state of the main menu
type MenuData struct {
	SelectedIndex int

	// Slide-out transition; nil until START is chosen
	Transition *gween.Tween
	Offset     float64 // current vertical offset in pixels
	Done       bool
}

// Move shifts the selection by delta over n options, wrapping at both ends.
func (m *MenuData) Move(delta, n int) {
	m.SelectedIndex = wrapIndex(m.SelectedIndex+delta, n)
}

// Sliding reports whether the slide-out transition has started.
func (m *MenuData) Sliding() bool {
	return m.Transition != nil
}

// Menu is the component type for main menu state
var Menu = donburi.NewComponentType[MenuData]()
