// Package viewstate holds the per-session display flags of the insurance
// page and the operations that mutate them.
package viewstate

import (
	"errors"
	"fmt"
)

// Tab identifies a panel of the dashboard hub.
type Tab string

const (
	TabDashboard    Tab = "dashboard"
	TabServices     Tab = "services"
	TabTechnologies Tab = "technologies"
)

// validTabs is the set of recognized tab values, in display order.
var validTabs = []Tab{TabDashboard, TabServices, TabTechnologies}

var (
	// ErrInvalidTab is returned when a tab identifier is not one of Tabs().
	ErrInvalidTab = errors.New("invalid tab")
	// ErrUnknownAction is returned by Apply for unrecognized action names.
	ErrUnknownAction = errors.New("unknown action")
)

// Tabs returns all known tabs in display order.
func Tabs() []Tab {
	out := make([]Tab, len(validTabs))
	copy(out, validTabs)
	return out
}

// ParseTab converts s to a Tab, rejecting anything outside Tabs().
func ParseTab(s string) (Tab, error) {
	for _, t := range validTabs {
		if string(t) == s {
			return t, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidTab, s)
}

// State is the mutable view state of one display session. The zero value is
// not the default session; use Default.
type State struct {
	IsDarkTheme bool `json:"is_dark_theme"`
	ActiveTab   Tab  `json:"active_tab"`
	IsMenuOpen  bool `json:"is_menu_open"`
	IsPlaying   bool `json:"is_playing"`
}

// Default returns the state every new session starts from.
func Default() State {
	return State{
		IsDarkTheme: true,
		ActiveTab:   TabDashboard,
		IsMenuOpen:  false,
		IsPlaying:   true,
	}
}

// ToggleTheme switches between the dark and light palette.
func (s *State) ToggleTheme() { s.IsDarkTheme = !s.IsDarkTheme }

// ToggleMenu opens or closes the mobile navigation overlay.
func (s *State) ToggleMenu() { s.IsMenuOpen = !s.IsMenuOpen }

// TogglePlaying pauses or resumes page animations.
func (s *State) TogglePlaying() { s.IsPlaying = !s.IsPlaying }

// SetActiveTab selects the hub panel. Unknown tabs are rejected and leave
// the state untouched.
func (s *State) SetActiveTab(tab Tab) error {
	t, err := ParseTab(string(tab))
	if err != nil {
		return err
	}
	s.ActiveTab = t
	return nil
}
