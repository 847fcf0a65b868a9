package viewstate

import "fmt"

// ActionType names a view-state mutation.
type ActionType string

const (
	ActionToggleTheme   ActionType = "toggle_theme"
	ActionToggleMenu    ActionType = "toggle_menu"
	ActionTogglePlaying ActionType = "toggle_playing"
	ActionSetTab        ActionType = "set_tab"
)

// Action is a single mutation request. Tab is only read for ActionSetTab.
type Action struct {
	Type ActionType `json:"type"`
	Tab  Tab        `json:"tab,omitempty"`
}

// Apply performs a on s. On error s is unchanged.
func (s *State) Apply(a Action) error {
	switch a.Type {
	case ActionToggleTheme:
		s.ToggleTheme()
	case ActionToggleMenu:
		s.ToggleMenu()
	case ActionTogglePlaying:
		s.TogglePlaying()
	case ActionSetTab:
		return s.SetActiveTab(a.Tab)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownAction, a.Type)
	}
	return nil
}
