package core

// Action represents a semantic viewer action, abstracted from physical key presses.
type Action int

const (
	ActionNone       Action = iota
	ActionRegenerate        // R - rebuild with the current seed
	ActionReseed            // N, Space - draw a fresh seed and rebuild
	ActionTogglePath        // P - show/hide the guaranteed route
	ActionNextPreset        // Tab - cycle difficulty presets
	ActionCopy              // C - copy the preview to the clipboard
	ActionHistory           // H - open the run history table
	ActionBack              // B, Escape - leave the current sub-view
	ActionQuit              // Q, Ctrl+C - exit viewer/session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionRegenerate:
		return "Regenerate"
	case ActionReseed:
		return "Reseed"
	case ActionTogglePath:
		return "TogglePath"
	case ActionNextPreset:
		return "NextPreset"
	case ActionCopy:
		return "Copy"
	case ActionHistory:
		return "History"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}
