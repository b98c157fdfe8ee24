package core

// Action represents a semantic control action, abstracted from physical key presses.
// Console drivers map keys to actions and actions to slider movement.
type Action int

const (
	ActionNone      Action = iota
	ActionLeftUp           // W - raise player one's slider
	ActionLeftDown         // S - lower player one's slider
	ActionRightUp          // Up arrow - raise player two's slider
	ActionRightDown        // Down arrow - lower player two's slider
	ActionStop             // Q, Ctrl+C - the controller's stop button
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeftUp:
		return "LeftUp"
	case ActionLeftDown:
		return "LeftDown"
	case ActionRightUp:
		return "RightUp"
	case ActionRightDown:
		return "RightDown"
	case ActionStop:
		return "Stop"
	default:
		return "Unknown"
	}
}

// InputFrame collects the actions triggered between two polls.
type InputFrame struct {
	// Actions maps action types to how many times they fired this frame.
	// Key repeat can fire the same action several times per frame.
	Actions map[Action]int
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]int),
	}
}

// Set records one occurrence of an action.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]int)
	}
	f.Actions[a]++
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	return f.Count(a) > 0
}

// Count returns how many times the action fired this frame.
func (f InputFrame) Count(a Action) int {
	if f.Actions == nil {
		return 0
	}
	return f.Actions[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}
