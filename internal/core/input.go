package core

import "strings"

// Action represents a semantic game action, abstracted from physical key presses.
// Front ends translate keys into actions through a game's KeyMap.
type Action int

const (
	ActionNone     Action = iota
	ActionUp              // Snake: head up
	ActionDown            // Tetris: move down one row; Snake: head down
	ActionLeft            // Move left
	ActionRight           // Move right
	ActionRotate          // Tetris: rotate clockwise
	ActionHardDrop        // Tetris: drop until locked
	ActionRest            // Tetris: suspend automatic fall for a while
	ActionPower           // Tetris: one-shot board clear
	ActionQuit            // End the session and return to the caller
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionRotate:
		return "Rotate"
	case ActionHardDrop:
		return "HardDrop"
	case ActionRest:
		return "Rest"
	case ActionPower:
		return "Power"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame holds the actions triggered between two simulation steps.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// FrameOf builds an input frame holding a single action.
func FrameOf(a Action) InputFrame {
	f := NewInputFrame()
	f.Set(a)
	return f
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

// Binding ties a set of key names to one action. Key names follow Bubble
// Tea's KeyMsg.String() spelling ("a", "1", "up", "ctrl+c").
type Binding struct {
	Keys   []string
	Action Action
	Help   string // legend label, e.g. "rotate"
}

// KeyMap is an ordered list of bindings. The first binding listing a key wins.
type KeyMap []Binding

// Lookup returns the action bound to key.
func (km KeyMap) Lookup(key string) (Action, bool) {
	for _, b := range km {
		for _, k := range b.Keys {
			if k == key {
				return b.Action, true
			}
		}
	}
	return ActionNone, false
}

// Legend renders the bindings as "key help" pairs for a status line.
func (km KeyMap) Legend() string {
	var sb strings.Builder
	for _, b := range km {
		if len(b.Keys) == 0 || b.Help == "" {
			continue
		}
		if sb.Len() > 0 {
			sb.WriteString("  ")
		}
		sb.WriteString(b.Keys[0])
		sb.WriteByte(' ')
		sb.WriteString(b.Help)
	}
	return sb.String()
}
