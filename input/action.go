// Package input turns terminal key events into gallery actions through a rebindable key table
package input

// Action is a front-end command produced by a key
type Action uint8

const (
	ActionNone Action = iota

	// Page scrolling
	ActionScrollDown
	ActionScrollUp
	ActionPageDown
	ActionPageUp
	ActionTop
	ActionBottom

	// Item stepping scrolls the page to the next or previous snap target
	ActionNext
	ActionPrev

	// Keyboard focus
	ActionFocusNext
	ActionFocusPrev
	ActionBlur
	ActionActivate

	// Front-end toggles
	ActionToggleMute
	ActionToggleDebug
	ActionToggleDisabled
	ActionSnapshot
	ActionQuit
)

// actionNames are the canonical names used in key configuration
var actionNames = map[string]Action{
	"none":            ActionNone,
	"scroll_down":     ActionScrollDown,
	"scroll_up":       ActionScrollUp,
	"page_down":       ActionPageDown,
	"page_up":         ActionPageUp,
	"top":             ActionTop,
	"bottom":          ActionBottom,
	"next":            ActionNext,
	"prev":            ActionPrev,
	"focus_next":      ActionFocusNext,
	"focus_prev":      ActionFocusPrev,
	"blur":            ActionBlur,
	"activate":        ActionActivate,
	"toggle_mute":     ActionToggleMute,
	"toggle_debug":    ActionToggleDebug,
	"toggle_disabled": ActionToggleDisabled,
	"snapshot":        ActionSnapshot,
	"quit":            ActionQuit,
}

var actionStrings = func() map[Action]string {
	m := make(map[Action]string, len(actionNames))
	for k, v := range actionNames {
		m[v] = k
	}
	return m
}()

// ActionByName resolves a canonical action name
func ActionByName(name string) (Action, bool) {
	a, ok := actionNames[name]
	return a, ok
}

func (a Action) String() string {
	if s, ok := actionStrings[a]; ok {
		return s
	}
	return "unknown"
}

// Repeatable reports whether a count prefix multiplies the action
func (a Action) Repeatable() bool {
	switch a {
	case ActionScrollDown, ActionScrollUp, ActionPageDown, ActionPageUp,
		ActionNext, ActionPrev, ActionFocusNext, ActionFocusPrev:
		return true
	}
	return false
}

// Intent is a resolved action with its repeat count
type Intent struct {
	Action Action
	Count  int
}
