package input

import (
	"maps"

	"github.com/gdamore/tcell/v2"
)

// KeyTable maps keys to actions
type KeyTable struct {
	// Special keys (Ctrl+*, arrows, function keys)
	Keys map[tcell.Key]Action

	// Plain rune bindings
	Runes map[rune]Action

	// Keys after the g prefix
	PrefixG map[rune]Action
}

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		Keys: map[tcell.Key]Action{
			tcell.KeyCtrlC:   ActionQuit,
			tcell.KeyEscape:  ActionBlur,
			tcell.KeyDown:    ActionScrollDown,
			tcell.KeyUp:      ActionScrollUp,
			tcell.KeyRight:   ActionNext,
			tcell.KeyLeft:    ActionPrev,
			tcell.KeyPgDn:    ActionPageDown,
			tcell.KeyPgUp:    ActionPageUp,
			tcell.KeyHome:    ActionTop,
			tcell.KeyEnd:     ActionBottom,
			tcell.KeyTab:     ActionFocusNext,
			tcell.KeyBacktab: ActionFocusPrev,
			tcell.KeyEnter:   ActionActivate,
			tcell.KeyCtrlS:   ActionSnapshot,
			tcell.KeyCtrlD:   ActionPageDown,
			tcell.KeyCtrlU:   ActionPageUp,
		},
		Runes: map[rune]Action{
			'j': ActionScrollDown,
			'k': ActionScrollUp,
			'l': ActionNext,
			'h': ActionPrev,
			'n': ActionNext,
			'N': ActionPrev,
			'G': ActionBottom,
			' ': ActionActivate,
			'm': ActionToggleMute,
			'?': ActionToggleDebug,
			'x': ActionToggleDisabled,
			'q': ActionQuit,
		},
		PrefixG: map[rune]Action{
			'g': ActionTop,
			'e': ActionBottom,
		},
	}
}

// Clone returns a deep copy
func (kt *KeyTable) Clone() *KeyTable {
	return &KeyTable{
		Keys:    maps.Clone(kt.Keys),
		Runes:   maps.Clone(kt.Runes),
		PrefixG: maps.Clone(kt.PrefixG),
	}
}
