package input

import "github.com/gdamore/tcell/v2"

// InputState tracks the key parser state machine
type InputState uint8

const (
	StateIdle    InputState = iota // Default state, awaiting initial key
	StateCount                     // Accumulating numeric prefix (1-9 start, 0 continues)
	StatePrefixG                   // After 'g' prefix, awaiting second key
)

// maxCount bounds the numeric prefix
const maxCount = 99

// Machine parses key events into intents with vi-style counts and the g prefix
type Machine struct {
	table *KeyTable
	state InputState
	count int
}

// NewMachine creates a parser over table; nil uses the defaults
func NewMachine(table *KeyTable) *Machine {
	if table == nil {
		table = DefaultKeyTable()
	}
	return &Machine{table: table}
}

// State returns the parser state
func (m *Machine) State() InputState {
	return m.state
}

// Reset drops any pending count or prefix
func (m *Machine) Reset() {
	m.state = StateIdle
	m.count = 0
}

// Process consumes one key event; ok is false while a sequence is incomplete or unbound
func (m *Machine) Process(ev *tcell.EventKey) (Intent, bool) {
	if ev.Key() != tcell.KeyRune {
		// Special keys always complete; Esc also cancels a pending sequence
		pending := m.state != StateIdle
		count := m.take()
		a, ok := m.table.Keys[ev.Key()]
		if !ok || (pending && a == ActionBlur) {
			return Intent{}, false
		}
		return m.intent(a, count), true
	}

	r := ev.Rune()
	switch m.state {
	case StatePrefixG:
		count := m.take()
		a, ok := m.table.PrefixG[r]
		if !ok {
			return Intent{}, false
		}
		return m.intent(a, count), true

	case StateIdle, StateCount:
		if r >= '1' && r <= '9' || (r == '0' && m.state == StateCount) {
			m.state = StateCount
			m.count = min(m.count*10+int(r-'0'), maxCount)
			return Intent{}, false
		}
		if r == 'g' {
			if _, bound := m.table.Runes['g']; !bound {
				m.state = StatePrefixG
				return Intent{}, false
			}
		}
		count := m.take()
		a, ok := m.table.Runes[r]
		if !ok {
			return Intent{}, false
		}
		return m.intent(a, count), true
	}
	m.Reset()
	return Intent{}, false
}

// take returns the pending count and resets the parser
func (m *Machine) take() int {
	c := m.count
	m.Reset()
	return c
}

func (m *Machine) intent(a Action, count int) Intent {
	if count < 1 || !a.Repeatable() {
		count = 1
	}
	return Intent{Action: a, Count: count}
}
