// Package interaction merges the scroll-derived snap index with pointer and keyboard overrides
package interaction

// Mode is the interaction machine's coarse state; there is no terminal mode
type Mode uint8

const (
	Idle Mode = iota
	ScrollDriven
	PointerOverride
)

var modeNames = [...]string{"idle", "scroll", "pointer"}

func (m Mode) String() string {
	if int(m) < len(modeNames) {
		return modeNames[m]
	}
	return "unknown"
}

// NoIndex marks an absent hovered or focused item
const NoIndex = -1

// State is the externally visible interaction state
type State struct {
	PointerInside bool

	// Hovered is NoIndex unless the pointer or keyboard focus is engaged
	Hovered int

	// Active mirrors the snap resolver index
	Active int
}

// Machine tracks hover and focus over a ring of n items
// All transitions are synchronous with the input that caused them
type Machine struct {
	n        int
	state    State
	focused  int
	scrolled bool
	disabled bool
}

// NewMachine creates an idle machine for n items
func NewMachine(n int) *Machine {
	if n < 0 {
		n = 0
	}
	return &Machine{
		n:       n,
		state:   State{Hovered: NoIndex},
		focused: NoIndex,
	}
}

// State returns a copy of the current state
func (m *Machine) State() State { return m.state }

// Count returns the item count
func (m *Machine) Count() int { return m.n }

// Focused returns the keyboard-focused item or NoIndex
func (m *Machine) Focused() int { return m.focused }

// Disabled reports whether hover and focus are ignored
func (m *Machine) Disabled() bool { return m.disabled }

// Mode derives the coarse state from the current fields
func (m *Machine) Mode() Mode {
	switch {
	case m.state.Hovered != NoIndex:
		return PointerOverride
	case m.scrolled:
		return ScrollDriven
	}
	return Idle
}

// EffectiveIndex is Hovered when engaged, else Active
func (m *Machine) EffectiveIndex() int {
	if m.state.Hovered != NoIndex {
		return m.state.Hovered
	}
	return m.state.Active
}

// SetDisabled makes the machine inert and drops any override
func (m *Machine) SetDisabled(disabled bool) {
	m.disabled = disabled
	if disabled {
		m.state.PointerInside = false
		m.state.Hovered = NoIndex
		m.focused = NoIndex
	}
}

// SetCount resizes the ring, clamping indices and dropping overrides that fell off
func (m *Machine) SetCount(n int) {
	if n < 0 {
		n = 0
	}
	m.n = n
	if m.state.Active >= n {
		m.state.Active = max(0, n-1)
	}
	if m.focused >= n {
		m.focused = NoIndex
	}
	if n == 0 {
		m.state.PointerInside = false
	}
	if m.state.Hovered >= n {
		m.state.Hovered = m.focused
		if m.state.PointerInside {
			m.state.Hovered = m.state.Active
		}
	}
}

// PointerEnter engages the override on the current active item
func (m *Machine) PointerEnter() {
	if m.disabled || m.n == 0 || m.state.PointerInside {
		return
	}
	m.state.PointerInside = true
	if m.state.Hovered == NoIndex {
		m.state.Hovered = m.state.Active
	}
}

// Hover overrides the effective index with item i; out of range indices are ignored
func (m *Machine) Hover(i int) {
	if m.disabled || !m.valid(i) {
		return
	}
	m.state.PointerInside = true
	m.state.Hovered = i
}

// Leave drops the pointer override, falling back to keyboard focus if held
func (m *Machine) Leave() {
	if m.disabled {
		return
	}
	m.state.PointerInside = false
	m.state.Hovered = m.focused
}

// Focus mirrors Hover for keyboard navigation
func (m *Machine) Focus(i int) {
	if m.disabled || !m.valid(i) {
		return
	}
	m.focused = i
	m.state.Hovered = i
}

// Blur releases keyboard focus; the pointer override survives while inside
func (m *Machine) Blur() {
	if m.disabled {
		return
	}
	m.focused = NoIndex
	if !m.state.PointerInside {
		m.state.Hovered = NoIndex
	}
}

// OnSnap records a new snap index
// While the pointer is inside, a changed snap index also moves the hover so the
// preview follows the wheel
func (m *Machine) OnSnap(index int) {
	if m.n == 0 {
		return
	}
	index = max(0, min(m.n-1, index))
	m.scrolled = true
	if index == m.state.Active {
		return
	}
	m.state.Active = index
	if m.state.PointerInside && !m.disabled {
		m.state.Hovered = index
	}
}

// Reset returns to Idle at index 0
func (m *Machine) Reset() {
	m.state = State{Hovered: NoIndex}
	m.focused = NoIndex
	m.scrolled = false
}

func (m *Machine) valid(i int) bool {
	return i >= 0 && i < m.n
}
