// Package selection tracks which roadmap node, if any, is active.
//
// The machine has two states, Idle and Active(id). Select moves to
// Active(id) from anywhere and never toggles; Clear moves to Idle from
// anywhere. There is no terminal state.
//
// A Machine is owned by one presentation (a TUI model, an HTTP session,
// a test) and is not safe for concurrent use.
package selection

// State is either Idle or Active(id). The zero value is Idle.
type State struct {
	id     string
	active bool
}

// Idle is the state with no node selected.
var Idle = State{}

// Active returns the state with id selected.
func Active(id string) State { return State{id: id, active: true} }

// Active returns the selected node id and whether a node is selected.
func (s State) Active() (string, bool) { return s.id, s.active }

// IsIdle reports whether no node is selected.
func (s State) IsIdle() bool { return !s.active }

func (s State) String() string {
	if !s.active {
		return "Idle"
	}
	return "Active(" + s.id + ")"
}

// Machine holds the current selection and notifies listeners on changes.
type Machine struct {
	state       State
	onActivated []func(id string)
	onDismissed []func()
}

// New returns a machine in the Idle state.
func New() *Machine { return &Machine{} }

// State returns the current state.
func (m *Machine) State() State { return m.state }

// Select makes id the active node. Selecting the active node again keeps
// the state unchanged but still notifies activation listeners so a drawer
// can rebind.
func (m *Machine) Select(id string) State {
	m.state = Active(id)
	for _, fn := range m.onActivated {
		fn(id)
	}
	return m.state
}

// Clear returns to Idle. Dismiss listeners fire only when a node was
// active.
func (m *Machine) Clear() State {
	was := m.state
	m.state = Idle
	if !was.IsIdle() {
		for _, fn := range m.onDismissed {
			fn()
		}
	}
	return m.state
}

// OnNodeActivated registers fn to run after every Select.
func (m *Machine) OnNodeActivated(fn func(id string)) {
	m.onActivated = append(m.onActivated, fn)
}

// OnDrawerDismissed registers fn to run after Clear leaves an Active state.
func (m *Machine) OnDrawerDismissed(fn func()) {
	m.onDismissed = append(m.onDismissed, fn)
}
