// Package confirm is a reusable yes/no gate placed in front of destructive
// actions. The gate opens carrying the target's identity and display label;
// the pending action runs only on explicit confirmation.
package confirm

type State int

const (
	StateClosed State = iota
	StateOpen
)

type Gate struct {
	state    State
	targetID string
	label    string
	action   func()
}

// Request opens the gate for the given target. Requesting while already open
// replaces the pending target and action.
func (g *Gate) Request(targetID, label string, action func()) {
	g.state = StateOpen
	g.targetID = targetID
	g.label = label
	g.action = action
}

// Confirm invokes the pending action and closes the gate. Confirming a
// closed gate does nothing.
func (g *Gate) Confirm() {
	if g.state != StateOpen {
		return
	}
	action := g.action
	g.reset()
	if action != nil {
		action()
	}
}

// Cancel discards the pending target without invoking the action. Explicit
// cancel, background click and escape all land here.
func (g *Gate) Cancel() {
	if g.state != StateOpen {
		return
	}
	g.reset()
}

func (g *Gate) Open() bool {
	return g.state == StateOpen
}

// Target reports the pending target's identity and display label.
func (g *Gate) Target() (id, label string) {
	return g.targetID, g.label
}

func (g *Gate) reset() {
	g.state = StateClosed
	g.targetID = ""
	g.label = ""
	g.action = nil
}
