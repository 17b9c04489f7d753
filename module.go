// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package pulsesim

import (
	"maps"
	"slices"
	"strings"
)

// Role is the behavior of a module.
//
type Role int

// Module roles. The set is closed.
//
const (
	Broadcast Role = iota
	FlipFlop
	Conjunction
	Button
)

var roleNames = [...]string{"broadcast", "flip-flop", "conjunction", "button"}

func (r Role) String() string {
	if r < 0 || int(r) >= len(roleNames) {
		return "unknown"
	}
	return roleNames[r]
}

// prefix returns the declaration prefix for the role.
func (r Role) prefix() string {
	switch r {
	case FlipFlop:
		return "%"
	case Conjunction:
		return "&"
	}
	return ""
}

// A Module is a node in a circuit. Its receivers are the names of the modules
// it sends pulses to, in emission order.
//
// The state a module carries depends on its role:
//
//	Broadcast:   the last received pulse, re-emitted on activation.
//	FlipFlop:    an on/off state (initially off) and the last received pulse.
//	             Only a low pulse makes it toggle and emit.
//	Conjunction: the last pulse received from each of its inputs (initially
//	             low). It emits low if all inputs are high, high otherwise.
//	Button:      no state, always emits low.
//
type Module struct {
	name      string
	role      Role
	receivers []string

	recent Pulse
	on     bool
	inputs map[string]Pulse

	// pulses sent
	high, low int
}

func newModule(name string, role Role, receivers []string) *Module {
	m := &Module{name: name, role: role, receivers: receivers}
	if role == Conjunction {
		m.inputs = make(map[string]Pulse)
	}
	return m
}

// NewButton returns a Button module wired to receiver.
//
func NewButton(name, receiver string) *Module {
	return newModule(name, Button, []string{receiver})
}

// Name returns the module name.
//
func (m *Module) Name() string { return m.name }

// Role returns the module role.
//
func (m *Module) Role() Role { return m.role }

// Receivers returns the module's receivers in declaration order.
// The returned slice must not be modified.
//
func (m *Module) Receivers() []string { return m.receivers }

// Inputs returns the sorted names of the modules tracked by a Conjunction.
// It returns nil for other roles.
//
func (m *Module) Inputs() []string {
	if m.inputs == nil {
		return nil
	}
	var keys []string
	for k := range m.inputs {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// Input returns the last pulse a Conjunction received from the named input.
//
func (m *Module) Input(name string) (p Pulse, ok bool) {
	p, ok = m.inputs[name]
	return p, ok
}

// On returns the state of a FlipFlop.
//
func (m *Module) On() bool { return m.on }

// Counts returns the number of high and low pulses the module has emitted.
// A pulse emitted to several receivers counts once.
//
func (m *Module) Counts() (high, low int) { return m.high, m.low }

// Receive records a pulse from source. A Conjunction ignores pulses from
// modules that are not one of its inputs.
//
func (m *Module) Receive(source string, p Pulse) {
	switch m.role {
	case Conjunction:
		if _, ok := m.inputs[source]; ok {
			m.inputs[source] = p
		}
	case FlipFlop, Broadcast:
		m.recent = p
	}
}

// Activate computes the pulse to emit given the current state. It returns
// false if the module does not emit anything, which only happens for a
// FlipFlop that last received a high pulse.
//
func (m *Module) Activate() (Pulse, bool) {
	var p Pulse
	switch m.role {
	case Broadcast:
		p = m.recent
	case FlipFlop:
		if m.recent == High {
			return Low, false
		}
		m.on = !m.on
		p = Pulse(m.on)
	case Conjunction:
		p = Low
		for _, in := range m.inputs {
			if in == Low {
				p = High
				break
			}
		}
	case Button:
		p = Low
	}
	if p == High {
		m.high++
	} else {
		m.low++
	}
	return p, true
}

func (m *Module) clone() *Module {
	c := *m
	c.receivers = slices.Clone(m.receivers)
	if m.inputs != nil {
		c.inputs = maps.Clone(m.inputs)
	}
	return &c
}

// String returns the module declaration.
//
func (m *Module) String() string {
	return m.role.prefix() + m.name + " -> " + strings.Join(m.receivers, ", ")
}
