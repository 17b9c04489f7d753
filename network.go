// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package pulsesim

import (
	"bufio"
	"io"
	"slices"
	"strings"

	"github.com/db47h/pulsesim/internal/netlist"
	"github.com/pkg/errors"
)

// Network is a parsed circuit: a set of uniquely named modules.
//
// The structure of a network never changes after parsing. Module states do
// change while it is being simulated; use Clone to get an independent copy.
//
type Network struct {
	modules map[string]*Module
	names   []string // declaration order
}

// ParseString parses a circuit description. See Parse.
//
func ParseString(s string) (*Network, error) {
	return Parse(strings.NewReader(s))
}

// MaxLineSize is the maximum length in bytes of a declaration line accepted
// by Parse.
const MaxLineSize = 1 << 20

// Parse reads a circuit description, one module declaration per line:
//
//	broadcaster -> a, b
//	%a -> inv
//	&inv -> b, output
//
// A % prefix declares a FlipFlop, & a Conjunction and no prefix a Broadcast
// module. Blank lines and lines starting with # are ignored.
//
// Receivers may reference modules declared later in the input or never
// declared at all. Conjunction inputs are resolved once all declarations
// have been read.
//
// Malformed lines are reported as a *ParseError.
//
func Parse(r io.Reader) (*Network, error) {
	n := &Network{modules: make(map[string]*Module)}
	s := bufio.NewScanner(r)
	s.Buffer(nil, MaxLineSize)
	line := 0
	for s.Scan() {
		line++
		text := s.Text()
		if t := strings.TrimSpace(text); t == "" || t[0] == '#' {
			continue
		}
		d, err := netlist.Parse(text)
		if err != nil {
			var se *netlist.SyntaxError
			if errors.As(err, &se) {
				return nil, &ParseError{Line: line, Col: int(se.Pos) + 1, Text: text, Msg: se.Msg}
			}
			return nil, errors.Wrapf(err, "line %d", line)
		}
		if _, ok := n.modules[d.Name]; ok {
			return nil, &ParseError{Line: line, Col: int(d.Pos) + 1, Text: text, Msg: "duplicate module " + d.Name}
		}
		role := Broadcast
		switch d.Prefix {
		case '%':
			role = FlipFlop
		case '&':
			role = Conjunction
		}
		n.modules[d.Name] = newModule(d.Name, role, d.Receivers)
		n.names = append(n.names, d.Name)
	}
	if err := s.Err(); err != nil {
		return nil, errors.Wrap(err, "read circuit")
	}
	n.link()
	return n, nil
}

// link registers every module as an input of the conjunctions it sends to.
func (n *Network) link() {
	for _, name := range n.names {
		for _, r := range n.modules[name].receivers {
			if m, ok := n.modules[r]; ok && m.role == Conjunction {
				m.inputs[name] = Low
			}
		}
	}
}

// Module returns the named module.
//
func (n *Network) Module(name string) (*Module, bool) {
	m, ok := n.modules[name]
	return m, ok
}

// Names returns the module names in declaration order.
//
func (n *Network) Names() []string {
	return slices.Clone(n.names)
}

// Len returns the number of declared modules.
//
func (n *Network) Len() int { return len(n.names) }

// Senders returns the modules having name as a receiver, in declaration
// order. name need not be declared.
//
func (n *Network) Senders(name string) []string {
	var out []string
	for _, s := range n.names {
		if slices.Contains(n.modules[s].receivers, name) {
			out = append(out, s)
		}
	}
	return out
}

// Dangling returns the sorted names of receivers that are not declared.
//
func (n *Network) Dangling() []string {
	var out []string
	for _, s := range n.names {
		for _, r := range n.modules[s].receivers {
			if _, ok := n.modules[r]; !ok && !slices.Contains(out, r) {
				out = append(out, r)
			}
		}
	}
	slices.Sort(out)
	return out
}

// Clone returns a deep copy of n, including module states and counters.
//
func (n *Network) Clone() *Network {
	c := &Network{
		modules: make(map[string]*Module, len(n.modules)),
		names:   slices.Clone(n.names),
	}
	for k, m := range n.modules {
		c.modules[k] = m.clone()
	}
	return c
}

// String returns the network declarations in declaration order. The result
// parses back to an equivalent network.
//
func (n *Network) String() string {
	var b strings.Builder
	for _, name := range n.names {
		b.WriteString(n.modules[name].String())
		b.WriteByte('\n')
	}
	return b.String()
}
