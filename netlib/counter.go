// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package netlib provides generators for reusable pulsesim circuits.
//
package netlib

import (
	"math/bits"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// A Part is a group of module declarations with a single input and a single
// output module.
//
type Part struct {
	Input  string   // module to wire the driving pulse to
	Output string   // module sending the part's output
	Decls  []string // module declarations
}

func (p Part) String() string {
	return strings.Join(p.Decls, "\n") + "\n"
}

func decl(prefix, name string, receivers ...string) string {
	return prefix + name + " -> " + strings.Join(receivers, ", ")
}

// Counter returns a binary counter that sends a single high pulse to dest on
// every press that is a multiple of period.
//
// The counter is a chain of flip-flops name_b0, name_b1, ... counting low
// pulses received on name_b0. A conjunction name, fed by the flip-flops of
// the bits set in period, emits a low pulse when the count reaches period,
// resetting the counter. The inverter name_out turns this into a high pulse
// to dest.
//
// period must be odd.
//
func Counter(name string, period int, dest string) (Part, error) {
	if period <= 0 || period&1 == 0 {
		return Part{}, errors.Errorf("counter %s: period must be a positive odd number, got %d", name, period)
	}
	if name == "" || dest == "" {
		return Part{}, errors.New("counter: empty module name")
	}
	n := bits.Len(uint(period))
	ff := make([]string, n)
	for i := range ff {
		ff[i] = name + "_b" + strconv.Itoa(i)
	}

	var p Part
	// reset lines: bit 0 and every bit not set in period
	reset := []string{ff[0]}
	for i, b := range ff {
		var recv []string
		if i+1 < n {
			recv = append(recv, ff[i+1])
		}
		if period&(1<<uint(i)) != 0 {
			recv = append(recv, name)
		} else {
			reset = append(reset, b)
		}
		p.Decls = append(p.Decls, decl("%", b, recv...))
	}
	out := name + "_out"
	p.Decls = append(p.Decls,
		decl("&", name, append(reset, out)...),
		decl("&", out, dest))
	p.Input = ff[0]
	p.Output = out
	return p, nil
}

// Circuit returns a circuit description where a broadcaster drives one
// Counter per period. The counter outputs feed a conjunction that sends a low
// pulse to sink on presses that are a multiple of every period.
//
// The conjunction is named join and the counters c0, c1, ...
//
func Circuit(sink string, periods ...int) (string, error) {
	if len(periods) == 0 {
		return "", errors.New("circuit: no periods")
	}
	if sink == "" {
		return "", errors.New("circuit: empty sink name")
	}
	var inputs []string
	var b strings.Builder
	for i, period := range periods {
		p, err := Counter("c"+strconv.Itoa(i), period, "join")
		if err != nil {
			return "", errors.Wrap(err, "circuit")
		}
		inputs = append(inputs, p.Input)
		b.WriteString(p.String())
	}
	b.WriteString(decl("&", "join", sink))
	b.WriteByte('\n')
	return decl("", "broadcaster", inputs...) + "\n" + b.String(), nil
}
