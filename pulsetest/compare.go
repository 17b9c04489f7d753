// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package pulsetest provides utility functions for testing circuits.
//
package pulsetest

import (
	"testing"

	"github.com/db47h/pulsesim"
)

// recorder drives a copy of a network and records the events of each press.
type recorder struct {
	d   *pulsesim.Driver
	evs []pulsesim.Event
}

func newRecorder(n *pulsesim.Network, opts ...pulsesim.DriverOption) *recorder {
	r := new(recorder)
	s := pulsesim.NewScheduler(pulsesim.WithObserver(func(e pulsesim.Event) {
		r.evs = append(r.evs, e)
	}))
	r.d = pulsesim.NewDriver(n.Clone(), append(opts, pulsesim.WithScheduler(s))...)
	return r
}

func (r *recorder) press() []pulsesim.Event {
	r.evs = r.evs[:0]
	r.d.Press()
	return r.evs
}

// Replay presses the button of a copy of n the given number of times and
// returns all the events sent, in order.
//
func Replay(n *pulsesim.Network, presses int, opts ...pulsesim.DriverOption) []pulsesim.Event {
	var out []pulsesim.Event
	r := newRecorder(n, opts...)
	for i := 0; i < presses; i++ {
		out = append(out, r.press()...)
	}
	return out
}

// CompareNetworks presses the buttons of copies of a and b the given number
// of times and fails if the events sent by both networks differ. Neither a
// nor b is modified.
//
func CompareNetworks(t testing.TB, a, b *pulsesim.Network, presses int, opts ...pulsesim.DriverOption) {
	t.Helper()

	ra, rb := newRecorder(a, opts...), newRecorder(b, opts...)
	for i := 1; i <= presses; i++ {
		ea, eb := ra.press(), rb.press()
		for j := 0; j < len(ea) && j < len(eb); j++ {
			if ea[j] != eb[j] {
				t.Fatalf("press %d, event %d: %v != %v", i, j, ea[j], eb[j])
			}
		}
		if len(ea) != len(eb) {
			t.Fatalf("press %d: %d events != %d events", i, len(ea), len(eb))
		}
	}
	ha, la := ra.d.Scheduler().Counts()
	hb, lb := rb.d.Scheduler().Counts()
	if ha != hb || la != lb {
		t.Fatalf("pulse counts: high=%d low=%d != high=%d low=%d", ha, la, hb, lb)
	}
}
