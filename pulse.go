// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package pulsesim

// Pulse is a binary signal sent from one module to another.
//
type Pulse bool

// Pulse values.
//
const (
	Low  Pulse = false
	High Pulse = true
)

func (p Pulse) String() string {
	if p {
		return "high"
	}
	return "low"
}

// Event is a pulse pending delivery from Source to Target.
//
type Event struct {
	Source string
	Target string
	Pulse  Pulse
}

func (e Event) String() string {
	return e.Source + " -" + e.Pulse.String() + "-> " + e.Target
}
