// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

/*
Package pulsesim simulates pulse propagation circuits.

A circuit is a network of named modules exchanging high and low pulses. There
are three kinds of declared modules: broadcasters that forward what they
receive, flip-flops that toggle on low pulses, and conjunctions that remember
the last pulse from each of their inputs and act as a NAND gate. A button
module sends a single low pulse to the entry module (usually "broadcaster")
each time it is pressed.

Pulses are processed strictly in the order they are sent: all pulses caused by
one event are queued after every pulse already pending. A press is over once
no more pulses are pending.

	n, err := pulsesim.ParseString("broadcaster -> a\n%a -> inv, con\n&inv -> b\n%b -> con\n&con -> output")
	if err != nil {
		// handle error
	}
	d := pulsesim.NewDriver(n)
	product := d.PressN(1000) // 11687500

Package netlib provides generators for counter circuits, pulsetest helpers
for testing circuits.

*/
package pulsesim
