// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package pulsesim

import (
	"context"
	"log/slog"
	"slices"

	"github.com/db47h/pulsesim/internal/logging"
	"github.com/pkg/errors"
)

// Defaults.
//
const (
	ButtonName        = "button"
	DefaultEntry      = "broadcaster"
	DefaultSink       = "rx"
	DefaultPresses    = 1000
	DefaultMaxPresses = 100000
)

// Driver presses the button of a circuit.
//
// A Driver owns its network: the network must not be simulated by anything
// else while the driver is in use.
//
type Driver struct {
	net     *Network
	sched   *Scheduler
	button  *Module
	entry   string
	presses int
	hooks   []func(press, events int)
	log     *slog.Logger
}

// DriverOption configures a Driver.
//
type DriverOption func(*Driver)

// WithEntry sets the module the button is wired to. Defaults to DefaultEntry.
//
func WithEntry(name string) DriverOption {
	return func(d *Driver) {
		if name != "" {
			d.entry = name
		}
	}
}

// WithScheduler sets the scheduler used to propagate pulses.
//
func WithScheduler(s *Scheduler) DriverOption {
	return func(d *Driver) {
		if s != nil {
			d.sched = s
		}
	}
}

// WithLogger sets a structured logger.
//
func WithLogger(l *slog.Logger) DriverOption {
	return func(d *Driver) {
		if l != nil {
			d.log = l
		}
	}
}

// WithPressHook registers a function called after each press with the
// 1-based press index and the number of events it took to settle.
//
func WithPressHook(fn func(press, events int)) DriverOption {
	return func(d *Driver) {
		if fn != nil {
			d.hooks = append(d.hooks, fn)
		}
	}
}

// NewDriver returns a new driver for network n.
//
func NewDriver(n *Network, opts ...DriverOption) *Driver {
	d := &Driver{net: n, entry: DefaultEntry}
	for _, o := range opts {
		o(d)
	}
	if d.sched == nil {
		d.sched = NewScheduler()
	}
	if d.log == nil {
		d.log = logging.NewNop()
	}
	d.button = NewButton(ButtonName, d.entry)
	return d
}

// Network returns the simulated network.
//
func (d *Driver) Network() *Network { return d.net }

// Scheduler returns the driver's scheduler.
//
func (d *Driver) Scheduler() *Scheduler { return d.sched }

// Presses returns the number of presses so far.
//
func (d *Driver) Presses() int { return d.presses }

// Press presses the button once and runs the simulation until no more pulses
// are pending. It returns the number of events processed.
//
func (d *Driver) Press() int {
	d.presses++
	d.sched.Emit(d.button)
	n := d.sched.Drain(d.net)
	d.log.Debug("press", "n", d.presses, "events", n)
	for _, h := range d.hooks {
		h(d.presses, n)
	}
	return n
}

// PressN presses the button n times and returns the scheduler's pulse
// product.
//
func (d *Driver) PressN(n int) int {
	for i := 0; i < n; i++ {
		d.Press()
	}
	high, low := d.sched.Counts()
	d.log.Info("pulse count", "presses", d.presses, "high", high, "low", low)
	return d.sched.PulseProduct()
}

// FirstHigh presses the button until each of the watched modules has sent at
// least one high pulse and returns, for each of them, the number of presses
// into the search at which it first did. Only high pulses sent during the
// search count, so the result is relative to the network's current state.
//
// If that does not happen within limit presses, it returns the partial result
// along with a *ConvergenceError. The context is checked between presses.
//
func (d *Driver) FirstHigh(ctx context.Context, watch []string, limit int) (map[string]int, error) {
	watch = dedup(watch)
	if len(watch) == 0 {
		return nil, errors.New("empty watch list")
	}
	mods := make([]*Module, len(watch))
	base := make([]int, len(watch))
	for i, w := range watch {
		m, ok := d.net.Module(w)
		if !ok {
			return nil, errors.Errorf("watched module %q is not declared", w)
		}
		mods[i] = m
		base[i], _ = m.Counts()
	}

	found := make(map[string]int, len(watch))
	for i := 1; i <= limit; i++ {
		if err := ctx.Err(); err != nil {
			return found, errors.Wrapf(err, "interrupted after %d presses", i-1)
		}
		d.Press()
		for j, m := range mods {
			if _, ok := found[m.name]; ok {
				continue
			}
			if high, _ := m.Counts(); high > base[j] {
				found[m.name] = i
				d.log.Info("first high pulse", "module", m.name, "press", i)
			}
		}
		if len(found) == len(mods) {
			return found, nil
		}
	}
	return found, &ConvergenceError{Watch: watch, Found: found, Presses: limit}
}

// Converge returns the least common multiple of the presses found by
// FirstHigh, along with FirstHigh's result.
//
// This assumes that each watched module sends a high pulse periodically,
// with a period equal to the press index of its first high pulse. It holds
// for circuits made of independent counters (see package netlib) pressed from
// their initial state, not in general.
//
func (d *Driver) Converge(ctx context.Context, watch []string, limit int) (int, map[string]int, error) {
	found, err := d.FirstHigh(ctx, watch, limit)
	if err != nil {
		return 0, found, err
	}
	periods := make([]int, 0, len(found))
	for _, p := range found {
		periods = append(periods, p)
	}
	r := LCM(periods...)
	d.log.Info("converged", "periods", found, "presses", r)
	return r, found, nil
}

func dedup(s []string) []string {
	var out []string
	for _, v := range s {
		if !slices.Contains(out, v) {
			out = append(out, v)
		}
	}
	return out
}

// PulseProduct presses the button of a copy of n the given number of times
// and returns the product of the high and low pulse counts.
//
func PulseProduct(n *Network, presses int, opts ...DriverOption) int {
	return NewDriver(n.Clone(), opts...).PressN(presses)
}

// WatchSet returns the modules to watch to detect when sink receives a low
// pulse: sink must be fed by a single conjunction, whose inputs are
// returned in declaration order.
//
func WatchSet(n *Network, sink string) ([]string, error) {
	feeders := n.Senders(sink)
	if len(feeders) != 1 {
		return nil, errors.Errorf("%q has %d senders, expected exactly one conjunction", sink, len(feeders))
	}
	m := n.modules[feeders[0]]
	if m.role != Conjunction {
		return nil, errors.Errorf("%q is fed by %s %q, expected a conjunction", sink, m.role, m.name)
	}
	w := n.Senders(m.name)
	if len(w) == 0 {
		return nil, errors.Errorf("conjunction %q has no inputs", m.name)
	}
	return w, nil
}

// CyclePresses returns the number of presses needed on a copy of n before
// sink receives a low pulse, using the periodicity shortcut described in
// Converge.
//
func CyclePresses(ctx context.Context, n *Network, sink string, limit int, opts ...DriverOption) (int, error) {
	w, err := WatchSet(n, sink)
	if err != nil {
		return 0, err
	}
	r, _, err := NewDriver(n.Clone(), opts...).Converge(ctx, w, limit)
	return r, err
}
