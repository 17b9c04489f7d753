// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package pulsesim

// An Observer is notified of every pulse sent, at the time it is queued.
//
type Observer func(e Event)

// SchedulerOption configures a Scheduler.
//
type SchedulerOption func(*Scheduler)

// WithObserver registers an observer.
//
func WithObserver(o Observer) SchedulerOption {
	return func(s *Scheduler) {
		if o != nil {
			s.observers = append(s.observers, o)
		}
	}
}

// Scheduler delivers pulses in the order they are sent.
//
// It also keeps a running tally of every pulse ever sent, including pulses
// sent to undeclared modules.
//
type Scheduler struct {
	queue     []Event
	head      int
	high, low int
	observers []Observer
}

// NewScheduler returns a new, empty Scheduler.
//
func NewScheduler(opts ...SchedulerOption) *Scheduler {
	s := new(Scheduler)
	for _, o := range opts {
		o(s)
	}
	return s
}

// Send queues a pulse from source to target.
//
func (s *Scheduler) Send(source, target string, p Pulse) {
	if p == High {
		s.high++
	} else {
		s.low++
	}
	e := Event{Source: source, Target: target, Pulse: p}
	s.queue = append(s.queue, e)
	for _, o := range s.observers {
		o(e)
	}
}

// Emit activates m and sends the resulting pulse, if any, to each of its
// receivers in order.
//
func (s *Scheduler) Emit(m *Module) {
	p, ok := m.Activate()
	if !ok {
		return
	}
	for _, r := range m.receivers {
		s.Send(m.name, r, p)
	}
}

// Drain delivers queued pulses until the queue is empty and returns the
// number of events processed. Pulses sent while draining are queued after
// all pending ones. Events targeting a module not in n are dropped.
//
func (s *Scheduler) Drain(n *Network) int {
	cnt := 0
	for s.head < len(s.queue) {
		e := s.queue[s.head]
		s.head++
		cnt++
		if m, ok := n.modules[e.Target]; ok {
			m.Receive(e.Source, e.Pulse)
			s.Emit(m)
		}
	}
	s.queue = s.queue[:0]
	s.head = 0
	return cnt
}

// Pending returns the number of queued events.
//
func (s *Scheduler) Pending() int { return len(s.queue) - s.head }

// Counts returns the number of high and low pulses sent so far.
//
func (s *Scheduler) Counts() (high, low int) { return s.high, s.low }

// PulseProduct returns the product of the high and low pulse counts.
//
func (s *Scheduler) PulseProduct() int { return s.high * s.low }
