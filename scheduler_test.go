package pulsesim_test

import (
	"testing"

	"github.com/db47h/pulsesim"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScheduler_Send(t *testing.T) {
	s := pulsesim.NewScheduler()
	s.Send("a", "b", pulsesim.High)
	s.Send("a", "c", pulsesim.Low)
	s.Send("b", "c", pulsesim.Low)
	high, low := s.Counts()
	assert.Equal(t, 1, high)
	assert.Equal(t, 2, low)
	assert.Equal(t, 2, s.PulseProduct())
	assert.Equal(t, 3, s.Pending())

	// nothing declared: everything is absorbed but still counted
	n, err := pulsesim.ParseString("")
	require.NoError(t, err)
	assert.Equal(t, 3, s.Drain(n))
	assert.Zero(t, s.Pending())
	high, low = s.Counts()
	assert.Equal(t, 1, high)
	assert.Equal(t, 2, low)
}

// Pulses are delivered in the order they were sent, breadth first.
func TestScheduler_order(t *testing.T) {
	n, err := pulsesim.ParseString(example1)
	require.NoError(t, err)
	var got []pulsesim.Event
	s := pulsesim.NewScheduler(pulsesim.WithObserver(func(e pulsesim.Event) { got = append(got, e) }))

	s.Emit(pulsesim.NewButton("button", "broadcaster"))
	assert.Equal(t, 12, s.Drain(n))

	L, H := pulsesim.Low, pulsesim.High
	exp := []pulsesim.Event{
		{"button", "broadcaster", L},
		{"broadcaster", "a", L},
		{"broadcaster", "b", L},
		{"broadcaster", "c", L},
		{"a", "b", H},
		{"b", "c", H},
		{"c", "inv", H},
		{"inv", "a", L},
		{"a", "b", L},
		{"b", "c", L},
		{"c", "inv", L},
		{"inv", "a", H},
	}
	assert.Equal(t, exp, got)
	high, low := s.Counts()
	assert.Equal(t, 4, high)
	assert.Equal(t, 8, low)
}

// A conjunction activates on every pulse it receives, so with inputs a and b
// it first sends high (b still low), then low.
func TestScheduler_dangling(t *testing.T) {
	n, err := pulsesim.ParseString("broadcaster -> a, b\n%a -> c\n%b -> c\n&c -> out")
	require.NoError(t, err)
	s := pulsesim.NewScheduler()
	s.Emit(pulsesim.NewButton("button", "broadcaster"))
	assert.Equal(t, 7, s.Drain(n))
	high, low := s.Counts()
	assert.Equal(t, 3, high)
	assert.Equal(t, 4, low)
	h, l := module(t, n, "c").Counts()
	assert.Equal(t, 1, h)
	assert.Equal(t, 1, l)
}

// When the conjunction feeds back into the declared broadcaster, its pulses
// are delivered and re-broadcast.
func TestScheduler_feedback(t *testing.T) {
	n, err := pulsesim.ParseString("broadcaster -> a, b\n%a -> c\n%b -> c\n&c -> broadcaster")
	require.NoError(t, err)
	s := pulsesim.NewScheduler()
	s.Emit(pulsesim.NewButton("button", "broadcaster"))
	assert.Equal(t, 19, s.Drain(n))
	high, low := s.Counts()
	assert.Equal(t, 11, high)
	assert.Equal(t, 8, low)
}
