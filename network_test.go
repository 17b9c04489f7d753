package pulsesim_test

import (
	"fmt"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/db47h/pulsesim"
	"github.com/db47h/pulsesim/pulsetest"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	example1 = `broadcaster -> a, b, c
%a -> b
%b -> c
%c -> inv
&inv -> a
`
	example2 = `broadcaster -> a
%a -> inv, con
&inv -> b
%b -> con
&con -> output
`
)

func TestParse(t *testing.T) {
	n, err := pulsesim.ParseString(example2)
	require.NoError(t, err)
	assert.Equal(t, 5, n.Len())
	assert.Equal(t, []string{"broadcaster", "a", "inv", "b", "con"}, n.Names())

	data := []struct {
		name string
		role pulsesim.Role
		recv []string
	}{
		{"broadcaster", pulsesim.Broadcast, []string{"a"}},
		{"a", pulsesim.FlipFlop, []string{"inv", "con"}},
		{"inv", pulsesim.Conjunction, []string{"b"}},
		{"b", pulsesim.FlipFlop, []string{"con"}},
		{"con", pulsesim.Conjunction, []string{"output"}},
	}
	for _, d := range data {
		m := module(t, n, d.name)
		assert.Equal(t, d.name, m.Name())
		assert.Equal(t, d.role, m.Role(), d.name)
		assert.Equal(t, d.recv, m.Receivers(), d.name)
	}
	assert.Equal(t, []string{"a", "b"}, module(t, n, "con").Inputs())
	assert.Equal(t, []string{"a"}, module(t, n, "inv").Inputs())
	assert.Equal(t, []string{"output"}, n.Dangling())
	assert.Equal(t, []string{"a", "b"}, n.Senders("con"))
	assert.Empty(t, n.Senders("broadcaster"))

	_, ok := n.Module("output")
	assert.False(t, ok)
}

// Conjunction inputs must be resolved even when the conjunction is declared
// before its senders.
func TestParse_forward_reference(t *testing.T) {
	n, err := pulsesim.ParseString("&c -> out\nbroadcaster -> x, y\n%x -> c\n%y -> c, z")
	require.NoError(t, err)
	assert.Equal(t, []string{"x", "y"}, module(t, n, "c").Inputs())
	assert.Equal(t, []string{"out", "z"}, n.Dangling())
}

func TestParse_empty(t *testing.T) {
	for _, in := range []string{"", "\n\n", "# nothing here\n   \n"} {
		n, err := pulsesim.ParseString(in)
		require.NoError(t, err)
		assert.Zero(t, n.Len())
		assert.Equal(t, "", n.String())
	}
}

func TestParse_errors(t *testing.T) {
	data := []struct {
		name string
		in   string
		line int
		col  int
		err  string
	}{
		{"no_arrow", "broadcaster -> a\n%a b", 2, 4,
			`line 2: in "%a b" at pos 4: expected '->', got "b"`},
		{"no_receiver", "%a ->\nb -> c", 1, 6,
			`line 1: in "%a ->" at pos 6: expected receiver name, got end of input`},
		{"bad_prefix", "\n# ok\n$a -> b", 3, 1,
			`line 3: in "$a -> b" at pos 1: expected module name, got '$'`},
		{"duplicate", "a -> b\n%b -> a\n&a -> b", 3, 2,
			`line 3: in "&a -> b" at pos 2: duplicate module a`},
	}
	for _, d := range data {
		t.Run(d.name, func(t *testing.T) {
			_, err := pulsesim.ParseString(d.in)
			require.Error(t, err)
			assert.EqualError(t, err, d.err)
			var pe *pulsesim.ParseError
			require.True(t, errors.As(err, &pe))
			assert.Equal(t, d.line, pe.Line)
			assert.Equal(t, d.col, pe.Col)
		})
	}
}

func TestParse_read_error(t *testing.T) {
	_, err := pulsesim.Parse(iotest.ErrReader(errors.New("disk on fire")))
	assert.EqualError(t, err, "read circuit: disk on fire")
}

func TestParse_longLine(t *testing.T) {
	recv := make([]string, 20000)
	for i := range recv {
		recv[i] = fmt.Sprintf("m%05d", i)
	}
	line := "broadcaster -> " + strings.Join(recv, ", ")
	require.Greater(t, len(line), 64*1024)
	n, err := pulsesim.ParseString(line + "\n%a -> b\n")
	require.NoError(t, err)
	m := module(t, n, "broadcaster")
	assert.Equal(t, recv, m.Receivers())
	assert.Equal(t, 2, n.Len())

	_, err = pulsesim.ParseString("a -> " + strings.Repeat("b", pulsesim.MaxLineSize))
	assert.ErrorContains(t, err, "read circuit")
}

// Parsing the same text twice yields networks with identical behavior.
func TestParse_idempotent(t *testing.T) {
	for _, in := range []string{example1, example2} {
		a, err := pulsesim.ParseString(in)
		require.NoError(t, err)
		b, err := pulsesim.ParseString(in)
		require.NoError(t, err)
		pulsetest.CompareNetworks(t, a, b, 1000)

		// and so does its canonical form
		assert.Equal(t, in, a.String())
		c, err := pulsesim.ParseString(a.String())
		require.NoError(t, err)
		pulsetest.CompareNetworks(t, a, c, 1000)
	}
}

func TestNetwork_String(t *testing.T) {
	n, err := pulsesim.ParseString("  %a->b,c \n\n&b -> a\n")
	require.NoError(t, err)
	assert.Equal(t, "%a -> b, c\n&b -> a\n", n.String())
}

func TestNetwork_Clone(t *testing.T) {
	n, err := pulsesim.ParseString(example2)
	require.NoError(t, err)
	d := pulsesim.NewDriver(n)
	d.Press()

	c := n.Clone()
	assert.Equal(t, n.String(), c.String())
	ca, na := module(t, c, "a"), module(t, n, "a")
	assert.True(t, ca.On())
	h1, l1 := na.Counts()
	h2, l2 := ca.Counts()
	assert.Equal(t, h1, h2)
	assert.Equal(t, l1, l2)

	// the copy evolves independently
	pulsesim.NewDriver(c).Press()
	assert.False(t, ca.On())
	assert.True(t, na.On())
	p1, _ := module(t, n, "con").Input("a")
	p2, _ := module(t, c, "con").Input("a")
	assert.Equal(t, pulsesim.High, p1)
	assert.Equal(t, pulsesim.Low, p2)
	assert.True(t, strings.HasPrefix(c.String(), "broadcaster -> a\n"))
}
