package metrics

import (
	"bytes"
	"context"
	"testing"

	"github.com/db47h/pulsesim"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const example1 = "broadcaster -> a, b, c\n%a -> b\n%b -> c\n%c -> inv\n&inv -> a"

func TestCollector(t *testing.T) {
	n, err := pulsesim.ParseString(example1)
	require.NoError(t, err)

	c := New()
	d := pulsesim.NewDriver(n, c.DriverOptions("count")...)
	d.PressN(1000)

	assert.Equal(t, 4000.0, testutil.ToFloat64(c.pulses.WithLabelValues("count", "high")))
	assert.Equal(t, 8000.0, testutil.ToFloat64(c.pulses.WithLabelValues("count", "low")))
	assert.Equal(t, 1000.0, testutil.ToFloat64(c.presses.WithLabelValues("count")))

	var buf bytes.Buffer
	require.NoError(t, c.WriteText(&buf))
	assert.Contains(t, buf.String(), `pulsesim_pulses_total{level="high",mode="count"} 4000`)
	assert.Contains(t, buf.String(), `pulsesim_presses_total{mode="count"} 1000`)
	assert.Contains(t, buf.String(), `pulsesim_press_events_count{mode="count"} 1000`)
}

func TestCollector_modes(t *testing.T) {
	n, err := pulsesim.ParseString(example1)
	require.NoError(t, err)

	c := New()
	pulsesim.PulseProduct(n, 10, c.DriverOptions("count")...)
	_, err = pulsesim.NewDriver(n.Clone(), c.DriverOptions("cycle")...).
		FirstHigh(context.Background(), []string{"a"}, 5)
	require.NoError(t, err)

	assert.Equal(t, 40.0, testutil.ToFloat64(c.pulses.WithLabelValues("count", "high")))
	assert.Equal(t, 10.0, testutil.ToFloat64(c.presses.WithLabelValues("count")))
	assert.Equal(t, 4.0, testutil.ToFloat64(c.pulses.WithLabelValues("cycle", "high")))
	assert.Equal(t, 8.0, testutil.ToFloat64(c.pulses.WithLabelValues("cycle", "low")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.presses.WithLabelValues("cycle")))
}
