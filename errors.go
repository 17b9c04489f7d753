// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package pulsesim

import (
	"fmt"
	"strings"
)

// ParseError reports a malformed line in a circuit description.
//
type ParseError struct {
	Line int    // 1-based line number
	Col  int    // 1-based column (byte offset)
	Text string // offending line
	Msg  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: in %q at pos %d: %s", e.Line, e.Text, e.Col, e.Msg)
}

// ConvergenceError is returned when the watched modules did not all send a
// high pulse within the allowed number of presses.
//
type ConvergenceError struct {
	Watch   []string
	Found   map[string]int // press index of the first high pulse, per module
	Presses int
}

func (e *ConvergenceError) Error() string {
	var missing []string
	for _, w := range e.Watch {
		if _, ok := e.Found[w]; !ok {
			missing = append(missing, w)
		}
	}
	return fmt.Sprintf("no convergence after %d presses: %d of %d watched modules never sent a high pulse (%s)",
		e.Presses, len(missing), len(e.Watch), strings.Join(missing, ", "))
}
