// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package pulsesim

import "golang.org/x/exp/constraints"

// GCD returns the greatest common divisor of a and b, which must not be
// negative.
func GCD[T constraints.Integer](a, b T) T {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// LCM returns the least common multiple of the given positive values.
// It returns 1 for an empty list.
func LCM[T constraints.Integer](values ...T) T {
	r := T(1)
	for _, v := range values {
		r = r / GCD(r, v) * v
	}
	return r
}
