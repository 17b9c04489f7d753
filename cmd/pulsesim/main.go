// Command pulsesim simulates pulse propagation circuits.
//
// Usage:
//
//	pulsesim run circuit.txt
//	pulsesim count --presses 1000 circuit.txt
//	pulsesim cycle --sink rx circuit.txt
//	pulsesim graph circuit.txt
//	pulsesim gen --period 3797,3847 --sink rx
//
// Circuits are read from stdin when no file or "-" is given.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
