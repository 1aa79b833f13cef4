// Command tickcalc prints the wakeup-timer constants derived from a board
// clock configuration, converts delays to ticks, and shows how the 32-bit
// buffer helpers lay out a value.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
