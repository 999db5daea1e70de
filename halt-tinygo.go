//go:build tinygo

package trace

import "runtime/interrupt"

// defaultHalt masks interrupts and spins until a watchdog or external reset.
func defaultHalt() {
	interrupt.Disable()
	for {
	}
}
