//go:build !tinygo

package trace

import "time"

// defaultHalt parks the calling goroutine forever. Other goroutines keep
// running, as there are no interrupts to mask on a host.
func defaultHalt() {
	logger.Error("fatal trace, execution halted")
	for {
		time.Sleep(time.Hour)
	}
}
