//go:build tinygo

package trace

import (
	"machine"
)

func init() {
	logger = &serialLogger{}
}

// serialLogger writes diagnostics straight to machine.Serial, without fmt.
// It is only useful when the trace port is not machine.Serial itself.
type serialLogger struct{}

func (serialLogger) log(level, msg string) {
	machine.Serial.Write([]byte(level))
	machine.Serial.Write([]byte("trace: "))
	machine.Serial.Write([]byte(msg))
	machine.Serial.Write([]byte("\r\n"))
}

func (l *serialLogger) Debug(msg string) { l.log("[DEBUG] ", msg) }
func (l *serialLogger) Info(msg string)  { l.log("[INFO]  ", msg) }
func (l *serialLogger) Warn(msg string)  { l.log("[WARN]  ", msg) }
func (l *serialLogger) Error(msg string) { l.log("[ERROR] ", msg) }
