//go:build !tinygo

package trace

import (
	"log"
)

func init() {
	logger = &stdLogger{l: log.New(log.Writer(), "trace: ", log.LstdFlags)}
}

// stdLogger writes diagnostics with the standard library log package.
type stdLogger struct {
	l *log.Logger
}

func (s *stdLogger) Debug(msg string) { s.l.Print("[DEBUG] " + msg) }
func (s *stdLogger) Info(msg string)  { s.l.Print("[INFO]  " + msg) }
func (s *stdLogger) Warn(msg string)  { s.l.Print("[WARN]  " + msg) }
func (s *stdLogger) Error(msg string) { s.l.Print("[ERROR] " + msg) }
