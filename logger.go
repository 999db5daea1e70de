package trace

// Logger receives the package's own diagnostics: port configuration, pin
// muxing and halts. It is separate from the trace output itself, which
// always goes to the configured Transport.
type Logger interface {
	Debug(msg string)
	Info(msg string)
	Warn(msg string)
	Error(msg string)
}

var logger Logger = nopLogger{}

// SetLogger sets the diagnostics logger. nil silences diagnostics.
func SetLogger(l Logger) {
	if l == nil {
		logger = nopLogger{}
		return
	}
	logger = l
}

type nopLogger struct{}

func (nopLogger) Debug(string) {}
func (nopLogger) Info(string)  {}
func (nopLogger) Warn(string)  {}
func (nopLogger) Error(string) {}
