package trace

import "io"

// NoTrace is true for builds where every trace is compiled out: static
// gating with CompiledLevel set to LevelNoTrace. Fatal still halts.
const NoTrace = !DynamicTraces && CompiledLevel == LevelNoTrace

// ConfigureISP is Configure for minimal bootstrap programs: it does nothing
// when NoTrace is set, so the port is never touched.
func ConfigureISP(c Config) error {
	if NoTrace {
		return nil
	}
	return Configure(c)
}

// Close releases the configured port, if it can be closed, and discards
// further output until the next Configure or SetTransport.
func Close() error {
	port := std.Transport()
	std.SetTransport(nil)
	if c, ok := port.(io.Closer); ok {
		logger.Info("trace port closed")
		return c.Close()
	}
	return nil
}
