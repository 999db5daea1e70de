// Package trace outputs leveled debug traces on a serial debug port and
// reads simple console input back from it.
package trace

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Level is the severity of a trace. Lower values are more critical.
type Level uint8

const (
	// LevelNoTrace disables every trace. It is only meaningful as a threshold.
	LevelNoTrace Level = iota
	// LevelFatal indicates a major error which prevents the program from
	// going any further.
	LevelFatal
	// LevelError indicates an error which may not stop the program but
	// shows there is a problem with the code.
	LevelError
	// LevelWarning indicates a minor error which can usually be discarded.
	LevelWarning
	// LevelInfo shows the execution flow.
	LevelInfo
	// LevelDebug is only useful while debugging the program.
	LevelDebug
)

const (
	tagDebug   = "-D- "
	tagInfo    = "-I- "
	tagWarning = "-W- "
	tagError   = "-E- "
	tagFatal   = "-F- "
)

func (l Level) String() string {
	switch l {
	case LevelNoTrace:
		return "none"
	case LevelFatal:
		return "fatal"
	case LevelError:
		return "error"
	case LevelWarning:
		return "warning"
	case LevelInfo:
		return "info"
	case LevelDebug:
		return "debug"
	default:
		return "unknown(" + strconv.Itoa(int(l)) + ")"
	}
}

// Tag returns the prefix written in front of tagged traces of this level.
func (l Level) Tag() string {
	switch l {
	case LevelFatal:
		return tagFatal
	case LevelError:
		return tagError
	case LevelWarning:
		return tagWarning
	case LevelInfo:
		return tagInfo
	case LevelDebug:
		return tagDebug
	default:
		return ""
	}
}

// ParseLevel accepts a level name ("none" ... "debug") or its number (0-5).
func ParseLevel(s string) (Level, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for l := LevelNoTrace; l <= LevelDebug; l++ {
		if s == l.String() || s == strconv.Itoa(int(l)) {
			return l, nil
		}
	}
	if s == "warn" {
		return LevelWarning, nil
	}
	return LevelNoTrace, fmt.Errorf("%w: unknown level %q", ErrPkg, s)
}

// Tracer writes traces to a Transport and gates them on its own runtime
// threshold. The zero value discards output and has LevelNoTrace as its
// threshold. It is not safe for concurrent use.
type Tracer struct {
	port  Transport
	level Level
	halt  func()
	// fixed pins level to CompiledLevel on the default tracer of static builds.
	fixed bool
}

// NewTracer returns a tracer writing to port. A nil port discards output.
func NewTracer(port Transport, level Level) *Tracer {
	t := &Tracer{}
	t.SetTransport(port)
	t.SetLevel(level)
	return t
}

// SetTransport replaces the port. A nil port discards output.
func (t *Tracer) SetTransport(port Transport) {
	if port == nil {
		port = discardTransport{}
	}
	t.port = port
}

// Transport returns the current port.
func (t *Tracer) Transport() Transport {
	if t.port == nil {
		return discardTransport{}
	}
	return t.port
}

// SetLevel sets the threshold. Values above LevelDebug are clamped.
// It has no effect on Default() unless built with the tracedyn tag.
func (t *Tracer) SetLevel(l Level) {
	if t.fixed {
		return
	}
	if l > LevelDebug {
		l = LevelDebug
	}
	t.level = l
}

// Level returns the threshold.
func (t *Tracer) Level() Level {
	return t.level
}

// SetHaltFunc replaces the function Fatal calls to stop execution.
// f is called again if it returns. A nil f restores the target default.
func (t *Tracer) SetHaltFunc(f func()) {
	t.halt = f
}

// Enabled reports whether traces of level l are currently output.
func (t *Tracer) Enabled(l Level) bool {
	return l != LevelNoTrace && l <= t.level
}

// Debug outputs a "-D- " trace, only useful while debugging.
func (t *Tracer) Debug(format string, args ...any) {
	t.trace(LevelDebug, tagDebug, format, args)
}

// Info outputs a "-I- " trace showing the execution flow.
func (t *Tracer) Info(format string, args ...any) {
	t.trace(LevelInfo, tagInfo, format, args)
}

// Warning outputs a "-W- " trace for a minor error.
func (t *Tracer) Warning(format string, args ...any) {
	t.trace(LevelWarning, tagWarning, format, args)
}

// Error outputs a "-E- " trace for an error the program may survive.
func (t *Tracer) Error(format string, args ...any) {
	t.trace(LevelError, tagError, format, args)
}

// Fatal outputs a fatal trace and halts. It never returns.
func (t *Tracer) Fatal(format string, args ...any) {
	t.trace(LevelFatal, tagFatal, format, args)
	t.stop()
}

// The WP variants output the formatted text without the level tag, for
// continuation lines.

func (t *Tracer) DebugWP(format string, args ...any)   { t.trace(LevelDebug, "", format, args) }
func (t *Tracer) InfoWP(format string, args ...any)    { t.trace(LevelInfo, "", format, args) }
func (t *Tracer) WarningWP(format string, args ...any) { t.trace(LevelWarning, "", format, args) }
func (t *Tracer) ErrorWP(format string, args ...any)   { t.trace(LevelError, "", format, args) }

// FatalWP outputs an untagged fatal trace and halts. It never returns.
func (t *Tracer) FatalWP(format string, args ...any) {
	t.trace(LevelFatal, "", format, args)
	t.stop()
}

// PutChar writes one character to the port, ignoring errors like the
// formatted output does.
func (t *Tracer) PutChar(c byte) {
	t.Transport().WriteByte(c)
}

// GetChar blocks until a character is received.
func (t *Tracer) GetChar() (byte, error) {
	return t.Transport().ReadByte()
}

// IsRxReady reports whether a character is waiting.
func (t *Tracer) IsRxReady() bool {
	return t.Transport().IsRxReady()
}

func (t *Tracer) trace(l Level, tag, format string, args []any) {
	if t.Enabled(l) {
		t.emit(tag, format, args)
	}
}

func (t *Tracer) emit(tag, format string, args []any) {
	w := portWriter{t.Transport()}
	if tag != "" {
		io.WriteString(w, tag)
	}
	fmt.Fprintf(w, format, args...)
}

func (t *Tracer) printf(format string, args ...any) {
	t.emit("", format, args)
}

func (t *Tracer) stop() {
	halt := t.halt
	if halt == nil {
		halt = defaultHalt
	}
	for {
		halt()
	}
}

// portWriter adapts a Transport to io.Writer.
type portWriter struct {
	port Transport
}

func (w portWriter) Write(p []byte) (int, error) {
	for i, c := range p {
		if err := w.port.WriteByte(c); err != nil {
			return i, err
		}
	}
	return len(p), nil
}

// std is the process-wide tracer behind the package level functions. Its
// threshold stays at CompiledLevel unless built with tracedyn.
var std = &Tracer{port: discardTransport{}, level: CompiledLevel, fixed: !DynamicTraces}

// Default returns the process-wide tracer used by the package level functions.
func Default() *Tracer {
	return std
}

// enabled is constant when DynamicTraces is false, letting the compiler drop
// disabled trace calls.
func enabled(l Level) bool {
	if DynamicTraces {
		return std.Enabled(l)
	}
	return l != LevelNoTrace && l <= CompiledLevel
}

// SetTransport installs the port traces are written to. nil discards them.
func SetTransport(port Transport) {
	std.SetTransport(port)
}

// SetLevel changes the runtime threshold of the package level functions and
// Default(). It does nothing unless built with the tracedyn tag. It must not
// be called concurrently with tracing.
func SetLevel(l Level) {
	std.SetLevel(l)
}

// CurrentLevel returns the threshold the package level functions gate on.
func CurrentLevel() Level {
	if DynamicTraces {
		return std.Level()
	}
	return CompiledLevel
}

// SetHaltFunc replaces the function Fatal calls to stop execution.
func SetHaltFunc(f func()) {
	std.SetHaltFunc(f)
}

// Debug outputs a "-D- " trace when debug traces are enabled.
func Debug(format string, args ...any) {
	if enabled(LevelDebug) {
		std.emit(tagDebug, format, args)
	}
}

// Info outputs a "-I- " trace when info traces are enabled.
func Info(format string, args ...any) {
	if enabled(LevelInfo) {
		std.emit(tagInfo, format, args)
	}
}

// Warning outputs a "-W- " trace when warnings are enabled.
func Warning(format string, args ...any) {
	if enabled(LevelWarning) {
		std.emit(tagWarning, format, args)
	}
}

// Error outputs a "-E- " trace when errors are enabled.
func Error(format string, args ...any) {
	if enabled(LevelError) {
		std.emit(tagError, format, args)
	}
}

// Fatal outputs a fatal trace if enabled and halts. It halts even when every
// trace is disabled, and never returns.
func Fatal(format string, args ...any) {
	if enabled(LevelFatal) {
		std.emit(tagFatal, format, args)
	}
	std.stop()
}

// DebugWP is Debug without the tag.
func DebugWP(format string, args ...any) {
	if enabled(LevelDebug) {
		std.emit("", format, args)
	}
}

// InfoWP is Info without the tag.
func InfoWP(format string, args ...any) {
	if enabled(LevelInfo) {
		std.emit("", format, args)
	}
}

// WarningWP is Warning without the tag.
func WarningWP(format string, args ...any) {
	if enabled(LevelWarning) {
		std.emit("", format, args)
	}
}

// ErrorWP is Error without the tag.
func ErrorWP(format string, args ...any) {
	if enabled(LevelError) {
		std.emit("", format, args)
	}
}

// FatalWP is Fatal without the tag. It never returns.
func FatalWP(format string, args ...any) {
	if enabled(LevelFatal) {
		std.emit("", format, args)
	}
	std.stop()
}

// PutChar writes one character to the trace port.
func PutChar(c byte) {
	std.PutChar(c)
}

// GetChar blocks until a character is received on the trace port.
func GetChar() (byte, error) {
	return std.GetChar()
}

// IsRxReady reports whether a character is waiting on the trace port.
func IsRxReady() bool {
	return std.IsRxReady()
}

// GetInteger reads a decimal number from the console. See Tracer.GetInteger.
func GetInteger() (uint32, error) {
	return std.GetInteger()
}

// GetHexa32 reads a hexadecimal number from the console.
func GetHexa32() (uint32, error) {
	return std.GetHexa32()
}

// DumpFrame writes frame in hexadecimal on one line.
func DumpFrame(frame []byte) {
	std.DumpFrame(frame)
}

// GetIntegerMinMax reads a decimal number within [min, max].
func GetIntegerMinMax(min, max uint32) (uint32, error) {
	return std.GetIntegerMinMax(min, max)
}

// DumpMemory writes buf as rows of hexadecimal and characters, labelled
// from address.
func DumpMemory(buf []byte, address uint32) {
	std.DumpMemory(buf, address)
}
