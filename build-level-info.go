//go:build !tracelevel_none && !tracelevel_fatal && !tracelevel_error && !tracelevel_warning && !tracelevel_debug

package trace

// CompiledLevel is the trace threshold selected at build time with one of
// the tracelevel_* tags. All traces except debug ones are output by default.
const CompiledLevel = LevelInfo
