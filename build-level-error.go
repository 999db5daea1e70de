//go:build tracelevel_error

package trace

const CompiledLevel = LevelError
