//go:build tracelevel_debug

package trace

const CompiledLevel = LevelDebug
