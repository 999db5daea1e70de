//go:build tracelevel_warning

package trace

const CompiledLevel = LevelWarning
