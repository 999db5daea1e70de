//go:build tracelevel_none

package trace

const CompiledLevel = LevelNoTrace
