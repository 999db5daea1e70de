//go:build tracelevel_fatal

package trace

const CompiledLevel = LevelFatal
