//go:build !tracedyn

package trace

// DynamicTraces is false: traces above CompiledLevel are not compiled in and
// SetLevel does not affect the package level functions.
const DynamicTraces = false
