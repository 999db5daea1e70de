//go:build tracedyn

package trace

// DynamicTraces makes the package level functions gate on the runtime
// threshold set with SetLevel.
const DynamicTraces = true
