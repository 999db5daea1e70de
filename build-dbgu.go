//go:build !trace_usart0 && !trace_usart1 && !trace_usart2

package trace

// CompiledInterface is the trace port selected at build time with one of the
// trace_usart* tags. The debug unit is used otherwise.
const CompiledInterface = DBGU
