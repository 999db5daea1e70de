//go:build trace_usart0

package trace

const CompiledInterface = USART0
