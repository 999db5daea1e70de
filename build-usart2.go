//go:build trace_usart2

package trace

const CompiledInterface = USART2
