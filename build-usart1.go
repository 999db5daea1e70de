//go:build trace_usart1

package trace

const CompiledInterface = USART1
