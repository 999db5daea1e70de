package trace

import (
	"errors"
	"fmt"
)

var (
	// ErrPkg is wrapped by configuration and parse errors of this package.
	ErrPkg = errors.New("trace")
	// ErrNotConfigured is returned by reads before a port is configured.
	ErrNotConfigured = errors.New("trace transport not configured")
	// ErrUnsupportedInterface is returned when the target lacks the peripheral.
	ErrUnsupportedInterface = errors.New("trace interface not available on this target")
)

// Transport is the character-level serial link traces are written to and
// console input is read from.
type Transport interface {
	// WriteByte sends one character.
	WriteByte(c byte) error
	// ReadByte blocks until one character has been received.
	ReadByte() (byte, error)
	// IsRxReady reports whether a character is waiting, without blocking.
	IsRxReady() bool
}

// Interface selects the serial peripheral carrying the traces.
type Interface uint8

const (
	// InterfaceDefault resolves to CompiledInterface.
	InterfaceDefault Interface = iota
	// DBGU is the dedicated debug unit.
	DBGU
	USART0
	USART1
	USART2
)

func (i Interface) String() string {
	switch i {
	case InterfaceDefault:
		return "default"
	case DBGU:
		return "DBGU"
	case USART0:
		return "USART0"
	case USART1:
		return "USART1"
	case USART2:
		return "USART2"
	default:
		return fmt.Sprintf("Interface(%d)", uint8(i))
	}
}

// Parity is the character framing parity, the DBGU "mode".
type Parity uint8

const (
	// ParityNone sends no parity bit.
	ParityNone Parity = iota
	// ParityEven sets the parity bit for an even count of ones.
	ParityEven
	// ParityOdd sets the parity bit for an odd count of ones.
	ParityOdd
	// ParityMark always sends a 1 parity bit.
	ParityMark
	// ParitySpace always sends a 0 parity bit.
	ParitySpace
)

func (p Parity) String() string {
	switch p {
	case ParityNone:
		return "none"
	case ParityEven:
		return "even"
	case ParityOdd:
		return "odd"
	case ParityMark:
		return "mark"
	case ParitySpace:
		return "space"
	default:
		return "unknown"
	}
}

// DefaultBaudRate is the line speed used when PortConfig.BaudRate is zero.
const DefaultBaudRate = 115200

// PortConfig holds the settings shared by every target.
type PortConfig struct {
	// Interface is the peripheral to use.
	// Defaults to CompiledInterface if not provided.
	Interface Interface
	// BaudRate is the line speed in bits per second.
	// Defaults to 115200 if not provided.
	BaudRate uint32
	// Parity sets the framing parity.
	// Defaults to ParityNone.
	Parity Parity
	// MasterClock is the peripheral clock in Hz. Optional.
	// When set, the baud rate divisor MasterClock/(16*BaudRate) must fit
	// the 16-bit clock divider.
	MasterClock uint32
}

func (c *PortConfig) applyDefaults() {
	if c.Interface == InterfaceDefault {
		c.Interface = CompiledInterface
	}
	if c.BaudRate == 0 {
		c.BaudRate = DefaultBaudRate
	}
}

func (c PortConfig) validate() error {
	switch c.Interface {
	case DBGU, USART0, USART1, USART2:
	default:
		return fmt.Errorf("%w: unknown interface %s", ErrPkg, c.Interface)
	}
	if c.BaudRate == 0 {
		return fmt.Errorf("%w: baud rate must be set", ErrPkg)
	}
	if c.Parity > ParitySpace {
		return fmt.Errorf("%w: unknown parity %d", ErrPkg, c.Parity)
	}
	if c.MasterClock != 0 {
		cd := uint64(c.MasterClock) / (16 * uint64(c.BaudRate))
		if cd == 0 || cd > 0xFFFF {
			return fmt.Errorf("%w: baud rate %d not reachable from %d Hz master clock", ErrPkg, c.BaudRate, c.MasterClock)
		}
	}
	return nil
}

// discardTransport is installed until the trace port is configured.
type discardTransport struct{}

func (discardTransport) WriteByte(byte) error    { return nil }
func (discardTransport) ReadByte() (byte, error) { return 0, ErrNotConfigured }
func (discardTransport) IsRxReady() bool         { return false }
