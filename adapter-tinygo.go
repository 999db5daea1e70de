//go:build tinygo

package trace

import (
	"fmt"
	"machine"
)

// Config holds the configuration of the trace port on TinyGo targets.
//
// DBGU selects machine.DefaultUART. On most boards, the RP2040 and RP2350
// included, that is UART0, so DBGU and USART0 drive the same peripheral.
type Config struct {
	PortConfig
	// TX and RX are the UART pins.
	// If both are zero the board's default pins for the UART are used.
	TX machine.Pin
	RX machine.Pin
}

type uartDevice interface {
	Configure(machine.UARTConfig) error
	WriteByte(byte) error
	ReadByte() (byte, error)
	Buffered() int
}

type formatSetter interface {
	SetFormat(databits, stopbits uint8, parity machine.UARTParity) error
}

func uartFor(i Interface) (uartDevice, error) {
	switch i {
	case DBGU:
		// Usually aliases UART0.
		return machine.DefaultUART, nil
	case USART0:
		return machine.UART0, nil
	case USART1:
		return machine.UART1, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedInterface, i)
	}
}

// uartTransport polls a machine UART.
type uartTransport struct {
	dev uartDevice
}

func (u *uartTransport) WriteByte(c byte) error { return u.dev.WriteByte(c) }
func (u *uartTransport) IsRxReady() bool        { return u.dev.Buffered() > 0 }

// ReadByte busy-waits until the receive buffer holds a character.
func (u *uartTransport) ReadByte() (byte, error) {
	for u.dev.Buffered() == 0 {
	}
	return u.dev.ReadByte()
}

// Configure sets up the UART selected by c and makes it the output of the
// package level traces.
func Configure(c Config) error {
	c.applyDefaults()
	if err := c.validate(); err != nil {
		return err
	}

	dev, err := uartFor(c.Interface)
	if err != nil {
		return err
	}
	err = dev.Configure(machine.UARTConfig{
		BaudRate: c.BaudRate,
		TX:       c.TX,
		RX:       c.RX,
	})
	if err != nil {
		return fmt.Errorf("failed to configure %s: %w", c.Interface, err)
	}

	if c.Parity != ParityNone {
		fs, ok := dev.(formatSetter)
		if !ok {
			return fmt.Errorf("%w: parity not supported on %s", ErrPkg, c.Interface)
		}
		var p machine.UARTParity
		switch c.Parity {
		case ParityEven:
			p = machine.ParityEven
		case ParityOdd:
			p = machine.ParityOdd
		default:
			return fmt.Errorf("%w: %s parity not supported", ErrPkg, c.Parity)
		}
		if err := fs.SetFormat(8, 1, p); err != nil {
			return fmt.Errorf("failed to set %s format: %w", c.Interface, err)
		}
	}

	std.SetTransport(&uartTransport{dev: dev})
	logger.Info(c.Interface.String() + " configured")
	return nil
}
