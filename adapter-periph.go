//go:build !tinygo

package trace

import (
	"fmt"
	"time"

	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/conn/v3/pin"
	"periph.io/x/conn/v3/uart"
	"periph.io/x/host/v3"
)

// hostInit and lookupPin are replaced in tests.
var (
	hostInit = func() error {
		_, err := host.Init()
		return err
	}
	lookupPin = func(name string) (pin.PinFunc, error) {
		p := gpioreg.ByName(name)
		if p == nil {
			return nil, fmt.Errorf("failed to open pin %s", name)
		}
		pf, ok := p.(pin.PinFunc)
		if !ok {
			return nil, fmt.Errorf("pin %s cannot change function", name)
		}
		return pf, nil
	}
)

// Config holds the configuration of the trace port on Linux hosts.
type Config struct {
	PortConfig
	// Device is the serial device node.
	// Defaults to /dev/serial0 for DBGU and /dev/ttyS0..2 for USART0..2.
	Device string
	// TXPin and RXPin are periph.io pin names (e.g. "GPIO14") to mux to
	// their UART function before opening the device.
	// Optional. If not provided, the pins are left as they are.
	TXPin string
	RXPin string
	// ReadTimeout bounds each device read of the receive goroutine.
	// Defaults to 100ms if not provided.
	ReadTimeout time.Duration
}

// DefaultPins returns the Raspberry Pi header pins of each interface,
// for use as Config.TXPin and Config.RXPin.
func DefaultPins(i Interface) (tx, rx string) {
	switch i {
	case DBGU:
		return "GPIO14", "GPIO15"
	case USART0:
		return "GPIO0", "GPIO1"
	case USART1:
		return "GPIO4", "GPIO5"
	case USART2:
		return "GPIO8", "GPIO9"
	default:
		return "", ""
	}
}

func defaultDevice(i Interface) string {
	switch i {
	case USART0:
		return "/dev/ttyS0"
	case USART1:
		return "/dev/ttyS1"
	case USART2:
		return "/dev/ttyS2"
	default:
		return "/dev/serial0"
	}
}

// Configure muxes the trace port pins, opens the serial device and makes it
// the output of the package level traces. A previously configured port is
// closed.
func Configure(c Config) error {
	// 1. Defaults
	c.applyDefaults()
	if c.Device == "" {
		c.Device = defaultDevice(c.Interface)
	}
	if c.ReadTimeout == 0 {
		c.ReadTimeout = 100 * time.Millisecond
	}
	if err := c.validate(); err != nil {
		return err
	}

	// 2. Pins
	if c.TXPin != "" || c.RXPin != "" {
		if err := hostInit(); err != nil {
			return fmt.Errorf("failed to initialize periph.io host: %w", err)
		}
		if err := muxPin(c.TXPin, uart.TX); err != nil {
			return err
		}
		if err := muxPin(c.RXPin, uart.RX); err != nil {
			return err
		}
	}

	// 3. Serial device
	port, err := openSerial(c)
	if err != nil {
		return err
	}

	if err := Close(); err != nil {
		logger.Warn("failed to close previous trace port: " + err.Error())
	}
	std.SetTransport(port)
	logger.Info(fmt.Sprintf("%s configured on %s, %d baud, parity %s", c.Interface, c.Device, c.BaudRate, c.Parity))
	return nil
}

// muxPin switches the named pin to the function fn, in whichever bus
// specific form the pin supports (e.g. UART0_TX for UART_TX).
func muxPin(name string, fn pin.Func) error {
	if name == "" {
		return nil
	}
	p, err := lookupPin(name)
	if err != nil {
		return err
	}
	for _, f := range p.SupportedFuncs() {
		if f != fn && f.Generalize() != fn {
			continue
		}
		if err := p.SetFunc(f); err != nil {
			return fmt.Errorf("failed to set pin %s to %s: %w", name, f, err)
		}
		logger.Debug("pin " + name + " set to " + string(f))
		return nil
	}
	return fmt.Errorf("pin %s has no %s function", name, fn)
}
