//go:build !tinygo

package trace

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/tarm/serial"
)

// openPort is replaced in tests.
var openPort = func(c *serial.Config) (io.ReadWriteCloser, error) {
	return serial.OpenPort(c)
}

// rxBufferSize is the number of received characters held for ReadByte.
const rxBufferSize = 256

// serialTransport serves a serial device through a receive goroutine, so
// IsRxReady never waits on the device. The device is opened with a read
// timeout; an empty timed out read surfaces as io.EOF and is retried.
type serialTransport struct {
	rw   io.ReadWriter
	tx   [1]byte
	rx   chan byte
	errc chan error
	done chan struct{}
	err  error
	once sync.Once
}

func newSerialTransport(rw io.ReadWriter) *serialTransport {
	s := &serialTransport{
		rw:   rw,
		rx:   make(chan byte, rxBufferSize),
		errc: make(chan error, 1),
		done: make(chan struct{}),
	}
	go s.receive()
	return s
}

func openSerial(c Config) (*serialTransport, error) {
	sc := &serial.Config{
		Name:        c.Device,
		Baud:        int(c.BaudRate),
		ReadTimeout: c.ReadTimeout,
		Size:        8,
		Parity:      serialParity(c.Parity),
		StopBits:    serial.Stop1,
	}
	port, err := openPort(sc)
	if err != nil {
		return nil, fmt.Errorf("failed to open serial port %s: %w", c.Device, err)
	}
	return newSerialTransport(port), nil
}

func serialParity(p Parity) serial.Parity {
	switch p {
	case ParityEven:
		return serial.ParityEven
	case ParityOdd:
		return serial.ParityOdd
	case ParityMark:
		return serial.ParityMark
	case ParitySpace:
		return serial.ParitySpace
	default:
		return serial.ParityNone
	}
}

func (s *serialTransport) WriteByte(c byte) error {
	s.tx[0] = c
	_, err := s.rw.Write(s.tx[:])
	return err
}

// receive copies device input into s.rx until Close or a read error.
func (s *serialTransport) receive() {
	var buf [64]byte
	for {
		n, err := s.rw.Read(buf[:])
		for _, c := range buf[:n] {
			select {
			case s.rx <- c:
			case <-s.done:
				return
			}
		}
		select {
		case <-s.done:
			return
		default:
		}
		if err != nil && !errors.Is(err, io.EOF) {
			s.errc <- err
			return
		}
	}
}

// IsRxReady reports whether a received character is buffered.
func (s *serialTransport) IsRxReady() bool {
	return len(s.rx) > 0
}

// ReadByte blocks until a character arrives. Characters received before a
// read error are returned before the error.
func (s *serialTransport) ReadByte() (byte, error) {
	for {
		select {
		case c := <-s.rx:
			return c, nil
		default:
		}
		if s.err != nil {
			return 0, s.err
		}
		select {
		case c := <-s.rx:
			return c, nil
		case err := <-s.errc:
			s.err = fmt.Errorf("serial read: %w", err)
		case <-s.done:
			return 0, fmt.Errorf("serial read: %w", os.ErrClosed)
		}
	}
}

// Close stops the receive goroutine and closes the device.
func (s *serialTransport) Close() error {
	var err error
	s.once.Do(func() {
		close(s.done)
		if c, ok := s.rw.(io.Closer); ok {
			err = c.Close()
		}
	})
	return err
}
