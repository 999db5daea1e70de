package trace

import (
	"errors"
	"fmt"

	"golang.org/x/exp/constraints"
)

var (
	ErrEmptyInput = errors.New("no digit entered")
	ErrNotANumber = errors.New("not a decimal digit")
	ErrNotHex     = errors.New("not a hexadecimal digit")
	ErrOverflow   = errors.New("number too large")
	ErrOutOfRange = errors.New("number out of range")
)

const maxHexDigits = 8

// GetInteger reads a decimal number from the console. Characters are echoed
// as they are received; the number ends with enter or space.
// A nil error means the value is valid.
func (t *Tracer) GetInteger() (uint32, error) {
	var value uint32
	digits := 0
	for {
		c, err := t.GetChar()
		if err != nil {
			return 0, fmt.Errorf("%w: reading console: %w", ErrPkg, err)
		}
		t.PutChar(c)

		switch {
		case c >= '0' && c <= '9':
			next, ok := accumulate(value, uint32(c-'0'), 10)
			if !ok {
				t.printf("\n\rNumber too large!\n\r")
				return 0, t.drainLine(ErrOverflow)
			}
			value = next
			digits++
		case isTerminator(c) || c == ' ':
			if digits == 0 {
				t.printf("\n\rWrite a number and press ENTER or SPACE!\n\r")
				return 0, ErrEmptyInput
			}
			t.printf("\n\r")
			return value, nil
		default:
			t.printf("\n\r'%c' not a number!\n\r", c)
			return 0, t.drainLine(ErrNotANumber)
		}
	}
}

// GetIntegerMinMax reads a decimal number and fails if it is outside
// [min, max].
func (t *Tracer) GetIntegerMinMax(min, max uint32) (uint32, error) {
	value, err := t.GetInteger()
	if err != nil {
		return 0, err
	}
	if value < min || value > max {
		t.printf("\n\rThe number have to be between %d and %d\n\r", min, max)
		return 0, fmt.Errorf("%w: %d not in [%d, %d]", ErrOutOfRange, value, min, max)
	}
	t.printf("\n\r")
	return value, nil
}

// GetHexa32 reads up to 8 hexadecimal digits from the console, terminated
// by enter.
func (t *Tracer) GetHexa32() (uint32, error) {
	var value uint32
	digits := 0
	for {
		c, err := t.GetChar()
		if err != nil {
			return 0, fmt.Errorf("%w: reading console: %w", ErrPkg, err)
		}
		t.PutChar(c)

		if isTerminator(c) {
			if digits == 0 {
				t.printf("\n\rWrite a hexa number and press ENTER!\n\r")
				return 0, ErrEmptyInput
			}
			t.printf("\n\r")
			return value, nil
		}

		d, ok := hexDigit(c)
		if !ok {
			t.printf("\n\rIt is not a hexa character!\n\r")
			return 0, t.drainLine(ErrNotHex)
		}
		if digits == maxHexDigits {
			t.printf("\n\rNumber too large!\n\r")
			return 0, t.drainLine(ErrOverflow)
		}
		value, _ = accumulate(value, d, 16)
		digits++
	}
}

// drainLine discards input up to the end of the line so the next read starts
// on a fresh one. cause is returned unless the port fails first.
func (t *Tracer) drainLine(cause error) error {
	for {
		c, err := t.GetChar()
		if err != nil {
			return cause
		}
		if isTerminator(c) {
			return cause
		}
	}
}

func isTerminator(c byte) bool {
	return c == '\r' || c == '\n'
}

func hexDigit(c byte) (uint32, bool) {
	switch {
	case c >= '0' && c <= '9':
		return uint32(c - '0'), true
	case c >= 'a' && c <= 'f':
		return uint32(c-'a') + 10, true
	case c >= 'A' && c <= 'F':
		return uint32(c-'A') + 10, true
	default:
		return 0, false
	}
}

// accumulate returns value*base+digit, or false if it does not fit in T.
func accumulate[T constraints.Unsigned](value, digit, base T) (T, bool) {
	limit := ^T(0)
	if value > (limit-digit)/base {
		return 0, false
	}
	return value*base + digit, true
}
