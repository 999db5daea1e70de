package trace

import (
	"errors"
	"io"
	"testing"
)

func TestGetInteger(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    uint32
		wantErr error
	}{
		{"decimal", "123\n", 123, nil},
		{"carriage return", "8\r", 8, nil},
		{"space terminated", "42 ", 42, nil},
		{"leading zeros", "007\n", 7, nil},
		{"max uint32", "4294967295\n", 4294967295, nil},
		{"overflow", "4294967296\n", 0, ErrOverflow},
		{"letter", "12a\n", 0, ErrNotANumber},
		{"sign", "-1\n", 0, ErrNotANumber},
		{"empty line", "\n", 0, ErrEmptyInput},
		{"no input", "", 0, io.EOF},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := NewTracer(newMockPort(tt.input), LevelNoTrace)
			got, err := tr.GetInteger()
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Expected error %v, got %v", tt.wantErr, err)
			}
			if got != tt.want {
				t.Errorf("Expected %d, got %d", tt.want, got)
			}
		})
	}
}

func TestGetIntegerEchoes(t *testing.T) {
	port := newMockPort("123\n")
	tr := NewTracer(port, LevelNoTrace)

	if _, err := tr.GetInteger(); err != nil {
		t.Fatalf("GetInteger failed: %v", err)
	}
	if got := port.output(); got != "123\n\n\r" {
		t.Errorf("Expected echo and new line, got %q", got)
	}
}

func TestGetIntegerReportsBadCharacter(t *testing.T) {
	port := newMockPort("12a\n")
	tr := NewTracer(port, LevelNoTrace)

	tr.GetInteger()
	if got := port.output(); got != "12a\n\r'a' not a number!\n\r" {
		t.Errorf("Unexpected console output %q", got)
	}
}

func TestGetIntegerDrainsRejectedLine(t *testing.T) {
	port := newMockPort("12a34\n7\n")
	tr := NewTracer(port, LevelNoTrace)

	if _, err := tr.GetInteger(); !errors.Is(err, ErrNotANumber) {
		t.Fatalf("Expected ErrNotANumber, got %v", err)
	}
	got, err := tr.GetInteger()
	if err != nil || got != 7 {
		t.Fatalf("Expected the next line to parse as 7, got %d, %v", got, err)
	}
	if port.remaining() != 0 {
		t.Errorf("Expected all input consumed, %d bytes left", port.remaining())
	}
}

func TestGetIntegerMinMax(t *testing.T) {
	tests := []struct {
		input   string
		want    uint32
		wantErr error
	}{
		{"15\n", 0, ErrOutOfRange},
		{"7\n", 7, nil},
		{"0\n", 0, nil},
		{"10\n", 10, nil},
		{"11\n", 0, ErrOutOfRange},
		{"x\n", 0, ErrNotANumber},
	}
	for _, tt := range tests {
		tr := NewTracer(newMockPort(tt.input), LevelNoTrace)
		got, err := tr.GetIntegerMinMax(0, 10)
		if !errors.Is(err, tt.wantErr) {
			t.Errorf("%q: expected error %v, got %v", tt.input, tt.wantErr, err)
			continue
		}
		if got != tt.want {
			t.Errorf("%q: expected %d, got %d", tt.input, tt.want, got)
		}
	}
}

func TestGetIntegerMinMaxLowerBound(t *testing.T) {
	port := newMockPort("4\n")
	tr := NewTracer(port, LevelNoTrace)

	if _, err := tr.GetIntegerMinMax(5, 9); !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("Expected ErrOutOfRange, got %v", err)
	}
	want := "4\n\n\r\n\rThe number have to be between 5 and 9\n\r"
	if got := port.output(); got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}

func TestGetHexa32(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    uint32
		wantErr error
	}{
		{"upper case", "1A2B3C4D\n", 0x1A2B3C4D, nil},
		{"lower case", "deadbeef\r", 0xDEADBEEF, nil},
		{"short", "ff\n", 0xFF, nil},
		{"not hex", "ZZ\n", 0, ErrNotHex},
		{"prefix", "0x10\n", 0, ErrNotHex},
		{"nine digits", "123456789\n", 0, ErrOverflow},
		{"empty line", "\n", 0, ErrEmptyInput},
		{"no terminator", "12", 0, io.EOF},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := NewTracer(newMockPort(tt.input), LevelNoTrace)
			got, err := tr.GetHexa32()
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Expected error %v, got %v", tt.wantErr, err)
			}
			if got != tt.want {
				t.Errorf("Expected 0x%X, got 0x%X", tt.want, got)
			}
		})
	}
}

func TestPackageLevelConsole(t *testing.T) {
	SetTransport(newMockPort("99\nbeef\n"))
	t.Cleanup(func() { SetTransport(nil) })

	if v, err := GetInteger(); err != nil || v != 99 {
		t.Errorf("GetInteger: got %d, %v", v, err)
	}
	if v, err := GetHexa32(); err != nil || v != 0xBEEF {
		t.Errorf("GetHexa32: got 0x%X, %v", v, err)
	}
}

func TestAccumulate(t *testing.T) {
	if v, ok := accumulate[uint8](25, 5, 10); !ok || v != 255 {
		t.Errorf("Expected 255, got %d, %v", v, ok)
	}
	if _, ok := accumulate[uint8](25, 6, 10); ok {
		t.Error("Expected uint8 overflow to be reported")
	}
	if v, ok := accumulate[uint16](0xFFF, 0xF, 16); !ok || v != 0xFFFF {
		t.Errorf("Expected 0xFFFF, got 0x%X, %v", v, ok)
	}
}
