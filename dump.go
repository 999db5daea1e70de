package trace

const dumpRowSize = 16

// DumpFrame writes the bytes of a frame in hexadecimal on one line.
func (t *Tracer) DumpFrame(frame []byte) {
	for _, b := range frame {
		t.printf("%02X ", b)
	}
	t.printf("\n\r")
}

// DumpMemory writes buf as a hex dump, 16 bytes per row. Each row starts
// with its address, counted from address, and ends with the bytes as
// characters.
func (t *Tracer) DumpMemory(buf []byte, address uint32) {
	for off := 0; off < len(buf); off += dumpRowSize {
		row := buf[off:min(off+dumpRowSize, len(buf))]
		t.printf("0x%04X: ", address+uint32(off))

		for i := 0; i < dumpRowSize; i += 4 {
			for j := i; j < i+4; j++ {
				if j < len(row) {
					t.printf("%02X", row[j])
				} else {
					t.printf("  ")
				}
			}
			t.PutChar(' ')
		}

		for _, b := range row {
			if b < 0x20 || b > 0x7E {
				b = '.'
			}
			t.PutChar(b)
		}
		t.printf("\n\r")
	}
}
