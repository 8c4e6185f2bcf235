package klib

import "io"

// Console is the stdio veneer over a character device. The device is anything
// that accepts one byte at a time; on the deployed target that is the UART
// data register, in tests a bytes.Buffer. A Console holds no state of its own
// beyond the device, so it is safe to keep one per output channel for the
// life of the program.
type Console struct {
	w io.ByteWriter
}

// NewConsole returns a console writing to w.
func NewConsole(w io.ByteWriter) *Console {
	return &Console{w: w}
}

// Printf renders format to the device and returns the number of bytes
// written.
func (c *Console) Printf(format string, args ...any) (int, error) {
	return Fprintf(c.w, format, args...)
}

// Puts writes s followed by a newline.
func (c *Console) Puts(s string) error {
	for i := 0; i < len(s); i++ {
		if err := c.w.WriteByte(s[i]); err != nil {
			return err
		}
	}
	return c.w.WriteByte('\n')
}

// Putchar writes a single byte.
func (c *Console) Putchar(ch byte) error {
	return c.w.WriteByte(ch)
}
