package klib

// maxDigits holds a 64-bit value in the smallest supported radix. 20 decimal
// digits cover MaxUint64; one spare slot keeps the bound obvious.
const maxDigits = 21

// emitInt renders v in decimal with a leading '-' when negative.
func emitInt(s sink, v int64) error {
	u := uint64(v)
	if v < 0 {
		if err := s.emit('-'); err != nil {
			return err
		}
		u = -u
	}
	return emitUint(s, u, 10)
}

// emitUint renders v in the given radix, most-significant digit first, with
// lower-case digits above 9. Zero renders as a single '0'. Digits accumulate
// least-significant first in a local buffer and are emitted in reverse, which
// matches the output of the recursive formulation digit for digit.
func emitUint(s sink, v, radix uint64) error {
	var buf [maxDigits]byte
	i := 0
	for {
		d := byte(v % radix)
		if d < 10 {
			buf[i] = '0' + d
		} else {
			buf[i] = 'a' + d - 10
		}
		i++
		v /= radix
		if v == 0 {
			break
		}
	}
	for i--; i >= 0; i-- {
		if err := s.emit(buf[i]); err != nil {
			return err
		}
	}
	return nil
}
