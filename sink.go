package klib

import "io"

// sink is the destination abstraction of the formatting engine. Conversions
// emit bytes one at a time; pos reports the logical number of bytes emitted,
// which for bounded sinks can exceed the number actually stored.
type sink interface {
	emit(c byte) error
	pos() int
}

// streamSink forwards each byte to the underlying character device as it is
// emitted. It has no storage and fails only if the device does.
type streamSink struct {
	w io.ByteWriter
	n int
}

func (s *streamSink) emit(c byte) error {
	if err := s.w.WriteByte(c); err != nil {
		return err
	}
	s.n++
	return nil
}

func (s *streamSink) pos() int { return s.n }

// growSink accumulates bytes into a growable buffer; it never truncates.
type growSink struct {
	buf []byte
}

func (s *growSink) emit(c byte) error {
	s.buf = append(s.buf, c)
	return nil
}

func (s *growSink) pos() int { return len(s.buf) }

// boundedSink records into a caller-owned fixed buffer. A byte is stored only
// while one byte of headroom remains for the terminator; the logical position
// advances either way, so after formatting pos is the length the output would
// have had without truncation. A zero-capacity sink never touches the buffer
// and only counts.
type boundedSink struct {
	buf []byte
	n   int
}

func (s *boundedSink) emit(c byte) error {
	if s.n < len(s.buf)-1 {
		s.buf[s.n] = c
	}
	s.n++
	return nil
}

func (s *boundedSink) pos() int { return s.n }

// finish writes the NUL terminator at min(pos, cap-1). The buffer is always
// terminated on return regardless of truncation. Safe on zero capacity.
func (s *boundedSink) finish() {
	if len(s.buf) == 0 {
		return
	}
	end := s.n
	if end > len(s.buf)-1 {
		end = len(s.buf) - 1
	}
	s.buf[end] = 0
}
