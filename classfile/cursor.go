package classfile

import (
	"encoding/binary"
	"math"
	"unicode/utf8"
)

// Cursor reads big-endian values from an in-memory class file.
//
// The first failed read is recorded and every read after it returns the zero
// value, so a run of reads can be checked once through Err. A failed read
// never moves the position.
type Cursor struct {
	data []byte
	pos  int
	err  error
}

func NewCursor(data []byte) *Cursor {
	return &Cursor{data: data}
}

// Pos is the offset of the next unread byte.
func (c *Cursor) Pos() int { return c.pos }

func (c *Cursor) Len() int { return len(c.data) }

func (c *Cursor) Remaining() int { return len(c.data) - c.pos }

func (c *Cursor) Err() error { return c.err }

// peek returns the next n bytes without consuming them, or records an
// end-of-input error when fewer than n remain.
func (c *Cursor) peek(n int) []byte {
	if c.err != nil {
		return nil
	}
	if n < 0 || n > c.Remaining() {
		c.err = &DecodeError{
			Offset: c.pos,
			Want:   n,
			Have:   c.Remaining(),
			Err:    ErrUnexpectedEndOfInput,
		}
		return nil
	}
	return c.data[c.pos : c.pos+n : c.pos+n]
}

func (c *Cursor) take(n int) []byte {
	b := c.peek(n)
	if b != nil {
		c.pos += n
	}
	return b
}

func (c *Cursor) ReadU1() uint8 {
	b := c.take(1)
	if b == nil {
		return 0
	}
	return b[0]
}

func (c *Cursor) ReadU2() uint16 {
	b := c.take(2)
	if b == nil {
		return 0
	}
	return binary.BigEndian.Uint16(b)
}

func (c *Cursor) ReadU4Bytes() [4]byte {
	var out [4]byte
	if b := c.take(4); b != nil {
		copy(out[:], b)
	}
	return out
}

func (c *Cursor) ReadU4() uint32 {
	b := c.ReadU4Bytes()
	return binary.BigEndian.Uint32(b[:])
}

func (c *Cursor) ReadI32() int32 {
	return int32(c.ReadU4())
}

func (c *Cursor) ReadF32() float32 {
	return math.Float32frombits(c.ReadU4())
}

// readU8 reads an eight byte value as two words, high word first. Both words
// are bounds checked before either is consumed.
func (c *Cursor) readU8() uint64 {
	if c.peek(8) == nil {
		return 0
	}
	high := c.ReadU4()
	low := c.ReadU4()
	return uint64(high)<<32 | uint64(low)
}

func (c *Cursor) ReadI64() int64 {
	return int64(c.readU8())
}

func (c *Cursor) ReadF64() float64 {
	return math.Float64frombits(c.readU8())
}

// ReadBytes returns the next n bytes. The result aliases the cursor's buffer
// and must not be modified.
func (c *Cursor) ReadBytes(n int) []byte {
	return c.take(n)
}

// ReadUtf8 reads n bytes and decodes them as UTF-8 text.
func (c *Cursor) ReadUtf8(n int) string {
	b := c.peek(n)
	if c.err != nil {
		return ""
	}
	if !utf8.Valid(b) {
		c.err = &DecodeError{
			Offset: c.pos,
			Want:   n,
			Err:    ErrInvalidEncoding,
		}
		return ""
	}
	c.pos += n
	return string(b)
}
