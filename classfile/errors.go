package classfile

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidMagicNumber         = errors.New("invalid magic number")
	ErrUnexpectedEndOfInput       = errors.New("unexpected end of input")
	ErrUnsupportedConstantPoolTag = errors.New("unsupported constant pool tag")
	ErrInvalidEncoding            = errors.New("invalid utf-8 encoding")
)

// DecodeError describes where decoding stopped. Err is always one of the
// package's sentinel errors, so callers can match with errors.Is.
type DecodeError struct {
	File   string
	Offset int
	// Slot is the logical constant pool index being decoded, or 0 while the
	// header is read.
	Slot uint16
	Tag  ConstantTag
	// Observed holds the bytes that failed a comparison, such as a bad magic.
	Observed []byte
	// Want and Have are the byte counts of a short read.
	Want int
	Have int
	Err  error
}

func (e *DecodeError) Error() string {
	var sb strings.Builder
	if e.File != "" {
		sb.WriteString(e.File)
		sb.WriteString(": ")
	}
	sb.WriteString(e.Err.Error())

	switch {
	case errors.Is(e.Err, ErrInvalidMagicNumber):
		fmt.Fprintf(&sb, ": got % X, want CA FE BA BE", e.Observed)
	case errors.Is(e.Err, ErrUnsupportedConstantPoolTag):
		fmt.Fprintf(&sb, " %d", uint8(e.Tag))
		if name, ok := tagNames[e.Tag]; ok {
			fmt.Fprintf(&sb, " (%s)", name)
		}
	case errors.Is(e.Err, ErrUnexpectedEndOfInput):
		fmt.Fprintf(&sb, ": need %d bytes, %d left", e.Want, e.Have)
	}

	if e.Slot != 0 {
		fmt.Fprintf(&sb, " at constant pool index %d", e.Slot)
	}
	fmt.Fprintf(&sb, " (byte offset %d)", e.Offset)
	return sb.String()
}

func (e *DecodeError) Unwrap() error { return e.Err }
