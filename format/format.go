package format

import (
	"encoding"
	"fmt"
	"io"

	"github.com/dhamidi/classpool/classfile"
)

type Encoder interface {
	encoding.TextMarshaler
	Encode(cf *classfile.ClassFile) error
}

type options struct {
	file    string
	resolve bool
}

type Option func(*options)

// WithFile names the class file in the output.
func WithFile(name string) Option {
	return func(o *options) { o.file = name }
}

// WithResolve adds the symbolic text each reference resolves to.
func WithResolve(resolve bool) Option {
	return func(o *options) { o.resolve = resolve }
}

func NewEncoder(format string, w io.Writer, opts ...Option) (Encoder, error) {
	switch format {
	case "line":
		return NewLineEncoder(w, opts...), nil
	case "json":
		return NewJSONEncoder(w, opts...), nil
	default:
		return nil, fmt.Errorf("unknown format: %s (expected line or json)", format)
	}
}

func buildOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
