package format

import (
	"fmt"
	"io"
	"strings"

	"github.com/dhamidi/classpool/classfile"
)

// LineEncoder writes one tab-separated record per line:
//
//	file	<name>
//	version	<major>	<minor>	<java release or ->
//	constants	<constant_pool_count>	<entries>
//	const	<index>	<tag>	<value>[	<resolved>]
type LineEncoder struct {
	w    io.Writer
	opts options
	cf   *classfile.ClassFile
}

func NewLineEncoder(w io.Writer, opts ...Option) *LineEncoder {
	return &LineEncoder{w: w, opts: buildOptions(opts)}
}

func (e *LineEncoder) Encode(cf *classfile.ClassFile) error {
	e.cf = cf
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *LineEncoder) MarshalText() ([]byte, error) {
	if e.cf == nil {
		return nil, fmt.Errorf("no class file to encode")
	}
	var sb strings.Builder
	h := e.cf.Header
	cp := e.cf.ConstantPool

	if e.opts.file != "" {
		fmt.Fprintf(&sb, "file\t%s\n", e.opts.file)
	}
	release := h.JavaRelease()
	if release == "" {
		release = "-"
	}
	fmt.Fprintf(&sb, "version\t%d\t%d\t%s\n", h.MajorVersion, h.MinorVersion, release)
	fmt.Fprintf(&sb, "constants\t%d\t%d\n", cp.Count(), cp.Len())

	resolver := resolvedText{cp: cp}
	for index, entry := range cp.All() {
		fmt.Fprintf(&sb, "const\t%d\t%s\t%s", index, entry.Tag(), classfile.Visit[string](entry, valueText{}))
		if e.opts.resolve {
			if resolved := classfile.Visit[string](entry, resolver); resolved != "" {
				fmt.Fprintf(&sb, "\t%s", resolved)
			}
		}
		sb.WriteByte('\n')
	}

	return []byte(sb.String()), nil
}
