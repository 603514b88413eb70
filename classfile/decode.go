package classfile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/tliron/commonlog"
)

var log = commonlog.GetLogger("classpool.classfile")

type Header struct {
	MinorVersion      uint16
	MajorVersion      uint16
	ConstantPoolCount uint16
}

// JavaRelease names the Java release matching the major version.
func (h Header) JavaRelease() string {
	return JavaRelease(h.MajorVersion)
}

// ClassFile holds the parts of a class file the decoder understands.
type ClassFile struct {
	Header       Header
	ConstantPool *ConstantPool
}

func (cf *ClassFile) MinorVersion() uint16 { return cf.Header.MinorVersion }
func (cf *ClassFile) MajorVersion() uint16 { return cf.Header.MajorVersion }

// Decoder decodes the header and constant pool of a single class file.
// A Decoder is used for one call to Decode.
type Decoder struct {
	name string
	cur  *Cursor
	log  commonlog.Logger
}

// NewDecoder returns a decoder over data. The name identifies the input in
// errors and log messages.
func NewDecoder(name string, data []byte) *Decoder {
	return &Decoder{
		name: name,
		cur:  NewCursor(data),
		log:  commonlog.NewKeyValueLogger(log, "file", name),
	}
}

// Offset is the byte offset just past what has been decoded so far. After a
// successful Decode it is where the access flags begin.
func (d *Decoder) Offset() int { return d.cur.Pos() }

func Decode(name string, data []byte) (*ClassFile, error) {
	return NewDecoder(name, data).Decode()
}

func DecodeReader(name string, r io.Reader) (*ClassFile, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read class file %s: %w", name, err)
	}
	return Decode(name, data)
}

func DecodeFile(path string) (*ClassFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open class file: %w", err)
	}
	return Decode(path, data)
}

// Decode reads the header and then the constant pool. It returns either a
// complete result or an error, never both.
func (d *Decoder) Decode() (*ClassFile, error) {
	header, err := d.decodeHeader()
	if err != nil {
		return nil, err
	}
	d.log.Debugf("version %d.%d, constant pool count %d",
		header.MajorVersion, header.MinorVersion, header.ConstantPoolCount)

	cp, err := d.decodeConstantPool(header.ConstantPoolCount)
	if err != nil {
		return nil, err
	}
	d.log.Debugf("decoded %d constants, %d bytes consumed", cp.Len(), d.cur.Pos())

	return &ClassFile{Header: header, ConstantPool: cp}, nil
}

func (d *Decoder) decodeHeader() (Header, error) {
	magic := d.cur.ReadU4Bytes()
	if err := d.cur.Err(); err != nil {
		return Header{}, d.wrap(err, 0, 0)
	}
	if magic != magicBytes {
		return Header{}, &DecodeError{
			File:     d.name,
			Offset:   0,
			Observed: bytes.Clone(magic[:]),
			Err:      ErrInvalidMagicNumber,
		}
	}

	h := Header{
		MinorVersion:      d.cur.ReadU2(),
		MajorVersion:      d.cur.ReadU2(),
		ConstantPoolCount: d.cur.ReadU2(),
	}
	if err := d.cur.Err(); err != nil {
		return Header{}, d.wrap(err, 0, 0)
	}
	return h, nil
}

func (d *Decoder) decodeConstantPool(count uint16) (*ConstantPool, error) {
	cp := newConstantPool(count)
	for i := uint16(1); i < count; {
		start := d.cur.Pos()
		entry, err := d.decodeConstant(i)
		if err != nil {
			return nil, err
		}
		if d.log.AllowLevel(commonlog.Debug) {
			d.log.Debugf("#%d %s at offset %d", i, entry.Tag(), start)
		}
		cp.set(i, entry)

		if entry.Tag().IsWide() {
			i += 2
		} else {
			i++
		}
		// A wide entry at index 0xFFFE wraps the counter.
		if i == 0 {
			break
		}
	}
	return cp, nil
}

func (d *Decoder) decodeConstant(slot uint16) (ConstantPoolEntry, error) {
	tagOffset := d.cur.Pos()
	tag := ConstantTag(d.cur.ReadU1())
	if err := d.cur.Err(); err != nil {
		return nil, d.wrap(err, slot, 0)
	}

	var entry ConstantPoolEntry
	switch tag {
	case ConstantUtf8:
		length := d.cur.ReadU2()
		entry = &ConstantUtf8Info{Value: d.cur.ReadUtf8(int(length))}

	case ConstantInteger:
		entry = &ConstantIntegerInfo{Value: d.cur.ReadI32()}

	case ConstantFloat:
		entry = &ConstantFloatInfo{Value: d.cur.ReadF32()}

	case ConstantLong:
		entry = &ConstantLongInfo{Value: d.cur.ReadI64()}

	case ConstantDouble:
		entry = &ConstantDoubleInfo{Value: d.cur.ReadF64()}

	case ConstantClass:
		entry = &ConstantClassInfo{NameIndex: d.cur.ReadU2()}

	case ConstantString:
		entry = &ConstantStringInfo{StringIndex: d.cur.ReadU2()}

	case ConstantFieldref:
		entry = &ConstantFieldrefInfo{
			ClassIndex:       d.cur.ReadU2(),
			NameAndTypeIndex: d.cur.ReadU2(),
		}

	case ConstantMethodref:
		entry = &ConstantMethodrefInfo{
			ClassIndex:       d.cur.ReadU2(),
			NameAndTypeIndex: d.cur.ReadU2(),
		}

	case ConstantInterfaceMethodref:
		entry = &ConstantInterfaceMethodrefInfo{
			ClassIndex:       d.cur.ReadU2(),
			NameAndTypeIndex: d.cur.ReadU2(),
		}

	case ConstantNameAndType:
		entry = &ConstantNameAndTypeInfo{
			NameIndex:       d.cur.ReadU2(),
			DescriptorIndex: d.cur.ReadU2(),
		}

	default:
		return nil, &DecodeError{
			File:   d.name,
			Offset: tagOffset,
			Slot:   slot,
			Tag:    tag,
			Err:    ErrUnsupportedConstantPoolTag,
		}
	}

	if err := d.cur.Err(); err != nil {
		return nil, d.wrap(err, slot, tag)
	}
	return entry, nil
}

// wrap attaches the file name and constant pool context to a cursor error.
func (d *Decoder) wrap(err error, slot uint16, tag ConstantTag) error {
	var de *DecodeError
	if !errors.As(err, &de) {
		return fmt.Errorf("%s: %w", d.name, err)
	}
	out := *de
	out.File = d.name
	out.Slot = slot
	out.Tag = tag
	return &out
}
