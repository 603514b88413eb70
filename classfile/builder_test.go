package classfile

import (
	"encoding/binary"
	"math"
)

// classBytes assembles class file bytes for tests.
type classBytes struct {
	buf []byte
}

func newClassBytes(minor, major, cpCount uint16) *classBytes {
	b := &classBytes{buf: []byte{0xCA, 0xFE, 0xBA, 0xBE}}
	return b.u2(minor).u2(major).u2(cpCount)
}

func (b *classBytes) u1(v uint8) *classBytes {
	b.buf = append(b.buf, v)
	return b
}

func (b *classBytes) u2(v uint16) *classBytes {
	b.buf = binary.BigEndian.AppendUint16(b.buf, v)
	return b
}

func (b *classBytes) u4(v uint32) *classBytes {
	b.buf = binary.BigEndian.AppendUint32(b.buf, v)
	return b
}

func (b *classBytes) raw(p ...byte) *classBytes {
	b.buf = append(b.buf, p...)
	return b
}

func (b *classBytes) utf8(s string) *classBytes {
	return b.u1(uint8(ConstantUtf8)).u2(uint16(len(s))).raw([]byte(s)...)
}

func (b *classBytes) integer(v int32) *classBytes {
	return b.u1(uint8(ConstantInteger)).u4(uint32(v))
}

func (b *classBytes) float(v float32) *classBytes {
	return b.u1(uint8(ConstantFloat)).u4(math.Float32bits(v))
}

func (b *classBytes) long(v int64) *classBytes {
	return b.u1(uint8(ConstantLong)).u4(uint32(uint64(v) >> 32)).u4(uint32(v))
}

func (b *classBytes) double(v float64) *classBytes {
	bits := math.Float64bits(v)
	return b.u1(uint8(ConstantDouble)).u4(uint32(bits >> 32)).u4(uint32(bits))
}

func (b *classBytes) class(nameIndex uint16) *classBytes {
	return b.u1(uint8(ConstantClass)).u2(nameIndex)
}

func (b *classBytes) str(utf8Index uint16) *classBytes {
	return b.u1(uint8(ConstantString)).u2(utf8Index)
}

func (b *classBytes) ref(tag ConstantTag, classIndex, nameAndTypeIndex uint16) *classBytes {
	return b.u1(uint8(tag)).u2(classIndex).u2(nameAndTypeIndex)
}

func (b *classBytes) nameAndType(nameIndex, descriptorIndex uint16) *classBytes {
	return b.u1(uint8(ConstantNameAndType)).u2(nameIndex).u2(descriptorIndex)
}

func (b *classBytes) bytes() []byte {
	return b.buf
}

// helloWorld is the constant pool of a small class with one field, a method
// reference, a string literal and both wide kinds.
func helloWorld() *classBytes {
	return newClassBytes(0, 52, 20).
		ref(ConstantMethodref, 2, 3).         // #1
		class(4).                             // #2
		nameAndType(5, 6).                    // #3
		utf8("java/lang/Object").             // #4
		utf8("<init>").                       // #5
		utf8("()V").                          // #6
		ref(ConstantFieldref, 8, 9).          // #7
		class(10).                            // #8
		nameAndType(11, 12).                  // #9
		utf8("Hello").                        // #10
		utf8("count").                        // #11
		utf8("J").                            // #12
		long(1 << 40).                        // #13, #14
		str(16).                              // #15
		utf8("héllo, wörld").                 // #16
		double(math.Pi).                      // #17, #18
		ref(ConstantInterfaceMethodref, 2, 3) // #19
}
