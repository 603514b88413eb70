package format

import (
	"fmt"
	"math"
	"strconv"

	"github.com/dhamidi/classpool/classfile"
)

// valueText renders an entry's own payload the way javap does: literals as
// values, references as "#index" operands.
type valueText struct{}

func (valueText) Utf8(c *classfile.ConstantUtf8Info) string {
	return strconv.Quote(c.Value)
}

func (valueText) Integer(c *classfile.ConstantIntegerInfo) string {
	return strconv.FormatInt(int64(c.Value), 10)
}

func (valueText) Float(c *classfile.ConstantFloatInfo) string {
	return formatFloat(float64(c.Value), 32) + "f"
}

func (valueText) Long(c *classfile.ConstantLongInfo) string {
	return strconv.FormatInt(c.Value, 10) + "l"
}

func (valueText) Double(c *classfile.ConstantDoubleInfo) string {
	return formatFloat(c.Value, 64) + "d"
}

func (valueText) Class(c *classfile.ConstantClassInfo) string {
	return fmt.Sprintf("#%d", c.NameIndex)
}

func (valueText) String(c *classfile.ConstantStringInfo) string {
	return fmt.Sprintf("#%d", c.StringIndex)
}

func (valueText) Fieldref(c *classfile.ConstantFieldrefInfo) string {
	return fmt.Sprintf("#%d.#%d", c.ClassIndex, c.NameAndTypeIndex)
}

func (valueText) Methodref(c *classfile.ConstantMethodrefInfo) string {
	return fmt.Sprintf("#%d.#%d", c.ClassIndex, c.NameAndTypeIndex)
}

func (valueText) InterfaceMethodref(c *classfile.ConstantInterfaceMethodrefInfo) string {
	return fmt.Sprintf("#%d.#%d", c.ClassIndex, c.NameAndTypeIndex)
}

func (valueText) NameAndType(c *classfile.ConstantNameAndTypeInfo) string {
	return fmt.Sprintf("#%d:#%d", c.NameIndex, c.DescriptorIndex)
}

// resolvedText follows references through the pool. Literals resolve to
// nothing. A reference whose target is missing or of the wrong kind renders
// as "?" rather than failing, since the decoder does not check them.
type resolvedText struct {
	cp *classfile.ConstantPool
}

func (r resolvedText) Utf8(*classfile.ConstantUtf8Info) string       { return "" }
func (r resolvedText) Integer(*classfile.ConstantIntegerInfo) string { return "" }
func (r resolvedText) Float(*classfile.ConstantFloatInfo) string     { return "" }
func (r resolvedText) Long(*classfile.ConstantLongInfo) string       { return "" }
func (r resolvedText) Double(*classfile.ConstantDoubleInfo) string   { return "" }

func (r resolvedText) Class(c *classfile.ConstantClassInfo) string {
	return r.utf8(c.NameIndex)
}

func (r resolvedText) String(c *classfile.ConstantStringInfo) string {
	if entry, ok := r.cp.Get(c.StringIndex); !ok || entry.Tag() != classfile.ConstantUtf8 {
		return "?"
	}
	return strconv.Quote(r.cp.GetUtf8(c.StringIndex))
}

func (r resolvedText) Fieldref(c *classfile.ConstantFieldrefInfo) string {
	return r.member(c.ClassIndex, c.NameAndTypeIndex)
}

func (r resolvedText) Methodref(c *classfile.ConstantMethodrefInfo) string {
	return r.member(c.ClassIndex, c.NameAndTypeIndex)
}

func (r resolvedText) InterfaceMethodref(c *classfile.ConstantInterfaceMethodrefInfo) string {
	return r.member(c.ClassIndex, c.NameAndTypeIndex)
}

func (r resolvedText) NameAndType(c *classfile.ConstantNameAndTypeInfo) string {
	name := r.utf8(c.NameIndex)
	desc := r.utf8(c.DescriptorIndex)
	text := name + ":" + desc
	if pretty, ok := describeDescriptor(desc); ok {
		text += " " + pretty
	}
	return text
}

func (r resolvedText) utf8(index uint16) string {
	entry, ok := r.cp.Get(index)
	if !ok || entry.Tag() != classfile.ConstantUtf8 {
		return "?"
	}
	return r.cp.GetUtf8(index)
}

func (r resolvedText) member(classIndex, nameAndTypeIndex uint16) string {
	className := "?"
	if class, ok := r.cp.Get(classIndex); ok {
		if class, ok := class.(*classfile.ConstantClassInfo); ok {
			className = r.utf8(class.NameIndex)
		}
	}

	name, desc := "?", "?"
	if nat, ok := r.cp.Get(nameAndTypeIndex); ok {
		if nat, ok := nat.(*classfile.ConstantNameAndTypeInfo); ok {
			name = r.utf8(nat.NameIndex)
			desc = r.utf8(nat.DescriptorIndex)
		}
	}
	if name == "<init>" || name == "<clinit>" {
		name = strconv.Quote(name)
	}
	return className + "." + name + ":" + desc
}

// formatFloat spells the special values the way Java does.
func formatFloat(v float64, bits int) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	}
	return strconv.FormatFloat(v, 'g', -1, bits)
}
