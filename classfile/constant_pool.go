package classfile

import "iter"

// ConstantPoolEntry is one decoded constant. The set of implementations is
// closed; use Visit to handle every kind.
type ConstantPoolEntry interface {
	Tag() ConstantTag
	accept(v visitor)
}

type ConstantUtf8Info struct {
	Value string
}

func (c *ConstantUtf8Info) Tag() ConstantTag { return ConstantUtf8 }

type ConstantIntegerInfo struct {
	Value int32
}

func (c *ConstantIntegerInfo) Tag() ConstantTag { return ConstantInteger }

type ConstantFloatInfo struct {
	Value float32
}

func (c *ConstantFloatInfo) Tag() ConstantTag { return ConstantFloat }

type ConstantLongInfo struct {
	Value int64
}

func (c *ConstantLongInfo) Tag() ConstantTag { return ConstantLong }

type ConstantDoubleInfo struct {
	Value float64
}

func (c *ConstantDoubleInfo) Tag() ConstantTag { return ConstantDouble }

type ConstantClassInfo struct {
	NameIndex uint16
}

func (c *ConstantClassInfo) Tag() ConstantTag { return ConstantClass }

type ConstantStringInfo struct {
	StringIndex uint16
}

func (c *ConstantStringInfo) Tag() ConstantTag { return ConstantString }

type ConstantFieldrefInfo struct {
	ClassIndex       uint16
	NameAndTypeIndex uint16
}

func (c *ConstantFieldrefInfo) Tag() ConstantTag { return ConstantFieldref }

type ConstantMethodrefInfo struct {
	ClassIndex       uint16
	NameAndTypeIndex uint16
}

func (c *ConstantMethodrefInfo) Tag() ConstantTag { return ConstantMethodref }

type ConstantInterfaceMethodrefInfo struct {
	ClassIndex       uint16
	NameAndTypeIndex uint16
}

func (c *ConstantInterfaceMethodrefInfo) Tag() ConstantTag { return ConstantInterfaceMethodref }

type ConstantNameAndTypeInfo struct {
	NameIndex       uint16
	DescriptorIndex uint16
}

func (c *ConstantNameAndTypeInfo) Tag() ConstantTag { return ConstantNameAndType }

// ConstantPool is the decoded constant pool, addressed by the same 1-based
// indices the rest of the class file uses. Index 0 and the index following a
// Long or Double entry hold nothing.
type ConstantPool struct {
	count   uint16
	slots   []ConstantPoolEntry
	entries int
}

func newConstantPool(count uint16) *ConstantPool {
	return &ConstantPool{
		count: count,
		slots: make([]ConstantPoolEntry, max(int(count), 1)),
	}
}

func (cp *ConstantPool) set(index uint16, entry ConstantPoolEntry) {
	cp.slots[index] = entry
	cp.entries++
}

// NewConstantPool lays entries out the way a class file would: the first
// entry at index 1, and each Long or Double taking two indices.
func NewConstantPool(entries ...ConstantPoolEntry) *ConstantPool {
	count := 1
	for _, e := range entries {
		count++
		if e.Tag().IsWide() {
			count++
		}
	}
	cp := newConstantPool(uint16(count))
	index := uint16(1)
	for _, e := range entries {
		cp.set(index, e)
		index++
		if e.Tag().IsWide() {
			index++
		}
	}
	return cp
}

// Count is the constant_pool_count from the class file header: one more than
// the highest usable index.
func (cp *ConstantPool) Count() uint16 { return cp.count }

// Len is the number of entries stored.
func (cp *ConstantPool) Len() int { return cp.entries }

// Get returns the entry at a constant pool index. It reports false for index
// 0, for indices past the end and for the unusable index after a wide entry.
func (cp *ConstantPool) Get(index uint16) (ConstantPoolEntry, bool) {
	if index == 0 || int(index) >= len(cp.slots) {
		return nil, false
	}
	entry := cp.slots[index]
	return entry, entry != nil
}

// All yields the stored entries in index order, skipping empty indices.
func (cp *ConstantPool) All() iter.Seq2[uint16, ConstantPoolEntry] {
	return func(yield func(uint16, ConstantPoolEntry) bool) {
		for i, entry := range cp.slots {
			if entry == nil {
				continue
			}
			if !yield(uint16(i), entry) {
				return
			}
		}
	}
}

func lookup[T ConstantPoolEntry](cp *ConstantPool, index uint16) (T, bool) {
	entry, ok := cp.Get(index)
	if !ok {
		var zero T
		return zero, false
	}
	typed, ok := entry.(T)
	return typed, ok
}

func (cp *ConstantPool) GetUtf8(index uint16) string {
	if entry, ok := lookup[*ConstantUtf8Info](cp, index); ok {
		return entry.Value
	}
	return ""
}

func (cp *ConstantPool) GetClassName(index uint16) string {
	if entry, ok := lookup[*ConstantClassInfo](cp, index); ok {
		return cp.GetUtf8(entry.NameIndex)
	}
	return ""
}

func (cp *ConstantPool) GetNameAndType(index uint16) (name, descriptor string) {
	if entry, ok := lookup[*ConstantNameAndTypeInfo](cp, index); ok {
		return cp.GetUtf8(entry.NameIndex), cp.GetUtf8(entry.DescriptorIndex)
	}
	return "", ""
}

func (cp *ConstantPool) GetString(index uint16) string {
	if entry, ok := lookup[*ConstantStringInfo](cp, index); ok {
		return cp.GetUtf8(entry.StringIndex)
	}
	return ""
}

func (cp *ConstantPool) GetInteger(index uint16) (int32, bool) {
	if entry, ok := lookup[*ConstantIntegerInfo](cp, index); ok {
		return entry.Value, true
	}
	return 0, false
}

func (cp *ConstantPool) GetLong(index uint16) (int64, bool) {
	if entry, ok := lookup[*ConstantLongInfo](cp, index); ok {
		return entry.Value, true
	}
	return 0, false
}

func (cp *ConstantPool) GetFloat(index uint16) (float32, bool) {
	if entry, ok := lookup[*ConstantFloatInfo](cp, index); ok {
		return entry.Value, true
	}
	return 0, false
}

func (cp *ConstantPool) GetDouble(index uint16) (float64, bool) {
	if entry, ok := lookup[*ConstantDoubleInfo](cp, index); ok {
		return entry.Value, true
	}
	return 0, false
}

func (cp *ConstantPool) GetFieldref(index uint16) (className, name, descriptor string) {
	if entry, ok := lookup[*ConstantFieldrefInfo](cp, index); ok {
		className = cp.GetClassName(entry.ClassIndex)
		name, descriptor = cp.GetNameAndType(entry.NameAndTypeIndex)
	}
	return
}

func (cp *ConstantPool) GetMethodref(index uint16) (className, name, descriptor string) {
	if entry, ok := lookup[*ConstantMethodrefInfo](cp, index); ok {
		className = cp.GetClassName(entry.ClassIndex)
		name, descriptor = cp.GetNameAndType(entry.NameAndTypeIndex)
	}
	return
}

func (cp *ConstantPool) GetInterfaceMethodref(index uint16) (className, name, descriptor string) {
	if entry, ok := lookup[*ConstantInterfaceMethodrefInfo](cp, index); ok {
		className = cp.GetClassName(entry.ClassIndex)
		name, descriptor = cp.GetNameAndType(entry.NameAndTypeIndex)
	}
	return
}
