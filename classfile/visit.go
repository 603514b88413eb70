package classfile

// ConstantVisitor has one method per constant pool entry kind. Adding a kind
// adds a method here, so every implementation must handle it.
type ConstantVisitor[T any] interface {
	Utf8(*ConstantUtf8Info) T
	Integer(*ConstantIntegerInfo) T
	Float(*ConstantFloatInfo) T
	Long(*ConstantLongInfo) T
	Double(*ConstantDoubleInfo) T
	Class(*ConstantClassInfo) T
	String(*ConstantStringInfo) T
	Fieldref(*ConstantFieldrefInfo) T
	Methodref(*ConstantMethodrefInfo) T
	InterfaceMethodref(*ConstantInterfaceMethodrefInfo) T
	NameAndType(*ConstantNameAndTypeInfo) T
}

// Visit calls the method of v that matches the kind of entry.
func Visit[T any](entry ConstantPoolEntry, v ConstantVisitor[T]) T {
	a := &visitAdapter[T]{v: v}
	entry.accept(a)
	return a.result
}

type visitor interface {
	visitUtf8(*ConstantUtf8Info)
	visitInteger(*ConstantIntegerInfo)
	visitFloat(*ConstantFloatInfo)
	visitLong(*ConstantLongInfo)
	visitDouble(*ConstantDoubleInfo)
	visitClass(*ConstantClassInfo)
	visitString(*ConstantStringInfo)
	visitFieldref(*ConstantFieldrefInfo)
	visitMethodref(*ConstantMethodrefInfo)
	visitInterfaceMethodref(*ConstantInterfaceMethodrefInfo)
	visitNameAndType(*ConstantNameAndTypeInfo)
}

type visitAdapter[T any] struct {
	v      ConstantVisitor[T]
	result T
}

func (a *visitAdapter[T]) visitUtf8(c *ConstantUtf8Info)       { a.result = a.v.Utf8(c) }
func (a *visitAdapter[T]) visitInteger(c *ConstantIntegerInfo) { a.result = a.v.Integer(c) }
func (a *visitAdapter[T]) visitFloat(c *ConstantFloatInfo)     { a.result = a.v.Float(c) }
func (a *visitAdapter[T]) visitLong(c *ConstantLongInfo)       { a.result = a.v.Long(c) }
func (a *visitAdapter[T]) visitDouble(c *ConstantDoubleInfo)   { a.result = a.v.Double(c) }
func (a *visitAdapter[T]) visitClass(c *ConstantClassInfo)     { a.result = a.v.Class(c) }
func (a *visitAdapter[T]) visitString(c *ConstantStringInfo)   { a.result = a.v.String(c) }
func (a *visitAdapter[T]) visitFieldref(c *ConstantFieldrefInfo) {
	a.result = a.v.Fieldref(c)
}
func (a *visitAdapter[T]) visitMethodref(c *ConstantMethodrefInfo) {
	a.result = a.v.Methodref(c)
}
func (a *visitAdapter[T]) visitInterfaceMethodref(c *ConstantInterfaceMethodrefInfo) {
	a.result = a.v.InterfaceMethodref(c)
}
func (a *visitAdapter[T]) visitNameAndType(c *ConstantNameAndTypeInfo) {
	a.result = a.v.NameAndType(c)
}

func (c *ConstantUtf8Info) accept(v visitor)               { v.visitUtf8(c) }
func (c *ConstantIntegerInfo) accept(v visitor)            { v.visitInteger(c) }
func (c *ConstantFloatInfo) accept(v visitor)              { v.visitFloat(c) }
func (c *ConstantLongInfo) accept(v visitor)               { v.visitLong(c) }
func (c *ConstantDoubleInfo) accept(v visitor)             { v.visitDouble(c) }
func (c *ConstantClassInfo) accept(v visitor)              { v.visitClass(c) }
func (c *ConstantStringInfo) accept(v visitor)             { v.visitString(c) }
func (c *ConstantFieldrefInfo) accept(v visitor)           { v.visitFieldref(c) }
func (c *ConstantMethodrefInfo) accept(v visitor)          { v.visitMethodref(c) }
func (c *ConstantInterfaceMethodrefInfo) accept(v visitor) { v.visitInterfaceMethodref(c) }
func (c *ConstantNameAndTypeInfo) accept(v visitor)        { v.visitNameAndType(c) }
