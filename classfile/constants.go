package classfile

import "strconv"

const (
	Magic = 0xCAFEBABE
)

var magicBytes = [4]byte{0xCA, 0xFE, 0xBA, 0xBE}

type ConstantTag uint8

const (
	ConstantUtf8               ConstantTag = 1
	ConstantInteger            ConstantTag = 3
	ConstantFloat              ConstantTag = 4
	ConstantLong               ConstantTag = 5
	ConstantDouble             ConstantTag = 6
	ConstantClass              ConstantTag = 7
	ConstantString             ConstantTag = 8
	ConstantFieldref           ConstantTag = 9
	ConstantMethodref          ConstantTag = 10
	ConstantInterfaceMethodref ConstantTag = 11
	ConstantNameAndType        ConstantTag = 12

	// Defined by later revisions of the format. The decoder reports them as
	// unsupported.
	ConstantMethodHandle  ConstantTag = 15
	ConstantMethodType    ConstantTag = 16
	ConstantDynamic       ConstantTag = 17
	ConstantInvokeDynamic ConstantTag = 18
	ConstantModule        ConstantTag = 19
	ConstantPackage       ConstantTag = 20
)

var tagNames = map[ConstantTag]string{
	ConstantUtf8:               "Utf8",
	ConstantInteger:            "Integer",
	ConstantFloat:              "Float",
	ConstantLong:               "Long",
	ConstantDouble:             "Double",
	ConstantClass:              "Class",
	ConstantString:             "String",
	ConstantFieldref:           "Fieldref",
	ConstantMethodref:          "Methodref",
	ConstantInterfaceMethodref: "InterfaceMethodref",
	ConstantNameAndType:        "NameAndType",
	ConstantMethodHandle:       "MethodHandle",
	ConstantMethodType:         "MethodType",
	ConstantDynamic:            "Dynamic",
	ConstantInvokeDynamic:      "InvokeDynamic",
	ConstantModule:             "Module",
	ConstantPackage:            "Package",
}

func (t ConstantTag) String() string {
	if name, ok := tagNames[t]; ok {
		return name
	}
	return "ConstantTag(" + strconv.Itoa(int(t)) + ")"
}

// IsWide reports whether entries with this tag take up two constant pool
// indices.
func (t ConstantTag) IsWide() bool {
	return t == ConstantLong || t == ConstantDouble
}

// IsSupported reports whether the decoder understands the tag.
func (t ConstantTag) IsSupported() bool {
	return t == ConstantUtf8 || (t >= ConstantInteger && t <= ConstantNameAndType)
}

var javaReleases = map[uint16]string{
	45: "1.1",
	46: "1.2",
	47: "1.3",
	48: "1.4",
	49: "5",
	50: "6",
	51: "7",
	52: "8",
}

// JavaRelease names the Java SE release that introduced a class file major
// version, or returns "" if the version is unknown.
func JavaRelease(major uint16) string {
	if name, ok := javaReleases[major]; ok {
		return name
	}
	// From 53 (Java 9) on, every release bumps the major version by one.
	if major >= 53 && major <= 70 {
		return strconv.Itoa(int(major) - 44)
	}
	return ""
}
