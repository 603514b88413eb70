package format

import (
	"encoding/json"
	"fmt"
	"io"
	"math"

	"github.com/dhamidi/classpool/classfile"
)

type JSONEncoder struct {
	w    io.Writer
	opts options
	cf   *classfile.ClassFile
}

func NewJSONEncoder(w io.Writer, opts ...Option) *JSONEncoder {
	return &JSONEncoder{w: w, opts: buildOptions(opts)}
}

func (e *JSONEncoder) Encode(cf *classfile.ClassFile) error {
	e.cf = cf
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	text = append(text, '\n')
	_, err = e.w.Write(text)
	return err
}

func (e *JSONEncoder) MarshalText() ([]byte, error) {
	if e.cf == nil {
		return nil, fmt.Errorf("no class file to encode")
	}
	return json.MarshalIndent(e.buildClassFileData(), "", "  ")
}

type jsonClassFile struct {
	File              string         `json:"file,omitempty"`
	Version           jsonVersion    `json:"version"`
	ConstantPoolCount uint16         `json:"constantPoolCount"`
	Constants         []jsonConstant `json:"constants"`
}

type jsonVersion struct {
	Major uint16 `json:"major"`
	Minor uint16 `json:"minor"`
	Java  string `json:"java,omitempty"`
}

type jsonConstant struct {
	Index            uint16 `json:"index"`
	Tag              string `json:"tag"`
	Value            any    `json:"value,omitempty"`
	NameIndex        uint16 `json:"nameIndex,omitempty"`
	StringIndex      uint16 `json:"stringIndex,omitempty"`
	ClassIndex       uint16 `json:"classIndex,omitempty"`
	NameAndTypeIndex uint16 `json:"nameAndTypeIndex,omitempty"`
	DescriptorIndex  uint16 `json:"descriptorIndex,omitempty"`
	Resolved         string `json:"resolved,omitempty"`
}

func (e *JSONEncoder) buildClassFileData() jsonClassFile {
	h := e.cf.Header
	cp := e.cf.ConstantPool
	data := jsonClassFile{
		File: e.opts.file,
		Version: jsonVersion{
			Major: h.MajorVersion,
			Minor: h.MinorVersion,
			Java:  h.JavaRelease(),
		},
		ConstantPoolCount: cp.Count(),
		Constants:         make([]jsonConstant, 0, cp.Len()),
	}

	resolver := resolvedText{cp: cp}
	for index, entry := range cp.All() {
		c := classfile.Visit[jsonConstant](entry, jsonFields{})
		c.Index = index
		c.Tag = entry.Tag().String()
		if e.opts.resolve {
			c.Resolved = classfile.Visit[string](entry, resolver)
		}
		data.Constants = append(data.Constants, c)
	}
	return data
}

// jsonFields fills the kind-specific part of a jsonConstant.
type jsonFields struct{}

func (jsonFields) Utf8(c *classfile.ConstantUtf8Info) jsonConstant {
	return jsonConstant{Value: c.Value}
}

func (jsonFields) Integer(c *classfile.ConstantIntegerInfo) jsonConstant {
	return jsonConstant{Value: c.Value}
}

func (jsonFields) Float(c *classfile.ConstantFloatInfo) jsonConstant {
	return jsonConstant{Value: jsonFloat(float64(c.Value), c.Value)}
}

func (jsonFields) Long(c *classfile.ConstantLongInfo) jsonConstant {
	return jsonConstant{Value: c.Value}
}

func (jsonFields) Double(c *classfile.ConstantDoubleInfo) jsonConstant {
	return jsonConstant{Value: jsonFloat(c.Value, c.Value)}
}

func (jsonFields) Class(c *classfile.ConstantClassInfo) jsonConstant {
	return jsonConstant{NameIndex: c.NameIndex}
}

func (jsonFields) String(c *classfile.ConstantStringInfo) jsonConstant {
	return jsonConstant{StringIndex: c.StringIndex}
}

func (jsonFields) Fieldref(c *classfile.ConstantFieldrefInfo) jsonConstant {
	return jsonConstant{ClassIndex: c.ClassIndex, NameAndTypeIndex: c.NameAndTypeIndex}
}

func (jsonFields) Methodref(c *classfile.ConstantMethodrefInfo) jsonConstant {
	return jsonConstant{ClassIndex: c.ClassIndex, NameAndTypeIndex: c.NameAndTypeIndex}
}

func (jsonFields) InterfaceMethodref(c *classfile.ConstantInterfaceMethodrefInfo) jsonConstant {
	return jsonConstant{ClassIndex: c.ClassIndex, NameAndTypeIndex: c.NameAndTypeIndex}
}

func (jsonFields) NameAndType(c *classfile.ConstantNameAndTypeInfo) jsonConstant {
	return jsonConstant{NameIndex: c.NameIndex, DescriptorIndex: c.DescriptorIndex}
}

// jsonFloat returns v unchanged unless JSON cannot represent it, in which
// case the Java spelling is used as a string.
func jsonFloat(f float64, v any) any {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return formatFloat(f, 64)
	}
	return v
}
