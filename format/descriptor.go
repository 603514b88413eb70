package format

import "strings"

// describeDescriptor renders a field or method descriptor as Java source
// types, e.g. "(I[Ljava/lang/String;)V" becomes "(int, java.lang.String[]) void".
// It reports false for text that is not a well-formed descriptor.
func describeDescriptor(desc string) (string, bool) {
	if strings.HasPrefix(desc, "(") {
		return describeMethodDescriptor(desc)
	}
	name, n := describeFieldType(desc, 0)
	if n == 0 || n != len(desc) {
		return "", false
	}
	return name, true
}

func describeMethodDescriptor(desc string) (string, bool) {
	var params []string
	i := 1
	for i < len(desc) && desc[i] != ')' {
		name, n := describeFieldType(desc, i)
		if n == 0 {
			return "", false
		}
		params = append(params, name)
		i += n
	}
	if i >= len(desc) {
		return "", false
	}
	i++

	var ret string
	switch {
	case i == len(desc)-1 && desc[i] == 'V':
		ret = "void"
	default:
		name, n := describeFieldType(desc, i)
		if n == 0 || i+n != len(desc) {
			return "", false
		}
		ret = name
	}
	return "(" + strings.Join(params, ", ") + ") " + ret, true
}

// describeFieldType renders the field type starting at desc[start] and
// returns how many bytes it spans, or 0 if it is malformed.
func describeFieldType(desc string, start int) (string, int) {
	i := start
	for i < len(desc) && desc[i] == '[' {
		i++
	}
	if i >= len(desc) {
		return "", 0
	}
	dims := strings.Repeat("[]", i-start)

	var base string
	switch desc[i] {
	case 'B':
		base = "byte"
	case 'C':
		base = "char"
	case 'D':
		base = "double"
	case 'F':
		base = "float"
	case 'I':
		base = "int"
	case 'J':
		base = "long"
	case 'S':
		base = "short"
	case 'Z':
		base = "boolean"
	case 'L':
		semicolon := strings.IndexByte(desc[i:], ';')
		if semicolon <= 1 {
			return "", 0
		}
		base = strings.ReplaceAll(desc[i+1:i+semicolon], "/", ".")
		return base + dims, i - start + semicolon + 1
	default:
		return "", 0
	}
	return base + dims, i - start + 1
}
