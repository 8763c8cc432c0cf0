package directive

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidTag is returned for element names that cannot be emitted as HTML.
var ErrInvalidTag = errors.New("invalid element name")

// ErrInvalidAttribute is returned for attribute names that cannot be emitted as HTML.
var ErrInvalidAttribute = errors.New("invalid attribute name")

// Attribute is one directive attribute. A bare key has an empty value.
type Attribute struct {
	Name  string
	Value string
}

// Attr is shorthand for building an Attribute.
func Attr(name, value string) Attribute {
	return Attribute{Name: name, Value: value}
}

// Attributes is an ordered attribute list. Names are unique.
type Attributes []Attribute

// Get returns the value of name.
func (a Attributes) Get(name string) (string, bool) {
	for _, attr := range a {
		if attr.Name == name {
			return attr.Value, true
		}
	}
	return "", false
}

// Value returns the value of name, or "" when absent.
func (a Attributes) Value(name string) string {
	v, _ := a.Get(name)
	return v
}

// Has reports whether name is present.
func (a Attributes) Has(name string) bool {
	_, ok := a.Get(name)
	return ok
}

// Set replaces the value of name, keeping its position, or appends it.
func (a *Attributes) Set(name, value string) {
	for i := range *a {
		if (*a)[i].Name == name {
			(*a)[i].Value = value
			return
		}
	}
	*a = append(*a, Attribute{Name: name, Value: value})
}

// AddClass appends c to the class attribute.
func (a *Attributes) AddClass(c string) {
	if c == "" {
		return
	}
	for i := range *a {
		if (*a)[i].Name == "class" {
			if (*a)[i].Value == "" {
				(*a)[i].Value = c
			} else {
				(*a)[i].Value += " " + c
			}
			return
		}
	}
	*a = append(*a, Attribute{Name: "class", Value: c})
}

// Without returns a copy of a without the named attributes.
func (a Attributes) Without(names ...string) Attributes {
	out := make(Attributes, 0, len(a))
next:
	for _, attr := range a {
		for _, n := range names {
			if attr.Name == n {
				continue next
			}
		}
		out = append(out, attr)
	}
	return out
}

// Missing returns the names that are absent or empty, in the given order.
func (a Attributes) Missing(names ...string) []string {
	var out []string
	for _, n := range names {
		if a.Value(n) == "" {
			out = append(out, n)
		}
	}
	return out
}

func (a Attributes) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for i, attr := range a {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(attr.Name)
		if attr.Value != "" {
			fmt.Fprintf(&b, "=%q", attr.Value)
		}
	}
	b.WriteByte('}')
	return b.String()
}

// NewHint validates tag and attribute names and returns a render hint.
func NewHint(tag string, attrs Attributes) (*RenderHint, error) {
	if !validTag(tag) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidTag, tag)
	}
	for _, attr := range attrs {
		if !validAttrName(attr.Name) {
			return nil, fmt.Errorf("%w: %q", ErrInvalidAttribute, attr.Name)
		}
	}
	return &RenderHint{Tag: tag, Attrs: attrs}, nil
}

func mustHint(tag string, attrs Attributes) RenderHint {
	h, err := NewHint(tag, attrs)
	if err != nil {
		panic(err)
	}
	return *h
}

func validTag(tag string) bool {
	if tag == "" || !isASCIILetter(tag[0]) {
		return false
	}
	for i := 1; i < len(tag); i++ {
		c := tag[i]
		if !isASCIILetter(c) && !isDigit(c) && c != '-' {
			return false
		}
	}
	return true
}

func validAttrName(name string) bool {
	if name == "" {
		return false
	}
	for i := 0; i < len(name); i++ {
		switch c := name[i]; c {
		case ' ', '\t', '\n', '\r', '\f', '"', '\'', '>', '/', '=', '<', 0:
			return false
		}
	}
	return true
}

func isASCIILetter(c byte) bool { return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' }

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isNameChar(c byte) bool { return isASCIILetter(c) || isDigit(c) || c == '-' || c == '_' }

func isSpace(c byte) bool { return c == ' ' || c == '\t' }

// header is the part of a directive after its colons.
type header struct {
	name       string
	label      string
	hasLabel   bool
	labelStart int
	labelEnd   int
	attrs      Attributes
	hasAttrs   bool
}

// scanHeader reads name[label]{attrs} from the start of b and returns the
// number of bytes consumed.
func scanHeader(b []byte) (header, int, bool) {
	var h header
	if len(b) == 0 || !isASCIILetter(b[0]) {
		return h, 0, false
	}
	i := 1
	for i < len(b) && isNameChar(b[i]) {
		i++
	}
	h.name = string(b[:i])

	if i < len(b) && b[i] == '[' {
		end, ok := scanLabel(b, i)
		if !ok {
			return h, 0, false
		}
		h.hasLabel = true
		h.labelStart, h.labelEnd = i+1, end
		h.label = string(b[i+1 : end])
		i = end + 1
	}

	if i < len(b) && b[i] == '{' {
		attrs, n, ok := scanAttributes(b[i:])
		if !ok {
			return h, 0, false
		}
		h.attrs, h.hasAttrs = attrs, true
		i += n
	}
	return h, i, true
}

// scanLabel returns the index of the bracket closing the one at b[start].
func scanLabel(b []byte, start int) (int, bool) {
	depth := 0
	for j := start; j < len(b); j++ {
		switch b[j] {
		case '\\':
			j++
		case '\n':
			return 0, false
		case '[':
			depth++
		case ']':
			depth--
			if depth == 0 {
				return j, true
			}
		}
	}
	return 0, false
}

// scanAttributes parses a {...} attribute block starting at b[0].
func scanAttributes(b []byte) (Attributes, int, bool) {
	var attrs Attributes
	i := 1
	for {
		for i < len(b) && isSpace(b[i]) {
			i++
		}
		if i >= len(b) || b[i] == '\n' {
			return nil, 0, false
		}
		switch c := b[i]; {
		case c == '}':
			return attrs, i + 1, true
		case c == '.' || c == '#':
			j := i + 1
			for j < len(b) && !isSpace(b[j]) && b[j] != '}' && b[j] != '.' && b[j] != '#' && b[j] != '\n' {
				j++
			}
			if j == i+1 {
				return nil, 0, false
			}
			if c == '.' {
				attrs.AddClass(string(b[i+1 : j]))
			} else {
				attrs.Set("id", string(b[i+1:j]))
			}
			i = j
		default:
			j := i
			for j < len(b) && !isSpace(b[j]) && b[j] != '=' && b[j] != '}' && b[j] != '\n' && b[j] != '"' && b[j] != '\'' {
				j++
			}
			if j == i {
				return nil, 0, false
			}
			name := string(b[i:j])
			i = j
			if i >= len(b) || b[i] != '=' {
				attrs.Set(name, "")
				continue
			}
			i++
			value, n, ok := scanValue(b[i:])
			if !ok {
				return nil, 0, false
			}
			i += n
			if name == "class" {
				attrs.AddClass(value)
			} else {
				attrs.Set(name, value)
			}
		}
	}
}

func scanValue(b []byte) (string, int, bool) {
	if len(b) == 0 {
		return "", 0, false
	}
	if q := b[0]; q == '"' || q == '\'' {
		for j := 1; j < len(b); j++ {
			if b[j] == '\n' {
				return "", 0, false
			}
			if b[j] == q {
				return string(b[1:j]), j + 1, true
			}
		}
		return "", 0, false
	}
	j := 0
	for j < len(b) && !isSpace(b[j]) && b[j] != '}' && b[j] != '\n' {
		j++
	}
	return string(b[:j]), j, true
}
