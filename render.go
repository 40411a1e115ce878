package hyp

import (
	"fmt"
	"strconv"
)

// Renderable is implemented by values that render themselves as element
// content. Generated component structs, Lazy closures, and pre-rendered
// constants all satisfy it.
type Renderable interface {
	RenderTo(out *Buffer)
}

// Lazy is a deferred rendering closure. Template functions return Lazy so
// nothing is written until a buffer is supplied.
type Lazy func(out *Buffer)

// RenderTo invokes the closure.
func (l Lazy) RenderTo(out *Buffer) {
	if l != nil {
		l(out)
	}
}

// Render evaluates the closure into a fresh buffer and returns the markup.
func (l Lazy) Render() Rendered {
	var out Buffer
	l.RenderTo(&out)
	return Rendered(out.String())
}

// Rendered is markup that has already been escaped. It is written through
// without further escaping.
type Rendered string

// RenderTo writes the markup as is.
func (r Rendered) RenderTo(out *Buffer) {
	out.WriteString(string(r))
}

// String returns the markup.
func (r Rendered) String() string {
	return string(r)
}

// Raw marks a string as trusted markup, bypassing escaping. Using it with
// untrusted input defeats the escaping guarantees.
type Raw string

// RenderTo writes the string as is.
func (r Raw) RenderTo(out *Buffer) {
	out.WriteString(string(r))
}

// Displayed renders its value with fmt.Sprint formatting, escaped.
type Displayed struct {
	Value any
}

// Debugged renders its value with %#v formatting, escaped.
type Debugged struct {
	Value any
}

// Render evaluates v into an escaped string.
func Render(v Renderable) Rendered {
	out := &Buffer{}
	v.RenderTo(out)
	return Rendered(out.String())
}

// RenderTo dispatches a spliced value into element content. Renderable
// values render themselves; strings and stringifiable values are escaped.
func RenderTo(out *Buffer, v any) {
	switch x := v.(type) {
	case nil:
	case Renderable:
		x.RenderTo(out)
	case Displayed:
		out.WriteEscaped(fmt.Sprint(x.Value))
	case Debugged:
		out.WriteEscaped(fmt.Sprintf("%#v", x.Value))
	case string:
		out.WriteEscaped(x)
	case bool:
		out.WriteString(strconv.FormatBool(x))
	case int:
		out.WriteString(strconv.Itoa(x))
	case int8:
		out.WriteString(strconv.FormatInt(int64(x), 10))
	case int16:
		out.WriteString(strconv.FormatInt(int64(x), 10))
	case int32:
		out.WriteString(strconv.FormatInt(int64(x), 10))
	case int64:
		out.WriteString(strconv.FormatInt(x, 10))
	case uint:
		out.WriteString(strconv.FormatUint(uint64(x), 10))
	case uint8:
		out.WriteString(strconv.FormatUint(uint64(x), 10))
	case uint16:
		out.WriteString(strconv.FormatUint(uint64(x), 10))
	case uint32:
		out.WriteString(strconv.FormatUint(uint64(x), 10))
	case uint64:
		out.WriteString(strconv.FormatUint(x, 10))
	case float32:
		out.WriteString(strconv.FormatFloat(float64(x), 'g', -1, 32))
	case float64:
		out.WriteString(strconv.FormatFloat(x, 'g', -1, 64))
	case fmt.Stringer:
		out.WriteEscaped(x.String())
	case error:
		out.WriteEscaped(x.Error())
	default:
		out.WriteEscaped(fmt.Sprint(x))
	}
}
