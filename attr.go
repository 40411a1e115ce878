package hyp

import (
	"fmt"
	"strconv"
)

// AttrRenderable is implemented by values that render themselves as an
// attribute value.
type AttrRenderable interface {
	RenderAttrTo(out *AttrBuffer)
}

// AttrLazy is a deferred attribute value closure. Attribute templates
// return AttrLazy.
type AttrLazy func(out *AttrBuffer)

// RenderAttrTo invokes the closure.
func (l AttrLazy) RenderAttrTo(out *AttrBuffer) {
	if l != nil {
		l(out)
	}
}

// Render evaluates the closure into a fresh buffer and returns the value.
func (l AttrLazy) Render() RenderedAttribute {
	var out AttrBuffer
	l.RenderAttrTo(&out)
	return RenderedAttribute(out.String())
}

// RenderedAttribute is an attribute value that has already been escaped.
type RenderedAttribute string

// RenderAttrTo writes the value as is.
func (r RenderedAttribute) RenderAttrTo(out *AttrBuffer) {
	out.WriteString(string(r))
}

// String returns the value.
func (r RenderedAttribute) String() string {
	return string(r)
}

// RenderAttrTo dispatches a spliced value into an attribute value.
func RenderAttrTo(out *AttrBuffer, v any) {
	switch x := v.(type) {
	case nil:
	case AttrRenderable:
		x.RenderAttrTo(out)
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
