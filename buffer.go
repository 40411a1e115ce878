package hyp

import "strings"

// Buffer accumulates rendered HTML markup. The zero value is ready to use.
type Buffer struct {
	sb strings.Builder
}

// WriteString appends s to the buffer without escaping.
func (b *Buffer) WriteString(s string) {
	b.sb.WriteString(s)
}

// WriteEscaped appends s with element content escaping applied.
func (b *Buffer) WriteEscaped(s string) {
	b.sb.WriteString(EscapeString(s))
}

// String returns the markup accumulated so far.
func (b *Buffer) String() string {
	return b.sb.String()
}

// Len returns the number of bytes accumulated.
func (b *Buffer) Len() int {
	return b.sb.Len()
}

// Reset empties the buffer for reuse.
func (b *Buffer) Reset() {
	b.sb.Reset()
}

// Grow reserves capacity for at least n more bytes.
func (b *Buffer) Grow(n int) {
	b.sb.Grow(n)
}

// Push renders v into the buffer.
func (b *Buffer) Push(v Renderable) {
	v.RenderTo(b)
}

// Attr returns the buffer viewed as an attribute value target, where
// escaping also covers double quotes.
func (b *Buffer) Attr() *AttrBuffer {
	return (*AttrBuffer)(b)
}

// AttrBuffer is a Buffer whose escaped writes use attribute value escaping.
type AttrBuffer Buffer

// WriteString appends s to the buffer without escaping.
func (b *AttrBuffer) WriteString(s string) {
	b.sb.WriteString(s)
}

// WriteEscaped appends s with attribute value escaping applied.
func (b *AttrBuffer) WriteEscaped(s string) {
	b.sb.WriteString(EscapeAttrString(s))
}

// String returns the value accumulated so far.
func (b *AttrBuffer) String() string {
	return b.sb.String()
}

// Len returns the number of bytes accumulated.
func (b *AttrBuffer) Len() int {
	return b.sb.Len()
}

// Reset empties the buffer for reuse.
func (b *AttrBuffer) Reset() {
	b.sb.Reset()
}
