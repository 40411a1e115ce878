// Package validation provides the compile-time markers referenced by the
// checks that hyp generate emits next to every template. The checks are
// ordinary Go code, so a misspelled element or attribute name that slips
// past the generator still fails to build.
package validation

// Normal is the kind of elements that take content and a closing tag.
type Normal struct{}

// Void is the kind of elements with no content and no closing tag.
type Void struct{}

// Element is satisfied by element structs whose content kind is K. The
// htmlelements package provides the implementations.
type Element[K any] interface {
	element(K)
}

// CheckElement asserts at compile time that E is an element of kind K.
// The call compiles to nothing.
func CheckElement[E Element[K], K any]() {}

// NormalElement is embedded by element structs that take content.
type NormalElement struct{}

func (NormalElement) element(Normal) {}

// VoidElement is embedded by element structs with no content.
type VoidElement struct{}

func (VoidElement) element(Void) {}

// Attribute is the type of every checkable attribute name field.
type Attribute struct{}

// AttributeNamespace is the type of namespace fields (xml:, xmlns:, xlink:).
type AttributeNamespace struct{}

// AttributeSymbol is the type of symbol-prefix fields (@name, :name).
type AttributeSymbol struct{}
