// Package hyp is the runtime for templates compiled by the hyp command.
//
// Template functions generated from .hyp files return Lazy closures that
// append markup to a Buffer. Spliced values pass through RenderTo, which
// escapes text and delegates to Renderable implementations. The
// subpackages validation and htmlelements back the compile-time name
// checks emitted alongside each template.
package hyp
