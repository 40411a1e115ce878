// Package htmlelements defines one struct per HTML element, carrying a
// field per valid attribute name. The checks emitted by hyp generate
// reference these fields, so attribute typos surface as missing-field
// compile errors in the generated code.
package htmlelements

import "github.com/hypgen/hyp/validation"

// GlobalAttributes carries the attributes valid on every element, the
// symbol prefixes for framework attributes, and the attribute namespaces.
// Every element struct embeds it.
type GlobalAttributes struct {
	Accesskey       validation.Attribute
	Autocapitalize  validation.Attribute
	Autofocus       validation.Attribute
	Class           validation.Attribute
	Contenteditable validation.Attribute
	Dir             validation.Attribute
	Draggable       validation.Attribute
	Enterkeyhint    validation.Attribute
	Hidden          validation.Attribute
	Id              validation.Attribute
	Inert           validation.Attribute
	Inputmode       validation.Attribute
	Is              validation.Attribute
	Itemid          validation.Attribute
	Itemprop        validation.Attribute
	Itemref         validation.Attribute
	Itemscope       validation.Attribute
	Itemtype        validation.Attribute
	Lang            validation.Attribute
	Nonce           validation.Attribute
	Part            validation.Attribute
	Popover         validation.Attribute
	Role            validation.Attribute
	Slot            validation.Attribute
	Spellcheck      validation.Attribute
	Style           validation.Attribute
	Tabindex        validation.Attribute
	Title           validation.Attribute
	Translate       validation.Attribute

	At    validation.AttributeSymbol
	Colon validation.AttributeSymbol

	Xml   validation.AttributeNamespace
	Xmlns validation.AttributeNamespace
	Xlink validation.AttributeNamespace
}

// A is the <a> element.
type A struct {
	GlobalAttributes
	validation.NormalElement

	Download       validation.Attribute
	Href           validation.Attribute
	Hreflang       validation.Attribute
	Ping           validation.Attribute
	Referrerpolicy validation.Attribute
	Rel            validation.Attribute
	Target         validation.Attribute
	Type           validation.Attribute
}

// Abbr is the <abbr> element.
type Abbr struct {
	GlobalAttributes
	validation.NormalElement
}

// Address is the <address> element.
type Address struct {
	GlobalAttributes
	validation.NormalElement
}

// Area is the <area> element.
type Area struct {
	GlobalAttributes
	validation.VoidElement

	Alt            validation.Attribute
	Coords         validation.Attribute
	Download       validation.Attribute
	Href           validation.Attribute
	Ping           validation.Attribute
	Referrerpolicy validation.Attribute
	Rel            validation.Attribute
	Shape          validation.Attribute
	Target         validation.Attribute
}

// Article is the <article> element.
type Article struct {
	GlobalAttributes
	validation.NormalElement
}

// Aside is the <aside> element.
type Aside struct {
	GlobalAttributes
	validation.NormalElement
}

// Audio is the <audio> element.
type Audio struct {
	GlobalAttributes
	validation.NormalElement

	Autoplay    validation.Attribute
	Controls    validation.Attribute
	Crossorigin validation.Attribute
	Loop        validation.Attribute
	Muted       validation.Attribute
	Preload     validation.Attribute
	Src         validation.Attribute
}

// B is the <b> element.
type B struct {
	GlobalAttributes
	validation.NormalElement
}

// Base is the <base> element.
type Base struct {
	GlobalAttributes
	validation.VoidElement

	Href   validation.Attribute
	Target validation.Attribute
}

// Bdi is the <bdi> element.
type Bdi struct {
	GlobalAttributes
	validation.NormalElement
}

// Bdo is the <bdo> element.
type Bdo struct {
	GlobalAttributes
	validation.NormalElement
}

// Blockquote is the <blockquote> element.
type Blockquote struct {
	GlobalAttributes
	validation.NormalElement

	Cite validation.Attribute
}

// Body is the <body> element.
type Body struct {
	GlobalAttributes
	validation.NormalElement
}

// Br is the <br> element.
type Br struct {
	GlobalAttributes
	validation.VoidElement
}

// Button is the <button> element.
type Button struct {
	GlobalAttributes
	validation.NormalElement

	Disabled       validation.Attribute
	Form           validation.Attribute
	Formaction     validation.Attribute
	Formenctype    validation.Attribute
	Formmethod     validation.Attribute
	Formnovalidate validation.Attribute
	Formtarget     validation.Attribute
	Name           validation.Attribute
	Type           validation.Attribute
	Value          validation.Attribute
}

// Canvas is the <canvas> element.
type Canvas struct {
	GlobalAttributes
	validation.NormalElement

	Height validation.Attribute
	Width  validation.Attribute
}

// Caption is the <caption> element.
type Caption struct {
	GlobalAttributes
	validation.NormalElement
}

// Cite is the <cite> element.
type Cite struct {
	GlobalAttributes
	validation.NormalElement
}

// Code is the <code> element.
type Code struct {
	GlobalAttributes
	validation.NormalElement
}

// Col is the <col> element.
type Col struct {
	GlobalAttributes
	validation.VoidElement

	Span validation.Attribute
}

// Colgroup is the <colgroup> element.
type Colgroup struct {
	GlobalAttributes
	validation.NormalElement

	Span validation.Attribute
}

// Data is the <data> element.
type Data struct {
	GlobalAttributes
	validation.NormalElement

	Value validation.Attribute
}

// Datalist is the <datalist> element.
type Datalist struct {
	GlobalAttributes
	validation.NormalElement
}

// Dd is the <dd> element.
type Dd struct {
	GlobalAttributes
	validation.NormalElement
}

// Del is the <del> element.
type Del struct {
	GlobalAttributes
	validation.NormalElement

	Cite     validation.Attribute
	Datetime validation.Attribute
}

// Details is the <details> element.
type Details struct {
	GlobalAttributes
	validation.NormalElement

	Name validation.Attribute
	Open validation.Attribute
}

// Dfn is the <dfn> element.
type Dfn struct {
	GlobalAttributes
	validation.NormalElement
}

// Dialog is the <dialog> element.
type Dialog struct {
	GlobalAttributes
	validation.NormalElement

	Open validation.Attribute
}

// Div is the <div> element.
type Div struct {
	GlobalAttributes
	validation.NormalElement
}

// Dl is the <dl> element.
type Dl struct {
	GlobalAttributes
	validation.NormalElement
}

// Dt is the <dt> element.
type Dt struct {
	GlobalAttributes
	validation.NormalElement
}

// Em is the <em> element.
type Em struct {
	GlobalAttributes
	validation.NormalElement
}

// Embed is the <embed> element.
type Embed struct {
	GlobalAttributes
	validation.VoidElement

	Height validation.Attribute
	Src    validation.Attribute
	Type   validation.Attribute
	Width  validation.Attribute
}

// Fieldset is the <fieldset> element.
type Fieldset struct {
	GlobalAttributes
	validation.NormalElement

	Disabled validation.Attribute
	Form     validation.Attribute
	Name     validation.Attribute
}

// Figcaption is the <figcaption> element.
type Figcaption struct {
	GlobalAttributes
	validation.NormalElement
}

// Figure is the <figure> element.
type Figure struct {
	GlobalAttributes
	validation.NormalElement
}

// Footer is the <footer> element.
type Footer struct {
	GlobalAttributes
	validation.NormalElement
}

// Form is the <form> element.
type Form struct {
	GlobalAttributes
	validation.NormalElement

	AcceptCharset validation.Attribute
	Action        validation.Attribute
	Autocomplete  validation.Attribute
	Enctype       validation.Attribute
	Method        validation.Attribute
	Name          validation.Attribute
	Novalidate    validation.Attribute
	Rel           validation.Attribute
	Target        validation.Attribute
}

// H1 is the <h1> element.
type H1 struct {
	GlobalAttributes
	validation.NormalElement
}

// H2 is the <h2> element.
type H2 struct {
	GlobalAttributes
	validation.NormalElement
}

// H3 is the <h3> element.
type H3 struct {
	GlobalAttributes
	validation.NormalElement
}

// H4 is the <h4> element.
type H4 struct {
	GlobalAttributes
	validation.NormalElement
}

// H5 is the <h5> element.
type H5 struct {
	GlobalAttributes
	validation.NormalElement
}

// H6 is the <h6> element.
type H6 struct {
	GlobalAttributes
	validation.NormalElement
}

// Head is the <head> element.
type Head struct {
	GlobalAttributes
	validation.NormalElement
}

// Header is the <header> element.
type Header struct {
	GlobalAttributes
	validation.NormalElement
}

// Hgroup is the <hgroup> element.
type Hgroup struct {
	GlobalAttributes
	validation.NormalElement
}

// Hr is the <hr> element.
type Hr struct {
	GlobalAttributes
	validation.VoidElement
}

// Html is the <html> element.
type Html struct {
	GlobalAttributes
	validation.NormalElement

	Xmlns validation.Attribute
}

// I is the <i> element.
type I struct {
	GlobalAttributes
	validation.NormalElement
}

// Iframe is the <iframe> element.
type Iframe struct {
	GlobalAttributes
	validation.NormalElement

	Allow           validation.Attribute
	Allowfullscreen validation.Attribute
	Height          validation.Attribute
	Loading         validation.Attribute
	Name            validation.Attribute
	Referrerpolicy  validation.Attribute
	Sandbox         validation.Attribute
	Src             validation.Attribute
	Srcdoc          validation.Attribute
	Width           validation.Attribute
}

// Img is the <img> element.
type Img struct {
	GlobalAttributes
	validation.VoidElement

	Alt            validation.Attribute
	Crossorigin    validation.Attribute
	Decoding       validation.Attribute
	Fetchpriority  validation.Attribute
	Height         validation.Attribute
	Ismap          validation.Attribute
	Loading        validation.Attribute
	Referrerpolicy validation.Attribute
	Sizes          validation.Attribute
	Src            validation.Attribute
	Srcset         validation.Attribute
	Usemap         validation.Attribute
	Width          validation.Attribute
}

// Input is the <input> element.
type Input struct {
	GlobalAttributes
	validation.VoidElement

	Accept         validation.Attribute
	Alt            validation.Attribute
	Autocomplete   validation.Attribute
	Capture        validation.Attribute
	Checked        validation.Attribute
	Dirname        validation.Attribute
	Disabled       validation.Attribute
	Form           validation.Attribute
	Formaction     validation.Attribute
	Formenctype    validation.Attribute
	Formmethod     validation.Attribute
	Formnovalidate validation.Attribute
	Formtarget     validation.Attribute
	Height         validation.Attribute
	List           validation.Attribute
	Max            validation.Attribute
	Maxlength      validation.Attribute
	Min            validation.Attribute
	Minlength      validation.Attribute
	Multiple       validation.Attribute
	Name           validation.Attribute
	Pattern        validation.Attribute
	Placeholder    validation.Attribute
	Readonly       validation.Attribute
	Required       validation.Attribute
	Size           validation.Attribute
	Src            validation.Attribute
	Step           validation.Attribute
	Type           validation.Attribute
	Value          validation.Attribute
	Width          validation.Attribute
}

// Ins is the <ins> element.
type Ins struct {
	GlobalAttributes
	validation.NormalElement

	Cite     validation.Attribute
	Datetime validation.Attribute
}

// Kbd is the <kbd> element.
type Kbd struct {
	GlobalAttributes
	validation.NormalElement
}

// Label is the <label> element.
type Label struct {
	GlobalAttributes
	validation.NormalElement

	For validation.Attribute
}

// Legend is the <legend> element.
type Legend struct {
	GlobalAttributes
	validation.NormalElement
}

// Li is the <li> element.
type Li struct {
	GlobalAttributes
	validation.NormalElement

	Value validation.Attribute
}

// Link is the <link> element.
type Link struct {
	GlobalAttributes
	validation.VoidElement

	As             validation.Attribute
	Crossorigin    validation.Attribute
	Fetchpriority  validation.Attribute
	Href           validation.Attribute
	Hreflang       validation.Attribute
	Imagesizes     validation.Attribute
	Imagesrcset    validation.Attribute
	Integrity      validation.Attribute
	Media          validation.Attribute
	Referrerpolicy validation.Attribute
	Rel            validation.Attribute
	Sizes          validation.Attribute
	Type           validation.Attribute
}

// Main is the <main> element.
type Main struct {
	GlobalAttributes
	validation.NormalElement
}

// Map is the <map> element.
type Map struct {
	GlobalAttributes
	validation.NormalElement

	Name validation.Attribute
}

// Mark is the <mark> element.
type Mark struct {
	GlobalAttributes
	validation.NormalElement
}

// Menu is the <menu> element.
type Menu struct {
	GlobalAttributes
	validation.NormalElement
}

// Meta is the <meta> element.
type Meta struct {
	GlobalAttributes
	validation.VoidElement

	Charset   validation.Attribute
	Content   validation.Attribute
	HttpEquiv validation.Attribute
	Media     validation.Attribute
	Name      validation.Attribute
}

// Meter is the <meter> element.
type Meter struct {
	GlobalAttributes
	validation.NormalElement

	High    validation.Attribute
	Low     validation.Attribute
	Max     validation.Attribute
	Min     validation.Attribute
	Optimum validation.Attribute
	Value   validation.Attribute
}

// Nav is the <nav> element.
type Nav struct {
	GlobalAttributes
	validation.NormalElement
}

// Noscript is the <noscript> element.
type Noscript struct {
	GlobalAttributes
	validation.NormalElement
}

// Object is the <object> element.
type Object struct {
	GlobalAttributes
	validation.NormalElement

	Data   validation.Attribute
	Form   validation.Attribute
	Height validation.Attribute
	Name   validation.Attribute
	Type   validation.Attribute
	Usemap validation.Attribute
	Width  validation.Attribute
}

// Ol is the <ol> element.
type Ol struct {
	GlobalAttributes
	validation.NormalElement

	Reversed validation.Attribute
	Start    validation.Attribute
	Type     validation.Attribute
}

// Optgroup is the <optgroup> element.
type Optgroup struct {
	GlobalAttributes
	validation.NormalElement

	Disabled validation.Attribute
	Label    validation.Attribute
}

// Option is the <option> element.
type Option struct {
	GlobalAttributes
	validation.NormalElement

	Disabled validation.Attribute
	Label    validation.Attribute
	Selected validation.Attribute
	Value    validation.Attribute
}

// Output is the <output> element.
type Output struct {
	GlobalAttributes
	validation.NormalElement

	For  validation.Attribute
	Form validation.Attribute
	Name validation.Attribute
}

// P is the <p> element.
type P struct {
	GlobalAttributes
	validation.NormalElement
}

// Picture is the <picture> element.
type Picture struct {
	GlobalAttributes
	validation.NormalElement
}

// Pre is the <pre> element.
type Pre struct {
	GlobalAttributes
	validation.NormalElement
}

// Progress is the <progress> element.
type Progress struct {
	GlobalAttributes
	validation.NormalElement

	Max   validation.Attribute
	Value validation.Attribute
}

// Q is the <q> element.
type Q struct {
	GlobalAttributes
	validation.NormalElement

	Cite validation.Attribute
}

// Rp is the <rp> element.
type Rp struct {
	GlobalAttributes
	validation.NormalElement
}

// Rt is the <rt> element.
type Rt struct {
	GlobalAttributes
	validation.NormalElement
}

// Ruby is the <ruby> element.
type Ruby struct {
	GlobalAttributes
	validation.NormalElement
}

// S is the <s> element.
type S struct {
	GlobalAttributes
	validation.NormalElement
}

// Samp is the <samp> element.
type Samp struct {
	GlobalAttributes
	validation.NormalElement
}

// Script is the <script> element.
type Script struct {
	GlobalAttributes
	validation.NormalElement

	Async          validation.Attribute
	Crossorigin    validation.Attribute
	Defer          validation.Attribute
	Fetchpriority  validation.Attribute
	Integrity      validation.Attribute
	Nomodule       validation.Attribute
	Referrerpolicy validation.Attribute
	Src            validation.Attribute
	Type           validation.Attribute
}

// Search is the <search> element.
type Search struct {
	GlobalAttributes
	validation.NormalElement
}

// Section is the <section> element.
type Section struct {
	GlobalAttributes
	validation.NormalElement
}

// Select is the <select> element.
type Select struct {
	GlobalAttributes
	validation.NormalElement

	Autocomplete validation.Attribute
	Disabled     validation.Attribute
	Form         validation.Attribute
	Multiple     validation.Attribute
	Name         validation.Attribute
	Required     validation.Attribute
	Size         validation.Attribute
}

// Slot is the <slot> element.
type Slot struct {
	GlobalAttributes
	validation.NormalElement

	Name validation.Attribute
}

// Small is the <small> element.
type Small struct {
	GlobalAttributes
	validation.NormalElement
}

// Source is the <source> element.
type Source struct {
	GlobalAttributes
	validation.VoidElement

	Height validation.Attribute
	Media  validation.Attribute
	Sizes  validation.Attribute
	Src    validation.Attribute
	Srcset validation.Attribute
	Type   validation.Attribute
	Width  validation.Attribute
}

// Span is the <span> element.
type Span struct {
	GlobalAttributes
	validation.NormalElement
}

// Strong is the <strong> element.
type Strong struct {
	GlobalAttributes
	validation.NormalElement
}

// Style is the <style> element.
type Style struct {
	GlobalAttributes
	validation.NormalElement

	Media validation.Attribute
}

// Sub is the <sub> element.
type Sub struct {
	GlobalAttributes
	validation.NormalElement
}

// Summary is the <summary> element.
type Summary struct {
	GlobalAttributes
	validation.NormalElement
}

// Sup is the <sup> element.
type Sup struct {
	GlobalAttributes
	validation.NormalElement
}

// Svg is the <svg> element.
type Svg struct {
	GlobalAttributes
	validation.NormalElement
	Height  validation.Attribute
	ViewBox validation.Attribute
	Width   validation.Attribute
	Xmlns   validation.Attribute
}

// Table is the <table> element.
type Table struct {
	GlobalAttributes
	validation.NormalElement
}

// Tbody is the <tbody> element.
type Tbody struct {
	GlobalAttributes
	validation.NormalElement
}

// Td is the <td> element.
type Td struct {
	GlobalAttributes
	validation.NormalElement

	Colspan validation.Attribute
	Headers validation.Attribute
	Rowspan validation.Attribute
}

// Template is the <template> element.
type Template struct {
	GlobalAttributes
	validation.NormalElement
}

// Textarea is the <textarea> element.
type Textarea struct {
	GlobalAttributes
	validation.NormalElement

	Autocomplete validation.Attribute
	Cols         validation.Attribute
	Dirname      validation.Attribute
	Disabled     validation.Attribute
	Form         validation.Attribute
	Maxlength    validation.Attribute
	Minlength    validation.Attribute
	Name         validation.Attribute
	Placeholder  validation.Attribute
	Readonly     validation.Attribute
	Required     validation.Attribute
	Rows         validation.Attribute
	Wrap         validation.Attribute
}

// Tfoot is the <tfoot> element.
type Tfoot struct {
	GlobalAttributes
	validation.NormalElement
}

// Th is the <th> element.
type Th struct {
	GlobalAttributes
	validation.NormalElement

	Abbr    validation.Attribute
	Colspan validation.Attribute
	Headers validation.Attribute
	Rowspan validation.Attribute
	Scope   validation.Attribute
}

// Thead is the <thead> element.
type Thead struct {
	GlobalAttributes
	validation.NormalElement
}

// Time is the <time> element.
type Time struct {
	GlobalAttributes
	validation.NormalElement

	Datetime validation.Attribute
}

// Title is the <title> element.
type Title struct {
	GlobalAttributes
	validation.NormalElement
}

// Tr is the <tr> element.
type Tr struct {
	GlobalAttributes
	validation.NormalElement
}

// Track is the <track> element.
type Track struct {
	GlobalAttributes
	validation.VoidElement

	Default validation.Attribute
	Kind    validation.Attribute
	Label   validation.Attribute
	Src     validation.Attribute
	Srclang validation.Attribute
}

// U is the <u> element.
type U struct {
	GlobalAttributes
	validation.NormalElement
}

// Ul is the <ul> element.
type Ul struct {
	GlobalAttributes
	validation.NormalElement
}

// Var is the <var> element.
type Var struct {
	GlobalAttributes
	validation.NormalElement
}

// Video is the <video> element.
type Video struct {
	GlobalAttributes
	validation.NormalElement

	Autoplay    validation.Attribute
	Controls    validation.Attribute
	Crossorigin validation.Attribute
	Height      validation.Attribute
	Loop        validation.Attribute
	Muted       validation.Attribute
	Playsinline validation.Attribute
	Poster      validation.Attribute
	Preload     validation.Attribute
	Src         validation.Attribute
	Width       validation.Attribute
}

// Wbr is the <wbr> element.
type Wbr struct {
	GlobalAttributes
	validation.VoidElement
}
