package hypgen

import (
	"strings"
)

// voidElements lists elements that never have children or a closing tag.
var voidElements = map[string]bool{
	"area":   true,
	"base":   true,
	"br":     true,
	"col":    true,
	"embed":  true,
	"hr":     true,
	"img":    true,
	"input":  true,
	"link":   true,
	"meta":   true,
	"source": true,
	"track":  true,
	"wbr":    true,
}

// knownElements is the HTML element vocabulary, built from elementNames.
// Every entry has a matching struct in the htmlelements package.
var knownElements = make(map[string]bool, len(elementNames))

func init() {
	for _, name := range elementNames {
		knownElements[name] = true
	}
}

// elementNames lists every standard HTML element.
var elementNames = []string{
	"a", "abbr", "address", "area", "article", "aside", "audio", "b",
	"base", "bdi", "bdo", "blockquote", "body", "br", "button", "canvas",
	"caption", "cite", "code", "col", "colgroup", "data", "datalist",
	"dd", "del", "details", "dfn", "dialog", "div", "dl", "dt", "em",
	"embed", "fieldset", "figcaption", "figure", "footer", "form", "h1",
	"h2", "h3", "h4", "h5", "h6", "head", "header", "hgroup", "hr",
	"html", "i", "iframe", "img", "input", "ins", "kbd", "label",
	"legend", "li", "link", "main", "map", "mark", "menu", "meta",
	"meter", "nav", "noscript", "object", "ol", "optgroup", "option",
	"output", "p", "picture", "pre", "progress", "q", "rp", "rt", "ruby",
	"s", "samp", "script", "search", "section", "select", "slot",
	"small", "source", "span", "strong", "style", "sub", "summary",
	"sup", "svg", "table", "tbody", "td", "template", "textarea", "tfoot",
	"th", "thead", "time", "title", "tr", "track", "u", "ul", "var",
	"video", "wbr",
}

// IsVoidElement reports whether name is an HTML void element.
func IsVoidElement(name string) bool {
	return voidElements[name]
}

// IsKnownElement reports whether name is a standard HTML element. Names
// containing a hyphen are custom elements and are always accepted.
func IsKnownElement(name string) bool {
	if strings.Contains(name, "-") {
		return true
	}
	return knownElements[name]
}

// globalAttrs are attributes valid on every element, mirrored by the
// GlobalAttributes struct in the htmlelements package.
var globalAttrs = map[string]bool{
	"accesskey":       true,
	"autocapitalize":  true,
	"autofocus":       true,
	"class":           true,
	"contenteditable": true,
	"dir":             true,
	"draggable":       true,
	"enterkeyhint":    true,
	"hidden":          true,
	"id":              true,
	"inert":           true,
	"inputmode":       true,
	"is":              true,
	"itemid":          true,
	"itemprop":        true,
	"itemref":         true,
	"itemscope":       true,
	"itemtype":        true,
	"lang":            true,
	"nonce":           true,
	"part":            true,
	"popover":         true,
	"role":            true,
	"slot":            true,
	"spellcheck":      true,
	"style":           true,
	"tabindex":        true,
	"title":           true,
	"translate":       true,
}

// elementAttrs maps elements to their element-specific attributes, mirrored
// by the per-element structs in the htmlelements package.
var elementAttrs = map[string][]string{
	"a":          {"download", "href", "hreflang", "ping", "referrerpolicy", "rel", "target", "type"},
	"area":       {"alt", "coords", "download", "href", "ping", "referrerpolicy", "rel", "shape", "target"},
	"audio":      {"autoplay", "controls", "crossorigin", "loop", "muted", "preload", "src"},
	"base":       {"href", "target"},
	"blockquote": {"cite"},
	"button":     {"disabled", "form", "formaction", "formenctype", "formmethod", "formnovalidate", "formtarget", "name", "type", "value"},
	"canvas":     {"height", "width"},
	"col":        {"span"},
	"colgroup":   {"span"},
	"data":       {"value"},
	"del":        {"cite", "datetime"},
	"details":    {"name", "open"},
	"dialog":     {"open"},
	"embed":      {"height", "src", "type", "width"},
	"fieldset":   {"disabled", "form", "name"},
	"form":       {"accept-charset", "action", "autocomplete", "enctype", "method", "name", "novalidate", "rel", "target"},
	"html":       {"xmlns"},
	"iframe":     {"allow", "allowfullscreen", "height", "loading", "name", "referrerpolicy", "sandbox", "src", "srcdoc", "width"},
	"img":        {"alt", "crossorigin", "decoding", "fetchpriority", "height", "ismap", "loading", "referrerpolicy", "sizes", "src", "srcset", "usemap", "width"},
	"input":      {"accept", "alt", "autocomplete", "capture", "checked", "dirname", "disabled", "form", "formaction", "formenctype", "formmethod", "formnovalidate", "formtarget", "height", "list", "max", "maxlength", "min", "minlength", "multiple", "name", "pattern", "placeholder", "readonly", "required", "size", "src", "step", "type", "value", "width"},
	"ins":        {"cite", "datetime"},
	"label":      {"for"},
	"li":         {"value"},
	"link":       {"as", "crossorigin", "fetchpriority", "href", "hreflang", "imagesizes", "imagesrcset", "integrity", "media", "referrerpolicy", "rel", "sizes", "type"},
	"map":        {"name"},
	"meta":       {"charset", "content", "http-equiv", "media", "name"},
	"meter":      {"high", "low", "max", "min", "optimum", "value"},
	"object":     {"data", "form", "height", "name", "type", "usemap", "width"},
	"ol":         {"reversed", "start", "type"},
	"optgroup":   {"disabled", "label"},
	"option":     {"disabled", "label", "selected", "value"},
	"output":     {"for", "form", "name"},
	"progress":   {"max", "value"},
	"q":          {"cite"},
	"script":     {"async", "crossorigin", "defer", "fetchpriority", "integrity", "nomodule", "referrerpolicy", "src", "type"},
	"select":     {"autocomplete", "disabled", "form", "multiple", "name", "required", "size"},
	"slot":       {"name"},
	"source":     {"height", "media", "sizes", "src", "srcset", "type", "width"},
	"style":      {"media"},
	"td":         {"colspan", "headers", "rowspan"},
	"textarea":   {"autocomplete", "cols", "dirname", "disabled", "form", "maxlength", "minlength", "name", "placeholder", "readonly", "required", "rows", "wrap"},
	"th":         {"abbr", "colspan", "headers", "rowspan", "scope"},
	"svg":        {"height", "viewBox", "width", "xmlns"},
	"time":       {"datetime"},
	"track":      {"default", "kind", "label", "src", "srclang"},
	"video":      {"autoplay", "controls", "crossorigin", "height", "loop", "muted", "playsinline", "poster", "preload", "src", "width"},
}

// attrNamespaces are the namespaces accepted on namespaced attribute names,
// mirrored by namespace fields on GlobalAttributes.
var attrNamespaces = map[string]bool{
	"xml":   true,
	"xmlns": true,
	"xlink": true,
}

// HasAttrField reports whether the htmlelements struct for element carries
// a field for attr, either its own or promoted from GlobalAttributes.
func HasAttrField(element, attr string) bool {
	if globalAttrs[attr] {
		return true
	}
	for _, a := range elementAttrs[element] {
		if a == attr {
			return true
		}
	}
	return false
}

// IsKnownAttribute reports whether attr is valid on element. Event handler
// attributes (on*) are accepted without a field.
func IsKnownAttribute(element, attr string) bool {
	if HasAttrField(element, attr) {
		return true
	}
	return strings.HasPrefix(attr, "on") && len(attr) > 2
}

// SuggestAttribute returns the closest known attribute name for a typo, or
// "" when nothing is close enough.
func SuggestAttribute(element, attr string) string {
	best := ""
	bestDist := 3 // suggestions beyond distance 2 are noise
	candidates := make([]string, 0, len(globalAttrs)+len(elementAttrs[element]))
	for a := range globalAttrs {
		candidates = append(candidates, a)
	}
	candidates = append(candidates, elementAttrs[element]...)

	lower := strings.ToLower(attr)
	for _, c := range candidates {
		if d := editDistance(lower, c); d < bestDist {
			best, bestDist = c, d
		}
	}
	return best
}

// SuggestElement returns the closest known element name for a typo, or "".
func SuggestElement(name string) string {
	best := ""
	bestDist := 3
	lower := strings.ToLower(name)
	for _, c := range elementNames {
		if d := editDistance(lower, c); d < bestDist {
			best, bestDist = c, d
		}
	}
	return best
}

// editDistance computes the Levenshtein distance between two strings.
func editDistance(a, b string) int {
	if a == b {
		return 0
	}
	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, min(curr[j-1]+1, prev[j-1]+cost))
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}
