package hyp

import "strings"

var (
	contentEscaper = strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
	)
	attrEscaper = strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		`"`, "&quot;",
	)
)

// EscapeString escapes s for element content: & < and > become entities.
func EscapeString(s string) string {
	if !strings.ContainsAny(s, "&<>") {
		return s
	}
	return contentEscaper.Replace(s)
}

// EscapeAttrString escapes s for a double-quoted attribute value: & < >
// and " become entities.
func EscapeAttrString(s string) string {
	if !strings.ContainsAny(s, `&<>"`) {
		return s
	}
	return attrEscaper.Replace(s)
}
