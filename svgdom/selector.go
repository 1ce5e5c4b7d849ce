package svgdom

import (
	"fmt"
	"strings"
)

// EscapeSelector escapes an identifier for use in a structural selector
// query, following the CSS.escape serialization rules. Identifiers
// containing punctuation, quotes, backslashes or backticks come out as
// a selector that still resolves to the same element.
func EscapeSelector(id string) string {
	var b strings.Builder
	runes := []rune(id)
	for i, r := range runes {
		switch {
		case r == 0:
			b.WriteRune('�')
		case (r >= 0x01 && r <= 0x1f) || r == 0x7f:
			fmt.Fprintf(&b, "\\%x ", r)
		case i == 0 && r >= '0' && r <= '9':
			fmt.Fprintf(&b, "\\%x ", r)
		case i == 1 && r >= '0' && r <= '9' && runes[0] == '-':
			fmt.Fprintf(&b, "\\%x ", r)
		case i == 0 && r == '-' && len(runes) == 1:
			b.WriteString("\\-")
		case r >= 0x80 || r == '-' || r == '_' ||
			(r >= '0' && r <= '9') || (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z'):
			b.WriteRune(r)
		default:
			b.WriteRune('\\')
			b.WriteRune(r)
		}
	}
	return b.String()
}

// SelectorForID returns an id selector that resolves the given region
// identifier, escaped as needed.
func SelectorForID(id string) string {
	return "#" + EscapeSelector(id)
}
