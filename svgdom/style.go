package svgdom

import (
	"strings"

	"github.com/aymerick/douceur/parser"
	"golang.org/x/net/html"
)

// Inline style properties win over presentation attributes, so the
// interaction styling below always writes through the style attribute.

// StyleProperty reads one property from the node's style attribute,
// falling back to the presentation attribute of the same name.
func StyleProperty(n *html.Node, prop string) (string, bool) {
	if style, ok := Attr(n, "style"); ok {
		if decls, err := parser.ParseDeclarations(style); err == nil {
			for _, d := range decls {
				if strings.EqualFold(d.Property, prop) {
					return strings.TrimSpace(d.Value), true
				}
			}
		}
	}
	return Attr(n, prop)
}

// SetStyleProperty writes one property into the node's style
// attribute, replacing an existing declaration of the same name and
// preserving the rest.
func SetStyleProperty(n *html.Node, prop, value string) {
	decls := readDeclarations(n)
	replaced := false
	for i := range decls {
		if strings.EqualFold(decls[i][0], prop) {
			decls[i][1] = value
			replaced = true
		}
	}
	if !replaced {
		decls = append(decls, [2]string{prop, value})
	}
	writeDeclarations(n, decls)
}

// RemoveStyleProperty deletes one property from the style attribute,
// keeping other declarations intact.
func RemoveStyleProperty(n *html.Node, prop string) {
	decls := readDeclarations(n)
	kept := decls[:0]
	for _, d := range decls {
		if !strings.EqualFold(d[0], prop) {
			kept = append(kept, d)
		}
	}
	writeDeclarations(n, kept)
}

func readDeclarations(n *html.Node) [][2]string {
	style, ok := Attr(n, "style")
	if !ok || strings.TrimSpace(style) == "" {
		return nil
	}
	parsed, err := parser.ParseDeclarations(style)
	if err != nil {
		// unparseable style attribute: treat as empty rather than fail
		return nil
	}
	decls := make([][2]string, 0, len(parsed))
	for _, d := range parsed {
		decls = append(decls, [2]string{d.Property, strings.TrimSpace(d.Value)})
	}
	return decls
}

func writeDeclarations(n *html.Node, decls [][2]string) {
	if len(decls) == 0 {
		RemoveAttr(n, "style")
		return
	}
	parts := make([]string, len(decls))
	for i, d := range decls {
		parts[i] = d[0] + ":" + d[1]
	}
	SetAttr(n, "style", strings.Join(parts, ";"))
}
