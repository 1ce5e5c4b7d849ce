// Package svgdom holds the live SVG document of an editing session:
// parsing, shape discovery and identifier assignment, id lookups and
// re-serialization. Identity lives on the document nodes themselves;
// the annotation store only ever refers to nodes by id.
package svgdom

import (
	"errors"
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/charset"

	"github.com/Drominaman/svgmap/svgpath"
)

// ErrNoSVGRoot reports input with no svg element. Callers must not
// attach interaction behavior when parsing fails with it.
var ErrNoSVGRoot = errors.New("svgdom: no svg root element found")

// Document is a parsed SVG with a located root element.
type Document struct {
	source  string
	svg     *html.Node
	viewBox svgpath.Bounds
}

// Parse reads and decodes SVG markup. The charset is sniffed from the
// byte stream, so non-UTF-8 documents round-trip correctly.
func Parse(r io.Reader) (*Document, error) {
	dec, err := charset.NewReader(r, "")
	if err != nil {
		return nil, err
	}
	raw, err := io.ReadAll(dec)
	if err != nil {
		return nil, err
	}
	return ParseString(string(raw))
}

// ParseString parses SVG markup held in memory.
func ParseString(src string) (*Document, error) {
	root, err := html.Parse(strings.NewReader(src))
	if err != nil {
		return nil, err
	}
	svg := findElement(root, "svg")
	if svg == nil {
		return nil, ErrNoSVGRoot
	}
	d := &Document{source: src, svg: svg}
	d.viewBox = readViewBox(svg)
	return d, nil
}

// Source returns the markup the document was parsed from, before any
// identifier assignment.
func (d *Document) Source() string { return d.source }

// Root returns the svg element node.
func (d *Document) Root() *html.Node { return d.svg }

// ViewBox returns the declared viewBox, falling back to the width and
// height attributes when no viewBox is present. A zero box means the
// document declares no usable coordinate system.
func (d *Document) ViewBox() svgpath.Bounds { return d.viewBox }

// Serialize renders the svg subtree back to markup, including any
// identifiers assigned or renamed since parsing.
func (d *Document) Serialize() (string, error) {
	var b strings.Builder
	if err := html.Render(&b, d.svg); err != nil {
		return "", err
	}
	return b.String(), nil
}

func readViewBox(svg *html.Node) svgpath.Bounds {
	if v, ok := Attr(svg, "viewbox"); ok {
		if pts, err := svgpath.ParseFloats(v); err == nil && len(pts) == 4 {
			return svgpath.Bounds{X: pts[0], Y: pts[1], W: pts[2], H: pts[3]}
		}
	}
	// no viewBox: synthesize one from width/height
	var w, h float64
	if v, ok := Attr(svg, "width"); ok {
		if pts, err := svgpath.ParseFloats(strings.TrimSuffix(v, "px")); err == nil && len(pts) == 1 {
			w = pts[0]
		}
	}
	if v, ok := Attr(svg, "height"); ok {
		if pts, err := svgpath.ParseFloats(strings.TrimSuffix(v, "px")); err == nil && len(pts) == 1 {
			h = pts[0]
		}
	}
	return svgpath.Bounds{W: w, H: h}
}

func findElement(n *html.Node, tag string) *html.Node {
	if n.Type == html.ElementNode && n.Data == tag {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findElement(c, tag); found != nil {
			return found
		}
	}
	return nil
}

// Attr returns the value of the named attribute. Lookup is by
// lowercase key; the parser lowercases non-adjusted foreign attributes.
func Attr(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if strings.EqualFold(a.Key, key) {
			return a.Val, true
		}
	}
	return "", false
}

// SetAttr sets or replaces the named attribute.
func SetAttr(n *html.Node, key, val string) {
	for i, a := range n.Attr {
		if strings.EqualFold(a.Key, key) {
			n.Attr[i].Val = val
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: key, Val: val})
}

// RemoveAttr deletes the named attribute if present.
func RemoveAttr(n *html.Node, key string) {
	for i, a := range n.Attr {
		if strings.EqualFold(a.Key, key) {
			n.Attr = append(n.Attr[:i], n.Attr[i+1:]...)
			return
		}
	}
}
