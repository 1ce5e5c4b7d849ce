package svgdom

import (
	"strconv"

	"golang.org/x/net/html"
)

// RegionIDPrefix prefixes every auto-assigned region identifier.
const RegionIDPrefix = "map-region-"

// addressable element kinds; only these become regions
var shapeTags = map[string]bool{
	"path":    true,
	"g":       true,
	"rect":    true,
	"circle":  true,
	"polygon": true,
	"ellipse": true,
}

// IndexRegions walks the svg subtree in document order, assigns
// "map-region-<n>" to every addressable shape lacking an id, and
// returns the ordered identifier list. The counter advances only on
// assignment, so indexing an already-indexed document changes nothing.
// Pre-existing duplicate ids in the source are left as found.
func (d *Document) IndexRegions() []string {
	ids := []string{}
	next := 0
	walkShapes(d.svg, func(n *html.Node) {
		id, ok := Attr(n, "id")
		if !ok || id == "" {
			id = RegionIDPrefix + strconv.Itoa(next)
			next++
			SetAttr(n, "id", id)
		}
		ids = append(ids, id)
	})
	return ids
}

// Regions returns the addressable shape nodes in document order.
func (d *Document) Regions() []*html.Node {
	var nodes []*html.Node
	walkShapes(d.svg, func(n *html.Node) { nodes = append(nodes, n) })
	return nodes
}

// RegionByID finds the element carrying the given id anywhere under
// the svg root. Lookup is by exact attribute value, so identifiers
// needing selector escaping still resolve. Returns nil when absent.
func (d *Document) RegionByID(id string) *html.Node {
	if id == "" {
		return nil
	}
	var found *html.Node
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if found != nil {
			return
		}
		if n.Type == html.ElementNode {
			if v, ok := Attr(n, "id"); ok && v == id {
				found = n
				return
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(d.svg)
	return found
}

// walkShapes visits addressable shapes under root (excluded) pre-order.
func walkShapes(root *html.Node, visit func(*html.Node)) {
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if c.Type == html.ElementNode && shapeTags[c.Data] {
				visit(c)
			}
			walk(c)
		}
	}
	walk(root)
}
