package svgpath

import (
	"errors"

	"golang.org/x/net/html"
)

// ErrNoGeometry is returned for nodes that contribute no drawable
// geometry (unknown tags, empty groups, degenerate shapes).
var ErrNoGeometry = errors.New("svgpath: node has no geometry")

func nodeAttr(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

func attrFloat(n *html.Node, key string) (float64, error) {
	v, ok := nodeAttr(n, key)
	if !ok {
		return 0, nil
	}
	return parseUnitFloat(v)
}

// FromNode reduces a shape element to its path. Groups yield the
// concatenation of their shape descendants' paths.
func FromNode(n *html.Node) (Path, error) {
	if n == nil || n.Type != html.ElementNode {
		return nil, ErrNoGeometry
	}
	switch n.Data {
	case "rect":
		return rectNode(n)
	case "circle":
		return circleNode(n, true)
	case "ellipse":
		return circleNode(n, false)
	case "polygon":
		return polyNode(n, true)
	case "polyline":
		return polyNode(n, false)
	case "line":
		return lineNode(n)
	case "path":
		d, ok := nodeAttr(n, "d")
		if !ok || d == "" {
			return nil, ErrNoGeometry
		}
		return CompilePath(d)
	case "g":
		return groupNode(n)
	}
	return nil, ErrNoGeometry
}

// NodeBounds returns the axis-aligned bounding box of a shape element
// in user-space units.
func NodeBounds(n *html.Node) (Bounds, error) {
	p, err := FromNode(n)
	if err != nil {
		return Bounds{}, err
	}
	b, ok := BBox(p)
	if !ok {
		return Bounds{}, ErrNoGeometry
	}
	return b, nil
}

func rectNode(n *html.Node) (Path, error) {
	x, err := attrFloat(n, "x")
	if err != nil {
		return nil, err
	}
	y, err := attrFloat(n, "y")
	if err != nil {
		return nil, err
	}
	w, err := attrFloat(n, "width")
	if err != nil {
		return nil, err
	}
	h, err := attrFloat(n, "height")
	if err != nil {
		return nil, err
	}
	rx, err := attrFloat(n, "rx")
	if err != nil {
		return nil, err
	}
	ry, err := attrFloat(n, "ry")
	if err != nil {
		return nil, err
	}
	if w <= 0 || h <= 0 {
		return nil, ErrNoGeometry
	}
	if rx > 0 && ry == 0 {
		ry = rx
	}
	if ry > 0 && rx == 0 {
		rx = ry
	}
	return RoundRect(x, y, w, h, rx, ry), nil
}

func circleNode(n *html.Node, isCircle bool) (Path, error) {
	cx, err := attrFloat(n, "cx")
	if err != nil {
		return nil, err
	}
	cy, err := attrFloat(n, "cy")
	if err != nil {
		return nil, err
	}
	var rx, ry float64
	if isCircle {
		r, err := attrFloat(n, "r")
		if err != nil {
			return nil, err
		}
		rx, ry = r, r
	} else {
		if rx, err = attrFloat(n, "rx"); err != nil {
			return nil, err
		}
		if ry, err = attrFloat(n, "ry"); err != nil {
			return nil, err
		}
	}
	if rx <= 0 || ry <= 0 { // not drawn, but not an error for rendering
		return nil, ErrNoGeometry
	}
	return Ellipse(cx, cy, rx, ry), nil
}

func polyNode(n *html.Node, closed bool) (Path, error) {
	v, ok := nodeAttr(n, "points")
	if !ok {
		return nil, ErrNoGeometry
	}
	c := &pathCursor{}
	if err := c.getPoints(v); err != nil {
		return nil, err
	}
	if len(c.points)%2 != 0 {
		return nil, errors.New("svgpath: polygon has odd number of points")
	}
	p := Poly(c.points, closed)
	if p == nil {
		return nil, ErrNoGeometry
	}
	return p, nil
}

func lineNode(n *html.Node) (Path, error) {
	x1, err := attrFloat(n, "x1")
	if err != nil {
		return nil, err
	}
	y1, err := attrFloat(n, "y1")
	if err != nil {
		return nil, err
	}
	x2, err := attrFloat(n, "x2")
	if err != nil {
		return nil, err
	}
	y2, err := attrFloat(n, "y2")
	if err != nil {
		return nil, err
	}
	var p Path
	p.Start(toFixedP(x1, y1))
	p.Line(toFixedP(x2, y2))
	return p, nil
}

func groupNode(n *html.Node) (Path, error) {
	var p Path
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode {
			continue
		}
		sub, err := FromNode(c)
		if err != nil {
			continue // one bad child must not sink the group
		}
		p = append(p, sub...)
	}
	if len(p) == 0 {
		return nil, ErrNoGeometry
	}
	return p, nil
}
