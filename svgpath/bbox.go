package svgpath

import (
	"math"

	"golang.org/x/image/math/fixed"
)

// Bounds is an axis-aligned box in SVG user-space units.
type Bounds struct {
	X, Y, W, H float64
}

// Center returns the midpoint of the box.
func (b Bounds) Center() (x, y float64) {
	return b.X + b.W/2, b.Y + b.H/2
}

// Empty reports whether the box has no area.
func (b Bounds) Empty() bool {
	return b.W <= 0 || b.H <= 0
}

type extent struct {
	minX, minY, maxX, maxY float64
	any                    bool
}

func (e *extent) add(x, y float64) {
	if !e.any {
		e.minX, e.minY, e.maxX, e.maxY = x, y, x, y
		e.any = true
		return
	}
	e.minX = math.Min(e.minX, x)
	e.minY = math.Min(e.minY, y)
	e.maxX = math.Max(e.maxX, x)
	e.maxY = math.Max(e.maxY, y)
}

// quadratic polynomial
// x = At^2 + Bt + C
// where
// A = p0 + p2 - 2p1
// B = 2(p1 - p0)
// C = p0
func bezierQuad(p0, p1, p2, t float64) float64 {
	return (p0+p2-2*p1)*t*t + 2*(p1-p0)*t + p0
}

// derivative of the quadratic as at + b
func quadraticDerivative(p0, p1, p2 float64) (a, b float64) {
	return 2 * (p2 - p1 - (p1 - p0)), 2 * (p1 - p0)
}

func linearRoots(a, b float64) []float64 {
	if a == 0 {
		return nil
	}
	return []float64{-b / a}
}

// cubic polynomial
// x = At^3 + Bt^2 + Ct + D
// where A,B,C,D:
// A = p3 -3 * p2 + 3 * p1 - p0
// B = 3 * p2 - 6 * p1 +3 * p0
// C = 3 * p1 - 3 * p0
// D = p0
func bezierSpline(p0, p1, p2, p3, t float64) float64 {
	return (p3-3*p2+3*p1-p0)*t*t*t +
		(3*p2-6*p1+3*p0)*t*t +
		(3*p1-3*p0)*t +
		p0
}

// derivative of the cubic, taken as at^2 + bt + c
func cubicDerivative(p0, p1, p2, p3 float64) (a, b, c float64) {
	return 3*p3 - 9*p2 + 9*p1 - 3*p0, 6*p2 - 12*p1 + 6*p0, 3*p1 - 3*p0
}

func quadraticRoots(a, b, c float64) []float64 {
	d := b*b - 4*a*c
	if d < 0 {
		return nil
	}
	if a == 0 {
		// degenerates to bt + c
		return linearRoots(b, c)
	}
	if d == 0 {
		return []float64{-b / (2 * a)}
	}
	sq := math.Sqrt(d)
	return []float64{(-b + sq) / (2 * a), (-b - sq) / (2 * a)}
}

// addCurveExtent grows e with the extrema of one segment: the endpoints
// plus every interior critical point of the coordinate polynomials.
func addCurveExtent(e *extent, tX, tY []float64, eval func(t float64) (x, y float64)) {
	for _, t := range append(append(tX, 0, 1), tY...) {
		if !(0 <= t && t <= 1) {
			continue
		}
		e.add(eval(t))
	}
}

// BBox computes the bounding box of the path. ok is false for an empty
// path (no segments contribute any geometry).
func BBox(p Path) (b Bounds, ok bool) {
	var e extent
	var cur fixed.Point26_6
	var start fixed.Point26_6
	for _, op := range p {
		switch op := op.(type) {
		case MoveTo:
			cur = fixed.Point26_6(op)
			start = cur
			e.add(fixedTof(cur))
		case LineTo:
			e.add(fixedTof(cur))
			e.add(fixedTof(fixed.Point26_6(op)))
			cur = fixed.Point26_6(op)
		case QuadTo:
			p0x, p0y := fixedTof(cur)
			p1x, p1y := fixedTof(op[0])
			p2x, p2y := fixedTof(op[1])
			aX, bX := quadraticDerivative(p0x, p1x, p2x)
			aY, bY := quadraticDerivative(p0y, p1y, p2y)
			addCurveExtent(&e, linearRoots(aX, bX), linearRoots(aY, bY),
				func(t float64) (float64, float64) {
					return bezierQuad(p0x, p1x, p2x, t), bezierQuad(p0y, p1y, p2y, t)
				})
			cur = op[1]
		case CubicTo:
			p0x, p0y := fixedTof(cur)
			p1x, p1y := fixedTof(op[0])
			p2x, p2y := fixedTof(op[1])
			p3x, p3y := fixedTof(op[2])
			aX, bX, cX := cubicDerivative(p0x, p1x, p2x, p3x)
			aY, bY, cY := cubicDerivative(p0y, p1y, p2y, p3y)
			addCurveExtent(&e, quadraticRoots(aX, bX, cX), quadraticRoots(aY, bY, cY),
				func(t float64) (float64, float64) {
					return bezierSpline(p0x, p1x, p2x, p3x, t), bezierSpline(p0y, p1y, p2y, p3y, t)
				})
			cur = op[2]
		case Close:
			cur = start
		}
	}
	if !e.any {
		return Bounds{}, false
	}
	return Bounds{X: e.minX, Y: e.minY, W: e.maxX - e.minX, H: e.maxY - e.minY}, true
}

// Union returns the smallest box covering both inputs.
func Union(a, b Bounds) Bounds {
	minX := math.Min(a.X, b.X)
	minY := math.Min(a.Y, b.Y)
	maxX := math.Max(a.X+a.W, b.X+b.W)
	maxY := math.Max(a.Y+a.H, b.Y+b.H)
	return Bounds{X: minX, Y: minY, W: maxX - minX, H: maxY - minY}
}
