package svgpath

import (
	"math"
)

// This file builds the path equivalent of the high level shape elements.

// maxDx is the maximum radians a cubic splice is allowed to span
// when approximating an elliptical arc.
const maxDx float64 = math.Pi / 8

// kappa scales a radius into the control-point distance that makes a
// cubic bezier approximate a quarter circle.
const kappa = 0.5522847498307935

// Rect returns the closed path of an axis-aligned rectangle.
func Rect(x, y, w, h float64) Path {
	var p Path
	p.Start(toFixedP(x, y))
	p.Line(toFixedP(x+w, y))
	p.Line(toFixedP(x+w, y+h))
	p.Line(toFixedP(x, y+h))
	p.Stop(true)
	return p
}

// RoundRect returns a rectangle with elliptical corners of radius rx, ry.
// Radii are shrunk to fit when they exceed half the side lengths.
func RoundRect(x, y, w, h, rx, ry float64) Path {
	if rx <= 0 || ry <= 0 {
		return Rect(x, y, w, h)
	}
	if rx > w/2 {
		rx = w / 2
	}
	if ry > h/2 {
		ry = h / 2
	}
	cx, cy := rx*kappa, ry*kappa
	var p Path
	p.Start(toFixedP(x+rx, y))
	p.Line(toFixedP(x+w-rx, y))
	p.CubeBezier(toFixedP(x+w-rx+cx, y), toFixedP(x+w, y+ry-cy), toFixedP(x+w, y+ry))
	p.Line(toFixedP(x+w, y+h-ry))
	p.CubeBezier(toFixedP(x+w, y+h-ry+cy), toFixedP(x+w-rx+cx, y+h), toFixedP(x+w-rx, y+h))
	p.Line(toFixedP(x+rx, y+h))
	p.CubeBezier(toFixedP(x+rx-cx, y+h), toFixedP(x, y+h-ry+cy), toFixedP(x, y+h-ry))
	p.Line(toFixedP(x, y+ry))
	p.CubeBezier(toFixedP(x, y+ry-cy), toFixedP(x+rx-cx, y), toFixedP(x+rx, y))
	p.Stop(true)
	return p
}

// Ellipse returns the closed path of an ellipse centered on cx, cy,
// built from four cubic segments.
func Ellipse(cx, cy, rx, ry float64) Path {
	dx, dy := rx*kappa, ry*kappa
	var p Path
	p.Start(toFixedP(cx+rx, cy))
	p.CubeBezier(toFixedP(cx+rx, cy+dy), toFixedP(cx+dx, cy+ry), toFixedP(cx, cy+ry))
	p.CubeBezier(toFixedP(cx-dx, cy+ry), toFixedP(cx-rx, cy+dy), toFixedP(cx-rx, cy))
	p.CubeBezier(toFixedP(cx-rx, cy-dy), toFixedP(cx-dx, cy-ry), toFixedP(cx, cy-ry))
	p.CubeBezier(toFixedP(cx+dx, cy-ry), toFixedP(cx+rx, cy-dy), toFixedP(cx+rx, cy))
	p.Stop(true)
	return p
}

// Poly returns the path through the given x,y pairs, closed when
// closeLoop is set. Fewer than two points yield an empty path.
func Poly(pts []float64, closeLoop bool) Path {
	if len(pts) < 4 || len(pts)%2 != 0 {
		return nil
	}
	var p Path
	p.Start(toFixedP(pts[0], pts[1]))
	for i := 2; i < len(pts)-1; i += 2 {
		p.Line(toFixedP(pts[i], pts[i+1]))
	}
	p.Stop(closeLoop)
	return p
}

// addArc approximates one elliptical arc segment with cubic beziers and
// appends it to the path. points holds rx, ry, rotation (degrees),
// large-arc flag, sweep flag, end x, end y; px, py is the current point.
func (p *Path) addArc(points []float64, cx, cy, px, py float64) (lx, ly float64) {
	rotX := points[2] * math.Pi / 180
	largeArc := points[3] != 0
	sweep := points[4] != 0
	startAngle := math.Atan2(py-cy, px-cx) - rotX
	endAngle := math.Atan2(points[6]-cy, points[5]-cx) - rotX
	deltaTheta := endAngle - startAngle
	arcBig := math.Abs(deltaTheta) > math.Pi

	// Approximate ellipse using cubic bezier splines
	etaStart := math.Atan2(math.Sin(startAngle)/points[1], math.Cos(startAngle)/points[0])
	etaEnd := math.Atan2(math.Sin(endAngle)/points[1], math.Cos(endAngle)/points[0])
	deltaEta := etaEnd - etaStart
	if (arcBig && !largeArc) || (!arcBig && largeArc) { // Go has no boolean XOR
		if deltaEta < 0 {
			deltaEta += math.Pi * 2
		} else {
			deltaEta -= math.Pi * 2
		}
	}
	// This check might be needed if the center point of the ellipse is
	// at the midpoint of the start and end lines.
	if deltaEta < 0 && sweep {
		deltaEta += math.Pi * 2
	} else if deltaEta >= 0 && !sweep {
		deltaEta -= math.Pi * 2
	}

	// Round up to determine number of cubic splines to approximate bezier curve
	segs := int(math.Abs(deltaEta)/maxDx) + 1
	dEta := deltaEta / float64(segs) // span of each segment
	// Approximate the ellipse using a set of cubic bezier curves by the method of
	// L. Maisonobe, "Drawing an elliptical arc using polylines, quadratic
	// or cubic Bezier curves", 2003
	// https://www.spaceroots.org/documents/elllipse/elliptical-arc.pdf
	tde := math.Tan(dEta / 2)
	alpha := math.Sin(dEta) * (math.Sqrt(4+3*tde*tde) - 1) / 3
	lx, ly = px, py
	sinTheta, cosTheta := math.Sin(rotX), math.Cos(rotX)
	ldx, ldy := ellipsePrime(points[0], points[1], sinTheta, cosTheta, etaStart, cx, cy)
	for i := 1; i <= segs; i++ {
		eta := etaStart + dEta*float64(i)
		var px, py float64
		if i == segs {
			px, py = points[5], points[6] // Just makes the end point exact; no roundoff error
		} else {
			px, py = ellipsePointAt(points[0], points[1], sinTheta, cosTheta, eta, cx, cy)
		}
		dx, dy := ellipsePrime(points[0], points[1], sinTheta, cosTheta, eta, cx, cy)
		p.CubeBezier(toFixedP(lx+alpha*ldx, ly+alpha*ldy),
			toFixedP(px-alpha*dx, py-alpha*dy), toFixedP(px, py))
		lx, ly, ldx, ldy = px, py, dx, dy
	}
	return lx, ly
}

// ellipsePrime gives tangent vectors for parameterized ellipse; a, b, radii, eta parameter, center cx, cy
func ellipsePrime(a, b, sinTheta, cosTheta, eta, cx, cy float64) (px, py float64) {
	bCosEta := b * math.Cos(eta)
	aSinEta := a * math.Sin(eta)
	px = -aSinEta*cosTheta - bCosEta*sinTheta
	py = -aSinEta*sinTheta + bCosEta*cosTheta
	return
}

// ellipsePointAt gives points for parameterized ellipse; a, b, radii, eta parameter, center cx, cy
func ellipsePointAt(a, b, sinTheta, cosTheta, eta, cx, cy float64) (px, py float64) {
	aCosEta := a * math.Cos(eta)
	bSinEta := b * math.Sin(eta)
	px = cx + aCosEta*cosTheta - bSinEta*sinTheta
	py = cy + aCosEta*sinTheta + bSinEta*cosTheta
	return
}

// findEllipseCenter locates the center of the ellipse if it exists. If it does not exist,
// the radius values will be increased minimally for a solution to be possible
// while preserving the ra to rb ratio. ra and rb arguments are pointers that can be
// checked after the call to see if the values changed. This method uses coordinate transformations
// to reduce the problem to finding the center of a circle that includes the origin
// and an arbitrary point. The center of the circle is then transformed
// back to the original coordinates and returned.
func findEllipseCenter(ra, rb *float64, rotX, startX, startY, endX, endY float64, sweep, smallArc bool) (cx, cy float64) {
	cos, sin := math.Cos(rotX), math.Sin(rotX)

	// Move origin to start point
	nx, ny := endX-startX, endY-startY

	// Rotate ellipse x-axis to coordinate x-axis
	nx, ny = nx*cos+ny*sin, -nx*sin+ny*cos
	// Scale X dimension so that ra = rb
	nx *= *rb / *ra // Now the ellipse is a circle radius rb; therefore foci and center coincide

	midX, midY := nx/2, ny/2
	midlenSq := midX*midX + midY*midY

	var hr float64
	if *rb**rb < midlenSq {
		// Requested ellipse does not exist; scale ra, rb to fit. Length of
		// span is greater than max width of ellipse, must scale *ra, *rb
		nrb := math.Sqrt(midlenSq)
		if *ra == *rb {
			*ra = nrb // prevents roundoff
		} else {
			*ra = *ra * nrb / *rb
		}
		*rb = nrb
	} else {
		hr = math.Sqrt(*rb**rb-midlenSq) / math.Sqrt(midlenSq)
	}
	// Notice that if hr is zero, both answers are the same.
	if (sweep && smallArc) || (!sweep && !smallArc) {
		cx = midX + midY*hr
		cy = midY - midX*hr
	} else {
		cx = midX - midY*hr
		cy = midY + midX*hr
	}

	// reverse scale
	cx *= *ra / *rb
	// Reverse rotate and translate back to original coordinates
	return cx*cos - cy*sin + startX, cx*sin + cy*cos + startY
}
