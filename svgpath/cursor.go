package svgpath

import (
	"errors"
	"math"
	"strconv"
	"strings"
	"unicode"
)

var (
	errParamMismatch  = errors.New("svgpath: param mismatch")
	errCommandUnknown = errors.New("svgpath: unknown path command")
)

// pathCursor tracks the pen state while compiling a `d` attribute.
type pathCursor struct {
	path                   Path
	placeX, placeY         float64
	pathStartX, pathStartY float64
	cntlPtX, cntlPtY       float64 // last control point, for S/T reflection
	points                 []float64
	lastKey                byte
	inPath                 bool
}

// CompilePath translates an SVG path data string into a Path.
func CompilePath(d string) (Path, error) {
	c := &pathCursor{lastKey: ' '}
	if err := c.compile(d); err != nil {
		return nil, err
	}
	return c.path, nil
}

// compile splits the data string on command letters and feeds each
// segment to addSeg. 'e'/'E' are exponent markers, not commands.
func (c *pathCursor) compile(d string) error {
	lastIndex := -1
	for i, v := range d {
		if unicode.IsLetter(v) && v != 'e' && v != 'E' {
			if lastIndex != -1 {
				if err := c.addSeg(d[lastIndex:i]); err != nil {
					return err
				}
			}
			lastIndex = i
		}
	}
	if lastIndex != -1 {
		if err := c.addSeg(d[lastIndex:]); err != nil {
			return err
		}
	}
	return nil
}

// getPoints parses every number in s into c.points. A '-' or a second
// '.' terminates the previous number, per SVG path shorthand.
func (c *pathCursor) getPoints(s string) error {
	c.points = c.points[:0]
	i, n := 0, len(s)
	for i < n {
		ch := s[i]
		if ch == ',' || ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r' {
			i++
			continue
		}
		start := i
		if ch == '+' || ch == '-' {
			i++
		}
		seenDot := false
	number:
		for i < n {
			switch {
			case s[i] >= '0' && s[i] <= '9':
				i++
			case s[i] == '.' && !seenDot:
				seenDot = true
				i++
			case s[i] == 'e' || s[i] == 'E':
				j := i + 1
				if j < n && (s[j] == '+' || s[j] == '-') {
					j++
				}
				if j < n && s[j] >= '0' && s[j] <= '9' {
					i = j
					for i < n && s[i] >= '0' && s[i] <= '9' {
						i++
					}
				}
				break number
			default:
				break number
			}
		}
		if i == start || (i == start+1 && (s[start] == '+' || s[start] == '-')) {
			return errParamMismatch
		}
		f, err := strconv.ParseFloat(s[start:i], 64)
		if err != nil {
			return err
		}
		c.points = append(c.points, f)
	}
	return nil
}

func reflectPt(originX, originY, px, py float64) (x, y float64) {
	return originX*2 - px, originY*2 - py
}

// addSeg decodes one command segment and appends its operations.
func (c *pathCursor) addSeg(seg string) error {
	if err := c.getPoints(seg[1:]); err != nil {
		return err
	}
	l := len(c.points)
	k := seg[0]
	rel := false
	switch k {
	case 'z', 'Z':
		if l != 0 {
			return errParamMismatch
		}
		if c.inPath {
			c.path.Stop(true)
			c.placeX = c.pathStartX
			c.placeY = c.pathStartY
			c.inPath = false
		}
	case 'm':
		rel = true
		fallthrough
	case 'M':
		if l < 2 || l%2 != 0 {
			return errParamMismatch
		}
		if rel {
			c.points[0] += c.placeX
			c.points[1] += c.placeY
		}
		c.pathStartX, c.pathStartY = c.points[0], c.points[1]
		c.placeX, c.placeY = c.pathStartX, c.pathStartY
		c.path.Start(toFixedP(c.pathStartX, c.pathStartY))
		c.inPath = true
		for i := 2; i < l-1; i += 2 {
			if rel {
				c.points[i] += c.placeX
				c.points[i+1] += c.placeY
			}
			c.path.Line(toFixedP(c.points[i], c.points[i+1]))
			c.placeX, c.placeY = c.points[i], c.points[i+1]
		}
	case 'l':
		rel = true
		fallthrough
	case 'L':
		if l < 2 || l%2 != 0 {
			return errParamMismatch
		}
		for i := 0; i < l-1; i += 2 {
			if rel {
				c.points[i] += c.placeX
				c.points[i+1] += c.placeY
			}
			c.path.Line(toFixedP(c.points[i], c.points[i+1]))
			c.placeX, c.placeY = c.points[i], c.points[i+1]
		}
	case 'h':
		rel = true
		fallthrough
	case 'H':
		if l < 1 {
			return errParamMismatch
		}
		for i := 0; i < l; i++ {
			if rel {
				c.points[i] += c.placeX
			}
			c.path.Line(toFixedP(c.points[i], c.placeY))
			c.placeX = c.points[i]
		}
	case 'v':
		rel = true
		fallthrough
	case 'V':
		if l < 1 {
			return errParamMismatch
		}
		for i := 0; i < l; i++ {
			if rel {
				c.points[i] += c.placeY
			}
			c.path.Line(toFixedP(c.placeX, c.points[i]))
			c.placeY = c.points[i]
		}
	case 'c':
		rel = true
		fallthrough
	case 'C':
		if l < 6 || l%6 != 0 {
			return errParamMismatch
		}
		for i := 0; i < l-5; i += 6 {
			if rel {
				for j := 0; j < 6; j += 2 {
					c.points[i+j] += c.placeX
					c.points[i+j+1] += c.placeY
				}
			}
			c.path.CubeBezier(
				toFixedP(c.points[i], c.points[i+1]),
				toFixedP(c.points[i+2], c.points[i+3]),
				toFixedP(c.points[i+4], c.points[i+5]))
			c.cntlPtX, c.cntlPtY = c.points[i+2], c.points[i+3]
			c.placeX, c.placeY = c.points[i+4], c.points[i+5]
		}
	case 's':
		rel = true
		fallthrough
	case 'S':
		if l < 4 || l%4 != 0 {
			return errParamMismatch
		}
		for i := 0; i < l-3; i += 4 {
			if rel {
				for j := 0; j < 4; j += 2 {
					c.points[i+j] += c.placeX
					c.points[i+j+1] += c.placeY
				}
			}
			ctlX, ctlY := c.placeX, c.placeY
			switch c.lastKey {
			case 'c', 'C', 's', 'S':
				ctlX, ctlY = reflectPt(c.placeX, c.placeY, c.cntlPtX, c.cntlPtY)
			}
			c.path.CubeBezier(
				toFixedP(ctlX, ctlY),
				toFixedP(c.points[i], c.points[i+1]),
				toFixedP(c.points[i+2], c.points[i+3]))
			c.lastKey = k
			c.cntlPtX, c.cntlPtY = c.points[i], c.points[i+1]
			c.placeX, c.placeY = c.points[i+2], c.points[i+3]
		}
	case 'q':
		rel = true
		fallthrough
	case 'Q':
		if l < 4 || l%4 != 0 {
			return errParamMismatch
		}
		for i := 0; i < l-3; i += 4 {
			if rel {
				for j := 0; j < 4; j += 2 {
					c.points[i+j] += c.placeX
					c.points[i+j+1] += c.placeY
				}
			}
			c.path.QuadBezier(
				toFixedP(c.points[i], c.points[i+1]),
				toFixedP(c.points[i+2], c.points[i+3]))
			c.cntlPtX, c.cntlPtY = c.points[i], c.points[i+1]
			c.placeX, c.placeY = c.points[i+2], c.points[i+3]
		}
	case 't':
		rel = true
		fallthrough
	case 'T':
		if l < 2 || l%2 != 0 {
			return errParamMismatch
		}
		for i := 0; i < l-1; i += 2 {
			if rel {
				c.points[i] += c.placeX
				c.points[i+1] += c.placeY
			}
			ctlX, ctlY := c.placeX, c.placeY
			switch c.lastKey {
			case 'q', 'Q', 't', 'T':
				ctlX, ctlY = reflectPt(c.placeX, c.placeY, c.cntlPtX, c.cntlPtY)
			}
			c.path.QuadBezier(
				toFixedP(ctlX, ctlY),
				toFixedP(c.points[i], c.points[i+1]))
			c.lastKey = k
			c.cntlPtX, c.cntlPtY = ctlX, ctlY
			c.placeX, c.placeY = c.points[i], c.points[i+1]
		}
	case 'a':
		rel = true
		fallthrough
	case 'A':
		if l < 7 || l%7 != 0 {
			return errParamMismatch
		}
		for i := 0; i < l-6; i += 7 {
			if rel {
				c.points[i+5] += c.placeX
				c.points[i+6] += c.placeY
			}
			c.placeArc(c.points[i : i+7])
		}
	default:
		return errCommandUnknown
	}
	c.lastKey = k
	return nil
}

// placeArc resolves the ellipse center for one arc segment and
// approximates it with cubic beziers.
func (c *pathCursor) placeArc(pts []float64) {
	if pts[0] == 0 || pts[1] == 0 {
		// zero radius degenerates to a straight line per the SVG spec
		c.path.Line(toFixedP(pts[5], pts[6]))
		c.placeX, c.placeY = pts[5], pts[6]
		return
	}
	pts[0], pts[1] = math.Abs(pts[0]), math.Abs(pts[1])
	cx, cy := findEllipseCenter(&pts[0], &pts[1], pts[2]*math.Pi/180,
		c.placeX, c.placeY, pts[5], pts[6], pts[4] == 0, pts[3] == 0)
	c.placeX, c.placeY = c.path.addArc(pts, cx, cy, c.placeX, c.placeY)
}

// ParseFloats parses a comma or whitespace separated list of numbers,
// as found in viewBox and points attributes.
func ParseFloats(s string) ([]float64, error) {
	c := &pathCursor{}
	if err := c.getPoints(s); err != nil {
		return nil, err
	}
	return append([]float64(nil), c.points...), nil
}

// parseUnitFloat parses a numeric attribute value, tolerating a "px"
// suffix and surrounding whitespace.
func parseUnitFloat(v string) (float64, error) {
	v = strings.TrimSpace(v)
	v = strings.TrimSuffix(v, "px")
	return strconv.ParseFloat(strings.TrimSpace(v), 64)
}
